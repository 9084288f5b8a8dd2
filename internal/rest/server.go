// Package rest exposes a point index over HTTP.
package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/viant/pointset/geom"
	"github.com/viant/pointset/index"
	"github.com/viant/pointset/render"
)

const maxDrawSize = 4096

// Server serves one index. Indexes are not safe for concurrent mutation, so
// inserts take the write lock and queries the read lock.
type Server struct {
	mu     sync.RWMutex
	idx    index.PointIndex
	logger *slog.Logger
}

// NewServer wraps idx. A nil logger uses slog.Default.
func NewServer(idx index.PointIndex, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{idx: idx, logger: logger}
}

// Router returns the gin engine with every route under /api/v1.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	api := r.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET("/ping", s.getPing)
			v1.GET("/size", s.getSize)
			v1.POST("/points", s.postPoints)
			v1.GET("/contains", s.getContains)
			v1.GET("/range", s.getRange)
			v1.GET("/nearest", s.getNearest)
			v1.GET("/draw.png", s.getDraw)
		}
	}
	return r
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Router(), ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("serving", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (s *Server) getPing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func (s *Server) getSize(c *gin.Context) {
	s.mu.RLock()
	size, empty := s.idx.Size(), s.idx.IsEmpty()
	s.mu.RUnlock()
	c.JSON(http.StatusOK, gin.H{"size": size, "empty": empty})
}

type postPointsArgs struct {
	Points []geom.Point `json:"points" binding:"required"`
}

func (s *Server) postPoints(c *gin.Context) {
	var args postPointsArgs
	if err := c.ShouldBindJSON(&args); err != nil {
		badRequest(c, err)
		return
	}
	s.mu.Lock()
	before := s.idx.Size()
	for i := range args.Points {
		if err := s.idx.Insert(&args.Points[i]); err != nil {
			s.mu.Unlock()
			s.logger.Error("insert failed", "point", args.Points[i], "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	size := s.idx.Size()
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"inserted": size - before, "size": size})
}

type pointArgs struct {
	X *float64 `form:"x" binding:"required"`
	Y *float64 `form:"y" binding:"required"`
	K *int     `form:"k"`
}

func (a pointArgs) point() *geom.Point { return &geom.Point{X: *a.X, Y: *a.Y} }

func (s *Server) getContains(c *gin.Context) {
	var args pointArgs
	if err := c.ShouldBindQuery(&args); err != nil {
		badRequest(c, err)
		return
	}
	s.mu.RLock()
	ok, err := s.idx.Contains(args.point())
	s.mu.RUnlock()
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contains": ok})
}

type rangeArgs struct {
	XMin *float64 `form:"xmin" binding:"required"`
	YMin *float64 `form:"ymin" binding:"required"`
	XMax *float64 `form:"xmax" binding:"required"`
	YMax *float64 `form:"ymax" binding:"required"`
}

func (s *Server) getRange(c *gin.Context) {
	var args rangeArgs
	if err := c.ShouldBindQuery(&args); err != nil {
		badRequest(c, err)
		return
	}
	rect, err := geom.NewRect(*args.XMin, *args.YMin, *args.XMax, *args.YMax)
	if err != nil {
		badRequest(c, err)
		return
	}
	s.mu.RLock()
	pts, err := s.idx.Range(&rect)
	s.mu.RUnlock()
	if err != nil {
		badRequest(c, err)
		return
	}
	if pts == nil {
		pts = []geom.Point{}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(pts), "points": pts})
}

func (s *Server) getNearest(c *gin.Context) {
	var args pointArgs
	if err := c.ShouldBindQuery(&args); err != nil {
		badRequest(c, err)
		return
	}
	if args.K != nil {
		s.mu.RLock()
		pts, err := s.idx.KNearest(args.point(), *args.K)
		s.mu.RUnlock()
		if err != nil {
			badRequest(c, err)
			return
		}
		if pts == nil {
			pts = []geom.Point{}
		}
		c.JSON(http.StatusOK, gin.H{"points": pts})
		return
	}
	s.mu.RLock()
	p, err := s.idx.Nearest(args.point())
	s.mu.RUnlock()
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"point": p})
}

type drawArgs struct {
	Size int `form:"size,default=512"`
}

func (s *Server) getDraw(c *gin.Context) {
	var args drawArgs
	if err := c.ShouldBindQuery(&args); err != nil {
		badRequest(c, err)
		return
	}
	if args.Size <= 0 || args.Size > maxDrawSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size out of range"})
		return
	}
	s.mu.RLock()
	canvas, err := render.Index(s.idx, args.Size)
	s.mu.RUnlock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := canvas.WritePNG(c.Writer); err != nil {
		s.logger.Error("write png failed", "err", err)
	}
}
