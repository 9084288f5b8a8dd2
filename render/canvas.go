package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/viant/pointset/index"
)

const (
	discSegments = 24
	minPenPixels = 0.75
)

// Canvas is an index.Canvas backed by an *image.RGBA.
type Canvas struct {
	img    *image.RGBA
	size   int
	pen    image.Image
	radius float64
	z      *vector.Rasterizer
}

// New returns a size x size canvas on a white background with a black pen
// of radius 0.002.
func New(size int) (*Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("render: invalid canvas size %d", size)
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.Draw(img, img.Bounds(), image.White, image.Point{}, xdraw.Src)
	return &Canvas{
		img:    img,
		size:   size,
		pen:    image.Black,
		radius: 0.002,
		z:      vector.NewRasterizer(size, size),
	}, nil
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// SetPenColor sets the colour of subsequent points and lines.
func (c *Canvas) SetPenColor(col color.Color) { c.pen = image.NewUniform(col) }

// SetPenRadius sets the pen radius in unit-square coordinates.
func (c *Canvas) SetPenRadius(r float64) { c.radius = r }

func (c *Canvas) toPixel(x, y float64) (float32, float32) {
	s := float64(c.size)
	return float32(x * s), float32((1 - y) * s)
}

func (c *Canvas) penPixels() float64 {
	return math.Max(c.radius*float64(c.size), minPenPixels)
}

// Point draws a filled disc centred at (x, y).
func (c *Canvas) Point(x, y float64) {
	cx, cy := c.toPixel(x, y)
	r := c.penPixels()
	c.z.Reset(c.size, c.size)
	for i := 0; i < discSegments; i++ {
		a := 2 * math.Pi * float64(i) / discSegments
		px := cx + float32(r*math.Cos(a))
		py := cy + float32(r*math.Sin(a))
		if i == 0 {
			c.z.MoveTo(px, py)
			continue
		}
		c.z.LineTo(px, py)
	}
	c.z.ClosePath()
	c.z.Draw(c.img, c.img.Bounds(), c.pen, image.Point{})
}

// Line draws a segment as a quad as wide as the pen.
func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	ax, ay := c.toPixel(x0, y0)
	bx, by := c.toPixel(x1, y1)
	dx, dy := float64(bx-ax), float64(by-ay)
	length := math.Hypot(dx, dy)
	if length == 0 {
		c.Point(x0, y0)
		return
	}
	r := c.penPixels()
	nx := float32(-dy / length * r)
	ny := float32(dx / length * r)
	c.z.Reset(c.size, c.size)
	c.z.MoveTo(ax+nx, ay+ny)
	c.z.LineTo(bx+nx, by+ny)
	c.z.LineTo(bx-nx, by-ny)
	c.z.LineTo(ax-nx, ay-ny)
	c.z.ClosePath()
	c.z.Draw(c.img, c.img.Bounds(), c.pen, image.Point{})
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// Index draws idx onto a new size x size canvas.
func Index(idx index.PointIndex, size int) (*Canvas, error) {
	c, err := New(size)
	if err != nil {
		return nil, err
	}
	idx.Draw(c)
	return c, nil
}

var _ index.Canvas = (*Canvas)(nil)
