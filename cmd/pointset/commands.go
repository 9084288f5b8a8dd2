package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/viant/pointset/engine"
	"github.com/viant/pointset/geom"
	"github.com/viant/pointset/internal/gen"
	"github.com/viant/pointset/internal/rest"
	"github.com/viant/pointset/pointset"
	"github.com/viant/pointset/ptvtab"
	"github.com/viant/pointset/render"
	"github.com/viant/pointset/store"
)

func runQuery(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	in := fs.String("in", "", "read points from `file`, - for stdin")
	kind := fs.String("index", "kd", "index backend, kd or brute")
	rng := fs.String("range", "", "report points inside `xmin,ymin,xmax,ymax`")
	near := fs.String("nearest", "", "report the point nearest to `x,y`")
	k := fs.Int("k", 0, "with -nearest, report the k nearest points instead")
	verify := fs.Int("verify", 0, "check the index against the other backend with `n` random queries")
	if err := fs.Parse(args); err != nil {
		return err
	}
	idx, err := loadIndex(*in, "index="+*kind)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "size %d\n", idx.Size())

	if *rng != "" {
		v, err := parseFloats(*rng, 4)
		if err != nil {
			return err
		}
		rect, err := geom.NewRect(v[0], v[1], v[2], v[3])
		if err != nil {
			return err
		}
		pts, err := idx.Range(&rect)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "range %v: %d points\n", rect, len(pts))
		for _, p := range pts {
			fmt.Fprintf(out, "  %v\n", p)
		}
	}

	if *near != "" {
		v, err := parseFloats(*near, 2)
		if err != nil {
			return err
		}
		q := geom.Point{X: v[0], Y: v[1]}
		if *k > 0 {
			pts, err := idx.KNearest(&q, *k)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d nearest to %v:\n", len(pts), q)
			for _, p := range pts {
				fmt.Fprintf(out, "  %v  %.6g\n", p, q.DistanceTo(p))
			}
		} else {
			p, err := idx.Nearest(&q)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintf(out, "nearest to %v: none\n", q)
			} else {
				fmt.Fprintf(out, "nearest to %v: %v  %.6g\n", q, *p, q.DistanceTo(*p))
			}
		}
	}

	if *verify > 0 {
		used, err := pointset.ParseKind(*kind)
		if err != nil {
			return err
		}
		other := pointset.KindBrute
		if used == pointset.KindBrute {
			other = pointset.KindKd
		}
		ref, err := pointset.New(other)
		if err != nil {
			return err
		}
		if _, err := pointset.InsertAll(ref, idx.Points()); err != nil {
			return err
		}
		g := gen.New(1, 0)
		queries := make([]pointset.Query, *verify)
		for i := range queries {
			r, p := g.Rect(), g.Point()
			queries[i] = pointset.Query{Rect: &r, Point: &p}
		}
		if err := pointset.Compare(idx, ref, queries); err != nil {
			return err
		}
		fmt.Fprintf(out, "verified %d queries against %s\n", *verify, other)
	}
	return nil
}

func runDraw(args []string) error {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	in := fs.String("in", "", "read points from `file`, - for stdin")
	outPath := fs.String("out", "kdtree.png", "write the PNG to `file`")
	size := fs.Int("size", 768, "image width and height in pixels")
	palette := fs.String("palette", "default", "drawing palette, default or mono")
	if err := fs.Parse(args); err != nil {
		return err
	}
	idx, err := loadIndex(*in, "index=kd", "palette="+*palette)
	if err != nil {
		return err
	}
	canvas, err := render.Index(idx, *size)
	if err != nil {
		return err
	}
	f, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	if err := canvas.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("wrote image", "file", *outPath, "size", *size, "points", idx.Size())
	return nil
}

func runGen(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	n := fs.Int("n", 100, "number of points")
	seed := fs.Uint("seed", 1, "random seed")
	steps := fs.Uint("steps", 0, "grid steps per axis, 0 for a continuous grid")
	if err := fs.Parse(args); err != nil {
		return err
	}
	g := gen.New(uint32(*seed), uint32(*steps))
	return store.WritePoints(out, g.Points(*n))
}

func openStore(ctx context.Context, path string) (*sql.DB, *store.SQLiteStore, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("missing -db path")
	}
	db, err := engine.Open(path)
	if err != nil {
		return nil, nil, err
	}
	s, err := store.NewSQLiteStore(ctx, db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, s, nil
}

func runImport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	in := fs.String("in", "", "read points from `file`, - for stdin")
	dbPath := fs.String("db", "points.sqlite", "SQLite database `path`")
	dataset := fs.String("dataset", "", "dataset name, defaults to the input file name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	pts, err := readPointsFile(*in)
	if err != nil {
		return err
	}
	name := *dataset
	if name == "" {
		name = strings.TrimSuffix(baseName(*in), ".txt")
	}
	db, s, err := openStore(ctx, *dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	n, err := s.AddPoints(ctx, name, pts)
	if err != nil {
		return err
	}
	total, err := s.Count(ctx, name)
	if err != nil {
		return err
	}
	logger.Info("imported", "dataset", name, "read", len(pts), "added", n, "total", total)
	return nil
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

func runSQL(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sql", flag.ContinueOnError)
	dbPath := fs.String("db", "points.sqlite", "SQLite database `path`")
	kind := fs.String("index", "kd", "index backend the pt_query table builds, kd or brute")
	query := fs.String("e", "", "SQL `statement` to run; the virtual table q is available")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *query == "" {
		return fmt.Errorf("missing -e statement")
	}
	// Datasets are loaded through a second handle so the loader never waits
	// on the connection running the query.
	loadDB, s, err := openStore(ctx, *dbPath)
	if err != nil {
		return err
	}
	defer loadDB.Close()

	db, err := engine.Open(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := ptvtab.Register(db, ptvtab.NewCatalog(ptvtab.StoreLoader(s))); err != nil {
		return err
	}
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	ddl := fmt.Sprintf(`CREATE VIRTUAL TABLE temp.q USING %s(index=%s)`, ptvtab.ModuleName, *kind)
	if _, err := conn.ExecContext(ctx, ddl); err != nil {
		return err
	}

	rows, err := conn.QueryContext(ctx, *query)
	if err != nil {
		return err
	}
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		cells := make([]string, len(vals))
		for i, v := range vals {
			cells[i] = fmt.Sprint(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return tw.Flush()
}

func runServe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", ":8080", "listen `address`")
	in := fs.String("in", "", "preload points from `file`")
	kind := fs.String("index", "kd", "index backend, kd or brute")
	if err := fs.Parse(args); err != nil {
		return err
	}
	idx, err := loadIndex(*in, "index="+*kind)
	if err != nil {
		return err
	}
	return rest.NewServer(idx, logger).Run(ctx, *addr)
}
