package main

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/viant/pointset/geom"
	"github.com/viant/pointset/index"
	"github.com/viant/pointset/internal/gen"
	"github.com/viant/pointset/pointset"
)

// timings summarises per-operation latencies in microseconds.
type timings []float64

func (t timings) summary() (mean, std, p50, p99 float64) {
	if len(t) == 0 {
		return 0, 0, 0, 0
	}
	sorted := append(timings(nil), t...)
	sort.Float64s(sorted)
	mean, std = stat.MeanStdDev(sorted, nil)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p99 = stat.Quantile(0.99, stat.Empirical, sorted, nil)
	return mean, std, p50, p99
}

func since(start time.Time) float64 {
	return float64(time.Since(start).Nanoseconds()) / 1e3
}

type benchResult struct {
	kind                    pointset.Kind
	insert, ranges, nearest timings
}

func benchKind(kind pointset.Kind, pts []geom.Point, rects []geom.Rect, queries []geom.Point) (benchResult, error) {
	res := benchResult{kind: kind}
	idx, err := pointset.New(kind)
	if err != nil {
		return res, err
	}
	res.insert = make(timings, 0, len(pts))
	for i := range pts {
		start := time.Now()
		if err := idx.Insert(&pts[i]); err != nil {
			return res, err
		}
		res.insert = append(res.insert, since(start))
	}
	if err := benchQueries(idx, &res, rects, queries); err != nil {
		return res, err
	}
	return res, nil
}

func benchQueries(idx index.PointIndex, res *benchResult, rects []geom.Rect, queries []geom.Point) error {
	res.ranges = make(timings, 0, len(rects))
	for i := range rects {
		start := time.Now()
		if _, err := idx.Range(&rects[i]); err != nil {
			return err
		}
		res.ranges = append(res.ranges, since(start))
	}
	res.nearest = make(timings, 0, len(queries))
	for i := range queries {
		start := time.Now()
		if _, err := idx.Nearest(&queries[i]); err != nil {
			return err
		}
		res.nearest = append(res.nearest, since(start))
	}
	return nil
}

func runBench(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	n := fs.Int("n", 100000, "number of points")
	q := fs.Int("q", 10000, "number of range and nearest queries")
	seed := fs.Uint("seed", 1, "random seed")
	brute := fs.Bool("brute", true, "include the brute-force index")
	if err := fs.Parse(args); err != nil {
		return err
	}
	g := gen.New(uint32(*seed), 0)
	pts := g.Points(*n)
	rects := make([]geom.Rect, *q)
	queries := make([]geom.Point, *q)
	for i := range rects {
		// Small query boxes keep range output proportional to density.
		c := g.Point()
		rects[i] = geom.Rect{XMin: c.X, YMin: c.Y, XMax: min(c.X+0.01, 1), YMax: min(c.Y+0.01, 1)}
		queries[i] = g.Point()
	}

	kinds := []pointset.Kind{pointset.KindKd}
	if *brute {
		kinds = append(kinds, pointset.KindBrute)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "index\top\tcount\tmean µs\tstd µs\tp50 µs\tp99 µs\t")
	for _, kind := range kinds {
		logger.Info("benchmarking", "index", kind, "points", *n, "queries", *q)
		res, err := benchKind(kind, pts, rects, queries)
		if err != nil {
			return err
		}
		for _, row := range []struct {
			op string
			t  timings
		}{{"insert", res.insert}, {"range", res.ranges}, {"nearest", res.nearest}} {
			mean, std, p50, p99 := row.t.summary()
			fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t\n", res.kind, row.op, len(row.t), mean, std, p50, p99)
		}
	}
	return tw.Flush()
}
