package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/viant/pointset/geom"
	"github.com/viant/pointset/index"
	"github.com/viant/pointset/pointset"
	"github.com/viant/pointset/store"
)

const usage = `usage: pointset <command> [flags]

commands:
  query   load points and run range / nearest queries
  draw    render the kd-tree partition of a point file to PNG
  gen     write random points
  import  store a point file as a dataset in SQLite
  sql     run SQL against a store, with the pt_query virtual table
  bench   compare the kd-tree with the brute-force index
  serve   expose an index over HTTP

Run "pointset <command> -h" for command flags.
`

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "query":
		err = runQuery(args, os.Stdout)
	case "draw":
		err = runDraw(args)
	case "gen":
		err = runGen(args, os.Stdout)
	case "import":
		err = runImport(ctx, args)
	case "sql":
		err = runSQL(ctx, args, os.Stdout)
	case "bench":
		err = runBench(args, os.Stdout)
	case "serve":
		err = runServe(ctx, args)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "pointset: unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Error("command failed", "command", cmd, "err", err)
		os.Exit(1)
	}
}

// readPointsFile reads a point file, "-" meaning stdin.
func readPointsFile(path string) ([]geom.Point, error) {
	if path == "" {
		return nil, fmt.Errorf("missing -in file")
	}
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return store.ReadPoints(r)
}

// loadIndex builds an index from option strings and fills it from path.
func loadIndex(path string, opts ...string) (index.PointIndex, error) {
	idx, err := pointset.Open(opts...)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return idx, nil
	}
	pts, err := readPointsFile(path)
	if err != nil {
		return nil, err
	}
	n, err := pointset.InsertAll(idx, pts)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded points", "file", path, "read", len(pts), "distinct", n)
	return idx, nil
}

// parseFloats reads want comma separated numbers.
func parseFloats(s string, want int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("%q: want %d comma separated values", s, want)
	}
	out := make([]float64, want)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}
