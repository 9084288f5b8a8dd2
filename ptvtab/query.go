package ptvtab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/pointset/geom"
)

type opKind int

const (
	opRange opKind = iota + 1
	opNearest
	opKNearest
)

// query is a parsed MATCH argument.
type query struct {
	op      opKind
	dataset string
	k       int
	rect    geom.Rect
	point   geom.Point
}

// parseQuery reads one of
//
//	range <dataset> xmin ymin xmax ymax
//	nearest <dataset> x y
//	knearest <dataset> k x y
func parseQuery(s string) (query, error) {
	f := strings.Fields(s)
	if len(f) < 2 {
		return query{}, fmt.Errorf("ptvtab: malformed query %q", s)
	}
	q := query{dataset: f[1]}
	args := f[2:]
	switch strings.ToLower(f[0]) {
	case "range":
		v, err := floats(args, 4)
		if err != nil {
			return query{}, err
		}
		if q.rect, err = geom.NewRect(v[0], v[1], v[2], v[3]); err != nil {
			return query{}, fmt.Errorf("ptvtab: %w", err)
		}
		q.op = opRange
	case "nearest":
		v, err := floats(args, 2)
		if err != nil {
			return query{}, err
		}
		q.op, q.point = opNearest, geom.Point{X: v[0], Y: v[1]}
	case "knearest":
		if len(args) != 3 {
			return query{}, fmt.Errorf("ptvtab: knearest wants k x y, got %d values", len(args))
		}
		k, err := strconv.Atoi(args[0])
		if err != nil {
			return query{}, fmt.Errorf("ptvtab: knearest k: %w", err)
		}
		v, err := floats(args[1:], 2)
		if err != nil {
			return query{}, err
		}
		q.op, q.k, q.point = opKNearest, k, geom.Point{X: v[0], Y: v[1]}
	default:
		return query{}, fmt.Errorf("ptvtab: unknown query %q", f[0])
	}
	return q, nil
}

func floats(args []string, want int) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("ptvtab: want %d coordinates, got %d", want, len(args))
	}
	out := make([]float64, want)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("ptvtab: coordinate %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
