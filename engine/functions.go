package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"sync"

	sqlite "modernc.org/sqlite"

	"github.com/viant/pointset/geom"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterGeometryFunctions registers pt_dist2 and rect_contains with the
// driver so they are available on new connections opened after this call.
// Existing open connections will not see the functions. Calling it more than
// once is harmless.
func RegisterGeometryFunctions(_ *sql.DB) error {
	registerOnce.Do(func() {
		if err := sqlite.RegisterDeterministicScalarFunction("pt_dist2", 4, ptDist2Impl); err != nil {
			registerErr = fmt.Errorf("engine: register pt_dist2: %w", err)
			return
		}
		if err := sqlite.RegisterDeterministicScalarFunction("rect_contains", 6, rectContainsImpl); err != nil {
			registerErr = fmt.Errorf("engine: register rect_contains: %w", err)
		}
	})
	return registerErr
}

// asFloat converts a SQL numeric argument. ok is false for NULL.
func asFloat(name string, arg driver.Value) (v float64, ok bool, err error) {
	switch x := arg.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return x, true, nil
	case int64:
		return float64(x), true, nil
	default:
		return 0, false, fmt.Errorf("%s: unsupported argument type %T; want REAL", name, arg)
	}
}

func asFloats(name string, args []driver.Value, want int) ([]float64, bool, error) {
	if len(args) != want {
		return nil, false, fmt.Errorf("%s: expected %d arguments, got %d", name, want, len(args))
	}
	out := make([]float64, want)
	for i, a := range args {
		v, ok, err := asFloat(name, a)
		if err != nil || !ok {
			return nil, false, err
		}
		out[i] = v
	}
	return out, true, nil
}

// ptDist2Impl implements pt_dist2(x1, y1, x2, y2) -> REAL, the squared
// Euclidean distance. Any NULL argument yields NULL.
func ptDist2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	v, ok, err := asFloats("pt_dist2", args, 4)
	if err != nil || !ok {
		return nil, err
	}
	a := geom.Point{X: v[0], Y: v[1]}
	return a.DistanceSquaredTo(geom.Point{X: v[2], Y: v[3]}), nil
}

// rectContainsImpl implements rect_contains(xmin, ymin, xmax, ymax, x, y) ->
// INT, 1 when the point lies in the closed rectangle and 0 otherwise.
func rectContainsImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	v, ok, err := asFloats("rect_contains", args, 6)
	if err != nil || !ok {
		return nil, err
	}
	r := geom.Rect{XMin: v[0], YMin: v[1], XMax: v[2], YMax: v[3]}
	if r.Contains(geom.Point{X: v[4], Y: v[5]}) {
		return int64(1), nil
	}
	return int64(0), nil
}
