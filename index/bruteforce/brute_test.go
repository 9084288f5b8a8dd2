package bruteforce

import (
	"errors"
	"image/color"
	"testing"

	"github.com/viant/pointset/geom"
	"github.com/viant/pointset/index"
)

func tutorial(t *testing.T) *Index {
	t.Helper()
	idx := New()
	for _, p := range []geom.Point{{X: 0.7, Y: 0.2}, {X: 0.5, Y: 0.4}, {X: 0.2, Y: 0.3}, {X: 0.4, Y: 0.7}, {X: 0.9, Y: 0.6}} {
		p := p
		if err := idx.Insert(&p); err != nil {
			t.Fatalf("Insert(%v) failed: %v", p, err)
		}
	}
	return idx
}

func TestInsertAndContains(t *testing.T) {
	idx := tutorial(t)
	if idx.Size() != 5 || idx.IsEmpty() {
		t.Fatalf("Size = %d, IsEmpty = %v", idx.Size(), idx.IsEmpty())
	}
	ok, err := idx.Contains(&geom.Point{X: 0.4, Y: 0.7})
	if err != nil || !ok {
		t.Fatalf("Contains(D) = %v, %v", ok, err)
	}
	ok, err = idx.Contains(&geom.Point{X: 0.1, Y: 0.1})
	if err != nil || ok {
		t.Fatalf("Contains(0.1,0.1) = %v, %v", ok, err)
	}
	p := geom.Point{X: 0.7, Y: 0.2}
	if err := idx.Insert(&p); err != nil {
		t.Fatalf("duplicate Insert failed: %v", err)
	}
	if idx.Size() != 5 {
		t.Fatalf("duplicate insert changed Size to %d", idx.Size())
	}
}

func TestPointsOrdered(t *testing.T) {
	got := tutorial(t).Points()
	for i := 1; i < len(got); i++ {
		if !got[i-1].Less(got[i]) {
			t.Fatalf("Points not in (x, y) order: %v", got)
		}
	}
}

func TestRange(t *testing.T) {
	idx := tutorial(t)
	got, err := idx.Range(&geom.Rect{XMin: 0.1, YMin: 0.1, XMax: 0.5, YMax: 0.5})
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	want := []geom.Point{{X: 0.2, Y: 0.3}, {X: 0.5, Y: 0.4}}
	if len(got) != len(want) {
		t.Fatalf("Range = %v, want %v", got, want)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("Range = %v, want %v", got, want)
		}
	}
}

func TestNearest(t *testing.T) {
	idx := tutorial(t)
	testCases := []struct {
		q, want geom.Point
	}{
		{geom.Point{X: 0.72, Y: 0.18}, geom.Point{X: 0.7, Y: 0.2}},
		{geom.Point{X: 0.5, Y: 0.5}, geom.Point{X: 0.5, Y: 0.4}},
	}
	for _, tc := range testCases {
		got, err := idx.Nearest(&tc.q)
		if err != nil || got == nil || !got.Equal(tc.want) {
			t.Errorf("Nearest(%v) = %v, %v; want %v", tc.q, got, err, tc.want)
		}
	}

	// equidistant: the first in (x, y) order wins
	tie := New()
	for _, p := range []geom.Point{{X: 0.6, Y: 0.5}, {X: 0.4, Y: 0.5}} {
		p := p
		_ = tie.Insert(&p)
	}
	got, _ := tie.Nearest(&geom.Point{X: 0.5, Y: 0.5})
	if got == nil || !got.Equal(geom.Point{X: 0.4, Y: 0.5}) {
		t.Fatalf("tie Nearest = %v, want (0.4, 0.5)", got)
	}
}

func TestKNearest(t *testing.T) {
	idx := tutorial(t)
	got, err := idx.KNearest(&geom.Point{X: 0.5, Y: 0.5}, 2)
	if err != nil {
		t.Fatalf("KNearest failed: %v", err)
	}
	if len(got) != 2 || !got[0].Equal(geom.Point{X: 0.5, Y: 0.4}) || !got[1].Equal(geom.Point{X: 0.4, Y: 0.7}) {
		t.Fatalf("KNearest = %v", got)
	}
	if got, _ := idx.KNearest(&geom.Point{}, 0); got != nil {
		t.Fatalf("KNearest(k=0) = %v", got)
	}
}

func TestEmpty(t *testing.T) {
	idx := New()
	if !idx.IsEmpty() || idx.Size() != 0 {
		t.Fatalf("new index not empty")
	}
	got, err := idx.Nearest(&geom.Point{X: 0.5, Y: 0.5})
	if err != nil || got != nil {
		t.Fatalf("Nearest on empty = %v, %v", got, err)
	}
	unit := geom.UnitSquare()
	pts, err := idx.Range(&unit)
	if err != nil || len(pts) != 0 {
		t.Fatalf("Range on empty = %v, %v", pts, err)
	}
	if idx.Points() != nil {
		t.Fatalf("Points on empty should be nil")
	}
}

func TestNilArguments(t *testing.T) {
	idx := tutorial(t)
	if err := idx.Insert(nil); !errors.Is(err, index.ErrInvalidArgument) {
		t.Errorf("Insert(nil) err = %v", err)
	}
	if _, err := idx.Contains(nil); !errors.Is(err, index.ErrInvalidArgument) {
		t.Errorf("Contains(nil) err = %v", err)
	}
	if _, err := idx.Range(nil); !errors.Is(err, index.ErrInvalidArgument) {
		t.Errorf("Range(nil) err = %v", err)
	}
	if _, err := idx.Nearest(nil); !errors.Is(err, index.ErrInvalidArgument) {
		t.Errorf("Nearest(nil) err = %v", err)
	}
	if _, err := idx.KNearest(nil, 3); !errors.Is(err, index.ErrInvalidArgument) {
		t.Errorf("KNearest(nil) err = %v", err)
	}
}

type countingCanvas struct{ points, lines int }

func (c *countingCanvas) SetPenColor(color.Color) {}
func (c *countingCanvas) SetPenRadius(float64)    {}
func (c *countingCanvas) Point(float64, float64)  { c.points++ }
func (c *countingCanvas) Line(_, _, _, _ float64) { c.lines++ }

func TestDraw(t *testing.T) {
	c := &countingCanvas{}
	tutorial(t).Draw(c)
	if c.points != 5 || c.lines != 0 {
		t.Fatalf("Draw drew %d points and %d lines", c.points, c.lines)
	}
	New(WithPalette(index.MonoPalette())).Draw(nil)
}
