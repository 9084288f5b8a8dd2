package kdtree

import (
	"errors"
	"math"
	"sort"
	"testing"

	gkd "gonum.org/v1/gonum/spatial/kdtree"

	"github.com/viant/pointset/geom"
	"github.com/viant/pointset/index"
	"github.com/viant/pointset/index/bruteforce"
	"github.com/viant/pointset/internal/gen"
)

var tutorialPoints = []geom.Point{
	{X: 0.7, Y: 0.2}, // A
	{X: 0.5, Y: 0.4}, // B
	{X: 0.2, Y: 0.3}, // C
	{X: 0.4, Y: 0.7}, // D
	{X: 0.9, Y: 0.6}, // E
}

func build(t testing.TB, idx index.PointIndex, points []geom.Point) {
	t.Helper()
	for i := range points {
		if err := idx.Insert(&points[i]); err != nil {
			t.Fatalf("Insert(%v) failed: %v", points[i], err)
		}
	}
}

func TestTutorialSet(t *testing.T) {
	idx := New()
	build(t, idx, tutorialPoints)
	if idx.Size() != 5 || idx.IsEmpty() {
		t.Fatalf("Size = %d, IsEmpty = %v", idx.Size(), idx.IsEmpty())
	}
	for i := range tutorialPoints {
		ok, err := idx.Contains(&tutorialPoints[i])
		if err != nil || !ok {
			t.Errorf("Contains(%v) = %v, %v", tutorialPoints[i], ok, err)
		}
	}
	if ok, _ := idx.Contains(&geom.Point{X: 0.1, Y: 0.1}); ok {
		t.Errorf("Contains(0.1, 0.1) = true")
	}
	// pre-order mirrors the documented shape: A, B, C, D, E
	got := idx.Points()
	for i := range tutorialPoints {
		if !got[i].Equal(tutorialPoints[i]) {
			t.Fatalf("pre-order = %v, want %v", got, tutorialPoints)
		}
	}
}

func TestRangeScenario(t *testing.T) {
	idx := New()
	build(t, idx, tutorialPoints)
	got, err := idx.Range(&geom.Rect{XMin: 0.1, YMin: 0.1, XMax: 0.5, YMax: 0.5})
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if len(got) != 2 || !got[0].Equal(tutorialPoints[1]) || !got[1].Equal(tutorialPoints[2]) {
		t.Fatalf("Range = %v, want [B C]", got)
	}
}

func TestNearestScenario(t *testing.T) {
	idx := New()
	build(t, idx, tutorialPoints)
	testCases := []struct {
		q    geom.Point
		want geom.Point
	}{
		{geom.Point{X: 0.72, Y: 0.18}, tutorialPoints[0]},
		{geom.Point{X: 0.5, Y: 0.5}, tutorialPoints[1]},
	}
	for _, tc := range testCases {
		got, err := idx.Nearest(&tc.q)
		if err != nil || got == nil || !got.Equal(tc.want) {
			t.Errorf("Nearest(%v) = %v, %v; want %v", tc.q, got, err, tc.want)
		}
	}
}

func TestDuplicateIsNoOp(t *testing.T) {
	idx := New()
	p := geom.Point{X: 0.3, Y: 0.3}
	build(t, idx, []geom.Point{p, p})
	if idx.Size() != 1 || idx.Height() != 1 {
		t.Fatalf("Size = %d, Height = %d; want 1, 1", idx.Size(), idx.Height())
	}

	// re-inserting a whole set keeps the shape
	full := New()
	build(t, full, tutorialPoints)
	before := full.Points()
	build(t, full, tutorialPoints)
	after := full.Points()
	if len(before) != len(after) {
		t.Fatalf("Size changed from %d to %d", len(before), len(after))
	}
	for i := range before {
		if !before[i].Equal(after[i]) {
			t.Fatalf("shape changed: %v vs %v", before, after)
		}
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
	if kn, err := idx.KNearest(&geom.Point{}, 3); err != nil || kn != nil {
		t.Fatalf("KNearest on empty = %v, %v", kn, err)
	}
}

func TestCollinearOnSplit(t *testing.T) {
	idx := New()
	lo, hi := geom.Point{X: 0.5, Y: 0.2}, geom.Point{X: 0.5, Y: 0.8}
	build(t, idx, []geom.Point{lo, hi})
	if idx.Size() != 2 {
		t.Fatalf("Size = %d, want 2", idx.Size())
	}
	for _, p := range []geom.Point{lo, hi} {
		p := p
		if ok, _ := idx.Contains(&p); !ok {
			t.Fatalf("Contains(%v) = false", p)
		}
	}
}

func TestNilArguments(t *testing.T) {
	idx := New()
	build(t, idx, tutorialPoints)
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
	if _, err := idx.KNearest(nil, 2); !errors.Is(err, index.ErrInvalidArgument) {
		t.Errorf("KNearest(nil) err = %v", err)
	}
	if _, err := New().Nearest(nil); !errors.Is(err, index.ErrInvalidArgument) {
		t.Errorf("Nearest(nil) on empty err = %v", err)
	}
}

func sorted(points []geom.Point) []geom.Point {
	out := append([]geom.Point(nil), points...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// TestAgainstBruteForce cross-checks every query against the brute-force
// index on continuous and on coarse grids, where equal coordinates abound.
func TestAgainstBruteForce(t *testing.T) {
	for _, steps := range []uint32{0, 16, 4} {
		g := gen.New(2024+steps, steps)
		points := g.Points(1500)
		kd, brute := New(), bruteforce.New()
		build(t, kd, points)
		build(t, brute, points)
		if kd.Size() != brute.Size() {
			t.Fatalf("steps=%d: Size %d vs %d", steps, kd.Size(), brute.Size())
		}
		for q := 0; q < 300; q++ {
			rect := g.Rect()
			got, _ := kd.Range(&rect)
			want, _ := brute.Range(&rect)
			got = sorted(got)
			if len(got) != len(want) {
				t.Fatalf("steps=%d: Range(%v) returned %d points, want %d", steps, rect, len(got), len(want))
			}
			for i := range want {
				if !got[i].Equal(want[i]) {
					t.Fatalf("steps=%d: Range(%v) mismatch at %d: %v vs %v", steps, rect, i, got[i], want[i])
				}
			}

			p := g.Point()
			kn, _ := kd.Nearest(&p)
			bn, _ := brute.Nearest(&p)
			if kn.DistanceSquaredTo(p) != bn.DistanceSquaredTo(p) {
				t.Fatalf("steps=%d: Nearest(%v) = %v, brute %v", steps, p, kn, bn)
			}
			if ok, _ := brute.Contains(kn); !ok {
				t.Fatalf("steps=%d: Nearest returned unknown point %v", steps, kn)
			}
			kc, _ := kd.Contains(&p)
			bc, _ := brute.Contains(&p)
			if kc != bc {
				t.Fatalf("steps=%d: Contains(%v) = %v, brute %v", steps, p, kc, bc)
			}

			kk, _ := kd.KNearest(&p, 7)
			bk, _ := brute.KNearest(&p, 7)
			if len(kk) != len(bk) {
				t.Fatalf("steps=%d: KNearest sizes %d vs %d", steps, len(kk), len(bk))
			}
			for i := range bk {
				if kk[i].DistanceSquaredTo(p) != bk[i].DistanceSquaredTo(p) {
					t.Fatalf("steps=%d: KNearest(%v)[%d] = %v, brute %v", steps, p, i, kk[i], bk[i])
				}
			}
		}
	}
}

// TestAgainstGonum checks nearest distances against gonum's k-d tree.
func TestAgainstGonum(t *testing.T) {
	g := gen.New(99, 0)
	points := g.Points(3000)
	idx := New()
	build(t, idx, points)
	ref := make(gkd.Points, 0, len(points))
	for _, p := range points {
		ref = append(ref, gkd.Point{p.X, p.Y})
	}
	tree := gkd.New(ref, false)
	for q := 0; q < 500; q++ {
		p := g.Point()
		got, err := idx.Nearest(&p)
		if err != nil {
			t.Fatalf("Nearest failed: %v", err)
		}
		_, want := tree.Nearest(gkd.Point{p.X, p.Y})
		if d := got.DistanceSquaredTo(p); math.Abs(d-want) > 1e-15 {
			t.Fatalf("Nearest(%v) dist² = %v, gonum %v", p, d, want)
		}
	}
}

func BenchmarkInsert(b *testing.B) {
	points := gen.New(1, 0).Points(100000)
	b.Run("kdtree", func(b *testing.B) {
		for n := 0; n < b.N; n++ {
			build(b, New(), points)
		}
	})
	b.Run("bruteforce", func(b *testing.B) {
		for n := 0; n < b.N; n++ {
			build(b, bruteforce.New(), points)
		}
	})
}

func BenchmarkNearest(b *testing.B) {
	g := gen.New(5, 0)
	points := g.Points(100000)
	queries := g.Points(1024)
	for _, bc := range []struct {
		name string
		idx  index.PointIndex
	}{{"kdtree", New()}, {"bruteforce", bruteforce.New()}} {
		build(b, bc.idx, points)
		b.Run(bc.name, func(b *testing.B) {
			for n := 0; n < b.N; n++ {
				_, _ = bc.idx.Nearest(&queries[n%len(queries)])
			}
		})
	}
}

func BenchmarkRange(b *testing.B) {
	g := gen.New(6, 0)
	points := g.Points(100000)
	rects := make([]geom.Rect, 1024)
	for i := range rects {
		p := g.Point()
		rects[i] = geom.Rect{XMin: p.X, YMin: p.Y, XMax: math.Min(1, p.X+0.05), YMax: math.Min(1, p.Y+0.05)}
	}
	for _, bc := range []struct {
		name string
		idx  index.PointIndex
	}{{"kdtree", New()}, {"bruteforce", bruteforce.New()}} {
		build(b, bc.idx, points)
		b.Run(bc.name, func(b *testing.B) {
			for n := 0; n < b.N; n++ {
				_, _ = bc.idx.Range(&rects[n%len(rects)])
			}
		})
	}
}
