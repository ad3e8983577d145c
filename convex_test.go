package clip

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tdewolff/test"
)

func unitBox() ConvexClipPlaneSet {
	return ConvexSetFromRange(NewRange3(mgl64.Vec3{}, mgl64.Vec3{1.0, 1.0, 1.0}))
}

func TestConvexSetFromRange(t *testing.T) {
	box := unitBox()
	test.T(t, len(box), 6)
	test.T(t, box.IsPointOnOrInside(mgl64.Vec3{0.5, 0.5, 0.5}, Epsilon), true)
	test.T(t, box.IsPointOnOrInside(mgl64.Vec3{0.0, 1.0, 0.5}, Epsilon), true)
	test.T(t, box.IsPointOnOrInside(mgl64.Vec3{1.5, 0.5, 0.5}, Epsilon), false)
	test.T(t, len(ConvexSetFromRange(NullRange3())), 0)
}

func TestConvexSetFromConvexPolygonXY(t *testing.T) {
	square := []Point{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}, {0.0, 1.0}}
	s, ok := ConvexSetFromConvexPolygonXY(square)
	test.T(t, ok, true)
	test.T(t, len(s), 4)
	// the prism is unbounded in z
	test.T(t, s.IsPointOnOrInside(mgl64.Vec3{0.5, 0.5, 7.0}, Epsilon), true)
	test.T(t, s.IsPointOnOrInside(mgl64.Vec3{1.5, 0.5, 0.0}, Epsilon), false)

	_, ok = ConvexSetFromConvexPolygonXY(square[:2])
	test.T(t, ok, false)
}

func TestAnnounceClippedSegmentIntervals(t *testing.T) {
	box := unitBox()
	var tests = []struct {
		a, b   mgl64.Vec3
		hit    bool
		f0, f1 float64
	}{
		{mgl64.Vec3{0.2, 0.5, 0.5}, mgl64.Vec3{0.8, 0.5, 0.5}, true, 0.0, 1.0},
		{mgl64.Vec3{-1.0, 0.5, 0.5}, mgl64.Vec3{2.0, 0.5, 0.5}, true, 1.0 / 3.0, 2.0 / 3.0},
		{mgl64.Vec3{2.0, 0.5, 0.5}, mgl64.Vec3{3.0, 0.5, 0.5}, false, 0.0, 0.0},
		{mgl64.Vec3{0.0, 0.0, 0.0}, mgl64.Vec3{0.0, 1.0, 0.0}, true, 0.0, 1.0},
		{mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0.5, 0.5, 2.0}, true, 0.0, 1.0 / 3.0},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			got0, got1 := -1.0, -1.0
			hit := box.AnnounceClippedSegmentIntervals(0.0, 1.0, tt.a, tt.b, func(f0, f1 float64) {
				got0, got1 = f0, f1
			})
			test.T(t, hit, tt.hit)
			if tt.hit {
				test.Float(t, got0, tt.f0)
				test.Float(t, got1, tt.f1)
			}
		})
	}
}

func TestAppendPolygonClipSplit(t *testing.T) {
	arena := &Arena{}
	half := ConvexClipPlaneSet{{mgl64.Vec3{1.0, 0.0, 0.0}, 0.5}}
	square := []mgl64.Vec3{{0.0, 0.0, 0.0}, {1.0, 0.0, 0.0}, {1.0, 1.0, 0.0}, {0.0, 1.0, 0.0}}

	var inside, outside []Fragment
	half.AppendPolygonClip(square, &inside, &outside, arena)
	test.T(t, len(inside), 1)
	test.T(t, len(outside), 1)
	test.Float(t, inside[0].AreaXY(), 0.5)
	test.Float(t, outside[0].AreaXY(), 0.5)
}

func TestAppendPolygonClipInside(t *testing.T) {
	arena := &Arena{}
	box := unitBox()
	poly := []mgl64.Vec3{{0.2, 0.2, 0.5}, {0.8, 0.2, 0.5}, {0.8, 0.8, 0.5}, {0.2, 0.8, 0.5}}

	var inside, outside []Fragment
	box.AppendPolygonClip(poly, &inside, &outside, arena)
	test.T(t, len(inside), 1)
	test.T(t, len(outside), 0)
	test.T(t, len(inside[0]), len(poly))
	test.Float(t, inside[0].AreaXY(), 0.36)
}

func TestAppendPolygonClipOutside(t *testing.T) {
	arena := &Arena{}
	box := unitBox()
	poly := []mgl64.Vec3{{2.0, 0.2, 0.5}, {3.0, 0.2, 0.5}, {3.0, 0.8, 0.5}, {2.0, 0.8, 0.5}}

	var inside, outside []Fragment
	box.AppendPolygonClip(poly, &inside, &outside, arena)
	test.T(t, len(inside), 0)
	test.T(t, len(outside), 1)
	test.T(t, len(outside[0]), len(poly))
}

func TestClipPolygon(t *testing.T) {
	box := unitBox()
	rect := []mgl64.Vec3{{-1.0, -1.0, 0.5}, {2.0, -1.0, 0.5}, {2.0, 2.0, 0.5}, {-1.0, 2.0, 0.5}}
	poly := box.ClipPolygon(rect)
	test.T(t, len(poly), 4)
	for _, p := range poly {
		test.T(t, box.IsPointOnOrInside(p, 1e-9), true)
	}
	test.T(t, len(box.ClipPolygon(rect[:2])), 0)
}

func TestHasIntersectionWithRay(t *testing.T) {
	box := unitBox()
	f, ok := box.HasIntersectionWithRay(Ray3{mgl64.Vec3{-5.0, 0.5, 0.5}, mgl64.Vec3{1.0, 0.0, 0.0}})
	test.T(t, ok, true)
	test.T(t, box.IsPointOnOrInside(Ray3{mgl64.Vec3{-5.0, 0.5, 0.5}, mgl64.Vec3{1.0, 0.0, 0.0}}.PointAt(f), Epsilon), true)

	_, ok = box.HasIntersectionWithRay(Ray3{mgl64.Vec3{5.0, 5.0, 5.0}, mgl64.Vec3{0.0, 0.0, 1.0}})
	test.T(t, ok, false)
}

func TestRangeOfIntersectionWithRange(t *testing.T) {
	box := unitBox()
	r := box.RangeOfIntersectionWithRange(NewRange3(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{2.0, 2.0, 2.0}))
	test.T(t, r.IsNull(), false)
	for i := 0; i < 3; i++ {
		test.Float(t, r.Min[i], 0.5)
		test.Float(t, r.Max[i], 1.0)
	}

	empty := box.RangeOfIntersectionWithRange(NewRange3(mgl64.Vec3{2.0, 2.0, 2.0}, mgl64.Vec3{3.0, 3.0, 3.0}))
	test.T(t, empty.IsNull(), true)
}
