package clip

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tdewolff/test"
)

func TestFragmentAreaXY(t *testing.T) {
	ccw := Fragment{{0.0, 0.0, 0.0}, {1.0, 0.0, 0.0}, {1.0, 1.0, 0.0}, {0.0, 1.0, 0.0}}
	test.Float(t, ccw.AreaXY(), 1.0)

	cw := Fragment{{0.0, 0.0, 0.0}, {0.0, 1.0, 0.0}, {1.0, 1.0, 0.0}, {1.0, 0.0, 0.0}}
	test.Float(t, cw.AreaXY(), -1.0)
}

func TestFragmentCentroidXY(t *testing.T) {
	f := Fragment{{0.0, 0.0, 0.0}, {2.0, 0.0, 0.0}, {2.0, 2.0, 0.0}, {0.0, 2.0, 0.0}}
	test.T(t, f.CentroidXY(), Point{1.0, 1.0})

	line := Fragment{{0.0, 0.0, 0.0}, {2.0, 0.0, 0.0}}
	test.T(t, line.CentroidXY(), Point{1.0, 0.0})
}

func TestFragmentRange(t *testing.T) {
	f := Fragment{{0.0, 0.0, 0.0}, {1.0, 2.0, 3.0}}
	r := f.Range()
	test.T(t, r.Min, mgl64.Vec3{0.0, 0.0, 0.0})
	test.T(t, r.Max, mgl64.Vec3{1.0, 2.0, 3.0})
}

func TestArenaReuse(t *testing.T) {
	arena := &Arena{}
	f := arena.Grab()
	f = append(f, mgl64.Vec3{1.0, 2.0, 3.0})
	arena.Release(f)

	g := arena.Grab()
	test.T(t, len(g), 0)
	test.T(t, 0 < cap(g), true)

	src := []mgl64.Vec3{{1.0, 0.0, 0.0}, {0.0, 1.0, 0.0}}
	cp := arena.GrabCopy(src)
	cp[0] = mgl64.Vec3{9.0, 9.0, 9.0}
	test.T(t, src[0], mgl64.Vec3{1.0, 0.0, 0.0})

	fs := []Fragment{g, cp}
	arena.ReleaseAll(&fs)
	test.T(t, len(fs), 0)
}
