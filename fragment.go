package clip

import (
	"github.com/go-gl/mathgl/mgl64"
)

// minFragmentVertices is the minimum vertex count for a fragment to be emitted
// by polygon clipping; shorter pieces are slivers and return to the arena.
const minFragmentVertices = 3

// Fragment is one connected polygon piece produced during clipping. A fragment
// is owned by exactly one of the live candidate list, an accepted list, or the
// arena free list; moving it between those transfers ownership.
type Fragment []mgl64.Vec3

// AreaXY returns the signed area of the fragment projected onto the XY plane,
// positive for counter clockwise order.
func (f Fragment) AreaXY() float64 {
	area := 0.0
	n := len(f)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += f[i][0]*f[j][1] - f[j][0]*f[i][1]
	}
	return area / 2.0
}

// CentroidXY returns the area centroid of the fragment projected onto the XY
// plane, falling back to the vertex mean for zero-area fragments.
func (f Fragment) CentroidXY() Point {
	area := 0.0
	var c Point
	n := len(f)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := f[i][0]*f[j][1] - f[j][0]*f[i][1]
		area += cross
		c.X += (f[i][0] + f[j][0]) * cross
		c.Y += (f[i][1] + f[j][1]) * cross
	}
	if Equal(area, 0.0) {
		for _, p := range f {
			c.X += p[0]
			c.Y += p[1]
		}
		return c.Mul(1.0 / float64(n))
	}
	return c.Mul(1.0 / (3.0 * area))
}

// Range returns the bounding range of the fragment.
func (f Fragment) Range() Range3 {
	return NewRange3(f...)
}

// Arena is a free list of fragment buffers so that clipping pipelines reuse
// allocations. It is not safe for concurrent use; an arena belongs to a single
// top-level call.
type Arena struct {
	free []Fragment
}

// Grab returns an empty fragment buffer, reusing a released one if available.
func (a *Arena) Grab() Fragment {
	if n := len(a.free); 0 < n {
		f := a.free[n-1]
		a.free = a.free[:n-1]
		return f[:0]
	}
	return make(Fragment, 0, 8)
}

// GrabCopy returns a fragment holding a copy of the given points.
func (a *Arena) GrabCopy(pts []mgl64.Vec3) Fragment {
	return append(a.Grab(), pts...)
}

// Release returns a fragment to the free list.
func (a *Arena) Release(f Fragment) {
	if f != nil {
		a.free = append(a.free, f)
	}
}

// ReleaseAll returns all fragments to the free list and empties the slice.
func (a *Arena) ReleaseAll(fs *[]Fragment) {
	for _, f := range *fs {
		a.Release(f)
	}
	*fs = (*fs)[:0]
}
