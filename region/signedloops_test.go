package region

import (
	"testing"

	"github.com/planargeom/clip"
	"github.com/tdewolff/test"
)

func TestConstructAllXYRegionLoops(t *testing.T) {
	sls := ConstructAllXYRegionLoops([][]clip.Point{square(0.0, 0.0, 1.0, 1.0)})
	test.T(t, len(sls), 1)

	sl := sls[0]
	test.T(t, len(sl.Positive), 1)
	test.Float(t, sl.Positive[0].Area(), 1.0)
	test.Float(t, sl.Negative.Area(), -1.0)
	test.T(t, len(sl.Slivers), 0)
	test.T(t, len(sl.LoopOfEdge), 8)

	positives, negatives := 0, 0
	for _, ref := range sl.LoopOfEdge {
		switch ref.Kind {
		case PositiveLoop:
			positives++
		case NegativeLoop:
			negatives++
		}
	}
	test.T(t, positives, 4)
	test.T(t, negatives, 4)
}

func TestConstructAllXYRegionLoopsCrossing(t *testing.T) {
	sls := ConstructAllXYRegionLoops([][]clip.Point{
		square(0.0, 0.0, 2.0, 2.0),
		square(1.0, 1.0, 3.0, 3.0),
	})
	test.T(t, len(sls), 1)

	// the full face decomposition keeps the lens that even-odd selection
	// would cancel
	sl := sls[0]
	test.T(t, len(sl.Positive), 3)
	area := 0.0
	for _, l := range sl.Positive {
		area += l.Area()
	}
	test.Float(t, area, 7.0)
	test.Float(t, sl.Negative.Area(), -7.0)
}

func TestConstructAllXYRegionLoopsNested(t *testing.T) {
	sls := ConstructAllXYRegionLoops([][]clip.Point{
		square(0.0, 0.0, 3.0, 3.0),
		square(1.0, 1.0, 2.0, 2.0),
	})
	test.T(t, len(sls), 2)
	for _, sl := range sls {
		test.T(t, len(sl.Positive), 1)
		test.T(t, sl.Negative.Area() < 0.0, true)
	}
}

func TestConstructAllXYRegionLoopsEmpty(t *testing.T) {
	test.T(t, len(ConstructAllXYRegionLoops(nil)), 0)
}
