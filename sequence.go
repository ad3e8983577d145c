package clip

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ClipStatus classifies a point set against a clip region without cutting it.
type ClipStatus int

const (
	// StatusTrivialAccept means all points are inside some convex member.
	StatusTrivialAccept ClipStatus = iota
	// StatusClipRequired means the points straddle at least one plane.
	StatusClipRequired
	// StatusTrivialReject means no member contains any part of the point set.
	StatusTrivialReject
)

func (s ClipStatus) String() string {
	switch s {
	case StatusTrivialAccept:
		return "TrivialAccept"
	case StatusClipRequired:
		return "ClipRequired"
	}
	return "TrivialReject"
}

// PointSetSingleClipStatus classifies the point set against a union of convex
// sets. Member order is the evaluation order and the first member containing
// all points short-circuits to a trivial accept.
func PointSetSingleClipStatus(points []mgl64.Vec3, planeSets UnionOfConvexClipPlaneSets, tol float64) ClipStatus {
	if len(points) == 0 {
		return StatusTrivialReject
	}
	split := false
	for _, member := range planeSets {
		allOutside := false
		anyOutside := false
		memberSplit := false
		for _, plane := range member {
			nIn, nOut := 0, 0
			for _, p := range points {
				h := plane.Altitude(p)
				if h < -tol {
					nIn++
				} else if tol < h {
					nOut++
				}
			}
			if nIn == 0 {
				allOutside = true
				break
			}
			if 0 < nOut {
				anyOutside = true
				memberSplit = true
			}
		}
		if allOutside {
			continue
		} else if !anyOutside {
			return StatusTrivialAccept
		} else if memberSplit {
			split = true
		}
	}
	if split {
		return StatusClipRequired
	}
	return StatusTrivialReject
}

// FragmentAction routes fragments produced by a clip stage.
type FragmentAction int

const (
	// AcceptIn finalizes a fragment into the accepted-inside list.
	AcceptIn FragmentAction = iota
	// AcceptOut finalizes a fragment into the accepted-outside list.
	AcceptOut
	// PassToNextStep forwards a fragment as a candidate for the next stage.
	PassToNextStep
)

func routeFragments(frags []Fragment, action FragmentAction, acceptedIn, acceptedOut, next *[]Fragment, arena *Arena) {
	var dst *[]Fragment
	switch action {
	case AcceptIn:
		dst = acceptedIn
	case AcceptOut:
		dst = acceptedOut
	default:
		dst = next
	}
	if dst == nil {
		for _, f := range frags {
			arena.Release(f)
		}
		return
	}
	*dst = append(*dst, frags...)
}

// DoPolygonClipSequence runs the polygon through the clippers in order. At
// each stage every live candidate is split into its inside and outside parts,
// which are routed per inAction and outAction; fragments routed to an accept
// list are final while PassToNextStep keeps them as candidates for the next
// stage. Candidates surviving all stages are routed per finalAction, with
// PassToNextStep meaning finalCandidates.
//
// When a destination list gained nothing on one side, the fragments gained on
// the other side are replaced by a single copy of the original polygon.
// Downstream callers rely on "no real clipping occurred" returning the input
// unchanged, so this is a correctness requirement rather than an optimization.
func DoPolygonClipSequence(xyz []mgl64.Vec3, clippers []Clipper, acceptedIn, acceptedOut, finalCandidates *[]Fragment, inAction, outAction, finalAction FragmentAction, arena *Arena) {
	nIn0, nOut0 := destLen(acceptedIn), destLen(acceptedOut)

	candidates := []Fragment{arena.GrabCopy(xyz)}
	for _, c := range clippers {
		pc, ok := c.(PolygonClipper)
		if !ok {
			continue
		}
		var next []Fragment
		for _, frag := range candidates {
			var in, out []Fragment
			pc.AppendPolygonClip(frag, &in, &out, arena)
			arena.Release(frag)
			routeFragments(in, inAction, acceptedIn, acceptedOut, &next, arena)
			routeFragments(out, outAction, acceptedIn, acceptedOut, &next, arena)
		}
		candidates = next
		if len(candidates) == 0 {
			break
		}
	}
	routeFragments(candidates, finalAction, acceptedIn, acceptedOut, finalCandidates, arena)

	restoreSingleton(xyz, acceptedIn, nIn0, acceptedOut, nOut0, arena)
}

// restoreSingleton collapses the gained fragments on one side to a single copy
// of the original polygon when the other side gained nothing.
func restoreSingleton(xyz []mgl64.Vec3, acceptedIn *[]Fragment, nIn0 int, acceptedOut *[]Fragment, nOut0 int, arena *Arena) {
	collapse := func(dst *[]Fragment, n0 int) {
		gained := (*dst)[n0:]
		for _, f := range gained {
			arena.Release(f)
		}
		*dst = append((*dst)[:n0], arena.GrabCopy(xyz))
	}
	inGained := acceptedIn != nil && nIn0 < len(*acceptedIn)
	outGained := acceptedOut != nil && nOut0 < len(*acceptedOut)
	if inGained && !outGained {
		collapse(acceptedIn, nIn0)
	} else if outGained && !inGained {
		collapse(acceptedOut, nOut0)
	}
}

func destLen(dst *[]Fragment) int {
	if dst == nil {
		return 0
	}
	return len(*dst)
}

// DoPolygonClipParitySequence composes the clippers by even-odd parity: a
// piece found inside a stage flips its running classification instead of being
// finally accepted. Two candidate lists track the current in and out
// classifications and swap roles at each stage; the surviving lists are read
// off after the last stage.
func DoPolygonClipParitySequence(xyz []mgl64.Vec3, clippers []Clipper, acceptedIn, acceptedOut *[]Fragment, arena *Arena) {
	nIn0, nOut0 := destLen(acceptedIn), destLen(acceptedOut)

	var curIn []Fragment
	curOut := []Fragment{arena.GrabCopy(xyz)}
	for _, c := range clippers {
		pc, ok := c.(PolygonClipper)
		if !ok {
			continue
		}
		var nextIn, nextOut []Fragment
		for _, frag := range curIn {
			// the part inside this clipper flips to even crossing count
			pc.AppendPolygonClip(frag, &nextOut, &nextIn, arena)
			arena.Release(frag)
		}
		for _, frag := range curOut {
			pc.AppendPolygonClip(frag, &nextIn, &nextOut, arena)
			arena.Release(frag)
		}
		curIn, curOut = nextIn, nextOut
	}
	if acceptedIn != nil {
		*acceptedIn = append(*acceptedIn, curIn...)
	} else {
		arena.ReleaseAll(&curIn)
	}
	if acceptedOut != nil {
		*acceptedOut = append(*acceptedOut, curOut...)
	} else {
		arena.ReleaseAll(&curOut)
	}

	restoreSingleton(xyz, acceptedIn, nIn0, acceptedOut, nOut0, arena)
}
