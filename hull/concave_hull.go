package hull

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"

	. "github.com/ttpr0/go-isochrone/util"
)

//*******************************************
// concave hull
//*******************************************

const (
	DEFAULT_CONCAVITY        = 2.0
	DEFAULT_LENGTH_THRESHOLD = 0.0
)

// _HullNode is one vertex of the circular hull list. Each node also
// stands for the segment from its point to the next node's point in the
// segment index.
type _HullNode struct {
	point orb.Point
	prev  *_HullNode
	next  *_HullNode
}

// ConcaveHull refines the convex hull of the point cloud by repeatedly
// pulling hull segments inward to nearby interior points.
//
// A point is spliced into a segment if its nearer segment endpoint is at
// most segment-length/concavity away and connecting it does not cross any
// other hull segment. Smaller concavity values produce a more concave
// shape. Segments shorter than length_threshold are never subdivided.
//
// The ring is counter-clockwise without a closing duplicate.
func ConcaveHull(points []orb.Point, concavity float64, length_threshold float64) orb.Ring {
	hull := ConvexHull(points)
	if len(hull) < 3 {
		return hull
	}

	on_hull := NewDict[orb.Point, bool](len(hull))
	for _, p := range hull {
		on_hull[p] = true
	}

	// interior points, indexed for nearest-to-segment queries
	var point_tree rtree.RTreeG[orb.Point]
	for _, p := range points {
		if !on_hull.ContainsKey(p) {
			point_tree.Insert([2]float64(p), [2]float64(p), p)
		}
	}

	// circular list of hull vertices plus the segment index
	var seg_tree rtree.RTreeG[*_HullNode]
	first := &_HullNode{point: hull[0]}
	last := first
	for _, p := range hull[1:] {
		node := &_HullNode{point: p, prev: last}
		last.next = node
		last = node
	}
	last.next = first
	first.prev = last
	node := first
	for {
		bmin, bmax := _SegBox(node.point, node.next.point)
		seg_tree.Insert(bmin, bmax, node)
		node = node.next
		if node == first {
			break
		}
	}

	sq_concavity := concavity * concavity
	sq_threshold := length_threshold * length_threshold

	// walk segments until a full cycle passes without a splice
	segcount := len(hull)
	stable := 0
	node = first
	for stable < segcount {
		start_pt := node.point
		end_pt := node.next.point
		sq_len := _SqDist(start_pt, end_pt)
		if sq_len < sq_threshold {
			node = node.next
			stable += 1
			continue
		}
		max_sq_len := sq_len / sq_concavity
		p, ok := _FindCandidate(&point_tree, &seg_tree, node, max_sq_len, on_hull)
		if ok && math.Min(_SqDist(p, start_pt), _SqDist(p, end_pt)) <= max_sq_len {
			point_tree.Delete([2]float64(p), [2]float64(p), p)
			bmin, bmax := _SegBox(start_pt, end_pt)
			seg_tree.Delete(bmin, bmax, node)

			mid := &_HullNode{point: p, prev: node, next: node.next}
			node.next.prev = mid
			node.next = mid
			bmin, bmax = _SegBox(start_pt, p)
			seg_tree.Insert(bmin, bmax, node)
			bmin, bmax = _SegBox(p, end_pt)
			seg_tree.Insert(bmin, bmax, mid)

			on_hull[p] = true
			segcount += 1
			stable = 0
			// stay on node so the first new segment is reconsidered
		} else {
			node = node.next
			stable += 1
		}
	}

	ring := make(orb.Ring, 0, segcount)
	node = first
	for {
		ring = append(ring, node.point)
		node = node.next
		if node == first {
			break
		}
	}
	return ring
}

// _FindCandidate searches the interior points nearest to the segment of
// node, in order of squared segment distance.
//
// A candidate is rejected if it sits at least as close to one of the two
// neighboring segments, or if connecting it to either segment endpoint
// would cross an existing hull segment.
func _FindCandidate(points *rtree.RTreeG[orb.Point], segs *rtree.RTreeG[*_HullNode], node *_HullNode, max_sq_len float64, on_hull Dict[orb.Point, bool]) (orb.Point, bool) {
	prev_pt := node.prev.point
	start_pt := node.point
	end_pt := node.next.point
	next_pt := node.next.next.point

	var best orb.Point
	found := false
	points.Nearby(func(min, max [2]float64, data orb.Point, item bool) float64 {
		if item {
			return _SqSegDist(data, start_pt, end_pt)
		}
		return _SqSegBoxDist(start_pt, end_pt, min, max)
	}, func(min, max [2]float64, p orb.Point, dist float64) bool {
		if dist > max_sq_len {
			return false
		}
		if on_hull.ContainsKey(p) {
			return true
		}
		if dist < _SqSegDist(p, prev_pt, start_pt) && dist < _SqSegDist(p, end_pt, next_pt) &&
			_NoIntersections(start_pt, p, segs) && _NoIntersections(p, end_pt, segs) {
			best = p
			found = true
			return false
		}
		return true
	})
	return best, found
}

func _NoIntersections(a orb.Point, b orb.Point, segs *rtree.RTreeG[*_HullNode]) bool {
	bmin, bmax := _SegBox(a, b)
	ok := true
	segs.Search(bmin, bmax, func(min, max [2]float64, seg *_HullNode) bool {
		if _Intersects(seg.point, seg.next.point, a, b) {
			ok = false
			return false
		}
		return true
	})
	return ok
}
