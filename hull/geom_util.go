package hull

import (
	"math"

	"github.com/paulmach/orb"
)

func _Cross(o orb.Point, a orb.Point, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

func _SqDist(a orb.Point, b orb.Point) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return dx*dx + dy*dy
}

// squared distance from p to the segment (a, b)
func _SqSegDist(p orb.Point, a orb.Point, b orb.Point) float64 {
	x := a[0]
	y := a[1]
	dx := b[0] - x
	dy := b[1] - y
	if dx != 0 || dy != 0 {
		t := ((p[0]-x)*dx + (p[1]-y)*dy) / (dx*dx + dy*dy)
		if t > 1 {
			x = b[0]
			y = b[1]
		} else if t > 0 {
			x += dx * t
			y += dy * t
		}
	}
	dx = p[0] - x
	dy = p[1] - y
	return dx*dx + dy*dy
}

// squared distance between the segments (a, b) and (c, d)
func _SqSegSegDist(a orb.Point, b orb.Point, c orb.Point, d orb.Point) float64 {
	if (_Cross(a, b, c) > 0) != (_Cross(a, b, d) > 0) && (_Cross(c, d, a) > 0) != (_Cross(c, d, b) > 0) {
		return 0
	}
	return math.Min(
		math.Min(_SqSegDist(c, a, b), _SqSegDist(d, a, b)),
		math.Min(_SqSegDist(a, c, d), _SqSegDist(b, c, d)),
	)
}

// squared distance between the segment (a, b) and a bounding box
func _SqSegBoxDist(a orb.Point, b orb.Point, min [2]float64, max [2]float64) float64 {
	if _InsideBox(a, min, max) || _InsideBox(b, min, max) {
		return 0
	}
	d := _SqSegSegDist(a, b, orb.Point{min[0], min[1]}, orb.Point{max[0], min[1]})
	d = math.Min(d, _SqSegSegDist(a, b, orb.Point{max[0], min[1]}, orb.Point{max[0], max[1]}))
	d = math.Min(d, _SqSegSegDist(a, b, orb.Point{max[0], max[1]}, orb.Point{min[0], max[1]}))
	d = math.Min(d, _SqSegSegDist(a, b, orb.Point{min[0], max[1]}, orb.Point{min[0], min[1]}))
	return d
}

func _SegBox(a orb.Point, b orb.Point) ([2]float64, [2]float64) {
	return [2]float64{math.Min(a[0], b[0]), math.Min(a[1], b[1])},
		[2]float64{math.Max(a[0], b[0]), math.Max(a[1], b[1])}
}

func _InsideBox(p orb.Point, min [2]float64, max [2]float64) bool {
	return p[0] >= min[0] && p[0] <= max[0] && p[1] >= min[1] && p[1] <= max[1]
}

// _Intersects reports a proper crossing of two segments. Segments that
// share an endpoint never count as crossing.
func _Intersects(p1 orb.Point, q1 orb.Point, p2 orb.Point, q2 orb.Point) bool {
	if p1 == p2 || p1 == q2 || q1 == p2 || q1 == q2 {
		return false
	}
	return (_Cross(p1, q1, p2) > 0) != (_Cross(p1, q1, q2) > 0) &&
		(_Cross(p2, q2, p1) > 0) != (_Cross(p2, q2, q1) > 0)
}
