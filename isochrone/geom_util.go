package isochrone

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

func _Dist(a orb.Point, b orb.Point) float64 {
	return math.Sqrt((a[0]-b[0])*(a[0]-b[0]) + (a[1]-b[1])*(a[1]-b[1]))
}

func _PointInDist(a orb.Point, b orb.Point, dist float64) orb.Point {
	d := _Dist(a, b)
	return orb.Point{a[0] + (b[0]-a[0])*dist/d, a[1] + (b[1]-a[1])*dist/d}
}

func _ReverseLine(line orb.LineString) orb.LineString {
	rev := make(orb.LineString, len(line))
	for i, p := range line {
		rev[len(line)-1-i] = p
	}
	return rev
}

// _ClipLine cuts the prefix of the line covering the given fraction of
// its total length. The cut point is interpolated on the covering
// segment.
func _ClipLine(line orb.LineString, frac float64) orb.LineString {
	if frac >= 1 {
		return line
	}
	total := float64(0)
	for i := 0; i < len(line)-1; i++ {
		total += _Dist(line[i], line[i+1])
	}
	if total == 0 {
		return line
	}
	target := total * frac
	clipped := make(orb.LineString, 1, len(line))
	clipped[0] = line[0]
	acc := float64(0)
	for i := 0; i < len(line)-1; i++ {
		d := _Dist(line[i], line[i+1])
		if acc+d >= target {
			remain := target - acc
			if remain > 0 {
				clipped = append(clipped, _PointInDist(line[i], line[i+1], remain))
			}
			break
		}
		acc += d
		clipped = append(clipped, line[i+1])
	}
	return clipped
}

// boundary tolerance for the interior test
const _RING_EPSILON = 1e-9

// _DominatedByRing reports whether every vertex of the line lies strictly
// inside the ring. Vertices on the ring boundary keep the record visible.
// The segments between the vertices are not tested against the ring.
func _DominatedByRing(line orb.LineString, ring orb.Ring) bool {
	if len(ring) < 3 {
		return false
	}
	for _, p := range line {
		if !planar.RingContains(ring, p) {
			return false
		}
		if _OnRing(p, ring) {
			return false
		}
	}
	return true
}

func _OnRing(p orb.Point, ring orb.Ring) bool {
	eps := _RING_EPSILON * _RING_EPSILON
	for i := 0; i < len(ring); i++ {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		if _SqSegDist(p, a, b) <= eps {
			return true
		}
	}
	return false
}

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
