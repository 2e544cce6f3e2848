package hull

import (
	"sort"

	"github.com/paulmach/orb"
)

//*******************************************
// convex hull
//*******************************************

// ConvexHull computes the convex hull of a point cloud with the
// monotone-chain algorithm.
//
// The ring is counter-clockwise without a closing duplicate. Collinear
// points on the boundary are excluded. Degenerate inputs yield degenerate
// rings: a single point, a two-point segment or the two extremes of a
// collinear cloud.
func ConvexHull(points []orb.Point) orb.Ring {
	sorted := make([]orb.Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i][0] != sorted[j][0] {
			return sorted[i][0] < sorted[j][0]
		}
		return sorted[i][1] < sorted[j][1]
	})

	// drop exact duplicates
	n := 0
	for i, p := range sorted {
		if i == 0 || p != sorted[n-1] {
			sorted[n] = p
			n += 1
		}
	}
	sorted = sorted[:n]

	if n < 3 {
		return orb.Ring(sorted)
	}

	// lower chain
	lower := make([]orb.Point, 0, n)
	for _, p := range sorted {
		for len(lower) >= 2 && _Cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	// upper chain
	upper := make([]orb.Point, 0, n)
	for i := n - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && _Cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	ring := make(orb.Ring, 0, len(lower)+len(upper)-2)
	ring = append(ring, lower[:len(lower)-1]...)
	ring = append(ring, upper[:len(upper)-1]...)
	return ring
}
