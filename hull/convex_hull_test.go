package hull

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
)

func _RingArea(ring orb.Ring) float64 {
	area := float64(0)
	for i := 0; i < len(ring); i++ {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		area += a[0]*b[1] - b[0]*a[1]
	}
	return area / 2
}

func TestConvexHullSquare(t *testing.T) {
	points := []orb.Point{{4, 4}, {0, 0}, {2, 2}, {4, 0}, {0, 4}, {1, 3}}
	ring := ConvexHull(points)

	want := orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	if diff := cmp.Diff(want, ring); diff != "" {
		t.Errorf("ConvexHull mismatch (-want +got):\n%s", diff)
	}
	if _RingArea(ring) <= 0 {
		t.Errorf("ring is not counter-clockwise")
	}
}

func TestConvexHullCollinearBoundary(t *testing.T) {
	// collinear points on the boundary are excluded
	points := []orb.Point{{0, 0}, {2, 0}, {4, 0}, {4, 4}, {0, 4}}
	ring := ConvexHull(points)

	want := orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	if diff := cmp.Diff(want, ring); diff != "" {
		t.Errorf("ConvexHull mismatch (-want +got):\n%s", diff)
	}
}

func TestConvexHullDegenerate(t *testing.T) {
	if ring := ConvexHull([]orb.Point{}); len(ring) != 0 {
		t.Errorf("hull of nothing = %v; want empty", ring)
	}
	if ring := ConvexHull([]orb.Point{{1, 2}}); len(ring) != 1 || ring[0] != (orb.Point{1, 2}) {
		t.Errorf("hull of one point = %v", ring)
	}
	if ring := ConvexHull([]orb.Point{{1, 2}, {3, 4}}); len(ring) != 2 {
		t.Errorf("hull of two points = %v", ring)
	}
	// a fully collinear cloud collapses to its extremes
	ring := ConvexHull([]orb.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}})
	want := orb.Ring{{0, 0}, {3, 0}}
	if diff := cmp.Diff(want, ring); diff != "" {
		t.Errorf("collinear hull mismatch (-want +got):\n%s", diff)
	}
}

func TestConvexHullDuplicates(t *testing.T) {
	points := []orb.Point{{0, 0}, {0, 0}, {4, 0}, {4, 0}, {2, 4}}
	ring := ConvexHull(points)

	want := orb.Ring{{0, 0}, {4, 0}, {2, 4}}
	if diff := cmp.Diff(want, ring); diff != "" {
		t.Errorf("ConvexHull mismatch (-want +got):\n%s", diff)
	}
}
