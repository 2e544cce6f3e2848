package hull

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
)

func TestConcaveHullKeepsInteriorPoint(t *testing.T) {
	// (2, 2.1) is too far from every hull segment for concavity 2 and
	// must not be pulled in
	points := []orb.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {2, 2.1}}
	ring := ConcaveHull(points, 2, 0)

	want := orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	if diff := cmp.Diff(want, ring); diff != "" {
		t.Errorf("ConcaveHull mismatch (-want +got):\n%s", diff)
	}
}

func TestConcaveHullPullsNearPoint(t *testing.T) {
	// (1, 0.5) is close enough to the bottom segment to be spliced in
	points := []orb.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {1, 0.5}}
	ring := ConcaveHull(points, 2, 0)

	want := orb.Ring{{0, 0}, {1, 0.5}, {4, 0}, {4, 4}, {0, 4}}
	if diff := cmp.Diff(want, ring); diff != "" {
		t.Errorf("ConcaveHull mismatch (-want +got):\n%s", diff)
	}
}

func TestConcaveHullConcavityBound(t *testing.T) {
	// with concavity 2 the nearer endpoint distance of (2, 0.05) to the
	// bottom segment is just past the admission bound; lowering the
	// concavity admits it
	points := []orb.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {2, 0.05}}
	ring := ConcaveHull(points, 2, 0)
	if len(ring) != 4 {
		t.Errorf("concavity 2 ring = %v; want plain square", ring)
	}

	ring = ConcaveHull(points, 1, 0)
	want := orb.Ring{{0, 0}, {2, 0.05}, {4, 0}, {4, 4}, {0, 4}}
	if diff := cmp.Diff(want, ring); diff != "" {
		t.Errorf("concavity 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestConcaveHullLengthThreshold(t *testing.T) {
	// segments shorter than the threshold are never subdivided
	points := []orb.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {1, 0.5}}
	ring := ConcaveHull(points, 2, 10)

	want := orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	if diff := cmp.Diff(want, ring); diff != "" {
		t.Errorf("ConcaveHull mismatch (-want +got):\n%s", diff)
	}
}

func TestConcaveHullDegenerate(t *testing.T) {
	if ring := ConcaveHull([]orb.Point{}, 2, 0); len(ring) != 0 {
		t.Errorf("hull of nothing = %v; want empty", ring)
	}
	if ring := ConcaveHull([]orb.Point{{1, 1}, {2, 2}}, 2, 0); len(ring) != 2 {
		t.Errorf("hull of a segment = %v", ring)
	}
}

func TestConcaveHullRingSimple(t *testing.T) {
	points := []orb.Point{
		{0, 0}, {6, 0}, {6, 6}, {0, 6},
		{1, 0.4}, {3, 0.4}, {5, 0.4}, {0.4, 3}, {5.6, 3},
	}
	ring := ConcaveHull(points, 2, 0)

	if _RingArea(ring) <= 0 {
		t.Fatalf("ring is not counter-clockwise: %v", ring)
	}
	// no pair of non-adjacent segments may cross
	for i := 0; i < len(ring); i++ {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		for j := i + 1; j < len(ring); j++ {
			c := ring[j]
			d := ring[(j+1)%len(ring)]
			if _Intersects(a, b, c, d) {
				t.Errorf("segments %v-%v and %v-%v cross", a, b, c, d)
			}
		}
	}
}
