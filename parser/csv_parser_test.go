package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
)

func TestReadEdgeCSV(t *testing.T) {
	edges := ReadEdgeCSV("./testdata/network.csv")

	// row 3 has no geometry, everything after the empty line is ignored
	if edges.EdgeCount() != 3 {
		t.Fatalf("EdgeCount() = %v; want 3", edges.EdgeCount())
	}

	if edges.EdgeIDs[0] != 1 || edges.Sources[0] != 2147483647 || edges.Targets[0] != 20 {
		t.Errorf("row 0 = %v %v %v", edges.EdgeIDs[0], edges.Sources[0], edges.Targets[0])
	}
	if edges.Costs[0] != 5 || edges.ReverseCosts[0] != 5 || edges.Lengths[0] != 1.5 {
		t.Errorf("row 0 columns = %v %v %v", edges.Costs[0], edges.ReverseCosts[0], edges.Lengths[0])
	}
	if edges.ReverseCosts[1] != -1 {
		t.Errorf("row 1 reverse_cost = %v; want the -1 sentinel", edges.ReverseCosts[1])
	}

	want := orb.LineString{{1, 0}, {1.5, 0.5}, {2, 0}}
	if diff := cmp.Diff(want, edges.Geometries[1]); diff != "" {
		t.Errorf("geometry mismatch (-want +got):\n%s", diff)
	}
	if edges.EdgeIDs[2] != 4 {
		t.Errorf("row 2 id = %v; want 4", edges.EdgeIDs[2])
	}
}
