package graph

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	. "github.com/ttpr0/go-isochrone/util"
)

func _TestEdgeList() EdgeList {
	return EdgeList{
		EdgeIDs:      Array[int64]{1, 2, 3},
		Sources:      Array[int64]{100, 2147483647, 100},
		Targets:      Array[int64]{2147483647, 50, 2147483647},
		Costs:        Array[float64]{5, 2, -1},
		ReverseCosts: Array[float64]{5, math.NaN(), 4},
		Lengths:      Array[float64]{1, 1, 1},
		Geometries: []orb.LineString{
			{{0, 0}, {1, 0}},
			{{1, 0}, {2, 0}},
			{{0, 0}, {1, 0}},
		},
	}
}

func TestBuildGraphDensification(t *testing.T) {
	g := BuildGraph(_TestEdgeList())

	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %v; want 3", g.NodeCount())
	}
	// indices are assigned in ascending id order
	for i, id := range []int64{50, 100, 2147483647} {
		index, ok := g.GetIndex(id)
		if !ok || index != int64(i) {
			t.Errorf("GetIndex(%v) = %v, %v; want %v", id, index, ok, i)
		}
		if g.GetID(int64(i)) != id {
			t.Errorf("GetID(%v) = %v; want %v", i, g.GetID(int64(i)), id)
		}
	}
	if _, ok := g.GetIndex(999); ok {
		t.Errorf("GetIndex(999) found a vertex not in the network")
	}
}

func TestBuildGraphArcs(t *testing.T) {
	g := BuildGraph(_TestEdgeList())

	// edge 1 both ways, edge 2 forward only, edge 3 backward only
	if g.ArcCount() != 4 {
		t.Errorf("ArcCount() = %v; want 4", g.ArcCount())
	}

	index_100, _ := g.GetIndex(100)
	index_max, _ := g.GetIndex(2147483647)
	arcs := NewList[Arc](4)
	g.ForAdjacentArcs(index_max, func(arc Arc) {
		arcs.Add(arc)
	})
	if arcs.Length() != 3 {
		t.Fatalf("arcs at %v = %v; want 3", index_max, arcs.Length())
	}
	// backward arc of edge 1, forward arc of edge 2, backward arc of edge 3
	for _, arc := range arcs {
		switch arc.Edge {
		case 0:
			if arc.Forward || arc.To != index_100 || arc.Weight != 5 {
				t.Errorf("unexpected arc for edge 1: %+v", arc)
			}
		case 1:
			if !arc.Forward || arc.Weight != 2 {
				t.Errorf("unexpected arc for edge 2: %+v", arc)
			}
		case 2:
			if arc.Forward || arc.To != index_100 || arc.Weight != 4 {
				t.Errorf("unexpected arc for edge 3: %+v", arc)
			}
		}
	}

	fwd, bwd := g.GetEdgeArcs(2)
	if fwd != -1 || bwd == -1 {
		t.Errorf("GetEdgeArcs(2) = %v, %v; want impassable forward", fwd, bwd)
	}
}

func TestBuildGraphWeights(t *testing.T) {
	g := BuildGraph(_TestEdgeList())

	if w := g.GetEdgeWeight(0, true); !w.HasValue() || w.Value != 5 {
		t.Errorf("GetEdgeWeight(0, true) = %+v; want 5", w)
	}
	if w := g.GetEdgeWeight(1, false); w.HasValue() {
		t.Errorf("GetEdgeWeight(1, false) = %+v; want impassable", w)
	}
	if w := g.GetEdgeWeight(2, true); w.HasValue() {
		t.Errorf("GetEdgeWeight(2, true) = %+v; want impassable", w)
	}
}

func TestBuildGraphDuplicateEdges(t *testing.T) {
	edges := EdgeList{
		EdgeIDs:      Array[int64]{7, 8},
		Sources:      Array[int64]{1, 1},
		Targets:      Array[int64]{2, 2},
		Costs:        Array[float64]{3, 5},
		ReverseCosts: Array[float64]{-1, -1},
		Lengths:      Array[float64]{1, 1},
		Geometries: []orb.LineString{
			{{0, 0}, {1, 0}},
			{{0, 0}, {1, 0}},
		},
	}
	g := BuildGraph(edges)
	if g.ArcCount() != 2 {
		t.Errorf("ArcCount() = %v; want 2 independent arcs", g.ArcCount())
	}
}
