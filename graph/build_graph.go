package graph

import (
	"math"
	"sort"

	. "github.com/ttpr0/go-isochrone/util"
)

//*******************************************
// build graph
//*******************************************

// BuildGraph densifies the vertex ids of the edge list and assembles the
// adjacency array.
//
// Vertex indices are assigned in ascending order of the original ids.
// Directions with a negative or non-finite cost are impassable and emit
// no arc. Duplicate edges stay independent arcs.
func BuildGraph(edges EdgeList) *Graph {
	edgecount := edges.EdgeCount()

	// build the id -> index mapping
	ids := NewList[int64](int(edgecount))
	seen := NewDict[int64, bool](int(edgecount))
	for i := int64(0); i < edgecount; i++ {
		for _, id := range [2]int64{edges.Sources[i], edges.Targets[i]} {
			if !seen.ContainsKey(id) {
				seen[id] = true
				ids.Add(id)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	nodecount := int64(ids.Length())
	id_to_index := NewDict[int64, int64](int(nodecount))
	index_to_id := NewArray[int64](int(nodecount))
	for i, id := range ids {
		id_to_index[id] = int64(i)
		index_to_id[i] = id
	}

	// count outgoing arcs per node
	counts := make([]int64, nodecount+1)
	arccount := int64(0)
	for i := int64(0); i < edgecount; i++ {
		if _Passable(edges.Costs[i]) {
			counts[id_to_index[edges.Sources[i]]+1] += 1
			arccount += 1
		}
		if _Passable(edges.ReverseCosts[i]) {
			counts[id_to_index[edges.Targets[i]]+1] += 1
			arccount += 1
		}
	}

	// offsets by prefix sum
	head := make([]int64, nodecount+1)
	for i := int64(1); i <= nodecount; i++ {
		head[i] = head[i-1] + counts[i]
	}

	// bucket-sort arcs by source index
	arcs := make([]Arc, arccount)
	filled := make([]int64, nodecount)
	edge_arcs := NewArray[[2]int64](int(edgecount))
	put := func(tail int64, arc Arc) int64 {
		pos := head[tail] + filled[tail]
		arcs[pos] = arc
		filled[tail] += 1
		return pos
	}
	for i := int64(0); i < edgecount; i++ {
		src := id_to_index[edges.Sources[i]]
		tgt := id_to_index[edges.Targets[i]]
		fwd, bwd := int64(-1), int64(-1)
		if _Passable(edges.Costs[i]) {
			fwd = put(src, Arc{To: tgt, Weight: edges.Costs[i], Edge: i, Forward: true})
		}
		if _Passable(edges.ReverseCosts[i]) {
			bwd = put(tgt, Arc{To: src, Weight: edges.ReverseCosts[i], Edge: i, Forward: false})
		}
		edge_arcs[i] = [2]int64{fwd, bwd}
	}

	return &Graph{
		head:        head,
		arcs:        arcs,
		id_to_index: id_to_index,
		index_to_id: index_to_id,
		edge_arcs:   edge_arcs,
		edges:       edges,
	}
}

func _Passable(cost float64) bool {
	return cost >= 0 && !math.IsInf(cost, 1) && !math.IsNaN(cost)
}
