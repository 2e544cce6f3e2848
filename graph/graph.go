package graph

import (
	"github.com/paulmach/orb"

	. "github.com/ttpr0/go-isochrone/util"
)

//*******************************************
// graph
//*******************************************

// Graph is the adjacency-array form of an edge list.
//
// head[i]..head[i+1] delimit the outgoing arcs of vertex index i.
// Indices and offsets are 64-bit; the original ids only appear at the
// boundary (GetIndex/GetID).
type Graph struct {
	head        []int64
	arcs        []Arc
	id_to_index Dict[int64, int64]
	index_to_id Array[int64]
	edge_arcs   Array[[2]int64]
	edges       EdgeList
}

func (self *Graph) NodeCount() int64 {
	return int64(self.index_to_id.Length())
}

func (self *Graph) EdgeCount() int64 {
	return self.edges.EdgeCount()
}

func (self *Graph) ArcCount() int64 {
	return int64(len(self.arcs))
}

// GetIndex maps an original vertex id to its dense index.
func (self *Graph) GetIndex(id int64) (int64, bool) {
	index, ok := self.id_to_index[id]
	return index, ok
}

// GetID maps a dense vertex index back to the original id.
func (self *Graph) GetID(index int64) int64 {
	return self.index_to_id[index]
}

func (self *Graph) ForAdjacentArcs(node int64, callback func(Arc)) {
	for i := self.head[node]; i < self.head[node+1]; i++ {
		callback(self.arcs[i])
	}
}

// GetEdgeArcs returns the arc indices of the forward and backward
// traversal of an edge, -1 where the direction is impassable.
func (self *Graph) GetEdgeArcs(edge int64) (int64, int64) {
	pair := self.edge_arcs[edge]
	return pair[0], pair[1]
}

func (self *Graph) GetEdgeID(edge int64) int64 {
	return self.edges.EdgeIDs[edge]
}

// GetEdgeNodes returns the dense source and target index of an edge.
func (self *Graph) GetEdgeNodes(edge int64) (int64, int64) {
	return self.id_to_index[self.edges.Sources[edge]], self.id_to_index[self.edges.Targets[edge]]
}

// GetEdgeWeight returns the traversal cost of an edge in the given
// direction, or nothing if that direction is impassable.
func (self *Graph) GetEdgeWeight(edge int64, forward bool) Optional[float64] {
	cost := self.edges.Costs[edge]
	if !forward {
		cost = self.edges.ReverseCosts[edge]
	}
	if !_Passable(cost) {
		return None[float64]()
	}
	return Some(cost)
}

func (self *Graph) GetEdgeGeom(edge int64) orb.LineString {
	return self.edges.Geometries[edge]
}
