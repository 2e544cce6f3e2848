package graph

import (
	"github.com/paulmach/orb"

	. "github.com/ttpr0/go-isochrone/util"
)

//*******************************************
// graph structs
//*******************************************

// EdgeList carries the parallel input columns of a network.
//
// Geometries run from the source endpoint to the target endpoint
// and contain at least two points.
type EdgeList struct {
	EdgeIDs      Array[int64]
	Sources      Array[int64]
	Targets      Array[int64]
	Costs        Array[float64]
	ReverseCosts Array[float64]
	Lengths      Array[float64]
	Geometries   []orb.LineString
}

func (self *EdgeList) EdgeCount() int64 {
	return int64(len(self.EdgeIDs))
}

// Arc is one directed traversal of an input edge.
//
// Forward arcs traverse the edge from source to target at the edge cost,
// backward arcs from target to source at the reverse cost.
type Arc struct {
	To      int64
	Weight  float64
	Edge    int64
	Forward bool
}
