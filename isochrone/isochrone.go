package isochrone

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"golang.org/x/exp/slog"

	"github.com/ttpr0/go-isochrone/graph"
	"github.com/ttpr0/go-isochrone/hull"
	"github.com/ttpr0/go-isochrone/routing"
	. "github.com/ttpr0/go-isochrone/util"
)

//**********************************************************
// result types
//**********************************************************

// NetworkEdge is the traversal of one edge reached from a start vertex.
//
// Traversal enters the edge at StartPerc with accumulated cost StartCost
// and ends at EndPerc with EndCost. Fractions and geometry run in the
// direction the edge was traversed.
type NetworkEdge struct {
	StartID   int64          `json:"start_id"`
	EdgeID    int64          `json:"edge_id"`
	StartPerc float64        `json:"start_perc"`
	EndPerc   float64        `json:"end_perc"`
	StartCost float64        `json:"start_cost"`
	EndCost   float64        `json:"end_cost"`
	Geometry  orb.LineString `json:"geometry"`
}

// Shape is the isochrone polygon of one (start, cutoff) pair, an open
// counter-clockwise ring.
type Shape struct {
	StartID int64    `json:"start_id"`
	Cutoff  float64  `json:"cutoff"`
	Ring    orb.Ring `json:"shape"`
}

type Result struct {
	Network   List[NetworkEdge] `json:"network"`
	Isochrone List[Shape]       `json:"isochrone"`
}

//**********************************************************
// isochrone computation
//**********************************************************

// ComputeIsochrone builds the graph from the edge columns and computes,
// for every start vertex, the network reachable within the cutoffs and
// one concave-hull polygon per cutoff.
//
// Start vertices missing from the network and impassable edge directions
// degrade silently; the call always returns a result.
func ComputeIsochrone(edges graph.EdgeList, start_vertices Array[int64], cutoffs Array[float64], only_minimum_cover bool) Result {
	return ComputeIsochroneParams(edges, start_vertices, cutoffs, only_minimum_cover, hull.DEFAULT_CONCAVITY, hull.DEFAULT_LENGTH_THRESHOLD)
}

func ComputeIsochroneParams(edges graph.EdgeList, start_vertices Array[int64], cutoffs Array[float64], only_minimum_cover bool, concavity float64, length_threshold float64) Result {
	result := Result{
		Network:   NewList[NetworkEdge](100),
		Isochrone: NewList[Shape](start_vertices.Length() * cutoffs.Length()),
	}
	if start_vertices.Length() == 0 || cutoffs.Length() == 0 {
		return result
	}

	g := graph.BuildGraph(edges)
	slog.Debug(fmt.Sprintf("built graph with %v nodes and %v arcs", g.NodeCount(), g.ArcCount()))

	// cutoffs are processed largest first; outputs keep the given values
	sorted_cutoffs := NewArray[float64](cutoffs.Length())
	copy(sorted_cutoffs, cutoffs)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted_cutoffs)))
	max_cutoff := sorted_cutoffs[0]

	spt := routing.NewRangeDijkstra(g)
	for _, start_id := range start_vertices {
		start, ok := g.GetIndex(start_id)
		if !ok {
			slog.Debug(fmt.Sprintf("start vertex %v not in network", start_id))
			continue
		}
		spt.CalcRangeDijkstra(start, max_cutoff)
		candidates := _CollectCandidates(g, spt, max_cutoff)
		for _, cutoff := range sorted_cutoffs {
			_ExtractIsochrone(g, candidates, start_id, cutoff, only_minimum_cover, concavity, length_threshold, &result)
		}
	}
	return result
}

//**********************************************************
// reached-edge candidates
//**********************************************************

// _Candidate is the unclipped traversal of one edge in its winning
// direction.
type _Candidate struct {
	edge       int64
	start_cost float64
	weight     float64
	forward    bool
}

// _CollectCandidates resolves for every edge which directional arc
// contributes a reached record.
//
// With both endpoints labeled, the direction whose head label closes the
// shortest-path equality wins, forward before backward on a tie. An edge
// overrunning the maximum cutoff is recorded outward from its labeled
// endpoint, again forward first. Edges with no labeled endpoint yield
// nothing.
func _CollectCandidates(g *graph.Graph, spt *routing.RangeDijkstra, max_cutoff float64) List[_Candidate] {
	candidates := NewList[_Candidate](100)
	for e := int64(0); e < g.EdgeCount(); e++ {
		src, tgt := g.GetEdgeNodes(e)
		fwd := g.GetEdgeWeight(e, true)
		bwd := g.GetEdgeWeight(e, false)
		src_dist := spt.GetDistance(src)
		tgt_dist := spt.GetDistance(tgt)
		src_reached := src_dist <= max_cutoff
		tgt_reached := tgt_dist <= max_cutoff

		if src_reached && tgt_reached {
			if fwd.HasValue() && tgt_dist == src_dist+fwd.Value {
				candidates.Add(_Candidate{e, src_dist, fwd.Value, true})
			} else if bwd.HasValue() && src_dist == tgt_dist+bwd.Value {
				candidates.Add(_Candidate{e, tgt_dist, bwd.Value, false})
			} else if fwd.HasValue() && src_dist+fwd.Value > max_cutoff {
				candidates.Add(_Candidate{e, src_dist, fwd.Value, true})
			} else if bwd.HasValue() && tgt_dist+bwd.Value > max_cutoff {
				candidates.Add(_Candidate{e, tgt_dist, bwd.Value, false})
			}
		} else if src_reached && fwd.HasValue() {
			candidates.Add(_Candidate{e, src_dist, fwd.Value, true})
		} else if tgt_reached && bwd.HasValue() {
			candidates.Add(_Candidate{e, tgt_dist, bwd.Value, false})
		}
	}
	return candidates
}

//**********************************************************
// per-cutoff extraction
//**********************************************************

// _ExtractIsochrone clips the candidates to one cutoff, builds the
// polygon from the clipped coordinates and appends records and shape to
// the result.
func _ExtractIsochrone(g *graph.Graph, candidates List[_Candidate], start_id int64, cutoff float64, only_minimum_cover bool, concavity float64, length_threshold float64, result *Result) {
	records := NewList[NetworkEdge](candidates.Length())
	cloud := NewList[orb.Point](candidates.Length() * 2)
	cloud_seen := NewDict[orb.Point, bool](candidates.Length() * 2)

	for _, cand := range candidates {
		if cand.start_cost >= cutoff {
			continue
		}
		end_cost := cand.start_cost + cand.weight
		end_perc := float64(1)
		if end_cost > cutoff {
			end_perc = (cutoff - cand.start_cost) / cand.weight
			end_cost = cutoff
		}
		geom := g.GetEdgeGeom(cand.edge)
		if !cand.forward {
			geom = _ReverseLine(geom)
		}
		geom = _ClipLine(geom, end_perc)
		records.Add(NetworkEdge{
			StartID:   start_id,
			EdgeID:    g.GetEdgeID(cand.edge),
			StartPerc: 0,
			EndPerc:   end_perc,
			StartCost: cand.start_cost,
			EndCost:   end_cost,
			Geometry:  geom,
		})
		for _, p := range geom {
			if !cloud_seen.ContainsKey(p) {
				cloud_seen[p] = true
				cloud.Add(p)
			}
		}
	}

	if cloud.Length() == 0 {
		return
	}

	ring := hull.ConcaveHull(cloud, concavity, length_threshold)
	result.Isochrone.Add(Shape{StartID: start_id, Cutoff: cutoff, Ring: ring})
	for _, record := range records {
		if only_minimum_cover && _DominatedByRing(record.Geometry, ring) {
			continue
		}
		result.Network.Add(record)
	}
}
