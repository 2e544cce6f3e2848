package parser

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"golang.org/x/exp/slog"

	"github.com/ttpr0/go-isochrone/graph"
	. "github.com/ttpr0/go-isochrone/util"
)

//*******************************************
// osm parser
//*******************************************

// ParseEdgeList builds an edge list from an OSM pbf extract.
//
// Ways accepted by the decoder are split at junction nodes; every split
// becomes one edge keeping the original OSM node ids as source and
// target. Costs are traversal seconds from the decoded speed, the
// reverse direction of oneway edges is marked impassable.
func ParseEdgeList(pbf_file string, decoder IOSMDecoder) graph.EdgeList {
	node_counts := NewDict[int64, int32](10000)
	_InitWayHandler(pbf_file, decoder, &node_counts)
	node_points := NewDict[int64, orb.Point](node_counts.Length())
	_NodeHandler(pbf_file, &node_counts, &node_points)
	edges := _WayHandler(pbf_file, decoder, &node_counts, &node_points)
	slog.Info(fmt.Sprintf("parsed %v edges from %v", edges.EdgeCount(), pbf_file))
	return edges
}

func _Scan(filename string, handle func(*osmpbf.Scanner)) {
	file, err := os.Open(filename)
	if err != nil {
		panic(err)
	}
	defer file.Close()
	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	handle(scanner)
}

// mark nodes shared by several ways or terminating a way
func _InitWayHandler(filename string, decoder IOSMDecoder, node_counts *Dict[int64, int32]) {
	_Scan(filename, func(scanner *osmpbf.Scanner) {
		scanner.SkipNodes = true
		scanner.SkipRelations = true
		for scanner.Scan() {
			way, ok := scanner.Object().(*osm.Way)
			if !ok {
				continue
			}
			tags := Dict[string, string](way.TagMap())
			if !decoder.IsValidHighway(tags) {
				continue
			}
			nodes := way.Nodes.NodeIDs()
			for i, nd := range nodes {
				ref := nd.FeatureID().Ref()
				count := node_counts.Get(ref)
				count += 1
				if i == 0 || i == len(nodes)-1 {
					count += 1
				}
				node_counts.Set(ref, count)
			}
		}
	})
}

func _NodeHandler(filename string, node_counts *Dict[int64, int32], node_points *Dict[int64, orb.Point]) {
	_Scan(filename, func(scanner *osmpbf.Scanner) {
		scanner.SkipWays = true
		scanner.SkipRelations = true
		for scanner.Scan() {
			node, ok := scanner.Object().(*osm.Node)
			if !ok {
				continue
			}
			id := node.FeatureID().Ref()
			if !node_counts.ContainsKey(id) {
				continue
			}
			node_points.Set(id, orb.Point{node.Lon, node.Lat})
		}
	})
}

func _WayHandler(filename string, decoder IOSMDecoder, node_counts *Dict[int64, int32], node_points *Dict[int64, orb.Point]) graph.EdgeList {
	edge_ids := NewList[int64](10000)
	sources := NewList[int64](10000)
	targets := NewList[int64](10000)
	costs := NewList[float64](10000)
	reverse_costs := NewList[float64](10000)
	lengths := NewList[float64](10000)
	geometries := NewList[orb.LineString](10000)

	add_edge := func(source int64, target int64, geometry orb.LineString, attribs EdgeAttribs) {
		length := float64(0)
		for i := 0; i < len(geometry)-1; i++ {
			length += geo.DistanceHaversine(geometry[i], geometry[i+1])
		}
		cost := length / (attribs.Speed / 3.6)
		reverse_cost := cost
		if attribs.Oneway {
			reverse_cost = -1
		}
		edge_ids.Add(int64(edge_ids.Length()) + 1)
		sources.Add(source)
		targets.Add(target)
		costs.Add(cost)
		reverse_costs.Add(reverse_cost)
		lengths.Add(length)
		geometries.Add(geometry)
	}

	_Scan(filename, func(scanner *osmpbf.Scanner) {
		scanner.SkipNodes = true
		scanner.SkipRelations = true
		for scanner.Scan() {
			way, ok := scanner.Object().(*osm.Way)
			if !ok {
				continue
			}
			tags := Dict[string, string](way.TagMap())
			if !decoder.IsValidHighway(tags) {
				continue
			}
			attribs := decoder.DecodeEdge(tags)
			if attribs.Speed <= 0 {
				continue
			}
			nodes := way.Nodes.NodeIDs()
			if len(nodes) < 2 {
				continue
			}
			start := nodes[0].FeatureID().Ref()
			geometry := orb.LineString{node_points.Get(start)}
			for i := 1; i < len(nodes); i++ {
				curr := nodes[i].FeatureID().Ref()
				geometry = append(geometry, node_points.Get(curr))
				// split the way at junctions
				if node_counts.Get(curr) > 1 || i == len(nodes)-1 {
					add_edge(start, curr, geometry, attribs)
					start = curr
					geometry = orb.LineString{node_points.Get(curr)}
				}
			}
		}
	})

	return graph.EdgeList{
		EdgeIDs:      Array[int64](edge_ids),
		Sources:      Array[int64](sources),
		Targets:      Array[int64](targets),
		Costs:        Array[float64](costs),
		ReverseCosts: Array[float64](reverse_costs),
		Lengths:      Array[float64](lengths),
		Geometries:   geometries,
	}
}
