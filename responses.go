package main

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/ttpr0/go-isochrone/isochrone"
)

//**********************************************************
// responses
//**********************************************************

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

type StatusResponse struct {
	Edges int64 `json:"edges"`
}

// BuildIsochroneResponse renders the result as a feature collection with
// one polygon feature per (start, cutoff) and one linestring feature per
// reached edge.
func BuildIsochroneResponse(result *isochrone.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, shape := range result.Isochrone {
		var feature *geojson.Feature
		switch len(shape.Ring) {
		case 1:
			feature = geojson.NewFeature(shape.Ring[0])
		case 2:
			feature = geojson.NewFeature(orb.LineString(shape.Ring))
		default:
			ring := make(orb.Ring, len(shape.Ring), len(shape.Ring)+1)
			copy(ring, shape.Ring)
			ring = append(ring, ring[0])
			feature = geojson.NewFeature(orb.Polygon{ring})
		}
		feature.Properties["start_id"] = shape.StartID
		feature.Properties["cutoff"] = shape.Cutoff
		fc.Append(feature)
	}
	for _, edge := range result.Network {
		feature := geojson.NewFeature(edge.Geometry)
		feature.Properties["start_id"] = edge.StartID
		feature.Properties["edge_id"] = edge.EdgeID
		feature.Properties["start_perc"] = edge.StartPerc
		feature.Properties["end_perc"] = edge.EndPerc
		feature.Properties["start_cost"] = edge.StartCost
		feature.Properties["end_cost"] = edge.EndCost
		fc.Append(feature)
	}
	return fc
}
