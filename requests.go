package main

import (
	"net/url"

	"github.com/ttpr0/go-isochrone/isochrone"
	. "github.com/ttpr0/go-isochrone/util"
)

//**********************************************************
// isochrone request
//**********************************************************

type IsochroneRequest struct {
	StartVertices    []int64   `json:"start_vertices"`
	Cutoffs          []float64 `json:"cutoffs"`
	OnlyMinimumCover bool      `json:"only_minimum_cover"`
}

func HandleIsochroneRequest(req IsochroneRequest) Result {
	res := isochrone.ComputeIsochroneParams(NETWORK, Array[int64](req.StartVertices), Array[float64](req.Cutoffs), req.OnlyMinimumCover, CONFIG.Shape.Concavity, CONFIG.Shape.LengthThreshold)
	return OK(BuildIsochroneResponse(&res))
}

//**********************************************************
// status request
//**********************************************************

func HandleStatusRequest(query url.Values) Result {
	return OK(StatusResponse{
		Edges: NETWORK.EdgeCount(),
	})
}
