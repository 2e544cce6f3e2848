package parser

import (
	"strconv"
	"strings"

	. "github.com/ttpr0/go-isochrone/util"
)

//*******************************************
// osm decoder
//*******************************************

type EdgeAttribs struct {
	Speed  float64
	Oneway bool
}

type IOSMDecoder interface {
	IsValidHighway(tags Dict[string, string]) bool
	DecodeEdge(tags Dict[string, string]) EdgeAttribs
}

type DrivingDecoder struct {
}

var driving_speeds = Dict[string, float64]{"motorway": 100, "motorway_link": 60, "trunk": 85, "trunk_link": 60,
	"primary": 65, "primary_link": 50, "secondary": 60, "secondary_link": 50, "tertiary": 50, "tertiary_link": 40,
	"residential": 30, "living_street": 10, "service": 20, "track": 15, "unclassified": 30, "road": 20}

func (self *DrivingDecoder) IsValidHighway(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	return driving_speeds.ContainsKey(tags.Get("highway"))
}

func (self *DrivingDecoder) DecodeEdge(tags Dict[string, string]) EdgeAttribs {
	speed := driving_speeds.Get(tags.Get("highway"))
	if tags.ContainsKey("maxspeed") {
		templimit := _ParseMaxspeed(tags.Get("maxspeed"))
		if templimit > 0 {
			speed = templimit
		}
	}
	oneway := tags.Get("oneway")
	return EdgeAttribs{
		Speed:  speed,
		Oneway: oneway == "yes" || oneway == "1" || tags.Get("highway") == "motorway",
	}
}

func _ParseMaxspeed(value string) float64 {
	if value == "walk" {
		return 10
	}
	if value == "none" {
		return 130
	}
	factor := 1.0
	if strings.HasSuffix(value, "mph") {
		value = strings.TrimSpace(strings.TrimSuffix(value, "mph"))
		factor = 1.609
	}
	speed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return speed * factor
}
