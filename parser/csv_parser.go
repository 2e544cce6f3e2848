package parser

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/ttpr0/go-isochrone/graph"
	. "github.com/ttpr0/go-isochrone/util"
)

//*******************************************
// network csv
//*******************************************

// ReadEdgeCSV reads a network from the debug CSV format.
//
// Columns are id,source,target,cost,reverse_cost,length,geometry with the
// geometry as a bracketed coordinate list [[x,y],[x,y],...]. The header
// line is skipped and reading stops at the first empty line. Rows without
// a parsable geometry are dropped.
func ReadEdgeCSV(file string) graph.EdgeList {
	f, err := os.Open(file)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	edge_ids := NewList[int64](100)
	sources := NewList[int64](100)
	targets := NewList[int64](100)
	costs := NewList[float64](100)
	reverse_costs := NewList[float64](100)
	lengths := NewList[float64](100)
	geometries := NewList[orb.LineString](100)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024), 16*1024*1024)
	header := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if header {
			header = false
			continue
		}
		if line == "" {
			break
		}
		// scalar columns end where the bracketed geometry begins
		split := strings.Index(line, ",[[")
		if split == -1 {
			continue
		}
		props := strings.Split(line[:split], ",")
		if len(props) < 6 {
			continue
		}
		geometry := _ParseGeometry(line[split+1:])
		if len(geometry) < 2 {
			continue
		}
		id, _ := strconv.ParseInt(props[0], 10, 64)
		source, _ := strconv.ParseInt(props[1], 10, 64)
		target, _ := strconv.ParseInt(props[2], 10, 64)
		cost, _ := strconv.ParseFloat(props[3], 64)
		reverse_cost, _ := strconv.ParseFloat(props[4], 64)
		length, _ := strconv.ParseFloat(props[5], 64)
		edge_ids.Add(id)
		sources.Add(source)
		targets.Add(target)
		costs.Add(cost)
		reverse_costs.Add(reverse_cost)
		lengths.Add(length)
		geometries.Add(geometry)
	}

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

func _ParseGeometry(value string) orb.LineString {
	value = strings.TrimPrefix(value, "[[")
	value = strings.TrimSuffix(value, "]]")
	pairs := strings.Split(value, "],[")
	line := make(orb.LineString, 0, len(pairs))
	for _, pair := range pairs {
		xy := strings.Split(pair, ",")
		if len(xy) != 2 {
			continue
		}
		x, err_x := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		y, err_y := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err_x != nil || err_y != nil {
			continue
		}
		line = append(line, orb.Point{x, y})
	}
	return line
}
