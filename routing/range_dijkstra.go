package routing

import (
	"math"

	"github.com/rhartert/yagh"

	"github.com/ttpr0/go-isochrone/graph"
	. "github.com/ttpr0/go-isochrone/util"
)

type DistFlag struct {
	Dist float64
}

// RangeDijkstra computes cost labels from a single start vertex bounded
// by a maximum range. The label array is reused between runs.
type RangeDijkstra struct {
	g          *graph.Graph
	node_flags Flags[DistFlag]
}

func NewRangeDijkstra(g *graph.Graph) *RangeDijkstra {
	return &RangeDijkstra{
		g:          g,
		node_flags: NewFlags(g.NodeCount(), DistFlag{math.Inf(1)}),
	}
}

// CalcRangeDijkstra relaxes outward from start until every vertex within
// max_range carries its final label. Successors past max_range are never
// enqueued; arcs with negative weight are skipped.
func (self *RangeDijkstra) CalcRangeDijkstra(start int64, max_range float64) {
	self.node_flags.Reset()

	heap := yagh.New[float64](int(self.g.NodeCount()))
	start_flag := self.node_flags.Get(start)
	start_flag.Dist = 0
	heap.Put(int(start), 0)

	for heap.Size() > 0 {
		entry := heap.Pop()
		curr_id := int64(entry.Elem)
		curr_dist := entry.Cost
		curr_flag := self.node_flags.Get(curr_id)
		if curr_flag.Dist < curr_dist {
			continue
		}
		self.g.ForAdjacentArcs(curr_id, func(arc graph.Arc) {
			if arc.Weight < 0 {
				return
			}
			new_dist := curr_dist + arc.Weight
			if new_dist > max_range {
				return
			}
			other_flag := self.node_flags.Get(arc.To)
			if new_dist < other_flag.Dist {
				other_flag.Dist = new_dist
				heap.Put(int(arc.To), new_dist)
			}
		})
	}
}

// GetDistance returns the label of a vertex index, +Inf if unreached.
func (self *RangeDijkstra) GetDistance(node int64) float64 {
	return self.node_flags.Get(node).Dist
}
