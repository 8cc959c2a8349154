package sim

import "github.com/fib-lab/lanesim/internal/container"

// vehicleNode is the concrete node type stored in a Lane's ordered
// list: S tracks the vehicle's longitudinal position, Extra carries
// the Vehicle itself for direct access during neighbor queries.
type vehicleNode = container.ListNode[positioned, *Vehicle]

// Lane holds one lane's vehicles in an ordered list keyed by position,
// mirroring the teacher's entity/lane/lane.go Vehicles()/AddVehicle/
// RemoveVehicle shape — adapted here to a single-direction highway
// lane with no junction/AOI concerns.
type Lane struct {
	Index int
	MaxV  float64

	order *container.List[positioned, *Vehicle]
	nodes map[int]*vehicleNode // vehicle ID -> its node in order
}

func newLane(index int, maxV float64) *Lane {
	return &Lane{
		Index: index,
		MaxV:  maxV,
		order: &container.List[positioned, *Vehicle]{},
		nodes: make(map[int]*vehicleNode),
	}
}

// Add inserts veh into this lane's position-ordered list.
func (l *Lane) Add(veh *Vehicle) {
	node := &vehicleNode{S: veh.X, Value: positioned{veh}, Extra: veh}
	l.order.Insert(node)
	l.nodes[veh.ID] = node
}

// Remove detaches veh from this lane.
func (l *Lane) Remove(veh *Vehicle) {
	node, ok := l.nodes[veh.ID]
	if !ok {
		return
	}
	l.order.Remove(node)
	delete(l.nodes, veh.ID)
}

// Resort restores position order after vehicles have moved during
// integration (integrate in tick.go calls this once per tick, after all vehicles
// have been integrated, rather than re-sorting on every single move).
func (l *Lane) Resort() {
	for _, node := range l.nodes {
		node.S = node.Extra.X
	}
	unsorted := l.order.PopUnsorted()
	if len(unsorted) > 0 {
		l.order.Merge(unsorted)
	}
}

// Vehicles returns every vehicle currently in this lane, in ascending
// position order.
func (l *Lane) Vehicles() []*Vehicle {
	out := make([]*Vehicle, 0, l.order.Len())
	for n := l.order.First(); n != nil; n = n.Next() {
		out = append(out, n.Extra)
	}
	return out
}

func (l *Lane) Len() int { return l.order.Len() }
