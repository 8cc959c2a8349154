package sim

import "fmt"

// VehicleState is the read-only view of one vehicle exposed by
// Snapshot (spec §4.7): {id, lane, x, v, a, driver_type, is_distracted}.
type VehicleState struct {
	ID           int
	Lane         int
	X            float64
	V            float64
	A            float64
	DriverType   DriverType
	IsDistracted bool
}

// ObstacleState is the read-only view of one obstacle.
type ObstacleState struct {
	ID       int
	Lane     int
	X        float64
	IsActive bool
}

// SimState is the immutable view returned by World.Snapshot — the
// sole interface external collaborators (GUI, reporter, plotting) use
// to read simulation state (spec §4.7, §6).
type SimState struct {
	Time           float64
	Vehicles       []VehicleState
	Obstacles      []ObstacleState
	MeanVelocity   float64
	PerLaneCount   []int
	LaneChangeTotal int
	Warnings       []string
}

// Snapshot returns an immutable view of the current world state
// (spec §6: snapshot() -> SimState).
func (w *World) Snapshot() SimState {
	state := SimState{
		Time:            w.t,
		PerLaneCount:    make([]int, w.K),
		LaneChangeTotal: w.stats.laneChangeTotal,
		Warnings:        append([]string(nil), w.warnings...),
	}
	velocitySum := 0.0
	velocityN := 0
	for _, veh := range w.vehicles {
		if veh.IsObstacle() {
			state.Obstacles = append(state.Obstacles, ObstacleState{ID: veh.ID, Lane: veh.Lane, X: veh.X, IsActive: veh.IsActive})
			continue
		}
		state.Vehicles = append(state.Vehicles, VehicleState{
			ID: veh.ID, Lane: veh.Lane, X: veh.X, V: veh.V, A: veh.reportedA,
			DriverType: veh.Type, IsDistracted: veh.IsDistracted,
		})
		state.PerLaneCount[veh.Lane]++
		velocitySum += veh.V
		velocityN++
	}
	if velocityN > 0 {
		state.MeanVelocity = velocitySum / float64(velocityN)
	} else {
		state.MeanVelocity = -1
	}
	return state
}

// DebugDump renders part of Snapshot as a human-readable table: time,
// vehicle count, mean velocity and one line per non-obstacle vehicle.
// Obstacles, per-lane counts, the lane-change total and warnings are
// not printed (SPEC_FULL.md supplemented feature, grounded on
// original_source/src/trafficSimulation.py: print_drivers_info).
func (w *World) DebugDump() string {
	s := w.Snapshot()
	out := fmt.Sprintf("t=%.1f vehicles=%d mean_v=%.2f\n", s.Time, len(s.Vehicles), s.MeanVelocity)
	for _, v := range s.Vehicles {
		out += fmt.Sprintf("  #%d lane=%d x=%.1f v=%.1f a=%.2f type=%s distracted=%v\n",
			v.ID, v.Lane, v.X, v.V, v.A, v.DriverType, v.IsDistracted)
	}
	return out
}
