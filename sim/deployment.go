package sim

import "github.com/fib-lab/lanesim/internal/container"

// ScheduledDeployment is a pending vehicle injection (spec §3).
type ScheduledDeployment struct {
	Type                DriverType
	Lane                int
	InitialPosition     float64
	DesiredVelocity     float64
	DeploymentTime      float64
	IsDistractedCapable bool
}

const (
	deploymentConflictShift    = 25.0
	deploymentMaxAttempts      = 5
	deploymentMinClearance     = 20.0
	deploymentSpawnVelocityFrac = 0.7
)

// ScheduleVehicle appends entry to the pending deployment queue,
// keyed by deployment time (spec §6: schedule_vehicle).
func (w *World) ScheduleVehicle(entry ScheduledDeployment) {
	w.scheduled.Push(entry, entry.DeploymentTime)
	w.scheduledBackup = append(w.scheduledBackup, entry)
}

// runDeployments pops every entry whose deployment_time has arrived
// and tries to place it, per spec §4.5. Every ready entry is processed
// in the same tick (see DESIGN.md, Open Question 5) rather than just
// the first, which is a deliberate departure from
// original_source/src/trafficSimulation.py: deploy_scheduled_vehicle's
// single-deployment-per-call behavior.
func (w *World) runDeployments() {
	for w.scheduled.Len() > 0 {
		_, priority := w.scheduled.Peek()
		if priority > w.t {
			break
		}
		entry, _ := w.scheduled.Pop()
		w.deployOne(entry)
	}
}

func (w *World) deployOne(entry ScheduledDeployment) {
	lane := entry.Lane
	x := entry.InitialPosition
	for attempt := 0; attempt < deploymentMaxAttempts; attempt++ {
		if w.spawnIsClear(lane, x) {
			w.spawnVehicle(entry, lane, x)
			return
		}
		x += deploymentConflictShift
		if x >= w.L {
			x = 0
			lane = (lane + 1) % w.K
		}
	}
	w.warn("dropping scheduled deployment: could not find a conflict-free spawn after %d attempts", deploymentMaxAttempts)
}

func (w *World) spawnIsClear(lane int, x float64) bool {
	for _, other := range w.lanes[lane].Vehicles() {
		clearance := other.Length
		if clearance < deploymentMinClearance {
			clearance = deploymentMinClearance
		}
		dx := x - other.X
		if dx < 0 {
			dx = -dx
		}
		if dx < clearance {
			return false
		}
	}
	return true
}

func (w *World) spawnVehicle(entry ScheduledDeployment, lane int, x float64) {
	veh := w.newVehicle(entry.Type, lane, x, entry.DesiredVelocity, entry.IsDistractedCapable)
	veh.V = deploymentSpawnVelocityFrac * entry.DesiredVelocity
	w.addVehicle(veh)
}

// resetDeployments restores the pending queue from the original
// schedule_vehicle calls, used by World.Reset (spec §6).
func (w *World) resetDeployments() {
	w.scheduled = container.NewPriorityQueue[ScheduledDeployment]()
	for _, entry := range w.scheduledBackup {
		w.scheduled.Push(entry, entry.DeploymentTime)
	}
}
