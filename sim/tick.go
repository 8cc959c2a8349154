package sim

// Step advances the World by exactly one dt (spec §6: step(),
// spec §4.1: the 8-step tick loop). All reads in steps 2-5 see the
// pre-integration state. Lane changes decided in step 5 are committed
// before the step-4 accelerations are computed, so each vehicle's
// acceleration, and therefore its integration in step 6, is based on
// its leader in the lane it occupies after the change. This is
// the two-phase "compute-then-apply" ordering SPEC_FULL.md's ambient
// design requires and original_source's single-pass per-vehicle loop
// does not provide.
func (w *World) Step() {
	w.runDeployments()
	w.activateObstacles()
	w.refreshAllDistractions()

	laneChanges := w.decideLaneChanges()
	w.applyLaneChanges(laneChanges)

	accelerations, emergencyFired := w.computeAccelerations()
	w.integrate(accelerations, emergencyFired)
	w.retireDeparted()
	w.recordStatistics()

	w.t += w.dt
	w.clk.Advance()

	if w.debugInvariants {
		w.assertInvariants()
	}
}

// RunSteps advances n ticks and returns the time-average mean velocity
// over active vehicles across the run, or -1 if no recorded tick had
// an active vehicle (including when no tick has been recorded)
// (spec §6: run_steps).
func (w *World) RunSteps(n int) float64 {
	for i := 0; i < n; i++ {
		w.Step()
	}
	return w.stats.MeanVelocityOverRun()
}

func (w *World) activateObstacles() {
	for _, veh := range w.vehicles {
		if veh.IsObstacle() {
			veh.IsActive = veh.ObstacleStartTime <= w.t && w.t < veh.ObstacleEndTime
		}
	}
}

func (w *World) refreshAllDistractions() {
	for _, veh := range w.vehicles {
		w.refreshDistraction(veh)
	}
}

// computeAccelerations is tick-loop step 4: every non-obstacle vehicle
// queries its leader in its current lane and computes a via IDM. It
// also reports, per vehicle, whether emergency braking fired this
// tick — integrate() needs that to know whether a distracted
// vehicle's v must still be updated (spec §4.6).
func (w *World) computeAccelerations() (map[int]float64, map[int]bool) {
	out := make(map[int]float64, len(w.vehicles))
	fired := make(map[int]bool, len(w.vehicles))
	for _, veh := range w.vehicles {
		if veh.IsObstacle() {
			out[veh.ID] = 0
			continue
		}
		lane := w.lanes[veh.Lane]
		leader := lane.leaderOf(veh.X, veh)
		a := vehicleIDM(veh, leader, lane.MaxV)
		if veh.IsDistracted {
			if brake, fire := w.emergencyBrakeAcceleration(veh, leader); fire {
				a = brake
				fired[veh.ID] = true
			}
		}
		out[veh.ID] = a
	}
	return out, fired
}

// decideLaneChanges is tick-loop step 5: for each non-obstacle,
// non-distracted vehicle, with probability cfg.LaneChangeGateProb,
// evaluate MOBIL and commit at most one lane change (spec §4.1,
// invariant 7).
func (w *World) decideLaneChanges() map[int]int {
	out := make(map[int]int)
	for _, veh := range w.vehicles {
		if veh.IsObstacle() || veh.IsDistracted {
			continue
		}
		if !w.rng.PTrue(w.cfg.LaneChangeGateProb) {
			continue
		}
		target := w.evaluateMOBIL(veh)
		if target != veh.Lane {
			out[veh.ID] = target
		}
	}
	return out
}

func (w *World) applyLaneChanges(laneChanges map[int]int) {
	for id, target := range laneChanges {
		veh := w.vehicles[id]
		if veh == nil {
			continue
		}
		w.lanes[veh.Lane].Remove(veh)
		veh.Lane = target
		w.lanes[target].Add(veh)
		w.stats.laneChangeTotal++
	}
}

// integrate is tick-loop step 6: velocity and position integration,
// with the distraction/zone overrides of spec §4.6. A distracted
// vehicle's v is held constant unless emergency braking fired this
// tick, in which case the computed braking deceleration must still be
// applied.
func (w *World) integrate(accelerations map[int]float64, emergencyFired map[int]bool) {
	for _, veh := range w.vehicles {
		if veh.IsObstacle() {
			continue
		}
		veh.A = accelerations[veh.ID]
		veh.reportedA = veh.A
		if w.cfg.AccelNoiseStdDev > 0 {
			veh.reportedA += w.cfg.AccelNoiseStdDev * w.rng.NormFloat64()
		}
		if !veh.IsDistracted || emergencyFired[veh.ID] {
			veh.V = veh.V + veh.A*w.dt
		}
		vMax := 2 * veh.DesiredVelocity
		if veh.V < 0 {
			veh.V = 0
		}
		if veh.V > vMax {
			veh.V = vMax
		}
		if cap := w.applyZoneCap(veh.X, veh.DesiredVelocity); veh.V > cap {
			veh.V = cap
		}
		veh.X += veh.V * w.dt
		// A vehicle that entered a zone during this tick is capped as
		// well, so v never exceeds the cap while the vehicle is inside.
		if cap := w.applyZoneCap(veh.X, veh.DesiredVelocity); veh.V > cap {
			veh.V = cap
		}
	}
	for _, lane := range w.lanes {
		lane.Resort()
	}
}

// retireDeparted is tick-loop step 7: remove vehicles with x >= L
// (spec §3 invariant 1, Lifecycles: "destroyed when it crosses x = L").
func (w *World) retireDeparted() {
	var departed []*Vehicle
	for _, veh := range w.vehicles {
		if !veh.IsObstacle() && veh.X >= w.L {
			departed = append(departed, veh)
		}
	}
	for _, veh := range departed {
		w.removeVehicle(veh)
	}
}

func (w *World) recordStatistics() {
	sum := 0.0
	n := 0
	perLane := make([]int, w.K)
	for _, veh := range w.vehicles {
		if veh.IsObstacle() {
			continue
		}
		sum += veh.V
		n++
		perLane[veh.Lane]++
	}
	mean := -1.0
	if n > 0 {
		mean = sum / float64(n)
	}
	w.stats.record(w.t, mean, perLane)
}
