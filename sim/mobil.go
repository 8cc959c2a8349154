package sim

// mobilCandidate holds what evaluateMOBIL needs to rank one target
// lane against the ego's current lane (spec §4.3).
type mobilCandidate struct {
	lane     int
	deltaA   float64
}

// evaluateMOBIL runs the MOBIL safety + utility decision for ego and
// returns the lane it should move to, or ego.Lane if it should stay.
// Grounded on the teacher's entity/person/controllerlanechange.go:
// planLaneChange and original_source/src/vehicle.py:
// mobil_decide_lane_change / is_lane_change_safe /
// calculate_lane_change_advantage.
func (w *World) evaluateMOBIL(ego *Vehicle) int {
	curLane := w.lanes[ego.Lane]
	curLeader := curLane.leaderOf(ego.X, ego)
	curFollower := curLane.followerOf(ego.X, ego)

	aSelfCurrent := vehicleIDM(ego, curLeader, curLane.MaxV)
	aFollowerCurrentBefore := 0.0
	if curFollower != nil {
		aFollowerCurrentBefore = vehicleIDM(curFollower, ego, curLane.MaxV)
	}
	aFollowerCurrentAfter := 0.0
	if curFollower != nil {
		aFollowerCurrentAfter = vehicleIDM(curFollower, curLeader, curLane.MaxV)
	}
	disadvantageCurrentFollower := aFollowerCurrentBefore - aFollowerCurrentAfter
	if disadvantageCurrentFollower < 0 {
		disadvantageCurrentFollower = 0
	}

	var candidates []mobilCandidate
	for _, offset := range []int{-1, 1} {
		target := ego.Lane + offset
		if target < 0 || target >= w.K {
			continue
		}
		targetLane := w.lanes[target]
		targetLeader := targetLane.leaderOf(ego.X, ego)
		targetFollower := targetLane.followerOf(ego.X, ego)

		if !mobilSafe(ego, targetLeader, targetFollower, targetLane.MaxV) {
			continue
		}

		aSelfTarget := vehicleIDM(ego, targetLeader, targetLane.MaxV)

		aFollowerTargetBefore := 0.0
		aFollowerTargetAfter := 0.0
		if targetFollower != nil {
			aFollowerTargetBefore = vehicleIDM(targetFollower, targetLeader, targetLane.MaxV)
			aFollowerTargetAfter = vehicleIDM(targetFollower, ego, targetLane.MaxV)
		}
		// Disadvantage is "before minus after" throughout (positive
		// means the lane change harms that follower); this resolves
		// spec.md §4.3's before/after naming to match the sign
		// convention original_source/src/vehicle.py:
		// calculate_lane_change_advantage actually uses.
		disadvantageTargetFollower := aFollowerTargetBefore - aFollowerTargetAfter

		deltaA := (aSelfTarget - aSelfCurrent) - ego.Profile.Politeness*(disadvantageTargetFollower+disadvantageCurrentFollower)
		if offset > 0 {
			deltaA += ego.Profile.RightBias
		}
		candidates = append(candidates, mobilCandidate{lane: target, deltaA: deltaA})
	}

	best := ego.Lane
	bestDelta := 0.0
	threshold := ego.Profile.ChangeThreshold
	if threshold < 0 {
		threshold = 0
	}
	found := false
	for _, c := range candidates {
		if !found || c.deltaA > bestDelta {
			if c.deltaA > threshold {
				best = c.lane
				bestDelta = c.deltaA
				found = true
			}
		}
	}
	return best
}

// mobilSafe is the safety predicate of spec §4.3 step 2: a
// hypothetical ego placed in the target lane must keep enough gap to
// the target leader, and must not force the target follower to brake
// harder than the ego's own SafeDeceleration threshold — the ego's
// threshold, not the follower's, per spec §9's Open Question
// resolution and original_source/src/vehicle.py: is_lane_change_safe.
func mobilSafe(ego, targetLeader, targetFollower *Vehicle, targetLaneMaxV float64) bool {
	if targetLeader != nil {
		gap := targetLeader.X - ego.X - targetLeader.Length
		if gap < ego.Profile.MinGap {
			return false
		}
	}
	if targetFollower != nil {
		followerAcc := vehicleIDM(targetFollower, ego, targetLaneMaxV)
		if followerAcc < -ego.Profile.SafeDeceleration {
			return false
		}
	}
	return true
}
