package sim

import "math"

const (
	distractionCheckInterval = 1.0   // seconds between eligibility checks
	distractionProbability   = 0.005 // per-check probability of onset
	distractionMinDuration   = 3.0
	distractionMaxDuration   = 5.0
	emergencyGapHeadway      = 1.0 // seconds, used in the emergency-braking safe gap
	emergencyBrakingFactor   = 1.5 // multiplies ComfortableDeceleration
)

// PositionalDistraction is a geographic, time-bounded zone that caps
// vehicle speed while active (spec §3, §4.6). Concrete application
// semantics are this repository's own design infill — see DESIGN.md
// Open Question 3 — since original_source never applies `slowness` on
// any committed code path.
type PositionalDistraction struct {
	Center   float64
	Range    float64
	Slowness float64 // in (0, 1]
	SpawnTime float64
	Duration  float64
}

func (z *PositionalDistraction) active(t float64) bool {
	return z.SpawnTime <= t && t < z.SpawnTime+z.Duration
}

func (z *PositionalDistraction) covers(x float64) bool {
	return math.Abs(x-z.Center) <= z.Range
}

// refreshDistraction updates per-driver random inattention for veh
// (spec §4.6). Eligible only for can_be_distracted, non-obstacle
// vehicles; grounded on original_source/src/vehicle.py:
// check_distraction.
func (w *World) refreshDistraction(veh *Vehicle) {
	if veh.IsObstacle() || !veh.CanBeDistracted {
		return
	}
	if veh.IsDistracted {
		if w.t >= veh.DistractionStart+veh.DistractionDuration {
			veh.IsDistracted = false
		}
		return
	}
	if w.t-veh.lastDistractionCheck < distractionCheckInterval {
		return
	}
	veh.lastDistractionCheck = w.t
	if w.rng.PTrue(distractionProbability) {
		veh.IsDistracted = true
		veh.DistractionStart = w.t
		veh.DistractionDuration = w.rng.Uniform(distractionMinDuration, distractionMaxDuration)
	}
}

// emergencyBrakeAcceleration returns the emergency deceleration a
// distracted vehicle applies this tick when its leader gap has fallen
// below the safe distraction gap (spec §4.6), or (0, false) if no
// override is needed.
func (w *World) emergencyBrakeAcceleration(veh *Vehicle, leader *Vehicle) (float64, bool) {
	if leader == nil {
		return 0, false
	}
	gap := leader.X - veh.X - leader.Length
	safeGap := veh.Profile.MinGap + veh.V*emergencyGapHeadway
	if gap >= safeGap {
		return 0, false
	}
	dec := math.Min(emergencyBrakingFactor*veh.Profile.ComfortableDeceleration, veh.V/w.dt)
	return -dec, true
}

// applyZoneCap returns the tightest speed ceiling among all active
// zones covering x, or +Inf if none apply. Multiple zones compose by
// taking the minimum cap (spec §4.6).
func (w *World) applyZoneCap(x, v0 float64) float64 {
	cap := math.Inf(1)
	for _, z := range w.zones {
		if z.active(w.t) && z.covers(x) {
			c := z.Slowness * v0
			if c < cap {
				cap = c
			}
		}
	}
	return cap
}
