package sim

import "math"

// DriverType is the sealed set of driver archetypes a Vehicle is
// constructed from. It is a closed, small enum — no runtime reflection
// or string dispatch is needed to resolve it to a Profile, per
// SPEC_FULL.md's "sum-typed driver profiles" design note.
type DriverType int

const (
	Aggressive DriverType = iota
	Normal
	Cautious
	Polite
	Submissive
	Obstacle
)

func (d DriverType) String() string {
	switch d {
	case Aggressive:
		return "AGGRESSIVE"
	case Normal:
		return "NORMAL"
	case Cautious:
		return "CAUTIOUS"
	case Polite:
		return "POLITE"
	case Submissive:
		return "SUBMISSIVE"
	case Obstacle:
		return "OBSTACLE"
	default:
		return "UNKNOWN"
	}
}

// Profile is the immutable set of IDM + MOBIL parameters a Vehicle
// carries for its entire lifetime, populated once at construction from
// DriverType. Values below are the exact defaults specified in the
// driver-profile table, grounded on
// original_source/src/vehicle.py: set_driver_parameters.
type Profile struct {
	TimeHeadway          float64 // T, seconds
	MinGap               float64 // s0, meters
	MaxAcceleration      float64 // A, m/s^2
	ComfortableDeceleration float64 // B, m/s^2
	Exponent             float64 // delta
	Politeness           float64 // p, [0,1]
	ChangeThreshold      float64 // delta_a_th
	SafeDeceleration     float64 // b_safe
	RightBias            float64 // delta_a_bias
}

// NewProfile returns the fixed Profile for a DriverType. OBSTACLE
// carries a Profile with zero acceleration capacity and an unreachable
// lane-change threshold (+Inf) so it trivially never passes the MOBIL
// decision in §4.3 step 5, consistent with invariant 6 ("never
// evaluates MOBIL") without a separate code path.
func NewProfile(t DriverType) Profile {
	switch t {
	case Aggressive:
		return Profile{TimeHeadway: 1.5, MinGap: 1.5, MaxAcceleration: 2.0, ComfortableDeceleration: 3.0, Exponent: 4, Politeness: 0.1, ChangeThreshold: 0.0, SafeDeceleration: 5.0, RightBias: 0.1}
	case Normal:
		return Profile{TimeHeadway: 1.5, MinGap: 2.0, MaxAcceleration: 1.5, ComfortableDeceleration: 2.0, Exponent: 4, Politeness: 0.3, ChangeThreshold: 0.1, SafeDeceleration: 4.0, RightBias: 0.3}
	case Cautious:
		return Profile{TimeHeadway: 2.2, MinGap: 3.0, MaxAcceleration: 1.2, ComfortableDeceleration: 1.5, Exponent: 4, Politeness: 0.3, ChangeThreshold: 0.2, SafeDeceleration: 3.0, RightBias: 0.4}
	case Polite:
		return Profile{TimeHeadway: 1.5, MinGap: 2.0, MaxAcceleration: 1.5, ComfortableDeceleration: 2.0, Exponent: 4, Politeness: 0.7, ChangeThreshold: 0.2, SafeDeceleration: 4.0, RightBias: 0.4}
	case Submissive:
		return Profile{TimeHeadway: 2.5, MinGap: 3.5, MaxAcceleration: 1.0, ComfortableDeceleration: 1.5, Exponent: 4, Politeness: 0.8, ChangeThreshold: 0.3, SafeDeceleration: 2.5, RightBias: 0.5}
	case Obstacle:
		return Profile{MaxAcceleration: 0, ComfortableDeceleration: 0, Exponent: 4, ChangeThreshold: math.Inf(1)}
	default:
		return NewProfile(Normal)
	}
}
