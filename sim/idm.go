package sim

import (
	"math"

	"github.com/samber/lo"
)

// idmAcceleration is the pure Intelligent Driver Model acceleration
// law (spec §4.2), grounded on the teacher's
// entity/person/controllermodel.go: followImpl. It is called both for
// real per-tick updates and for the hypothetical hood placements MOBIL
// needs (spec §4.2: "called both for actual updates and for
// hypothetical MOBIL evaluations") and must stay side-effect free.
//
// followerV/followerV0/followerT/followerS0/followerA/followerB/delta
// describe the follower; hasLeader/leaderX/leaderV/leaderLength
// describe the (possibly absent) leader ahead in the same lane.
func idmAcceleration(
	followerX, followerV, followerV0, followerT, followerS0, followerA, followerB, delta float64,
	hasLeader bool, leaderX, leaderV, leaderLength float64,
) float64 {
	freeTerm := followerA * (1 - math.Pow(followerV/followerV0, delta))
	if !hasLeader {
		return freeTerm
	}

	gap := leaderX - followerX - leaderLength
	gap = math.Max(gap, 0.1) // avoid a singular (s*/s)^2 term

	dv := followerV - leaderV
	sStar := followerS0 + math.Max(0, followerV*followerT+(followerV*dv)/(2*math.Sqrt(followerA*followerB)))
	interactionTerm := -followerA * (sStar / gap) * (sStar / gap)

	return freeTerm + interactionTerm
}

// vehicleIDM computes ego's IDM acceleration given an optional leader
// and the posted maximum speed of the lane ego occupies (or is
// hypothetically evaluated in), clamped to [-3B, A] with lo.Clamp,
// matching the teacher's defensive clamp idiom in controllermodel.go.
// The upper bound never binds (the IDM value is at most A); the lower
// bound does bind when a tight gap calls for braking harder than 3B.
//
// The desired velocity fed into the IDM law is
// min(ego.DesiredVelocity, ego.EffectiveLaneLimit(laneMaxV)) — a
// driver never targets faster than both their own v0 and the lane
// limit they perceive through their cognitive bias (SPEC_FULL.md §4).
func vehicleIDM(ego *Vehicle, leader *Vehicle, laneMaxV float64) float64 {
	p := ego.Profile
	v0 := math.Min(ego.DesiredVelocity, ego.EffectiveLaneLimit(laneMaxV))
	if leader == nil {
		a := p.MaxAcceleration * (1 - math.Pow(ego.V/v0, p.Exponent))
		return lo.Clamp(a, -p.ComfortableDeceleration*3, p.MaxAcceleration)
	}
	a := idmAcceleration(
		ego.X, ego.V, v0, p.TimeHeadway, p.MinGap, p.MaxAcceleration, p.ComfortableDeceleration, p.Exponent,
		true, leader.X, leader.V, leader.Length,
	)
	return lo.Clamp(a, -p.ComfortableDeceleration*3, p.MaxAcceleration)
}
