package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDMFreeRoadAcceleration(t *testing.T) {
	a := idmAcceleration(0, 0, 30, 1.5, 2, 1.5, 2, 4, false, 0, 0, 0)
	assert.InDelta(t, 1.5, a, 1e-9)
}

func TestIDMAtDesiredSpeedNoLeaderIsZero(t *testing.T) {
	a := idmAcceleration(0, 30, 30, 1.5, 2, 1.5, 2, 4, false, 0, 0, 0)
	assert.InDelta(t, 0, a, 1e-9)
}

func TestIDMDeceleratesWhenGapTight(t *testing.T) {
	// follower right behind a stationary leader: large braking term.
	a := idmAcceleration(0, 20, 30, 1.5, 2, 1.5, 2, 4, true, 5, 0, 4.5)
	assert.Less(t, a, -1.0)
}

func TestIDMEquilibriumGapIsStable(t *testing.T) {
	// at the IDM equilibrium gap s*/sqrt(1-(v/v0)^delta) with matched
	// speeds, the free term and the interaction term cancel exactly.
	v, v0, T, s0, A, B := 25.0, 30.0, 1.5, 2.0, 1.5, 2.0
	sStar := s0 + v*T
	sEq := sStar / math.Sqrt(1-math.Pow(v/v0, 4))
	a := idmAcceleration(0, v, v0, T, s0, A, B, 4, true, sEq+4.5, v, 4.5)
	assert.InDelta(t, 0, a, 1e-9)
}

func TestVehicleIDMClampsToProfileBounds(t *testing.T) {
	veh := &Vehicle{V: 0, DesiredVelocity: 30, Profile: NewProfile(Normal), laneSpeedBias: 1.0}
	a := vehicleIDM(veh, nil, defaultLaneMaxV)
	assert.InDelta(t, veh.Profile.MaxAcceleration, a, 1e-9)
}

func TestVehicleIDMUsesEffectiveLaneLimitAsCeiling(t *testing.T) {
	// a lane limit well below the driver's own v0, perceived at bias
	// 1.0, caps the desired velocity the IDM free term targets: a
	// vehicle already above that ceiling should be decelerating, not
	// accelerating toward its own higher v0.
	veh := &Vehicle{V: 20, DesiredVelocity: 30, Profile: NewProfile(Normal), laneSpeedBias: 1.0}
	a := vehicleIDM(veh, nil, 15)
	assert.Less(t, a, 0.0)
}
