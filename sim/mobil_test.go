package sim

import (
	"testing"

	"github.com/fib-lab/lanesim/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMobilSafeRejectsTooCloseLeader(t *testing.T) {
	ego := &Vehicle{X: 100, V: 25, Profile: NewProfile(Normal), Length: 4.5, DesiredVelocity: 25, laneSpeedBias: 1.0}
	leader := &Vehicle{X: 101, V: 25, Profile: NewProfile(Normal), Length: 4.5, DesiredVelocity: 25, laneSpeedBias: 1.0}
	assert.False(t, mobilSafe(ego, leader, nil, defaultLaneMaxV))
}

func TestMobilSafeAcceptsEmptyLane(t *testing.T) {
	ego := &Vehicle{X: 100, V: 25, Profile: NewProfile(Normal), Length: 4.5, DesiredVelocity: 25, laneSpeedBias: 1.0}
	assert.True(t, mobilSafe(ego, nil, nil, defaultLaneMaxV))
}

func TestEvaluateMOBILStaysWhenNoBenefit(t *testing.T) {
	cfg := config.Default()
	cfg.NumVehicles = 0
	cfg.Lanes = 2
	w, err := NewWorld(cfg)
	require.NoError(t, err)

	ego := w.newVehicle(Normal, 1, 100, 25, false)
	ego.V = 25
	w.addVehicle(ego)

	// empty current lane and empty target lane, with the ego already in
	// the highest-index lane so the only candidate (lane 0) earns no
	// right-lane bias: no acceleration gain from switching, so the ego
	// should stay put.
	target := w.evaluateMOBIL(ego)
	assert.Equal(t, ego.Lane, target)
}

func TestEvaluateMOBILSwitchesAwayFromSlowLeader(t *testing.T) {
	cfg := config.Default()
	cfg.NumVehicles = 0
	cfg.Lanes = 2
	w, err := NewWorld(cfg)
	require.NoError(t, err)

	ego := w.newVehicle(Normal, 0, 100, 25, false)
	ego.V = 25
	w.addVehicle(ego)
	slow := w.newVehicle(Normal, 0, 115, 15, false)
	slow.V = 15
	w.addVehicle(slow)

	target := w.evaluateMOBIL(ego)
	assert.Equal(t, 1, target)
}
