package sim

import (
	"testing"

	"github.com/fib-lab/lanesim/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeploymentDropsAfterMaxAttempts(t *testing.T) {
	cfg := config.Default()
	cfg.NumVehicles = 0
	cfg.Lanes = 1
	cfg.RoadLength = 50 // small enough that every retry offset still collides
	w, err := NewWorld(cfg)
	require.NoError(t, err)

	for x := 0.0; x < cfg.RoadLength; x += 5 {
		occupant := w.newVehicle(Normal, 0, x, 25, false)
		occupant.Length = 20
		w.addVehicle(occupant)
	}

	before := len(w.vehicles)
	w.deployOne(ScheduledDeployment{Type: Normal, Lane: 0, InitialPosition: 0, DesiredVelocity: 25})
	assert.Len(t, w.vehicles, before, "a hopelessly blocked deployment should be dropped, not forced in")
	assert.NotEmpty(t, w.warnings)
}

func TestDeploymentRunsAllReadyEntriesInOneTick(t *testing.T) {
	cfg := config.Default()
	cfg.NumVehicles = 0
	cfg.Lanes = 3
	cfg.RoadLength = 1000
	w, err := NewWorld(cfg)
	require.NoError(t, err)

	w.ScheduleVehicle(ScheduledDeployment{Type: Normal, Lane: 0, InitialPosition: 0, DesiredVelocity: 25, DeploymentTime: 0})
	w.ScheduleVehicle(ScheduledDeployment{Type: Normal, Lane: 1, InitialPosition: 0, DesiredVelocity: 25, DeploymentTime: 0})
	w.ScheduleVehicle(ScheduledDeployment{Type: Normal, Lane: 2, InitialPosition: 0, DesiredVelocity: 25, DeploymentTime: 0})

	w.runDeployments()

	assert.Len(t, w.vehicles, 3)
}
