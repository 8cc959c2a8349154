// Package config is the YAML-backed configuration for a simulation
// run, following the teacher's yaml.v2 struct-tag idiom.
package config

import (
	"fmt"
	"math"
)

// DriverDistribution is the fraction of the initial/deployed
// population assigned to each driver type. Fractions must be
// non-negative and sum to 1 within ±0.01 (spec §6); the NORMAL slack
// rule resolves any rounding remainder (see sim.SampleDriverTypes).
type DriverDistribution struct {
	Aggressive float64 `yaml:"aggressive"`
	Normal     float64 `yaml:"normal"`
	Cautious   float64 `yaml:"cautious"`
	Polite     float64 `yaml:"polite"`
	Submissive float64 `yaml:"submissive"`
}

// Slice returns the five fractions in AGGRESSIVE, NORMAL, CAUTIOUS,
// POLITE, SUBMISSIVE order, matching sim.DriverType's iota ordering.
func (d DriverDistribution) Slice() []float64 {
	return []float64{d.Aggressive, d.Normal, d.Cautious, d.Polite, d.Submissive}
}

// DefaultDriverDistribution mirrors the original source's default mix
// (original_source/src/trafficSimulation.py: driver_distribution).
func DefaultDriverDistribution() DriverDistribution {
	return DriverDistribution{Aggressive: 0.3, Normal: 0.3, Cautious: 0.2, Polite: 0.1, Submissive: 0.1}
}

// Config is everything new_world(config) (spec §6) needs to build a
// World.
type Config struct {
	RoadLength            float64            `yaml:"road_length"`
	Lanes                 int                `yaml:"lanes_count"`
	NumVehicles           int                `yaml:"n_vehicles"`
	DT                    float64            `yaml:"dt"`
	SimulationTime        float64            `yaml:"simulation_time"`
	DistractedPercentage  float64            `yaml:"distracted_percentage"`
	DriverTypeDistribution DriverDistribution `yaml:"driver_type_distribution"`

	// Seed reseeds the shared PRNG stream; 0 means "pick one from a
	// wall-clock-independent default" left to the caller (the CLI
	// always supplies an explicit value so runs stay reproducible).
	Seed uint64 `yaml:"seed,omitempty"`

	// LaneChangeGateProb is the per-tick Bernoulli gate on evaluating
	// MOBIL at all (spec §9, Open Question: "lane-change rate gating").
	// Defaults to 0.1, the source's hardcoded value.
	LaneChangeGateProb float64 `yaml:"lane_change_gate_prob,omitempty"`

	// AccelNoiseStdDev adds a small Gaussian wobble to the *reported*
	// acceleration only (SPEC_FULL.md supplemented feature); the wobble
	// is not sign-preserving and can flip the reported sign. 0 disables it, which is the default and is required
	// for the determinism law in spec §8 to hold exactly.
	AccelNoiseStdDev float64 `yaml:"accel_noise_std_dev,omitempty"`

	// AnimationInterval is accepted but neither validated nor consumed
	// by the core; a display-only pass-through per spec §6.
	AnimationInterval float64 `yaml:"animation_interval,omitempty"`
}

// Default returns the original source's default parameterization
// (original_source/src/trafficSimulation.py: TrafficSimulation.__init__).
func Default() Config {
	return Config{
		RoadLength:             1000,
		Lanes:                  3,
		NumVehicles:            30,
		DT:                     0.5,
		SimulationTime:         100,
		DistractedPercentage:   10,
		DriverTypeDistribution: DefaultDriverDistribution(),
		LaneChangeGateProb:     0.1,
	}
}

// ValidationError is the "configuration error" kind of spec §7: it is
// returned, never panicked, and construction simply does not proceed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Validate checks every field new_world(config) relies on, per spec §7.
func (c *Config) Validate() error {
	if c.RoadLength <= 0 {
		return &ValidationError{"road_length", "must be > 0"}
	}
	if c.Lanes < 1 {
		return &ValidationError{"lanes_count", "must be >= 1"}
	}
	if c.NumVehicles < 0 {
		return &ValidationError{"n_vehicles", "must be >= 0"}
	}
	if c.DT <= 0 {
		return &ValidationError{"dt", "must be > 0"}
	}
	if c.SimulationTime <= 0 {
		return &ValidationError{"simulation_time", "must be > 0"}
	}
	if c.DistractedPercentage < 0 || c.DistractedPercentage > 100 {
		return &ValidationError{"distracted_percentage", "must be in [0, 100]"}
	}
	sum := 0.0
	for _, p := range c.DriverTypeDistribution.Slice() {
		if p < 0 {
			return &ValidationError{"driver_type_distribution", "fractions must be non-negative"}
		}
		sum += p
	}
	if math.Abs(sum-1) > 0.01 {
		return &ValidationError{"driver_type_distribution", fmt.Sprintf("fractions must sum to 1 (±0.01), got %f", sum)}
	}
	if c.LaneChangeGateProb < 0 || c.LaneChangeGateProb > 1 {
		return &ValidationError{"lane_change_gate_prob", "must be in [0, 1]"}
	}
	if c.AccelNoiseStdDev < 0 {
		return &ValidationError{"accel_noise_std_dev", "must be >= 0"}
	}
	return nil
}
