package sim

import (
	"fmt"

	"github.com/fib-lab/lanesim/clock"
	"github.com/fib-lab/lanesim/config"
	"github.com/fib-lab/lanesim/internal/container"
	"github.com/fib-lab/lanesim/internal/randengine"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const maxWarningsKept = 20

// World owns road geometry, the clock, the vehicle fleet, obstacles,
// the deployment queue, positional-distraction zones, and statistics —
// it drives one simulation tick at a time (spec §2, §3).
type World struct {
	L float64
	K int
	dt float64
	t  float64

	cfg config.Config
	clk *clock.Clock

	lanes    []*Lane
	vehicles map[int]*Vehicle
	nextID   int

	scheduled       *container.PriorityQueue[ScheduledDeployment]
	scheduledBackup []ScheduledDeployment

	zones []*PositionalDistraction

	rng  *randengine.Engine
	seed uint64

	stats    Stats
	warnings []string

	debugInvariants bool

	log *logrus.Entry
}

// NewWorld validates cfg and, on success, constructs a World with its
// initial vehicle population (spec §6: new_world(config) -> World).
func NewWorld(cfg config.Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.LaneChangeGateProb == 0 {
		cfg.LaneChangeGateProb = 0.1
	}
	w := &World{
		L:        cfg.RoadLength,
		K:        cfg.Lanes,
		dt:       cfg.DT,
		cfg:      cfg,
		clk:      clock.New(cfg.DT),
		vehicles: make(map[int]*Vehicle),
		scheduled: container.NewPriorityQueue[ScheduledDeployment](),
		rng:      randengine.New(cfg.Seed),
		seed:     cfg.Seed,
		log:      log,
	}
	w.lanes = make([]*Lane, w.K)
	for i := range w.lanes {
		w.lanes[i] = newLane(i, defaultLaneMaxV)
	}
	w.populateInitialVehicles()
	return w, nil
}

const defaultLaneMaxV = 40.0 // m/s; the original source has no lane speed limit concept, only per-vehicle v0 — this ceiling is above every v0 the simulator draws (at most 35), but a vehicle perceives it scaled by its laneSpeedBias in [0.7, 1.3], i.e. as 28 to 52 m/s, so it can bind below a vehicle's v0.

func (w *World) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	w.log.Warn(msg)
	w.warnings = append(w.warnings, msg)
	if len(w.warnings) > maxWarningsKept {
		w.warnings = w.warnings[len(w.warnings)-maxWarningsKept:]
	}
}

// newVehicle constructs a Vehicle with a fresh id and the Profile for
// its type, drawing the supplemented laneSpeedBias from the shared
// stream (SPEC_FULL.md §4).
func (w *World) newVehicle(t DriverType, lane int, x, desiredV float64, canBeDistracted bool) *Vehicle {
	w.nextID++
	bias := 1 + 0.1*w.rng.NormFloat64()
	bias = lo.Clamp(bias, 0.7, 1.3)
	return &Vehicle{
		ID: w.nextID, X: x, Lane: lane,
		Type: t, Profile: NewProfile(t),
		DesiredVelocity: desiredV, Length: 4.5, Width: 2.0,
		laneSpeedBias:   bias,
		CanBeDistracted: canBeDistracted,
		createdAt:       w.t,
	}
}

func (w *World) addVehicle(veh *Vehicle) {
	w.vehicles[veh.ID] = veh
	w.lanes[veh.Lane].Add(veh)
}

func (w *World) removeVehicle(veh *Vehicle) {
	w.lanes[veh.Lane].Remove(veh)
	delete(w.vehicles, veh.ID)
}

// AddObstacle places a static OBSTACLE vehicle, active while
// startTime <= t < endTime (spec §3). Grounded on
// original_source/src/trafficSimulation.py: add_obstacle.
func (w *World) AddObstacle(lane int, x, startTime, endTime float64) error {
	if lane < 0 || lane >= w.K {
		return &InvalidLaneError{Lane: lane, Lanes: w.K}
	}
	veh := w.newVehicle(Obstacle, lane, x, 1, false)
	veh.ObstacleStartTime = startTime
	veh.ObstacleEndTime = endTime
	w.addVehicle(veh)
	return nil
}

// AddPositionalDistraction registers a zone (spec §6).
func (w *World) AddPositionalDistraction(z PositionalDistraction) {
	w.zones = append(w.zones, &z)
}

// populateInitialVehicles creates the t=0 population: random
// (x, lane), with up to 50 draws for an x clear of the lane's
// occupants before falling back to any random x, v0 ~ Uniform(25,35), distraction
// eligibility per distracted_percentage (spec §3 Lifecycles).
func (w *World) populateInitialVehicles() {
	types := SampleDriverTypes(w.rng, w.cfg.DriverTypeDistribution.Slice(), w.cfg.NumVehicles)
	for _, t := range types {
		lane := w.rng.Intn(w.K)
		x := w.findNonOverlappingPosition(lane)
		desiredV := w.rng.Uniform(25, 35)
		distracted := w.rng.Float64()*100 <= w.cfg.DistractedPercentage
		veh := w.newVehicle(t, lane, x, desiredV, distracted)
		veh.V = 0.7 * desiredV
		w.addVehicle(veh)
	}
}

func (w *World) findNonOverlappingPosition(lane int) float64 {
	for attempt := 0; attempt < 50; attempt++ {
		x := w.rng.Uniform(0, w.L)
		if w.spawnIsClear(lane, x) {
			return x
		}
	}
	return w.rng.Uniform(0, w.L)
}

// SampleDriverTypes realizes a population of n drivers from a PMF over
// {AGGRESSIVE, NORMAL, CAUTIOUS, POLITE, SUBMISSIVE}: floor(p_i*n) per
// type, residual assigned to NORMAL, then uniformly shuffled
// (spec §4.8), grounded on
// original_source/src/trafficSimulation.py: num_each_driver_type.
func SampleDriverTypes(rng *randengine.Engine, weights []float64, n int) []DriverType {
	counts := make([]int, len(weights))
	assigned := 0
	for i, p := range weights {
		counts[i] = int(p * float64(n))
		assigned += counts[i]
	}
	counts[Normal] += n - assigned

	types := make([]DriverType, 0, n)
	for i, c := range counts {
		for j := 0; j < c; j++ {
			types = append(types, DriverType(i))
		}
	}
	rng.Shuffle(len(types), func(i, j int) { types[i], types[j] = types[j], types[i] })
	return types
}

// Reset restores the original scheduled-vehicle and zone lists and
// re-seeds the PRNG stream (spec §6: reset()).
func (w *World) Reset() {
	w.t = 0
	w.clk.Reset()
	w.vehicles = make(map[int]*Vehicle)
	w.nextID = 0
	for i := range w.lanes {
		w.lanes[i] = newLane(i, defaultLaneMaxV)
	}
	w.stats.reset()
	w.warnings = nil
	w.rng = randengine.New(w.seed)
	w.resetDeployments()
	w.populateInitialVehicles()
}
