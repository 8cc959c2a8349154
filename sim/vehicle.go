package sim

// Vehicle is a mutable agent: kinematic state plus an immutable driver
// Profile plus transient distraction/obstacle flags (spec §3).
type Vehicle struct {
	ID int

	// kinematic state
	X     float64 // position, meters, [0, L)
	V     float64 // velocity, m/s, >= 0
	A     float64 // acceleration, m/s^2
	Lane  int

	Type    DriverType
	Profile Profile

	DesiredVelocity float64 // v0, m/s
	Length          float64 // meters
	Width           float64 // meters, visualization only

	// reportedA is A plus the opt-in Gaussian wobble of
	// Config.AccelNoiseStdDev (SPEC_FULL.md §4, "acceleration noise").
	// It never feeds back into V's integration — only Snapshot/DebugDump
	// read it — so the IDM determinism law holds regardless of whether
	// noise is enabled.
	reportedA float64

	// laneSpeedBias is the supplemented per-vehicle cognitive bias on
	// the lane's posted limit (SPEC_FULL.md §4, "driver recognized-
	// limit bias"); 1.0 disables it entirely.
	laneSpeedBias float64

	// distraction state (per-driver random inattention, spec §4.6)
	CanBeDistracted     bool
	IsDistracted        bool
	DistractionStart    float64
	DistractionDuration float64
	lastDistractionCheck float64

	// obstacle state (only meaningful when Type == Obstacle)
	ObstacleStartTime float64
	ObstacleEndTime   float64
	IsActive          bool

	createdAt float64
}

// VelocityV returns the vehicle's velocity. *Vehicle does not itself
// implement container.Positioned (a V method would collide with the
// exported V field); the positioned adapter below does.
func (veh *Vehicle) VelocityV() float64 { return veh.V }

// LengthL returns the vehicle's length.
func (veh *Vehicle) LengthL() float64 { return veh.Length }

// positioned adapts *Vehicle to container.Positioned without exposing
// field/method name collisions on the hot Vehicle struct itself.
type positioned struct{ veh *Vehicle }

func (p positioned) V() float64      { return p.veh.V }
func (p positioned) Length() float64 { return p.veh.Length }

// EffectiveLaneLimit is the speed ceiling this vehicle perceives for a
// lane with the given posted maximum, folding in its cognitive bias.
func (veh *Vehicle) EffectiveLaneLimit(laneMaxV float64) float64 {
	return laneMaxV * veh.laneSpeedBias
}

// IsObstacle reports whether this vehicle is a static OBSTACLE
// (spec §3: "represented as a Vehicle with driver_type = OBSTACLE").
func (veh *Vehicle) IsObstacle() bool { return veh.Type == Obstacle }
