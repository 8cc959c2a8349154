package sim

// TickStats is one tick's worth of the rolling statistics series
// (spec §4.7).
type TickStats struct {
	Time            float64
	MeanVelocity    float64
	PerLaneCount    []int
	LaneChangeTotal int
}

// Stats accumulates per-tick statistics over a run.
type Stats struct {
	history         []TickStats
	laneChangeTotal int
}

func (s *Stats) record(t float64, meanV float64, perLane []int) TickStats {
	entry := TickStats{Time: t, MeanVelocity: meanV, PerLaneCount: perLane, LaneChangeTotal: s.laneChangeTotal}
	s.history = append(s.history, entry)
	return entry
}

func (s *Stats) reset() {
	s.history = nil
	s.laneChangeTotal = 0
}

// History returns every recorded tick's statistics, in order.
func (s *Stats) History() []TickStats { return s.history }

// MeanVelocityOverRun returns the time-average of MeanVelocity across
// every recorded tick (spec §6: run_steps return value), or -1 if no
// recorded tick had an active vehicle (including when no tick has been
// recorded).
func (s *Stats) MeanVelocityOverRun() float64 {
	if len(s.history) == 0 {
		return -1
	}
	sum := 0.0
	n := 0
	for _, h := range s.history {
		if h.MeanVelocity >= 0 {
			sum += h.MeanVelocity
			n++
		}
	}
	if n == 0 {
		return -1
	}
	return sum / float64(n)
}
