// Package clock is the simulation time-base: a fixed time step dt,
// the current simulated time, and the number of ticks elapsed.
package clock

import "fmt"

// Clock advances simulated time by a fixed step. Unlike its ancestor,
// it carries no sub-loop or distributed-step-synchronization state:
// this simulator runs single-process and single-threaded within a run
// (see the tick loop in package sim), so there is nothing analogous to
// a sub-loop barrier or an RPC-exposed clock service.
type Clock struct {
	DT   float64 // seconds per tick
	T    float64 // current simulated time, seconds
	Step int     // ticks elapsed since the last Reset
}

// New returns a Clock starting at t=0 with the given tick length.
func New(dt float64) *Clock {
	return &Clock{DT: dt}
}

// Advance moves the clock forward by exactly one tick.
func (c *Clock) Advance() {
	c.T += c.DT
	c.Step++
}

// Reset returns the clock to t=0, step=0.
func (c *Clock) Reset() {
	c.T = 0
	c.Step = 0
}

// String renders elapsed time as HH:MM:SS.
func (c *Clock) String() string {
	total := int(c.T)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
