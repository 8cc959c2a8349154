package sim

import "fmt"

// InvalidLaneError is returned when an operation names a lane outside
// [0, K) — part of the "configuration error" kind (spec §7.1) as
// applied to a live World rather than construction-time Config.
type InvalidLaneError struct {
	Lane  int
	Lanes int
}

func (e *InvalidLaneError) Error() string {
	return fmt.Sprintf("sim: lane %d outside [0, %d)", e.Lane, e.Lanes)
}
