package sim

import "github.com/fib-lab/lanesim/internal/randengine"

func newTestEngine(seed uint64) *randengine.Engine {
	return randengine.New(seed)
}
