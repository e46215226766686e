package huffdual

import (
	"github.com/wippyai/huffdual/oracle"
)

var defaultHarness = oracle.New(oracle.DefaultPair)

// TestOneInput runs data through the default implementation pair. It returns
// 0 when the run is uninteresting and panics with the divergence error
// otherwise, so that a fuzz engine records the input.
func TestOneInput(data []byte) int {
	return defaultHarness.TestOneInput(data)
}
