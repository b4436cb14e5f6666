package msg

import (
	"fmt"
	"time"

	"github.com/dshills/nvimkit/nvim"
)

// DefaultBenchThreshold is the elapsed time below which Bench stays
// silent.
const DefaultBenchThreshold = 10 * time.Millisecond

// Bench starts timing an operation and returns a stop function.
// When the stop function runs and the elapsed time is at least
// threshold, vals plus the elapsed seconds (millisecond precision) are
// written as a message. A threshold <= 0 uses DefaultBenchThreshold.
//
// The stop function calls Write and so must run on the host's loop:
//
//	defer msg.Bench(c, 0, "reindex")()
func Bench(c nvim.Client, threshold time.Duration, vals ...any) func() {
	if threshold <= 0 {
		threshold = DefaultBenchThreshold
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		if elapsed < threshold {
			return
		}
		out := append(append([]any{}, vals...), fmt.Sprintf("%.3f", elapsed.Seconds()))
		_ = Write(c, out...)
	}
}
