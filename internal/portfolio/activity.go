package portfolio

import "math/rand/v2"

const (
	ActivityPoints = 12
	ActivityMin    = 50
	ActivityMax    = 500 // exclusive
)

// IntSource is the random source behind the sample activity chart.
// *rand.Rand satisfies it.
type IntSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// GlobalSource draws from the process-wide math/rand/v2 generator and is
// safe for concurrent use.
var GlobalSource IntSource = globalSource{}

// ActivitySeries generates ActivityPoints values in [ActivityMin, ActivityMax).
// A fresh series is drawn on every call.
func ActivitySeries(src IntSource) []int {
	values := make([]int, ActivityPoints)
	for i := range values {
		values[i] = ActivityMin + src.IntN(ActivityMax-ActivityMin)
	}
	return values
}
