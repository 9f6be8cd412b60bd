// This file implements iteration estimation without benchmarking.

package calibration

import (
	"runtime"

	"github.com/agbru/fixpoint/internal/catalog"
)

// quickDivisor scales the catalog's reference iteration counts down to a
// pass of a few milliseconds on a typical core.
const quickDivisor = 100

// EstimateIterations returns the iteration count to use when no calibration
// profile covers op. Slower machines, judged by core count, get fewer
// iterations.
func EstimateIterations(op catalog.Op) int {
	n := op.Iters / quickDivisor
	if runtime.NumCPU() <= 2 {
		n /= 2
	}
	return max(1, n)
}

// ResolveIterations applies the resolution chain: calibrated profile, then
// the estimate.
func ResolveIterations(p *CalibrationProfile, op catalog.Op) int {
	return p.Iters(op.Key(), EstimateIterations(op))
}
