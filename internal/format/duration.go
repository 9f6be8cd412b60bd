// Package format renders durations, progress, throughput and raw fixed-point
// bit patterns for the fixbench reports.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration shows microseconds below a millisecond,
// milliseconds below a second and the default representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}

// FormatPerOp renders the mean cost of one of n operations that took d in
// total, in nanoseconds.
func FormatPerOp(d time.Duration, n int) string {
	if n <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2f ns/op", float64(d.Nanoseconds())/float64(n))
}
