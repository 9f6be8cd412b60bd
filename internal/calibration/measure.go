// Package calibration measures kernel throughput and caches calibrated
// iteration counts per machine.
//
// A measurement evaluates one operation over a fixed 128-value chunk of
// inputs drawn from its first domain, repeats the pass several times and
// keeps the fastest, reporting millions of operations per second.
package calibration

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/agbru/fixpoint/internal/accuracy"
	"github.com/agbru/fixpoint/internal/catalog"
	apperrors "github.com/agbru/fixpoint/internal/errors"
)

const (
	// ChunkSize is the number of inputs evaluated per iteration.
	ChunkSize = 128
	// Runs is the number of timed passes; the fastest is kept.
	Runs = 7
	// MaxIterations caps calibrated iteration counts.
	MaxIterations = 1 << 24
)

// sink defeats dead-code elimination of benchmark loops.
var sink int64

// Measurement is the throughput of one operation.
type Measurement struct {
	Op    catalog.Op
	Iters int
	Best  time.Duration
	Mops  float64
}

// Ops is the number of evaluations in one pass.
func (m Measurement) Ops() int64 {
	return int64(m.Iters) * ChunkSize
}

type chunk struct {
	a, b [ChunkSize]int64
}

func newChunk(op catalog.Op, seed uint64) *chunk {
	rng := accuracy.Stream(op, seed)
	d := op.Domains[0]
	c := &chunk{}
	for i := range c.a {
		c.a[i] = op.Width.FromDouble(accuracy.Draw(rng, d.X))
		if op.Binary != nil {
			c.b[i] = op.Width.FromDouble(accuracy.Draw(rng, d.Y))
		}
	}
	return c
}

// pass evaluates the chunk iters times and returns the elapsed time.
func (c *chunk) pass(op catalog.Op, iters int) time.Duration {
	var acc int64
	start := time.Now()
	if f := op.Binary; f != nil {
		for it := 0; it < iters; it++ {
			for i := 0; i < ChunkSize; i++ {
				acc ^= f(c.a[i], c.b[i])
			}
		}
	} else {
		f := op.Unary
		for it := 0; it < iters; it++ {
			for i := 0; i < ChunkSize; i++ {
				acc ^= f(c.a[i])
			}
		}
	}
	elapsed := time.Since(start)
	sink ^= acc
	return elapsed
}

// Measure times Runs passes of iters chunks and keeps the fastest.
func Measure(ctx context.Context, op catalog.Op, iters int, seed uint64) (Measurement, error) {
	if iters <= 0 {
		return Measurement{}, apperrors.EvaluationError{Op: op.Key(), Cause: fmt.Errorf("invalid iteration count %d", iters)}
	}
	c := newChunk(op, seed)
	best := time.Duration(math.MaxInt64)
	for r := 0; r < Runs; r++ {
		if err := ctx.Err(); err != nil {
			return Measurement{}, apperrors.EvaluationError{Op: op.Key(), Cause: err}
		}
		best = min(best, c.pass(op, iters))
	}
	m := Measurement{Op: op, Iters: iters, Best: best}
	if best > 0 {
		m.Mops = float64(m.Ops()) / best.Seconds() / 1e6
	}
	return m, nil
}

// Calibrate finds the iteration count whose pass takes about target.
func Calibrate(ctx context.Context, op catalog.Op, target time.Duration, seed uint64) (int, error) {
	c := newChunk(op, seed)
	iters := 1
	var elapsed time.Duration
	for {
		if err := ctx.Err(); err != nil {
			return 0, apperrors.EvaluationError{Op: op.Key(), Cause: err}
		}
		elapsed = c.pass(op, iters)
		if elapsed >= target/8 || iters >= MaxIterations {
			break
		}
		iters *= 2
	}
	if elapsed <= 0 {
		return MaxIterations, nil
	}
	scaled := float64(iters) * float64(target) / float64(elapsed)
	return int(max(1, min(scaled, MaxIterations))), nil
}

// CalibrateAll calibrates every op and records the counts in a new profile.
// progress, if set, receives the number of completed operations.
func CalibrateAll(ctx context.Context, ops []catalog.Op, target time.Duration, seed uint64, progress func(done int)) (*CalibrationProfile, error) {
	start := time.Now()
	p := NewProfile()
	p.Target = target.String()
	for i, op := range ops {
		n, err := Calibrate(ctx, op, target, seed)
		if err != nil {
			return nil, err
		}
		p.Iterations[op.Key()] = n
		if progress != nil {
			progress(i + 1)
		}
	}
	p.CalibrationTime = time.Since(start).Round(time.Millisecond).String()
	return p, nil
}
