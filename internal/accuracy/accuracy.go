// Package accuracy measures the error of kernel operations against their
// float64 references over seeded random inputs.
//
// Inputs are drawn uniformly from each of an operation's domains, converted
// to raw bits with the kernel's own FromDouble and scored with the
// operation's metric. References beyond the width's representable range are
// skipped, as are non-finite references.
package accuracy

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"time"

	"github.com/agbru/fixpoint/internal/catalog"
	apperrors "github.com/agbru/fixpoint/internal/errors"
)

// DefaultSamples is the number of inputs drawn per domain.
const DefaultSamples = 1 << 16

// DefaultSeed seeds the input stream when none is configured.
const DefaultSeed uint64 = 12345678

// cancelCheckInterval is how many samples run between context checks.
const cancelCheckInterval = 4096

// ErrNoSamples is returned when every reference fell outside the bounds.
var ErrNoSamples = errors.New("no sample within reference bounds")

// Options controls a sweep.
type Options struct {
	// Samples is the number of inputs drawn per domain.
	Samples int
	// Seed seeds the PCG stream. Each operation mixes its key into the seed so
	// results do not depend on evaluation order.
	Seed uint64
	// Progress, if set, is called with the completed fraction in [0, 1].
	Progress func(fraction float64)
}

// Result summarizes one operation's sweep.
type Result struct {
	Op       catalog.Op
	Tested   int
	Skipped  int
	TotalErr float64
	MaxErr   float64
	// Worst holds the raw inputs that produced MaxErr.
	Worst    []int64
	Duration time.Duration
}

// AvgErr is the mean error over tested samples.
func (r Result) AvgErr() float64 {
	if r.Tested == 0 {
		return 0
	}
	return r.TotalErr / float64(r.Tested)
}

// Exact reports whether every tested sample matched the reference exactly.
func (r Result) Exact() bool {
	return r.Tested > 0 && r.MaxErr == 0
}

// WorstDecimal converts the worst inputs to float64 for display.
func (r Result) WorstDecimal() []float64 {
	out := make([]float64, len(r.Worst))
	for i, raw := range r.Worst {
		out[i] = r.Op.Width.ToDouble(raw)
	}
	return out
}

// Stream returns the deterministic random source for op under seed.
func Stream(op catalog.Op, seed uint64) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(op.Key()))
	return rand.New(rand.NewPCG(seed, h.Sum64()))
}

// Draw returns a uniform sample of r.
func Draw(rng *rand.Rand, r catalog.Range) float64 {
	return r.Lo + (r.Hi-r.Lo)*rng.Float64()
}

// Evaluate runs the sweep for one operation.
func Evaluate(ctx context.Context, op catalog.Op, opts Options) (Result, error) {
	if opts.Samples <= 0 {
		opts.Samples = DefaultSamples
	}
	start := time.Now()
	rng := Stream(op, opts.Seed)
	limit := op.Width.ReferenceLimit()
	arity := op.Arity()
	total := opts.Samples * len(op.Domains)

	res := Result{Op: op, Worst: make([]int64, arity)}
	raw := make([]int64, 2)
	dec := make([]float64, 2)
	done := 0

	for _, d := range op.Domains {
		for i := 0; i < opts.Samples; i++ {
			if done%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return res, apperrors.EvaluationError{Op: op.Key(), Cause: err}
				}
				if opts.Progress != nil && total > 0 {
					opts.Progress(float64(done) / float64(total))
				}
			}
			done++

			raw[0] = op.Width.FromDouble(Draw(rng, d.X))
			if arity == 2 {
				raw[1] = op.Width.FromDouble(Draw(rng, d.Y))
			}
			for j := 0; j < arity; j++ {
				dec[j] = op.Width.ToDouble(raw[j])
			}

			ref := op.Reference(dec[:arity]...)
			if !(math.Abs(ref) <= limit) {
				res.Skipped++
				continue
			}
			out := op.Width.ToDouble(op.Eval(raw[:arity]...))
			e := op.Metric.Error(dec[0], dec[1], out, ref)

			res.Tested++
			res.TotalErr += e
			if e >= res.MaxErr {
				res.MaxErr = e
				copy(res.Worst, raw[:arity])
			}
		}
	}

	res.Duration = time.Since(start)
	if opts.Progress != nil {
		opts.Progress(1)
	}
	if res.Tested == 0 {
		return res, apperrors.EvaluationError{Op: op.Key(), Cause: ErrNoSamples}
	}
	return res, nil
}

// Basic is one hand-picked input scored individually.
type Basic struct {
	In  []float64
	Ref float64
	Out float64
	Raw int64
	Err float64
}

// EvaluateBasic scores the operation's hand-picked inputs.
func EvaluateBasic(op catalog.Op) []Basic {
	inputs := op.BasicInputs()
	out := make([]Basic, 0, len(inputs))
	for _, raw := range inputs {
		b := Basic{In: make([]float64, len(raw))}
		for i, r := range raw {
			b.In[i] = op.Width.ToDouble(r)
		}
		b.Raw = op.Eval(raw...)
		b.Out = op.Width.ToDouble(b.Raw)
		b.Ref = op.Reference(b.In...)
		y := 0.0
		if len(b.In) == 2 {
			y = b.In[1]
		}
		b.Err = op.Metric.Error(b.In[0], y, b.Out, b.Ref)
		out = append(out, b)
	}
	return out
}

// DefaultSlack is the relative margin a less precise tier may undercut a
// more precise one by before the ordering counts as violated.
const DefaultSlack = 0.25

// ulpFloor is the error floor, in output ulps, below which two tiers are
// considered equally accurate.
const ulpFloor = 4

// CheckTierOrdering verifies that within each family the maximum error
// satisfies precise <= fast <= fastest. The exact tier is not ranked.
// A tier passes if its error is within (1+slack) of the next tier's error
// plus a few output ulps.
func CheckTierOrdering(results []Result, slack float64) []apperrors.AccuracyError {
	byFamily := make(map[string][]Result)
	var order []string
	for _, r := range results {
		if r.Op.Tier == catalog.TierExact {
			continue
		}
		k := r.Op.Family()
		if _, ok := byFamily[k]; !ok {
			order = append(order, k)
		}
		byFamily[k] = append(byFamily[k], r)
	}

	var violations []apperrors.AccuracyError
	for _, k := range order {
		members := byFamily[k]
		for i := range members {
			for j := range members {
				a, b := members[i], members[j]
				if a.Op.Tier >= b.Op.Tier {
					continue
				}
				floor := math.Ldexp(ulpFloor, -int(a.Op.Width.Shift()))
				bound := b.MaxErr*(1+slack) + floor
				if a.MaxErr > bound {
					violations = append(violations, apperrors.AccuracyError{
						Op:     k,
						Tier:   fmt.Sprintf("%s vs %s", a.Op.Tier, b.Op.Tier),
						MaxErr: a.MaxErr,
						Bound:  bound,
					})
				}
			}
		}
	}
	return violations
}
