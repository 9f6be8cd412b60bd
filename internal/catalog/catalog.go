// Package catalog describes every kernel operation as data: its evaluator over
// raw bits, a float64 reference, the error metric it is judged by and the
// input domains it is sampled from. The accuracy, benchmark and golden tools
// consume the kernel exclusively through this registry.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/agbru/fixpoint/fixed32"
	"github.com/agbru/fixpoint/fixed64"
)

// ErrUnknownOp is returned when a key does not name a registered operation.
var ErrUnknownOp = errors.New("unknown operation")

// Width selects the storage format of an operation.
type Width int

const (
	AnyWidth Width = 0
	Width32  Width = 32
	Width64  Width = 64
)

// ParseWidth accepts "64", "32", "all" or the empty string (any width).
func ParseWidth(s string) (Width, error) {
	switch s {
	case "64":
		return Width64, nil
	case "32":
		return Width32, nil
	case "", "all":
		return AnyWidth, nil
	}
	return AnyWidth, fmt.Errorf("invalid width %q: must be 64, 32 or all", s)
}

func (w Width) String() string {
	if w == AnyWidth {
		return "all"
	}
	return strconv.Itoa(int(w))
}

// Shift is the number of fraction bits of the width.
func (w Width) Shift() uint {
	if w == Width32 {
		return fixed32.Shift
	}
	return fixed64.Shift
}

// FromDouble converts v to raw bits using the kernel's own conversion. The
// caller must keep v inside MaxDouble.
func (w Width) FromDouble(v float64) int64 {
	if w == Width32 {
		return int64(fixed32.FromDouble(v))
	}
	return fixed64.FromDouble(v)
}

// ToDouble converts raw bits of this width to float64.
func (w Width) ToDouble(raw int64) float64 {
	if w == Width32 {
		return fixed32.ToDouble(int32(raw))
	}
	return fixed64.ToDouble(raw)
}

// MaxDouble is the largest magnitude that FromDouble can represent.
func (w Width) MaxDouble() float64 {
	if w == Width32 {
		return fixed32.ToDouble(fixed32.MaxValue)
	}
	return fixed64.ToDouble(fixed64.MaxValue)
}

// ReferenceLimit bounds the reference values an accuracy sweep will score.
// Results beyond it saturate or wrap and carry no accuracy information.
func (w Width) ReferenceLimit() float64 {
	return math.Ldexp(1, int(w/2)) * 0.99
}

// Tier is the accuracy/speed level of an implementation. Exact marks
// operations with a single implementation (integer exact or bit-level
// operations). The zero Tier is AnyTier, like the zero Width.
type Tier int

const (
	AnyTier Tier = iota
	TierExact
	TierPrecise
	TierFast
	TierFastest
	tierEnd
)

// numTiers counts the concrete tiers; kernel tables hold TierExact at 0.
const numTiers = int(tierEnd - TierExact)

var tierNames = [numTiers]string{"exact", "precise", "fast", "fastest"}

func (t Tier) String() string {
	if t < TierExact || t >= tierEnd {
		return "any"
	}
	return tierNames[t-TierExact]
}

// ParseTier accepts a tier name, "all" or the empty string (any tier).
func ParseTier(s string) (Tier, error) {
	if s == "" || s == "all" {
		return AnyTier, nil
	}
	for i, n := range tierNames {
		if n == s {
			return TierExact + Tier(i), nil
		}
	}
	return AnyTier, fmt.Errorf("invalid tier %q: must be one of %s or all", s, strings.Join(tierNames[:], ", "))
}

// Range is a closed interval that inputs are drawn from uniformly.
type Range struct {
	Lo, Hi float64
}

// Domain pairs the ranges of the first and second argument. Unary operations
// ignore Y.
type Domain struct {
	X, Y Range
}

// MetricKind selects how error is normalized.
type MetricKind int

const (
	// Absolute is |out - ref|.
	Absolute MetricKind = iota
	// Relative is |out - ref| / max(threshold, |ref|).
	Relative
	// DivisionRelative is |out - ref| / max(threshold, |divisor|).
	DivisionRelative
)

// Metric scores one result against the reference.
type Metric struct {
	Kind      MetricKind
	Threshold float64
}

// Error returns the error of out given the converted inputs x, y.
func (m Metric) Error(x, y, out, ref float64) float64 {
	err := math.Abs(out - ref)
	switch m.Kind {
	case Relative:
		return err / math.Max(m.Threshold, math.Abs(ref))
	case DivisionRelative:
		return err / math.Max(m.Threshold, math.Abs(y))
	default:
		return err
	}
}

func (k MetricKind) String() string {
	switch k {
	case Relative:
		return "relative"
	case DivisionRelative:
		return "division"
	default:
		return "absolute"
	}
}

// Op is one operation at one width and tier.
type Op struct {
	Name   string
	Width  Width
	Tier   Tier
	Unary  func(x int64) int64
	Binary func(a, b int64) int64
	Ref1   func(x float64) float64
	Ref2   func(a, b float64) float64
	Metric Metric
	// Domains are the sampling ranges for accuracy sweeps. The first one
	// also feeds the benchmark.
	Domains []Domain
	// Basic holds hand-picked inputs reported individually.
	Basic [][2]float64
	// Iters is the default number of 128-value chunks per benchmark pass.
	Iters int
}

// Key identifies the op, e.g. "sin/64/fast".
func (o Op) Key() string {
	return o.Family() + "/" + o.Tier.String()
}

// Family groups all tiers of one function at one width, e.g. "sin/64".
func (o Op) Family() string {
	return o.Name + "/" + o.Width.String()
}

// Arity is 1 or 2.
func (o Op) Arity() int {
	if o.Binary != nil {
		return 2
	}
	return 1
}

// Eval applies the op to raw inputs. Extra inputs are ignored.
func (o Op) Eval(in ...int64) int64 {
	if o.Binary != nil {
		return o.Binary(in[0], in[1])
	}
	return o.Unary(in[0])
}

// Reference evaluates the float64 reference on converted inputs.
func (o Op) Reference(in ...float64) float64 {
	if o.Ref2 != nil {
		return o.Ref2(in[0], in[1])
	}
	return o.Ref1(in[0])
}

// BasicInputs converts the hand-picked inputs to raw bits, dropping any that
// the width cannot represent.
func (o Op) BasicInputs() [][]int64 {
	limit := o.Width.MaxDouble()
	out := make([][]int64, 0, len(o.Basic))
	for _, b := range o.Basic {
		vals := b[:o.Arity()]
		ok := true
		for _, v := range vals {
			if math.Abs(v) >= limit {
				ok = false
			}
		}
		if !ok {
			continue
		}
		raw := make([]int64, len(vals))
		for i, v := range vals {
			raw[i] = o.Width.FromDouble(v)
		}
		out = append(out, raw)
	}
	return out
}

// Family is the set of tiers of one function at one width, ordered by tier.
type Family struct {
	Key string
	Ops []Op
}

// Catalog is an immutable registry of operations.
type Catalog struct {
	ops  map[string]Op
	keys []string
}

// New builds a catalog. Duplicate keys are rejected.
func New(ops ...Op) (*Catalog, error) {
	c := &Catalog{ops: make(map[string]Op, len(ops))}
	for _, op := range ops {
		k := op.Key()
		if _, dup := c.ops[k]; dup {
			return nil, fmt.Errorf("duplicate operation %s", k)
		}
		if op.Tier < TierExact || op.Tier >= tierEnd || (op.Width != Width64 && op.Width != Width32) {
			return nil, fmt.Errorf("operation %s needs a concrete width and tier", k)
		}
		if (op.Unary == nil) == (op.Binary == nil) {
			return nil, fmt.Errorf("operation %s needs exactly one evaluator", k)
		}
		c.ops[k] = op
		c.keys = append(c.keys, k)
	}
	sort.Strings(c.keys)
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(builtinOps()...)
	if err != nil {
		panic(err)
	}
	return c
})

// Default returns the catalog of all kernel operations.
func Default() *Catalog {
	return defaultCatalog()
}

// Len is the number of registered operations.
func (c *Catalog) Len() int { return len(c.keys) }

// List returns all operations sorted by key.
func (c *Catalog) List() []Op {
	out := make([]Op, len(c.keys))
	for i, k := range c.keys {
		out[i] = c.ops[k]
	}
	return out
}

// Keys returns all operation keys in sorted order.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Names returns the distinct function names in sorted order.
func (c *Catalog) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, k := range c.keys {
		n := c.ops[k].Name
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// Get looks up an operation by key.
func (c *Catalog) Get(key string) (Op, error) {
	op, ok := c.ops[key]
	if !ok {
		return Op{}, fmt.Errorf("%w: %s", ErrUnknownOp, key)
	}
	return op, nil
}

// Lookup finds the operation with the given name, width and tier.
func (c *Catalog) Lookup(name string, w Width, t Tier) (Op, error) {
	return c.Get(name + "/" + w.String() + "/" + t.String())
}

// Filter returns the operations whose name matches one of the comma
// separated glob patterns ("all" or "" matches everything) and whose width
// and tier match. AnyWidth and AnyTier match every value.
func (c *Catalog) Filter(patterns string, w Width, t Tier) ([]Op, error) {
	var globs []string
	if patterns != "" && patterns != "all" {
		for _, p := range strings.Split(patterns, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if _, err := path.Match(p, ""); err != nil {
				return nil, fmt.Errorf("invalid operation pattern %q: %w", p, err)
			}
			globs = append(globs, p)
		}
	}
	var out []Op
	for _, k := range c.keys {
		op := c.ops[k]
		if w != AnyWidth && op.Width != w {
			continue
		}
		if t != AnyTier && op.Tier != t {
			continue
		}
		if len(globs) > 0 && !matchAny(globs, op.Name) {
			continue
		}
		out = append(out, op)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no operation matches %q (width %s, tier %s)", ErrUnknownOp, patterns, w, t)
	}
	return out, nil
}

func matchAny(globs []string, name string) bool {
	for _, g := range globs {
		if ok, _ := path.Match(g, name); ok {
			return true
		}
	}
	return false
}

// Families groups ops by function and width, sorted by family key, with the
// members of each family ordered by tier.
func Families(ops []Op) []Family {
	byKey := make(map[string][]Op)
	for _, op := range ops {
		byKey[op.Family()] = append(byKey[op.Family()], op)
	}
	out := make([]Family, 0, len(byKey))
	for k, members := range byKey {
		sort.Slice(members, func(i, j int) bool { return members[i].Tier < members[j].Tier })
		out = append(out, Family{Key: k, Ops: members})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Families groups the whole catalog.
func (c *Catalog) Families() []Family {
	return Families(c.List())
}
