// Package golden records and replays determinism vectors: raw inputs and the
// raw output the kernel produced for them. Replaying a file against a new
// build detects any bit-level drift.
package golden

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/crypto/blake2b"

	"github.com/agbru/fixpoint/fixed32"
	"github.com/agbru/fixpoint/fixed64"
	"github.com/agbru/fixpoint/internal/accuracy"
	"github.com/agbru/fixpoint/internal/catalog"
	apperrors "github.com/agbru/fixpoint/internal/errors"
)

// FormatVersion identifies the file layout.
const FormatVersion = 1

// Bits is a raw fixed-point value, serialized as hexadecimal two's
// complement so vectors stay readable and exact.
type Bits int64

// MarshalText encodes b as 0x followed by 16 hex digits.
func (b Bits) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("0x%016x", uint64(b))), nil
}

// UnmarshalText accepts any base prefix understood by strconv.
func (b *Bits) UnmarshalText(text []byte) error {
	u, err := strconv.ParseUint(string(text), 0, 64)
	if err != nil {
		return fmt.Errorf("invalid raw value %q: %w", text, err)
	}
	*b = Bits(u)
	return nil
}

// Vector is one recorded evaluation.
type Vector struct {
	Op     string `json:"op"`
	Width  int    `json:"width"`
	Tier   string `json:"tier"`
	Inputs []Bits `json:"inputs"`
	Output Bits   `json:"output"`
}

// Key is the catalog key of the vector's operation.
func (v Vector) Key() string {
	return fmt.Sprintf("%s/%d/%s", v.Op, v.Width, v.Tier)
}

// File is a set of vectors and the parameters that produced them.
type File struct {
	Version int    `json:"version"`
	Seed    uint64 `json:"seed"`
	Count   int    `json:"count"`
	// Digest is the checksum of Vectors. Files written before it existed
	// leave it empty and are not checked.
	Digest  string   `json:"digest,omitempty"`
	Vectors []Vector `json:"vectors"`
}

// ErrDigestMismatch reports a file whose vectors were edited after it was
// written.
var ErrDigestMismatch = errors.New("golden vectors do not match their digest")

// Digest returns the hex BLAKE2b-256 checksum of vectors over their keys and
// raw bits.
func Digest(vectors []Vector) string {
	var buf []byte
	for _, v := range vectors {
		buf = append(buf, v.Key()...)
		buf = append(buf, 0, byte(len(v.Inputs)))
		for _, in := range v.Inputs {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(in))
		}
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v.Output))
	}
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

func boundaries(w catalog.Width) []int64 {
	if w == catalog.Width32 {
		return []int64{
			0, 1, -1,
			int64(fixed32.One), int64(-fixed32.One), int64(fixed32.Half), int64(fixed32.Two),
			int64(fixed32.Pi), int64(fixed32.MaxValue), int64(fixed32.MinValue),
		}
	}
	return []int64{
		0, 1, -1,
		fixed64.One, -fixed64.One, fixed64.Half, fixed64.Two,
		fixed64.Pi, fixed64.MaxValue, fixed64.MinValue,
	}
}

// inputs returns the boundary values (pairwise for binary ops) followed by
// count seeded draws spread over the op's domains.
func inputs(op catalog.Op, seed uint64, count int) [][]int64 {
	bounds := boundaries(op.Width)
	var out [][]int64
	if op.Arity() == 1 {
		for _, b := range bounds {
			out = append(out, []int64{b})
		}
	} else {
		for _, a := range bounds {
			for _, b := range bounds {
				out = append(out, []int64{a, b})
			}
		}
	}

	rng := accuracy.Stream(op, seed)
	for i := 0; i < count; i++ {
		d := op.Domains[i%len(op.Domains)]
		in := []int64{op.Width.FromDouble(accuracy.Draw(rng, d.X))}
		if op.Arity() == 2 {
			in = append(in, op.Width.FromDouble(accuracy.Draw(rng, d.Y)))
		}
		out = append(out, in)
	}
	return out
}

// Generate evaluates every op on its boundary values and count random inputs.
func Generate(ops []catalog.Op, seed uint64, count int) File {
	f := File{Version: FormatVersion, Seed: seed, Count: count}
	for _, op := range ops {
		for _, in := range inputs(op, seed, count) {
			v := Vector{
				Op:     op.Name,
				Width:  int(op.Width),
				Tier:   op.Tier.String(),
				Inputs: make([]Bits, len(in)),
				Output: Bits(op.Eval(in...)),
			}
			for i, x := range in {
				v.Inputs[i] = Bits(x)
			}
			f.Vectors = append(f.Vectors, v)
		}
	}
	return f
}

// Write stamps f with its digest and encodes it as indented JSON.
func Write(w io.Writer, f File) error {
	f.Digest = Digest(f.Vectors)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

// WriteFile writes f to path.
func WriteFile(path string, f File) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(out, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Read decodes a vector file and checks its version and digest.
func Read(r io.Reader) (File, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return File{}, fmt.Errorf("decoding golden vectors: %w", err)
	}
	if f.Version != FormatVersion {
		return File{}, fmt.Errorf("unsupported golden format version %d (want %d)", f.Version, FormatVersion)
	}
	if f.Digest != "" && f.Digest != Digest(f.Vectors) {
		return File{}, ErrDigestMismatch
	}
	return f, nil
}

// ReadFile reads the vector file at path.
func ReadFile(path string) (File, error) {
	in, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer in.Close()
	return Read(in)
}

// Verify replays every vector. It returns one DeterminismError per vector
// whose output changed, and an error if a vector names an operation the
// catalog does not have or carries the wrong number of inputs.
func Verify(f File, cat *catalog.Catalog) ([]apperrors.DeterminismError, error) {
	var mismatches []apperrors.DeterminismError
	for i, v := range f.Vectors {
		op, err := cat.Get(v.Key())
		if err != nil {
			return mismatches, fmt.Errorf("vector %d: %w", i, err)
		}
		if len(v.Inputs) != op.Arity() {
			return mismatches, fmt.Errorf("vector %d: %s takes %d inputs, got %d", i, op.Key(), op.Arity(), len(v.Inputs))
		}
		in := make([]int64, len(v.Inputs))
		for j, b := range v.Inputs {
			in[j] = int64(b)
		}
		if got := op.Eval(in...); got != int64(v.Output) {
			mismatches = append(mismatches, apperrors.DeterminismError{
				Op:    op.Key(),
				Input: in,
				Want:  int64(v.Output),
				Got:   got,
			})
		}
	}
	return mismatches, nil
}
