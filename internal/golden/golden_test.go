package golden

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/agbru/fixpoint/internal/catalog"
)

func TestBitsText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		bits Bits
		text string
	}{
		{0, "0x0000000000000000"},
		{-1, "0xffffffffffffffff"},
		{1 << 32, "0x0000000100000000"},
		{-1 << 63, "0x8000000000000000"},
	}
	for _, tt := range tests {
		got, err := tt.bits.MarshalText()
		if err != nil || string(got) != tt.text {
			t.Errorf("MarshalText(%d) = %s, %v; want %s", int64(tt.bits), got, err, tt.text)
		}
		var back Bits
		if err := back.UnmarshalText(got); err != nil || back != tt.bits {
			t.Errorf("UnmarshalText(%s) = %d, %v", got, int64(back), err)
		}
	}
	var b Bits
	if err := b.UnmarshalText([]byte("zz")); err == nil {
		t.Error("expected an error for malformed bits")
	}
}

func TestGenerateCounts(t *testing.T) {
	t.Parallel()
	c := catalog.Default()
	sin, _ := c.Get("sin/64/fast")
	div, _ := c.Get("div/32/exact")

	f := Generate([]catalog.Op{sin, div}, 9, 5)
	nb := len(boundaries(catalog.Width64))
	want := (nb + 5) + (nb*nb + 5)
	if len(f.Vectors) != want {
		t.Fatalf("generated %d vectors, want %d", len(f.Vectors), want)
	}
	if f.Vectors[0].Key() != "sin/64/fast" || len(f.Vectors[0].Inputs) != 1 {
		t.Errorf("first vector = %+v", f.Vectors[0])
	}
	last := f.Vectors[len(f.Vectors)-1]
	if last.Key() != "div/32/exact" || len(last.Inputs) != 2 {
		t.Errorf("last vector = %+v", last)
	}
}

func TestRoundTripAndVerify(t *testing.T) {
	t.Parallel()
	c := catalog.Default()
	f := Generate(c.List(), 12345678, 8)

	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		t.Fatal(err)
	}
	back, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(back.Vectors) != len(f.Vectors) || back.Seed != f.Seed {
		t.Fatalf("round trip lost data: %d vs %d vectors", len(back.Vectors), len(f.Vectors))
	}

	mismatches, err := Verify(back, c)
	if err != nil {
		t.Fatal(err)
	}
	if len(mismatches) != 0 {
		t.Fatalf("fresh vectors do not verify: %v", mismatches[0])
	}
}

func TestVerifyDetectsDrift(t *testing.T) {
	t.Parallel()
	c := catalog.Default()
	op, _ := c.Get("exp/64/precise")
	f := Generate([]catalog.Op{op}, 1, 4)
	f.Vectors[3].Output ^= 1

	mismatches, err := Verify(f, c)
	if err != nil {
		t.Fatal(err)
	}
	if len(mismatches) != 1 {
		t.Fatalf("got %d mismatches, want 1", len(mismatches))
	}
	m := mismatches[0]
	if m.Op != "exp/64/precise" || m.Got^m.Want != 1 {
		t.Errorf("unexpected mismatch %+v", m)
	}
	if !strings.Contains(m.Error(), "exp/64/precise") {
		t.Errorf("error should name the op: %v", m)
	}
}

func TestVerifyRejectsMalformedVectors(t *testing.T) {
	t.Parallel()
	c := catalog.Default()
	tests := []struct {
		name string
		v    Vector
	}{
		{"unknown op", Vector{Op: "sinh", Width: 64, Tier: "fast", Inputs: []Bits{0}}},
		{"wrong arity", Vector{Op: "atan2", Width: 64, Tier: "fast", Inputs: []Bits{0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Verify(File{Version: FormatVersion, Vectors: []Vector{tt.v}}, c)
			if err == nil {
				t.Fatal("expected an error")
			}
		})
	}
	_, err := Verify(File{Vectors: []Vector{{Op: "nope", Width: 32, Tier: "exact"}}}, c)
	if !errors.Is(err, catalog.ErrUnknownOp) {
		t.Errorf("err = %v, want ErrUnknownOp", err)
	}
}

func TestReadRejectsVersion(t *testing.T) {
	t.Parallel()
	data, _ := json.Marshal(File{Version: 99})
	if _, err := Read(bytes.NewReader(data)); err == nil {
		t.Error("expected a version error")
	}
	if _, err := Read(strings.NewReader("{")); err == nil {
		t.Error("expected a decode error")
	}
}

// TestPinnedVectors replays results that must never change. pinned.json
// holds hand-computed exact results; reference.json holds precise, fast and
// fastest results produced by the reference tables.
func TestPinnedVectors(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"pinned.json", "reference.json"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			f, err := ReadFile("testdata/" + name)
			if err != nil {
				t.Fatal(err)
			}
			mismatches, err := Verify(f, catalog.Default())
			if err != nil {
				t.Fatal(err)
			}
			for _, m := range mismatches {
				t.Error(m)
			}
		})
	}
}

func TestReferenceVectorsCoverTranscendentals(t *testing.T) {
	t.Parallel()
	f, err := ReadFile("testdata/reference.json")
	if err != nil {
		t.Fatal(err)
	}
	have := make(map[string]bool)
	for _, v := range f.Vectors {
		have[v.Key()] = true
	}
	ops := []string{
		"sqrt", "rsqrt", "rcp", "exp", "exp2", "log", "log2",
		"sin", "cos", "tan", "asin", "acos", "atan", "atan2", "pow",
	}
	for _, op := range ops {
		for _, width := range []int{64, 32} {
			for _, tier := range []string{"precise", "fast", "fastest"} {
				if key := fmt.Sprintf("%s/%d/%s", op, width, tier); !have[key] {
					t.Errorf("no reference vector for %s", key)
				}
			}
		}
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()
	path := t.TempDir() + "/golden.json"
	op, _ := catalog.Default().Get("log2/32/fastest")
	if err := WriteFile(path, Generate([]catalog.Op{op}, 3, 2)); err != nil {
		t.Fatal(err)
	}
	f, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Vectors) != len(boundaries(catalog.Width32))+2 {
		t.Errorf("read %d vectors", len(f.Vectors))
	}
}

func TestReadChecksDigest(t *testing.T) {
	t.Parallel()
	op, _ := catalog.Default().Get("exp2/64/fast")
	f := Generate([]catalog.Op{op}, 7, 4)

	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		t.Fatal(err)
	}
	back, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if back.Digest != Digest(f.Vectors) || len(back.Digest) != 64 {
		t.Errorf("digest = %q, want %q", back.Digest, Digest(f.Vectors))
	}

	back.Vectors[0].Output++
	data, _ := json.Marshal(back)
	if _, err := Read(bytes.NewReader(data)); !errors.Is(err, ErrDigestMismatch) {
		t.Errorf("edited file: err = %v, want ErrDigestMismatch", err)
	}

	back.Digest = ""
	data, _ = json.Marshal(back)
	if _, err := Read(bytes.NewReader(data)); err != nil {
		t.Errorf("files without a digest must still load: %v", err)
	}
}
