package fixutil

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestShiftRight64(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		v    int64
		s    int32
		want int64
	}{
		{"zero shift", 12345, 0, 12345},
		{"positive right", 1 << 40, 8, 1 << 32},
		{"negative keeps sign", -256, 4, -16},
		{"negative amount shifts left", 3, -4, 48},
		{"max amount", math.MinInt64, 63, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ShiftRight64(tt.v, tt.s); got != tt.want {
				t.Errorf("ShiftRight64(%d, %d) = %d, want %d", tt.v, tt.s, got, tt.want)
			}
		})
	}
}

func TestShiftRight32(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		v    int32
		s    int32
		want int32
	}{
		{"zero shift", -7, 0, -7},
		{"positive right", 1 << 20, 4, 1 << 16},
		{"negative keeps sign", -1024, 10, -1},
		{"negative amount shifts left", 5, -3, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ShiftRight32(tt.v, tt.s); got != tt.want {
				t.Errorf("ShiftRight32(%d, %d) = %d, want %d", tt.v, tt.s, got, tt.want)
			}
		})
	}
}

func TestLogicalShiftRight(t *testing.T) {
	t.Parallel()
	if got := LogicalShiftRight64(-1, 32); got != 0xFFFFFFFF {
		t.Errorf("LogicalShiftRight64(-1, 32) = %#x, want 0xffffffff", got)
	}
	if got := LogicalShiftRight64(-1, 0); got != -1 {
		t.Errorf("LogicalShiftRight64(-1, 0) = %d, want -1", got)
	}
	if got := LogicalShiftRight32(math.MinInt32, 31); got != 1 {
		t.Errorf("LogicalShiftRight32(MinInt32, 31) = %d, want 1", got)
	}
	if got := ShiftRight32(math.MinInt32, 31); got != -1 {
		t.Errorf("ShiftRight32(MinInt32, 31) = %d, want -1", got)
	}
}

func TestNlz(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x      uint64
		want64 int32
	}{
		{0, 64},
		{1, 63},
		{1 << 31, 32},
		{1 << 32, 31},
		{math.MaxUint64, 0},
	}
	for _, tt := range tests {
		if got := Nlz64(tt.x); got != tt.want64 {
			t.Errorf("Nlz64(%#x) = %d, want %d", tt.x, got, tt.want64)
		}
	}
	if got := Nlz32(0); got != 32 {
		t.Errorf("Nlz32(0) = %d, want 32", got)
	}
	if got := Nlz32(0x00010000); got != 15 {
		t.Errorf("Nlz32(0x10000) = %d, want 15", got)
	}
}

func TestQmul30(t *testing.T) {
	t.Parallel()
	half := One >> 1
	tests := []struct {
		name string
		a, b int32
		want int32
	}{
		{"one times one", One, One, One},
		{"half times half", half, half, One >> 2},
		{"negative", -One, half, -half},
		{"zero", 0, One, 0},
		{"floors toward negative infinity", -1, 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Qmul30(tt.a, tt.b); got != tt.want {
				t.Errorf("Qmul30(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestShiftMirror_PropertyBased checks that ShiftLeft is ShiftRight with the
// amount negated, for every amount inside the contract.
func TestShiftMirror_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("ShiftLeft64(v, s) == ShiftRight64(v, -s)", prop.ForAll(
		func(v int64, s int32) bool {
			return ShiftLeft64(v, s) == ShiftRight64(v, -s)
		},
		gen.Int64(),
		gen.Int32Range(-63, 63),
	))
	properties.Property("ShiftLeft32(v, s) == ShiftRight32(v, -s)", prop.ForAll(
		func(v int32, s int32) bool {
			return ShiftLeft32(v, s) == ShiftRight32(v, -s)
		},
		gen.Int32(),
		gen.Int32Range(-31, 31),
	))
	properties.Property("logical shift of a non-negative value matches arithmetic shift", prop.ForAll(
		func(v int64, s int32) bool {
			if v < 0 {
				v = -(v + 1)
			}
			return LogicalShiftRight64(v, s) == ShiftRight64(v, s)
		},
		gen.Int64(),
		gen.Int32Range(0, 63),
	))

	properties.TestingRun(t)
}

func FuzzQmul30(f *testing.F) {
	f.Add(int32(0), int32(0))
	f.Add(One, One)
	f.Add(int32(math.MinInt32), int32(math.MaxInt32))
	f.Add(int32(-1), int32(1))

	f.Fuzz(func(t *testing.T, a, b int32) {
		if Qmul30(a, b) != Qmul30(b, a) {
			t.Fatalf("Qmul30 not commutative for %d, %d", a, b)
		}
		if a >= 0 && a <= One && b >= 0 && Qmul30(a, b) > b {
			t.Fatalf("Qmul30(%d, %d) exceeds %d for a in [0, One]", a, b, b)
		}
	})
}
