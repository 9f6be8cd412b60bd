package fixmath

import (
	"fmt"

	"github.com/agbru/fixpoint/fixed64"
)

// Vec2 is a two-component vector of F64 values.
type Vec2 struct {
	X, Y F64
}

var (
	Vec2Zero  = Vec2{F64Zero, F64Zero}
	Vec2One   = Vec2{F64One, F64One}
	Vec2Up    = Vec2{F64Zero, F64One}
	Vec2Down  = Vec2{F64Zero, F64Neg1}
	Vec2Left  = Vec2{F64Neg1, F64Zero}
	Vec2Right = Vec2{F64One, F64Zero}
)

func Vec2FromInt(x, y int32) Vec2 {
	return Vec2{F64FromInt(x), F64FromInt(y)}
}

func Vec2FromDouble(x, y float64) Vec2 {
	return Vec2{F64FromDouble(x), F64FromDouble(y)}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X.Mul(o.X), v.Y.Mul(o.Y)}
}

// Div divides component-wise with exact division.
func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{v.X.Div(o.X), v.Y.Div(o.Y)}
}

func (v Vec2) Scale(s F64) Vec2 {
	return Vec2{v.X.Mul(s), v.Y.Mul(s)}
}

func (v Vec2) Dot(o Vec2) F64 {
	return v.X.Mul(o.X) + v.Y.Mul(o.Y)
}

func (v Vec2) LengthSqr() F64 {
	return v.Dot(v)
}

func (v Vec2) Length() F64 {
	return F64(fixed64.Sqrt(int64(v.LengthSqr())))
}

func (v Vec2) LengthFast() F64 {
	return F64(fixed64.SqrtFast(int64(v.LengthSqr())))
}

func (v Vec2) LengthFastest() F64 {
	return F64(fixed64.SqrtFastest(int64(v.LengthSqr())))
}

// Normalize scales v by the reciprocal square root of its squared length.
// The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	return v.Scale(F64(fixed64.RSqrt(int64(v.LengthSqr()))))
}

func (v Vec2) NormalizeFast() Vec2 {
	return v.Scale(F64(fixed64.RSqrtFast(int64(v.LengthSqr()))))
}

func (v Vec2) NormalizeFastest() Vec2 {
	return v.Scale(F64(fixed64.RSqrtFastest(int64(v.LengthSqr()))))
}

func (v Vec2) Distance(o Vec2) F64 {
	return v.Sub(o).Length()
}

func (v Vec2) DistanceFast(o Vec2) F64 {
	return v.Sub(o).LengthFast()
}

func (v Vec2) DistanceFastest(o Vec2) F64 {
	return v.Sub(o).LengthFastest()
}

// Lerp interpolates each component with fixed64.Lerp.
func (v Vec2) Lerp(o Vec2, t F64) Vec2 {
	return Vec2{v.X.Lerp(o.X, t), v.Y.Lerp(o.Y, t)}
}

func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{v.X.Min(o.X), v.Y.Min(o.Y)}
}

func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{v.X.Max(o.X), v.Y.Max(o.Y)}
}

func (v Vec2) Equal(o Vec2) bool {
	return v == o
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%s, %s)", v.X, v.Y)
}
