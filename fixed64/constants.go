package fixed64

// Shift is the number of fraction bits.
const Shift = 32

// Bit masks selecting the fraction and integer parts of a value.
const (
	FractionMask int64 = (1 << Shift) - 1
	IntegerMask  int64 = ^FractionMask
)

// Common values.
const (
	Zero   int64 = 0
	Neg1   int64 = -1 << Shift
	One    int64 = 1 << Shift
	Two    int64 = 2 << Shift
	Three  int64 = 3 << Shift
	Four   int64 = 4 << Shift
	Half   int64 = One >> 1
	Pi     int64 = 13493037705
	Pi2    int64 = 26986075409
	PiHalf int64 = 6746518852
	E      int64 = 11674931555

	MinValue int64 = -1 << 63
	MaxValue int64 = 1<<63 - 1
)

const (
	rcpLn2    int64 = 0x171547652 // 1 / ln(2)
	rcpLog2E  int64 = 2977044471  // 1 / log2(e)
	rcpHalfPi int32 = 683565276   // 1 / (pi/2) as s2.30, scaled by 4 so a period maps to [0, 4)

	one30     int32 = 1 << 30
	sqrt2     int32 = 1518500249 // sqrt(2) as s2.30
	halfSqrt2 int32 = 759250125  // sqrt(2)/2 as s2.30
)
