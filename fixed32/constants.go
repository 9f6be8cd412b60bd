package fixed32

const Shift = 16

const (
	FractionMask int32 = (1 << Shift) - 1
	IntegerMask  int32 = ^FractionMask
)

const (
	Zero   int32 = 0
	Neg1   int32 = -1 << Shift
	One    int32 = 1 << Shift
	Two    int32 = 2 << Shift
	Three  int32 = 3 << Shift
	Four   int32 = 4 << Shift
	Half   int32 = One >> 1
	Pi     int32 = 13493037705 >> 16
	Pi2    int32 = 26986075409 >> 16
	PiHalf int32 = 6746518852 >> 16
	E      int32 = 11674931555 >> 16

	MinValue int32 = -1 << 31
	MaxValue int32 = 1<<31 - 1
)

const (
	rcpLn2    int32 = 0x171547652 >> 16 // 1 / ln(2)
	rcpLog2E  int32 = 2977044471 >> 16  // 1 / log2(e)
	rcpHalfPi int32 = 683565276         // 1 / (pi/2) in s2.30 steps per s16.16 unit

	one30     int32 = 1 << 30
	sqrt2     int32 = 1518500249
	halfSqrt2 int32 = 759250125
)
