package fixutil

// Exp2Poly3 approximates 2^a (13.24 bits).
func Exp2Poly3(a int32) int32 {
	y := Qmul30(a, 84039593)
	y = Qmul30(a, y+242996024)
	y = Qmul30(a, y+746706207)
	return y + 1073741824
}

// Exp2Poly4 approximates 2^a (18.19 bits).
func Exp2Poly4(a int32) int32 {
	y := Qmul30(a, 14555373)
	y = Qmul30(a, y+55869331)
	y = Qmul30(a, y+259179547)
	y = Qmul30(a, y+744137573)
	return y + 1073741824
}

// Exp2Poly5 approximates 2^a (23.37 bits).
func Exp2Poly5(a int32) int32 {
	y := Qmul30(a, 2017903)
	y = Qmul30(a, y+9654007)
	y = Qmul30(a, y+59934847)
	y = Qmul30(a, y+257869054)
	y = Qmul30(a, y+744266012)
	return y + 1073741824
}

// RcpPoly4 approximates 1/(1+a) (11.33 bits).
func RcpPoly4(a int32) int32 {
	y := Qmul30(a, 166123244)
	y = Qmul30(a, y-581431354)
	y = Qmul30(a, y+939345296)
	y = Qmul30(a, y-1060908097)
	return y + 1073741824
}

// RcpPoly6 approximates 1/(1+a) (16.53 bits).
func RcpPoly6(a int32) int32 {
	y := Qmul30(a, 77852993)
	y = Qmul30(a, y-350338469)
	y = Qmul30(a, y+723231606)
	y = Qmul30(a, y-974250754)
	y = Qmul30(a, y+1059679220)
	y = Qmul30(a, y-1073045505)
	return y + 1073741824
}

// RcpPoly3Lut4 approximates 1/(1+a) piecewise (15.66 bits).
func RcpPoly3Lut4(a int32) int32 {
	offset := (a >> 28) * 4
	y := Qmul30(a, rcpPoly3Lut4Table[offset])
	y = Qmul30(a, y+rcpPoly3Lut4Table[offset+1])
	y = Qmul30(a, y+rcpPoly3Lut4Table[offset+2])
	return y + rcpPoly3Lut4Table[offset+3]
}

// RcpPoly4Lut8 approximates 1/(1+a) piecewise (24.07 bits).
func RcpPoly4Lut8(a int32) int32 {
	offset := (a >> 27) * 5
	y := Qmul30(a, rcpPoly4Lut8Table[offset])
	y = Qmul30(a, y+rcpPoly4Lut8Table[offset+1])
	y = Qmul30(a, y+rcpPoly4Lut8Table[offset+2])
	y = Qmul30(a, y+rcpPoly4Lut8Table[offset+3])
	return y + rcpPoly4Lut8Table[offset+4]
}

// SqrtPoly3 approximates sqrt(1+a) (13.36 bits).
func SqrtPoly3(a int32) int32 {
	y := Qmul30(a, 26809804)
	y = Qmul30(a, y-116435772)
	y = Qmul30(a, y+534384395)
	return y + 1073741824
}

// SqrtPoly4 approximates sqrt(1+a) (16.50 bits).
func SqrtPoly4(a int32) int32 {
	y := Qmul30(a, -11559524)
	y = Qmul30(a, y+49235626)
	y = Qmul30(a, y-129356986)
	y = Qmul30(a, y+536439312)
	return y + 1073741824
}

// SqrtPoly3Lut8 approximates sqrt(1+a) piecewise (23.56 bits).
func SqrtPoly3Lut8(a int32) int32 {
	offset := (a >> 27) * 4
	y := Qmul30(a, sqrtPoly3Lut8Table[offset])
	y = Qmul30(a, y+sqrtPoly3Lut8Table[offset+1])
	y = Qmul30(a, y+sqrtPoly3Lut8Table[offset+2])
	return y + sqrtPoly3Lut8Table[offset+3]
}

// RSqrtPoly3 approximates 1/sqrt(1+a) (10.55 bits).
func RSqrtPoly3(a int32) int32 {
	y := Qmul30(a, -91950555)
	y = Qmul30(a, y+299398639)
	y = Qmul30(a, y-521939780)
	return y + 1073741824
}

// RSqrtPoly5 approximates 1/sqrt(1+a) (16.08 bits).
func RSqrtPoly5(a int32) int32 {
	y := Qmul30(a, -34036183)
	y = Qmul30(a, y+140361627)
	y = Qmul30(a, y-276049470)
	y = Qmul30(a, y+391366758)
	y = Qmul30(a, y-536134428)
	return y + 1073741824
}

// RSqrtPoly3Lut16 approximates 1/sqrt(1+a) piecewise (24.59 bits).
func RSqrtPoly3Lut16(a int32) int32 {
	offset := (a >> 26) * 4
	y := Qmul30(a, rsqrtPoly3Lut16Table[offset])
	y = Qmul30(a, y+rsqrtPoly3Lut16Table[offset+1])
	y = Qmul30(a, y+rsqrtPoly3Lut16Table[offset+2])
	return y + rsqrtPoly3Lut16Table[offset+3]
}

// LogPoly5 approximates ln(1+a) (12.18 bits).
func LogPoly5(a int32) int32 {
	y := Qmul30(a, 34835446)
	y = Qmul30(a, y-149023176)
	y = Qmul30(a, y+315630515)
	y = Qmul30(a, y-530763208)
	return Qmul30(a, y+1073581542)
}

// LogPoly3Lut4 approximates ln(1+a) piecewise (12.51 bits).
func LogPoly3Lut4(a int32) int32 {
	offset := (a >> 28) * 4
	y := Qmul30(a, logPoly3Lut4Table[offset])
	y = Qmul30(a, y+logPoly3Lut4Table[offset+1])
	y = Qmul30(a, y+logPoly3Lut4Table[offset+2])
	return y + logPoly3Lut4Table[offset+3]
}

// LogPoly3Lut8 approximates ln(1+a) piecewise (15.35 bits).
func LogPoly3Lut8(a int32) int32 {
	offset := (a >> 27) * 4
	y := Qmul30(a, logPoly3Lut8Table[offset])
	y = Qmul30(a, y+logPoly3Lut8Table[offset+1])
	y = Qmul30(a, y+logPoly3Lut8Table[offset+2])
	return y + logPoly3Lut8Table[offset+3]
}

// LogPoly5Lut8 approximates ln(1+a) piecewise (26.22 bits).
func LogPoly5Lut8(a int32) int32 {
	offset := (a >> 27) * 6
	y := Qmul30(a, logPoly5Lut8Table[offset])
	y = Qmul30(a, y+logPoly5Lut8Table[offset+1])
	y = Qmul30(a, y+logPoly5Lut8Table[offset+2])
	y = Qmul30(a, y+logPoly5Lut8Table[offset+3])
	y = Qmul30(a, y+logPoly5Lut8Table[offset+4])
	return y + logPoly5Lut8Table[offset+5]
}

// Log2Poly5 approximates log2(1+a) (12.29 bits).
func Log2Poly5(a int32) int32 {
	y := Qmul30(a, 47840369)
	y = Qmul30(a, y-208941842)
	y = Qmul30(a, y+450346773)
	y = Qmul30(a, y-764275149)
	return Qmul30(a, y+1548771675)
}

// Log2Poly4Lut4 approximates log2(1+a) piecewise (17.47 bits).
func Log2Poly4Lut4(a int32) int32 {
	offset := (a >> 28) * 5
	y := Qmul30(a, log2Poly4Lut4Table[offset])
	y = Qmul30(a, y+log2Poly4Lut4Table[offset+1])
	y = Qmul30(a, y+log2Poly4Lut4Table[offset+2])
	y = Qmul30(a, y+log2Poly4Lut4Table[offset+3])
	return y + log2Poly4Lut4Table[offset+4]
}

// Log2Poly5Lut4 approximates log2(1+a) piecewise (21.93 bits).
func Log2Poly5Lut4(a int32) int32 {
	offset := (a >> 28) * 6
	y := Qmul30(a, log2Poly5Lut4Table[offset])
	y = Qmul30(a, y+log2Poly5Lut4Table[offset+1])
	y = Qmul30(a, y+log2Poly5Lut4Table[offset+2])
	y = Qmul30(a, y+log2Poly5Lut4Table[offset+3])
	y = Qmul30(a, y+log2Poly5Lut4Table[offset+4])
	return y + log2Poly5Lut4Table[offset+5]
}

// Log2Poly3Lut8 approximates log2(1+a) piecewise (15.82 bits).
func Log2Poly3Lut8(a int32) int32 {
	offset := (a >> 27) * 4
	y := Qmul30(a, log2Poly3Lut8Table[offset])
	y = Qmul30(a, y+log2Poly3Lut8Table[offset+1])
	y = Qmul30(a, y+log2Poly3Lut8Table[offset+2])
	return y + log2Poly3Lut8Table[offset+3]
}

// Log2Poly3Lut16 approximates log2(1+a) piecewise (18.77 bits).
func Log2Poly3Lut16(a int32) int32 {
	offset := (a >> 26) * 4
	y := Qmul30(a, log2Poly3Lut16Table[offset])
	y = Qmul30(a, y+log2Poly3Lut16Table[offset+1])
	y = Qmul30(a, y+log2Poly3Lut16Table[offset+2])
	return y + log2Poly3Lut16Table[offset+3]
}

// Log2Poly4Lut16 approximates log2(1+a) piecewise (25.20 bits).
func Log2Poly4Lut16(a int32) int32 {
	offset := (a >> 26) * 5
	y := Qmul30(a, log2Poly4Lut16Table[offset])
	y = Qmul30(a, y+log2Poly4Lut16Table[offset+1])
	y = Qmul30(a, y+log2Poly4Lut16Table[offset+2])
	y = Qmul30(a, y+log2Poly4Lut16Table[offset+3])
	return y + log2Poly4Lut16Table[offset+4]
}

// SinPoly2 approximates sin(a*Pi/2)/a as a series in a^2 (12.55 bits).
func SinPoly2(a int32) int32 {
	y := Qmul30(a, 78160664)
	y = Qmul30(a, y-691048553)
	return y + 1686629713
}

// SinPoly3 approximates sin(a*Pi/2)/a as a series in a^2 (19.56 bits).
func SinPoly3(a int32) int32 {
	y := Qmul30(a, -4685819)
	y = Qmul30(a, y+85358772)
	y = Qmul30(a, y-693560840)
	return y + 1686629713
}

// SinPoly4 approximates sin(a*Pi/2)/a as a series in a^2 (27.13 bits).
func SinPoly4(a int32) int32 {
	y := Qmul30(a, 162679)
	y = Qmul30(a, y-5018587)
	y = Qmul30(a, y+85566362)
	y = Qmul30(a, y-693598342)
	return y + 1686629713
}

// AtanPoly4 approximates atan(a) in radians (11.51 bits).
func AtanPoly4(a int32) int32 {
	y := Qmul30(a, 160726798)
	y = Qmul30(a, y-389730008)
	y = Qmul30(a, y-1791887)
	return Qmul30(a, y+1074109956)
}

// AtanPoly5Lut8 approximates atan(a) in radians piecewise (28.06 bits).
func AtanPoly5Lut8(a int32) int32 {
	offset := (a >> 27) * 6
	y := Qmul30(a, atanPoly5Lut8Table[offset])
	y = Qmul30(a, y+atanPoly5Lut8Table[offset+1])
	y = Qmul30(a, y+atanPoly5Lut8Table[offset+2])
	y = Qmul30(a, y+atanPoly5Lut8Table[offset+3])
	y = Qmul30(a, y+atanPoly5Lut8Table[offset+4])
	return y + atanPoly5Lut8Table[offset+5]
}

// AtanPoly3Lut8 approximates atan(a) in radians piecewise (17.98 bits).
func AtanPoly3Lut8(a int32) int32 {
	offset := (a >> 27) * 4
	y := Qmul30(a, atanPoly3Lut8Table[offset])
	y = Qmul30(a, y+atanPoly3Lut8Table[offset+1])
	y = Qmul30(a, y+atanPoly3Lut8Table[offset+2])
	return y + atanPoly3Lut8Table[offset+3]
}
