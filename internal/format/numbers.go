package format

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumberString inserts thousands separators into a decimal integer string.
func FormatNumberString(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatRaw renders a raw fixed-point bit pattern of the given width (64 or
// 32) as zero-padded two's complement hex.
func FormatRaw(raw int64, width int) string {
	if width == 32 {
		return fmt.Sprintf("0x%08x", uint32(raw))
	}
	return fmt.Sprintf("0x%016x", uint64(raw))
}

// FormatFixed renders a raw value with the given number of fraction bits as
// a decimal. This is report output only and goes through float64.
func FormatFixed(raw int64, shift uint) string {
	return strconv.FormatFloat(float64(raw)/float64(uint64(1)<<shift), 'g', 12, 64)
}

// FormatMops renders a throughput in millions of operations per second.
func FormatMops(mops float64) string {
	switch {
	case mops >= 100:
		return fmt.Sprintf("%.0f Mops/s", mops)
	case mops >= 10:
		return fmt.Sprintf("%.1f Mops/s", mops)
	default:
		return fmt.Sprintf("%.2f Mops/s", mops)
	}
}

// FormatError renders an accuracy figure in scientific notation, or "exact".
func FormatError(e float64) string {
	if e == 0 {
		return "exact"
	}
	return fmt.Sprintf("%.3e", e)
}
