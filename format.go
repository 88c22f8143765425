package dentaku

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber formats a result as the shortest decimal that parses back to
// the same float64. Numbers with a decimal exponent from -6 through 20 are
// written in plain notation, e.g. "2.5", "0.000001", or
// "100000000000000000000"; others use an exponent, e.g. "1e+21" or "1.5e-7".
// The special values are "NaN", "Infinity", and "-Infinity". Negative zero is
// "0".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	var b strings.Builder
	if f < 0 {
		b.WriteByte('-')
		f = -f
	}
	// Shortest digits with an exponent: d[.ddd]e±x.
	s := strconv.FormatFloat(f, 'e', -1, 64)
	k := strings.IndexByte(s, 'e')
	digits := strings.Replace(s[:k], ".", "", 1)
	x, _ := strconv.Atoi(s[k+1:])
	// n is the position of the decimal point relative to the first digit.
	n := x + 1
	switch {
	case len(digits) <= n && n <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", n-len(digits)))
	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if len(digits) > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if x >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(x))
	}
	return b.String()
}
