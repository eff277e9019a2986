package symexpr

import (
	"math"
	"strconv"
	"strings"
)

// Format renders a computed value at prec significant digits. Real
// values use fixed-point notation while the decimal exponent lies in
// [-4, prec) and scientific notation outside that range. Complex
// values always render both terms as "<re> + <im>*I" (or "- <im>*I"
// for a negative imaginary part); near-zero residue such as the
// 1e-16 left over from e^(i*pi) + 1 is preserved rather than
// collapsed to zero.
func Format(z complex128, prec int) string {
	if prec <= 0 {
		prec = DefaultPrecision
	}
	re, im := real(z), imag(z)
	if im == 0 {
		return formatReal(re, prec)
	}
	sign := "+"
	if im < 0 {
		sign = "-"
		im = -im
	}
	return formatReal(re, prec) + " " + sign + " " + formatReal(im, prec) + "*I"
}

func formatReal(x float64, prec int) string {
	if x == 0 {
		return "0"
	}
	neg := math.Signbit(x)
	if neg {
		x = -x
	}

	// Round to prec significant digits first; the scientific form
	// carries the exponent adjustment if rounding overflows the
	// mantissa (e.g. 9.99...9 -> 1.00...0e+1).
	sci := strconv.FormatFloat(x, 'e', prec-1, 64)
	mant, expStr, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expStr)
	digits := strings.Replace(mant, ".", "", 1)

	var out string
	if exp >= -4 && exp < prec {
		if exp >= 0 {
			out = digits[:exp+1] + "." + digits[exp+1:]
		} else {
			out = "0." + strings.Repeat("0", -exp-1) + digits
		}
	} else {
		out = mant + "e" + formatExponent(exp)
	}
	if neg {
		out = "-" + out
	}
	return out
}

func formatExponent(exp int) string {
	if exp < 0 {
		return "-" + strconv.Itoa(-exp)
	}
	return "+" + strconv.Itoa(exp)
}
