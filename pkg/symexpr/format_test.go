package symexpr

import "testing"

func TestFormat_Real(t *testing.T) {
	cases := []struct {
		val  float64
		prec int
		want string
	}{
		{4, 15, "4.00000000000000"},
		{10, 15, "10.0000000000000"},
		{-1, 15, "-1.00000000000000"},
		{0, 15, "0"},
		{0.001, 15, "0.00100000000000000"},
		{0.125, 15, "0.125000000000000"},
		{1e20, 15, "1.00000000000000e+20"},
		{1.2246467991473515e-16, 15, "1.22464679914735e-16"},
		{-2.5e-7, 15, "-2.50000000000000e-7"},
		{4, 3, "4.00"},
		{9.9999999, 3, "10.0"},
	}
	for _, c := range cases {
		got := Format(complex(c.val, 0), c.prec)
		if got != c.want {
			t.Errorf("Format(%v, %d) = %q, want %q", c.val, c.prec, got, c.want)
		}
	}
}

func TestFormat_Complex(t *testing.T) {
	cases := []struct {
		val  complex128
		want string
	}{
		{complex(18, -1), "18.0000000000000 - 1.00000000000000*I"},
		{complex(0, 2), "0 + 2.00000000000000*I"},
		{complex(0.5, 0.25), "0.500000000000000 + 0.250000000000000*I"},
		{complex(0, 1.2246467991473515e-16), "0 + 1.22464679914735e-16*I"},
		{complex(-1, -1), "-1.00000000000000 - 1.00000000000000*I"},
	}
	for _, c := range cases {
		got := Format(c.val, 15)
		if got != c.want {
			t.Errorf("Format(%v, 15) = %q, want %q", c.val, got, c.want)
		}
	}
}

func TestFormat_RoundingCarry(t *testing.T) {
	// Rounding up across a power of ten must adjust the exponent,
	// not emit a 16-digit mantissa.
	got := Format(complex(9.999999999999999, 0), 15)
	if got != "10.0000000000000" {
		t.Errorf("Format(9.999999999999999, 15) = %q, want %q", got, "10.0000000000000")
	}
}
