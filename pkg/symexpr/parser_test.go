package symexpr

import "testing"

func TestParse_Precedence(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"2+3*4", "14.0000000000000"},
		{"(2+3)*4", "20.0000000000000"},
		{"2-3-4", "-5.00000000000000"},
		{"12/3/2", "2.00000000000000"},
		{"2^2*3", "12.0000000000000"},
		{"--2", "2.00000000000000"},
		{"+2", "2.00000000000000"},
		{"-(1+2)", "-3.00000000000000"},
	}
	for _, c := range cases {
		got, err := Evaluate(c.expr)
		if err != nil {
			t.Errorf("Evaluate(%q) returned error: %v", c.expr, err)
			continue
		}
		if got != c.want {
			t.Errorf("Evaluate(%q) = %q, want %q", c.expr, got, c.want)
		}
	}
}

func TestParse_ErrorPositions(t *testing.T) {
	_, err := parse("2 + $")
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("parse error = %v (%T), want *ParseError", err, err)
	}
	if perr.Pos != 4 {
		t.Errorf("ParseError.Pos = %d, want 4", perr.Pos)
	}
	if perr.Expr != "2 + $" {
		t.Errorf("ParseError.Expr = %q, want original expression", perr.Expr)
	}
}

func TestLex_NumberForms(t *testing.T) {
	cases := []struct {
		src  string
		val  float64
		text string
	}{
		{"42", 42, "42"},
		{"3.25", 3.25, "3.25"},
		{".5", 0.5, ".5"},
		{"1e3", 1000, "1e3"},
		{"2.5E-2", 0.025, "2.5E-2"},
	}
	for _, c := range cases {
		toks, err := lex(c.src)
		if err != nil {
			t.Errorf("lex(%q) returned error: %v", c.src, err)
			continue
		}
		if len(toks) != 2 || toks[0].kind != tokenNumber {
			t.Errorf("lex(%q) = %+v, want a single number token", c.src, toks)
			continue
		}
		if toks[0].val != c.val || toks[0].text != c.text {
			t.Errorf("lex(%q) token = %q/%v, want %q/%v", c.src, toks[0].text, toks[0].val, c.text, c.val)
		}
	}
}

func TestLex_ExponentWithoutDigits(t *testing.T) {
	// "2e" must lex as the number 2 followed by the identifier e,
	// which then fails to parse for want of an operator.
	toks, err := lex("2e")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	if len(toks) != 3 || toks[0].kind != tokenNumber || toks[1].kind != tokenIdent {
		t.Fatalf("lex(\"2e\") = %+v, want number then identifier", toks)
	}
	if _, err := parse("2e"); err == nil {
		t.Error("parse(\"2e\") succeeded, want error")
	}
}
