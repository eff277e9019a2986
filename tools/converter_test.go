package tools

import (
	"context"
	"encoding/json"
	"testing"
)

func TestConverterTool_Run(t *testing.T) {
	conv := NewConverterTool(ConverterConfig{})
	ctx := context.Background()

	cases := []struct {
		value float64
		from  string
		to    string
		want  string
	}{
		{1, "km", "m", "1000.00000000000"},
		{2.54, "cm", "in", "1.00000000000000"},
		{1, "h", "s", "3600.00000000000"},
		{0, "c", "k", "273.150000000000"},
		{212, "f", "c", "100.000000000000"},
		{1, "kg", "g", "1000.00000000000"},
	}
	for _, c := range cases {
		out, err := conv.Run(ctx, ConverterInput{Value: c.value, FromUnit: c.from, ToUnit: c.to})
		if err != nil {
			t.Errorf("Run(%v %s -> %s) returned error: %v", c.value, c.from, c.to, err)
			continue
		}
		if out.Result != c.want {
			t.Errorf("Run(%v %s -> %s) = %q, want %q", c.value, c.from, c.to, out.Result, c.want)
		}
	}
}

func TestConverterTool_RunErrors(t *testing.T) {
	conv := NewConverterTool(ConverterConfig{})
	ctx := context.Background()

	cases := []ConverterInput{
		{Value: 1, FromUnit: "furlong", ToUnit: "m"},
		{Value: 1, FromUnit: "m", ToUnit: "parsec"},
		{Value: 1, FromUnit: "kg", ToUnit: "m"},
		{Value: 1, FromUnit: "c", ToUnit: "m"},
		{Value: 1},
	}
	for _, in := range cases {
		if out, err := conv.Run(ctx, in); err == nil {
			t.Errorf("Run(%+v) = %q, want error", in, out.Result)
		}
	}
}

func TestConverterTool_Execute(t *testing.T) {
	conv := NewConverterTool(ConverterConfig{})

	raw, err := conv.Execute(context.Background(), `{"value": 1, "from_unit": "mi", "to_unit": "km"}`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var out ConverterOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("Execute returned invalid JSON %q: %v", raw, err)
	}
	if out.Result != "1.60934400000000" {
		t.Errorf("Execute result = %q, want %q", out.Result, "1.60934400000000")
	}
}
