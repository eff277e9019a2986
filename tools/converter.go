package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BrainBlend-AI/atomic-tools/pkg/symexpr"
)

// ConverterInput is the input schema for the unit converter tool.
type ConverterInput struct {
	Value    float64 `json:"value" jsonschema_description:"Numeric value to convert."`
	FromUnit string  `json:"from_unit" jsonschema_description:"Unit of the input value, e.g. 'km', 'lb', 'c'."`
	ToUnit   string  `json:"to_unit" jsonschema_description:"Unit to convert to, e.g. 'mi', 'kg', 'f'."`
}

// ConverterOutput is the output schema for the unit converter tool.
type ConverterOutput struct {
	Result string `json:"result" jsonschema_description:"Converted value as a string."`
}

// ConverterConfig configures the unit converter tool.
type ConverterConfig struct {
	// Precision is the number of significant digits in rendered
	// results. Zero means symexpr.DefaultPrecision (15).
	Precision int `yaml:"precision" json:"precision"`
}

// unitDef places a unit in a category with its factor to that
// category's base unit (meters, kilograms, seconds).
type unitDef struct {
	category string
	factor   float64
}

var units = map[string]unitDef{
	"m":   {"length", 1},
	"km":  {"length", 1000},
	"cm":  {"length", 0.01},
	"mm":  {"length", 0.001},
	"mi":  {"length", 1609.344},
	"yd":  {"length", 0.9144},
	"ft":  {"length", 0.3048},
	"in":  {"length", 0.0254},
	"kg":  {"mass", 1},
	"g":   {"mass", 0.001},
	"mg":  {"mass", 1e-6},
	"t":   {"mass", 1000},
	"lb":  {"mass", 0.45359237},
	"oz":  {"mass", 0.028349523125},
	"s":   {"time", 1},
	"ms":  {"time", 0.001},
	"min": {"time", 60},
	"h":   {"time", 3600},
	"day": {"time", 86400},
}

// ConverterTool converts values between units of length, mass, time
// and temperature.
type ConverterTool struct {
	cfg ConverterConfig
}

func NewConverterTool(cfg ConverterConfig) *ConverterTool {
	if cfg.Precision <= 0 {
		cfg.Precision = symexpr.DefaultPrecision
	}
	return &ConverterTool{cfg: cfg}
}

func (c *ConverterTool) Name() string {
	return "unit_converter"
}

func (c *ConverterTool) Description() string {
	return "Convert a numeric value between units. Length: m, km, cm, mm, mi, yd, ft, in. Mass: kg, g, mg, t, lb, oz. Time: s, ms, min, h, day. Temperature: c, f, k."
}

func (c *ConverterTool) Parameters() map[string]any {
	return GenerateSchema[ConverterInput]()
}

// Run converts params.Value from FromUnit to ToUnit. Units must belong
// to the same category; unknown units and cross-category conversions
// are errors.
func (c *ConverterTool) Run(ctx context.Context, params ConverterInput) (ConverterOutput, error) {
	from := strings.ToLower(strings.TrimSpace(params.FromUnit))
	to := strings.ToLower(strings.TrimSpace(params.ToUnit))
	if from == "" || to == "" {
		return ConverterOutput{}, fmt.Errorf("from_unit and to_unit must not be empty")
	}

	value, err := convert(params.Value, from, to)
	if err != nil {
		return ConverterOutput{}, err
	}
	return ConverterOutput{Result: symexpr.Format(complex(value, 0), c.cfg.Precision)}, nil
}

func (c *ConverterTool) Execute(ctx context.Context, input string) (string, error) {
	var params ConverterInput
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return "", fmt.Errorf("invalid input: %v", err)
	}

	out, err := c.Run(ctx, params)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %v", err)
	}
	return string(data), nil
}

func convert(value float64, from, to string) (float64, error) {
	if isTemperature(from) || isTemperature(to) {
		return convertTemperature(value, from, to)
	}

	fu, ok := units[from]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", from)
	}
	tu, ok := units[to]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", to)
	}
	if fu.category != tu.category {
		return 0, fmt.Errorf("cannot convert %s (%s) to %s (%s)", from, fu.category, to, tu.category)
	}
	return value * fu.factor / tu.factor, nil
}

func isTemperature(unit string) bool {
	return unit == "c" || unit == "f" || unit == "k"
}

// convertTemperature goes through celsius as the intermediate scale.
func convertTemperature(value float64, from, to string) (float64, error) {
	if !isTemperature(from) || !isTemperature(to) {
		return 0, fmt.Errorf("cannot convert %s to %s", from, to)
	}

	var celsius float64
	switch from {
	case "c":
		celsius = value
	case "f":
		celsius = (value - 32) * 5 / 9
	case "k":
		celsius = value - 273.15
	}

	switch to {
	case "c":
		return celsius, nil
	case "f":
		return celsius*9/5 + 32, nil
	default:
		return celsius + 273.15, nil
	}
}
