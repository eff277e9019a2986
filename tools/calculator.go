package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BrainBlend-AI/atomic-tools/pkg/symexpr"
)

// CalculatorInput is the input schema for the calculator tool.
type CalculatorInput struct {
	Expression string `json:"expression" jsonschema_description:"Mathematical expression to evaluate. Supports arithmetic operations, trigonometric functions, and constants like pi and e. For example: '2 + 2', 'sin(pi/2)', 'e^2'."`
}

// CalculatorOutput is the output schema for the calculator tool.
type CalculatorOutput struct {
	Result string `json:"result" jsonschema_description:"Result of the calculation as a string."`
}

// CalculatorConfig configures the calculator tool.
type CalculatorConfig struct {
	// Precision is the number of significant digits in rendered
	// results. Zero means symexpr.DefaultPrecision (15).
	Precision int `yaml:"precision" json:"precision"`
}

// CalculatorTool evaluates mathematical expressions symbolically and
// renders the result at a fixed precision. Evaluation is pure and
// deterministic: the same expression always produces the same result
// string, and failures propagate as typed errors
// (*symexpr.ParseError, *symexpr.EvalError) rather than default
// values.
type CalculatorTool struct {
	cfg CalculatorConfig
}

func NewCalculatorTool(cfg CalculatorConfig) *CalculatorTool {
	if cfg.Precision <= 0 {
		cfg.Precision = symexpr.DefaultPrecision
	}
	return &CalculatorTool{cfg: cfg}
}

func (c *CalculatorTool) Name() string {
	return "calculator"
}

func (c *CalculatorTool) Description() string {
	return "Evaluate a mathematical expression. Supports arithmetic operators (+ - * / ^), constants pi, e and i, and functions like sin, cos, tan, exp, log and sqrt. Returns the numeric result as a string."
}

func (c *CalculatorTool) Parameters() map[string]any {
	return GenerateSchema[CalculatorInput]()
}

// Run evaluates the expression in params and returns the rendered
// result. This is the typed entry point; Execute wraps it for hosts
// that speak raw JSON.
func (c *CalculatorTool) Run(ctx context.Context, params CalculatorInput) (CalculatorOutput, error) {
	if params.Expression == "" {
		return CalculatorOutput{}, fmt.Errorf("expression must not be empty")
	}
	result, err := symexpr.EvaluateWithPrecision(params.Expression, c.cfg.Precision)
	if err != nil {
		return CalculatorOutput{}, err
	}
	return CalculatorOutput{Result: result}, nil
}

func (c *CalculatorTool) Execute(ctx context.Context, input string) (string, error) {
	var params CalculatorInput
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
