// Package symexpr evaluates mathematical expression strings.
//
// Expressions use standard infix operators (+ - * / ^), parentheses,
// the named constants pi, e and i, and common trigonometric,
// exponential and logarithmic functions. Values are computed in
// complex arithmetic and rendered at a fixed number of significant
// digits, so "2 + 2" yields "4.00000000000000" and "sqrt(-4)" yields
// "0 + 2.00000000000000*I". Evaluation is pure and deterministic:
// the same input string always produces the same output string.
package symexpr

import "fmt"

// DefaultPrecision is the number of significant digits used when no
// explicit precision is given.
const DefaultPrecision = 15

// ParseError reports a syntactically malformed expression.
type ParseError struct {
	Expr string // the full input expression
	Pos  int    // byte offset of the offending token
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Msg)
}

// EvalError reports an expression that parsed but cannot be computed,
// such as a division by zero or a reference to an unknown name.
type EvalError struct {
	Msg string
}

func (e *EvalError) Error() string {
	return "evaluation error: " + e.Msg
}

// Evaluate computes an expression and renders the result at
// DefaultPrecision significant digits. It returns a *ParseError for
// malformed syntax and a *EvalError for undefined operations; it never
// substitutes a default or partial result.
func Evaluate(expression string) (string, error) {
	return EvaluateWithPrecision(expression, DefaultPrecision)
}

// EvaluateWithPrecision is Evaluate with an explicit significant-digit
// count. Non-positive prec falls back to DefaultPrecision.
func EvaluateWithPrecision(expression string, prec int) (string, error) {
	if prec <= 0 {
		prec = DefaultPrecision
	}
	root, err := parse(expression)
	if err != nil {
		return "", err
	}
	val, err := root.eval()
	if err != nil {
		return "", err
	}
	if !isFinite(val) {
		return "", &EvalError{Msg: "result is not finite"}
	}
	return Format(val, prec), nil
}
