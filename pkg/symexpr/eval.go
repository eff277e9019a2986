package symexpr

import (
	"fmt"
	"math"
	"math/cmplx"
)

type node interface {
	eval() (complex128, error)
}

type numberNode struct{ val float64 }

type identNode struct{ name string }

type callNode struct {
	name string
	args []node
}

type unaryNode struct {
	op      byte
	operand node
}

type binaryNode struct {
	op          byte
	left, right node
}

var constants = map[string]complex128{
	"pi": complex(math.Pi, 0),
	"e":  complex(math.E, 0),
	"E":  complex(math.E, 0),
	"i":  complex(0, 1),
	"I":  complex(0, 1),
}

func (n *numberNode) eval() (complex128, error) {
	return complex(n.val, 0), nil
}

func (n *identNode) eval() (complex128, error) {
	if v, ok := constants[n.name]; ok {
		return v, nil
	}
	return 0, &EvalError{Msg: fmt.Sprintf("unknown symbol %q", n.name)}
}

func (n *unaryNode) eval() (complex128, error) {
	v, err := n.operand.eval()
	if err != nil {
		return 0, err
	}
	if n.op == '-' {
		// Negating a real operand must not flip its +0 imaginary
		// part to -0: sqrt, log and asin honor the signed zero and
		// would land on the lower side of their branch cuts.
		if imag(v) == 0 {
			return complex(-real(v), 0), nil
		}
		return -v, nil
	}
	return v, nil
}

func (n *binaryNode) eval() (complex128, error) {
	l, err := n.left.eval()
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval()
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		if r == 0 {
			return 0, &EvalError{Msg: "division by zero"}
		}
		return l / r, nil
	case '^':
		return pow(l, r)
	}
	return 0, &EvalError{Msg: fmt.Sprintf("unknown operator %q", string(n.op))}
}

func (n *callNode) eval() (complex128, error) {
	fn, ok := functions[n.name]
	if !ok {
		return 0, &EvalError{Msg: fmt.Sprintf("unknown function %q", n.name)}
	}
	args := make([]complex128, len(n.args))
	for i, a := range n.args {
		v, err := a.eval()
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return fn(n.name, args)
}

// pow keeps purely real cases on math.Pow so that results like 2^10 or
// (-2)^3 stay exact instead of picking up rotation residue from the
// complex formula.
func pow(x, y complex128) (complex128, error) {
	if imag(x) == 0 && imag(y) == 0 {
		xr, yr := real(x), real(y)
		if xr == 0 {
			if yr < 0 {
				return 0, &EvalError{Msg: "zero raised to a negative power"}
			}
			if yr == 0 {
				return 1, nil
			}
			return 0, nil
		}
		if xr > 0 || yr == math.Trunc(yr) {
			return complex(math.Pow(xr, yr), 0), nil
		}
	}
	return cmplx.Pow(x, y), nil
}

type evalFunc func(name string, args []complex128) (complex128, error)

var functions = map[string]evalFunc{
	"sin":     realOrComplex(math.Sin, cmplx.Sin),
	"cos":     realOrComplex(math.Cos, cmplx.Cos),
	"tan":     realOrComplex(math.Tan, cmplx.Tan),
	"sinh":    realOrComplex(math.Sinh, cmplx.Sinh),
	"cosh":    realOrComplex(math.Cosh, cmplx.Cosh),
	"tanh":    realOrComplex(math.Tanh, cmplx.Tanh),
	"exp":     realOrComplex(math.Exp, cmplx.Exp),
	"atan":    realOrComplex(math.Atan, cmplx.Atan),
	"asin":    inverseTrig(math.Asin, cmplx.Asin),
	"acos":    inverseTrig(math.Acos, cmplx.Acos),
	"sqrt":    oneArg(sqrtFn),
	"abs":     oneArg(absFn),
	"floor":   realOnly("floor", math.Floor),
	"ceiling": realOnly("ceiling", math.Ceil),
	"log":     logFn,
}

func arity(name string, args []complex128, n int) error {
	if len(args) != n {
		return &EvalError{Msg: fmt.Sprintf("%s expects %d argument(s), got %d", name, n, len(args))}
	}
	return nil
}

// realOrComplex applies rf when the argument is real, keeping real
// inputs free of spurious imaginary parts, and cf otherwise.
func realOrComplex(rf func(float64) float64, cf func(complex128) complex128) evalFunc {
	return func(name string, args []complex128) (complex128, error) {
		if err := arity(name, args, 1); err != nil {
			return 0, err
		}
		z := args[0]
		if imag(z) == 0 {
			return complex(rf(real(z)), 0), nil
		}
		return cf(z), nil
	}
}

// inverseTrig stays real inside [-1, 1] and branches to the complex
// extension outside it, matching symbolic evaluation of asin/acos.
func inverseTrig(rf func(float64) float64, cf func(complex128) complex128) evalFunc {
	return func(name string, args []complex128) (complex128, error) {
		if err := arity(name, args, 1); err != nil {
			return 0, err
		}
		z := args[0]
		if imag(z) == 0 && real(z) >= -1 && real(z) <= 1 {
			return complex(rf(real(z)), 0), nil
		}
		return cf(z), nil
	}
}

func oneArg(f func(z complex128) (complex128, error)) evalFunc {
	return func(name string, args []complex128) (complex128, error) {
		if err := arity(name, args, 1); err != nil {
			return 0, err
		}
		return f(args[0])
	}
}

func realOnly(name string, rf func(float64) float64) evalFunc {
	return func(_ string, args []complex128) (complex128, error) {
		if err := arity(name, args, 1); err != nil {
			return 0, err
		}
		if imag(args[0]) != 0 {
			return 0, &EvalError{Msg: fmt.Sprintf("%s is not defined for complex arguments", name)}
		}
		return complex(rf(real(args[0])), 0), nil
	}
}

func sqrtFn(z complex128) (complex128, error) {
	if imag(z) == 0 && real(z) >= 0 {
		return complex(math.Sqrt(real(z)), 0), nil
	}
	return cmplx.Sqrt(z), nil
}

func absFn(z complex128) (complex128, error) {
	return complex(cmplx.Abs(z), 0), nil
}

// logFn is the natural logarithm; a second argument selects the base,
// as in log(100, 10).
func logFn(name string, args []complex128) (complex128, error) {
	if len(args) != 1 && len(args) != 2 {
		return 0, &EvalError{Msg: fmt.Sprintf("%s expects 1 or 2 arguments, got %d", name, len(args))}
	}
	num, err := ln(args[0])
	if err != nil {
		return 0, err
	}
	if len(args) == 1 {
		return num, nil
	}
	den, err := ln(args[1])
	if err != nil {
		return 0, err
	}
	if den == 0 {
		return 0, &EvalError{Msg: "logarithm base must not be 1"}
	}
	return num / den, nil
}

func ln(z complex128) (complex128, error) {
	if z == 0 {
		return 0, &EvalError{Msg: "logarithm of zero"}
	}
	if imag(z) == 0 && real(z) > 0 {
		return complex(math.Log(real(z)), 0), nil
	}
	return cmplx.Log(z), nil
}

func isFinite(z complex128) bool {
	return !cmplx.IsInf(z) && !cmplx.IsNaN(z)
}
