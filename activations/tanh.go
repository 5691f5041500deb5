package activations

import (
	"math"
)

type tanh int8

// Tanh returns the hyperbolic tangent, registered as "tanh" and "saturating". Its derivative is
// 1 - tanh²(z).
func Tanh() tanh {
	return tanh(0)
}

func (t tanh) TypeString() string {
	return "tanh"
}

func (t tanh) Value(z float64) float64 {
	return math.Tanh(z)
}

func (t tanh) Deriv(z float64) float64 {
	a := math.Tanh(z)
	return 1 - a*a
}

type literalTanh int8

// LiteralTanh returns the hyperbolic tangent with the derivative 1 - z², evaluated at the
// weighted sum instead of the activation. It is not the true derivative, and is only provided to
// reproduce networks that were trained with it. It is registered as "tanh-literal".
func LiteralTanh() literalTanh {
	return literalTanh(0)
}

func (t literalTanh) TypeString() string {
	return "tanh-literal"
}

func (t literalTanh) Value(z float64) float64 {
	return math.Tanh(z)
}

func (t literalTanh) Deriv(z float64) float64 {
	return 1 - z*z
}
