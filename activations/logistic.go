package activations

import (
	"math"
)

type logistic int8

// Logistic returns the logistic sigmoid, 1 / (1 + e^-z), which implements neuralbackprop.Activation.
// It is registered as "sigmoid" and "logistic", and is the default activation.
func Logistic() logistic {
	return logistic(0)
}

func (t logistic) TypeString() string {
	return "sigmoid"
}

func (t logistic) Value(z float64) float64 {
	return 0.5 + 0.5*math.Tanh(0.5*z)
}

func (t logistic) Deriv(z float64) float64 {
	a := t.Value(z)
	return a * (1 - a)
}
