package activations

import (
	"math"
)

// Floor is the smallest value ReLU will give, and the slope of its derivative below zero.
const Floor float64 = 0.01

type relu int8

// ReLU returns a rectified linear unit that never gives less than Floor:
//
//	max(z, 0.01)
//
// with the derivative 1 where z > 0 and 0.01 elsewhere. It is registered as "relu" and
// "rectified".
//
// Between 0 and Floor the value is flat while the derivative is 1.
func ReLU() relu {
	return relu(0)
}

func (t relu) TypeString() string {
	return "relu"
}

func (t relu) Value(z float64) float64 {
	return math.Max(z, Floor)
}

func (t relu) Deriv(z float64) float64 {
	if z > 0 {
		return 1
	}
	return Floor
}
