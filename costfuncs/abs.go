package costfuncs

import (
	"math"
)

type abs int8

// Abs returns the absolute value cost function, which implements neuralbackprop.CostFunction.
// Each error is +1 or -1, in the direction of the target, and 0 when the output is exact.
func Abs() abs {
	return abs(0)
}

// L1 is a proxy for Abs
func L1() abs {
	return Abs()
}

func (a abs) TypeString() string {
	return "abs"
}

func (a abs) Errors(outs, targets []float64) []float64 {
	errs := make([]float64, len(outs))
	for i := range outs {
		if d := targets[i] - outs[i]; d != 0 {
			errs[i] = math.Copysign(1, d)
		}
	}

	return errs
}

func (a abs) Cost(outs, targets []float64) float64 {
	return mean(outs, targets, func(o, e float64) float64 {
		return math.Abs(o - e)
	})
}
