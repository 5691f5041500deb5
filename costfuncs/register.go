// Package costfuncs provides the cost functions that turn a Network's outputs into the errors that
// start backpropagation. Importing it registers each by name with neuralbackprop and makes
// SignedSquare the default.
package costfuncs

import (
	nb "github.com/tomgrek/neuralbackprop"
)

func init() {
	list := map[string]func() nb.CostFunction{
		SignedSquare().TypeString(): func() nb.CostFunction { return SignedSquare() },
		MSE().TypeString():          func() nb.CostFunction { return MSE() },
		Abs().TypeString():          func() nb.CostFunction { return Abs() },
	}

	for s, f := range list {
		err := nb.RegisterCostFunction(s, f)
		if err != nil {
			panic(err.Error())
		}
	}

	nb.SetDefaultCostFunction(func() nb.CostFunction { return SignedSquare() })
}

// mean of f(out, target) over every output
func mean(outs, targets []float64, f func(float64, float64) float64) float64 {
	if len(outs) == 0 {
		return 0
	}

	var sum float64
	for i := range outs {
		sum += f(outs[i], targets[i])
	}

	return sum / float64(len(outs))
}
