package costfuncs

type mse int8

// MSE returns the mean squared error cost function, which implements neuralbackprop.CostFunction.
// Its errors are the plain differences, target - output, so that the output deltas follow the
// gradient of the cost.
func MSE() mse {
	return mse(0)
}

// L2 is a proxy for MSE
func L2() mse {
	return MSE()
}

func (m mse) TypeString() string {
	return "mse"
}

func (m mse) Errors(outs, targets []float64) []float64 {
	errs := make([]float64, len(outs))
	for i := range outs {
		errs[i] = targets[i] - outs[i]
	}

	return errs
}

func (m mse) Cost(outs, targets []float64) float64 {
	return mean(outs, targets, func(a, e float64) float64 {
		return 0.5 * (a - e) * (a - e)
	})
}
