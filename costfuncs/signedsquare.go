package costfuncs

type signedSquare int8

// SignedSquare returns the signed squared error, which implements neuralbackprop.CostFunction.
// The error of each output a with target e is
//
//	(e - a)²   if e >= a
//	-(e - a)²  otherwise
//
// so its sign gives the direction the output should move in. Equal values give exactly 0.
//
// SignedSquare is the default cost function.
func SignedSquare() signedSquare {
	return signedSquare(0)
}

func (s signedSquare) TypeString() string {
	return "signed-square"
}

func (s signedSquare) Errors(outs, targets []float64) []float64 {
	errs := make([]float64, len(outs))
	for i := range outs {
		d := targets[i] - outs[i]
		if d >= 0 {
			errs[i] = d * d
		} else {
			errs[i] = -d * d
		}
	}

	return errs
}

// Cost is the mean of the squared differences.
func (s signedSquare) Cost(outs, targets []float64) float64 {
	return mean(outs, targets, func(a, e float64) float64 {
		return (e - a) * (e - a)
	})
}
