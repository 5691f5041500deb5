package hyperparams

import (
	"math"
)

type decay struct {
	base, factor float64
	every        int
}

// Decay returns a HyperParameter that is multiplied by factor once every 'every' iterations:
//
//	base * factor^(floor(iter / every) + 1)
//
// The first decay is applied before iteration 0, so Value(0) is already base * factor. Decay
// will panic if every is less than 1.
func Decay(base, factor float64, every int) *decay {
	if every < 1 {
		panic("hyperparams: Decay interval must be >= 1")
	}

	return &decay{base, factor, every}
}

func (d *decay) TypeString() string {
	return "decay"
}

func (d *decay) Value(iter int) float64 {
	return d.base * math.Pow(d.factor, float64(iter/d.every+1))
}
