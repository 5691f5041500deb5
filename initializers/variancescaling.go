package initializers

import (
	"math"
	"math/rand"
)

type varianceScaling struct {
	// either: "in", "out", "avg"
	mode   string
	factor float64
	r      *rand.Rand
}

const defaultVarianceMode string = "avg"

// VarianceScaling returns the variance scaling initializer, which has 3 modes and a user-defined
// scaling factor. The three modes can be set by In, Out, and Avg. It defaults to Avg.
//
// Weights are drawn from a normal distribution truncated at 2 standard deviations, with a
// variance of factor / scale, where scale is the fan-in, the fan-out, or their average.
func VarianceScaling() *varianceScaling {
	return &varianceScaling{mode: defaultVarianceMode, factor: getDefault("varscl-factor")}
}

// Factor sets the scaling factor to be used for the Initializer. The default factor can be set by
// SetDefault("varscl-factor")
func (v *varianceScaling) Factor(f float64) *varianceScaling {
	v.factor = f
	return v
}

// In sets the scaling to be based on the number of connections into the Neuron.
func (v *varianceScaling) In() *varianceScaling {
	v.mode = "in"
	return v
}

// Out sets the scaling to be based on the number of Neurons that read from the Neuron.
func (v *varianceScaling) Out() *varianceScaling {
	v.mode = "out"
	return v
}

// Avg sets the scaling to be based on the average of the fan-in and fan-out.
func (v *varianceScaling) Avg() *varianceScaling {
	v.mode = "avg"
	return v
}

// Rand sets the source of randomness, returning the Initializer.
func (v *varianceScaling) Rand(r *rand.Rand) *varianceScaling {
	v.r = r
	return v
}

// Set is the implementation of neuralbackprop.Initializer
func (v *varianceScaling) Set(fanIn, fanOut int, ws []float64) {
	var scale float64
	if v.mode == "in" {
		scale = float64(fanIn)
	} else if v.mode == "out" {
		scale = float64(fanOut)
	} else { // must be "avg"
		scale = float64(fanIn+fanOut) / 2
	}

	if scale < 1 {
		scale = 1
	}

	gen := TruncNormal().Rand(v.r)
	gen.σ = math.Sqrt(v.factor / scale)
	gen.µ = 0

	for i := 0; i < len(ws); i++ {
		ws[i] = gen.Gen()
	}
}
