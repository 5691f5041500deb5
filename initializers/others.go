package initializers

import (
	"math/rand"

	"github.com/pkg/errors"

	nb "github.com/tomgrek/neuralbackprop"
)

// LeCun returns variance scaling by the fan-in.
func LeCun() *varianceScaling {
	return VarianceScaling().In()
}

// He returns variance scaling by the fan-in, with a factor of 2.
func He() *varianceScaling {
	return VarianceScaling().In().Factor(2)
}

// Xavier returns variance scaling by the average of fan-in and fan-out.
func Xavier() *varianceScaling {
	return VarianceScaling().Avg()
}

// Glorot is a proxy for Xavier
func Glorot() *varianceScaling {
	return Xavier()
}

// FromName returns the Initializer with the given name: "uniform", "normal", "lecun", "he", or
// "xavier" ("glorot"). If r is not nil, it will be the only source of randomness used.
func FromName(name string, r *rand.Rand) (nb.Initializer, error) {
	switch name {
	case "uniform":
		return Random(Uniform().Rand(r)), nil
	case "normal":
		return Random(Normal().Rand(r)), nil
	case "lecun":
		return LeCun().Rand(r), nil
	case "he":
		return He().Rand(r), nil
	case "xavier", "glorot":
		return Xavier().Rand(r), nil
	}

	return nil, errors.Errorf("Unknown initializer %q", name)
}
