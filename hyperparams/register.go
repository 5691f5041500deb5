// Package hyperparams provides the schedules that give a learning rate for each iteration of
// training.
package hyperparams

import (
	"github.com/pkg/errors"

	nb "github.com/tomgrek/neuralbackprop"
)

// FromName builds the HyperParameter with the given type name. "decay" uses factor and every;
// "constant" ignores them. "step" can't be built by name, as it needs its steps.
func FromName(name string, base, factor float64, every int) (nb.HyperParameter, error) {
	switch name {
	case Constant(0).TypeString():
		return Constant(base), nil
	case "decay":
		if every < 1 {
			return nil, errors.Errorf("Decay interval must be >= 1 (%d)", every)
		}
		return Decay(base, factor, every), nil
	}

	return nil, errors.Errorf("Unknown learning rate schedule %q", name)
}
