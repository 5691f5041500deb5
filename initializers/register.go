// Package initializers provides the ways that starting weights can be chosen. Importing it sets
// the default Initializer of neuralbackprop to draw uniformly from [-1, 1).
package initializers

import (
	"math"
	"sync"

	"github.com/pkg/errors"

	nb "github.com/tomgrek/neuralbackprop"
)

// default values, because 'default' is a keyword
var defaultValue map[string]float64
var defaultMux sync.RWMutex

func init() {
	defaultValue = map[string]float64{
		"uniform-lower": -1,
		"uniform-upper": 1,
		"normal-mean":   0,
		"normal-sd":     1,
		"varscl-factor": 1,
	}

	nb.SetDefaultInitializer(Random(Uniform()))
}

// SetDefault changes one of the default values that new RNGs and Initializers start with. The
// names are "uniform-lower", "uniform-upper", "normal-mean", "normal-sd", and "varscl-factor".
// Values that were already created are not affected.
func SetDefault(name string, value float64) error {
	defaultMux.Lock()
	defer defaultMux.Unlock()

	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("Value is invalid (%v)", value)
	}

	defaultValue[name] = value
	return nil
}

// SetDefault_Lazy simply calls SetDefault, but panics instead of returning an error
func SetDefault_Lazy(name string, value float64) {
	if err := SetDefault(name, value); err != nil {
		panic(err)
	}
}

func getDefault(name string) float64 {
	defaultMux.RLock()
	defer defaultMux.RUnlock()
	return defaultValue[name]
}
