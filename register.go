package neuralbackprop

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// The registries are written during init() by the subpackages and only read afterwards, but
// independent training runs may read them from several goroutines.
var registry struct {
	sync.RWMutex

	activations       map[string]func() Activation
	defaultActivation func() Activation

	costFuncs   map[string]func() CostFunction
	defaultCost func() CostFunction

	defaultInit Initializer
}

// RegisterActivation makes the Activation returned by f available under the given name, for use
// by NewNeuron. RegisterActivation will return ErrRegisterDuplicate if the name is taken.
func RegisterActivation(name string, f func() Activation) error {
	if name == "" {
		return ErrRegisterEmptyName
	} else if f == nil {
		return NilArgError{"Activation constructor"}
	} else if f() == nil {
		return ErrRegisterNilReturn
	}

	registry.Lock()
	defer registry.Unlock()

	if registry.activations == nil {
		registry.activations = make(map[string]func() Activation)
	}
	if _, ok := registry.activations[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register activation %q", name)
	}

	registry.activations[name] = f
	return nil
}

// SetDefaultActivation sets the Activation used for names that have not been registered.
func SetDefaultActivation(f func() Activation) {
	if f == nil {
		panic(NilArgError{"Default activation constructor"})
	}

	registry.Lock()
	registry.defaultActivation = f
	registry.Unlock()
}

// GetActivation returns a new instance of the Activation registered under the given name. If the
// name is unknown, the default Activation is returned instead. If there is no default either,
// GetActivation returns ErrNoDefaultActivation.
func GetActivation(name string) (Activation, error) {
	registry.RLock()
	defer registry.RUnlock()

	if f, ok := registry.activations[name]; ok {
		return f(), nil
	} else if registry.defaultActivation == nil {
		return nil, ErrNoDefaultActivation
	}

	return registry.defaultActivation(), nil
}

// Activations returns the sorted names of all registered Activations.
func Activations() []string {
	registry.RLock()
	defer registry.RUnlock()

	names := make([]string, 0, len(registry.activations))
	for name := range registry.activations {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// RegisterCostFunction makes the CostFunction returned by f available under the given name.
func RegisterCostFunction(name string, f func() CostFunction) error {
	if name == "" {
		return ErrRegisterEmptyName
	} else if f == nil {
		return NilArgError{"CostFunction constructor"}
	} else if f() == nil {
		return ErrRegisterNilReturn
	}

	registry.Lock()
	defer registry.Unlock()

	if registry.costFuncs == nil {
		registry.costFuncs = make(map[string]func() CostFunction)
	}
	if _, ok := registry.costFuncs[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register cost function %q", name)
	}

	registry.costFuncs[name] = f
	return nil
}

// SetDefaultCostFunction sets the CostFunction that new Networks are given.
func SetDefaultCostFunction(f func() CostFunction) {
	if f == nil {
		panic(NilArgError{"Default cost function constructor"})
	}

	registry.Lock()
	registry.defaultCost = f
	registry.Unlock()
}

// GetCostFunction returns the CostFunction registered under the given name. Unlike
// GetActivation, unknown names are an error.
func GetCostFunction(name string) (CostFunction, error) {
	registry.RLock()
	defer registry.RUnlock()

	f, ok := registry.costFuncs[name]
	if !ok {
		return nil, errors.Errorf("Cost function %q is not registered", name)
	}

	return f(), nil
}

func defaultCostFunction() CostFunction {
	registry.RLock()
	defer registry.RUnlock()

	if registry.defaultCost == nil {
		return nil
	}

	return registry.defaultCost()
}

// SetDefaultInitializer sets the Initializer used by *Neuron.Connect and FullyConnect.
func SetDefaultInitializer(init Initializer) {
	if init == nil {
		panic(NilArgError{"Default initializer"})
	}

	registry.Lock()
	registry.defaultInit = init
	registry.Unlock()
}

func defaultInitializer() (Initializer, error) {
	registry.RLock()
	defer registry.RUnlock()

	if registry.defaultInit == nil {
		return nil, ErrNoInitializer
	}

	return registry.defaultInit, nil
}
