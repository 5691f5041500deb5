// Package activations provides the activation functions available to Neurons. Importing it
// registers each function by name with neuralbackprop, and sets the logistic function as the
// default for names that are not registered:
//
//	import _ "github.com/tomgrek/neuralbackprop/activations"
package activations

import (
	nb "github.com/tomgrek/neuralbackprop"
)

func init() {
	list := map[string]func() nb.Activation{
		Logistic().TypeString():    func() nb.Activation { return Logistic() },
		"logistic":                 func() nb.Activation { return Logistic() },
		ReLU().TypeString():        func() nb.Activation { return ReLU() },
		"rectified":                func() nb.Activation { return ReLU() },
		Tanh().TypeString():        func() nb.Activation { return Tanh() },
		"saturating":               func() nb.Activation { return Tanh() },
		LiteralTanh().TypeString(): func() nb.Activation { return LiteralTanh() },
	}

	for s, f := range list {
		err := nb.RegisterActivation(s, f)
		if err != nil {
			panic(err.Error())
		}
	}

	nb.SetDefaultActivation(func() nb.Activation { return Logistic() })
}
