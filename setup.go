package neuralbackprop

import (
	"fmt"

	"github.com/pkg/errors"
)

// Blueprint holds the pieces of a Network before it has been assembled: the Sources taken from a
// Dataset, and layers of Neurons that may not be connected yet.
type Blueprint struct {
	Inputs  []*Source
	Outputs []*Source
	Layers  [][]*Neuron
}

// Generate makes an unconnected Blueprint for the given Dataset. numLayers counts the layer of
// inputs as well, so it must be at least 3: numLayers-2 hidden layers of perLayer Neurons, then an
// output layer with one Neuron per output column. Every Neuron is logistic ("sigmoid").
//
// The Blueprint can be wired with FullyConnect.
func Generate(data *Dataset, numLayers, perLayer int) (*Blueprint, error) {
	if data == nil {
		return nil, NilArgError{"Dataset"}
	} else if numLayers < 3 {
		return nil, errors.Errorf("Can't generate network, numLayers must be >= 3, including the inputs (%d)", numLayers)
	} else if perLayer < 1 {
		return nil, errors.Errorf("Can't generate network, perLayer must be >= 1 (%d)", perLayer)
	}

	bp := &Blueprint{
		Inputs:  data.Inputs(),
		Outputs: data.Outputs(),
		Layers:  make([][]*Neuron, numLayers-1),
	}

	hidden := numLayers - 2
	for l := 0; l < hidden; l++ {
		for i := 0; i < perLayer; i++ {
			n, err := NewNeuron("sigmoid", fmt.Sprintf("layer %d neuron %d", l, i))
			if err != nil {
				return nil, errors.Wrapf(err, "Can't generate network\n")
			}

			bp.Layers[l] = append(bp.Layers[l], n)
		}
	}

	for i := 0; i < data.NumOutputs(); i++ {
		n, err := NewNeuron("sigmoid", fmt.Sprintf("output layer neuron %d", i))
		if err != nil {
			return nil, errors.Wrapf(err, "Can't generate network\n")
		}

		bp.Layers[hidden] = append(bp.Layers[hidden], n)
	}

	return bp, nil
}

// FullyConnect connects every Neuron in layer 0 to every Input, and every Neuron in each later
// layer to every Neuron in the layer before it. Starting weights come from the default
// Initializer.
func FullyConnect(bp *Blueprint) error {
	init, err := defaultInitializer()
	if err != nil {
		return errors.Wrapf(err, "Can't fully connect network")
	}

	return FullyConnectWith(bp, init)
}

// FullyConnectWith acts like FullyConnect, but with the given Initializer.
func FullyConnectWith(bp *Blueprint, init Initializer) error {
	if bp == nil {
		return NilArgError{"Blueprint"}
	} else if init == nil {
		return NilArgError{"Initializer"}
	} else if len(bp.Layers) == 0 {
		return ErrNoLayers
	}

	froms := make([]Node, len(bp.Inputs))
	for i, in := range bp.Inputs {
		froms[i] = in
	}

	for l, layer := range bp.Layers {
		fanOut := 1
		if l+1 < len(bp.Layers) {
			fanOut = len(bp.Layers[l+1])
		}

		for _, n := range layer {
			ws := make([]float64, len(froms))
			init.Set(len(froms), fanOut, ws)

			for i, from := range froms {
				if err := n.ConnectWeight(from, ws[i]); err != nil {
					return errors.Wrapf(err, "Can't connect %v in layer %d to %v\n", n, l, from)
				}
			}
		}

		froms = make([]Node, len(layer))
		for i, n := range layer {
			froms[i] = n
		}
	}

	return nil
}

// Network assembles the layers of the Blueprint with NewNetwork.
func (bp *Blueprint) Network() (*Network, error) {
	return NewNetwork(bp.Layers...)
}

// Example makes the small, hand-built network of mixed activations used by the demo: a first layer
// of four Neurons (tanh, sigmoid, relu, tanh) that each read every input, a hidden layer of two
// (tanh, sigmoid), and one relu output Neuron per output column. It is fully connected with the
// given Initializer.
func Example(data *Dataset, init Initializer) (*Blueprint, error) {
	if data == nil {
		return nil, NilArgError{"Dataset"}
	}

	shape := []struct {
		name  string
		types []string
	}{
		{"input layer neuron", []string{"tanh", "sigmoid", "relu", "tanh"}},
		{"hidden layers neuron", []string{"tanh", "sigmoid"}},
	}

	bp := &Blueprint{
		Inputs:  data.Inputs(),
		Outputs: data.Outputs(),
	}

	for _, s := range shape {
		var layer []*Neuron
		for i, typ := range s.types {
			n, err := NewNeuron(typ, fmt.Sprintf("%s %d", s.name, i+1))
			if err != nil {
				return nil, errors.Wrapf(err, "Can't make example network\n")
			}
			layer = append(layer, n)
		}

		bp.Layers = append(bp.Layers, layer)
	}

	var out []*Neuron
	for i := 0; i < data.NumOutputs(); i++ {
		n, err := NewNeuron("relu", fmt.Sprintf("output neuron %d", i+1))
		if err != nil {
			return nil, errors.Wrapf(err, "Can't make example network\n")
		}
		out = append(out, n)
	}
	bp.Layers = append(bp.Layers, out)

	if err := FullyConnectWith(bp, init); err != nil {
		return nil, errors.Wrapf(err, "Can't make example network\n")
	}

	return bp, nil
}
