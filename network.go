package neuralbackprop

import (
	"fmt"
)

// NewNetwork assembles the given layers into a Network, after checking that they are properly
// layered:
//
//	(0) there is at least one layer, and no layer is empty,
//	(1) every Neuron appears exactly once, and doesn't already belong to another Network,
//	(2) Neurons in layer 0 read at least one Input Source, and only take input from Input Sources,
//	    which all have the same number of samples,
//	(3) Neurons in every other layer only take input from Neurons in the layer directly before.
//
// A violation of (0) with no layers returns ErrNoLayers; all others return type TopologyError.
//
// Once the Network has been constructed, no connections can be added to its Neurons. The
// Network's CostFunction is the default one, set by the subpackage "costfuncs".
func NewNetwork(layers ...[]*Neuron) (*Network, error) {
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}

	layerOf := make(map[*Neuron]int)
	for l, layer := range layers {
		if len(layer) == 0 {
			return nil, TopologyError{Layer: l, Reason: "layer is empty"}
		}

		for i, n := range layer {
			if n == nil {
				return nil, TopologyError{Layer: l, Reason: fmt.Sprintf("neuron %d is nil", i)}
			} else if n.host != nil {
				return nil, TopologyError{l, n.name, "neuron already belongs to a network"}
			} else if prev, ok := layerOf[n]; ok {
				return nil, TopologyError{l, n.name, fmt.Sprintf("neuron is also in layer %d", prev)}
			}

			layerOf[n] = l
		}
	}

	var inputs []*Source
	seen := make(map[*Source]bool)
	for l, layer := range layers {
		for _, n := range layer {
			if l == 0 && len(n.connections) == 0 {
				return nil, TopologyError{l, n.name, "neuron reads no input sources"}
			}

			for i, c := range n.connections {
				switch from := c.from.(type) {
				case *Source:
					if l != 0 {
						return nil, TopologyError{l, n.name, fmt.Sprintf("connection %d reads source %v; only layer 0 may", i, from)}
					} else if from.role != InputRole {
						return nil, TopologyError{l, n.name, fmt.Sprintf("connection %d reads output source %v", i, from)}
					}

					if !seen[from] {
						if len(inputs) != 0 && inputs[0].Len() != from.Len() {
							return nil, TopologyError{l, n.name, fmt.Sprintf("source %v has %d samples, but %v has %d",
								from, from.Len(), inputs[0], inputs[0].Len())}
						}

						seen[from] = true
						inputs = append(inputs, from)
					}
				case *Neuron:
					fl, ok := layerOf[from]
					if !ok {
						return nil, TopologyError{l, n.name, fmt.Sprintf("connection %d reads %v, which is not in the network", i, from)}
					} else if fl != l-1 {
						return nil, TopologyError{l, n.name, fmt.Sprintf("connection %d reads %v from layer %d; only layer %d may be read",
							i, from, fl, l-1)}
					}
				default:
					return nil, TopologyError{l, n.name, fmt.Sprintf("connection %d has no source", i)}
				}
			}
		}
	}

	net := &Network{
		layers:       make([][]*Neuron, len(layers)),
		inputs:       inputs,
		cf:           defaultCostFunction(),
		sourceDeltas: make(map[*Source]float64),
		sample:       -1,
		stat:         finalized,
	}

	for l, layer := range layers {
		net.layers[l] = make([]*Neuron, len(layer))
		copy(net.layers[l], layer)

		for _, n := range layer {
			n.host = net
			n.layer = l
		}
	}

	return net, nil
}

// SetCost changes the CostFunction used to compute the output errors. If cf is nil, SetCost will
// panic with type NilArgError.
func (net *Network) SetCost(cf CostFunction) *Network {
	if cf == nil {
		panic(NilArgError{"CostFunction"})
	}

	net.cf = cf
	return net
}

// Cost returns the Network's CostFunction. It may be nil if package costfuncs isn't imported.
func (net *Network) Cost() CostFunction {
	return net.cf
}

// NumLayers returns the number of layers in the Network, including the output layer.
func (net *Network) NumLayers() int {
	return len(net.layers)
}

// Layer returns a copy of the layer at the given index. Layer will allow panicking with
// index-out-of-bounds.
func (net *Network) Layer(index int) []*Neuron {
	l := make([]*Neuron, len(net.layers[index]))
	copy(l, net.layers[index])
	return l
}

// OutputLayer returns a copy of the last layer of the Network.
func (net *Network) OutputLayer() []*Neuron {
	return net.Layer(len(net.layers) - 1)
}

// Inputs returns the Input Sources that layer 0 reads, in the order they were first connected.
func (net *Network) Inputs() []*Source {
	ins := make([]*Source, len(net.inputs))
	copy(ins, net.inputs)
	return ins
}

// NumSamples returns the number of samples available to the forward pass, or -1 if layer 0 reads
// no Sources at all.
func (net *Network) NumSamples() int {
	if len(net.inputs) == 0 {
		return -1
	}

	return net.inputs[0].Len()
}

// Outputs returns a copy of the activations of the output layer, as of the most recent forward
// pass.
func (net *Network) Outputs() []float64 {
	out := net.layers[len(net.layers)-1]
	as := make([]float64, len(out))
	for i, n := range out {
		as[i] = n.a
	}

	return as
}

// SourceDelta returns the delta that the most recent backward pass accumulated onto the given
// Source. Sources that layer 0 doesn't read have a delta of 0.
func (net *Network) SourceDelta(s *Source) float64 {
	return net.sourceDeltas[s]
}

// Weights returns a copy of every weight in the Network, indexed by [layer][neuron][connection].
func (net *Network) Weights() [][][]float64 {
	ws := make([][][]float64, len(net.layers))
	for l, layer := range net.layers {
		ws[l] = make([][]float64, len(layer))
		for i, n := range layer {
			ws[l][i] = make([]float64, len(n.connections))
			for c := range n.connections {
				ws[l][i][c] = n.connections[c].weight
			}
		}
	}

	return ws
}
