package neuralbackprop

import (
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
)

// NewNeuron creates a Neuron with the Activation registered under the given name, e.g. "sigmoid",
// "relu", or "tanh". Names that are not registered get the default Activation (the logistic
// function, once package activations is imported). The Activation cannot be changed afterwards.
//
// If name is empty, the Neuron is named "a neuron".
func NewNeuron(activation, name string) (*Neuron, error) {
	act, err := GetActivation(activation)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't create neuron %q", name)
	}

	return NewNeuronWith(act, name)
}

// NewNeuronWith creates a Neuron with an Activation that need not be registered.
func NewNeuronWith(act Activation, name string) (*Neuron, error) {
	if act == nil {
		return nil, NilArgError{"Activation"}
	}

	if name == "" {
		name = "a neuron"
	}

	return &Neuron{name: name, act: act, layer: -1}, nil
}

// Connect adds an input to the Neuron from a Neuron in the previous layer or an Input Source, with
// a starting weight chosen by the default Initializer.
//
// Connect returns ErrNetFinalized if the Neuron already belongs to a Network.
func (n *Neuron) Connect(from Node) error {
	init, err := defaultInitializer()
	if err != nil {
		return errors.Wrapf(err, "Can't connect %v to %v", from, n)
	}

	return n.ConnectInit(from, init)
}

// ConnectInit acts like Connect, but chooses the starting weight with the given Initializer.
func (n *Neuron) ConnectInit(from Node, init Initializer) error {
	if init == nil {
		return NilArgError{"Initializer"}
	}

	w := make([]float64, 1)
	init.Set(len(n.connections)+1, 1, w)
	return n.ConnectWeight(from, w[0])
}

// ConnectWeight adds an input to the Neuron with the given starting weight, which must be finite.
//
// Connections from Output Sources are rejected with type TopologyError; the layering of Neurons
// is only checked once the Network is constructed.
func (n *Neuron) ConnectWeight(from Node, weight float64) error {
	if n.host != nil {
		return ErrNetFinalized
	} else if isNil(from) {
		return NilArgError{"Node to connect from"}
	} else if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return NonFiniteError{n.name, "weight", weight}
	}

	if s, ok := from.(*Source); ok && s.role == OutputRole {
		return TopologyError{-1, n.name, fmt.Sprintf("can't take input from output source %v", s)}
	} else if from == Node(n) {
		return TopologyError{-1, n.name, "can't take input from itself"}
	}

	n.connections = append(n.connections, Connection{from, weight})
	return nil
}

// isNil reports whether the Node is nil, including typed nil pointers.
func isNil(from Node) bool {
	switch f := from.(type) {
	case nil:
		return true
	case *Neuron:
		return f == nil
	case *Source:
		return f == nil
	}

	return false
}

func (n *Neuron) isNode() {}

// Kind returns NeuronNode
func (n *Neuron) Kind() NodeKind {
	return NeuronNode
}

// Name returns the name of the Neuron.
func (n *Neuron) Name() string {
	return n.name
}

// String returns the quoted name of the Neuron, or "<nil>" if the Neuron is nil.
func (n *Neuron) String() string {
	if n == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%q", n.name)
}

// Activation returns the Activation of the Neuron.
func (n *Neuron) Activation() Activation {
	return n.act
}

// Z returns the weighted sum of the Neuron's inputs from the most recent forward pass.
func (n *Neuron) Z() float64 {
	return n.z
}

// A returns the Neuron's activation from the most recent forward pass.
func (n *Neuron) A() float64 {
	return n.a
}

// Delta returns the error attributed to the Neuron by the most recent backward pass.
func (n *Neuron) Delta() float64 {
	return n.delta
}

// Layer returns the index of the layer the Neuron is in, or -1 if it isn't in a Network.
func (n *Neuron) Layer() int {
	return n.layer
}

// NumConnections returns the number of inputs to the Neuron.
func (n *Neuron) NumConnections() int {
	return len(n.connections)
}

// Connections returns a copy of the Neuron's inputs, in order.
func (n *Neuron) Connections() []Connection {
	cs := make([]Connection, len(n.connections))
	copy(cs, n.connections)
	return cs
}

// Weight returns the weight of the connection at the given index. Weight will allow panicking
// with index-out-of-bounds.
func (n *Neuron) Weight(index int) float64 {
	return n.connections[index].weight
}

// From returns the Node that the connection reads from.
func (c Connection) From() Node {
	return c.from
}

// Weight returns the current weight of the connection.
func (c Connection) Weight() float64 {
	return c.weight
}

// ListConnections writes a description of each of the Neuron's inputs and their weights.
func (n *Neuron) ListConnections(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "this node %s receives connections from .......\n", n.name); err != nil {
		return err
	}

	for _, c := range n.connections {
		if _, err := fmt.Fprintf(w, "%s with weight %v\n", c.from.Name(), c.weight); err != nil {
			return err
		}
	}

	return nil
}

// Describe writes the current state of the Neuron.
func (n *Neuron) Describe(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s (%s): z=%v a=%v delta=%v\n", n.name, n.act.TypeString(), n.z, n.a, n.delta)
	return err
}
