package neuralbackprop_test

import (
	"math/rand"
	"testing"

	nb "github.com/tomgrek/neuralbackprop"
	_ "github.com/tomgrek/neuralbackprop/activations"
	_ "github.com/tomgrek/neuralbackprop/costfuncs"
	"github.com/tomgrek/neuralbackprop/hyperparams"
	_ "github.com/tomgrek/neuralbackprop/initializers"
)

func constantRate(v float64) nb.HyperParameter {
	return hyperparams.Constant(v)
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func neuron(t *testing.T, activation, name string) *nb.Neuron {
	t.Helper()

	n, err := nb.NewNeuron(activation, name)
	if err != nil {
		t.Fatalf("NewNeuron(%q, %q): %v", activation, name, err)
	}
	return n
}

// connect connects n to each of the Nodes, with the matching weight
func connect(t *testing.T, n *nb.Neuron, ws []float64, froms ...nb.Node) {
	t.Helper()

	for i, from := range froms {
		if err := n.ConnectWeight(from, ws[i]); err != nil {
			t.Fatalf("ConnectWeight(%v, %v): %v", from, ws[i], err)
		}
	}
}

func network(t *testing.T, layers ...[]*nb.Neuron) *nb.Network {
	t.Helper()

	net, err := nb.NewNetwork(layers...)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	return net
}
