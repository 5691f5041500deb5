package neuralbackprop_test

import (
	"bytes"
	"strings"
	"testing"

	nb "github.com/tomgrek/neuralbackprop"
)

func TestNewNetworkTopology(t *testing.T) {
	if _, err := nb.NewNetwork(); err != nb.ErrNoLayers {
		t.Errorf("no layers: got %v, want ErrNoLayers", err)
	}

	cases := []struct {
		name  string
		build func(t *testing.T) [][]*nb.Neuron
	}{
		{"empty layer", func(t *testing.T) [][]*nb.Neuron {
			x := nb.NewInput([]float64{1}, "x")
			n := neuron(t, "sigmoid", "n")
			connect(t, n, []float64{1}, x)
			return [][]*nb.Neuron{{n}, {}}
		}},
		{"nil neuron", func(t *testing.T) [][]*nb.Neuron {
			return [][]*nb.Neuron{{nil}}
		}},
		{"neuron repeated", func(t *testing.T) [][]*nb.Neuron {
			x := nb.NewInput([]float64{1}, "x")
			n := neuron(t, "sigmoid", "n")
			connect(t, n, []float64{1}, x)
			return [][]*nb.Neuron{{n}, {n}}
		}},
		{"source read by later layer", func(t *testing.T) [][]*nb.Neuron {
			x := nb.NewInput([]float64{1}, "x")
			h := neuron(t, "sigmoid", "h")
			connect(t, h, []float64{1}, x)
			o := neuron(t, "sigmoid", "o")
			connect(t, o, []float64{1, 1}, h, x)
			return [][]*nb.Neuron{{h}, {o}}
		}},
		{"layer skipped", func(t *testing.T) [][]*nb.Neuron {
			x := nb.NewInput([]float64{1}, "x")
			a := neuron(t, "sigmoid", "a")
			connect(t, a, []float64{1}, x)
			b := neuron(t, "sigmoid", "b")
			connect(t, b, []float64{1}, a)
			c := neuron(t, "sigmoid", "c")
			connect(t, c, []float64{1}, a)
			return [][]*nb.Neuron{{a}, {b}, {c}}
		}},
		{"neuron in layer 0 reads neuron", func(t *testing.T) [][]*nb.Neuron {
			x := nb.NewInput([]float64{1}, "x")
			a := neuron(t, "sigmoid", "a")
			connect(t, a, []float64{1}, x)
			b := neuron(t, "sigmoid", "b")
			connect(t, b, []float64{1}, a)
			return [][]*nb.Neuron{{a, b}}
		}},
		{"neuron in layer 0 reads nothing", func(t *testing.T) [][]*nb.Neuron {
			x := nb.NewInput([]float64{1, 2}, "x")
			a := neuron(t, "sigmoid", "a")
			connect(t, a, []float64{1}, x)
			b := neuron(t, "sigmoid", "b")
			return [][]*nb.Neuron{{a, b}}
		}},
		{"network reads nothing", func(t *testing.T) [][]*nb.Neuron {
			return [][]*nb.Neuron{{neuron(t, "relu", "lone")}}
		}},
		{"reads neuron outside network", func(t *testing.T) [][]*nb.Neuron {
			x := nb.NewInput([]float64{1}, "x")
			stray := neuron(t, "sigmoid", "stray")
			a := neuron(t, "sigmoid", "a")
			connect(t, a, []float64{1}, x)
			b := neuron(t, "sigmoid", "b")
			connect(t, b, []float64{1}, stray)
			return [][]*nb.Neuron{{a}, {b}}
		}},
		{"sources of different lengths", func(t *testing.T) [][]*nb.Neuron {
			x1 := nb.NewInput([]float64{1, 2}, "x1")
			x2 := nb.NewInput([]float64{1, 2, 3}, "x2")
			a := neuron(t, "sigmoid", "a")
			connect(t, a, []float64{1, 1}, x1, x2)
			return [][]*nb.Neuron{{a}}
		}},
	}

	for _, c := range cases {
		_, err := nb.NewNetwork(c.build(t)...)
		if _, ok := err.(nb.TopologyError); !ok {
			t.Errorf("%s: got %v, want TopologyError", c.name, err)
		}
	}
}

func TestNeuronBelongsToOneNetwork(t *testing.T) {
	x := nb.NewInput([]float64{1}, "x")
	n := neuron(t, "sigmoid", "n")
	connect(t, n, []float64{1}, x)
	net := network(t, []*nb.Neuron{n})

	if _, err := nb.NewNetwork([]*nb.Neuron{n}); err == nil {
		t.Error("a neuron was placed in a second network")
	}
	if err := n.ConnectWeight(x, 1); err != nb.ErrNetFinalized {
		t.Errorf("connecting after construction: got %v, want ErrNetFinalized", err)
	}

	if n.Layer() != 0 || net.NumLayers() != 1 {
		t.Errorf("layer = %d, layers = %d; want 0 and 1", n.Layer(), net.NumLayers())
	}
}

func TestConnectRejects(t *testing.T) {
	n := neuron(t, "sigmoid", "n")
	y := nb.NewOutput([]float64{1}, "y")

	if _, ok := n.ConnectWeight(y, 1).(nb.TopologyError); !ok {
		t.Error("connecting from an output source was not a TopologyError")
	}
	if _, ok := n.ConnectWeight(n, 1).(nb.TopologyError); !ok {
		t.Error("connecting a neuron to itself was not a TopologyError")
	}

	var nilSource *nb.Source
	if _, ok := n.ConnectWeight(nilSource, 1).(nb.NilArgError); !ok {
		t.Error("connecting from a nil source was not a NilArgError")
	}
	if n.NumConnections() != 0 {
		t.Errorf("rejected connections were kept: %d", n.NumConnections())
	}
}

func TestConnectUsesDefaultInitializer(t *testing.T) {
	x := nb.NewInput([]float64{1}, "x")
	n := neuron(t, "sigmoid", "n")

	for i := 0; i < 50; i++ {
		if err := n.Connect(x); err != nil {
			t.Fatal(err)
		}
	}

	for i := 0; i < n.NumConnections(); i++ {
		if w := n.Weight(i); w < -1 || w >= 1 {
			t.Errorf("weight %d = %v, outside [-1, 1)", i, w)
		}
	}
}

func TestAccessors(t *testing.T) {
	x1 := nb.NewInput([]float64{1, 2}, "")
	x2 := nb.NewInput([]float64{3, 4}, "x2")
	a := neuron(t, "relu", "")
	connect(t, a, []float64{0.5, 0.25}, x1, x2)
	b := neuron(t, "unknown-activation", "b")
	connect(t, b, []float64{1}, a)
	net := network(t, []*nb.Neuron{a}, []*nb.Neuron{b})

	if x1.Name() != "an input" || a.Name() != "a neuron" {
		t.Errorf("default names: %q and %q", x1.Name(), a.Name())
	}
	if b.Activation().TypeString() != "sigmoid" {
		t.Errorf("unknown activation gave %q, want sigmoid", b.Activation().TypeString())
	}
	if a.Kind() != nb.NeuronNode || x1.Kind() != nb.SourceNode {
		t.Error("wrong node kinds")
	}

	ins := net.Inputs()
	if len(ins) != 2 || ins[0] != x1 || ins[1] != x2 {
		t.Errorf("Inputs() = %v", ins)
	}
	if net.NumSamples() != 2 {
		t.Errorf("NumSamples() = %d, want 2", net.NumSamples())
	}

	ws := net.Weights()
	if ws[0][0][1] != 0.25 || ws[1][0][0] != 1 {
		t.Errorf("Weights() = %v", ws)
	}
	ws[0][0][1] = 100
	if a.Weight(1) != 0.25 {
		t.Error("Weights() shares memory with the network")
	}

	cs := a.Connections()
	if cs[0].From() != nb.Node(x1) || cs[1].Weight() != 0.25 {
		t.Errorf("Connections() = %v", cs)
	}

	var buf bytes.Buffer
	if err := a.Describe(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "a neuron") {
		t.Errorf("Describe() = %q", buf.String())
	}

	buf.Reset()
	if err := a.ListConnections(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "x2") {
		t.Errorf("ListConnections() = %q", buf.String())
	}
}

func TestSetCost(t *testing.T) {
	x := nb.NewInput([]float64{1}, "x")
	y := nb.NewOutput([]float64{0}, "y")
	o := neuron(t, "relu", "o")
	connect(t, o, []float64{0.5}, x)
	net := network(t, []*nb.Neuron{o})

	if net.Cost().TypeString() != "signed-square" {
		t.Errorf("default cost function = %q", net.Cost().TypeString())
	}

	mse, err := nb.GetCostFunction("mse")
	if err != nil {
		t.Fatal(err)
	}
	net.SetCost(mse)

	if err := net.Evaluate(0); err != nil {
		t.Fatal(err)
	}
	errs, err := net.Errors([]*nb.Source{y}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if errs[0] != -0.5 {
		t.Errorf("mse error = %v, want -0.5", errs[0])
	}
}
