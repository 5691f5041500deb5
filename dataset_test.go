package neuralbackprop_test

import (
	"math/rand"
	"strings"
	"testing"

	nb "github.com/tomgrek/neuralbackprop"
	"github.com/tomgrek/neuralbackprop/initializers"
)

var multiplication = [][]float64{
	{0, 0, 0},
	{0, 0.1, 0},
	{0.1, 0.1, 0.1},
	{0.2, 0.2, 0.4},
	{0.2, 0.3, 0.6},
	{0.3, 0.2, 0.6},
	{0.2, 0.4, 0.8},
	{0.3, 0.3, 0.9},
}

func TestNewDataset(t *testing.T) {
	data, err := nb.NewDataset(multiplication, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	if data.Rows() != 8 || data.Width() != 3 || data.NumInputs() != 2 || data.NumOutputs() != 1 {
		t.Fatalf("shape: rows=%d width=%d inputs=%d outputs=%d", data.Rows(), data.Width(), data.NumInputs(), data.NumOutputs())
	}
	if data.TrainRows() != 7 || data.Reserved() != 1 {
		t.Errorf("TrainRows() = %d, Reserved() = %d", data.TrainRows(), data.Reserved())
	}

	ins, outs := data.Inputs(), data.Outputs()
	if ins[1].Name() != "fixed input 1" || outs[0].Name() != "output neuron 0" {
		t.Errorf("names: %q, %q", ins[1].Name(), outs[0].Name())
	}
	if outs[0].Role() != nb.OutputRole || ins[0].Role() != nb.InputRole {
		t.Error("wrong source roles")
	}
	if v, _ := outs[0].Sample(7); v != 0.9 {
		t.Errorf("last expected output = %v, want 0.9", v)
	}
	if data.Inputs()[0] != ins[0] {
		t.Error("Inputs() gave different sources on a second call")
	}

	row := data.Row(3)
	if row[0] != 0.2 || row[2] != 0.4 {
		t.Errorf("Row(3) = %v", row)
	}
}

func TestNewDatasetRejects(t *testing.T) {
	cases := []struct {
		name          string
		rows          [][]float64
		outs, reserve int
	}{
		{"no rows", nil, 1, 0},
		{"ragged", [][]float64{{1, 2}, {1}}, 1, 0},
		{"no outputs", [][]float64{{1, 2}}, 0, 0},
		{"no inputs", [][]float64{{1, 2}}, 2, 0},
		{"everything reserved", [][]float64{{1, 2}}, 1, 1},
	}

	for _, c := range cases {
		if _, err := nb.NewDataset(c.rows, c.outs, c.reserve); err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
	}
}

func TestLoadCSV(t *testing.T) {
	csv := "# x, y, x*y\n0.1, 0.2, 0.02\n0.3,0.3,0.09\n\n0.5,0.4,0.2\n"
	data, err := nb.LoadCSV(strings.NewReader(csv), 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	if data.Rows() != 3 || data.TrainRows() != 2 {
		t.Errorf("rows = %d, train rows = %d", data.Rows(), data.TrainRows())
	}

	if _, err := nb.LoadCSV(strings.NewReader("1,2\n1,x\n"), 1, 0); err == nil {
		t.Error("a non-numeric value was accepted")
	}
}

func TestGenerateAndFullyConnect(t *testing.T) {
	data, err := nb.NewDataset(multiplication, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := nb.Generate(data, 2, 3); err == nil {
		t.Error("Generate accepted 2 layers")
	}

	bp, err := nb.Generate(data, 4, 3)
	if err != nil {
		t.Fatal(err)
	}

	if len(bp.Layers) != 3 || len(bp.Layers[0]) != 3 || len(bp.Layers[1]) != 3 || len(bp.Layers[2]) != 1 {
		t.Fatalf("unexpected shape of generated layers")
	}
	if bp.Layers[1][2].Name() != "layer 1 neuron 2" || bp.Layers[2][0].Name() != "output layer neuron 0" {
		t.Errorf("names: %q, %q", bp.Layers[1][2].Name(), bp.Layers[2][0].Name())
	}
	for _, layer := range bp.Layers {
		for _, n := range layer {
			if n.Activation().TypeString() != "sigmoid" || n.NumConnections() != 0 {
				t.Fatalf("%v: activation %q, %d connections", n, n.Activation().TypeString(), n.NumConnections())
			}
		}
	}

	if err := nb.FullyConnect(bp); err != nil {
		t.Fatal(err)
	}

	wantConns := []int{2, 3, 3}
	for l, layer := range bp.Layers {
		for _, n := range layer {
			if n.NumConnections() != wantConns[l] {
				t.Errorf("%v has %d connections, want %d", n, n.NumConnections(), wantConns[l])
			}
		}
	}

	net, err := bp.Network()
	if err != nil {
		t.Fatal(err)
	}
	if net.NumLayers() != 3 || len(net.Inputs()) != 2 {
		t.Errorf("network has %d layers and %d inputs", net.NumLayers(), len(net.Inputs()))
	}
}

func TestExample(t *testing.T) {
	data, err := nb.NewDataset(multiplication, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	init := initializers.Random(initializers.Uniform().Rand(rand.New(rand.NewSource(5))))
	bp, err := nb.Example(data, init)
	if err != nil {
		t.Fatal(err)
	}

	want := [][]string{
		{"tanh", "sigmoid", "relu", "tanh"},
		{"tanh", "sigmoid"},
		{"relu"},
	}
	for l := range want {
		if len(bp.Layers[l]) != len(want[l]) {
			t.Fatalf("layer %d has %d neurons, want %d", l, len(bp.Layers[l]), len(want[l]))
		}
		for i, n := range bp.Layers[l] {
			if n.Activation().TypeString() != want[l][i] {
				t.Errorf("layer %d neuron %d is %q, want %q", l, i, n.Activation().TypeString(), want[l][i])
			}
		}
	}

	if bp.Layers[0][0].Name() != "input layer neuron 1" || bp.Layers[1][1].NumConnections() != 4 {
		t.Errorf("unexpected example network wiring")
	}

	net, err := bp.Network()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := net.Predict(7); err != nil {
		t.Errorf("Predict on the held back row: %v", err)
	}
}
