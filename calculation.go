package neuralbackprop

import (
	"math"

	"github.com/pkg/errors"
)

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// checkSample makes sure that every Input Source has a value at the given index, before any state
// is changed.
func (net *Network) checkSample(sample int) error {
	for _, in := range net.inputs {
		if _, err := in.Sample(sample); err != nil {
			return err
		}
	}

	return nil
}

// sameSample makes sure that the backward passes are given the sample that was evaluated
func (net *Network) sameSample(sample int) error {
	if sample != net.sample {
		return errors.Errorf("Sample %d is not the evaluated sample (%d)", sample, net.sample)
	}

	return nil
}

// forward returns what the connection contributes to the forward pass: a Neuron's activation or
// a Source's sample value.
func (c Connection) forward(sample int) (float64, error) {
	switch from := c.from.(type) {
	case *Neuron:
		return from.a, nil
	case *Source:
		return from.Sample(sample)
	}

	return 0, errors.Errorf("Connection has unknown source %v", c.from)
}

// calc recalculates z and a, given that every Neuron it reads from has been calculated.
func (n *Neuron) calc(sample int) error {
	var z float64
	for i, c := range n.connections {
		v, err := c.forward(sample)
		if err != nil {
			return errors.Wrapf(err, "Reading connection %d of %v failed\n", i, n)
		}

		z += v * c.weight
	}

	n.z = z
	if !finite(z) {
		return NonFiniteError{n.name, "z", z}
	}

	n.a = n.act.Value(z)
	if !finite(n.a) {
		return NonFiniteError{n.name, "activation", n.a}
	}

	return nil
}

// Evaluate runs the forward pass for the given sample: every layer, in order, recalculates the
// weighted sums and activations of its Neurons. The sample selects which value is read from each
// Input Source; Neurons in later layers read the activations just calculated before them.
//
// If the sample is out of range, type SampleRangeError is returned and nothing is changed.
// Evaluating the same sample twice, with no adjustment in between, gives identical results.
func (net *Network) Evaluate(sample int) error {
	if err := net.checkSample(sample); err != nil {
		return err
	}

	net.stat = finalized
	for l, layer := range net.layers {
		for _, n := range layer {
			if err := n.calc(sample); err != nil {
				return errors.Wrapf(err, "Evaluating layer %d failed\n", l)
			}
		}
	}

	net.sample = sample
	net.stat = evaluated
	return nil
}

// Predict evaluates the given sample and returns the activations of the output layer.
func (net *Network) Predict(sample int) ([]float64, error) {
	if err := net.Evaluate(sample); err != nil {
		return nil, err
	}

	return net.Outputs(), nil
}

// Errors returns the error of each output Neuron for the evaluated sample, in the order of the
// output layer, as given by the Network's CostFunction. expected must have one Source per output
// Neuron.
//
// With the default cost function (costfuncs.SignedSquare), each error is (e - a)² when the
// expected value e is at least the output a, and -(e - a)² when it is below.
func (net *Network) Errors(expected []*Source, sample int) ([]float64, error) {
	if net.stat < evaluated || net.stat >= adjusted {
		return nil, ErrNotEvaluated
	} else if err := net.sameSample(sample); err != nil {
		return nil, err
	} else if net.cf == nil {
		return nil, ErrNoCostFunction
	}

	out := net.layers[len(net.layers)-1]
	if len(expected) != len(out) {
		return nil, SizeMismatchError{len(out), len(expected), "expected outputs"}
	}

	targets := make([]float64, len(expected))
	for i, e := range expected {
		if e == nil {
			return nil, NilArgError{"Expected output source"}
		}

		v, err := e.Sample(sample)
		if err != nil {
			return nil, errors.Wrapf(err, "Reading expected output %d failed\n", i)
		}
		targets[i] = v
	}

	return net.cf.Errors(net.Outputs(), targets), nil
}

// OutputDeltas sets the delta of each output Neuron to:
//
//	learningRate * errs[i] * f'(z)
//
// The learning rate is folded into the delta here, so it carries through to every delta
// propagated from it. The learning rate must be finite and greater than zero.
func (net *Network) OutputDeltas(errs []float64, learningRate float64) error {
	if net.stat < evaluated || net.stat >= adjusted {
		return ErrNotEvaluated
	} else if !finite(learningRate) || learningRate <= 0 {
		return errors.Errorf("Learning rate must be finite and > 0 (%v)", learningRate)
	}

	out := net.layers[len(net.layers)-1]
	if len(errs) != len(out) {
		return SizeMismatchError{len(out), len(errs), "output errors"}
	}

	for i, n := range out {
		n.delta = learningRate * errs[i] * n.act.Deriv(n.z)
		if !finite(n.delta) {
			net.stat = finalized
			return NonFiniteError{n.name, "delta", n.delta}
		}
	}

	net.stat = outputDeltas
	return nil
}

// back returns the factor that a connection's source multiplies into the delta it receives: the
// derivative of a Neuron's activation at its z, or a Source's value for the sample.
func (c Connection) back(sample int) (float64, error) {
	switch from := c.from.(type) {
	case *Neuron:
		return from.act.Deriv(from.z), nil
	case *Source:
		return from.Sample(sample)
	}

	return 0, errors.Errorf("Connection has unknown source %v", c.from)
}

// HiddenDeltas propagates the output deltas back through the Network. Every delta outside the
// output layer is reset to zero first; then, from the last layer backwards, each Neuron adds
//
//	delta * weight * f'(z)
//
// to every Neuron it reads from, using that Neuron's z and derivative. A Neuron read by several
// others receives the sum of their contributions.
//
// Sources have no derivative, so the value of the given sample is used in its place; the
// resulting deltas are kept by the Network and can be read with SourceDelta. The sample must be
// the one that was evaluated.
func (net *Network) HiddenDeltas(sample int) error {
	if net.stat < outputDeltas || net.stat >= adjusted {
		return ErrNoOutputDelta
	} else if err := net.sameSample(sample); err != nil {
		return err
	}

	for l := len(net.layers) - 2; l >= 0; l-- {
		for _, n := range net.layers[l] {
			n.delta = 0
		}
	}

	for s := range net.sourceDeltas {
		delete(net.sourceDeltas, s)
	}

	for l := len(net.layers) - 1; l >= 0; l-- {
		for _, n := range net.layers[l] {
			for i, c := range n.connections {
				f, err := c.back(sample)
				if err != nil {
					return errors.Wrapf(err, "Getting input deltas of connection %d of %v failed\n", i, n)
				}

				switch from := c.from.(type) {
				case *Neuron:
					from.delta += n.delta * c.weight * f
				case *Source:
					net.sourceDeltas[from] += n.delta * c.weight * f
				}
			}
		}

		if l == 0 {
			break
		}

		for _, n := range net.layers[l-1] {
			if !finite(n.delta) {
				net.stat = finalized
				return NonFiniteError{n.name, "delta", n.delta}
			}
		}
	}

	net.stat = deltas
	return nil
}

// adjust adds delta * signal to the weight of every connection, where signal is given by the
// connection's source.
func (n *Neuron) adjust(sample int, neuronSignal func(*Neuron) float64) error {
	for i := range n.connections {
		c := &n.connections[i]

		var signal float64
		switch from := c.from.(type) {
		case *Neuron:
			signal = neuronSignal(from)
		case *Source:
			v, err := from.Sample(sample)
			if err != nil {
				return errors.Wrapf(err, "Adjusting connection %d of %v failed\n", i, n)
			}
			signal = v
		}

		c.weight += n.delta * signal
		if !finite(c.weight) {
			return NonFiniteError{n.name, "weight", c.weight}
		}
	}

	return nil
}

func activationOf(n *Neuron) float64 { return n.a }
func sumOf(n *Neuron) float64        { return n.z }

// Adjust updates every weight in the Network from the deltas of the most recent backward pass,
// which must have completed. In the output layer, each weight is changed by
//
//	delta * a
//
// where a is the activation of the Neuron it reads from. In every other layer, from the last
// backwards, the weighted sum z of that Neuron is used instead of a. Connections from Sources use
// the value of the given sample, which must be the one that was evaluated.
//
// If any weight becomes NaN or infinite, Adjust stops and returns type NonFiniteError.
func (net *Network) Adjust(sample int) error {
	if net.stat != deltas {
		return ErrNoDeltas
	} else if err := net.sameSample(sample); err != nil {
		return err
	}

	// any early return leaves the weights partially adjusted
	net.stat = finalized

	last := len(net.layers) - 1
	for _, n := range net.layers[last] {
		if err := n.adjust(sample, activationOf); err != nil {
			return errors.Wrapf(err, "Adjusting output layer failed\n")
		}
	}

	for l := last - 1; l >= 0; l-- {
		for _, n := range net.layers[l] {
			if err := n.adjust(sample, sumOf); err != nil {
				return errors.Wrapf(err, "Adjusting layer %d failed\n", l)
			}
		}
	}

	net.stat = adjusted
	return nil
}

// Step runs a full training step on a single sample: the forward pass, the output errors, the
// output deltas, the backward pass, and the weight adjustment, strictly in that order. It returns
// the output errors from before the adjustment.
func (net *Network) Step(expected []*Source, sample int, learningRate float64) ([]float64, error) {
	if err := net.Evaluate(sample); err != nil {
		return nil, errors.Wrapf(err, "Evaluating sample %d failed\n", sample)
	}

	errs, err := net.Errors(expected, sample)
	if err != nil {
		return nil, errors.Wrapf(err, "Getting errors of sample %d failed\n", sample)
	}

	if err = net.OutputDeltas(errs, learningRate); err != nil {
		return errs, errors.Wrapf(err, "Getting output deltas failed\n")
	}

	if err = net.HiddenDeltas(sample); err != nil {
		return errs, errors.Wrapf(err, "Getting deltas failed\n")
	}

	if err = net.Adjust(sample); err != nil {
		return errs, errors.Wrapf(err, "Adjusting weights failed\n")
	}

	return errs, nil
}
