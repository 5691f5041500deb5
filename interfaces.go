package neuralbackprop

// Activation is the non-linearity applied by a Neuron to its weighted input sum. Implementations
// live in the subpackage "activations", which registers them by name.
type Activation interface {
	// TypeString returns the name the Activation is registered under. For example: the logistic
	// function returns "sigmoid".
	TypeString() string

	// Value returns the activation of the given weighted input sum, z.
	Value(float64) float64
	// Value(z float64) float64

	// Deriv returns the local gradient of the function. It is always given the weighted input
	// sum, z, not the activation.
	Deriv(float64) float64
	// Deriv(z float64) float64
}

// CostFunction turns the outputs of the Network and their expected values into the error signal
// that starts backpropagation. Implementations live in the subpackage "costfuncs".
type CostFunction interface {
	TypeString() string

	// Errors returns one error per output, in the same order. Errors must be positive where the
	// target is above the output and negative where it is below, because the output deltas are
	// added directly onto the weights.
	//
	// outputs and targets will always have the same length.
	Errors([]float64, []float64) []float64
	// Errors(outputs, targets []float64) []float64

	// Cost returns a single, non-negative summary of how far the outputs are from the targets.
	// It is only used for reporting.
	Cost([]float64, []float64) float64
	// Cost(outputs, targets []float64) float64
}

// HyperParameter supplies a value that may change over the course of training, such as the
// learning rate. Implementations live in the subpackage "hyperparams".
type HyperParameter interface {
	TypeString() string

	// Value returns the value at the given iteration. Iterations start at 0.
	Value(int) float64
}

// Initializer dictates how the starting weights of connections are chosen, given the number of
// connections into the Neuron (fan-in) and the number of Neurons that read from it (fan-out).
// Implementations live in the subpackage "initializers".
type Initializer interface {
	// Set fills ws with starting weights. ws will have length fanIn unless only a single
	// connection is being made.
	Set(fanIn, fanOut int, ws []float64)
}
