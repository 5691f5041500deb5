package neuralbackprop

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables, and can be compared directly.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrRegisterNilReturn   = Error{"Function return is nil"}
	ErrRegisterDuplicate   = Error{"Name is already registered"}
	ErrRegisterEmptyName   = Error{"Name to register is empty"}
	ErrNoDefaultActivation = Error{"No default activation function; is package activations imported?"}
	ErrNoCostFunction      = Error{"Network has no cost function; is package costfuncs imported?"}
	ErrNoInitializer       = Error{"No default initializer; is package initializers imported?"}

	ErrNoLayers      = Error{"Network must have at least one layer"}
	ErrNetFinalized  = Error{"Neuron already belongs to a Network; its connections can't change"}
	ErrNotEvaluated  = Error{"Network must be evaluated before this step"}
	ErrNoOutputDelta = Error{"Network must have output deltas calculated before propagating them"}
	ErrNoDeltas      = Error{"Network must have deltas calculated before adjusting weights"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// TopologyError is returned when the layers given to a Network do not follow the layered
// structure: layer 0 may only take input from Input Sources, and every other layer may only take
// input from the layer directly before it.
type TopologyError struct {
	// Layer is the index of the offending layer, or -1 if the Neuron has not been placed yet.
	Layer int
	// Neuron is the name of the offending Neuron, if there is one
	Neuron string
	Reason string
}

func (err TopologyError) Error() string {
	if err.Neuron == "" {
		return fmt.Sprintf("Malformed topology at layer %d: %s", err.Layer, err.Reason)
	}

	return fmt.Sprintf("Malformed topology at layer %d, neuron %q: %s", err.Layer, err.Neuron, err.Reason)
}

// SampleRangeError is returned when a sample index is outside of the samples held by a Source.
// Indexes are never wrapped or clamped.
type SampleRangeError struct {
	Source string
	Index  int
	Len    int
}

func (err SampleRangeError) Error() string {
	return fmt.Sprintf("Sample index %d out of range for %q (has %d samples)", err.Index, err.Source, err.Len)
}

// NonFiniteError is returned when training produces a NaN or infinite value. Once it has been
// returned, the weights of the Network should be considered diverged.
type NonFiniteError struct {
	Neuron string
	// What is the quantity that became non-finite: "z", "activation", "delta", or "weight"
	What  string
	Value float64
}

func (err NonFiniteError) Error() string {
	return fmt.Sprintf("Non-finite %s (%v) in neuron %q; training has diverged", err.What, err.Value, err.Neuron)
}

// SizeMismatchError is returned when the number of given values doesn't match the number that
// was expected.
type SizeMismatchError struct {
	Expected, Got int
	Of            string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Size mismatch of %s: expected %d, got %d", err.Of, err.Expected, err.Got)
}
