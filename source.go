package neuralbackprop

import (
	"fmt"
)

// NewInput returns a Source that is read by the forward pass. The samples are copied. If name is
// empty, the Source is named "an input".
func NewInput(samples []float64, name string) *Source {
	if name == "" {
		name = "an input"
	}

	return newSource(samples, name, InputRole)
}

// NewOutput returns a Source of expected values, which is only read when computing errors. The
// samples are copied. If name is empty, the Source is named "an output expected value".
func NewOutput(samples []float64, name string) *Source {
	if name == "" {
		name = "an output expected value"
	}

	return newSource(samples, name, OutputRole)
}

func newSource(samples []float64, name string, role Role) *Source {
	s := &Source{name: name, role: role}
	s.samples = make([]float64, len(samples))
	copy(s.samples, samples)
	return s
}

func (s *Source) isNode() {}

// Kind returns SourceNode
func (s *Source) Kind() NodeKind {
	return SourceNode
}

// Name returns the name of the Source
func (s *Source) Name() string {
	return s.name
}

// Role returns whether the Source is an input or an expected output
func (s *Source) Role() Role {
	return s.role
}

// Len returns the number of samples in the Source
func (s *Source) Len() int {
	return len(s.samples)
}

// Sample returns the value at the given sample index. If the index is out of range, Sample returns
// type SampleRangeError.
func (s *Source) Sample(index int) (float64, error) {
	if index < 0 || index >= len(s.samples) {
		return 0, SampleRangeError{s.name, index, len(s.samples)}
	}

	return s.samples[index], nil
}

// Samples returns a copy of all of the values of the Source.
func (s *Source) Samples() []float64 {
	c := make([]float64, len(s.samples))
	copy(c, s.samples)
	return c
}

// String returns the quoted name of the Source, or "<nil>" if the Source is nil.
func (s *Source) String() string {
	if s == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%q", s.name)
}
