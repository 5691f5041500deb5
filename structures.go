package neuralbackprop

// NodeKind distinguishes the two things a Connection can read from.
type NodeKind int8

const (
	// NeuronNode is a computed *Neuron in the preceding layer
	NeuronNode NodeKind = iota
	// SourceNode is a fixed *Source: one column of the dataset
	SourceNode
)

func (k NodeKind) String() string {
	switch k {
	case NeuronNode:
		return "neuron"
	case SourceNode:
		return "source"
	}

	return "unknown"
}

// Node is either a *Neuron or a *Source. The set is closed; no other types can satisfy Node.
type Node interface {
	Kind() NodeKind
	Name() string
	String() string

	isNode()
}

// Role documents what a Source is used for.
type Role int8

const (
	// InputRole Sources are read by the forward pass
	InputRole Role = iota
	// OutputRole Sources hold the expected values, and are only read by error computation
	OutputRole
)

// Source is a fixed, named sequence of sample values; one column of a dataset. Sources are never
// modified after they have been constructed.
type Source struct {
	name    string
	role    Role
	samples []float64
}

// Connection is a single weighted input to a Neuron. Connections are owned by the Neuron that
// receives them.
type Connection struct {
	from   Node
	weight float64
}

// Neuron is the unit of computation in a Network. It sums its weighted inputs, z, and applies its
// Activation to produce its output, a.
type Neuron struct {
	// the name used for printing the Neuron. Defaults to "a neuron"
	name string

	act Activation

	// ordered by insertion. Insertion order is also the order in which they are summed.
	connections []Connection

	// z is the weighted sum of inputs, a is the activation of z.
	z, a float64

	// the degree of error attributed to this Neuron during backpropagation
	delta float64

	// the Network the Neuron belongs to, and its layer within it. host is nil and layer is -1
	// until the Network is constructed.
	host  *Network
	layer int
}

// Network is an ordered sequence of layers of Neurons, where every layer only takes input from
// the one before it, and the first only from Input Sources.
type Network struct {
	layers [][]*Neuron

	// the distinct Sources read by layer 0, in the order they were first seen
	inputs []*Source

	cf CostFunction

	// deltas accumulated onto Sources during backpropagation. Sources themselves are immutable.
	sourceDeltas map[*Source]float64

	// the sample that the current values correspond to
	sample int

	stat status
}

// status tracks which part of a training step the Network has completed, so that the passes
// can't be run out of order.
type status int8

const (
	finalized    status = iota // 0
	evaluated    status = iota // 1
	outputDeltas status = iota // 2
	deltas       status = iota // 3
	adjusted     status = iota // 4
)
