// Package neuralbackprop trains small feed-forward networks one sample at a time, with every
// Neuron and every Connection kept as its own value so that the state of training can be
// inspected at any point.
//
// Creating Networks
//
// Networks are made of layers of Neurons. Neurons in the first layer take their input from
// Sources, which hold one column of a dataset; Neurons in every later layer take input from the
// layer before. For brevity, neuralbackprop is abbreviated 'nb'.
//
//		x1 := nb.NewInput([]float64{0, 0.1, 0.2}, "x1")
//		h, _ := nb.NewNeuron("tanh", "hidden")
//		h.Connect(x1)
//		o, _ := nb.NewNeuron("sigmoid", "output")
//		o.Connect(h)
//
//		net, err := nb.NewNetwork([]*nb.Neuron{h}, []*nb.Neuron{o})
//		if err != nil {
//			return err
//		}
//
// Activation functions are chosen by name, and registered by the subpackage "activations". Cost
// functions, starting weights, and learning rate schedules are similarly provided by the
// subpackages "costfuncs", "initializers", and "hyperparams". Each must be imported for its
// defaults to be set, even if only for side effects.
//
// Larger networks can be built from a Dataset with Generate and FullyConnect:
//
//		data, _ := nb.NewDataset(rows, 1, 1)
//		bp, _ := nb.Generate(data, 3, 4)
//		nb.FullyConnect(bp)
//		net, err := bp.Network()
//
// Training and Testing
//
// A single training step is made of five passes, which must be run in order: Evaluate, Errors,
// OutputDeltas, HiddenDeltas, and Adjust. Step runs all of them for one sample. The learning rate
// is given to OutputDeltas, and carried through every delta from there.
//
// Train repeats Step on samples chosen at random from the training rows of a Dataset:
//
//		err := net.Train(nb.TrainArgs{
//			Data:         data,
//			RunCondition: nb.TrainUntil(1000000),
//			LearningRate: hyperparams.Decay(0.1, 0.91, 100000),
//			SendStatus:   nb.Every(10000),
//			Update:       func(r nb.Result) { log.Print(r.MeanAbsError) },
//		})
//
// Rows held back from training can then be checked with Test.
//
// A Network is not safe for concurrent use. Independent Networks can be trained at the same time,
// provided that each has its own *rand.Rand.
package neuralbackprop
