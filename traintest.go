package neuralbackprop

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/tomgrek/neuralbackprop/internal/metrics"
)

// Result is a wrapper for sending back the progress of training.
type Result struct {
	// The iteration the result was sent after
	Iteration int

	// The sample trained on in that iteration
	Sample int

	// The output errors of that iteration's sample, before the weights were adjusted
	Errors []float64

	// The learning rate used for that iteration
	LearningRate float64

	// Averages over every iteration since the previous Result
	MeanAbsError float64
	RMSError     float64
}

// TrainArgs is the set of arguments to *Network.Train.
type TrainArgs struct {
	// Data supplies the expected outputs. Its Inputs must be the Sources read by the Network.
	// Only the first Data.TrainRows() samples are trained on.
	Data *Dataset

	// RunCondition will be called before each successive iteration to determine if training
	// should continue. Training will stop if 'false' is returned. TrainUntil is the usual choice.
	RunCondition func(int) bool

	// LearningRate gives the learning rate for each iteration.
	LearningRate HyperParameter

	// Rand picks the sample for each iteration. If nil, a source seeded with the current time is
	// used.
	Rand *rand.Rand

	// SendStatus indicates whether or not to send a Result after the given iteration. SendStatus
	// can be left nil to represent an unconditional false.
	SendStatus func(int) bool

	// Update is how status updates are returned. If SendStatus is nil, Update can be left nil.
	Update func(Result)
}

// Train trains the Network incrementally: on each iteration, a single sample is chosen uniformly
// at random from the training rows of the Data, and *Network.Step is run on it with the learning
// rate for that iteration. Reserved rows are never trained on.
//
// Training stops at the first error, which is returned wrapped with the iteration it happened on.
// A diverging Network stops with type NonFiniteError as its cause.
func (net *Network) Train(args TrainArgs) error {
	// handle error cases and set defaults
	{
		if args.Data == nil {
			return NilArgError{"TrainArgs.Data"}
		} else if args.RunCondition == nil {
			return NilArgError{"TrainArgs.RunCondition"}
		} else if args.LearningRate == nil {
			return NilArgError{"TrainArgs.LearningRate"}
		}

		if err := net.fits(args.Data); err != nil {
			return err
		}

		if args.Rand == nil {
			args.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
		}

		if args.SendStatus == nil {
			args.SendStatus = func(int) bool { return false }
		}

		if args.Update == nil {
			args.Update = func(Result) {}
		}
	}

	expected := args.Data.Outputs()
	trainRows := args.Data.TrainRows()

	var window metrics.Window
	for iter := 0; args.RunCondition(iter); iter++ {
		sample := args.Rand.Intn(trainRows)
		rate := args.LearningRate.Value(iter)

		errs, err := net.Step(expected, sample, rate)
		if err != nil {
			return errors.Wrapf(err, "Training failed on iteration %d\n", iter)
		}

		window.Record(errs, rate)

		if args.SendStatus(iter) {
			snap := window.Snapshot()
			args.Update(Result{
				Iteration:    iter,
				Sample:       sample,
				Errors:       snap.LastErrors,
				LearningRate: rate,
				MeanAbsError: snap.MeanAbsError,
				RMSError:     snap.RMSError,
			})
		}
	}

	return nil
}

// fits checks that the Dataset can be used with the Network
func (net *Network) fits(data *Dataset) error {
	if n := net.NumSamples(); n != -1 && n != data.Rows() {
		return SizeMismatchError{n, data.Rows(), "dataset rows"}
	} else if out := len(net.layers[len(net.layers)-1]); out != data.NumOutputs() {
		return SizeMismatchError{out, data.NumOutputs(), "dataset outputs"}
	} else if data.TrainRows() == 0 {
		return errors.Errorf("Dataset has no rows to train on")
	}

	provided := make(map[*Source]bool, len(data.inputs))
	for _, in := range data.inputs {
		provided[in] = true
	}

	for _, in := range net.inputs {
		if !provided[in] {
			return TopologyError{Layer: 0, Reason: fmt.Sprintf("network reads %v, which is not an input of the dataset", in)}
		}
	}

	return nil
}

// Evaluation is the Network's output for a single row of a Dataset.
type Evaluation struct {
	Row     int
	Outputs []float64
	Targets []float64
	Cost    float64
}

// Test evaluates the Network on the rows [start, end) of the Data, without changing any weights.
// It returns each row's outputs and the average cost over the rows, as given by the Network's
// CostFunction. To test on the reserved rows only, use:
//
//	net.Test(data, data.TrainRows(), data.Rows())
func (net *Network) Test(data *Dataset, start, end int) ([]Evaluation, float64, error) {
	if data == nil {
		return nil, 0, NilArgError{"Dataset"}
	} else if err := net.fits(data); err != nil {
		return nil, 0, err
	} else if start < 0 || end > data.Rows() || start > end {
		return nil, 0, errors.Errorf("Can't test on rows [%d, %d) of a dataset with %d rows", start, end, data.Rows())
	} else if net.cf == nil {
		return nil, 0, ErrNoCostFunction
	}

	expected := data.Outputs()
	evals := make([]Evaluation, 0, end-start)
	var total float64
	for row := start; row < end; row++ {
		outs, err := net.Predict(row)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "Failed to get Network outputs for row %d\n", row)
		}

		targets := make([]float64, len(expected))
		for i, e := range expected {
			if targets[i], err = e.Sample(row); err != nil {
				return nil, 0, errors.Wrapf(err, "Reading expected output %d failed\n", i)
			}
		}

		cost := net.cf.Cost(outs, targets)
		total += cost
		evals = append(evals, Evaluation{row, outs, targets, cost})
	}

	if len(evals) == 0 {
		return evals, 0, nil
	}

	return evals, total / float64(len(evals)), nil
}
