package neuralbackprop

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Dataset is a table of samples, where each row is one sample and the last columns are the
// expected outputs. A number of trailing rows can be reserved, so that they are held out of
// training and only used to evaluate the Network afterwards.
type Dataset struct {
	m *mat.Dense

	numOutputs int
	reserved   int

	// built once, so that the same Sources are handed to every Network built from the Dataset
	inputs, outputs []*Source
}

// NewDataset builds a Dataset from rows of equal length. The last numOutputs columns of every row
// are treated as expected outputs, the rest as inputs. The last 'reserved' rows are held out of
// training. Values should be normalized to [-1, 1] for the provided activation functions.
func NewDataset(rows [][]float64, numOutputs, reserved int) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, errors.Errorf("Dataset has no rows")
	}

	width := len(rows[0])
	if numOutputs < 1 || numOutputs >= width {
		return nil, errors.Errorf("Number of outputs must be >= 1 and less than the row length %d (%d)", width, numOutputs)
	} else if reserved < 0 || reserved >= len(rows) {
		return nil, errors.Errorf("Number of reserved rows must be >= 0 and less than the number of rows %d (%d)", len(rows), reserved)
	}

	data := make([]float64, 0, len(rows)*width)
	for i, r := range rows {
		if len(r) != width {
			return nil, SizeMismatchError{width, len(r), fmt.Sprintf("row %d", i)}
		}

		for j, v := range r {
			if !finite(v) {
				return nil, errors.Errorf("Value at row %d, column %d is not finite (%v)", i, j, v)
			}
		}

		data = append(data, r...)
	}

	d := &Dataset{
		m:          mat.NewDense(len(rows), width, data),
		numOutputs: numOutputs,
		reserved:   reserved,
	}

	numInputs := width - numOutputs
	for j := 0; j < numInputs; j++ {
		d.inputs = append(d.inputs, NewInput(mat.Col(nil, j, d.m), "fixed input "+strconv.Itoa(j)))
	}
	for j := numInputs; j < width; j++ {
		d.outputs = append(d.outputs, NewOutput(mat.Col(nil, j, d.m), "output neuron "+strconv.Itoa(j-numInputs)))
	}

	return d, nil
}

// LoadCSV reads a Dataset from comma-separated values, one sample per line. Blank lines and lines
// beginning with '#' are skipped. The arguments are the same as for NewDataset.
func LoadCSV(r io.Reader, numOutputs, reserved int) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load dataset, reading CSV failed\n")
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		rows[i] = make([]float64, len(rec))
		for j, s := range rec {
			if rows[i][j], err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
				return nil, errors.Wrapf(err, "Can't load dataset, bad value at line %d, column %d\n", i+1, j)
			}
		}
	}

	return NewDataset(rows, numOutputs, reserved)
}

// Rows returns the total number of samples, including reserved ones.
func (d *Dataset) Rows() int {
	r, _ := d.m.Dims()
	return r
}

// Width returns the number of values in each row.
func (d *Dataset) Width() int {
	_, c := d.m.Dims()
	return c
}

// NumInputs returns the number of input columns.
func (d *Dataset) NumInputs() int {
	return len(d.inputs)
}

// NumOutputs returns the number of output columns.
func (d *Dataset) NumOutputs() int {
	return d.numOutputs
}

// Reserved returns the number of trailing rows held out of training.
func (d *Dataset) Reserved() int {
	return d.reserved
}

// TrainRows returns the number of rows that can be used for training. Training samples are
// always in [0, TrainRows()).
func (d *Dataset) TrainRows() int {
	return d.Rows() - d.reserved
}

// Row returns a copy of the row at the given index. Row will panic if the index is out of range.
func (d *Dataset) Row(i int) []float64 {
	return mat.Row(nil, i, d.m)
}

// Inputs returns the Input Sources of the Dataset, one per input column. The same Sources are
// returned by every call.
func (d *Dataset) Inputs() []*Source {
	ins := make([]*Source, len(d.inputs))
	copy(ins, d.inputs)
	return ins
}

// Outputs returns the Output Sources of the Dataset, one per output column. The same Sources are
// returned by every call.
func (d *Dataset) Outputs() []*Source {
	outs := make([]*Source, len(d.outputs))
	copy(outs, d.outputs)
	return outs
}
