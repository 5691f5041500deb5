package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	nb "github.com/tomgrek/neuralbackprop"
	"github.com/tomgrek/neuralbackprop/hyperparams"
	"github.com/tomgrek/neuralbackprop/initializers"
	"github.com/tomgrek/neuralbackprop/internal/config"
	"github.com/tomgrek/neuralbackprop/internal/plotting"
)

// multiplication table, scaled down so that products stay in [0, 1]. The last row is held back.
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

func loadDataset(cfg *config.Config) (*nb.Dataset, error) {
	if cfg.Data == "" {
		return nb.NewDataset(multiplication, cfg.Outputs, cfg.Reserved)
	}

	f, err := os.Open(cfg.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset")
	}
	defer f.Close()

	return nb.LoadCSV(f, cfg.Outputs, cfg.Reserved)
}

func buildNetwork(cfg *config.Config, ds *nb.Dataset, r *rand.Rand) (*nb.Network, error) {
	init, err := initializers.FromName(cfg.Initializer, r)
	if err != nil {
		return nil, err
	}

	var bp *nb.Blueprint
	switch cfg.Network {
	case "example":
		if bp, err = nb.Example(ds, init); err != nil {
			return nil, err
		}
	case "generated":
		if bp, err = nb.Generate(ds, cfg.Layers, cfg.PerLayer); err != nil {
			return nil, err
		}
		if err = nb.FullyConnectWith(bp, init); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown network %q", cfg.Network)
	}

	return bp.Network()
}

type runResult struct {
	id   string
	seed int64

	curve []plotting.Point

	trained, held         []nb.Evaluation
	trainedCost, heldCost float64
}

// trainRun builds and trains the network of a single run. Runs share the Dataset, but nothing
// else, so they can be trained at the same time.
func trainRun(ctx context.Context, cfg *config.Config, ds *nb.Dataset, index int) (*runResult, error) {
	res := &runResult{
		id:   uuid.NewString(),
		seed: cfg.Seed + int64(index),
	}
	r := rand.New(rand.NewSource(res.seed))

	net, err := buildNetwork(cfg, ds, r)
	if err != nil {
		return res, errors.Wrapf(err, "run %d: build network", index)
	}

	rate, err := hyperparams.FromName(cfg.Schedule, cfg.LearningRate, cfg.Decay, cfg.DecayEvery)
	if err != nil {
		return res, errors.Wrapf(err, "run %d", index)
	}

	log.Printf("run=%s index=%d seed=%d layers=%d network=%s", res.id, index, res.seed, net.NumLayers(), cfg.Network)

	until := nb.TrainUntil(cfg.Iterations)
	err = net.Train(nb.TrainArgs{
		Data: ds,
		RunCondition: func(iter int) bool {
			return ctx.Err() == nil && until(iter)
		},
		LearningRate: rate,
		Rand:         r,
		SendStatus:   nb.Every(cfg.LogEvery),
		Update: func(s nb.Result) {
			res.curve = append(res.curve, plotting.Point{Iteration: s.Iteration, Error: s.MeanAbsError})
			log.Printf("run=%s iter=%d sample=%d mean_abs_err=%.6g rms_err=%.6g lr=%.6g",
				res.id, s.Iteration, s.Sample, s.MeanAbsError, s.RMSError, s.LearningRate)
		},
	})
	if err != nil {
		return res, errors.Wrapf(err, "run %s", res.id)
	}
	if ctx.Err() != nil {
		return res, errors.Wrapf(ctx.Err(), "run %s", res.id)
	}

	if res.trained, res.trainedCost, err = net.Test(ds, 0, ds.TrainRows()); err != nil {
		return res, errors.Wrapf(err, "run %s: test trained rows", res.id)
	}
	if res.held, res.heldCost, err = net.Test(ds, ds.TrainRows(), ds.Rows()); err != nil {
		return res, errors.Wrapf(err, "run %s: test held rows", res.id)
	}

	return res, nil
}

func report(w io.Writer, res *runResult) {
	fmt.Fprintf(w, "run %s (seed %d)\n", res.id, res.seed)
	fmt.Fprintf(w, "outputs for the rows trained on, cost %.6g:\n", res.trainedCost)
	for _, e := range res.trained {
		fmt.Fprintf(w, "  row %d: %s, expected %s\n", e.Row, format(e.Outputs), format(e.Targets))
	}

	if len(res.held) == 0 {
		return
	}

	fmt.Fprintf(w, "outputs for the rows held back, cost %.6g:\n", res.heldCost)
	for _, e := range res.held {
		fmt.Fprintf(w, "  row %d: %s, expected %s\n", e.Row, format(e.Outputs), format(e.Targets))
	}
}
