// Command neuralbackprop trains small feed-forward networks one sample at a time, and prints how
// well they fit the rows they were trained on and the rows that were held back.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tomgrek/neuralbackprop/activations"
	_ "github.com/tomgrek/neuralbackprop/costfuncs"
	_ "github.com/tomgrek/neuralbackprop/initializers"
	"github.com/tomgrek/neuralbackprop/internal/config"
	"github.com/tomgrek/neuralbackprop/internal/plotting"
	"github.com/tomgrek/neuralbackprop/utils"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (defaults are used if empty)")
	data := flag.String("data", "", "CSV dataset; the built-in multiplication table if empty")
	network := flag.String("network", "", "\"example\" or \"generated\"")
	layers := flag.Int("layers", 0, "Number of layers of a generated network, counting the inputs")
	perLayer := flag.Int("per-layer", 0, "Neurons in each hidden layer of a generated network")
	learningRate := flag.Float64("learning-rate", 0, "Starting learning rate")
	iterations := flag.Int("iterations", 0, "Number of training iterations")
	seed := flag.Int64("seed", 0, "PRNG seed of the first run")
	logEvery := flag.Int("log-every", 0, "Log every N iterations")
	runs := flag.Int("runs", 0, "Number of independent runs")
	workers := flag.Int("workers", 0, "Runs trained at once (one per CPU if 0)")
	plot := flag.String("plot", "", "Write the error curve of every run to this image file")

	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	cfg.ApplyOverrides(config.Overrides{
		Data:         *data,
		Network:      *network,
		Layers:       *layers,
		PerLayer:     *perLayer,
		LearningRate: *learningRate,
		Iterations:   *iterations,
		Seed:         *seed,
		LogEvery:     *logEvery,
		Runs:         *runs,
		Workers:      *workers,
		Plot:         *plot,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}
	log.Printf("rows=%d inputs=%d outputs=%d reserved=%d", ds.Rows(), ds.NumInputs(), ds.NumOutputs(), ds.Reserved())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results := make([]*runResult, cfg.Runs)
	err = utils.MultiThread(0, cfg.Runs, func(i int) error {
		res, err := trainRun(ctx, cfg, ds, i)
		results[i] = res
		return err
	}, cfg.Workers)
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}

	curves := make([][]plotting.Point, len(results))
	for i, res := range results {
		report(os.Stdout, res)
		curves[i] = res.curve
	}

	if cfg.Plot != "" {
		if err := plotting.ErrorCurve(curves, cfg.Plot); err != nil {
			log.Fatalf("failed to plot: %v", err)
		}
		log.Printf("plot=%s", cfg.Plot)
	}
}

func format(fs []float64) string {
	return fmt.Sprintf("%.4f", fs)
}
