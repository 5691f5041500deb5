package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomgrek/neuralbackprop/internal/config"
)

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Iterations = 2000
	cfg.LogEvery = 500
	return cfg
}

func TestTrainRunExample(t *testing.T) {
	cfg := smallConfig()
	ds, err := loadDataset(cfg)
	if err != nil {
		t.Fatal(err)
	}

	res, err := trainRun(context.Background(), cfg, ds, 0)
	if err != nil {
		t.Fatalf("trainRun: %v", err)
	}

	if len(res.trained) != 7 || len(res.held) != 1 {
		t.Fatalf("got %d trained and %d held rows, want 7 and 1", len(res.trained), len(res.held))
	}
	if len(res.curve) != 4 {
		t.Errorf("got %d status points, want 4", len(res.curve))
	}

	var buf bytes.Buffer
	report(&buf, res)
	if !strings.Contains(buf.String(), "held back") {
		t.Errorf("report is missing the held back rows:\n%s", buf.String())
	}
}

func TestTrainRunGeneratedIsSeeded(t *testing.T) {
	cfg := smallConfig()
	cfg.Network = "generated"
	ds, err := loadDataset(cfg)
	if err != nil {
		t.Fatal(err)
	}

	a, err := trainRun(context.Background(), cfg, ds, 3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := trainRun(context.Background(), cfg, ds, 3)
	if err != nil {
		t.Fatal(err)
	}

	if a.id == b.id {
		t.Error("two runs were given the same id")
	}
	if a.trainedCost != b.trainedCost {
		t.Errorf("runs with the same seed differ: %v != %v", a.trainedCost, b.trainedCost)
	}
}

func TestTrainRunCancelled(t *testing.T) {
	cfg := smallConfig()
	ds, err := loadDataset(cfg)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := trainRun(ctx, cfg, ds, 0); err == nil {
		t.Fatal("expected an error from a cancelled run")
	}
}

func TestLoadDatasetCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "and.csv")
	csv := "# a, b, a AND b\n0,0,0\n0,1,0\n1,0,0\n1,1,1\n"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := smallConfig()
	cfg.Data = path
	cfg.Reserved = 0

	ds, err := loadDataset(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Rows() != 4 || ds.NumInputs() != 2 {
		t.Fatalf("got %d rows and %d inputs, want 4 and 2", ds.Rows(), ds.NumInputs())
	}
}
