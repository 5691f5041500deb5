package hyperparams_test

import (
	"math"
	"testing"

	"github.com/tomgrek/neuralbackprop/hyperparams"
)

func TestConstant(t *testing.T) {
	c := hyperparams.Constant(0.1)
	for _, iter := range []int{0, 1, 1000000} {
		if v := c.Value(iter); v != 0.1 {
			t.Errorf("Value(%d) = %v, want 0.1", iter, v)
		}
	}
}

func TestStep(t *testing.T) {
	s := hyperparams.Step(1).Add(10, 0.5).Add(20, 0.25)

	cases := map[int]float64{0: 1, 9: 1, 10: 0.5, 19: 0.5, 20: 0.25, 500: 0.25}
	for iter, want := range cases {
		if v := s.Value(iter); v != want {
			t.Errorf("Value(%d) = %v, want %v", iter, v, want)
		}
	}
}

func TestDecay(t *testing.T) {
	d := hyperparams.Decay(0.1, 0.5, 100)

	cases := map[int]float64{0: 0.05, 99: 0.05, 100: 0.025, 250: 0.0125}
	for iter, want := range cases {
		if v := d.Value(iter); math.Abs(v-want) > 1e-15 {
			t.Errorf("Value(%d) = %v, want %v", iter, v, want)
		}
	}
}

func TestFromName(t *testing.T) {
	hp, err := hyperparams.FromName("decay", 0.1, 0.91, 100000)
	if err != nil {
		t.Fatal(err)
	}
	if v := hp.Value(0); math.Abs(v-0.091) > 1e-12 {
		t.Errorf("decay Value(0) = %v, want 0.091", v)
	}

	if hp, err = hyperparams.FromName("constant", 0.3, 0, 0); err != nil {
		t.Fatal(err)
	} else if v := hp.Value(7); v != 0.3 {
		t.Errorf("constant Value(7) = %v, want 0.3", v)
	}

	if _, err = hyperparams.FromName("decay", 0.1, 0.5, 0); err == nil {
		t.Error("decay with an interval of 0 was accepted")
	}
	if _, err = hyperparams.FromName("cosine", 0.1, 0, 0); err == nil {
		t.Error("unknown schedule was accepted")
	}
}
