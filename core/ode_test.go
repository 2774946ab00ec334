package core

import (
	"errors"
	"math"
	"testing"
)

func TestIntegrateMatchesExponential(t *testing.T) {
	ts := make([]float64, 51)
	for k := range ts {
		ts[k] = float64(k) * 0.1
	}
	out, err := Integrate(func(_, y float64) float64 { return y }, 1, ts, Tolerance{})
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}
	for k, v := range out {
		want := math.Exp(ts[k])
		if rel := math.Abs(v-want) / want; rel > 1e-6 {
			t.Fatalf("y(%v) = %v, want %v (rel err %g)", ts[k], v, want, rel)
		}
	}
}

func TestIntegrateBackwards(t *testing.T) {
	ts := []float64{3, 2, 1, 0}
	// dy/dt = -2t, y(3) = 0 gives y = 9 - t^2.
	out, err := Integrate(func(tt, _ float64) float64 { return -2 * tt }, 0, ts, Tolerance{})
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}
	for k, v := range out {
		want := 9 - ts[k]*ts[k]
		if math.Abs(v-want) > 1e-7 {
			t.Fatalf("y(%v) = %v, want %v", ts[k], v, want)
		}
	}
}

func TestIntegrateRepeatedAndFractionalPoints(t *testing.T) {
	ts := []float64{10.5, 11, 11, 12, 20}
	out, err := Integrate(func(_, _ float64) float64 { return 0.5 }, 2, ts, Tolerance{})
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}
	want := []float64{2, 2.25, 2.25, 2.75, 6.75}
	for k := range want {
		if math.Abs(out[k]-want[k]) > 1e-10 {
			t.Fatalf("out[%d] = %v, want %v", k, out[k], want[k])
		}
	}
}

func TestIntegrateDegenerateInputs(t *testing.T) {
	out, err := Integrate(func(_, y float64) float64 { return y }, 4, nil, Tolerance{})
	if err != nil || len(out) != 0 {
		t.Fatalf("empty grid: out=%v err=%v", out, err)
	}
	out, err = Integrate(func(_, y float64) float64 { return y }, 4, []float64{1, 1, 1}, Tolerance{})
	if err != nil {
		t.Fatalf("constant grid: %v", err)
	}
	for _, v := range out {
		if v != 4 {
			t.Fatalf("constant grid out = %v, want all 4", out)
		}
	}
}

func TestIntegrateRejectsNonMonotonicGrid(t *testing.T) {
	if _, err := Integrate(func(_, y float64) float64 { return 1 }, 0, []float64{0, 2, 1}, Tolerance{}); err == nil {
		t.Fatal("expected an error for a grid that turns back")
	}
}

func TestIntegrateReportsBlowUp(t *testing.T) {
	// y' = y^2 from y(0) = 1 escapes to infinity at t = 1.
	_, err := Integrate(func(_, y float64) float64 { return y * y }, 1, []float64{0, 2}, Tolerance{})
	if err == nil {
		t.Fatal("expected an error integrating through a singularity")
	}

	_, err = Integrate(func(_, _ float64) float64 { return math.NaN() }, 1, []float64{0, 1}, Tolerance{})
	if err == nil || errors.Is(err, errStepUnderflow) {
		t.Fatalf("NaN derivative error = %v", err)
	}
}
