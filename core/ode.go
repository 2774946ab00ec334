package core

import (
	"errors"
	"fmt"
	"math"
)

// Default integration tolerances.
const (
	DefaultRelTol = 1e-8
	DefaultAbsTol = 1e-8

	maxODESteps = 500000
)

var errStepUnderflow = errors.New("step size underflow")

// Tolerance bounds the local error of each integration step:
// |err| <= Abs + Rel*max(|y|, |y_new|).
type Tolerance struct {
	Rel float64
	Abs float64
}

func (t Tolerance) withDefaults() Tolerance {
	if t.Rel <= 0 {
		t.Rel = DefaultRelTol
	}
	if t.Abs <= 0 {
		t.Abs = DefaultAbsTol
	}
	return t
}

// Dormand-Prince 5(4) tableau.
const (
	dpC2 = 1.0 / 5
	dpC3 = 3.0 / 10
	dpC4 = 4.0 / 5
	dpC5 = 8.0 / 9

	dpA21 = 1.0 / 5
	dpA31 = 3.0 / 40
	dpA32 = 9.0 / 40
	dpA41 = 44.0 / 45
	dpA42 = -56.0 / 15
	dpA43 = 32.0 / 9
	dpA51 = 19372.0 / 6561
	dpA52 = -25360.0 / 2187
	dpA53 = 64448.0 / 6561
	dpA54 = -212.0 / 729
	dpA61 = 9017.0 / 3168
	dpA62 = -355.0 / 33
	dpA63 = 46732.0 / 5247
	dpA64 = 49.0 / 176
	dpA65 = -5103.0 / 18656

	dpB1 = 35.0 / 384
	dpB3 = 500.0 / 1113
	dpB4 = 125.0 / 192
	dpB5 = -2187.0 / 6784
	dpB6 = 11.0 / 84

	dpE1 = 71.0 / 57600
	dpE3 = -71.0 / 16695
	dpE4 = 71.0 / 1920
	dpE5 = -17253.0 / 339200
	dpE6 = 22.0 / 525
	dpE7 = -1.0 / 40
)

// Integrate solves the scalar initial value problem dy/dt = f(t, y),
// y(ts[0]) = y0, and returns y at every point of ts. ts must be monotonic in
// either direction; repeated points reproduce the previous value. out[0] is
// always y0.
func Integrate(f func(t, y float64) float64, y0 float64, ts []float64, tol Tolerance) ([]float64, error) {
	out := make([]float64, len(ts))
	if len(ts) == 0 {
		return out, nil
	}
	tol = tol.withDefaults()
	out[0] = y0

	dir := 0.0
	for k := 1; k < len(ts) && dir == 0; k++ {
		dir = math.Copysign(1, ts[k]-ts[0])
		if ts[k] == ts[0] {
			dir = 0
		}
	}
	if dir == 0 {
		for k := range out {
			out[k] = y0
		}
		return out, nil
	}

	t, y := ts[0], y0
	k1 := f(t, y)
	h := initialStep(f, t, y, k1, dir, tol)
	steps := 0

	for k := 1; k < len(ts); k++ {
		target := ts[k]
		if (target-t)*dir < 0 {
			return out, fmt.Errorf("output points are not monotonic at index %d", k)
		}
		for (target-t)*dir > 0 {
			if steps++; steps > maxODESteps {
				return out, fmt.Errorf("integration exceeded %d steps near t=%g", maxODESteps, t)
			}
			hs, last := h, false
			if (t+hs-target)*dir >= 0 {
				hs, last = target-t, true
			}

			yNew, k7, errEst := dopriStep(f, t, y, hs, k1)
			scale := tol.Abs + tol.Rel*math.Max(math.Abs(y), math.Abs(yNew))
			ratio := math.Abs(errEst) / scale
			if math.IsNaN(ratio) || math.IsNaN(yNew) {
				return out, fmt.Errorf("integration produced NaN near t=%g", t)
			}
			factor := 5.0
			if ratio > 0 {
				factor = math.Min(5, math.Max(0.2, 0.9*math.Pow(ratio, -0.2)))
			}

			switch {
			case ratio > 1:
				h = hs * factor
			case last:
				// a step shortened to land on target keeps the proposed size
				t, y, k1 = target, yNew, k7
			default:
				t, y, k1 = t+hs, yNew, k7
				h = hs * factor
			}
			if math.Abs(h) < 1e-12*math.Max(1, math.Abs(t)) {
				return out, fmt.Errorf("%w near t=%g", errStepUnderflow, t)
			}
		}
		out[k] = y
	}
	return out, nil
}

// dopriStep advances one Dormand-Prince step from (t, y) with first stage
// k1. It returns the fifth-order solution, the derivative there (the next
// step's first stage) and the embedded error estimate.
func dopriStep(f func(t, y float64) float64, t, y, h, k1 float64) (yNew, k7, errEst float64) {
	k2 := f(t+dpC2*h, y+h*dpA21*k1)
	k3 := f(t+dpC3*h, y+h*(dpA31*k1+dpA32*k2))
	k4 := f(t+dpC4*h, y+h*(dpA41*k1+dpA42*k2+dpA43*k3))
	k5 := f(t+dpC5*h, y+h*(dpA51*k1+dpA52*k2+dpA53*k3+dpA54*k4))
	k6 := f(t+h, y+h*(dpA61*k1+dpA62*k2+dpA63*k3+dpA64*k4+dpA65*k5))
	yNew = y + h*(dpB1*k1+dpB3*k3+dpB4*k4+dpB5*k5+dpB6*k6)
	k7 = f(t+h, yNew)
	errEst = h * (dpE1*k1 + dpE3*k3 + dpE4*k4 + dpE5*k5 + dpE6*k6 + dpE7*k7)
	return yNew, k7, errEst
}

// initialStep picks a first step from the size of the solution and its
// derivative, in the manner of Hairer, Nørsett and Wanner.
func initialStep(f func(t, y float64) float64, t, y, dy, dir float64, tol Tolerance) float64 {
	sc := tol.Abs + tol.Rel*math.Abs(y)
	d0 := math.Abs(y) / sc
	d1 := math.Abs(dy) / sc
	h0 := 1e-6
	if d0 >= 1e-5 && d1 >= 1e-5 {
		h0 = 0.01 * d0 / d1
	}
	dy1 := f(t+dir*h0, y+dir*h0*dy)
	d2 := math.Abs(dy1-dy) / sc / h0
	var h1 float64
	if math.Max(d1, d2) <= 1e-15 {
		h1 = math.Max(1e-6, h0*1e-3)
	} else {
		h1 = math.Pow(0.01/math.Max(d1, d2), 1.0/5)
	}
	return dir * math.Min(100*h0, h1)
}
