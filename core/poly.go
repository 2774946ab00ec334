package core

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DispersionDegree is the degree of the polynomial fitted to grating
// dispersion tables.
const DispersionDegree = 6

// Poly1D is a one-variable polynomial in the normalised variable
// t = (x - Center) / Scale, with coefficients in ascending powers of t.
type Poly1D struct {
	Coeffs []float64
	Center float64
	Scale  float64
}

// Eval evaluates the polynomial at x with Horner's rule.
func (p Poly1D) Eval(x float64) float64 {
	scale := p.Scale
	if scale == 0 {
		scale = 1
	}
	t := (x - p.Center) / scale
	var sum float64
	for k := len(p.Coeffs) - 1; k >= 0; k-- {
		sum = sum*t + p.Coeffs[k]
	}
	return sum
}

// FitPoly1D returns the least-squares polynomial of the given degree
// through (x, y). The abscissae are centred and scaled onto [-1, 1] before
// fitting so that high degrees stay well conditioned. When there are fewer
// points than coefficients the degree is lowered to fit them exactly; the
// abscissae must be distinct.
func FitPoly1D(x, y []float64, degree int) (Poly1D, error) {
	if len(x) != len(y) {
		return Poly1D{}, fmt.Errorf("fit: %d abscissae but %d ordinates", len(x), len(y))
	}
	if len(x) == 0 {
		return Poly1D{}, errors.New("fit: no points")
	}
	if degree < 0 {
		return Poly1D{}, fmt.Errorf("fit: negative degree %d", degree)
	}
	if degree > len(x)-1 {
		degree = len(x) - 1
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range x {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	center := (lo + hi) / 2
	scale := (hi - lo) / 2
	if scale == 0 {
		// a single abscissa only supports a constant
		scale = 1
		degree = 0
	}

	n, m := len(x), degree+1
	a := mat.NewDense(n, m, nil)
	for r, v := range x {
		t := (v - center) / scale
		pow := 1.0
		for c := 0; c < m; c++ {
			a.Set(r, c, pow)
			pow *= t
		}
	}
	b := mat.NewVecDense(n, append([]float64(nil), y...))

	var coef mat.VecDense
	if err := coef.SolveVec(a, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return Poly1D{}, fmt.Errorf("fit: %w", err)
		}
		// ill-conditioned but solved
	}

	coeffs := make([]float64, m)
	for k := range coeffs {
		coeffs[k] = coef.AtVec(k)
	}
	return Poly1D{Coeffs: coeffs, Center: center, Scale: scale}, nil
}

// Cubic is c0 + c1*x + c2*x^2 + c3*x^3.
type Cubic [4]float64

// Eval evaluates the cubic at x.
func (c Cubic) Eval(x float64) float64 {
	return c[0] + x*(c[1]+x*(c[2]+x*c[3]))
}
