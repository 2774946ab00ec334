package refdata

import "fmt"

// Poly2D is a degree-2 polynomial in two variables,
// P(x, y) = sum C[i][j] * x^i * y^j over i+j <= 2.
type Poly2D struct {
	C [3][3]float64
}

// NewPoly2D builds a polynomial from its six model parameters, read in the
// order c0_0, c1_0, c2_0, c0_1, c0_2, c1_1 (powers of x, then powers of y,
// then the cross term).
func NewPoly2D(params []float64) (Poly2D, error) {
	if len(params) != 6 {
		return Poly2D{}, fmt.Errorf("degree-2 polynomial needs 6 parameters, got %d", len(params))
	}
	var p Poly2D
	p.C[0][0] = params[0]
	p.C[1][0] = params[1]
	p.C[2][0] = params[2]
	p.C[0][1] = params[3]
	p.C[0][2] = params[4]
	p.C[1][1] = params[5]
	return p, nil
}

// Eval evaluates the polynomial at (x, y).
func (p Poly2D) Eval(x, y float64) float64 {
	var sum float64
	xp := 1.0
	for i := 0; i < 3; i++ {
		yp := 1.0
		for j := 0; j < 3; j++ {
			sum += p.C[i][j] * xp * yp
			yp *= y
		}
		xp *= x
	}
	return sum
}
