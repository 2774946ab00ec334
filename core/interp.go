package core

import (
	"fmt"
	"sort"
)

// Linear is a piecewise-linear interpolant over ascending, distinct knots.
// Outside the knots it extends the first or last segment.
type Linear struct {
	x, y []float64
}

// NewLinear copies the knots, which must be ascending and at least two.
func NewLinear(x, y []float64) (*Linear, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("interpolant: %d abscissae but %d ordinates", len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("interpolant: need at least 2 knots, got %d", len(x))
	}
	for k := 1; k < len(x); k++ {
		if !(x[k] > x[k-1]) {
			return nil, fmt.Errorf("interpolant: knots not ascending at %d", k)
		}
	}
	return &Linear{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
	}, nil
}

// Eval interpolates at v.
func (l *Linear) Eval(v float64) float64 {
	n := len(l.x)
	// k is the right end of the segment containing v, clamped to the end
	// segments for extrapolation.
	k := sort.SearchFloat64s(l.x, v)
	if k < 1 {
		k = 1
	} else if k > n-1 {
		k = n - 1
	}
	x0, x1 := l.x[k-1], l.x[k]
	y0, y1 := l.y[k-1], l.y[k]
	return y0 + (y1-y0)*(v-x0)/(x1-x0)
}
