package model

// Batch conversions work on parallel coordinate slices. The broadcasting
// policy is the same for every function here:
//
//   - a slice of length 1 is broadcast against the others;
//   - if the remaining slices differ in length, all are truncated to the
//     shortest one.
//
// BatchLen reports the effective length and whether truncation happened so
// callers can surface it; the conversions themselves never fail on length.

// BatchLen returns the number of elements a batch conversion over slices of
// the given lengths produces, and whether any slice longer than one element
// was truncated.
func BatchLen(lens ...int) (n int, truncated bool) {
	n = -1
	for _, l := range lens {
		if l == 1 {
			continue
		}
		if n < 0 || l < n {
			n = l
		}
	}
	if n < 0 {
		// all scalars (or no inputs at all)
		if len(lens) == 0 {
			return 0, false
		}
		return 1, false
	}
	for _, l := range lens {
		if l != 1 && l != n {
			truncated = true
		}
	}
	return n, truncated
}

func at(s []int, k int) int {
	if len(s) == 1 {
		return s[0]
	}
	return s[k]
}

// NewShutters builds shutters from parallel 1-based MSA coordinate slices.
// Conversion stops at the first out-of-range entry.
func NewShutters(quadrants, columns, rows []int) ([]Shutter, error) {
	n, _ := BatchLen(len(quadrants), len(columns), len(rows))
	out := make([]Shutter, n)
	for k := range out {
		s, err := NewShutter(at(quadrants, k), at(columns, k), at(rows, k))
		if err != nil {
			return nil, err
		}
		out[k] = s
	}
	return out, nil
}

// ShuttersFromQIJ builds shutters from parallel zero-based grid slices.
func ShuttersFromQIJ(q, i, j []int) ([]Shutter, error) {
	n, _ := BatchLen(len(q), len(i), len(j))
	out := make([]Shutter, n)
	for k := range out {
		s, err := FromQIJ(QIJ{Q: at(q, k), I: at(i, k), J: at(j, k)})
		if err != nil {
			return nil, err
		}
		out[k] = s
	}
	return out, nil
}

// ShuttersFromXY builds shutters from parallel flat mosaic slices.
func ShuttersFromXY(x, y []int) ([]Shutter, error) {
	n, _ := BatchLen(len(x), len(y))
	out := make([]Shutter, n)
	for k := range out {
		s, err := FromXY(at(x, k), at(y, k))
		if err != nil {
			return nil, err
		}
		out[k] = s
	}
	return out, nil
}

// ShuttersFromIndex builds shutters from linear indices.
func ShuttersFromIndex(idx []int) ([]Shutter, error) {
	out := make([]Shutter, len(idx))
	for k, v := range idx {
		s, err := FromIndex(v)
		if err != nil {
			return nil, err
		}
		out[k] = s
	}
	return out, nil
}

// XYs returns the flat mosaic coordinates of each shutter.
func XYs(shutters []Shutter) (x, y []int) {
	x = make([]int, len(shutters))
	y = make([]int, len(shutters))
	for k, s := range shutters {
		x[k], y[k] = s.XY()
	}
	return x, y
}

// Indices returns the linear index of each shutter.
func Indices(shutters []Shutter) []int {
	out := make([]int, len(shutters))
	for k, s := range shutters {
		out[k] = s.Index()
	}
	return out
}
