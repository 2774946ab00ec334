package model

import (
	"errors"
	"testing"
)

func TestShutterRoundTripAtQuadrantCorners(t *testing.T) {
	for q := 1; q <= Quadrants; q++ {
		for _, c := range []int{1, 2, Columns / 2, Columns - 1, Columns} {
			for _, r := range []int{1, 2, Rows / 2, Rows - 1, Rows} {
				s, err := NewShutter(q, c, r)
				if err != nil {
					t.Fatalf("NewShutter(%d,%d,%d): %v", q, c, r, err)
				}

				g := s.QIJ()
				if g != (QIJ{Q: q - 1, I: c - 1, J: r - 1}) {
					t.Fatalf("QIJ of %v = %v", s, g)
				}
				back, err := FromQIJ(g)
				if err != nil || back != s {
					t.Fatalf("FromQIJ(%v) = %v, %v; want %v", g, back, err, s)
				}

				x, y := s.XY()
				back, err = FromXY(x, y)
				if err != nil || back != s {
					t.Fatalf("FromXY(%d,%d) = %v, %v; want %v", x, y, back, err, s)
				}

				back, err = FromIndex(s.Index())
				if err != nil || back != s {
					t.Fatalf("FromIndex(%d) = %v, %v; want %v", s.Index(), back, err, s)
				}
			}
		}
	}
}

func TestXYIsBijectiveOverTheMosaic(t *testing.T) {
	seen := make(map[Shutter]bool, ShutterCount)
	for x := 0; x < GridWidth; x++ {
		for y := 0; y < GridHeight; y++ {
			s, err := FromXY(x, y)
			if err != nil {
				t.Fatalf("FromXY(%d,%d): %v", x, y, err)
			}
			gx, gy := s.XY()
			if gx != x || gy != y {
				t.Fatalf("XY(FromXY(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
			seen[s] = true
		}
	}
	if len(seen) != ShutterCount {
		t.Fatalf("mosaic covers %d shutters, want %d", len(seen), ShutterCount)
	}
}

func TestFromXYFollowsQuadrantLayout(t *testing.T) {
	cases := []struct {
		x, y     int
		quadrant int
		col, row int
	}{
		{0, 0, 1, 1, 1},
		{0, Rows, 2, 1, 1},
		{Columns, 0, 3, 1, 1},
		{Columns, Rows, 4, 1, 1},
		{GridWidth - 1, GridHeight - 1, 4, Columns, Rows},
		{364, 170, 1, Columns, Rows},
	}
	for _, tc := range cases {
		s, err := FromXY(tc.x, tc.y)
		if err != nil {
			t.Fatalf("FromXY(%d,%d): %v", tc.x, tc.y, err)
		}
		q, c, r := s.MSA()
		if q != tc.quadrant || c != tc.col || r != tc.row {
			t.Fatalf("FromXY(%d,%d) = (%d,%d,%d), want (%d,%d,%d)", tc.x, tc.y, q, c, r, tc.quadrant, tc.col, tc.row)
		}
	}
}

func TestDisplayXYIsRotatedMosaic(t *testing.T) {
	s, _ := NewShutter(1, 1, 1)
	x, y := s.DisplayXY()
	if x != 729 || y != 341 {
		t.Fatalf("DisplayXY(Q1 1,1) = (%d,%d), want (729,341)", x, y)
	}
	for q := 1; q <= Quadrants; q++ {
		s, _ := NewShutter(q, 17, 99)
		x, y := s.XY()
		dx, dy := s.DisplayXY()
		if dx != GridWidth-1-x || dy != GridHeight-1-y {
			t.Fatalf("quadrant %d: DisplayXY=(%d,%d) XY=(%d,%d)", q, dx, dy, x, y)
		}
	}
}

func TestIndexIsBijective(t *testing.T) {
	for idx := 0; idx < ShutterCount; idx++ {
		s, err := FromIndex(idx)
		if err != nil {
			t.Fatalf("FromIndex(%d): %v", idx, err)
		}
		if got := s.Index(); got != idx {
			t.Fatalf("Index(FromIndex(%d)) = %d", idx, got)
		}
	}

	last, _ := NewShutter(Quadrants, Columns, Rows)
	if last.Index() != ShutterCount-1 {
		t.Fatalf("last index = %d", last.Index())
	}
	second, _ := NewShutter(1, 2, 1)
	if second.Index() != Rows {
		t.Fatalf("column stride = %d, want %d", second.Index(), Rows)
	}
}

func TestOutOfRangeCoordinatesAreRejected(t *testing.T) {
	checks := []error{
		func() error { _, err := NewShutter(0, 1, 1); return err }(),
		func() error { _, err := NewShutter(5, 1, 1); return err }(),
		func() error { _, err := NewShutter(1, 366, 1); return err }(),
		func() error { _, err := NewShutter(1, 1, 172); return err }(),
		func() error { _, err := FromQIJ(QIJ{Q: -1}); return err }(),
		func() error { _, err := FromXY(GridWidth, 0); return err }(),
		func() error { _, err := FromXY(0, -1); return err }(),
		func() error { _, err := FromIndex(ShutterCount); return err }(),
	}
	for k, err := range checks {
		if !errors.Is(err, ErrShutterOutOfRange) {
			t.Fatalf("check %d: err = %v, want ErrShutterOutOfRange", k, err)
		}
	}
	if (Shutter{}).Valid() {
		t.Fatalf("zero shutter reported valid")
	}
}

func TestBatchBroadcastsAndTruncates(t *testing.T) {
	n, truncated := BatchLen(1, 3, 1)
	if n != 3 || truncated {
		t.Fatalf("BatchLen(1,3,1) = %d,%v", n, truncated)
	}
	n, truncated = BatchLen(4, 2, 1)
	if n != 2 || !truncated {
		t.Fatalf("BatchLen(4,2,1) = %d,%v", n, truncated)
	}
	n, _ = BatchLen(1, 1)
	if n != 1 {
		t.Fatalf("BatchLen(1,1) = %d", n)
	}

	got, err := NewShutters([]int{2}, []int{1, 2, 3, 4}, []int{5, 6, 7})
	if err != nil {
		t.Fatalf("NewShutters: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for k, s := range got {
		if s.Quadrant() != 2 || s.Column() != k+1 || s.Row() != k+5 {
			t.Fatalf("shutter %d = %v", k, s)
		}
	}

	x, y := XYs(got)
	back, err := ShuttersFromXY(x, y)
	if err != nil {
		t.Fatalf("ShuttersFromXY: %v", err)
	}
	idx := Indices(back)
	again, err := ShuttersFromIndex(idx)
	if err != nil {
		t.Fatalf("ShuttersFromIndex: %v", err)
	}
	grid, err := ShuttersFromQIJ([]int{1}, []int{0, 1, 2}, []int{4, 5, 6})
	if err != nil {
		t.Fatalf("ShuttersFromQIJ: %v", err)
	}
	for k := range got {
		if back[k] != got[k] || again[k] != got[k] || grid[k] != got[k] {
			t.Fatalf("batch round trip mismatch at %d", k)
		}
	}

	if _, err := NewShutters([]int{9}, []int{1}, []int{1}); !errors.Is(err, ErrShutterOutOfRange) {
		t.Fatalf("expected range error, got %v", err)
	}
}
