package model

import (
	"math"
	"testing"
)

func TestSolutionRangeIgnoresFillOutsideSpan(t *testing.T) {
	wave := make([]float64, Pixels)
	for p := 500; p <= 1500; p++ {
		wave[p] = 1 + 0.001*float64(p-500)
	}
	s := NewSolution(wave, 500, 1500)

	lo, hi := s.Range()
	if lo != 1 || math.Abs(hi-2) > 1e-12 {
		t.Fatalf("Range = (%v,%v), want (1,2)", lo, hi)
	}
}

func TestPrismClipStartsAtFirstIlluminatedWavelength(t *testing.T) {
	wave := make([]float64, Pixels)
	for p := 500; p <= 1500; p++ {
		wave[p] = 1 + 0.002*float64(p-500)
	}
	lim := ClipToScience(NewSolution(wave, 500, 1500), 0.6, 5.3)
	if !lim.Valid || lim.Min != 1 || math.Abs(lim.Max-3) > 1e-12 {
		t.Fatalf("clip = %+v, want [1, 3]", lim)
	}
}

func TestClipToScience(t *testing.T) {
	wave := make([]float64, Pixels)
	for p := range wave {
		wave[p] = 0.8 + 0.0003*float64(p)
	}
	s := NewSolution(wave, 0, Pixels-1)

	lim := ClipToScience(s, 0.7, 1.27)
	if !lim.Valid || lim.Min != 0.8 || lim.Max != 1.27 {
		t.Fatalf("clip = %+v", lim)
	}

	if got := ClipToScience(s, 2.0, 3.0); got.Valid {
		t.Fatalf("expected masked limit, got %+v", got)
	}
	if got := ClipToScience(NoSpectrum(), 0, 10); got.Valid {
		t.Fatalf("absent solution produced a limit")
	}
}

func TestShutterMapOpen(t *testing.T) {
	m := ShutterMap{
		{Q: 0, I: 0, J: 0}: StateOpen,
		{Q: 0, I: 0, J: 1}: StateStuckOpen,
		{Q: 1, I: 3, J: 2}: StateClosed,
		{Q: 2, I: 4, J: 4}: StateInactive,
	}
	open := m.Open()
	if len(open) != 2 || open[QIJ{0, 0, 0}] || !open[QIJ{0, 0, 1}] {
		t.Fatalf("open = %v", open)
	}
	if open.Stuck() != 1 {
		t.Fatalf("stuck = %d", open.Stuck())
	}
	keys := open.Sorted()
	if keys[0] != (QIJ{0, 0, 0}) || keys[1] != (QIJ{0, 0, 1}) {
		t.Fatalf("sorted = %v", keys)
	}
}

func TestParseShutterState(t *testing.T) {
	for _, code := range []string{"x", "0", "1", "s"} {
		st, ok := ParseShutterState(code)
		if !ok || st.Code() != code {
			t.Fatalf("ParseShutterState(%q) = %v,%v", code, st, ok)
		}
	}
	if _, ok := ParseShutterState("2"); ok {
		t.Fatalf("accepted unknown code")
	}
}
