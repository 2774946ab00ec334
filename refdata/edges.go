package refdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/signalsfoundry/msaviz/model"
)

// edgeRecord is one quadrant entry of edges.json:
// [filter, grating, quadrant, type1, params1, pix1, type2, params2, pix2].
// Entries are keyed by the zero-based quadrant index "0".."3".
type edgeRecord [9]json.RawMessage

func (r *Registry) loadRanges(fsys fs.FS) error {
	data, err := fs.ReadFile(fsys, RangesFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", RangesFile, err)
	}

	var payload map[string][2]float64
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrInvalidReference, RangesFile, err)
	}

	for key, lohi := range payload {
		inst, err := ParseInstrument(key)
		if err != nil {
			return err
		}
		lo, hi := lohi[0], lohi[1]
		if !finite(lo) || !finite(hi) || lo >= hi {
			return fmt.Errorf("%w: %s range for %s is [%v, %v]", ErrInvalidReference, RangesFile, key, lo, hi)
		}
		r.ranges[inst] = ScienceRange{Lo: lo, Hi: hi}
	}
	return nil
}

func (r *Registry) loadEdges(fsys fs.FS) error {
	data, err := fs.ReadFile(fsys, EdgesFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", EdgesFile, err)
	}

	var payload map[string]map[string]edgeRecord
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrInvalidReference, EdgesFile, err)
	}

	for key, quads := range payload {
		inst, err := ParseInstrument(key)
		if err != nil {
			return err
		}
		models := new([model.Quadrants]QuadrantModel)
		for q := range models {
			models[q].Quadrant = q + 1
		}
		for qs, rec := range quads {
			q, err := strconv.Atoi(qs)
			if err != nil || q < 0 || q >= model.Quadrants {
				return fmt.Errorf("%w: %s %s: bad quadrant key %q", ErrInvalidReference, EdgesFile, key, qs)
			}
			for side := 0; side < model.Sides; side++ {
				sm, err := decodeSide(rec[3+3*side], rec[4+3*side], rec[5+3*side])
				if err != nil {
					return fmt.Errorf("%w: %s %s quadrant %d side %d: %v", ErrInvalidReference, EdgesFile, key, q+1, side+1, err)
				}
				models[q].Sides[side] = sm
			}
		}
		r.gratingModels[inst] = models
	}
	return nil
}

// decodeSide returns nil when either the parameters or the starting pixel
// are null.
func decodeSide(rawType, rawParams, rawPix json.RawMessage) (*SideModel, error) {
	if isNull(rawParams) || isNull(rawPix) {
		return nil, nil
	}

	var params []float64
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return nil, fmt.Errorf("params: %v", err)
	}
	poly, err := NewPoly2D(params)
	if err != nil {
		return nil, err
	}

	var pix float64
	if err := json.Unmarshal(rawPix, &pix); err != nil {
		return nil, fmt.Errorf("pixel: %v", err)
	}
	start := int(pix)
	if float64(start) != pix || (start != 0 && start != model.Pixels-1) {
		return nil, fmt.Errorf("starting pixel must be 0 or %d, got %v", model.Pixels-1, pix)
	}

	var typ string
	if !isNull(rawType) {
		if err := json.Unmarshal(rawType, &typ); err != nil {
			return nil, fmt.Errorf("type: %v", err)
		}
	}

	return &SideModel{Type: typ, Poly: poly, StartPixel: start}, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
