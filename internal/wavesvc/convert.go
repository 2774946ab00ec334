package wavesvc

import (
	"fmt"

	msavizv1 "github.com/signalsfoundry/msaviz/internal/genproto/msaviz/v1"
	"github.com/signalsfoundry/msaviz/internal/wavetable"
	"github.com/signalsfoundry/msaviz/model"
)

// ShutterFromProto validates a wire shutter address.
func ShutterFromProto(in *msavizv1.Shutter) (model.Shutter, error) {
	if in == nil {
		return model.Shutter{}, fmt.Errorf("%w: shutter is required", ErrInvalidRequest)
	}
	return model.NewShutter(int(in.GetQuadrant()), int(in.GetColumn()), int(in.GetRow()))
}

// ShutterToProto converts a shutter to its wire form.
func ShutterToProto(sh model.Shutter) *msavizv1.Shutter {
	q, c, r := sh.MSA()
	return &msavizv1.Shutter{Quadrant: int32(q), Column: int32(c), Row: int32(r)}
}

// SideFromProto maps the wire detector onto a model side. SIDE_UNSPECIFIED
// is rejected.
func SideFromProto(in msavizv1.Side) (model.Side, error) {
	switch in {
	case msavizv1.Side_SIDE_NRS1:
		return model.NRS1, nil
	case msavizv1.Side_SIDE_NRS2:
		return model.NRS2, nil
	}
	return 0, fmt.Errorf("%w: side must be NRS1 or NRS2, got %s", ErrInvalidRequest, in)
}

// SideToProto is the inverse of SideFromProto.
func SideToProto(side model.Side) msavizv1.Side {
	switch side {
	case model.NRS1:
		return msavizv1.Side_SIDE_NRS1
	case model.NRS2:
		return msavizv1.Side_SIDE_NRS2
	}
	return msavizv1.Side_SIDE_UNSPECIFIED
}

func limitToProto(l model.Limit) *msavizv1.Limit {
	if !l.Valid {
		return &msavizv1.Limit{}
	}
	return &msavizv1.Limit{Valid: true, Min: l.Min, Max: l.Max}
}

// LimitFromProto reads a wire limit; invalid limits come back masked.
func LimitFromProto(in *msavizv1.Limit) model.Limit {
	if !in.GetValid() {
		return model.Limit{}
	}
	return model.Limit{Min: in.GetMin(), Max: in.GetMax(), Valid: true}
}

func shutterLimitsToProto(sh model.Shutter, lim model.ShutterLimits) *msavizv1.ShutterLimits {
	return &msavizv1.ShutterLimits{
		Shutter: ShutterToProto(sh),
		Nrs1:    limitToProto(lim[model.NRS1]),
		Nrs2:    limitToProto(lim[model.NRS2]),
	}
}

func rowsToProto(rows []wavetable.Row) ([]*msavizv1.ShutterLimits, error) {
	out := make([]*msavizv1.ShutterLimits, 0, len(rows))
	for _, r := range rows {
		sh, err := model.NewShutter(r.Quadrant, r.Column, r.Row)
		if err != nil {
			return nil, err
		}
		out = append(out, shutterLimitsToProto(sh, r.Limits))
	}
	return out, nil
}

func instrumentFields(filter, grating string) error {
	if filter == "" || grating == "" {
		return fmt.Errorf("%w: filter and grating are required", ErrInvalidRequest)
	}
	return nil
}
