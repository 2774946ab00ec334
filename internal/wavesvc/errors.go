package wavesvc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/signalsfoundry/msaviz/core"
	"github.com/signalsfoundry/msaviz/model"
	"github.com/signalsfoundry/msaviz/refdata"
)

// ErrInvalidRequest marks a request with missing or malformed fields.
var ErrInvalidRequest = errors.New("invalid request")

// ToStatusError maps msaviz errors onto gRPC status codes.
func ToStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())

	case errors.Is(err, refdata.ErrUnknownInstrument),
		errors.Is(err, core.ErrConfigNotFound):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, model.ErrShutterOutOfRange),
		errors.Is(err, core.ErrInvalidSide),
		errors.Is(err, core.ErrFileFormat):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, core.ErrNotReady),
		errors.Is(err, core.ErrIntegrationDivergence):
		return status.Error(codes.FailedPrecondition, err.Error())

	default:
		return status.Error(codes.Internal, err.Error())
	}
}
