package core

import (
	"errors"
	"fmt"

	"github.com/signalsfoundry/msaviz/model"
)

var (
	// ErrConfigNotFound is returned when an MSA configuration file cannot be opened.
	ErrConfigNotFound = errors.New("msa configuration not found")
	// ErrFileFormat marks a truncated or malformed MSA configuration file.
	ErrFileFormat = errors.New("malformed msa configuration")
	// ErrIntegrationDivergence marks a wavelength solution that left the
	// physically plausible range.
	ErrIntegrationDivergence = errors.New("wavelength integration diverged")
	// ErrNotReady is returned by MSAConfig before both an instrument and a
	// shutter configuration have been supplied.
	ErrNotReady = errors.New("msa configuration incomplete")
	// ErrInvalidSide is returned for a detector side other than NRS1 or NRS2.
	ErrInvalidSide = errors.New("invalid detector side")
)

// FileFormatError locates a problem in an MSA configuration file. Line is
// 1-based and counts the header; Column is 1-based, zero when the whole line
// is at fault.
type FileFormatError struct {
	Path   string
	Line   int
	Column int
	Code   string
	Reason string
}

func (e *FileFormatError) Error() string {
	where := e.Path
	if where == "" {
		where = "msa config"
	}
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", where, e.Line)
		if e.Column > 0 {
			where = fmt.Sprintf("%s:%d", where, e.Column)
		}
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s %q", where, e.Reason, e.Code)
	}
	return fmt.Sprintf("%s: %s", where, e.Reason)
}

func (e *FileFormatError) Is(target error) bool { return target == ErrFileFormat }

// DivergenceError reports a shutter whose integrated wavelengths exceeded
// the plausibility bound.
type DivergenceError struct {
	Shutter model.Shutter
	Side    model.Side
	Max     float64
	Limit   float64
	// Err is the integrator failure, if the solution could not be finished.
	Err error
}

func (e *DivergenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: integration failed: %v", e.Shutter, e.Side, e.Err)
	}
	return fmt.Sprintf("%s %s: wavelength %g µm exceeds bound %g µm", e.Shutter, e.Side, e.Max, e.Limit)
}

func (e *DivergenceError) Unwrap() error { return e.Err }

func (e *DivergenceError) Is(target error) bool { return target == ErrIntegrationDivergence }
