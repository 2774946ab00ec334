package core

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/signalsfoundry/msaviz/model"
)

// ShutterConfig is a parsed MSA configuration file.
type ShutterConfig struct {
	// Path is the file the configuration was read from, if any.
	Path string
	// All holds the state of every shutter.
	All model.ShutterMap
	// Open holds the open and stuck-open shutters.
	Open model.OpenShutters
}

// LoadMSAConfig reads an MSA configuration file from disk. A missing file
// fails with ErrConfigNotFound; a malformed one with a *FileFormatError.
func LoadMSAConfig(path string) (*ShutterConfig, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open msa config: %w", err)
	}
	defer f.Close()

	cfg, err := ParseMSAConfig(f)
	if err != nil {
		var ffe *FileFormatError
		if errors.As(err, &ffe) {
			ffe.Path = path
		}
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// ParseMSAConfig reads the configuration grid: one header line followed by
// GridWidth lines of GridHeight comma-separated codes. Line k of the grid is
// flat x = k and field m is flat y = m. Codes are x (inactive), 0 (open),
// 1 (closed) and s (stuck open); anything else is a *FileFormatError.
func ParseMSAConfig(r io.Reader) (*ShutterConfig, error) {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read msa config header: %w", err)
	}
	if header == "" {
		return nil, &FileFormatError{Line: 1, Reason: "empty file"}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	all := make(model.ShutterMap, model.ShutterCount)
	x := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &FileFormatError{Line: pe.Line + 1, Column: pe.Column, Reason: pe.Err.Error()}
			}
			return nil, fmt.Errorf("read msa config: %w", err)
		}
		line, _ := cr.FieldPos(0)
		line++ // header

		if x >= model.GridWidth {
			return nil, &FileFormatError{Line: line, Reason: fmt.Sprintf("more than %d grid lines", model.GridWidth)}
		}
		if len(rec) != model.GridHeight {
			return nil, &FileFormatError{Line: line, Reason: fmt.Sprintf("got %d codes, want %d", len(rec), model.GridHeight)}
		}
		for y, raw := range rec {
			code := strings.TrimSpace(raw)
			st, ok := model.ParseShutterState(code)
			if !ok {
				return nil, &FileFormatError{Line: line, Column: y + 1, Code: code, Reason: "unrecognized shutter code"}
			}
			sh, err := model.FromXY(x, y)
			if err != nil {
				return nil, err
			}
			all[sh.QIJ()] = st
		}
		x++
	}
	if x < model.GridWidth {
		return nil, &FileFormatError{Line: x + 2, Reason: fmt.Sprintf("truncated after %d of %d grid lines", x, model.GridWidth)}
	}

	return &ShutterConfig{All: all, Open: all.Open()}, nil
}
