package core

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signalsfoundry/msaviz/internal/refdatatest"
	"github.com/signalsfoundry/msaviz/model"
)

func TestParseAllInactiveGrid(t *testing.T) {
	cfg, err := ParseMSAConfig(strings.NewReader(refdatatest.ConfigGrid("x", nil)))
	if err != nil {
		t.Fatalf("ParseMSAConfig: %v", err)
	}
	if len(cfg.Open) != 0 {
		t.Fatalf("len(Open) = %d, want 0", len(cfg.Open))
	}
	if len(cfg.All) != model.ShutterCount {
		t.Fatalf("len(All) = %d, want %d", len(cfg.All), model.ShutterCount)
	}
	for g, st := range cfg.All {
		if st != model.StateInactive {
			t.Fatalf("%s = %s, want inactive", g, st)
		}
	}
}

func TestParseAllOpenGrid(t *testing.T) {
	cfg, err := ParseMSAConfig(strings.NewReader(refdatatest.ConfigGrid("0", nil)))
	if err != nil {
		t.Fatalf("ParseMSAConfig: %v", err)
	}
	if len(cfg.Open) != model.ShutterCount {
		t.Fatalf("len(Open) = %d, want %d", len(cfg.Open), model.ShutterCount)
	}
	if n := cfg.Open.Stuck(); n != 0 {
		t.Fatalf("Stuck = %d, want 0", n)
	}
}

func TestParsePlacesCodesByFlatCoordinates(t *testing.T) {
	set := map[model.Shutter]string{
		refdatatest.Shutter(1, 1, 1):     "0",
		refdatatest.Shutter(2, 365, 1):   "s",
		refdatatest.Shutter(3, 17, 171):  "0",
		refdatatest.Shutter(4, 200, 100): "x",
	}
	cfg, err := ParseMSAConfig(strings.NewReader(refdatatest.ConfigGrid("1", set)))
	if err != nil {
		t.Fatalf("ParseMSAConfig: %v", err)
	}

	want := model.OpenShutters{
		{Q: 0, I: 0, J: 0}:    false,
		{Q: 1, I: 364, J: 0}:  true,
		{Q: 2, I: 16, J: 170}: false,
	}
	if diff := cmp.Diff(want, cfg.Open); diff != "" {
		t.Fatalf("Open mismatch (-want +got):\n%s", diff)
	}
	if st := cfg.All[model.QIJ{Q: 3, I: 199, J: 99}]; st != model.StateInactive {
		t.Fatalf("Q4(200,100) = %s, want inactive", st)
	}
	if st := cfg.All[model.QIJ{Q: 3, I: 0, J: 0}]; st != model.StateClosed {
		t.Fatalf("Q4(1,1) = %s, want closed", st)
	}
}

func TestParseRejectsUnknownCode(t *testing.T) {
	sh := refdatatest.Shutter(2, 10, 20)
	grid := refdatatest.ConfigGrid("x", map[model.Shutter]string{sh: "q"})

	_, err := ParseMSAConfig(strings.NewReader(grid))
	if !errors.Is(err, ErrFileFormat) {
		t.Fatalf("error = %v, want ErrFileFormat", err)
	}
	var ffe *FileFormatError
	if !errors.As(err, &ffe) {
		t.Fatalf("error %v is not a *FileFormatError", err)
	}
	x, y := sh.XY()
	if ffe.Line != x+2 || ffe.Column != y+1 || ffe.Code != "q" {
		t.Fatalf("FileFormatError = %+v, want line %d column %d", ffe, x+2, y+1)
	}
}

func TestParseRejectsMalformedGrids(t *testing.T) {
	full := refdatatest.ConfigGrid("x", nil)
	lines := strings.Split(strings.TrimSuffix(full, "\n"), "\n")

	cases := map[string]string{
		"empty":       "",
		"header only": "# header\n",
		"truncated":   strings.Join(lines[:100], "\n") + "\n",
		"short line":  strings.Join(lines[:5], "\n") + "\nx,x,x\n" + strings.Join(lines[6:], "\n") + "\n",
		"extra line":  full + lines[1] + "\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseMSAConfig(strings.NewReader(body)); !errors.Is(err, ErrFileFormat) {
				t.Fatalf("error = %v, want ErrFileFormat", err)
			}
		})
	}
}

func TestLoadMSAConfig(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMSAConfig(filepath.Join(dir, "missing.csv")); !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("missing file error = %v, want ErrConfigNotFound", err)
	}

	bad := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(bad, []byte("# header\nx,x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadMSAConfig(bad)
	var ffe *FileFormatError
	if !errors.As(err, &ffe) || ffe.Path != bad {
		t.Fatalf("bad file error = %v, want FileFormatError naming %s", err, bad)
	}

	good := filepath.Join(dir, "good.csv")
	set := map[model.Shutter]string{refdatatest.Shutter(1, 1, 1): "0"}
	if err := os.WriteFile(good, []byte(refdatatest.ConfigGrid("1", set)), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadMSAConfig(good)
	if err != nil {
		t.Fatalf("LoadMSAConfig: %v", err)
	}
	if cfg.Path != good || len(cfg.Open) != 1 {
		t.Fatalf("cfg = path %q, %d open", cfg.Path, len(cfg.Open))
	}
}
