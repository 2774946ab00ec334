package wavetable

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/signalsfoundry/msaviz/internal/refdatatest"
	"github.com/signalsfoundry/msaviz/model"
	"github.com/signalsfoundry/msaviz/refdata"
)

func sampleLimits() map[model.Shutter]model.ShutterLimits {
	return map[model.Shutter]model.ShutterLimits{
		refdatatest.Shutter(2, 30, 4): {
			{},
			{Min: 1.0, Max: 1.27, Valid: true},
		},
		refdatatest.Shutter(1, 1, 1): {
			{Min: 0.8, Max: 1.27, Valid: true},
			{Min: 0.73590001, Max: 1.27, Valid: true},
		},
		refdatatest.Shutter(4, 365, 171): {},
	}
}

func TestWriteToLayout(t *testing.T) {
	limits := map[model.Shutter]model.ShutterLimits{
		refdatatest.Shutter(1, 1, 1): {
			{Min: 0.8, Max: 1.27, Valid: true},
			{Min: 0.7359, Max: 1.27, Valid: true},
		},
		refdatatest.Shutter(3, 120, 17): {
			{Min: 0.9, Max: 1.1, Valid: true},
			{},
		},
	}
	table := Build(limits, Meta{ConfigFile: "cfg.csv", Filter: "f070lp", Grating: "g140m"})

	var buf bytes.Buffer
	n, err := table.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Fatalf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}

	want := strings.Join([]string{
		"## MSA Config File: cfg.csv",
		"## 2 open shutters",
		"## Filter: f070lp",
		"## Grating: g140m",
		"",
		"Quadrant Column Row NRS1-min NRS1-max NRS2-min NRS2-max",
		"-------- ------ --- -------- -------- -------- --------",
		"       1      1   1   0.8000   1.2700   0.7359   1.2700",
		"       3    120  17   0.9000   1.1000       --       --",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("table text mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSortsRows(t *testing.T) {
	table := Build(sampleLimits(), Meta{})
	var got [][3]int
	for _, r := range table.Rows {
		got = append(got, [3]int{r.Quadrant, r.Column, r.Row})
	}
	want := [][3]int{{1, 1, 1}, {2, 30, 4}, {4, 365, 171}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("row order mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	meta := Meta{ConfigFile: "/data/msa config.csv", Filter: "f070lp", Grating: "g140m"}
	table := Build(sampleLimits(), meta)

	var buf bytes.Buffer
	if _, err := table.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	opt := cmpopts.EquateApprox(0, 5e-5)
	if diff := cmp.Diff(table, parsed, opt); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsMalformedText(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"wrong columns": "A B C\n- - -\n",
		"no dashes":     "Quadrant Column Row NRS1-min NRS1-max NRS2-min NRS2-max\n",
		"bad number": "Quadrant Column Row NRS1-min NRS1-max NRS2-min NRS2-max\n" +
			"-------- ------ --- -------- -------- -------- --------\n" +
			"       1      1   1   abcdef   1.2700       --       --\n",
		"bad shutter": "Quadrant Column Row NRS1-min NRS1-max NRS2-min NRS2-max\n" +
			"-------- ------ --- -------- -------- -------- --------\n" +
			"       5      1   1       --       --       --       --\n",
		"count mismatch": "## 3 open shutters\n\n" +
			"Quadrant Column Row NRS1-min NRS1-max NRS2-min NRS2-max\n" +
			"-------- ------ --- -------- -------- -------- --------\n" +
			"       1      1   1       --       --       --       --\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(text)); !errors.Is(err, ErrMalformedTable) && !errors.Is(err, model.ErrShutterOutOfRange) {
				t.Fatalf("Parse error = %v", err)
			}
		})
	}
}

func TestCalculateBuildsTableFromConfig(t *testing.T) {
	reg, err := refdata.LoadFS(refdatatest.FS())
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.csv")
	grid := refdatatest.ConfigGrid("1", map[model.Shutter]string{refdatatest.Shutter(1, 1, 1): "0"})
	if err := os.WriteFile(path, []byte(grid), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	table, err := Calculate(context.Background(), reg, path, "f070lp", "g140m")
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if table.Meta.ConfigFile != path || len(table.Rows) != 1 {
		t.Fatalf("table = %+v", table)
	}
	lim := table.Rows[0].Limits
	if math.Abs(lim[model.NRS1].Min-0.8) > 1e-6 || math.Abs(lim[model.NRS2].Min-0.7359) > 1e-6 {
		t.Fatalf("limits = %+v", lim)
	}
}
