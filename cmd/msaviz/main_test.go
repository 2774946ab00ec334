package main

import (
	"bytes"
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	msavizv1 "github.com/signalsfoundry/msaviz/internal/genproto/msaviz/v1"
	"github.com/signalsfoundry/msaviz/internal/logging"
	"github.com/signalsfoundry/msaviz/internal/refdatatest"
	"github.com/signalsfoundry/msaviz/internal/settings"
	"github.com/signalsfoundry/msaviz/internal/wavetable"
	"github.com/signalsfoundry/msaviz/model"
	"github.com/signalsfoundry/msaviz/refdata"
)

func refDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := refdatatest.WriteDir(dir); err != nil {
		t.Fatalf("WriteDir: %v", err)
	}
	return dir
}

func configFile(t *testing.T, set map[model.Shutter]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.csv")
	if err := os.WriteFile(path, []byte(refdatatest.ConfigGrid("1", set)), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--env-file=", "--log-level=warn"}, args...))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func TestTableCommandWritesTable(t *testing.T) {
	ref := refDir(t)
	cfg := configFile(t, map[model.Shutter]string{refdatatest.Shutter(1, 1, 1): "0"})

	out, _, err := execute(t, "table", cfg, "--filter", "f070lp", "--grating", "g140m", "--refdata", ref)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	table, err := wavetable.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("Parse output: %v\n%s", err, out)
	}
	if table.Meta.ConfigFile != cfg || table.Meta.Filter != "f070lp" || len(table.Rows) != 1 {
		t.Fatalf("table = %+v", table)
	}
	if lim := table.Rows[0].Limits[model.NRS1]; !lim.Valid || lim.Min != 0.8 || lim.Max != 1.27 {
		t.Fatalf("NRS1 limits = %+v", lim)
	}
}

func TestTableCommandWritesOutputFile(t *testing.T) {
	ref := refDir(t)
	cfg := configFile(t, map[model.Shutter]string{refdatatest.Shutter(1, 1, 1): "0"})
	dest := filepath.Join(t.TempDir(), "limits.txt")

	out, stderr, err := execute(t, "table", cfg, "--filter", "f070lp", "--grating", "g140m", "--refdata", ref, "-o", dest, "--progress")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if out != "" {
		t.Fatalf("stdout should be empty, got %q", out)
	}
	if !strings.Contains(stderr, "evaluated 1/1 shutters") {
		t.Fatalf("progress missing from stderr: %q", stderr)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "## 1 open shutters") {
		t.Fatalf("output file = %s", data)
	}
}

func TestTableCommandRejectsUnknownInstrument(t *testing.T) {
	ref := refDir(t)
	cfg := configFile(t, nil)

	_, _, err := execute(t, "table", cfg, "--filter", "f170lp", "--grating", "g235m", "--refdata", ref)
	if !errors.Is(err, refdata.ErrUnknownInstrument) {
		t.Fatalf("error = %v, want ErrUnknownInstrument", err)
	}
}

func TestEvaluateCommand(t *testing.T) {
	ref := refDir(t)

	out, _, err := execute(t, "evaluate", "1,1,1", "--filter", "f070lp", "--grating", "g140m", "--side", "nrs1", "--refdata", ref)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	for _, want := range []string{"Q1(1,1,1) f070lp/g140m", "NRS1 pixels 0-2047", "science 0.8000-1.2700"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "NRS2") {
		t.Fatalf("--side nrs1 should skip NRS2:\n%s", out)
	}

	out, _, err = execute(t, "evaluate", "1,2,1", "--filter", "clear", "--grating", "prism", "--side", "NRS2", "--pixels", "--refdata", ref)
	if err != nil {
		t.Fatalf("evaluate prism: %v", err)
	}
	var pixelLines int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "NRS2 ") && !strings.Contains(line, "pixels") {
			pixelLines++
		}
	}
	if pixelLines != 10 {
		t.Fatalf("pixel lines = %d, want 10:\n%s", pixelLines, out)
	}
}

func TestEvaluateCommandRejectsBadShutter(t *testing.T) {
	ref := refDir(t)
	for _, arg := range []string{"1,1", "5,1,1", "a,b,c"} {
		if _, _, err := execute(t, "evaluate", arg, "--filter", "f070lp", "--grating", "g140m", "--refdata", ref); err == nil {
			t.Fatalf("evaluate %q should fail", arg)
		}
	}
}

func TestInstrumentsCommand(t *testing.T) {
	out, _, err := execute(t, "instruments", "--refdata", refDir(t))
	if err != nil {
		t.Fatalf("instruments: %v", err)
	}
	for _, want := range []string{"FILTER", "clear", "prism", "f070lp", "0.70", "1.27"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestServeStartupSmoke(t *testing.T) {
	reg, err := refdata.LoadFS(refdatatest.FS())
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	s := settings.Default()
	s.Server.MetricsAddr = ""

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx, s, reg, logging.Noop(), lis, prometheus.NewRegistry())
	}()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("grpc.NewClient: %v", err)
	}
	defer conn.Close()

	resp, err := msavizv1.NewWavelengthServiceClient(conn).ListInstruments(ctx, &msavizv1.ListInstrumentsRequest{})
	if err != nil {
		t.Fatalf("ListInstruments: %v", err)
	}
	if len(resp.GetInstruments()) != 3 {
		t.Fatalf("instruments = %v", resp.GetInstruments())
	}

	cancel()
	if err := <-errCh; err != nil {
		t.Fatalf("server returned error: %v", err)
	}
}
