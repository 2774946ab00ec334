package wavesvc

import (
	"context"
	"errors"
	"math"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/signalsfoundry/msaviz/core"
	msavizv1 "github.com/signalsfoundry/msaviz/internal/genproto/msaviz/v1"
	"github.com/signalsfoundry/msaviz/internal/logging"
	"github.com/signalsfoundry/msaviz/internal/refdatatest"
	"github.com/signalsfoundry/msaviz/model"
	"github.com/signalsfoundry/msaviz/refdata"
)

type testEnv struct {
	ctx    context.Context
	client msavizv1.WavelengthServiceClient
}

func newTestEnv(t *testing.T, opts ...ServerOption) *testEnv {
	t.Helper()

	reg, err := refdata.LoadFS(refdatatest.FS())
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		RequestIDUnaryServerInterceptor(logging.Noop()),
		TracingUnaryServerInterceptor(),
	))
	msavizv1.RegisterWavelengthServiceServer(srv, NewServer(reg, logging.Noop(), opts...))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("grpc.NewClient: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return &testEnv{ctx: ctx, client: msavizv1.NewWavelengthServiceClient(conn)}
}

func evaluateRequest(filter, grating string, sh model.Shutter, side model.Side) *msavizv1.EvaluateRequest {
	return &msavizv1.EvaluateRequest{
		Filter:  filter,
		Grating: grating,
		Shutter: ShutterToProto(sh),
		Side:    SideToProto(side),
	}
}

func TestEvaluateReturnsIlluminatedSpan(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.client.Evaluate(env.ctx, evaluateRequest("F070LP", "G140M", refdatatest.Shutter(1, 1, 1), model.NRS1))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !resp.GetPresent() || resp.GetFirstPixel() != 0 || resp.GetLastPixel() != model.Pixels-1 || len(resp.GetWavelengths()) != model.Pixels {
		t.Fatalf("resp = present %v span [%d,%d] n=%d", resp.GetPresent(), resp.GetFirstPixel(), resp.GetLastPixel(), len(resp.GetWavelengths()))
	}
	if got := resp.GetWavelengths()[100]; math.Abs(got-(refdatatest.Q1NRS1Start+100*refdatatest.GratingDLDS)) > 1e-7 {
		t.Fatalf("pixel 100 = %v", got)
	}

	prism, err := env.client.Evaluate(env.ctx, evaluateRequest("clear", "prism", refdatatest.Shutter(1, 1, 1), model.NRS1))
	if err != nil {
		t.Fatalf("Evaluate prism: %v", err)
	}
	if prism.GetFirstPixel() != 500 || prism.GetLastPixel() != 1500 || len(prism.GetWavelengths()) != 1001 {
		t.Fatalf("prism span = [%d,%d] n=%d", prism.GetFirstPixel(), prism.GetLastPixel(), len(prism.GetWavelengths()))
	}
}

func TestEvaluateMissingSideIsAbsent(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.client.Evaluate(env.ctx, evaluateRequest("f070lp", "g140m", refdatatest.Shutter(2, 5, 5), model.NRS1))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if resp.GetPresent() || resp.GetDiverged() || len(resp.GetWavelengths()) != 0 {
		t.Fatalf("resp = %v, want absent", resp)
	}
}

func TestEvaluateReportsDivergence(t *testing.T) {
	env := newTestEnv(t, WithSolverOptions(core.WithDivergenceLimit(1.0)))

	resp, err := env.client.Evaluate(env.ctx, evaluateRequest("f070lp", "g140m", refdatatest.Shutter(1, 1, 1), model.NRS1))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if resp.GetPresent() || !resp.GetDiverged() || !strings.Contains(resp.GetReason(), "exceeds bound") {
		t.Fatalf("resp = %v, want diverged", resp)
	}
}

func TestLimitsMasksAbsentSides(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.client.Limits(env.ctx, &msavizv1.LimitsRequest{
		Filter:  "f070lp",
		Grating: "g140m",
		Shutters: []*msavizv1.Shutter{
			ShutterToProto(refdatatest.Shutter(1, 1, 1)),
			ShutterToProto(refdatatest.Shutter(2, 5, 5)),
		},
	})
	if err != nil {
		t.Fatalf("Limits: %v", err)
	}
	if len(resp.GetLimits()) != 2 {
		t.Fatalf("limits = %d, want 2", len(resp.GetLimits()))
	}

	first := resp.GetLimits()[0]
	sh, err := ShutterFromProto(first.GetShutter())
	if err != nil || sh != refdatatest.Shutter(1, 1, 1) {
		t.Fatalf("first shutter = %v (%v)", first.GetShutter(), err)
	}
	nrs2Lo := refdatatest.Q1NRS2Start - refdatatest.GratingDLDS*float64(model.Pixels-1)
	checkLimit(t, LimitFromProto(first.GetNrs1()), refdatatest.Q1NRS1Start, refdatatest.G140MHi)
	checkLimit(t, LimitFromProto(first.GetNrs2()), nrs2Lo, refdatatest.G140MHi)

	if resp.GetLimits()[1].GetNrs1().GetValid() {
		t.Fatalf("Q2 NRS1 should be masked: %v", resp.GetLimits()[1])
	}
}

func checkLimit(t *testing.T, got model.Limit, lo, hi float64) {
	t.Helper()
	if !got.Valid || math.Abs(got.Min-lo) > 1e-6 || math.Abs(got.Max-hi) > 1e-6 {
		t.Fatalf("limit = %+v, want [%v, %v]", got, lo, hi)
	}
}

func TestTableFromConfigText(t *testing.T) {
	env := newTestEnv(t)
	grid := refdatatest.ConfigGrid("1", map[model.Shutter]string{
		refdatatest.Shutter(1, 1, 1): "0",
		refdatatest.Shutter(3, 4, 5): "s",
	})

	resp, err := env.client.Table(env.ctx, &msavizv1.TableRequest{
		Filter: "f070lp", Grating: "g140m", Name: "upload.csv", Config: grid,
	})
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if resp.GetConfigFile() != "upload.csv" || len(resp.GetRows()) != 1 {
		t.Fatalf("table = %v", resp)
	}
	if lim := LimitFromProto(resp.GetRows()[0].GetNrs1()); !lim.Valid || math.Abs(lim.Min-0.8) > 1e-6 {
		t.Fatalf("row limits = %v", resp.GetRows()[0])
	}
	for _, want := range []string{"## MSA Config File: upload.csv", "## 1 open shutters", "NRS1-min", "0.8000"} {
		if !strings.Contains(resp.GetText(), want) {
			t.Fatalf("table text missing %q:\n%s", want, resp.GetText())
		}
	}
}

func TestListInstruments(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.client.ListInstruments(env.ctx, &msavizv1.ListInstrumentsRequest{})
	if err != nil {
		t.Fatalf("ListInstruments: %v", err)
	}
	got := resp.GetInstruments()
	if len(got) != 3 || got[1].GetFilter() != "f070lp" || got[1].GetGrating() != "g140m" {
		t.Fatalf("instruments = %v", got)
	}
	if got[1].GetScienceLo() != refdatatest.G140MLo || got[1].GetScienceHi() != refdatatest.G140MHi {
		t.Fatalf("science range = [%v, %v]", got[1].GetScienceLo(), got[1].GetScienceHi())
	}
}

func TestRequestErrorsMapToStatusCodes(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.client.Evaluate(env.ctx, evaluateRequest("f170lp", "g235m", refdatatest.Shutter(1, 1, 1), model.NRS1))
	if status.Code(err) != codes.NotFound {
		t.Fatalf("unknown instrument code = %s, want NotFound", status.Code(err))
	}

	shutter := &msavizv1.Shutter{Quadrant: 1, Column: 1, Row: 1}
	bad := map[string]*msavizv1.EvaluateRequest{
		"no filter":  {Grating: "g140m", Shutter: shutter, Side: msavizv1.Side_SIDE_NRS1},
		"no shutter": {Filter: "f070lp", Grating: "g140m", Side: msavizv1.Side_SIDE_NRS1},
		"quadrant 5": {Filter: "f070lp", Grating: "g140m", Shutter: &msavizv1.Shutter{Quadrant: 5, Column: 1, Row: 1}, Side: msavizv1.Side_SIDE_NRS1},
		"row 0":      {Filter: "f070lp", Grating: "g140m", Shutter: &msavizv1.Shutter{Quadrant: 1, Column: 1}, Side: msavizv1.Side_SIDE_NRS1},
		"no side":    {Filter: "f070lp", Grating: "g140m", Shutter: shutter},
		"bad side":   {Filter: "f070lp", Grating: "g140m", Shutter: shutter, Side: msavizv1.Side(7)},
	}
	for name, in := range bad {
		_, err := env.client.Evaluate(env.ctx, in)
		if status.Code(err) != codes.InvalidArgument {
			t.Fatalf("%s: code = %s, want InvalidArgument", name, status.Code(err))
		}
	}

	_, err = env.client.Limits(env.ctx, &msavizv1.LimitsRequest{Filter: "f070lp", Grating: "g140m"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("empty limits code = %s, want InvalidArgument", status.Code(err))
	}

	_, err = env.client.Table(env.ctx, &msavizv1.TableRequest{Filter: "f070lp", Grating: "g140m", Config: "# header\nx,x\n"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("malformed config code = %s, want InvalidArgument", status.Code(err))
	}
}

func TestSideConversionsRoundTrip(t *testing.T) {
	for _, side := range []model.Side{model.NRS1, model.NRS2} {
		got, err := SideFromProto(SideToProto(side))
		if err != nil || got != side {
			t.Fatalf("SideFromProto(SideToProto(%s)) = %s, %v", side, got, err)
		}
	}
	if _, err := SideFromProto(msavizv1.Side_SIDE_UNSPECIFIED); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("unspecified side error = %v", err)
	}
}

func TestRequestIDInterceptorUsesMetadata(t *testing.T) {
	var gotID string
	var gotLogger bool
	interceptor := RequestIDUnaryServerInterceptor(logging.Noop())

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-request-id", "req-123"))
	info := &grpc.UnaryServerInfo{FullMethod: msavizv1.WavelengthService_Evaluate_FullMethodName}
	_, err := interceptor(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		gotID = logging.RequestIDFromContext(ctx)
		gotLogger = logging.FromContext(ctx, nil) != nil
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if gotID != "req-123" || !gotLogger {
		t.Fatalf("request id = %q, logger attached = %v", gotID, gotLogger)
	}

	_, _ = interceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		gotID = logging.RequestIDFromContext(ctx)
		return nil, nil
	})
	if gotID == "" || gotID == "req-123" {
		t.Fatalf("generated request id = %q", gotID)
	}
}

func TestTracingInterceptorRecordsServerSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	interceptor := TracingUnaryServerInterceptor()
	ctx := logging.ContextWithRequestID(context.Background(), "req-9")
	info := &grpc.UnaryServerInfo{FullMethod: msavizv1.WavelengthService_Limits_FullMethodName}
	_, _ = interceptor(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.InvalidArgument, "nope")
	})

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	span := spans[0]
	if span.Name() != "WavelengthService/Limits" {
		t.Fatalf("span name = %q", span.Name())
	}
	attrs := map[string]string{}
	for _, kv := range span.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs["rpc.method"] != "Limits" || attrs["request_id"] != "req-9" {
		t.Fatalf("attributes = %v", attrs)
	}
	if len(span.Events()) == 0 {
		t.Fatal("expected the error to be recorded on the span")
	}
}

type countingRecorder struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (r *countingRecorder) ObserveEvaluation(side model.Side, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes[side.String()+"/"+outcome]++
}

func (r *countingRecorder) ObserveCompute(string, int, time.Duration) {}

func TestServerRecordsEvaluationOutcomes(t *testing.T) {
	rec := &countingRecorder{outcomes: map[string]int{}}
	env := newTestEnv(t, WithMetricsRecorder(rec))

	_, err := env.client.Limits(env.ctx, &msavizv1.LimitsRequest{
		Filter:  "f070lp",
		Grating: "g140m",
		Shutters: []*msavizv1.Shutter{
			ShutterToProto(refdatatest.Shutter(1, 1, 1)),
			ShutterToProto(refdatatest.Shutter(2, 5, 5)),
		},
	})
	if err != nil {
		t.Fatalf("Limits: %v", err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.outcomes["NRS1/spectrum"] != 1 || rec.outcomes["NRS1/no_spectrum"] != 1 || rec.outcomes["NRS2/spectrum"] != 2 {
		t.Fatalf("outcomes = %v", rec.outcomes)
	}
}
