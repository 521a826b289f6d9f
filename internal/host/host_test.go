package host

import (
	"errors"
	"strings"
	"testing"
)

// stubBlock records callback invocations and returns configured errors.
type stubBlock struct {
	configureErr error
	startErr     error
	stepErr      error
	terminateErr error

	configureCalls int
	startCalls     int
	stepCalls      int
	terminateCalls int

	spec BlockSpec
}

func (b *stubBlock) Configure(in *Instance) error {
	b.configureCalls++
	if b.configureErr != nil {
		return b.configureErr
	}
	in.SetSpec(b.spec)
	return nil
}

func (b *stubBlock) Start(in *Instance) error {
	b.startCalls++
	return b.startErr
}

func (b *stubBlock) Step(in *Instance) error {
	b.stepCalls++
	return b.stepErr
}

func (b *stubBlock) Terminate(in *Instance) error {
	b.terminateCalls++
	return b.terminateErr
}

func simpleSpec() BlockSpec {
	return BlockSpec{
		Inputs:            []PortSpec{{Width: 3, Type: Float64}},
		Outputs:           []PortSpec{{Width: 2, Type: Float64}},
		DirectFeedthrough: true,
		WorkSlots:         1,
		SampleTime:        SampleInherited,
	}
}

func TestParams_Coercion(t *testing.T) {
	params := Params{StringParam("model.onnx"), IntParam(4), FloatParam(2.0)}

	if got := params.String(0); got != "model.onnx" {
		t.Errorf("String(0) = %q, want %q", got, "model.onnx")
	}
	if got := params.Int(1); got != 4 {
		t.Errorf("Int(1) = %d, want 4", got)
	}
	if got := params.Int(2); got != 2 {
		t.Errorf("Int(2) = %d, want 2", got)
	}

	// Type mismatches coerce silently; validation is the block's job.
	if got := params.Int(0); got != 0 {
		t.Errorf("Int on string param = %d, want 0", got)
	}
	if got := params.String(1); got != "" {
		t.Errorf("String on int param = %q, want empty", got)
	}

	// Out of range behaves like a missing parameter.
	if got := params.Int(7); got != 0 {
		t.Errorf("Int out of range = %d, want 0", got)
	}
	if got := params.String(-1); got != "" {
		t.Errorf("String out of range = %q, want empty", got)
	}
}

func TestInstance_ErrorStatusTruncated(t *testing.T) {
	in := NewInstance()
	long := strings.Repeat("x", ErrorStatusLimit+100)
	in.SetErrorStatus(long)

	if got := len(in.ErrorStatus()); got != ErrorStatusLimit {
		t.Errorf("status length = %d, want %d", got, ErrorStatusLimit)
	}
}

func TestDriver_AllocatesPortsFromSpec(t *testing.T) {
	block := &stubBlock{spec: simpleSpec()}
	driver := NewDriver(block)

	if err := driver.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	in := driver.Instance()
	if got := len(in.Input(0)); got != 3 {
		t.Errorf("input width = %d, want 3", got)
	}
	if got := len(in.Output(0)); got != 2 {
		t.Errorf("output width = %d, want 2", got)
	}
	if in.Input(1) != nil {
		t.Error("expected only one input port")
	}
	if in.Work(0) != nil {
		t.Error("work slot should start empty")
	}
}

func TestDriver_LifecycleOrdering(t *testing.T) {
	block := &stubBlock{spec: simpleSpec()}
	driver := NewDriver(block)

	if err := driver.Step(); err == nil {
		t.Error("Step before Configure should fail")
	}
	if err := driver.Start(); err == nil {
		t.Error("Start before Configure should fail")
	}

	if err := driver.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := driver.Configure(); err == nil {
		t.Error("second Configure should fail")
	}
	if err := driver.Step(); err == nil {
		t.Error("Step before Start should fail")
	}

	if err := driver.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := driver.Step(); err != nil {
		t.Errorf("Step failed: %v", err)
	}
	if driver.State() != StateLoaded {
		t.Errorf("state = %v, want %v", driver.State(), StateLoaded)
	}

	if err := driver.Terminate(); err != nil {
		t.Errorf("Terminate failed: %v", err)
	}
	if err := driver.Step(); err == nil {
		t.Error("Step after Terminate should fail")
	}
}

func TestDriver_ConfigureFailureIsTerminal(t *testing.T) {
	wantErr := errors.New("bad widths")
	block := &stubBlock{configureErr: wantErr}
	driver := NewDriver(block)

	if err := driver.Configure(); !errors.Is(err, wantErr) {
		t.Fatalf("Configure error = %v, want %v", err, wantErr)
	}
	if driver.State() != StateConfigFailed {
		t.Errorf("state = %v, want %v", driver.State(), StateConfigFailed)
	}
	if got := driver.Instance().ErrorStatus(); got != "bad widths" {
		t.Errorf("error status = %q, want %q", got, "bad widths")
	}

	// No ports were allocated, so Step and Start must not reach the block.
	if err := driver.Step(); err == nil {
		t.Error("Step after failed Configure should fail")
	}
	if err := driver.Start(); err == nil {
		t.Error("Start after failed Configure should fail")
	}
	if block.stepCalls != 0 || block.startCalls != 0 {
		t.Errorf("block invoked after failed Configure: start=%d step=%d", block.startCalls, block.stepCalls)
	}
}

func TestDriver_StartFailureStillStepsFailFast(t *testing.T) {
	block := &stubBlock{spec: simpleSpec(), startErr: errors.New("load failed")}
	driver := NewDriver(block)

	if err := driver.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := driver.Start(); err == nil {
		t.Fatal("Start should fail")
	}
	if driver.State() != StateStartFailed {
		t.Errorf("state = %v, want %v", driver.State(), StateStartFailed)
	}

	// Step is still routed to the block, which reports its own unready
	// condition.
	block.stepErr = errors.New("model not loaded")
	for i := 0; i < 3; i++ {
		if err := driver.Step(); err == nil {
			t.Fatalf("Step %d should fail", i)
		}
	}
	if block.stepCalls != 3 {
		t.Errorf("stepCalls = %d, want 3", block.stepCalls)
	}
}

func TestDriver_TerminateIdempotent(t *testing.T) {
	block := &stubBlock{spec: simpleSpec()}
	driver := NewDriver(block)

	// Terminate before Configure is a no-op and must not reach the block.
	if err := driver.Terminate(); err != nil {
		t.Errorf("Terminate unconfigured failed: %v", err)
	}
	if block.terminateCalls != 0 {
		t.Errorf("terminateCalls = %d, want 0", block.terminateCalls)
	}

	driver = NewDriver(block)
	if err := driver.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := driver.Terminate(); err != nil {
		t.Errorf("Terminate failed: %v", err)
	}
	if err := driver.Terminate(); err != nil {
		t.Errorf("second Terminate failed: %v", err)
	}
	if driver.State() != StateTerminated {
		t.Errorf("state = %v, want %v", driver.State(), StateTerminated)
	}
}

func TestDriver_StepErrorDoesNotChangeState(t *testing.T) {
	block := &stubBlock{spec: simpleSpec(), stepErr: errors.New("shape mismatch")}
	driver := NewDriver(block)

	if err := driver.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := driver.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := driver.Step(); err == nil {
		t.Fatal("Step should fail")
	}
	if driver.State() != StateLoaded {
		t.Errorf("state = %v, want %v", driver.State(), StateLoaded)
	}
	if got := driver.Instance().ErrorStatus(); got != "shape mismatch" {
		t.Errorf("error status = %q, want %q", got, "shape mismatch")
	}
}
