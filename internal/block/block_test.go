package block

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/SyedDaiam9101/policy-block/internal/host"
	"github.com/SyedDaiam9101/policy-block/internal/inference"
)

// identityLoader returns a pass-through engine so step behavior can be
// tested without the ONNX shared library.
func identityLoader(modelPath string, obsDim, actDim int) (inference.Engine, error) {
	return inference.NewIdentity(obsDim, actDim)
}

func failingLoader(modelPath string, obsDim, actDim int) (inference.Engine, error) {
	return nil, fmt.Errorf("not a valid model file")
}

func newDriver(b *Block, modelPath string, obsDim, actDim int) *host.Driver {
	return host.NewDriver(b,
		host.StringParam(modelPath),
		host.IntParam(obsDim),
		host.IntParam(actDim),
	)
}

func TestConfigure_DeclaresChannelWidths(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 2}, {17, 5}} {
		driver := newDriver(NewWithLoader(identityLoader), "model.onnx", dims[0], dims[1])
		if err := driver.Configure(); err != nil {
			t.Fatalf("Configure(%v) failed: %v", dims, err)
		}

		spec := driver.Instance().Spec()
		if len(spec.Inputs) != 1 || spec.Inputs[0].Width != dims[0] {
			t.Errorf("dims %v: input ports = %+v, want one port of width %d", dims, spec.Inputs, dims[0])
		}
		if len(spec.Outputs) != 1 || spec.Outputs[0].Width != dims[1] {
			t.Errorf("dims %v: output ports = %+v, want one port of width %d", dims, spec.Outputs, dims[1])
		}
		if !spec.DirectFeedthrough {
			t.Errorf("dims %v: direct feedthrough not declared", dims)
		}
		if spec.WorkSlots != 1 {
			t.Errorf("dims %v: work slots = %d, want 1", dims, spec.WorkSlots)
		}
		if spec.SampleTime != host.SampleInherited {
			t.Errorf("dims %v: sample time = %v, want inherited", dims, spec.SampleTime)
		}
	}
}

func TestConfigure_RejectsNonPositiveDims(t *testing.T) {
	cases := [][2]int{{0, 2}, {-1, 2}, {3, 0}, {3, -5}, {0, 0}}
	for _, dims := range cases {
		driver := newDriver(NewWithLoader(identityLoader), "model.onnx", dims[0], dims[1])
		err := driver.Configure()
		if err == nil {
			t.Fatalf("Configure(%v) should fail", dims)
		}

		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("dims %v: error = %v, want ConfigurationError", dims, err)
		}

		spec := driver.Instance().Spec()
		if len(spec.Inputs) != 0 || len(spec.Outputs) != 0 {
			t.Errorf("dims %v: ports declared despite configuration error", dims)
		}
	}
}

func TestConfigure_RejectsParamCountMismatch(t *testing.T) {
	driver := host.NewDriver(NewWithLoader(identityLoader),
		host.StringParam("model.onnx"),
		host.IntParam(3),
	)
	err := driver.Configure()

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigurationError", err)
	}
}

func TestStart_EmptyPathIsLoadError(t *testing.T) {
	driver := newDriver(NewWithLoader(identityLoader), "", 3, 2)
	if err := driver.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	err := driver.Start()
	var loadErr *ModelLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want ModelLoadError", err)
	}
	if driver.Instance().Work(0) != nil {
		t.Error("engine handle should be empty after failed start")
	}
}

func TestStart_UnloadableArtifactIsLoadError(t *testing.T) {
	driver := newDriver(NewWithLoader(failingLoader), "corrupt.onnx", 3, 2)
	if err := driver.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	err := driver.Start()
	var loadErr *ModelLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want ModelLoadError", err)
	}
	if driver.Instance().Work(0) != nil {
		t.Error("engine handle should be empty after failed start")
	}
}

func TestStart_MetadataMismatchIsLoadError(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "policy.onnx")
	if err := os.WriteFile(modelPath, []byte("model"), 0o644); err != nil {
		t.Fatal(err)
	}
	sidecar := filepath.Join(dir, "policy.json")
	if err := os.WriteFile(sidecar, []byte(`{"algorithm":"SAC","obs_dim":8,"act_dim":2}`), 0o644); err != nil {
		t.Fatal(err)
	}

	driver := newDriver(NewWithLoader(identityLoader), modelPath, 3, 2)
	if err := driver.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	err := driver.Start()
	var loadErr *ModelLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want ModelLoadError", err)
	}
	if driver.Instance().Work(0) != nil {
		t.Error("engine handle should be empty after metadata mismatch")
	}
}

func TestStart_MetadataMatchSucceeds(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "policy.onnx")
	if err := os.WriteFile(modelPath, []byte("model"), 0o644); err != nil {
		t.Fatal(err)
	}
	sidecar := filepath.Join(dir, "policy.json")
	if err := os.WriteFile(sidecar, []byte(`{"algorithm":"SAC","obs_dim":3,"act_dim":2}`), 0o644); err != nil {
		t.Fatal(err)
	}

	driver := newDriver(NewWithLoader(identityLoader), modelPath, 3, 2)
	if err := driver.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := driver.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if driver.Instance().Work(0) == nil {
		t.Error("engine handle should be set after successful start")
	}
}

func TestStep_WithoutLoadedModelFailsEveryTime(t *testing.T) {
	driver := newDriver(NewWithLoader(failingLoader), "corrupt.onnx", 3, 2)
	if err := driver.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := driver.Start(); err == nil {
		t.Fatal("Start should fail")
	}

	for i := 0; i < 3; i++ {
		err := driver.Step()
		var notLoaded *ModelNotLoadedError
		if !errors.As(err, &notLoaded) {
			t.Fatalf("step %d: error = %v, want ModelNotLoadedError", i, err)
		}
	}
}

func TestStep_DeterministicForIdenticalInput(t *testing.T) {
	driver := newDriver(NewWithLoader(identityLoader), "model.onnx", 2, 2)
	if err := driver.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := driver.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer driver.Terminate()

	in := driver.Instance()
	in.SetInput(0, []float64{0.0, 0.0})

	if err := driver.Step(); err != nil {
		t.Fatalf("first Step failed: %v", err)
	}
	first := append([]float64(nil), in.Output(0)...)

	if err := driver.Step(); err != nil {
		t.Fatalf("second Step failed: %v", err)
	}
	second := in.Output(0)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("output[%d] differs across identical steps: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestStep_OutputWidthMatchesActionDim(t *testing.T) {
	driver := newDriver(NewWithLoader(identityLoader), "model.onnx", 3, 2)
	if err := driver.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := driver.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer driver.Terminate()

	in := driver.Instance()
	for _, obs := range [][]float64{
		{0, 0, 0},
		{1.5, -2.25, 7},
		{1e6, -1e6, 0.001},
	} {
		in.SetInput(0, obs)
		if err := driver.Step(); err != nil {
			t.Fatalf("Step(%v) failed: %v", obs, err)
		}
		out := in.Output(0)
		if len(out) != 2 {
			t.Fatalf("Step(%v): output length = %d, want 2", obs, len(out))
		}
		// Identity transform passes the first two values through, cast
		// down to float32 and back.
		for i := 0; i < 2; i++ {
			want := float64(float32(obs[i]))
			if out[i] != want {
				t.Errorf("Step(%v): output[%d] = %v, want %v", obs, i, out[i], want)
			}
		}
	}
}

func TestStep_EngineFailureIsInferenceError(t *testing.T) {
	mock := inference.NewMock(3, 2)
	loader := func(modelPath string, obsDim, actDim int) (inference.Engine, error) {
		return mock, nil
	}
	driver := newDriver(NewWithLoader(loader), "model.onnx", 3, 2)
	if err := driver.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := driver.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer driver.Terminate()

	mock.SetError("runtime fault")
	err := driver.Step()
	var infErr *InferenceError
	if !errors.As(err, &infErr) {
		t.Fatalf("error = %v, want InferenceError", err)
	}
}

func TestTerminate_AfterFailedStartIsNoOp(t *testing.T) {
	driver := newDriver(NewWithLoader(failingLoader), "corrupt.onnx", 3, 2)
	if err := driver.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := driver.Start(); err == nil {
		t.Fatal("Start should fail")
	}

	if err := driver.Terminate(); err != nil {
		t.Errorf("Terminate after failed start: %v", err)
	}
	if err := driver.Terminate(); err != nil {
		t.Errorf("second Terminate: %v", err)
	}
}

func TestTerminate_ReleasesEngineExactlyOnce(t *testing.T) {
	mock := inference.NewMock(3, 2)
	loader := func(modelPath string, obsDim, actDim int) (inference.Engine, error) {
		return mock, nil
	}
	driver := newDriver(NewWithLoader(loader), "model.onnx", 3, 2)
	if err := driver.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := driver.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := driver.Terminate(); err != nil {
		t.Fatalf("Terminate failed: %v", err)
	}
	if err := driver.Terminate(); err != nil {
		t.Fatalf("second Terminate failed: %v", err)
	}
	if mock.Closed != 1 {
		t.Errorf("Close called %d times, want exactly 1", mock.Closed)
	}
	if driver.Instance().Work(0) != nil {
		t.Error("engine handle should be empty after terminate")
	}
}
