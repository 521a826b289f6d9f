// Package block implements the policy inference simulation block: a host
// block that loads an ONNX policy at Start and evaluates it once per tick,
// observation vector in, action vector out.
package block

import (
	"fmt"

	"github.com/SyedDaiam9101/policy-block/internal/host"
	"github.com/SyedDaiam9101/policy-block/internal/inference"
)

// Positional parameter indices.
const (
	ParamModelPath      = 0
	ParamObservationDim = 1
	ParamActionDim      = 2
	NumParams           = 3
)

// The engine handle lives in the instance's single opaque work slot.
const (
	workSlotEngine = 0
	numWorkSlots   = 1
)

// EngineLoader constructs an inference engine for a model path and the
// configured widths. The default loader opens an ONNX Runtime session;
// tests substitute mock or linear engines.
type EngineLoader func(modelPath string, obsDim, actDim int) (inference.Engine, error)

// Block is the policy inference block. It holds no per-instance state
// itself; the engine handle lives in the host instance's work slot, so one
// Block value can serve any number of instances.
type Block struct {
	load EngineLoader
}

// New creates a Block backed by ONNX Runtime.
func New() *Block {
	return &Block{
		load: func(modelPath string, obsDim, actDim int) (inference.Engine, error) {
			return inference.Open(modelPath, obsDim, actDim)
		},
	}
}

// NewWithLoader creates a Block with a custom engine loader.
func NewWithLoader(load EngineLoader) *Block {
	return &Block{load: load}
}

// Configure validates the parameters and declares one float64 input port of
// width observation_dim, one float64 output port of width action_dim,
// direct feedthrough, one work slot, and inherited sample timing. On a
// ConfigurationError no ports are declared.
func (b *Block) Configure(in *host.Instance) error {
	params := in.Params()
	if params.Len() != NumParams {
		return &ConfigurationError{Reason: fmt.Sprintf("expected %d parameters, got %d", NumParams, params.Len())}
	}

	obsDim := params.Int(ParamObservationDim)
	actDim := params.Int(ParamActionDim)

	if obsDim <= 0 {
		return &ConfigurationError{Reason: "observation dimension must be positive"}
	}
	if actDim <= 0 {
		return &ConfigurationError{Reason: "action dimension must be positive"}
	}

	in.SetSpec(host.BlockSpec{
		Inputs:  []host.PortSpec{{Width: obsDim, Type: host.Float64}},
		Outputs: []host.PortSpec{{Width: actDim, Type: host.Float64}},
		// Output depends on the same tick's input; the host needs this
		// for dependency ordering across blocks.
		DirectFeedthrough: true,
		WorkSlots:         numWorkSlots,
		SampleTime:        host.SampleInherited,
	})
	return nil
}

// Start loads the policy model. On any failure the work slot is left empty
// so Step can detect the unready state, and a ModelLoadError is returned.
// When a metadata sidecar exists next to the model, its dimensions must
// match the configured widths.
func (b *Block) Start(in *host.Instance) error {
	params := in.Params()
	modelPath := params.String(ParamModelPath)
	obsDim := params.Int(ParamObservationDim)
	actDim := params.Int(ParamActionDim)

	if modelPath == "" {
		in.SetWork(workSlotEngine, nil)
		return &ModelLoadError{Path: modelPath, Err: fmt.Errorf("model path is empty")}
	}

	meta, err := inference.LoadMetadata(modelPath)
	if err != nil {
		in.SetWork(workSlotEngine, nil)
		return &ModelLoadError{Path: modelPath, Err: err}
	}
	if meta != nil {
		if meta.ObsDim != obsDim || meta.ActDim != actDim {
			in.SetWork(workSlotEngine, nil)
			return &ModelLoadError{
				Path: modelPath,
				Err: fmt.Errorf("metadata dimensions (obs=%d, act=%d) do not match configured (obs=%d, act=%d)",
					meta.ObsDim, meta.ActDim, obsDim, actDim),
			}
		}
	}

	engine, err := b.load(modelPath, obsDim, actDim)
	if err != nil {
		in.SetWork(workSlotEngine, nil)
		return &ModelLoadError{Path: modelPath, Err: err}
	}

	in.SetWork(workSlotEngine, engine)
	return nil
}

// Step reads the observation port, runs one batch-1 forward pass, and
// writes the action port. The host's float64 signals are cast element by
// element to the graph's float32 on the way in, and back on the way out,
// preserving element order.
func (b *Block) Step(in *host.Instance) error {
	engine, _ := in.Work(workSlotEngine).(inference.Engine)
	if engine == nil {
		return &ModelNotLoadedError{}
	}

	obs := in.Input(0)
	act := in.Output(0)

	obs32 := make([]float32, len(obs))
	for i, v := range obs {
		obs32[i] = float32(v)
	}

	action, err := engine.Forward(obs32)
	if err != nil {
		return &InferenceError{Err: err}
	}
	if len(action) < len(act) {
		return &InferenceError{Err: fmt.Errorf("action has wrong size: got %d, expected %d", len(action), len(act))}
	}

	for i := range act {
		act[i] = float64(action[i])
	}
	return nil
}

// Terminate releases the engine exactly once and empties the work slot.
// Safe to call when the slot is already empty.
func (b *Block) Terminate(in *host.Instance) error {
	engine, _ := in.Work(workSlotEngine).(inference.Engine)
	if engine == nil {
		return nil
	}
	in.SetWork(workSlotEngine, nil)
	if err := engine.Close(); err != nil {
		return fmt.Errorf("failed to release model: %w", err)
	}
	return nil
}

// Ensure Block implements the host callback contract at compile time
var _ host.Block = (*Block)(nil)
