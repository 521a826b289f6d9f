package inference

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Session is the ONNX Runtime implementation of Engine. The session is
// created with fixed observation and action widths and evaluates with a
// batch dimension of exactly 1. ONNX Runtime sessions carry no gradient
// state, and the default session options keep execution on the CPU, which
// is the inference-only contract this block needs.
type Session struct {
	mu      sync.Mutex
	session *ort.DynamicAdvancedSession
	obsDim  int
	actDim  int
}

// Open loads the ONNX model at modelPath and prepares a session expecting
// observations of width obsDim and producing actions of width actDim.
// The model's input tensor must be named "obs" and its output "action",
// matching the exporter's conventions.
func Open(modelPath string, obsDim, actDim int) (*Session, error) {
	if modelPath == "" {
		return nil, fmt.Errorf("model path is empty")
	}
	if obsDim <= 0 || actDim <= 0 {
		return nil, fmt.Errorf("invalid dimensions: obs=%d, act=%d", obsDim, actDim)
	}

	if err := env.acquire(); err != nil {
		return nil, err
	}

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{"obs"},
		[]string{"action"},
		nil, // default options: CPU execution provider
	)
	if err != nil {
		env.release()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &Session{
		session: session,
		obsDim:  obsDim,
		actDim:  actDim,
	}, nil
}

// Forward runs one synchronous forward pass over a [1, obsDim] tensor and
// returns the single [actDim] result row.
func (s *Session) Forward(obs []float32) ([]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, fmt.Errorf("inference session is nil")
	}
	if len(obs) != s.obsDim {
		return nil, fmt.Errorf("observation has wrong size: got %d, expected %d", len(obs), s.obsDim)
	}

	tensorData := make([]float32, s.obsDim)
	copy(tensorData, obs)

	inputShape := ort.NewShape(1, int64(s.obsDim))
	inputTensor, err := ort.NewTensor(inputShape, tensorData)
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}
	defer inputTensor.Destroy()

	outputShape := ort.NewShape(1, int64(s.actDim))
	outputData := make([]float32, s.actDim)
	outputTensor, err := ort.NewTensor(outputShape, outputData)
	if err != nil {
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}
	defer outputTensor.Destroy()

	err = s.session.Run(
		[]ort.ArbitraryTensor{inputTensor},
		[]ort.ArbitraryTensor{outputTensor},
	)
	if err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	// GetData returns a view over the tensor buffer; copy the row out
	// before the deferred Destroy releases it.
	action := make([]float32, s.actDim)
	copy(action, outputTensor.GetData())
	return action, nil
}

// ObservationDim returns the expected input width.
func (s *Session) ObservationDim() int { return s.obsDim }

// ActionDim returns the produced output width.
func (s *Session) ActionDim() int { return s.actDim }

// Close destroys the ONNX session and drops its reference on the shared
// environment; the environment itself goes away with the last session.
// Safe to call twice.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	err := s.session.Destroy()
	s.session = nil
	releaseErr := env.release()
	if err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return releaseErr
}

// Ensure Session implements Engine at compile time
var _ Engine = (*Session)(nil)
