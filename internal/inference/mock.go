package inference

import (
	"fmt"
)

// Mock is a test implementation of Engine. It returns a fixed action for
// every observation without requiring the ONNX shared library.
type Mock struct {
	// ObsDim is the expected observation width
	ObsDim int
	// DefaultAction is returned for every observation; its length is the
	// action width
	DefaultAction []float32
	// ShouldError if true, Forward will return an error
	ShouldError bool
	// ErrorMessage is the error message to return when ShouldError is true
	ErrorMessage string
	// CallCount tracks the number of times Forward was called
	CallCount int
	// Closed tracks the number of times Close was called
	Closed int
}

// NewMock creates a Mock with the given widths, returning a small ramp
// (0.1, 0.2, ...) as the action.
func NewMock(obsDim, actDim int) *Mock {
	action := make([]float32, actDim)
	for i := range action {
		action[i] = 0.1 * float32(i+1)
	}
	return &Mock{ObsDim: obsDim, DefaultAction: action}
}

// NewMockWithAction creates a Mock returning the given fixed action.
func NewMockWithAction(obsDim int, action []float32) *Mock {
	return &Mock{ObsDim: obsDim, DefaultAction: action}
}

// Forward validates the observation width and returns a copy of
// DefaultAction.
func (m *Mock) Forward(obs []float32) ([]float32, error) {
	m.CallCount++

	if m.ShouldError {
		if m.ErrorMessage != "" {
			return nil, fmt.Errorf("%s", m.ErrorMessage)
		}
		return nil, fmt.Errorf("mock inference error")
	}

	if len(obs) != m.ObsDim {
		return nil, fmt.Errorf("observation has wrong size: got %d, expected %d", len(obs), m.ObsDim)
	}

	action := make([]float32, len(m.DefaultAction))
	copy(action, m.DefaultAction)
	return action, nil
}

// ObservationDim returns the expected input width.
func (m *Mock) ObservationDim() int { return m.ObsDim }

// ActionDim returns the produced output width.
func (m *Mock) ActionDim() int { return len(m.DefaultAction) }

// Close records the call and succeeds.
func (m *Mock) Close() error {
	m.Closed++
	return nil
}

// SetError configures the mock to return an error on the next Forward call
func (m *Mock) SetError(msg string) {
	m.ShouldError = true
	m.ErrorMessage = msg
}

// ClearError clears any configured error
func (m *Mock) ClearError() {
	m.ShouldError = false
	m.ErrorMessage = ""
}

// Ensure Mock implements Engine at compile time
var _ Engine = (*Mock)(nil)
