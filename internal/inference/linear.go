package inference

import "fmt"

// Linear is a pure-Go affine engine: action = W*obs + b. It exists so
// lifecycle and marshalling behavior can be tested deterministically
// without the ONNX shared library installed.
type Linear struct {
	obsDim  int
	actDim  int
	weights [][]float32 // actDim rows of obsDim columns
	bias    []float32
	closed  bool
}

// NewLinear creates a Linear engine from explicit weights. weights must
// have actDim rows of obsDim columns; bias may be nil for zero bias.
func NewLinear(obsDim, actDim int, weights [][]float32, bias []float32) (*Linear, error) {
	if obsDim <= 0 || actDim <= 0 {
		return nil, fmt.Errorf("invalid dimensions: obs=%d, act=%d", obsDim, actDim)
	}
	if len(weights) != actDim {
		return nil, fmt.Errorf("weights have %d rows, expected %d", len(weights), actDim)
	}
	for i, row := range weights {
		if len(row) != obsDim {
			return nil, fmt.Errorf("weights row %d has %d columns, expected %d", i, len(row), obsDim)
		}
	}
	if bias == nil {
		bias = make([]float32, actDim)
	}
	if len(bias) != actDim {
		return nil, fmt.Errorf("bias has length %d, expected %d", len(bias), actDim)
	}
	return &Linear{obsDim: obsDim, actDim: actDim, weights: weights, bias: bias}, nil
}

// NewIdentity creates a Linear engine that passes the first actDim
// observation values straight through as the action.
func NewIdentity(obsDim, actDim int) (*Linear, error) {
	weights := make([][]float32, actDim)
	for i := range weights {
		weights[i] = make([]float32, obsDim)
		if i < obsDim {
			weights[i][i] = 1
		}
	}
	return NewLinear(obsDim, actDim, weights, nil)
}

// Forward computes the affine transform for one observation.
func (l *Linear) Forward(obs []float32) ([]float32, error) {
	if l.closed {
		return nil, fmt.Errorf("engine is closed")
	}
	if len(obs) != l.obsDim {
		return nil, fmt.Errorf("observation has wrong size: got %d, expected %d", len(obs), l.obsDim)
	}
	action := make([]float32, l.actDim)
	for i := range action {
		sum := l.bias[i]
		for j, w := range l.weights[i] {
			sum += w * obs[j]
		}
		action[i] = sum
	}
	return action, nil
}

// ObservationDim returns the expected input width.
func (l *Linear) ObservationDim() int { return l.obsDim }

// ActionDim returns the produced output width.
func (l *Linear) ActionDim() int { return l.actDim }

// Close marks the engine closed; further Forward calls fail.
func (l *Linear) Close() error {
	l.closed = true
	return nil
}

// Ensure Linear implements Engine at compile time
var _ Engine = (*Linear)(nil)
