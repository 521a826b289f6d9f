// Package inference wraps the ONNX Runtime behind a small fixed-width
// engine interface: one observation vector in, one action vector out,
// batch size locked to 1.
package inference

// Engine runs single-observation policy inference. Implementations report
// the widths they were created with so callers can validate marshalling
// before the first forward pass.
type Engine interface {
	// Forward evaluates the policy on one observation of length
	// ObservationDim and returns one action of length ActionDim. The call
	// blocks until the result is available.
	Forward(obs []float32) ([]float32, error)

	// ObservationDim is the expected input width.
	ObservationDim() int

	// ActionDim is the produced output width.
	ActionDim() int

	// Close releases any resources held by the engine. Safe to call more
	// than once.
	Close() error
}
