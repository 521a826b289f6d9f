package block

import "fmt"

// ConfigurationError reports invalid block parameters: wrong parameter
// count or non-positive port widths. No ports are declared when it occurs.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// ModelLoadError reports that the policy model could not be loaded at
// Start: empty path, unreadable or unparseable file, a sidecar dimension
// mismatch, or any failure inside the inference library.
type ModelLoadError struct {
	Path string
	Err  error
}

func (e *ModelLoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to load model %q", e.Path)
	}
	return fmt.Sprintf("failed to load model %q: %v", e.Path, e.Err)
}

func (e *ModelLoadError) Unwrap() error { return e.Err }

// ModelNotLoadedError reports a Step attempted while the engine handle is
// empty, which happens when Start never succeeded.
type ModelNotLoadedError struct{}

func (e *ModelNotLoadedError) Error() string {
	return "model not loaded"
}

// InferenceError reports an evaluation-time failure: shape mismatch,
// runtime fault, or any error raised by the inference library during
// Forward. Output port contents are unspecified when it occurs.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference error: %v", e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }
