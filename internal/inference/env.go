package inference

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ONNX Runtime keeps one process-global environment; initializing it twice
// is an error and destroying it unloads the shared library for every live
// session. Sessions therefore share it through a reference count: the first
// Open initializes, the last Close destroys, and an environment set up by
// someone else in the process is left alone entirely.
var env = &environment{
	initialize:  func() error { return ort.InitializeEnvironment() },
	destroy:     ort.DestroyEnvironment,
	initialized: ort.IsInitialized,
}

type environment struct {
	mu    sync.Mutex
	refs  int
	owned bool // this package initialized it, so the last release tears it down

	initialize  func() error
	destroy     func() error
	initialized func() bool
}

func (e *environment) acquire() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.refs == 0 && !e.initialized() {
		if err := e.initialize(); err != nil {
			return fmt.Errorf("failed to initialize ONNX environment: %w", err)
		}
		e.owned = true
	}
	e.refs++
	return nil
}

func (e *environment) release() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.refs == 0 {
		return nil
	}
	e.refs--
	if e.refs == 0 && e.owned {
		e.owned = false
		return e.destroy()
	}
	return nil
}
