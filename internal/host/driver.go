package host

import "fmt"

// State tracks where a block instance is in its lifecycle.
type State int

const (
	StateUnconfigured State = iota
	StateConfigured
	StateLoaded
	// StateStartFailed is terminal for loading: Step may still be invoked
	// (the block reports its own not-loaded condition) but Start is not
	// retried.
	StateStartFailed
	StateConfigFailed
	StateTerminated
)

// String returns a short name for the state, for logs and errors.
func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateConfigured:
		return "configured"
	case StateLoaded:
		return "loaded"
	case StateStartFailed:
		return "start-failed"
	case StateConfigFailed:
		return "config-failed"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

// Driver owns one block instance and enforces the host's lifecycle ordering:
// Configure and Start once, Step repeatedly, Terminate once (idempotent,
// reachable from any state). All callback errors are mirrored into the
// instance's bounded error status.
type Driver struct {
	block Block
	inst  *Instance
	state State
}

// NewDriver creates a driver for the given block with the given positional
// parameters.
func NewDriver(block Block, params ...Param) *Driver {
	return &Driver{
		block: block,
		inst:  NewInstance(params...),
		state: StateUnconfigured,
	}
}

// Instance exposes the driven instance, mainly so the host can set inputs
// and read outputs around Step calls.
func (d *Driver) Instance() *Instance { return d.inst }

// State returns the current lifecycle state.
func (d *Driver) State() State { return d.state }

// Configure invokes the block's Configure callback and, on success,
// allocates port buffers and work slots from the declared spec.
func (d *Driver) Configure() error {
	if d.state != StateUnconfigured {
		return fmt.Errorf("configure called in state %s", d.state)
	}
	if err := d.block.Configure(d.inst); err != nil {
		d.inst.SetErrorStatus(err.Error())
		d.state = StateConfigFailed
		return err
	}
	d.inst.allocate()
	d.state = StateConfigured
	return nil
}

// Start invokes the block's Start callback. A failed Start routes to a
// terminal error state: Step calls after it fail fast through the block's
// own not-loaded check, and Start is never retried.
func (d *Driver) Start() error {
	if d.state != StateConfigured {
		return fmt.Errorf("start called in state %s", d.state)
	}
	if err := d.block.Start(d.inst); err != nil {
		d.inst.SetErrorStatus(err.Error())
		d.state = StateStartFailed
		return err
	}
	d.state = StateLoaded
	return nil
}

// Step invokes the block's Step callback for one tick. A Step error is
// reported but does not change state; whether to halt is host policy.
func (d *Driver) Step() error {
	if d.state != StateLoaded && d.state != StateStartFailed {
		return fmt.Errorf("step called in state %s", d.state)
	}
	if err := d.block.Step(d.inst); err != nil {
		d.inst.SetErrorStatus(err.Error())
		return err
	}
	return nil
}

// Terminate invokes the block's Terminate callback unless the instance was
// never configured (no work slots exist to release). Safe to call from any
// state and safe to call repeatedly.
func (d *Driver) Terminate() error {
	if d.state == StateUnconfigured || d.state == StateConfigFailed {
		d.state = StateTerminated
		return nil
	}
	err := d.block.Terminate(d.inst)
	d.state = StateTerminated
	if err != nil {
		d.inst.SetErrorStatus(err.Error())
		return err
	}
	return nil
}
