// Package host models the simulation host's block ABI: positional block
// parameters, port declarations, per-instance work slots, and a bounded
// error status. Blocks implement the Block callback contract and are driven
// through the lifecycle by a Driver.
package host

// DataType identifies the numeric type carried on a port.
type DataType int

const (
	// Float64 is the host's native signal type.
	Float64 DataType = iota
)

// SampleTime describes how a block is scheduled relative to the host clock.
type SampleTime int

const (
	// SampleInherited defers sample timing to the host's scheduling context.
	SampleInherited SampleTime = iota
)

// ErrorStatusLimit bounds the length of a reported error status, in bytes.
// Longer messages are truncated, never rejected.
const ErrorStatusLimit = 512

// Param is a single positional block parameter. Parameters are set once at
// instance creation and are not tunable afterwards.
type Param struct {
	value interface{}
}

// StringParam wraps a string parameter value.
func StringParam(s string) Param { return Param{value: s} }

// IntParam wraps an integer parameter value.
func IntParam(i int) Param { return Param{value: i} }

// FloatParam wraps a floating-point parameter value.
func FloatParam(f float64) Param { return Param{value: f} }

// Params is the positional parameter list of a block instance.
type Params []Param

// Len returns the number of parameters supplied to the instance.
func (p Params) Len() int { return len(p) }

// String returns parameter i as a string. Out-of-range or non-string
// parameters coerce to "" rather than failing; validation happens in the
// block's Configure callback.
func (p Params) String(i int) string {
	if i < 0 || i >= len(p) {
		return ""
	}
	s, _ := p[i].value.(string)
	return s
}

// Int returns parameter i as an int. Out-of-range or non-numeric parameters
// coerce to 0 rather than failing; validation happens in the block's
// Configure callback.
func (p Params) Int(i int) int {
	if i < 0 || i >= len(p) {
		return 0
	}
	switch v := p[i].value.(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// PortSpec declares a single input or output port.
type PortSpec struct {
	Width int
	Type  DataType
}

// BlockSpec is the full set of declarations a block makes during Configure:
// its ports, whether output depends on same-step input, how many opaque
// work slots it needs, and its sample timing.
type BlockSpec struct {
	Inputs            []PortSpec
	Outputs           []PortSpec
	DirectFeedthrough bool
	WorkSlots         int
	SampleTime        SampleTime
}

// Instance is the per-instance state the host maintains for a block: its
// parameters, the spec declared at Configure time, opaque work slots that
// persist across callbacks, the port signal buffers, and the last reported
// error status. An Instance is owned by exactly one block and is never
// shared across goroutines; the host guarantees non-concurrent invocation.
type Instance struct {
	params  Params
	spec    BlockSpec
	work    []interface{}
	status  string
	inputs  [][]float64
	outputs [][]float64
}

// NewInstance creates an instance carrying the given positional parameters.
// Ports and work slots are allocated by the Driver once Configure succeeds.
func NewInstance(params ...Param) *Instance {
	return &Instance{params: Params(params)}
}

// Params returns the positional parameters supplied to this instance.
func (in *Instance) Params() Params { return in.params }

// SetSpec records the block's declarations. Called from Configure.
func (in *Instance) SetSpec(spec BlockSpec) { in.spec = spec }

// Spec returns the declarations recorded by Configure. Before a successful
// Configure it is the zero value (no ports declared).
func (in *Instance) Spec() BlockSpec { return in.spec }

// SetErrorStatus records a descriptive error status for the host, truncated
// to ErrorStatusLimit bytes.
func (in *Instance) SetErrorStatus(msg string) {
	if len(msg) > ErrorStatusLimit {
		msg = msg[:ErrorStatusLimit]
	}
	in.status = msg
}

// ErrorStatus returns the last reported error status, or "" if none.
func (in *Instance) ErrorStatus() string { return in.status }

// Work returns the value stored in the given opaque work slot, or nil if
// the slot is out of range or empty.
func (in *Instance) Work(slot int) interface{} {
	if slot < 0 || slot >= len(in.work) {
		return nil
	}
	return in.work[slot]
}

// SetWork stores a value in the given opaque work slot. Out-of-range slots
// are ignored; blocks only receive the slots they declared.
func (in *Instance) SetWork(slot int, v interface{}) {
	if slot < 0 || slot >= len(in.work) {
		return
	}
	in.work[slot] = v
}

// Input returns the signal buffer of the given input port. The block reads
// it during Step and must not retain it across steps.
func (in *Instance) Input(port int) []float64 {
	if port < 0 || port >= len(in.inputs) {
		return nil
	}
	return in.inputs[port]
}

// Output returns the signal buffer of the given output port. The block
// writes it during Step.
func (in *Instance) Output(port int) []float64 {
	if port < 0 || port >= len(in.outputs) {
		return nil
	}
	return in.outputs[port]
}

// SetInput copies vals into the given input port buffer. The host calls
// this before each Step with the current tick's signal.
func (in *Instance) SetInput(port int, vals []float64) {
	if port < 0 || port >= len(in.inputs) {
		return
	}
	copy(in.inputs[port], vals)
}

// allocate sizes the port buffers and work slots from the declared spec.
func (in *Instance) allocate() {
	in.inputs = make([][]float64, len(in.spec.Inputs))
	for i, p := range in.spec.Inputs {
		in.inputs[i] = make([]float64, p.Width)
	}
	in.outputs = make([][]float64, len(in.spec.Outputs))
	for i, p := range in.spec.Outputs {
		in.outputs[i] = make([]float64, p.Width)
	}
	in.work = make([]interface{}, in.spec.WorkSlots)
}

// Block is the callback contract a simulation block implements. The host
// calls Configure and Start once, Step once per tick, and Terminate once at
// teardown. Callbacks return errors instead of raising; the Driver converts
// them into the instance's bounded error status before they reach host
// code.
type Block interface {
	Configure(in *Instance) error
	Start(in *Instance) error
	Step(in *Instance) error
	Terminate(in *Instance) error
}
