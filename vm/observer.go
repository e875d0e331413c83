package vm

import (
	"github.com/whint-io/whint/op"
)

// StepMode controls when OnStep callbacks are triggered.
type StepMode uint8

const (
	// StepAll calls OnStep for every instruction.
	StepAll StepMode = iota

	// StepNone never calls OnStep.
	// Use for: observers that only need Call/Return events.
	StepNone

	// StepSampled calls OnStep every N instructions.
	StepSampled
)

// ObserverConfig specifies what events an observer wants to receive.
// Use NewObserverConfig() to create configs with safe defaults.
type ObserverConfig struct {
	// StepMode controls OnStep callback frequency.
	StepMode StepMode

	// SampleInterval is the number of instructions between OnStep calls
	// when StepMode is StepSampled. Values <= 0 are treated as 1.
	SampleInterval int

	// ObserveCalls enables OnCall callbacks.
	ObserveCalls bool

	// ObserveReturns enables OnReturn callbacks.
	ObserveReturns bool
}

// NewObserverConfig creates a config with safe defaults.
// ObserveCalls and ObserveReturns default to true.
func NewObserverConfig(mode StepMode) ObserverConfig {
	return ObserverConfig{
		StepMode:       mode,
		SampleInterval: 1000,
		ObserveCalls:   true,
		ObserveReturns: true,
	}
}

// NormalizeConfig validates and clamps config values.
func NormalizeConfig(cfg ObserverConfig) ObserverConfig {
	if cfg.StepMode == StepSampled && cfg.SampleInterval <= 0 {
		cfg.SampleInterval = 1
	}
	return cfg
}

// Observer is an interface for observing VM execution events, for tracing,
// profiling or debugging whitespace programs.
//
// Implementations can embed NoOpObserver to provide default no-op
// implementations for methods they don't need.
type Observer interface {
	// Config returns the observer's configuration.
	// Called once when a run starts.
	Config() ObserverConfig

	// OnStep is called after an instruction is decoded and before it runs.
	// Returns false to halt execution immediately.
	OnStep(event StepEvent) bool

	// OnCall is called when a CALL transfers control.
	// Returns false to halt execution immediately.
	OnCall(event CallEvent) bool

	// OnReturn is called when a RETURN transfers control.
	// Returns false to halt execution immediately.
	OnReturn(event ReturnEvent) bool
}

// StepEvent contains information about a single instruction step.
type StepEvent struct {
	// Pos is the program offset of the instruction's first token.
	Pos int

	// Opcode is the operation being executed.
	Opcode op.Code

	// OpcodeName is the human-readable name of the opcode.
	OpcodeName string

	// Operand is the number operand; only meaningful if HasOperand is set.
	Operand    int64
	HasOperand bool

	// StackDepth is the current depth of the operand stack.
	StackDepth int

	// CallDepth is the current depth of the call stack.
	CallDepth int
}

// CallEvent contains information about a subroutine call.
type CallEvent struct {
	Label      int64
	CallSite   int
	Target     int
	ReturnAddr int
	// CallDepth is the call stack depth after the call.
	CallDepth int
}

// ReturnEvent contains information about a subroutine return.
type ReturnEvent struct {
	Pos        int
	ReturnAddr int
	// CallDepth is the call stack depth after returning.
	CallDepth int
}

// NoOpObserver is an Observer implementation that does nothing.
// Embed this in your observer to provide default implementations
// for methods you don't need.
type NoOpObserver struct{}

func (NoOpObserver) Config() ObserverConfig {
	return NewObserverConfig(StepAll)
}

func (NoOpObserver) OnStep(StepEvent) bool     { return true }
func (NoOpObserver) OnCall(CallEvent) bool     { return true }
func (NoOpObserver) OnReturn(ReturnEvent) bool { return true }

// Ensure NoOpObserver implements Observer.
var _ Observer = NoOpObserver{}
