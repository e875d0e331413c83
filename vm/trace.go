package vm

import (
	"github.com/rs/zerolog"
)

// TraceObserver logs every instruction, call and return. Steps are logged
// at trace level and control transfers at debug level.
type TraceObserver struct {
	logger zerolog.Logger
}

// NewTraceObserver returns an observer that writes execution events to
// logger.
func NewTraceObserver(logger zerolog.Logger) *TraceObserver {
	return &TraceObserver{logger: logger}
}

func (o *TraceObserver) Config() ObserverConfig {
	return NewObserverConfig(StepAll)
}

func (o *TraceObserver) OnStep(event StepEvent) bool {
	e := o.logger.Trace().
		Int("pos", event.Pos).
		Str("op", event.OpcodeName).
		Int("stack_depth", event.StackDepth)
	if event.HasOperand {
		e = e.Int64("operand", event.Operand)
	}
	e.Msg("step")
	return true
}

func (o *TraceObserver) OnCall(event CallEvent) bool {
	o.logger.Debug().
		Int64("label", event.Label).
		Int("call_site", event.CallSite).
		Int("target", event.Target).
		Int("call_depth", event.CallDepth).
		Msg("call")
	return true
}

func (o *TraceObserver) OnReturn(event ReturnEvent) bool {
	o.logger.Debug().
		Int("pos", event.Pos).
		Int("return_addr", event.ReturnAddr).
		Int("call_depth", event.CallDepth).
		Msg("return")
	return true
}

var _ Observer = (*TraceObserver)(nil)
