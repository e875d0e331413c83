package vm

import (
	"io"

	"github.com/rs/zerolog"
)

// Option is a configuration function for a Virtual Machine.
type Option func(*VirtualMachine)

// WithHeapSize sets the number of heap cells. The heap never grows; any
// access outside [0, size) fails with a HeapAddressOutOfRange error. The
// default is DefaultHeapSize.
func WithHeapSize(size int) Option {
	return func(vm *VirtualMachine) {
		vm.heapSize = size
	}
}

// WithInput sets the reader used by READ_CHAR and READ_NUM. By default the
// input is empty.
func WithInput(r io.Reader) Option {
	return func(vm *VirtualMachine) {
		vm.input = r
	}
}

// WithOutput sets the writer used by PRINT_CHAR and PRINT_NUM. By default
// output is discarded.
func WithOutput(w io.Writer) Option {
	return func(vm *VirtualMachine) {
		vm.output = w
	}
}

// WithLogger sets the logger for run lifecycle events. The default logger
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(vm *VirtualMachine) {
		vm.logger = logger
	}
}

// WithContextCheckInterval sets how often the VM checks ctx.Done() during
// execution. The interval is specified in number of instructions. A value of
// 0 disables the check. The default is DefaultContextCheckInterval (1000).
func WithContextCheckInterval(interval int) Option {
	return func(vm *VirtualMachine) {
		vm.contextCheckInterval = interval
	}
}

// WithObserver sets an observer for VM execution events.
// The observer receives callbacks for instruction steps, subroutine calls
// and returns. Returning false from any observer method halts execution.
//
// Observer methods are called synchronously during execution, so
// implementations should be fast to avoid impacting performance.
func WithObserver(observer Observer) Option {
	return func(vm *VirtualMachine) {
		vm.observer = observer
	}
}
