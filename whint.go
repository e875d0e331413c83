// Package whint runs programs written in the whitespace language, where
// only SPACE, TAB and LINEFEED carry meaning and every other byte is a
// comment.
//
//	err := whint.Run(ctx, program, whint.WithOutput(os.Stdout))
//
// Heap access and I/O instructions leave their address and value operands
// on the stack rather than consuming them.
package whint

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/whint-io/whint/errz"
	"github.com/whint-io/whint/vm"
)

// Option configures a whitespace program execution.
type Option func(*options)

type options struct {
	input    io.Reader
	output   io.Writer
	heapSize *int
	logger   *zerolog.Logger
	observer vm.Observer
}

func collectOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) vmOpts() []vm.Option {
	var opts []vm.Option
	if o.input != nil {
		opts = append(opts, vm.WithInput(o.input))
	}
	if o.output != nil {
		opts = append(opts, vm.WithOutput(o.output))
	}
	if o.heapSize != nil {
		opts = append(opts, vm.WithHeapSize(*o.heapSize))
	}
	if o.logger != nil {
		opts = append(opts, vm.WithLogger(*o.logger))
	}
	if o.observer != nil {
		opts = append(opts, vm.WithObserver(o.observer))
	}
	return opts
}

// WithInput sets where READ_CHAR and READ_NUM read from. The default is an
// empty input.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.input = r
	}
}

// WithOutput sets where PRINT_CHAR and PRINT_NUM write to. By default
// output is discarded.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithHeapSize sets the number of heap cells (default vm.DefaultHeapSize).
// A size below 1 makes Run fail.
func WithHeapSize(size int) Option {
	return func(o *options) {
		o.heapSize = &size
	}
}

// WithLogger sets the logger used for run lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

// WithObserver sets an observer for VM execution events.
func WithObserver(observer vm.Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// Run executes a whitespace program. Each call creates fresh VM state.
func Run(ctx context.Context, program []byte, opts ...Option) error {
	o := collectOptions(opts...)
	return vm.Run(ctx, program, o.vmOpts()...)
}

// RunFile loads the program at path and runs it.
func RunFile(ctx context.Context, path string, opts ...Option) error {
	program, err := LoadFile(path)
	if err != nil {
		return err
	}
	return Run(ctx, program, opts...)
}

// LoadFile reads a program from disk. A missing file is reported as
// errz.FileNotFound and any other failure as errz.UnreadableFile.
func LoadFile(path string) ([]byte, error) {
	program, err := os.ReadFile(path)
	if err == nil {
		return program, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errz.Newf(errz.FileNotFound, errz.NoPos, "couldn't open the file %s", path).WithCause(err)
	}
	return nil, errz.Newf(errz.UnreadableFile, errz.NoPos, "couldn't read the file %s", path).WithCause(err)
}
