package vm

import (
	"context"
)

// Run the given program in a new Virtual Machine.
func Run(ctx context.Context, program []byte, options ...Option) error {
	machine, err := New(program, options...)
	if err != nil {
		return err
	}
	return machine.Run(ctx)
}
