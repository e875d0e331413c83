package vm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/whint-io/whint/errz"
)

// readChar stores the next input byte at the heap address on top of the
// stack. At end of input it stores -1.
func (vm *VirtualMachine) readChar(pos int) error {
	idx, err := vm.heapIndex(vm.top(), pos)
	if err != nil {
		return err
	}
	if err := vm.out.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	b, err := vm.in.ReadByte()
	switch {
	case errors.Is(err, io.EOF):
		vm.heap[idx] = -1
	case err != nil:
		return errz.New(errz.InvalidInput, pos, "reading a character failed").WithCause(err)
	default:
		vm.heap[idx] = int64(b)
	}
	return nil
}

// readNumber stores the next unsigned decimal number from the input at the
// heap address on top of the stack.
func (vm *VirtualMachine) readNumber(pos int) error {
	idx, err := vm.heapIndex(vm.top(), pos)
	if err != nil {
		return err
	}
	if err := vm.out.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	n, err := scanUnsigned(vm.in)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errz.New(errz.InvalidInput, pos, "input ended before a number").WithCause(err)
		}
		return errz.Newf(errz.InvalidInput, pos, "expected an unsigned number: %v", err).WithCause(err)
	}
	vm.heap[idx] = n
	return nil
}

// scanUnsigned skips leading whitespace and reads a run of decimal digits.
// The byte following the digits is left unread.
func scanUnsigned(r *bufio.Reader) (int64, error) {
	var c byte
	var err error
	for {
		if c, err = r.ReadByte(); err != nil {
			return 0, err
		}
		if !isSpace(c) {
			break
		}
	}
	var digits []byte
	for c >= '0' && c <= '9' {
		digits = append(digits, c)
		if c, err = r.ReadByte(); err != nil {
			break
		}
	}
	if err == nil {
		r.UnreadByte()
	} else if !errors.Is(err, io.EOF) {
		return 0, err
	}
	if len(digits) == 0 {
		return 0, fmt.Errorf("unexpected character %q", c)
	}
	return strconv.ParseInt(string(digits), 10, 64)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
