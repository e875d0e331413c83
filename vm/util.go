package vm

import (
	"github.com/whint-io/whint/errz"
	"github.com/whint-io/whint/op"
)

func (vm *VirtualMachine) push(v int64) {
	vm.stack = append(vm.stack, v)
}

func (vm *VirtualMachine) pop() int64 {
	n := len(vm.stack) - 1
	v := vm.stack[n]
	vm.stack = vm.stack[:n]
	return v
}

func (vm *VirtualMachine) top() int64 {
	return vm.stack[len(vm.stack)-1]
}

// checkStackArgs verifies the stack holds what the instruction reads, so
// the push/pop/top helpers above never see an empty stack.
func (vm *VirtualMachine) checkStackArgs(code op.Code, pos int) error {
	need := op.GetInfo(code).StackArgs
	if have := len(vm.stack); have < need {
		return errz.Newf(errz.StackUnderflow, pos,
			"%s needs %d stack value(s), have %d", code, need, have)
	}
	return nil
}

// heapIndex converts a stack value to a heap index, rejecting addresses
// outside the heap.
func (vm *VirtualMachine) heapIndex(addr int64, pos int) (int, error) {
	if addr < 0 || addr >= int64(len(vm.heap)) {
		return 0, errz.Newf(errz.HeapAddressOutOfRange, pos,
			"address %d is outside the heap [0, %d)", addr, len(vm.heap))
	}
	return int(addr), nil
}
