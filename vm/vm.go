// Package vm provides a VirtualMachine that decodes and executes whitespace
// programs directly from their source buffer.
package vm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/whint-io/whint/errz"
	"github.com/whint-io/whint/lexer"
	"github.com/whint-io/whint/op"
)

const (
	// DefaultHeapSize is the number of heap cells when WithHeapSize is not
	// given.
	DefaultHeapSize = 1024

	// DefaultContextCheckInterval is the number of instructions between
	// deterministic checks of ctx.Done(). Set to 0 to disable.
	DefaultContextCheckInterval = 1000
)

// VirtualMachine holds the complete state of one program execution: the
// program cursor, operand stack, heap, call stack and label table.
type VirtualMachine struct {
	program []byte
	lex     *lexer.Lexer
	stack   []int64
	heap    []int64
	calls   []frame
	labels  map[int64]int

	// labelIndex holds the first definition of every label in program
	// order. Built on the first lookup that misses labels.
	labelIndex map[int64]int

	heapSize int
	input    io.Reader
	output   io.Writer
	in       *bufio.Reader
	out      *bufio.Writer
	logger   zerolog.Logger

	observer       Observer
	observerConfig ObserverConfig

	contextCheckInterval int

	steps    int64
	halted   bool
	running  bool
	runMutex sync.Mutex
}

// New creates a Virtual Machine ready to run the given program.
func New(program []byte, options ...Option) (*VirtualMachine, error) {
	vm := &VirtualMachine{
		program:              program,
		labels:               map[int64]int{},
		heapSize:             DefaultHeapSize,
		output:               io.Discard,
		logger:               zerolog.Nop(),
		contextCheckInterval: DefaultContextCheckInterval,
	}
	for _, opt := range options {
		if opt != nil {
			opt(vm)
		}
	}
	if vm.heapSize <= 0 {
		return nil, fmt.Errorf("invalid heap size: %d", vm.heapSize)
	}
	if vm.input == nil {
		vm.input = strings.NewReader("")
	}
	if vm.output == nil {
		vm.output = io.Discard
	}
	vm.heap = make([]int64, vm.heapSize)
	vm.in = bufio.NewReader(vm.input)
	vm.out = bufio.NewWriter(vm.output)
	vm.lex = lexer.New(program)
	if vm.observer != nil {
		vm.observerConfig = NormalizeConfig(vm.observer.Config())
	}
	return vm, nil
}

func (vm *VirtualMachine) start() error {
	vm.runMutex.Lock()
	defer vm.runMutex.Unlock()
	if vm.running {
		return fmt.Errorf("vm is already running")
	}
	vm.running = true
	return nil
}

func (vm *VirtualMachine) stop() {
	vm.runMutex.Lock()
	defer vm.runMutex.Unlock()
	vm.running = false
}

// Run executes the program until it halts, runs off the end of the buffer,
// fails, or ctx is cancelled. Output written by the program is flushed
// before Run returns, including when it fails.
func (vm *VirtualMachine) Run(ctx context.Context) (err error) {
	// Set up some guarantees:
	// 1. It is an error to call Run on a VM that is already running
	// 2. The running flag will always be set to false when Run returns
	// 3. Any panics are translated to errors and the VM is stopped
	if err := vm.start(); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if flushErr := vm.out.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("flushing output: %w", flushErr)
		}
		vm.stop()
	}()

	vm.logger.Debug().
		Int("program_size", len(vm.program)).
		Int("heap_size", len(vm.heap)).
		Msg("run started")

	err = vm.eval(ctx)

	event := vm.logger.Debug()
	if err != nil {
		event = event.Err(err)
	}
	event.Int64("steps", vm.steps).
		Int("stack_depth", len(vm.stack)).
		Int("pos", vm.lex.Pos()).
		Bool("halted", vm.halted).
		Msg("run finished")
	return err
}

// eval is the decode/execute loop. Each iteration decodes the instruction
// under the cursor, which leaves the cursor on the next instruction, and
// then executes it. Control transfers move the cursor again.
func (vm *VirtualMachine) eval(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var instructionCount int
	checkInterval := vm.contextCheckInterval
	doneChan := ctx.Done()

	for !vm.halted && !vm.lex.AtEOF() {

		// Deterministic check of ctx.Done() every N instructions.
		if checkInterval > 0 && doneChan != nil {
			instructionCount++
			if instructionCount >= checkInterval {
				instructionCount = 0
				select {
				case <-doneChan:
					return ctx.Err()
				default:
				}
			}
		}

		instr, err := vm.lex.Next()
		if err != nil {
			return err
		}
		vm.steps++
		if !vm.observeStep(instr) {
			vm.halted = true
			return nil
		}
		if err := vm.exec(instr); err != nil {
			return err
		}
	}
	return nil
}

func (vm *VirtualMachine) exec(instr lexer.Instruction) error {
	pos := instr.Pos
	if err := vm.checkStackArgs(instr.Code, pos); err != nil {
		return err
	}
	switch instr.Code {
	case op.Push:
		vm.push(instr.Operand)
	case op.Dup:
		vm.push(vm.top())
	case op.Swap:
		n := len(vm.stack)
		vm.stack[n-1], vm.stack[n-2] = vm.stack[n-2], vm.stack[n-1]
	case op.Discard:
		vm.pop()
	case op.Add, op.Subtract, op.Multiply, op.Divide, op.Modulo:
		return vm.binaryOp(instr.Code, pos)
	case op.Store:
		// The address stays on the stack and the value is pushed back.
		val := vm.pop()
		idx, err := vm.heapIndex(vm.top(), pos)
		vm.push(val)
		if err != nil {
			return err
		}
		vm.heap[idx] = val
	case op.Load:
		idx, err := vm.heapIndex(vm.top(), pos)
		if err != nil {
			return err
		}
		vm.push(vm.heap[idx])
	case op.PrintChar:
		return vm.out.WriteByte(byte(vm.top()))
	case op.PrintNum:
		_, err := vm.out.WriteString(strconv.FormatInt(vm.top(), 10))
		return err
	case op.ReadChar:
		return vm.readChar(pos)
	case op.ReadNum:
		return vm.readNumber(pos)
	case op.Mark:
		vm.labels[instr.Operand] = vm.lex.Pos()
	case op.Call:
		return vm.call(instr)
	case op.Jump:
		return vm.jump(instr.Operand, pos)
	case op.JumpIfZero:
		if vm.top() == 0 {
			return vm.jump(instr.Operand, pos)
		}
	case op.JumpIfNegative:
		if vm.top() < 0 {
			return vm.jump(instr.Operand, pos)
		}
	case op.Return:
		return vm.ret(pos)
	case op.Halt:
		vm.halted = true
	default:
		return fmt.Errorf("unknown opcode %d at position %d", instr.Code, pos)
	}
	return nil
}

func (vm *VirtualMachine) binaryOp(code op.Code, pos int) error {
	b := vm.pop()
	a := vm.pop()
	var result int64
	switch code {
	case op.Add:
		result = a + b
	case op.Subtract:
		result = a - b
	case op.Multiply:
		result = a * b
	case op.Divide, op.Modulo:
		if b == 0 {
			vm.push(a)
			vm.push(b)
			return errz.Newf(errz.DivisionByZero, pos, "%s of %d by zero", code, a)
		}
		if code == op.Divide {
			result = a / b
		} else {
			result = a % b
		}
	}
	vm.push(result)
	return nil
}

func (vm *VirtualMachine) observeStep(instr lexer.Instruction) bool {
	if vm.observer == nil {
		return true
	}
	switch vm.observerConfig.StepMode {
	case StepNone:
		return true
	case StepSampled:
		if vm.steps%int64(vm.observerConfig.SampleInterval) != 0 {
			return true
		}
	}
	info := op.GetInfo(instr.Code)
	return vm.observer.OnStep(StepEvent{
		Pos:        instr.Pos,
		Opcode:     instr.Code,
		OpcodeName: info.Name,
		Operand:    instr.Operand,
		HasOperand: info.HasOperand,
		StackDepth: len(vm.stack),
		CallDepth:  len(vm.calls),
	})
}

// Stack returns a copy of the operand stack, bottom first.
func (vm *VirtualMachine) Stack() []int64 {
	result := make([]int64, len(vm.stack))
	copy(result, vm.stack)
	return result
}

// Heap returns a copy of the heap.
func (vm *VirtualMachine) Heap() []int64 {
	result := make([]int64, len(vm.heap))
	copy(result, vm.heap)
	return result
}

// CallDepth returns the number of pending subroutine calls.
func (vm *VirtualMachine) CallDepth() int {
	return len(vm.calls)
}

// Steps returns the number of instructions executed so far.
func (vm *VirtualMachine) Steps() int64 {
	return vm.steps
}

// Halted reports whether the program stopped on a HALT instruction or at
// an observer's request.
func (vm *VirtualMachine) Halted() bool {
	return vm.halted
}
