package vm

import (
	"github.com/whint-io/whint/errz"
	"github.com/whint-io/whint/lexer"
	"github.com/whint-io/whint/op"
)

// resolve returns the program position of label. Labels defined by an
// executed MARK win; otherwise the first MARK for the label in program
// order is used, so a jump may target a label that has not run yet.
func (vm *VirtualMachine) resolve(label int64, pos int) (int, error) {
	if target, ok := vm.labels[label]; ok {
		return target, nil
	}
	if vm.labelIndex == nil {
		vm.labelIndex = indexLabels(vm.program)
		vm.logger.Debug().Int("labels", len(vm.labelIndex)).Msg("built label index")
	}
	if target, ok := vm.labelIndex[label]; ok {
		return target, nil
	}
	return 0, errz.Newf(errz.UndefinedLabel, pos, "label %d is not defined", label)
}

// indexLabels decodes, without executing, the program from the start and
// records where each label is first defined. Decoding stops quietly at the
// first malformed instruction; execution reports that error if it gets
// there.
func indexLabels(program []byte) map[int64]int {
	index := map[int64]int{}
	lex := lexer.New(program)
	for {
		instr, err := lex.Next()
		if err != nil {
			return index
		}
		if instr.Code != op.Mark {
			continue
		}
		if _, seen := index[instr.Operand]; !seen {
			index[instr.Operand] = lex.Pos()
		}
	}
}

func (vm *VirtualMachine) jump(label int64, pos int) error {
	target, err := vm.resolve(label, pos)
	if err != nil {
		return err
	}
	vm.lex.Seek(target)
	return nil
}

func (vm *VirtualMachine) call(instr lexer.Instruction) error {
	target, err := vm.resolve(instr.Operand, instr.Pos)
	if err != nil {
		return err
	}
	f := frame{
		returnAddr: vm.lex.Pos(),
		callSiteIP: instr.Pos,
		label:      instr.Operand,
	}
	vm.calls = append(vm.calls, f)
	vm.lex.Seek(target)
	if vm.observer != nil && vm.observerConfig.ObserveCalls {
		if !vm.observer.OnCall(CallEvent{
			Label:      f.label,
			CallSite:   f.callSiteIP,
			Target:     target,
			ReturnAddr: f.returnAddr,
			CallDepth:  len(vm.calls),
		}) {
			vm.halted = true
		}
	}
	return nil
}

func (vm *VirtualMachine) ret(pos int) error {
	n := len(vm.calls)
	if n == 0 {
		return errz.New(errz.EmptyCallStackReturn, pos, "RETURN with no pending CALL")
	}
	f := vm.calls[n-1]
	vm.calls = vm.calls[:n-1]
	vm.lex.Seek(f.returnAddr)
	if vm.observer != nil && vm.observerConfig.ObserveReturns {
		if !vm.observer.OnReturn(ReturnEvent{
			Pos:        pos,
			ReturnAddr: f.returnAddr,
			CallDepth:  len(vm.calls),
		}) {
			vm.halted = true
		}
	}
	return nil
}
