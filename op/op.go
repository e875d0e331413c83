// Package op defines the instruction set of the whitespace virtual machine
// and the token sequences that select each instruction.
package op

import (
	"github.com/whint-io/whint/token"
)

// Code is an integer opcode that indicates an operation to execute.
type Code uint8

const (
	Invalid Code = 0

	// Stack manipulation
	Push    Code = 1
	Dup     Code = 2
	Swap    Code = 3
	Discard Code = 4

	// Arithmetic
	Add      Code = 10
	Subtract Code = 11
	Multiply Code = 12
	Divide   Code = 13
	Modulo   Code = 14

	// Heap access
	Store Code = 20
	Load  Code = 21

	// I/O
	PrintChar Code = 30
	PrintNum  Code = 31
	ReadChar  Code = 32
	ReadNum   Code = 33

	// Flow control
	Mark           Code = 40
	Call           Code = 41
	Jump           Code = 42
	JumpIfZero     Code = 43
	JumpIfNegative Code = 44
	Return         Code = 45
	Halt           Code = 46
)

// Family is the instruction category selected by the leading tokens.
type Family uint8

const (
	StackManipulation Family = iota + 1
	Arithmetic
	HeapAccess
	IO
	FlowControl
)

// String returns the name of the instruction family.
func (f Family) String() string {
	switch f {
	case StackManipulation:
		return "stack"
	case Arithmetic:
		return "arithmetic"
	case HeapAccess:
		return "heap"
	case IO:
		return "io"
	case FlowControl:
		return "flow"
	default:
		return ""
	}
}

// Info contains information about an opcode.
type Info struct {
	Code   Code
	Name   string
	Family Family
	// Tokens is the full token sequence that selects the instruction.
	Tokens []token.Token
	// HasOperand is set for instructions followed by an encoded number.
	HasOperand bool
	// StackArgs is the number of operand stack entries the instruction reads.
	StackArgs int
}

var infos = make([]Info, 256)

// ordered lists the instruction set in decision table order.
var ordered []Info

func init() {
	const (
		S = token.SPACE
		T = token.TAB
		L = token.LINEFEED
	)
	type opInfo struct {
		op      Code
		name    string
		family  Family
		tokens  []token.Token
		operand bool
		args    int
	}
	ops := []opInfo{
		{Push, "PUSH", StackManipulation, []token.Token{S, S}, true, 0},
		{Dup, "DUP", StackManipulation, []token.Token{S, L, S}, false, 1},
		{Swap, "SWAP", StackManipulation, []token.Token{S, L, T}, false, 2},
		{Discard, "DISCARD", StackManipulation, []token.Token{S, L, L}, false, 1},
		{Add, "ADD", Arithmetic, []token.Token{T, S, S, S}, false, 2},
		{Subtract, "SUB", Arithmetic, []token.Token{T, S, S, T}, false, 2},
		{Multiply, "MUL", Arithmetic, []token.Token{T, S, S, L}, false, 2},
		{Divide, "DIV", Arithmetic, []token.Token{T, S, T, S}, false, 2},
		{Modulo, "MOD", Arithmetic, []token.Token{T, S, T, T}, false, 2},
		{Store, "STORE", HeapAccess, []token.Token{T, T, S}, false, 2},
		{Load, "LOAD", HeapAccess, []token.Token{T, T, T}, false, 1},
		{PrintChar, "PRINT_CHAR", IO, []token.Token{T, L, S, S}, false, 1},
		{PrintNum, "PRINT_NUM", IO, []token.Token{T, L, S, T}, false, 1},
		{ReadChar, "READ_CHAR", IO, []token.Token{T, L, T, S}, false, 1},
		{ReadNum, "READ_NUM", IO, []token.Token{T, L, T, T}, false, 1},
		{Mark, "MARK", FlowControl, []token.Token{L, S, S}, true, 0},
		{Call, "CALL", FlowControl, []token.Token{L, S, T}, true, 0},
		{Jump, "JUMP", FlowControl, []token.Token{L, S, L}, true, 0},
		{JumpIfZero, "JZ", FlowControl, []token.Token{L, T, S}, true, 1},
		{JumpIfNegative, "JN", FlowControl, []token.Token{L, T, T}, true, 1},
		{Return, "RETURN", FlowControl, []token.Token{L, T, L}, false, 0},
		{Halt, "HALT", FlowControl, []token.Token{L, L, L}, false, 0},
	}
	for _, o := range ops {
		info := Info{
			Code:       o.op,
			Name:       o.name,
			Family:     o.family,
			Tokens:     o.tokens,
			HasOperand: o.operand,
			StackArgs:  o.args,
		}
		infos[o.op] = info
		ordered = append(ordered, info)
		root.insert(info)
	}
}

// GetInfo returns information about the given opcode.
func GetInfo(op Code) Info {
	return infos[op]
}

// Infos returns the instruction set in decision table order.
func Infos() []Info {
	result := make([]Info, len(ordered))
	copy(result, ordered)
	return result
}

// String returns the instruction name, e.g. "PUSH".
func (c Code) String() string {
	if name := infos[c].Name; name != "" {
		return name
	}
	return "INVALID"
}

// Mnemonic returns the token sequence of an instruction in S/T/L form,
// e.g. "SLT" for SWAP.
func (i Info) Mnemonic() string {
	b := make([]byte, 0, len(i.Tokens))
	for _, t := range i.Tokens {
		b = append(b, t.Mnemonic()...)
	}
	return string(b)
}
