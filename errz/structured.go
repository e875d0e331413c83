// Package errz defines the fatal errors raised while decoding and executing
// whitespace programs.
package errz

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of an error. An ErrorKind is itself an
// error so it can be used as an errors.Is target:
//
//	if errors.Is(err, errz.StackUnderflow) { ... }
type ErrorKind int

const (
	// UnfinishedCommand indicates the program ended in the middle of an
	// instruction or number.
	UnfinishedCommand ErrorKind = iota + 1
	// UnexpectedToken indicates a token sequence that names no instruction.
	UnexpectedToken
	// UndefinedLabel indicates a jump or call to a label that is not defined.
	UndefinedLabel
	// StackUnderflow indicates an instruction needed more operands than the
	// stack holds.
	StackUnderflow
	// EmptyCallStackReturn indicates a return with no pending call.
	EmptyCallStackReturn
	// HeapAddressOutOfRange indicates a heap access outside [0, capacity).
	HeapAddressOutOfRange
	// DivisionByZero indicates a division or modulo by zero.
	DivisionByZero
	// InvalidInput indicates the input stream did not hold a number.
	InvalidInput
	// FileNotFound indicates the program file does not exist.
	FileNotFound
	// UnreadableFile indicates the program file could not be read.
	UnreadableFile
)

var kindNames = map[ErrorKind]string{
	UnfinishedCommand:     "unfinished command",
	UnexpectedToken:       "unexpected token",
	UndefinedLabel:        "undefined label",
	StackUnderflow:        "stack underflow",
	EmptyCallStackReturn:  "return with empty call stack",
	HeapAddressOutOfRange: "heap address out of range",
	DivisionByZero:        "division by zero",
	InvalidInput:          "invalid input",
	FileNotFound:          "file not found",
	UnreadableFile:        "unreadable file",
}

// Codes are grouped by phase:
//   - E1xxx: decode errors
//   - E3xxx: runtime errors
//   - E4xxx: program loading errors
var kindCodes = map[ErrorKind]string{
	UnfinishedCommand:     "E1001",
	UnexpectedToken:       "E1002",
	UndefinedLabel:        "E3001",
	StackUnderflow:        "E3002",
	EmptyCallStackReturn:  "E3003",
	HeapAddressOutOfRange: "E3004",
	DivisionByZero:        "E3005",
	InvalidInput:          "E3006",
	FileNotFound:          "E4001",
	UnreadableFile:        "E4002",
}

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "error"
}

// Error implements the error interface.
func (k ErrorKind) Error() string {
	return k.String()
}

// Code returns the stable error code for the kind, e.g. "E3002".
func (k ErrorKind) Code() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return "E0000"
}

// NoPos is used for errors that are not tied to a program position.
const NoPos = -1

// Error is a fatal interpreter error. Pos is the byte offset in the program
// buffer where the fault was detected, or NoPos.
type Error struct {
	Kind    ErrorKind
	Message string
	Pos     int
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (position %d)", e.Kind, e.Message, e.Pos)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}

// New creates a new Error.
func New(kind ErrorKind, pos int, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Pos:     pos,
	}
}

// Newf creates a new Error with a formatted message.
func Newf(kind ErrorKind, pos int, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

// WithCause wraps the error with a cause.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
