package errz

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := New(UnexpectedToken, 12, "no instruction starts with TAB TAB LF")
	require.Equal(t, "unexpected token: no instruction starts with TAB TAB LF (position 12)", err.Error())

	err = New(EmptyCallStackReturn, NoPos, "nothing to return to")
	require.Equal(t, "return with empty call stack: nothing to return to", err.Error())
}

func TestErrorsIsKind(t *testing.T) {
	err := Newf(StackUnderflow, 3, "%s needs %d operands, have %d", "ADD", 2, 1)
	wrapped := fmt.Errorf("run failed: %w", err)

	require.True(t, errors.Is(wrapped, StackUnderflow))
	require.False(t, errors.Is(wrapped, HeapAddressOutOfRange))

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	require.Equal(t, StackUnderflow, kind)

	_, ok = KindOf(errors.New("plain"))
	require.False(t, ok)
}

func TestErrorCause(t *testing.T) {
	err := New(FileNotFound, NoPos, "hello.ws").WithCause(fs.ErrNotExist)
	require.True(t, errors.Is(err, fs.ErrNotExist))
	require.True(t, errors.Is(err, FileNotFound))
}

func TestKindCodes(t *testing.T) {
	require.Equal(t, "E1001", UnfinishedCommand.Code())
	require.Equal(t, "E3002", StackUnderflow.Code())
	require.Equal(t, "E4001", FileNotFound.Code())
	require.Equal(t, "E0000", ErrorKind(99).Code())
	require.Equal(t, "error", ErrorKind(99).String())
}
