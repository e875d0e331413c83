package whint

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/whint-io/whint/errz"
)

// Prints "Hello!" and halts.
const hello = "   \t  \t   \n\t\n     \t\t  \t \t\n\t\n     \t\t \t\t  \n \n" +
	" \t\n  \t\n     \t\t \t\t\t\t\n\t\n     \t    \t\n\t\n  \n\n\n"

func ExampleRun() {
	err := Run(context.Background(), []byte(hello), WithOutput(os.Stdout))
	if err != nil {
		panic(err)
	}
	// Output: Hello!
}

func TestRunWithComments(t *testing.T) {
	// Push 1, push 2, add, print the number; annotated with comments.
	program := "push:[   \t\n]push:[   \t \n]add:[\t   ]print:[\t\n \t]"
	var out bytes.Buffer
	err := Run(context.Background(), []byte(program), WithOutput(&out))
	require.NoError(t, err)
	require.Equal(t, "3", out.String())
}

func TestRunEcho(t *testing.T) {
	// push 0, read char, load, print char
	program := "   \n" + "\t\n\t " + "\t\t\t" + "\t\n  "
	var out bytes.Buffer
	err := Run(context.Background(), []byte(program),
		WithInput(strings.NewReader("Z")),
		WithOutput(&out))
	require.NoError(t, err)
	require.Equal(t, "Z", out.String())
}

func TestRunHeapSize(t *testing.T) {
	// push 10, load
	program := []byte("   \t \t \n\t\t\t")
	require.NoError(t, Run(context.Background(), program))

	err := Run(context.Background(), program, WithHeapSize(8))
	require.True(t, errors.Is(err, errz.HeapAddressOutOfRange))
}

func TestRunRejectsInvalidHeapSize(t *testing.T) {
	program := []byte("   \t \t \n\t\t\t")
	for _, size := range []int{0, -1} {
		err := Run(context.Background(), program, WithHeapSize(size))
		require.Error(t, err, "heap size %d", size)
		require.Contains(t, err.Error(), "invalid heap size")
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.ws")
	require.NoError(t, os.WriteFile(path, []byte(hello), 0o644))

	var out bytes.Buffer
	require.NoError(t, RunFile(context.Background(), path, WithOutput(&out)))
	require.Equal(t, "Hello!", out.String())
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.ws"))
	require.True(t, errors.Is(err, errz.FileNotFound))
	require.Contains(t, err.Error(), "missing.ws")

	_, err = LoadFile(dir)
	require.True(t, errors.Is(err, errz.UnreadableFile))
}
