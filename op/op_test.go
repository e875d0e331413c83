package op

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/whint-io/whint/token"
)

const (
	S = token.SPACE
	T = token.TAB
	L = token.LINEFEED
)

// lookup walks the decode tree with exactly the given tokens.
func lookup(tokens ...token.Token) (Code, bool) {
	n := Root()
	for _, t := range tokens {
		if n = n.Next(t); n == nil {
			return Invalid, false
		}
	}
	return n.Code(), n.Terminal()
}

func TestGetInfo(t *testing.T) {
	info := GetInfo(Swap)
	require.Equal(t, "SWAP", info.Name)
	require.Equal(t, Swap, info.Code)
	require.Equal(t, StackManipulation, info.Family)
	require.Equal(t, 2, info.StackArgs)
	require.False(t, info.HasOperand)
	require.Equal(t, "SLT", info.Mnemonic())
}

func TestDecodeAllInstructions(t *testing.T) {
	tests := []struct {
		tokens  []token.Token
		code    Code
		name    string
		operand bool
	}{
		{[]token.Token{S, S}, Push, "PUSH", true},
		{[]token.Token{S, L, S}, Dup, "DUP", false},
		{[]token.Token{S, L, T}, Swap, "SWAP", false},
		{[]token.Token{S, L, L}, Discard, "DISCARD", false},
		{[]token.Token{T, S, S, S}, Add, "ADD", false},
		{[]token.Token{T, S, S, T}, Subtract, "SUB", false},
		{[]token.Token{T, S, S, L}, Multiply, "MUL", false},
		{[]token.Token{T, S, T, S}, Divide, "DIV", false},
		{[]token.Token{T, S, T, T}, Modulo, "MOD", false},
		{[]token.Token{T, T, S}, Store, "STORE", false},
		{[]token.Token{T, T, T}, Load, "LOAD", false},
		{[]token.Token{T, L, S, S}, PrintChar, "PRINT_CHAR", false},
		{[]token.Token{T, L, S, T}, PrintNum, "PRINT_NUM", false},
		{[]token.Token{T, L, T, S}, ReadChar, "READ_CHAR", false},
		{[]token.Token{T, L, T, T}, ReadNum, "READ_NUM", false},
		{[]token.Token{L, S, S}, Mark, "MARK", true},
		{[]token.Token{L, S, T}, Call, "CALL", true},
		{[]token.Token{L, S, L}, Jump, "JUMP", true},
		{[]token.Token{L, T, S}, JumpIfZero, "JZ", true},
		{[]token.Token{L, T, T}, JumpIfNegative, "JN", true},
		{[]token.Token{L, T, L}, Return, "RETURN", false},
		{[]token.Token{L, L, L}, Halt, "HALT", false},
	}
	require.Len(t, Infos(), len(tests))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := lookup(tt.tokens...)
			require.True(t, ok)
			require.Equal(t, tt.code, code)
			require.Equal(t, tt.name, code.String())
			require.Equal(t, tt.operand, GetInfo(code).HasOperand)
			require.Equal(t, tt.tokens, GetInfo(code).Tokens)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	invalid := [][]token.Token{
		{S, T},
		{T, S, T, L},
		{T, T, L},
		{T, L, S, L},
		{T, L, L},
		{L, L, S},
		{L, L, T},
		{S},
		{},
	}
	for _, tokens := range invalid {
		_, ok := lookup(tokens...)
		require.False(t, ok, "tokens %v", tokens)
	}
}

func TestDecodeTreeWalk(t *testing.T) {
	n := Root()
	require.False(t, n.Terminal())
	require.Equal(t, []token.Token{S, T, L}, n.Expected())

	n = n.Next(L)
	require.NotNil(t, n)
	n = n.Next(L)
	require.NotNil(t, n)
	require.Equal(t, []token.Token{L}, n.Expected())
	require.Nil(t, n.Next(S))
	require.Nil(t, n.Next(token.EOF))

	n = n.Next(L)
	require.True(t, n.Terminal())
	require.Equal(t, Halt, n.Code())
}

func TestFamilyString(t *testing.T) {
	require.Equal(t, "stack", StackManipulation.String())
	require.Equal(t, "arithmetic", Arithmetic.String())
	require.Equal(t, "heap", HeapAccess.String())
	require.Equal(t, "io", IO.String())
	require.Equal(t, "flow", FlowControl.String())
	require.Equal(t, "INVALID", Invalid.String())
}
