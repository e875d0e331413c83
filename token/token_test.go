package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input byte
		want  Token
		ok    bool
	}{
		{' ', SPACE, true},
		{'\t', TAB, true},
		{'\n', LINEFEED, true},
		{'\r', EOF, false},
		{'a', EOF, false},
		{0, EOF, false},
	}
	for _, tt := range tests {
		got, ok := Classify(tt.input)
		require.Equal(t, tt.want, got, "byte %q", tt.input)
		require.Equal(t, tt.ok, ok, "byte %q", tt.input)
		require.Equal(t, tt.ok, IsSignificant(tt.input))
	}
}

func TestTokenString(t *testing.T) {
	require.Equal(t, "SPACE", SPACE.String())
	require.Equal(t, "TAB", TAB.String())
	require.Equal(t, "LF", LINEFEED.String())
	require.Equal(t, "EOF", EOF.String())
	require.Equal(t, "S", SPACE.Mnemonic())
	require.Equal(t, "T", TAB.Mnemonic())
	require.Equal(t, "L", LINEFEED.Mnemonic())
}
