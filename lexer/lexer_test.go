package lexer

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/whint-io/whint/errz"
	"github.com/whint-io/whint/token"
)

func TestNewSkipsLeadingComments(t *testing.T) {
	l := New([]byte("abc \t"))
	require.Equal(t, 3, l.Pos())
	require.Equal(t, token.SPACE, l.Token())
}

func TestAdvance(t *testing.T) {
	l := New([]byte(" x\ty\r\nz"))
	var got []token.Token
	var positions []int
	for {
		got = append(got, l.Token())
		positions = append(positions, l.Pos())
		if !l.Advance() {
			break
		}
	}
	require.Equal(t, []token.Token{token.SPACE, token.TAB, token.LINEFEED}, got)
	require.Equal(t, []int{0, 2, 5}, positions)
	require.True(t, l.AtEOF())
	require.Equal(t, token.EOF, l.Token())
	require.Equal(t, 7, l.Pos())

	// Advancing at the end is a no-op.
	require.False(t, l.Advance())
	require.Equal(t, 7, l.Pos())
}

func TestAdvanceOrFail(t *testing.T) {
	l := New([]byte(" comment"))
	err := l.AdvanceOrFail()
	require.Error(t, err)
	require.True(t, errors.Is(err, errz.UnfinishedCommand))

	var e *errz.Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, 8, e.Pos)
}

func TestEmptyProgram(t *testing.T) {
	l := New(nil)
	require.True(t, l.AtEOF())
	require.Equal(t, token.EOF, l.Token())
	require.False(t, l.Advance())
}

func TestSeek(t *testing.T) {
	l := New([]byte("  ab\t"))
	l.Seek(2)
	require.Equal(t, 4, l.Pos())
	require.Equal(t, token.TAB, l.Token())

	l.Seek(-5)
	require.Equal(t, 0, l.Pos())

	l.Seek(100)
	require.True(t, l.AtEOF())
	require.Equal(t, 5, l.Pos())
}

func TestReadNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"ten", " \t \t \n", 10},
		{"minus eight", "\t\t   \n", -8},
		{"zero bits positive", " \n", 0},
		{"zero bits negative", "\t\n", 0},
		{"leading zeros", "    \t\n", 1},
		{"comments inside", " x\ty \tz \n", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New([]byte(tt.input))
			got, err := l.ReadNumber()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.True(t, l.AtEOF())
		})
	}
}

func TestReadNumberLeavesCursorOnNextToken(t *testing.T) {
	l := New([]byte(" \t\n..\t"))
	n, err := l.ReadNumber()
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.Equal(t, 5, l.Pos())
	require.Equal(t, token.TAB, l.Token())
}

func TestReadNumberUnterminated(t *testing.T) {
	for _, input := range []string{"", " ", " \t\t", "\t  ab"} {
		l := New([]byte(input))
		_, err := l.ReadNumber()
		require.Error(t, err, "input %q", input)
		require.True(t, errors.Is(err, errz.UnfinishedCommand), "input %q", input)
	}
}

func TestEncodeNumber(t *testing.T) {
	require.Equal(t, " \t \t \n", string(EncodeNumber(10)))
	require.Equal(t, "\t\t   \n", string(EncodeNumber(-8)))
	require.Equal(t, " \n", string(EncodeNumber(0)))
}

func TestNumberRoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 2, 7, -7, 10, -8, 255, 1024, -65536,
		math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64 + 1, math.MinInt64,
	}
	for _, v := range values {
		l := New(EncodeNumber(v))
		got, err := l.ReadNumber()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}
