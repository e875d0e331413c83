package lexer

import (
	"github.com/whint-io/whint/errz"
	"github.com/whint-io/whint/token"
)

// ReadNumber decodes a number starting at the sign token under the cursor.
//
// The first token is the sign (SPACE is positive, TAB is negative). It is
// followed by the magnitude in binary, most significant bit first, with
// SPACE as 0 and TAB as 1, terminated by LINEFEED. This is sign and
// magnitude, not two's complement:
//
//	10: SPACE TAB SPACE TAB SPACE LF
//	-8: TAB TAB SPACE SPACE SPACE LF
//
// On return the cursor rests on the token after the terminator.
func (l *Lexer) ReadNumber() (int64, error) {
	if l.AtEOF() {
		return 0, errz.New(errz.UnfinishedCommand, l.pos, "program ended before a number")
	}
	negative := l.Token() == token.TAB
	if err := l.advanceInNumber(); err != nil {
		return 0, err
	}
	var magnitude uint64
	for l.Token() != token.LINEFEED {
		magnitude <<= 1
		if l.Token() == token.TAB {
			magnitude |= 1
		}
		if err := l.advanceInNumber(); err != nil {
			return 0, err
		}
	}
	l.Advance()
	value := int64(magnitude)
	if negative {
		value = -value
	}
	return value, nil
}

func (l *Lexer) advanceInNumber() error {
	if !l.Advance() {
		return errz.New(errz.UnfinishedCommand, l.pos, "number is missing its LF terminator")
	}
	return nil
}

// EncodeNumber returns the canonical token encoding of n, including the
// sign and the LF terminator. Zero is encoded with no magnitude bits.
func EncodeNumber(n int64) []byte {
	out := make([]byte, 0, 66)
	magnitude := uint64(n)
	if n < 0 {
		out = append(out, byte(token.TAB))
		magnitude = -magnitude
	} else {
		out = append(out, byte(token.SPACE))
	}
	started := false
	for bit := 63; bit >= 0; bit-- {
		if magnitude&(1<<uint(bit)) != 0 {
			started = true
			out = append(out, byte(token.TAB))
		} else if started {
			out = append(out, byte(token.SPACE))
		}
	}
	return append(out, byte(token.LINEFEED))
}
