// Package token defines the tokens that carry meaning in a whitespace program.
package token

// Token is one of the three significant whitespace bytes, or EOF.
type Token byte

// Token kinds. Any byte not listed here is a comment.
const (
	EOF      Token = 0
	SPACE    Token = ' '
	TAB      Token = '\t'
	LINEFEED Token = '\n'
)

// Classify returns the token for the given byte and whether the byte is
// significant.
func Classify(b byte) (Token, bool) {
	switch b {
	case ' ':
		return SPACE, true
	case '\t':
		return TAB, true
	case '\n':
		return LINEFEED, true
	default:
		return EOF, false
	}
}

// IsSignificant reports whether b is a token rather than a comment byte.
func IsSignificant(b byte) bool {
	_, ok := Classify(b)
	return ok
}

// String returns the upper-case name of the token.
func (t Token) String() string {
	switch t {
	case SPACE:
		return "SPACE"
	case TAB:
		return "TAB"
	case LINEFEED:
		return "LF"
	case EOF:
		return "EOF"
	default:
		return "INVALID"
	}
}

// Mnemonic returns the single-letter form used in listings: S, T or L.
func (t Token) Mnemonic() string {
	switch t {
	case SPACE:
		return "S"
	case TAB:
		return "T"
	case LINEFEED:
		return "L"
	default:
		return "?"
	}
}
