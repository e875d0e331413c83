// Package lexer provides a cursor over a whitespace program buffer. Only
// SPACE, TAB and LINEFEED are tokens; every other byte is skipped, even in
// the middle of an instruction.
package lexer

import (
	"github.com/whint-io/whint/errz"
	"github.com/whint-io/whint/token"
)

// Lexer walks a program buffer one token at a time. Outside of a call to
// one of its methods the cursor always rests on a token or on the end of
// the buffer.
type Lexer struct {
	input []byte
	pos   int
}

// New returns a Lexer positioned on the first token of input.
func New(input []byte) *Lexer {
	l := &Lexer{input: input}
	l.skip()
	return l
}

// skip moves the cursor forward until it rests on a token or the end.
func (l *Lexer) skip() {
	for l.pos < len(l.input) && !token.IsSignificant(l.input[l.pos]) {
		l.pos++
	}
}

// Pos returns the byte offset of the cursor.
func (l *Lexer) Pos() int {
	return l.pos
}

// AtEOF reports whether the cursor has reached the end of the buffer.
func (l *Lexer) AtEOF() bool {
	return l.pos >= len(l.input)
}

// Token returns the token under the cursor, or token.EOF at the end.
func (l *Lexer) Token() token.Token {
	if l.AtEOF() {
		return token.EOF
	}
	tok, _ := token.Classify(l.input[l.pos])
	return tok
}

// Seek moves the cursor to pos and then forward to the next token.
func (l *Lexer) Seek(pos int) {
	switch {
	case pos < 0:
		pos = 0
	case pos > len(l.input):
		pos = len(l.input)
	}
	l.pos = pos
	l.skip()
}

// Advance moves the cursor to the next token. It returns false if the end
// of the buffer was reached instead.
func (l *Lexer) Advance() bool {
	if l.AtEOF() {
		return false
	}
	l.pos++
	l.skip()
	return !l.AtEOF()
}

// AdvanceOrFail is like Advance but reports reaching the end of the buffer
// as an UnfinishedCommand error.
func (l *Lexer) AdvanceOrFail() error {
	if !l.Advance() {
		return errz.New(errz.UnfinishedCommand, l.pos, "program ended in the middle of an instruction")
	}
	return nil
}
