package lexer

import (
	"io"
	"strings"

	"github.com/whint-io/whint/errz"
	"github.com/whint-io/whint/op"
	"github.com/whint-io/whint/token"
)

// Instruction is one decoded instruction.
type Instruction struct {
	// Pos is the offset of the instruction's first token.
	Pos     int
	Code    op.Code
	Operand int64
}

// Next decodes the instruction under the cursor by walking the op decode
// tree one token at a time, then reads the instruction's number operand if
// it has one. On success the cursor rests on the first token of the next
// instruction. It returns io.EOF if the cursor is already at the end.
func (l *Lexer) Next() (Instruction, error) {
	if l.AtEOF() {
		return Instruction{}, io.EOF
	}
	instr := Instruction{Pos: l.pos}
	node := op.Root()
	var path []token.Token
	for {
		tok := l.Token()
		path = append(path, tok)
		next := node.Next(tok)
		if next == nil {
			return instr, errz.Newf(errz.UnexpectedToken, l.pos,
				"no instruction starts with %s; expected %s",
				formatPath(path), formatExpected(node.Expected()))
		}
		if next.Terminal() {
			node = next
			break
		}
		node = next
		if err := l.AdvanceOrFail(); err != nil {
			return instr, err
		}
	}
	instr.Code = node.Code()
	if !op.GetInfo(instr.Code).HasOperand {
		l.Advance()
		return instr, nil
	}
	if err := l.AdvanceOrFail(); err != nil {
		return instr, err
	}
	n, err := l.ReadNumber()
	if err != nil {
		return instr, err
	}
	instr.Operand = n
	return instr, nil
}

func formatExpected(tokens []token.Token) string {
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = t.String()
	}
	return strings.Join(names, " or ")
}

func formatPath(path []token.Token) string {
	names := make([]string, len(path))
	for i, t := range path {
		names[i] = t.String()
	}
	return strings.Join(names, " ")
}
