// Package dis supports analysis of whitespace programs by disassembling them
// into a readable instruction listing.
package dis

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/whint-io/whint/lexer"
	"github.com/whint-io/whint/op"
)

// Instruction represents a single decoded instruction.
type Instruction struct {
	Offset     int     `json:"offset"`
	Name       string  `json:"name"`
	Code       op.Code `json:"code"`
	Tokens     string  `json:"tokens"`
	Operand    int64   `json:"operand"`
	HasOperand bool    `json:"has_operand"`
}

// Disassemble decodes the program from its first token to its end. It does
// not execute anything. If decoding fails, the instructions decoded before
// the failure are returned along with the error.
func Disassemble(program []byte) ([]Instruction, error) {
	lex := lexer.New(program)
	var instructions []Instruction
	for {
		instr, err := lex.Next()
		if errors.Is(err, io.EOF) {
			return instructions, nil
		}
		if err != nil {
			return instructions, err
		}
		info := op.GetInfo(instr.Code)
		instructions = append(instructions, Instruction{
			Offset:     instr.Pos,
			Name:       info.Name,
			Code:       instr.Code,
			Tokens:     info.Mnemonic(),
			Operand:    instr.Operand,
			HasOperand: info.HasOperand,
		})
	}
}

// Print writes an aligned listing of the instructions to the given writer.
func Print(instructions []Instruction, writer io.Writer) {
	bold := color.New(color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	offsetWidth, nameWidth, tokensWidth := len("OFFSET"), len("OPCODE"), len("TOKENS")
	for _, instr := range instructions {
		offsetWidth = max(offsetWidth, len(strconv.Itoa(instr.Offset)))
		nameWidth = max(nameWidth, len(instr.Name))
		tokensWidth = max(tokensWidth, len(instr.Tokens))
	}

	header := fmt.Sprintf("%*s  %-*s  %-*s  %s",
		offsetWidth, "OFFSET", nameWidth, "OPCODE", tokensWidth, "TOKENS", "OPERAND")
	fmt.Fprintln(writer, header)
	for _, instr := range instructions {
		var line strings.Builder
		fmt.Fprintf(&line, "%*d  %s  %-*s", offsetWidth, instr.Offset,
			bold(fmt.Sprintf("%-*s", nameWidth, instr.Name)), tokensWidth, instr.Tokens)
		if instr.HasOperand {
			fmt.Fprintf(&line, "  %s", yellow(instr.Operand))
		}
		fmt.Fprintln(writer, strings.TrimRight(line.String(), " "))
	}
}
