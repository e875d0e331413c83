package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/whint-io/whint/op"
)

// opEntry describes one instruction of the instruction set.
type opEntry struct {
	Name       string `json:"name"`
	Family     string `json:"family"`
	Tokens     string `json:"tokens"`
	HasOperand bool   `json:"has_operand"`
	StackArgs  int    `json:"stack_args"`
}

func newOpsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "List the instruction set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			return printOps(cmd.OutOrStdout(), v, instructionSet(), format)
		},
	}
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json)")
	cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func instructionSet() []opEntry {
	infos := op.Infos()
	entries := make([]opEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, opEntry{
			Name:       info.Name,
			Family:     info.Family.String(),
			Tokens:     info.Mnemonic(),
			HasOperand: info.HasOperand,
			StackArgs:  info.StackArgs,
		})
	}
	return entries
}

func printOps(w io.Writer, v *viper.Viper, entries []opEntry, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		fmt.Fprintf(w, "%-10s  %-10s  %-6s  %s\n", "OPCODE", "FAMILY", "TOKENS", "ARGS")
		for _, e := range entries {
			tokens := e.Tokens
			if e.HasOperand {
				tokens += "n"
			}
			fmt.Fprintf(w, "%-10s  %-10s  %-6s  %d\n", e.Name, e.Family, tokens, e.StackArgs)
		}
		return nil
	case "json":
		output, err := getOutputJSON(v, w, entries)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(output))
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
