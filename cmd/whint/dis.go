package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/whint-io/whint"
	"github.com/whint-io/whint/dis"
)

var outputFormatsCompletion = []string{"json", "text"}

// listing is the disassembly of one file.
type listing struct {
	File         string            `json:"file"`
	Instructions []dis.Instruction `json:"instructions"`
	Error        string            `json:"error,omitempty"`
}

func newDisCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dis <file>...",
		Short: "Disassemble whitespace programs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			listings, disErr := disassembleFiles(args)
			if err := printListings(cmd.OutOrStdout(), v, listings, format); err != nil {
				return err
			}
			return disErr
		},
	}
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json)")
	cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

// disassembleFiles disassembles every file it can. Failures are collected
// and returned together once all files have been processed.
func disassembleFiles(paths []string) ([]listing, error) {
	var result *multierror.Error
	var listings []listing
	for _, path := range paths {
		program, err := whint.LoadFile(path)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		l := listing{File: path}
		l.Instructions, err = dis.Disassemble(program)
		if err != nil {
			l.Error = err.Error()
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
		}
		listings = append(listings, l)
	}
	return listings, result.ErrorOrNil()
}

func printListings(w io.Writer, v *viper.Viper, listings []listing, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		for i, l := range listings {
			if len(listings) > 1 {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s:\n", l.File)
			}
			dis.Print(l.Instructions, w)
		}
		return nil
	case "json":
		if listings == nil {
			listings = []listing{}
		}
		output, err := getOutputJSON(v, w, listings)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(output))
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
