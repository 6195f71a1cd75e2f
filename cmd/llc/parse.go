package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kinekt2000/llc/pkgs/ast"
	llcerrors "github.com/kinekt2000/llc/pkgs/errors"
	"github.com/kinekt2000/llc/pkgs/parser"
)

var parseFlags = struct {
	format *string
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <input file path>",
		Short:   "Parse an L source file and dump its syntax tree",
		Example: `  llc parse -f json program.l`,
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	parseFlags.format = cmd.Flags().StringP("format", "f", ast.FormatText, "output format: one of txt|json")
	parseFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	root, warns, err := parser.Parse(text)
	if err != nil {
		return llcerrors.Wrap(llcerrors.ErrSyntax, "cannot parse input", err)
	}

	dump, err := ast.Dump(root, *parseFlags.format)
	if err != nil {
		return llcerrors.Wrap(llcerrors.ErrBadFormat, "cannot dump syntax tree", err)
	}
	if err := writeOutput(*parseFlags.output, dump); err != nil {
		return err
	}

	for _, warn := range warns {
		fmt.Fprintf(os.Stderr, "WARNING::%s\n", warn)
	}
	return nil
}
