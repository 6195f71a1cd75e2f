package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kinekt2000/llc/pkgs/codegen"
	llcerrors "github.com/kinekt2000/llc/pkgs/errors"
	"github.com/kinekt2000/llc/pkgs/parser"
)

var compileFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile <input file path>",
		Short:   "Compile an L source file into a Python script",
		Example: `  llc compile -o program.py program.l`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	root, warns, err := parser.Parse(text)
	if err != nil {
		return llcerrors.Wrap(llcerrors.ErrSyntax, "cannot parse input", err)
	}

	lines, err := codegen.Generate(root)
	if err != nil {
		return llcerrors.Wrap(llcerrors.ErrCodeGeneration, "cannot generate code", err)
	}

	if err := writeOutput(*compileFlags.output, strings.Join(lines, "\n")); err != nil {
		return err
	}

	for _, warn := range warns {
		fmt.Fprintf(os.Stderr, "WARNING::%s\n", warn)
	}
	return nil
}
