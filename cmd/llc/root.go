package main

import (
	"os"

	"github.com/spf13/cobra"

	llcerrors "github.com/kinekt2000/llc/pkgs/errors"
)

var rootCmd = &cobra.Command{
	Use:   "llc",
	Short: "Compile the L language into Python",
	Long: `llc is a source-to-source compiler for the L language:
- Compiles an L program into an equivalent Python script.
- Dumps the token stream or the abstract syntax tree, primarily
  aimed at debugging a program or the compiler itself.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}

// readInput loads the source file named by the positional argument.
func readInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", llcerrors.Wrap(llcerrors.ErrInputRead, "cannot read input file", err).
			WithContext("path", path)
	}
	return string(data), nil
}

// writeOutput prints to stdout when path is empty, otherwise writes the
// file, overwriting any previous content.
func writeOutput(path, content string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(content + "\n")
		return err
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return llcerrors.Wrap(llcerrors.ErrOutputWrite, "cannot write output file", err).
			WithContext("path", path)
	}
	return nil
}
