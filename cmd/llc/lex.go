package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	llcerrors "github.com/kinekt2000/llc/pkgs/errors"
	"github.com/kinekt2000/llc/pkgs/lexer"
)

var lexFlags = struct {
	format *string
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "lex <input file path>",
		Short:   "Tokenize an L source file",
		Example: `  llc lex -f json program.l`,
		Args:    cobra.ExactArgs(1),
		RunE:    runLex,
	}
	lexFlags.format = cmd.Flags().StringP("format", "f", lexer.FormatText, "output format: one of txt|json")
	lexFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	tokens := lexer.Tokenize(text)

	dump, err := lexer.DumpTokens(tokens, *lexFlags.format)
	if err != nil {
		return llcerrors.Wrap(llcerrors.ErrBadFormat, "cannot dump tokens", err)
	}
	if err := writeOutput(*lexFlags.output, dump); err != nil {
		return err
	}

	// Unknown characters never abort tokenization; report them after the
	// dump, one line per occurrence.
	var bad []lexer.Token
	for _, tok := range tokens {
		if tok.Type == lexer.ERROR {
			bad = append(bad, tok)
		}
	}
	if len(bad) > 0 {
		fmt.Fprintln(os.Stderr, "===========ERRORS===========")
		for _, tok := range bad {
			fmt.Fprintf(os.Stderr, "ERROR::Unknown Literal %q. At %d:%d\n",
				tok.Text, tok.Line, lexer.Column(text, tok.Index))
		}
	}
	return nil
}
