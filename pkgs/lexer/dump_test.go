package lexer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDumpTokensText(t *testing.T) {
	input := "let x = 4;\n@"
	dump, err := DumpTokens(Tokenize(input), FormatText)
	if err != nil {
		t.Fatalf("DumpTokens: %v", err)
	}

	want := strings.Join([]string{
		`LET "let" 1 0`,
		`IDENT "x" 1 4`,
		`ASSIGN "=" 1 6`,
		`INT 4 1 8`,
		`SEMICOLON ";" 1 9`,
		`ERROR "@" 2 11`,
	}, "\n")

	if diff := cmp.Diff(want, dump); diff != "" {
		t.Errorf("text dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpTokensJSON(t *testing.T) {
	input := "let 0.5"
	dump, err := DumpTokens(Tokenize(input), FormatJSON)
	if err != nil {
		t.Fatalf("DumpTokens: %v", err)
	}

	want := strings.Join([]string{
		`[`,
		`  {`,
		`    "type": "LET",`,
		`    "value": "let",`,
		`    "lineno": 1,`,
		`    "index": 0`,
		`  },`,
		`  {`,
		`    "type": "FLOAT",`,
		`    "value": 0.5,`,
		`    "lineno": 1,`,
		`    "index": 4`,
		`  }`,
		`]`,
	}, "\n")

	if diff := cmp.Diff(want, dump); diff != "" {
		t.Errorf("json dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpTokensUnknownFormat(t *testing.T) {
	_, err := DumpTokens(nil, "yaml")
	if err == nil {
		t.Fatal("expected an error for an unknown format")
	}
	if !strings.Contains(err.Error(), `unknown format "yaml"`) {
		t.Errorf("unexpected error message: %v", err)
	}
}
