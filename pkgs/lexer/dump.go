package lexer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Dump output formats.
const (
	FormatText = "txt"
	FormatJSON = "json"
)

type tokenJSON struct {
	Type   string `json:"type"`
	Value  any    `json:"value"`
	Lineno int    `json:"lineno"`
	Index  int    `json:"index"`
}

// DumpTokens renders a token sequence in the given format: one
// "<TAG> <value> <lineno> <index>" line per token for txt, an array of
// {"type","value","lineno","index"} objects for json.
func DumpTokens(tokens []Token, format string) (string, error) {
	switch format {
	case FormatText:
		var b strings.Builder
		for i, tok := range tokens {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%s %s %d %d", tok.Type, tok.ValueString(), tok.Line, tok.Index)
		}
		return b.String(), nil

	case FormatJSON:
		out := make([]tokenJSON, len(tokens))
		for i, tok := range tokens {
			out[i] = tokenJSON{
				Type:   tok.Type.String(),
				Value:  tok.Value(),
				Lineno: tok.Line,
				Index:  tok.Index,
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("unknown format %q: %q and %q are allowed", format, FormatText, FormatJSON)
	}
}
