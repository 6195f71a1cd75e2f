package ast

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

const renderIndent = "  "

// label renders a node for tree output: the bare tag for internal nodes,
// "TAG[scalar]" for leaves.
func (n *Node) label() string {
	if n.IsLeaf() {
		return fmt.Sprintf("%s[%s]", n.Tag, n.Scalar())
	}
	return n.Tag.String()
}

// String renders the subtree as an indented textual tree, one node per
// line, two spaces per depth level.
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b, 0)
	return b.String()
}

func (n *Node) render(b *strings.Builder, level int) {
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(renderIndent, level))
	b.WriteString(n.label())
	for _, child := range n.Children {
		child.render(b, level+1)
	}
}

type jsonNode struct {
	Name     string      `json:"name"`
	Children []*jsonNode `json:"children,omitempty"`
}

func toJSONNode(n *Node) *jsonNode {
	out := &jsonNode{Name: n.label()}
	for _, child := range n.Children {
		out.Children = append(out.Children, toJSONNode(child))
	}
	return out
}

// Dump renders the tree in the given format: the indented textual tree
// for txt, a nested {"name","children"} object with 2-space indent for
// json. Leaves fold their scalar into name and omit children.
func Dump(root *Node, format string) (string, error) {
	switch format {
	case FormatText:
		return root.String(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(toJSONNode(root), "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown format %q: %q and %q are allowed", format, FormatText, FormatJSON)
	}
}
