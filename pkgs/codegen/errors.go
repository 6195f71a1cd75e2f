package codegen

import (
	"fmt"

	"github.com/kinekt2000/llc/pkgs/ast"
)

// GenError reports an AST node whose shape is inconsistent with its tag:
// wrong child count, a child of an unexpected kind, or a tag the walker
// has no rule for. It indicates a bug in the parser or in a hand-built
// tree, never malformed user input.
type GenError struct {
	Tag     ast.Tag
	Message string
}

func (e *GenError) Error() string {
	return fmt.Sprintf("internal: %s node %s", e.Tag, e.Message)
}

func errShape(n *ast.Node, format string, args ...any) *GenError {
	return &GenError{Tag: n.Tag, Message: fmt.Sprintf(format, args...)}
}
