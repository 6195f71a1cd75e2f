package codegen

import (
	"fmt"
	"strings"

	"github.com/kinekt2000/llc/pkgs/ast"
)

// indent is one nesting level of the emitted program.
const indent = "    "

// Generate lowers a PROG tree into the lines of an equivalent Python
// script: a preamble importing sys, one function block per FDEF in source
// order, and a bootstrap footer that invokes main on the argv tail and
// prints its result. Lines carry no trailing newlines; the caller joins
// them.
func Generate(prog *ast.Node) ([]string, error) {
	g := &generator{}
	return g.program(prog)
}

// generator holds per-invocation emission state. mainArity is captured
// while emitting main's definition and consumed by the footer.
type generator struct {
	mainArity int
}

func (g *generator) program(n *ast.Node) ([]string, error) {
	if n.Tag != ast.PROG {
		return nil, errShape(n, "passed to the program emitter")
	}

	lines := []string{"import sys", "", ""}

	for _, fdef := range n.Children {
		if fdef.Tag != ast.FDEF {
			return nil, errShape(n, "has a %s child, want FDEF", fdef.Tag)
		}
		block, err := g.fdef(fdef)
		if err != nil {
			return nil, err
		}
		lines = append(lines, block...)
	}

	lines = append(lines,
		"if __name__ == '__main__':",
		indent+"try:",
		indent+indent+fmt.Sprintf("print(f\"returned: {main(*sys.argv[1:%d]) or 0}\")", g.mainArity+1),
		indent+"except NameError:",
		indent+indent+"print(\"Entry point 'main' not defined\")",
		"",
	)
	return lines, nil
}

func (g *generator) fdef(n *ast.Node) ([]string, error) {
	fname, err := n.Child(ast.FNAME, 0)
	if err != nil {
		return nil, errShape(n, "lacks a FNAME child")
	}
	fargs, err := n.Child(ast.FARGS, 0)
	if err != nil {
		return nil, errShape(n, "lacks a FARGS child")
	}
	fbody, err := n.Child(ast.FBODY, 0)
	if err != nil {
		return nil, errShape(n, "lacks a FBODY child")
	}

	args := make([]string, 0, len(fargs.Children))
	for _, farg := range fargs.Children {
		if farg.Tag != ast.FARG {
			return nil, errShape(fargs, "has a %s child, want FARG", farg.Tag)
		}
		args = append(args, farg.Ident)
	}

	// main's parameters default to 0 so the bootstrap can pass a short
	// argv tail; its arity sizes the argv slice in the footer.
	if fname.Ident == "main" {
		for i, arg := range args {
			args[i] = arg + "=0"
		}
		g.mainArity = len(args)
	}

	lines := []string{fmt.Sprintf("def %s(%s):", fname.Ident, strings.Join(args, ","))}

	body, err := g.body(fbody, 0)
	if err != nil {
		return nil, err
	}
	lines = append(lines, body...)
	lines = append(lines, "", "")
	return lines, nil
}

// body emits an operation sequence one level deeper than the owner, with
// a single pass line when the sequence is empty.
func (g *generator) body(n *ast.Node, level int) ([]string, error) {
	if len(n.Children) == 0 {
		return []string{pad(level+1) + "pass"}, nil
	}
	var lines []string
	for _, op := range n.Children {
		stmt, err := g.statement(op, level+1)
		if err != nil {
			return nil, err
		}
		lines = append(lines, stmt...)
	}
	// A body whose only operations are elided declarations still needs a
	// statement in the target language.
	if len(lines) == 0 {
		lines = []string{pad(level+1) + "pass"}
	}
	return lines, nil
}

func (g *generator) statement(n *ast.Node, level int) ([]string, error) {
	switch n.Tag {
	case ast.VARDECL:
		// Variables are implicit in the target language; declarations
		// emit nothing and the first assignment introduces the name.
		return nil, nil

	case ast.VARASGN:
		if len(n.Children) != 2 {
			return nil, errShape(n, "has %d children, want 2", len(n.Children))
		}
		target, err := n.Child(ast.VAR, 0)
		if err != nil {
			return nil, errShape(n, "lacks a VAR child")
		}
		value, err := g.expr(n.Children[1])
		if err != nil {
			return nil, err
		}
		return []string{pad(level) + target.Ident + " = " + value}, nil

	case ast.READ:
		target, err := n.Child(ast.VAR, 0)
		if err != nil {
			return nil, errShape(n, "lacks a VAR child")
		}
		v := target.Ident
		return []string{
			pad(level) + v + " = input()",
			pad(level) + "try:",
			pad(level+1) + v + " = int(" + v + ")",
			pad(level) + "except ValueError:",
			pad(level+1) + v + " = float(" + v + ")",
		}, nil

	case ast.WRITE:
		if len(n.Children) != 1 {
			return nil, errShape(n, "has %d children, want 1", len(n.Children))
		}
		arg, err := g.expr(n.Children[0])
		if err != nil {
			return nil, err
		}
		return []string{pad(level) + "print(" + arg + ")"}, nil

	case ast.RETURN:
		if len(n.Children) != 1 {
			return nil, errShape(n, "has %d children, want 1", len(n.Children))
		}
		value, err := g.expr(n.Children[0])
		if err != nil {
			return nil, err
		}
		return []string{pad(level) + "return " + value}, nil

	case ast.IF:
		return g.conditional(n, level, "if")

	case ast.WHILE:
		return g.conditional(n, level, "while")
	}

	// Bare expression or condition statements emit at the current level.
	value, err := g.expr(n)
	if err != nil {
		return nil, err
	}
	return []string{pad(level) + value}, nil
}

// conditional emits IF and WHILE, which share their shape: a condition
// header, a branch body, and for IF an optional else branch. An empty
// branch appends pass on the header line.
func (g *generator) conditional(n *ast.Node, level int, keyword string) ([]string, error) {
	cond, err := n.Child(ast.COND, 0)
	if err != nil || len(cond.Children) != 1 {
		return nil, errShape(n, "lacks a COND child with a single condition")
	}
	branch, err := n.Child(ast.BRANCH, 0)
	if err != nil {
		return nil, errShape(n, "lacks a BRANCH child")
	}

	condText, err := g.expr(cond.Children[0])
	if err != nil {
		return nil, err
	}

	header := pad(level) + keyword + " " + condText + ":"
	var lines []string
	if len(branch.Children) == 0 {
		lines = []string{header + "pass"}
	} else {
		lines = []string{header}
		body, err := g.branch(branch, level)
		if err != nil {
			return nil, err
		}
		lines = append(lines, body...)
	}

	if elseBranch, err := n.Child(ast.BRANCH, 1); err == nil && len(elseBranch.Children) > 0 {
		lines = append(lines, pad(level)+"else:")
		body, err := g.branch(elseBranch, level)
		if err != nil {
			return nil, err
		}
		lines = append(lines, body...)
	}
	return lines, nil
}

func (g *generator) branch(n *ast.Node, level int) ([]string, error) {
	var lines []string
	for _, op := range n.Children {
		stmt, err := g.statement(op, level+1)
		if err != nil {
			return nil, err
		}
		lines = append(lines, stmt...)
	}
	if len(lines) == 0 {
		lines = []string{pad(level+1) + "pass"}
	}
	return lines, nil
}

// binSymbols maps binary operator tags to their emitted symbols. The
// logical symbols keep surrounding spaces; arithmetic and comparison
// operands concatenate directly.
var binSymbols = map[ast.Tag]string{
	ast.ADD: "+",
	ast.SUB: "-",
	ast.MUL: "*",
	ast.DIV: "/",
	ast.POW: "**",
	ast.AND: " and ",
	ast.OR:  " or ",
	ast.EQU: "==",
	ast.NEQ: "!=",
	ast.LEQ: "<=",
	ast.LES: "<",
	ast.GEQ: ">=",
	ast.GRT: ">",
}

// expr renders an expression or condition subtree as target source text.
// Every binary operation is fully parenthesized, so the emitted program
// never re-parses precedence.
func (g *generator) expr(n *ast.Node) (string, error) {
	if sym, ok := binSymbols[n.Tag]; ok {
		if len(n.Children) != 2 {
			return "", errShape(n, "has %d children, want 2", len(n.Children))
		}
		lhs, err := g.expr(n.Children[0])
		if err != nil {
			return "", err
		}
		rhs, err := g.expr(n.Children[1])
		if err != nil {
			return "", err
		}
		return "(" + lhs + sym + rhs + ")", nil
	}

	switch n.Tag {
	case ast.NEG, ast.NOT:
		if len(n.Children) != 1 {
			return "", errShape(n, "has %d children, want 1", len(n.Children))
		}
		operand, err := g.expr(n.Children[0])
		if err != nil {
			return "", err
		}
		if n.Tag == ast.NEG {
			return "(-" + operand + ")", nil
		}
		return "(not " + operand + ")", nil

	case ast.FCALL:
		fname, err := n.Child(ast.FNAME, 0)
		if err != nil {
			return "", errShape(n, "lacks a FNAME child")
		}
		args := make([]string, 0, len(n.Children)-1)
		for _, arg := range n.Children[1:] {
			text, err := g.expr(arg)
			if err != nil {
				return "", err
			}
			args = append(args, text)
		}
		return fname.Ident + "(" + strings.Join(args, ", ") + ")", nil

	case ast.VAR:
		return n.Ident, nil

	case ast.INT, ast.FLOAT:
		return n.Scalar(), nil
	}

	return "", errShape(n, "is not an expression")
}

func pad(level int) string {
	return strings.Repeat(indent, level)
}
