package parser

import (
	"github.com/kinekt2000/llc/pkgs/ast"
	"github.com/kinekt2000/llc/pkgs/lexer"
)

// WarnNoMain is recorded when a program defines no main function.
// Warnings never fail a parse.
const WarnNoMain = "main function is not defined"

// Parse consumes L source text and returns the PROG root together with
// any non-fatal warnings. On malformed input it returns exactly one
// *SyntaxError carrying the offending position; no recovery is attempted.
func Parse(text string) (root *ast.Node, warns []string, err error) {
	p := &parser{
		text: text,
		toks: lexer.Tokenize(text),
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		synErr, ok := r.(*SyntaxError)
		if !ok {
			panic(r)
		}
		root, warns, err = nil, nil, synErr
	}()

	root = p.parseProgram()

	if !hasMain(root) {
		warns = append(warns, WarnNoMain)
	}
	return root, warns, nil
}

func hasMain(prog *ast.Node) bool {
	for _, fdef := range prog.Children {
		fname, err := fdef.Child(ast.FNAME, 0)
		if err == nil && fname.Ident == "main" {
			return true
		}
	}
	return false
}

// parser is a single-use token cursor. A fresh parser is built per Parse
// call; nothing is carried across invocations.
type parser struct {
	text string
	toks []lexer.Token
	pos  int
}

// peek returns the lookahead token without consuming it. An ERROR lexeme
// reaching the parser is always fatal, wherever it appears.
func (p *parser) peek() (lexer.Token, bool) {
	if p.pos >= len(p.toks) {
		return lexer.Token{}, false
	}
	tok := p.toks[p.pos]
	if tok.Type == lexer.ERROR {
		panic(errUnknownLiteral(p.text, tok))
	}
	return tok, true
}

// peekTypeAt returns the type of the token n positions ahead, without the
// ERROR check; used only to disambiguate "IDENT =" from an expression.
func (p *parser) peekTypeAt(n int) (lexer.TokenType, bool) {
	if p.pos+n >= len(p.toks) {
		return 0, false
	}
	return p.toks[p.pos+n].Type, true
}

func (p *parser) expect(want lexer.TokenType) lexer.Token {
	tok, ok := p.peek()
	if !ok {
		panic(errEOF())
	}
	if tok.Type != want {
		panic(errUnexpected(p.text, tok))
	}
	p.pos++
	return tok
}

func (p *parser) accept(want lexer.TokenType) bool {
	tok, ok := p.peek()
	if !ok || tok.Type != want {
		return false
	}
	p.pos++
	return true
}

// failAtLookahead raises the unexpected-token error at the current
// lookahead position, or the EOF error when input is exhausted.
func (p *parser) failAtLookahead() {
	tok, ok := p.peek()
	if !ok {
		panic(errEOF())
	}
	panic(errUnexpected(p.text, tok))
}

// program := fdef+
func (p *parser) parseProgram() *ast.Node {
	fdefs := []*ast.Node{p.parseFdef()}
	for {
		if _, ok := p.peek(); !ok {
			break
		}
		fdefs = append(fdefs, p.parseFdef())
	}
	return ast.NewNode(ast.PROG, fdefs...)
}

// fdef := 'function' IDENT '(' arg_list? ')' statement
func (p *parser) parseFdef() *ast.Node {
	p.expect(lexer.FUNC)
	name := p.expect(lexer.IDENT)
	p.expect(lexer.LPAREN)

	var fargs []*ast.Node
	if tok, ok := p.peek(); ok && tok.Type == lexer.IDENT {
		for {
			arg := p.expect(lexer.IDENT)
			fargs = append(fargs, ast.NewIdent(ast.FARG, arg.Text))
			if !p.accept(lexer.COMMA) {
				break
			}
		}
	}
	p.expect(lexer.RPAREN)

	body := p.parseStatement()

	return ast.NewNode(ast.FDEF,
		ast.NewIdent(ast.FNAME, name.Text),
		ast.NewNode(ast.FARGS, fargs...),
		ast.NewNode(ast.FBODY, body...),
	)
}

// parseStatement returns the operations a statement contributes to its
// containing body. Blocks flatten into the enclosing sequence, and
// 'let x = e' expands into a VARDECL followed by a VARASGN, so one
// statement may contribute zero or more nodes.
func (p *parser) parseStatement() []*ast.Node {
	tok, ok := p.peek()
	if !ok {
		panic(errEOF())
	}

	switch tok.Type {
	case lexer.LCURLY:
		p.pos++
		var ops []*ast.Node
		for {
			next, ok := p.peek()
			if !ok {
				panic(errEOF())
			}
			if next.Type == lexer.RCURLY {
				break
			}
			ops = append(ops, p.parseStatement()...)
		}
		p.pos++
		return ops

	case lexer.IF:
		p.pos++
		p.expect(lexer.LPAREN)
		cond := p.parseCondition()
		p.expect(lexer.RPAREN)
		thenOps := p.parseStatement()

		children := []*ast.Node{
			ast.NewNode(ast.COND, cond),
			ast.NewNode(ast.BRANCH, thenOps...),
		}
		// An 'else' binds to the nearest unmatched 'if'.
		if p.accept(lexer.ELSE) {
			elseOps := p.parseStatement()
			children = append(children, ast.NewNode(ast.BRANCH, elseOps...))
		}
		return []*ast.Node{ast.NewNode(ast.IF, children...)}

	case lexer.WHILE:
		p.pos++
		p.expect(lexer.LPAREN)
		cond := p.parseCondition()
		p.expect(lexer.RPAREN)
		body := p.parseStatement()
		return []*ast.Node{ast.NewNode(ast.WHILE,
			ast.NewNode(ast.COND, cond),
			ast.NewNode(ast.BRANCH, body...),
		)}

	default:
		ops := p.parseOperation()
		p.expect(lexer.SEMICOLON)
		return ops
	}
}

// operation := 'let' IDENT ('=' expression)? | IDENT '=' expression
//            | 'read' '(' IDENT ')' | 'write' '(' expression-or-condition ')'
//            | 'return' expression | expression | condition
func (p *parser) parseOperation() []*ast.Node {
	tok, ok := p.peek()
	if !ok {
		panic(errEOF())
	}

	switch tok.Type {
	case lexer.LET:
		p.pos++
		name := p.expect(lexer.IDENT)
		decl := ast.NewNode(ast.VARDECL, ast.NewIdent(ast.NAME, name.Text))
		if !p.accept(lexer.ASSIGN) {
			return []*ast.Node{decl}
		}
		value := p.parseExpression()
		return []*ast.Node{
			decl,
			ast.NewNode(ast.VARASGN, ast.NewIdent(ast.VAR, name.Text), value),
		}

	case lexer.READ:
		p.pos++
		p.expect(lexer.LPAREN)
		name := p.expect(lexer.IDENT)
		p.expect(lexer.RPAREN)
		return []*ast.Node{ast.NewNode(ast.READ, ast.NewIdent(ast.VAR, name.Text))}

	case lexer.WRITE:
		p.pos++
		p.expect(lexer.LPAREN)
		arg := p.parseBinary(0)
		p.expect(lexer.RPAREN)
		return []*ast.Node{ast.NewNode(ast.WRITE, arg)}

	case lexer.RETURN:
		p.pos++
		value := p.parseExpression()
		return []*ast.Node{ast.NewNode(ast.RETURN, value)}

	case lexer.IDENT:
		if next, ok := p.peekTypeAt(1); ok && next == lexer.ASSIGN {
			p.pos += 2
			value := p.parseExpression()
			return []*ast.Node{ast.NewNode(ast.VARASGN, ast.NewIdent(ast.VAR, tok.Text), value)}
		}
	}

	// Bare expression or condition as a statement.
	return []*ast.Node{p.parseBinary(0)}
}

// Operator precedence, lowest to highest. The virtual IFX level (1) and
// ELSE (2) are resolved structurally by parseStatement; NOT (5) and
// NEG (9) are prefix levels handled in parsePrefix.
type assoc int

const (
	assocLeft assoc = iota
	assocRight
	assocNonassoc
)

const (
	precOr  = 3
	precAnd = 4
	precNot = 5
	precCmp = 6
	precAdd = 7
	precMul = 8
	precNeg = 9
	precPow = 10
)

type binOp struct {
	prec    int
	assoc   assoc
	tag     ast.Tag
	logical bool // operands are conditions, not expressions
}

var binOps = map[lexer.TokenType]binOp{
	lexer.OR:  {precOr, assocRight, ast.OR, true},
	lexer.AND: {precAnd, assocRight, ast.AND, true},
	lexer.EQU: {precCmp, assocNonassoc, ast.EQU, false},
	lexer.NEQ: {precCmp, assocNonassoc, ast.NEQ, false},
	lexer.LEQ: {precCmp, assocNonassoc, ast.LEQ, false},
	lexer.LES: {precCmp, assocNonassoc, ast.LES, false},
	lexer.GEQ: {precCmp, assocNonassoc, ast.GEQ, false},
	lexer.GRT: {precCmp, assocNonassoc, ast.GRT, false},
	lexer.ADD: {precAdd, assocLeft, ast.ADD, false},
	lexer.SUB: {precAdd, assocLeft, ast.SUB, false},
	lexer.MUL: {precMul, assocLeft, ast.MUL, false},
	lexer.DIV: {precMul, assocLeft, ast.DIV, false},
	lexer.POW: {precPow, assocRight, ast.POW, false},
}

// isExpression reports whether the node is an arithmetic expression: the
// only operands arithmetic operators, comparisons, returns and
// assignments admit.
func isExpression(n *ast.Node) bool {
	switch n.Tag {
	case ast.ADD, ast.SUB, ast.MUL, ast.DIV, ast.POW, ast.NEG,
		ast.FCALL, ast.VAR, ast.INT, ast.FLOAT:
		return true
	}
	return false
}

// isCondition reports whether the node is a boolean condition: the only
// operands the logical operators and control-flow headers admit.
func isCondition(n *ast.Node) bool {
	switch n.Tag {
	case ast.AND, ast.OR, ast.NOT,
		ast.EQU, ast.NEQ, ast.LEQ, ast.LES, ast.GEQ, ast.GRT:
		return true
	}
	return false
}

// parseExpression parses a value that must be an arithmetic expression
// (assignment right-hand sides, return values, call arguments).
func (p *parser) parseExpression() *ast.Node {
	n := p.parseBinary(0)
	if !isExpression(n) {
		p.failAtLookahead()
	}
	return n
}

// parseCondition parses a value that must be a boolean condition (if and
// while headers).
func (p *parser) parseCondition() *ast.Node {
	n := p.parseBinary(0)
	if !isCondition(n) {
		p.failAtLookahead()
	}
	return n
}

// parseBinary is a precedence climber over the combined expression and
// condition grammar. Operand kinds are checked at the lookahead position:
// a bad left operand fails at the operator token, a bad right operand at
// the token following it. Chained comparisons fail the same way, since a
// comparison's result is a condition and conditions are not valid
// comparison operands.
func (p *parser) parseBinary(minPrec int) *ast.Node {
	lhs := p.parsePrefix(minPrec)

	for {
		tok, ok := p.peek()
		if !ok {
			break
		}
		op, isOp := binOps[tok.Type]
		if !isOp || op.prec < minPrec {
			break
		}

		if op.logical {
			if !isCondition(lhs) {
				panic(errUnexpected(p.text, tok))
			}
		} else if !isExpression(lhs) {
			panic(errUnexpected(p.text, tok))
		}
		p.pos++

		nextMin := op.prec
		if op.assoc != assocRight {
			nextMin = op.prec + 1
		}
		rhs := p.parseBinary(nextMin)
		if op.logical {
			if !isCondition(rhs) {
				p.failAtLookahead()
			}
		} else if !isExpression(rhs) {
			p.failAtLookahead()
		}

		lhs = ast.NewNode(op.tag, lhs, rhs)
	}

	return lhs
}

func (p *parser) parsePrefix(minPrec int) *ast.Node {
	tok, ok := p.peek()
	if !ok {
		panic(errEOF())
	}

	switch tok.Type {
	case lexer.SUB:
		p.pos++
		operand := p.parseBinary(precNeg)
		if !isExpression(operand) {
			p.failAtLookahead()
		}
		return ast.NewNode(ast.NEG, operand)

	case lexer.NOT:
		// '!' only starts a condition; operand positions binding tighter
		// than '!' (arithmetic and comparison operands, negation) reject
		// it outright.
		if minPrec > precNot {
			panic(errUnexpected(p.text, tok))
		}
		p.pos++
		operand := p.parseBinary(precNot)
		if !isCondition(operand) {
			p.failAtLookahead()
		}
		return ast.NewNode(ast.NOT, operand)

	case lexer.IDENT:
		p.pos++
		if next, ok := p.peek(); ok && next.Type == lexer.LPAREN {
			return p.parseCallTail(tok.Text)
		}
		return ast.NewIdent(ast.VAR, tok.Text)

	case lexer.INT:
		p.pos++
		return ast.NewInt(tok.Int)

	case lexer.FLOAT:
		p.pos++
		return ast.NewFloat(tok.Float)

	case lexer.LPAREN:
		p.pos++
		inner := p.parseBinary(0)
		p.expect(lexer.RPAREN)
		return inner

	default:
		panic(errUnexpected(p.text, tok))
	}
}

// parseCallTail parses '(' exp_list? ')' after a callee name.
func (p *parser) parseCallTail(name string) *ast.Node {
	p.expect(lexer.LPAREN)
	children := []*ast.Node{ast.NewIdent(ast.FNAME, name)}

	if tok, ok := p.peek(); ok && tok.Type == lexer.RPAREN {
		p.pos++
		return ast.NewNode(ast.FCALL, children...)
	}

	for {
		arg := p.parseExpression()
		children = append(children, arg)
		if !p.accept(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RPAREN)
	return ast.NewNode(ast.FCALL, children...)
}
