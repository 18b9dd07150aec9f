// Package parser implements a recursive-descent parser over the
// mython lexer's token stream, producing an *ast.Program. It is the
// "external collaborator" spec.md §1 treats as out of scope for the
// lexer/runtime core, supplemented here so the core is reachable from a
// runnable program.
package parser

import (
	"github.com/mython-lang/mython"
	"github.com/mython-lang/mython/ast"
)

// Parser holds one token of lookahead over a *mython.Lexer, exactly the
// lookahead discipline the lexer itself exposes.
type Parser struct {
	lex *mython.Lexer
	cur mython.Token
}

// New constructs a Parser over an already-positioned lexer (the
// lexer's constructor pre-loads its first token, so cur starts valid).
func New(lex *mython.Lexer) *Parser {
	return &Parser{lex: lex, cur: lex.CurrentToken()}
}

func (p *Parser) advance() {
	p.cur = p.lex.NextToken()
}

// ParseProgram parses the entire token stream into a top-level Program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	var stmts []ast.Node
	for p.cur.Kind != mython.TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &ast.Program{Block: ast.Block{Stmts: stmts}}, nil
}

func (p *Parser) syntaxErrorf(format string, args ...any) error {
	return mython.NewRuntimeErrorAt(p.cur.Pos, mython.ErrSyntax, format, args...)
}

func (p *Parser) expect(kind mython.TokenKind) error {
	if p.cur.Kind != kind {
		return p.syntaxErrorf("expected %s, got %s", mython.Token{Kind: kind}, p.cur)
	}
	p.advance()
	return nil
}

func (p *Parser) curIsChar(c byte) bool {
	return p.cur.Kind == mython.TokenChar && p.cur.Ch == c
}

func (p *Parser) expectChar(c byte) error {
	if !p.curIsChar(c) {
		return p.syntaxErrorf("expected %q, got %s", string(c), p.cur)
	}
	p.advance()
	return nil
}

func (p *Parser) expectID() (string, error) {
	if p.cur.Kind != mython.TokenID {
		return "", p.syntaxErrorf("expected identifier, got %s", p.cur)
	}
	name := p.cur.Str
	p.advance()
	return name, nil
}
