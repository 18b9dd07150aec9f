package parser

import (
	"github.com/mython-lang/mython"
	"github.com/mython-lang/mython/ast"
)

func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.cur.Kind {
	case mython.TokenPrint:
		return p.parsePrint()
	case mython.TokenReturn:
		return p.parseReturn()
	case mython.TokenIf:
		return p.parseIf()
	case mython.TokenClass:
		return p.parseClass()
	default:
		return p.parseSimpleStatement()
	}
}

// parseSuite parses the ':' NEWLINE INDENT stmt* DEDENT block that
// follows an if/else/class/def header. The caller has already consumed
// the header up to and including the ':'.
func (p *Parser) parseSuite() (*ast.Block, error) {
	if err := p.expect(mython.TokenNewline); err != nil {
		return nil, err
	}
	if err := p.expect(mython.TokenIndent); err != nil {
		return nil, err
	}
	var stmts []ast.Node
	for p.cur.Kind != mython.TokenDedent && p.cur.Kind != mython.TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if err := p.expect(mython.TokenDedent); err != nil {
		return nil, err
	}
	return &ast.Block{Stmts: stmts}, nil
}

func (p *Parser) parsePrint() (ast.Node, error) {
	p.advance() // 'print'
	var args []ast.Node
	if p.cur.Kind != mython.TokenNewline && p.cur.Kind != mython.TokenEOF {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, expr)
		for p.curIsChar(',') {
			p.advance()
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, expr)
		}
	}
	if err := p.expect(mython.TokenNewline); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Args: args}, nil
}

func (p *Parser) parseReturn() (ast.Node, error) {
	p.advance() // 'return'
	var value ast.Node
	if p.cur.Kind != mython.TokenNewline && p.cur.Kind != mython.TokenEOF {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		value = expr
	}
	if err := p.expect(mython.TokenNewline); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Value: value}, nil
}

func (p *Parser) parseIf() (ast.Node, error) {
	p.advance() // 'if'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	var elseBlock *ast.Block
	if p.cur.Kind == mython.TokenElse {
		p.advance()
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Cond: cond, Then: thenBlock, Else: elseBlock}, nil
}

func (p *Parser) parseClass() (ast.Node, error) {
	p.advance() // 'class'
	name, err := p.expectID()
	if err != nil {
		return nil, err
	}
	parent := ""
	if p.curIsChar('(') {
		p.advance()
		parent, err = p.expectID()
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	methods, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	return &ast.ClassDeclStmt{Name: name, Parent: parent, Methods: methods}, nil
}

func (p *Parser) parseClassBody() ([]*ast.MethodDecl, error) {
	if err := p.expect(mython.TokenNewline); err != nil {
		return nil, err
	}
	if err := p.expect(mython.TokenIndent); err != nil {
		return nil, err
	}
	var methods []*ast.MethodDecl
	for p.cur.Kind != mython.TokenDedent && p.cur.Kind != mython.TokenEOF {
		if p.cur.Kind != mython.TokenDef {
			return nil, p.syntaxErrorf("expected method definition, got %s", p.cur)
		}
		m, err := p.parseMethodDecl()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if err := p.expect(mython.TokenDedent); err != nil {
		return nil, err
	}
	return methods, nil
}

func (p *Parser) parseMethodDecl() (*ast.MethodDecl, error) {
	p.advance() // 'def'
	name, err := p.expectID()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var params []string
	if !p.curIsChar(')') {
		param, err := p.expectID()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		for p.curIsChar(',') {
			p.advance()
			param, err := p.expectID()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	// The written parameter list always spells out "self" as the
	// receiver, but mython.Method.FormalParams holds only the
	// remaining positional parameters — Instance.Call binds self
	// itself and matches arity against the actual call arguments,
	// which never include a receiver.
	if len(params) == 0 || params[0] != "self" {
		return nil, p.syntaxErrorf("method %q must declare self as its first parameter", name)
	}
	params = params[1:]
	return &ast.MethodDecl{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseSimpleStatement() (ast.Node, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.curIsChar('=') {
		p.advance()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(mython.TokenNewline); err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Target: expr, Value: value}, nil
	}
	if err := p.expect(mython.TokenNewline); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}
