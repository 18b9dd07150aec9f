package parser

import (
	"github.com/mython-lang/mython"
	"github.com/mython-lang/mython/ast"
)

// Precedence, lowest to highest:
//   or_test  -> and_test ('or' and_test)*
//   and_test -> not_test ('and' not_test)*
//   not_test -> 'not' not_test | comparison
//   comparison -> additive (('=='|'!='|'<'|'<='|'>'|'>=') additive)?
//   additive -> term (('+'|'-') term)*
//   term     -> primary (('*'|'/') primary)*
//   primary  -> '-' primary | literal | 'self' | ID | '(' expr ')' , the
//               last three with trailing '.' field / '.' method(args) /
//               (args) postfixes; '-' primary is parsed as 0 - primary

func (p *Parser) parseExpr() (ast.Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == mython.TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: ast.OpOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == mython.TokenAnd {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: ast.OpAnd, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseNot() (ast.Node, error) {
	if p.cur.Kind == mython.TokenNot {
		p.advance()
		expr, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: "not", Expr: expr}, nil
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() (ast.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	op, ok := comparisonOp(p.cur)
	if !ok {
		return left, nil
	}
	p.advance()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Op: op, Left: left, Right: right}, nil
}

func comparisonOp(tok mython.Token) (string, bool) {
	switch tok.Kind {
	case mython.TokenEq:
		return ast.OpEq, true
	case mython.TokenNotEq:
		return ast.OpNeq, true
	case mython.TokenLessOrEq:
		return ast.OpLe, true
	case mython.TokenGreaterOrEq:
		return ast.OpGe, true
	case mython.TokenChar:
		switch tok.Ch {
		case '<':
			return ast.OpLt, true
		case '>':
			return ast.OpGt, true
		}
	}
	return "", false
}

func (p *Parser) parseAdditive() (ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.curIsChar('+') || p.curIsChar('-') {
		op := string(p.cur.Ch)
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseTerm() (ast.Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.curIsChar('*') || p.curIsChar('/') {
		op := string(p.cur.Ch)
		p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	tok := p.cur
	switch tok.Kind {
	case mython.TokenNumber:
		p.advance()
		return &ast.NumberLit{Value: tok.Num}, nil
	case mython.TokenString:
		p.advance()
		return &ast.StringLit{Value: tok.Str}, nil
	case mython.TokenTrue:
		p.advance()
		return &ast.BoolLit{Value: true}, nil
	case mython.TokenFalse:
		p.advance()
		return &ast.BoolLit{Value: false}, nil
	case mython.TokenNone:
		p.advance()
		return &ast.NoneLit{}, nil
	case mython.TokenID:
		p.advance()
		return p.parsePostfix(&ast.Identifier{Name: tok.Str})
	case mython.TokenChar:
		if tok.Ch == '-' {
			p.advance()
			operand, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			return &ast.BinaryExpr{Op: ast.OpSub, Left: &ast.NumberLit{Value: 0}, Right: operand}, nil
		}
		if tok.Ch == '(' {
			p.advance()
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, err
			}
			return p.parsePostfix(expr)
		}
	}
	return nil, p.syntaxErrorf("unexpected token %s", tok)
}

// parsePostfix consumes any run of '.field', '.method(args)', or
// '(args)' suffixes trailing a primary expression.
func (p *Parser) parsePostfix(node ast.Node) (ast.Node, error) {
	for {
		switch {
		case p.curIsChar('.'):
			p.advance()
			name, err := p.expectID()
			if err != nil {
				return nil, err
			}
			if p.curIsChar('(') {
				p.advance()
				args, err := p.parseArgs()
				if err != nil {
					return nil, err
				}
				if err := p.expectChar(')'); err != nil {
					return nil, err
				}
				node = &ast.MethodCallExpr{Object: node, Method: name, Args: args}
			} else {
				node = &ast.MemberAccess{Object: node, Field: name}
			}
		case p.curIsChar('('):
			p.advance()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, err
			}
			node = &ast.CallExpr{Callee: node, Args: args}
		default:
			return node, nil
		}
	}
}

func (p *Parser) parseArgs() ([]ast.Node, error) {
	if p.curIsChar(')') {
		return nil, nil
	}
	var args []ast.Node
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
	return args, nil
}
