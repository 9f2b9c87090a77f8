// Package parser builds an ast.Expr from a token.Token stream by
// precedence climbing.
package parser

import (
	"fmt"

	"sheetengine/ast"
	"sheetengine/token"
)

// precedence levels, higher binds tighter.
const (
	lowest = iota
	orPrec
	andPrec
	comparePrec
	addPrec
	mulPrec
)

var precedences = map[token.TokenType]int{
	token.Or:       orPrec,
	token.And:      andPrec,
	token.Eq:       comparePrec,
	token.NotEq:    comparePrec,
	token.Gt:       comparePrec,
	token.Lt:       comparePrec,
	token.Ge:       comparePrec,
	token.Le:       comparePrec,
	token.Plus:     addPrec,
	token.Minus:    addPrec,
	token.Asterisk: mulPrec,
	token.Slash:    mulPrec,
}

type parser struct {
	tokens []token.Token
	pos    int
}

// Parse builds the expression tree for a full token stream. Any token left
// over after the top-level expression has been consumed is an
// UnexpectedToken error.
func Parse(tokens []token.Token) (ast.Expr, error) {
	p := &parser{tokens: tokens}
	expr, err := p.parseExpr(lowest)
	if err != nil {
		return nil, err
	}
	if p.cur().Type != token.EOF {
		return nil, fmt.Errorf("UnexpectedToken: unexpected trailing token %q", p.cur().Literal)
	}
	return expr, nil
}

func (p *parser) cur() token.Token { return p.tokens[p.pos] }
func (p *parser) advance() token.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) curPrecedence() int {
	if prec, ok := precedences[p.cur().Type]; ok {
		return prec
	}
	return lowest
}

func (p *parser) parseExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for minPrec < p.curPrecedence() {
		opTok := p.cur()
		prec := p.curPrecedence()
		p.advance()
		right, err := p.parseExpr(prec)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Token: opTok, Op: opTok.Type, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Type {
	case token.Not:
		p.advance()
		operand, err := p.parseUnaryOperand()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Token: tok, Op: token.Not, Expr: operand}, nil
	case token.Number:
		p.advance()
		f, err := parseFloat(tok.Literal)
		if err != nil {
			return nil, fmt.Errorf("InvalidNumber: %v", err)
		}
		return &ast.Literal{Token: tok, Kind: ast.NumberLiteral, Number: f}, nil
	case token.Bool:
		p.advance()
		return &ast.Literal{Token: tok, Kind: ast.BoolLiteral, Bool: tok.Literal == "TRUE"}, nil
	case token.StringLit:
		p.advance()
		return &ast.Literal{Token: tok, Kind: ast.TextLiteral, Text: tok.Literal}, nil
	case token.CellName:
		p.advance()
		from := ast.CellRef{Token: tok, Name: tok.Literal}
		if p.cur().Type == token.Colon {
			colonTok := p.advance()
			if p.cur().Type != token.CellName {
				return nil, fmt.Errorf("InvalidRange: expected cell name after ':' at %q", p.cur().Literal)
			}
			toTok := p.advance()
			return &ast.Range{Token: colonTok, From: from, To: ast.CellRef{Token: toTok, Name: toTok.Literal}}, nil
		}
		return &from, nil
	case token.FunctionName:
		name := tok
		p.advance()
		if p.cur().Type != token.LParen {
			return nil, fmt.Errorf("UnexpectedToken: expected '(' after function name %q", name.Literal)
		}
		p.advance()
		var args []ast.Expr
		if p.cur().Type != token.RParen {
			for {
				arg, err := p.parseExpr(lowest)
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.cur().Type == token.Comma {
					p.advance()
					continue
				}
				break
			}
		}
		if p.cur().Type != token.RParen {
			return nil, fmt.Errorf("MismatchedParentheses: missing ')' in call to %q", name.Literal)
		}
		p.advance()
		return &ast.FunctionCall{Token: name, Name: name.Literal, Args: args}, nil
	case token.LParen:
		p.advance()
		expr, err := p.parseExpr(lowest)
		if err != nil {
			return nil, err
		}
		if p.cur().Type != token.RParen {
			return nil, fmt.Errorf("MismatchedParentheses: missing closing ')'")
		}
		p.advance()
		return expr, nil
	default:
		return nil, fmt.Errorf("UnexpectedToken: unexpected token %q", tok.Literal)
	}
}

// parseUnaryOperand parses the operand of a prefix "!" at its own
// (right-associative) precedence level, higher than any binary operator.
func (p *parser) parseUnaryOperand() (ast.Expr, error) {
	tok := p.cur()
	if tok.Type == token.Not {
		p.advance()
		inner, err := p.parseUnaryOperand()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Token: tok, Op: token.Not, Expr: inner}, nil
	}
	return p.parsePrimary()
}
