// Package lexer tokenizes a formula body (the cell text with its leading
// '=' already stripped) into a flat token.Token stream.
package lexer

import (
	"strings"

	"sheetengine/token"
)

type lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

// Lex tokenizes the full input and returns every token up to and including
// EOF, or the first lexical error encountered.
func Lex(input string) ([]token.Token, error) {
	l := &lexer{input: input, line: 1}
	l.readChar()

	var tokens []token.Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

func (l *lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else if l.ch != 0 {
		l.column++
	}
}

func (l *lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *lexer) next() (token.Token, error) {
	l.skipWhitespace()

	startLine, startColumn, startOffset := l.line, l.column, l.position
	pos := func(typ token.TokenType, lit string) token.Token {
		return token.New(typ, lit, startLine, startColumn, startOffset)
	}

	switch {
	case l.ch == 0:
		return pos(token.EOF, ""), nil
	case l.ch == '+':
		l.readChar()
		return pos(token.Plus, "+"), nil
	case l.ch == '-':
		l.readChar()
		return pos(token.Minus, "-"), nil
	case l.ch == '*':
		l.readChar()
		return pos(token.Asterisk, "*"), nil
	case l.ch == '/':
		l.readChar()
		return pos(token.Slash, "/"), nil
	case l.ch == '(':
		l.readChar()
		return pos(token.LParen, "("), nil
	case l.ch == ')':
		l.readChar()
		return pos(token.RParen, ")"), nil
	case l.ch == ':':
		l.readChar()
		return pos(token.Colon, ":"), nil
	case l.ch == ',':
		l.readChar()
		return pos(token.Comma, ","), nil
	case l.ch == '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return pos(token.Eq, "=="), nil
		}
		return token.Token{}, token.UnexpectedCharacter('=', pos(token.ILLEGAL, "="))
	case l.ch == '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return pos(token.NotEq, "!="), nil
		}
		l.readChar()
		return pos(token.Not, "!"), nil
	case l.ch == '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return pos(token.Le, "<="), nil
		}
		l.readChar()
		return pos(token.Lt, "<"), nil
	case l.ch == '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return pos(token.Ge, ">="), nil
		}
		l.readChar()
		return pos(token.Gt, ">"), nil
	case l.ch == '&':
		if l.peekChar() == '&' {
			l.readChar()
			l.readChar()
			return pos(token.And, "&&"), nil
		}
		return token.Token{}, token.UnexpectedCharacter('&', pos(token.ILLEGAL, "&"))
	case l.ch == '|':
		if l.peekChar() == '|' {
			l.readChar()
			l.readChar()
			return pos(token.Or, "||"), nil
		}
		return token.Token{}, token.UnexpectedCharacter('|', pos(token.ILLEGAL, "|"))
	case l.ch == '"':
		return l.readString(pos)
	case isDigit(l.ch):
		return l.readNumber(pos)
	case isUpper(l.ch):
		return l.readCellNameOrBool(pos)
	case isLower(l.ch):
		return l.readFunctionName(pos)
	default:
		ch := rune(l.ch)
		l.readChar()
		return token.Token{}, token.UnexpectedCharacter(ch, pos(token.ILLEGAL, string(ch)))
	}
}

func (l *lexer) readNumber(pos func(token.TokenType, string) token.Token) (token.Token, error) {
	start := l.position
	dots := 0
	for isDigit(l.ch) || l.ch == '.' {
		if l.ch == '.' {
			dots++
		}
		l.readChar()
	}
	lit := l.input[start:l.position]
	if dots > 1 {
		return token.Token{}, token.InvalidNumber(lit, pos(token.ILLEGAL, lit))
	}
	return pos(token.Number, lit), nil
}

// readCellNameOrBool consumes a run of uppercase letters, then: if followed
// by digits it's a CellName; if it spells TRUE/FALSE it's a Bool; otherwise
// it's an InvalidCellName.
func (l *lexer) readCellNameOrBool(pos func(token.TokenType, string) token.Token) (token.Token, error) {
	start := l.position
	for isUpper(l.ch) {
		l.readChar()
	}
	letters := l.input[start:l.position]

	if isDigit(l.ch) {
		digitStart := l.position
		for isDigit(l.ch) {
			l.readChar()
		}
		lit := letters + l.input[digitStart:l.position]
		return pos(token.CellName, lit), nil
	}

	switch letters {
	case "TRUE", "FALSE":
		return pos(token.Bool, letters), nil
	default:
		return token.Token{}, token.InvalidCellName(letters, pos(token.ILLEGAL, letters))
	}
}

func (l *lexer) readFunctionName(pos func(token.TokenType, string) token.Token) (token.Token, error) {
	start := l.position
	for isLower(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return pos(token.FunctionName, l.input[start:l.position]), nil
}

func (l *lexer) readString(pos func(token.TokenType, string) token.Token) (token.Token, error) {
	var sb strings.Builder
	l.readChar() // consume opening quote
	for l.ch != '"' && l.ch != 0 {
		sb.WriteByte(l.ch)
		l.readChar()
	}
	if l.ch == 0 {
		return token.Token{}, token.UnexpectedCharacter(0, pos(token.ILLEGAL, sb.String()))
	}
	l.readChar() // consume closing quote
	return pos(token.StringLit, sb.String()), nil
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
func isUpper(ch byte) bool { return ch >= 'A' && ch <= 'Z' }
func isLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }
