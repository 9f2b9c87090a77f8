// Package ast defines the expression tree produced by parser.Parse.
//
// The tree is a tagged variant (sum type) over a small closed set of node
// kinds; it is immutable after construction and exclusively owned by its
// containing cell — no sharing, no back-pointers.
package ast

import "sheetengine/token"

// Node is implemented by every expression-tree node.
type Node interface {
	TokenLiteral() string
}

// Expr is the marker interface for every expression node kind: CellRef,
// Literal, BinaryOp, UnaryOp, Range, FunctionCall.
type Expr interface {
	Node
	exprNode()
}

// CellRef is a bare reference to another cell, e.g. "A1".
type CellRef struct {
	Token token.Token
	Name  string
}

func (c *CellRef) exprNode()            {}
func (c *CellRef) TokenLiteral() string { return c.Token.Literal }

// Literal wraps a constant Number, Text, or Bool value.
//
// Kind distinguishes the three without importing the value package here,
// so ast depends on nothing but token.
type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	TextLiteral
	BoolLiteral
)

type Literal struct {
	Token  token.Token
	Kind   LiteralKind
	Number float64
	Text   string
	Bool   bool
}

func (l *Literal) exprNode()            {}
func (l *Literal) TokenLiteral() string { return l.Token.Literal }

// BinaryOp is a two-operand operator application: + - * / == != > < >= <= && ||.
type BinaryOp struct {
	Token token.Token
	Op    token.TokenType
	Left  Expr
	Right Expr
}

func (b *BinaryOp) exprNode()            {}
func (b *BinaryOp) TokenLiteral() string { return b.Token.Literal }

// UnaryOp is the prefix "!" operator.
type UnaryOp struct {
	Token token.Token
	Op    token.TokenType
	Expr  Expr
}

func (u *UnaryOp) exprNode()            {}
func (u *UnaryOp) TokenLiteral() string { return u.Token.Literal }

// Range is a rectangular span "from:to", legal only as a direct function
// argument.
type Range struct {
	Token token.Token
	From  CellRef
	To    CellRef
}

func (r *Range) exprNode()            {}
func (r *Range) TokenLiteral() string { return r.Token.Literal }

// FunctionCall invokes a built-in by lowercase name with a list of argument
// expressions, each of which may itself be a Range.
type FunctionCall struct {
	Token token.Token
	Name  string
	Args  []Expr
}

func (f *FunctionCall) exprNode()            {}
func (f *FunctionCall) TokenLiteral() string { return f.Token.Literal }
