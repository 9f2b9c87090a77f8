package ast

import (
	"bytes"
	"fmt"
)

// Format returns a multi-line, indented view of an expression tree. Used by
// tests and diagnostics; never by the evaluator itself.
func Format(e Expr) string {
	p := &printer{}
	p.write(e)
	return p.buf.String()
}

type printer struct {
	buf    bytes.Buffer
	indent int
}

func (p *printer) line(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *printer) write(e Expr) {
	switch n := e.(type) {
	case *CellRef:
		p.line("CellRef(%s)", n.Name)
	case *Literal:
		switch n.Kind {
		case NumberLiteral:
			p.line("Literal(Number %g)", n.Number)
		case TextLiteral:
			p.line("Literal(Text %q)", n.Text)
		case BoolLiteral:
			p.line("Literal(Bool %v)", n.Bool)
		}
	case *BinaryOp:
		p.line("BinaryOp(%s)", n.Op)
		p.indent++
		p.write(n.Left)
		p.write(n.Right)
		p.indent--
	case *UnaryOp:
		p.line("UnaryOp(%s)", n.Op)
		p.indent++
		p.write(n.Expr)
		p.indent--
	case *Range:
		p.line("Range(%s:%s)", n.From.Name, n.To.Name)
	case *FunctionCall:
		p.line("FunctionCall(%s)", n.Name)
		p.indent++
		for _, arg := range n.Args {
			p.write(arg)
		}
		p.indent--
	default:
		p.line("<unknown>")
	}
}
