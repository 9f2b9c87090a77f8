package eval

import (
	"sheetengine/addr"
	"sheetengine/ast"
	"sheetengine/token"
	"sheetengine/value"
)

// Resolve evaluates an expression tree against ctx, returning the first
// error encountered (parse, type, reference, or unknown-function) or the
// final value. Resolve never recurses into a Range except as a
// direct function argument; a bare Range elsewhere is a TypeError.
func Resolve(e ast.Expr, ctx Lookup) (value.Value, *value.ComputeError) {
	switch n := e.(type) {
	case *ast.Literal:
		return resolveLiteral(n), nil

	case *ast.CellRef:
		return resolveCellRef(n, ctx)

	case *ast.Range:
		return nil, value.TypeError()

	case *ast.UnaryOp:
		operand, err := Resolve(n.Expr, ctx)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case token.Not:
			return value.Not(operand)
		default:
			return nil, value.TypeError()
		}

	case *ast.BinaryOp:
		left, err := Resolve(n.Left, ctx)
		if err != nil {
			return nil, err
		}
		right, err := Resolve(n.Right, ctx)
		if err != nil {
			return nil, err
		}
		return applyBinary(n.Op, left, right)

	case *ast.FunctionCall:
		return resolveCall(n, ctx)

	default:
		return nil, value.TypeError()
	}
}

func resolveLiteral(n *ast.Literal) value.Value {
	switch n.Kind {
	case ast.NumberLiteral:
		return value.NumberValue(n.Number)
	case ast.TextLiteral:
		return value.TextValue(n.Text)
	case ast.BoolLiteral:
		return value.BoolValue(n.Bool)
	default:
		return value.TextValue("")
	}
}

func resolveCellRef(n *ast.CellRef, ctx Lookup) (value.Value, *value.ComputeError) {
	a, parseErr := addr.ParseAddress(n.Name)
	if parseErr != nil {
		return nil, value.UnfindableReference(n.Name)
	}
	v, cellErr, present := ctx.Resolve(a)
	if !present {
		return nil, value.UnfindableReference(n.Name)
	}
	if cellErr != nil {
		return nil, cellErr
	}
	return v, nil
}

func applyBinary(op token.TokenType, left, right value.Value) (value.Value, *value.ComputeError) {
	switch op {
	case token.Plus:
		return value.Add(left, right)
	case token.Minus:
		return value.Sub(left, right)
	case token.Asterisk:
		return value.Mul(left, right)
	case token.Slash:
		return value.Div(left, right)
	case token.Lt:
		return value.Lt(left, right)
	case token.Gt:
		return value.Gt(left, right)
	case token.Le:
		return value.Le(left, right)
	case token.Ge:
		return value.Ge(left, right)
	case token.Eq:
		return value.Eq(left, right)
	case token.NotEq:
		return value.NotEq(left, right)
	case token.And:
		return value.And(left, right)
	case token.Or:
		return value.Or(left, right)
	default:
		return nil, value.TypeError()
	}
}

// resolveCall expands any Range argument in row-major order (skipping
// absent cells, propagating errors from present ones), resolves every
// other argument normally, concatenates into a flat list, and dispatches
// through the built-in table.
func resolveCall(n *ast.FunctionCall, ctx Lookup) (value.Value, *value.ComputeError) {
	var args []value.Value
	for _, a := range n.Args {
		if r, ok := a.(*ast.Range); ok {
			vals, err := expandRange(r, ctx)
			if err != nil {
				return nil, err
			}
			args = append(args, vals...)
			continue
		}
		v, err := Resolve(a, ctx)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := Builtins[n.Name]
	if !ok {
		return nil, value.UnknownFunction()
	}
	return fn(args)
}

func expandRange(r *ast.Range, ctx Lookup) ([]value.Value, *value.ComputeError) {
	from, err := addr.ParseAddress(r.From.Name)
	if err != nil {
		return nil, value.UnfindableReference(r.From.Name)
	}
	to, err := addr.ParseAddress(r.To.Name)
	if err != nil {
		return nil, value.UnfindableReference(r.To.Name)
	}

	var out []value.Value
	for _, a := range addr.Rectangle(from, to) {
		v, cellErr, present := ctx.Resolve(a)
		if !present {
			continue
		}
		if cellErr != nil {
			return nil, cellErr
		}
		out = append(out, v)
	}
	return out, nil
}
