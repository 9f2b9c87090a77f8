package sheet

import (
	"strconv"
	"strings"

	"sheetengine/addr"
	"sheetengine/ast"
	"sheetengine/lexer"
	"sheetengine/parser"
	"sheetengine/value"
)

// parseRaw classifies raw (non-empty, trimmed) text and produces a
// parsedCell, or a *value.ComputeError if parsing fails. Parse
// errors are returned as data, never as exceptions, and are stored in the
// cell's ok/perErr fields rather than propagated.
func parseRaw(raw string) (parsedCell, *value.ComputeError) {
	if strings.HasPrefix(raw, "=") {
		return parseFormula(raw[1:])
	}
	if len(raw) > 0 && raw[0] >= '0' && raw[0] <= '9' {
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return parsedCell{}, value.ParseError(err.Error())
		}
		return parsedCell{isLiteral: true, literal: value.NumberValue(n)}, nil
	}
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return parsedCell{isLiteral: true, literal: value.TextValue(raw[1 : len(raw)-1])}, nil
	}
	return parsedCell{isLiteral: true, literal: value.TextValue(raw)}, nil
}

func parseFormula(body string) (parsedCell, *value.ComputeError) {
	tokens, err := lexer.Lex(body)
	if err != nil {
		return parsedCell{}, value.ParseError(err.Error())
	}
	tree, err := parser.Parse(tokens)
	if err != nil {
		return parsedCell{}, value.ParseError(err.Error())
	}
	return parsedCell{expr: expression{tree: tree, deps: collectDependencies(tree)}}, nil
}

// collectDependencies walks the expression tree collecting every distinct
// address the expression may read from at evaluation time: each CellRef
// contributes its address once, and each Range contributes every address
// in its rectangular span. Walking the tree visits exactly the
// CellName and CellName-colon-CellName tokens that produced it, so this
// matches a walk of the raw token list.
func collectDependencies(e ast.Expr) []Address {
	seen := make(map[Address]bool)
	var deps []Address
	add := func(a Address) {
		if !seen[a] {
			seen[a] = true
			deps = append(deps, a)
		}
	}

	var walk func(ast.Expr)
	walk = func(e ast.Expr) {
		switch n := e.(type) {
		case *ast.CellRef:
			if a, err := ParseAddress(n.Name); err == nil {
				add(a)
			}
		case *ast.Range:
			from, errFrom := ParseAddress(n.From.Name)
			to, errTo := ParseAddress(n.To.Name)
			if errFrom == nil && errTo == nil {
				for _, a := range addr.Rectangle(from, to) {
					add(a)
				}
			}
		case *ast.BinaryOp:
			walk(n.Left)
			walk(n.Right)
		case *ast.UnaryOp:
			walk(n.Expr)
		case *ast.FunctionCall:
			for _, arg := range n.Args {
				walk(arg)
			}
		}
	}
	walk(e)
	return deps
}
