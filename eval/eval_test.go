package eval

import (
	"testing"

	"sheetengine/addr"
	"sheetengine/lexer"
	"sheetengine/parser"
	"sheetengine/value"
)

func mustResolve(t *testing.T, formula string, ctx Lookup) value.Value {
	t.Helper()
	v, err := resolveFormula(t, formula, ctx)
	if err != nil {
		t.Fatalf("Resolve(%q) unexpected error: %v", formula, err)
	}
	return v
}

func resolveFormula(t *testing.T, formula string, ctx Lookup) (value.Value, *value.ComputeError) {
	t.Helper()
	toks, lexErr := lexer.Lex(formula)
	if lexErr != nil {
		t.Fatalf("Lex(%q) error: %v", formula, lexErr)
	}
	tree, parseErr := parser.Parse(toks)
	if parseErr != nil {
		t.Fatalf("Parse(%q) error: %v", formula, parseErr)
	}
	return Resolve(tree, ctx)
}

func a(col, row int) addr.Address { return addr.Address{X: col, Y: row} }

func TestResolveArithmetic(t *testing.T) {
	ctx := MapContext{a(0, 0): value.NumberValue(10)}
	v := mustResolve(t, "A1 * 2 + 1", ctx)
	if v != value.NumberValue(21) {
		t.Errorf("got %v, want 21", v)
	}
}

func TestResolveUnfindableReference(t *testing.T) {
	ctx := MapContext{}
	_, err := resolveFormula(t, "A1", ctx)
	if err == nil || err.Kind != value.UnfindableReferenceKind {
		t.Fatalf("expected UnfindableReference, got %v", err)
	}
}

func TestResolvePropagatesCellError(t *testing.T) {
	ctx := errContext{a(0, 0): value.TypeError()}
	_, err := resolveFormula(t, "A1 + 1", ctx)
	if err == nil || err.Kind != value.TypeErrorKind {
		t.Fatalf("expected propagated TypeError, got %v", err)
	}
}

func TestResolveBareRangeIsTypeError(t *testing.T) {
	ctx := MapContext{a(0, 0): value.NumberValue(1), a(1, 0): value.NumberValue(2)}
	_, err := resolveFormula(t, "A1:B1", ctx)
	if err == nil || err.Kind != value.TypeErrorKind {
		t.Fatalf("expected TypeError for bare range, got %v", err)
	}
}

func TestResolveRangeAsFunctionArg(t *testing.T) {
	ctx := MapContext{
		a(0, 0): value.NumberValue(1),
		a(1, 0): value.NumberValue(2),
		a(0, 1): value.NumberValue(3),
		a(1, 1): value.NumberValue(4),
	}
	v := mustResolve(t, "sum(A1:B2)", ctx)
	if v != value.NumberValue(10) {
		t.Errorf("sum(A1:B2) = %v, want 10", v)
	}
}

func TestResolveUnknownFunction(t *testing.T) {
	_, err := resolveFormula(t, "bogus(1)", MapContext{})
	if err == nil || err.Kind != value.UnknownFunctionKind {
		t.Fatalf("expected UnknownFunction, got %v", err)
	}
}

func TestResolveLogicalAndComparison(t *testing.T) {
	v := mustResolve(t, "1 < 2 && TRUE", MapContext{})
	if v != value.BoolValue(true) {
		t.Errorf("got %v, want TRUE", v)
	}
}

func TestResolveEqualityAcrossKindsIsFalse(t *testing.T) {
	ctx := MapContext{a(0, 0): value.TextValue("1")}
	v := mustResolve(t, `A1 == 1`, ctx)
	if v != value.BoolValue(false) {
		t.Errorf("expected FALSE for cross-kind equality, got %v", v)
	}
}

// errContext is a Lookup whose cells each carry a fixed error, for testing
// error propagation through CellRef resolution.
type errContext map[addr.Address]*value.ComputeError

func (e errContext) Resolve(a addr.Address) (value.Value, *value.ComputeError, bool) {
	err, ok := e[a]
	if !ok {
		return nil, nil, false
	}
	return nil, err, true
}
