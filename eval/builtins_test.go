package eval

import (
	"testing"

	"sheetengine/value"
)

func TestBuiltinSumEmptyIsZero(t *testing.T) {
	v, err := builtinSum(nil)
	if err != nil || v != value.NumberValue(0) {
		t.Fatalf("sum() = %v, %v; want 0, nil", v, err)
	}
}

func TestBuiltinProductEmptyIsOne(t *testing.T) {
	v, err := builtinProduct(nil)
	if err != nil || v != value.NumberValue(1) {
		t.Fatalf("product() = %v, %v; want 1, nil", v, err)
	}
}

func TestBuiltinMaxMin(t *testing.T) {
	args := []value.Value{value.NumberValue(3), value.NumberValue(1), value.NumberValue(2)}
	if v, err := builtinMax(args); err != nil || v != value.NumberValue(3) {
		t.Fatalf("max = %v, %v; want 3", v, err)
	}
	if v, err := builtinMin(args); err != nil || v != value.NumberValue(1) {
		t.Fatalf("min = %v, %v; want 1", v, err)
	}
}

func TestBuiltinMaxMinEmptyIsTypeError(t *testing.T) {
	if _, err := builtinMax(nil); err == nil {
		t.Fatalf("expected error for max() with no args")
	}
	if _, err := builtinMin(nil); err == nil {
		t.Fatalf("expected error for min() with no args")
	}
}

func TestBuiltinAverage(t *testing.T) {
	args := []value.Value{value.NumberValue(2), value.NumberValue(4)}
	v, err := builtinAverage(args)
	if err != nil || v != value.NumberValue(3) {
		t.Fatalf("average = %v, %v; want 3", v, err)
	}
}

func TestBuiltinCountRejectsNonNumeric(t *testing.T) {
	args := []value.Value{value.NumberValue(1), value.TextValue("x")}
	if _, err := builtinCount(args); err == nil || err.Kind != value.TypeErrorKind {
		t.Fatalf("expected TypeError for non-numeric argument, got %v", err)
	}
}

func TestBuiltinCountCountsNumbers(t *testing.T) {
	args := []value.Value{value.NumberValue(1), value.NumberValue(2), value.NumberValue(3)}
	v, err := builtinCount(args)
	if err != nil || v != value.NumberValue(3) {
		t.Fatalf("count = %v, %v; want 3", v, err)
	}
}

func TestBuiltinLength(t *testing.T) {
	v, err := builtinLength([]value.Value{value.TextValue("hello")})
	if err != nil || v != value.NumberValue(5) {
		t.Fatalf("length = %v, %v; want 5", v, err)
	}
}

func TestBuiltinLengthRequiresText(t *testing.T) {
	if _, err := builtinLength([]value.Value{value.NumberValue(5)}); err == nil {
		t.Fatalf("expected TypeError for non-text argument")
	}
}

func TestBuiltinIf(t *testing.T) {
	args := []value.Value{value.BoolValue(true), value.TextValue("yes"), value.TextValue("no")}
	v, err := builtinIf(args)
	if err != nil || v != value.TextValue("yes") {
		t.Fatalf("if(true, ...) = %v, %v; want yes", v, err)
	}
	args[0] = value.BoolValue(false)
	v, err = builtinIf(args)
	if err != nil || v != value.TextValue("no") {
		t.Fatalf("if(false, ...) = %v, %v; want no", v, err)
	}
}

func TestBuiltinRound(t *testing.T) {
	v, err := builtinRound([]value.Value{value.NumberValue(2.5)})
	if err != nil || v != value.NumberValue(3) {
		t.Fatalf("round(2.5) = %v, %v; want 3", v, err)
	}
}

func TestBuiltinPow(t *testing.T) {
	v, err := builtinPow([]value.Value{value.NumberValue(2), value.NumberValue(10)})
	if err != nil || v != value.NumberValue(1024) {
		t.Fatalf("pow(2, 10) = %v, %v; want 1024", v, err)
	}
}

func TestBuiltinRandRejectsArgs(t *testing.T) {
	if _, err := builtinRand([]value.Value{value.NumberValue(1)}); err == nil {
		t.Fatalf("expected TypeError for rand(1)")
	}
}

func TestUnknownBuiltinNotInTable(t *testing.T) {
	if _, ok := Builtins["nonexistent"]; ok {
		t.Fatalf("expected no builtin named 'nonexistent'")
	}
}
