package value

// Add implements "+": numeric addition, or text concatenation for two
// Texts. Any other pairing is a TypeError — it never coerces
// strings and numbers against each other.
func Add(a, b Value) (Value, *ComputeError) {
	if an, ok := a.(NumberValue); ok {
		if bn, ok := b.(NumberValue); ok {
			return an + bn, nil
		}
	}
	if at, ok := a.(TextValue); ok {
		if bt, ok := b.(TextValue); ok {
			return at + bt, nil
		}
	}
	return nil, TypeError()
}

func numericBinOp(a, b Value, f func(x, y float64) float64) (Value, *ComputeError) {
	an, ok := a.(NumberValue)
	if !ok {
		return nil, TypeError()
	}
	bn, ok := b.(NumberValue)
	if !ok {
		return nil, TypeError()
	}
	return NumberValue(f(float64(an), float64(bn))), nil
}

func Sub(a, b Value) (Value, *ComputeError) {
	return numericBinOp(a, b, func(x, y float64) float64 { return x - y })
}

func Mul(a, b Value) (Value, *ComputeError) {
	return numericBinOp(a, b, func(x, y float64) float64 { return x * y })
}

// Div follows IEEE-754 semantics: division by zero yields ±Inf or NaN, not
// an error.
func Div(a, b Value) (Value, *ComputeError) {
	return numericBinOp(a, b, func(x, y float64) float64 { return x / y })
}

func numericCompare(a, b Value, f func(x, y float64) bool) (Value, *ComputeError) {
	an, ok := a.(NumberValue)
	if !ok {
		return nil, TypeError()
	}
	bn, ok := b.(NumberValue)
	if !ok {
		return nil, TypeError()
	}
	return BoolValue(f(float64(an), float64(bn))), nil
}

func Lt(a, b Value) (Value, *ComputeError) { return numericCompare(a, b, func(x, y float64) bool { return x < y }) }
func Gt(a, b Value) (Value, *ComputeError) { return numericCompare(a, b, func(x, y float64) bool { return x > y }) }
func Le(a, b Value) (Value, *ComputeError) { return numericCompare(a, b, func(x, y float64) bool { return x <= y }) }
func Ge(a, b Value) (Value, *ComputeError) { return numericCompare(a, b, func(x, y float64) bool { return x >= y }) }

// Eq and NotEq implement structural equality across Number/Text/Bool.
func Eq(a, b Value) (Value, *ComputeError)    { return BoolValue(Equal(a, b)), nil }
func NotEq(a, b Value) (Value, *ComputeError) { return BoolValue(!Equal(a, b)), nil }

func boolBinOp(a, b Value, f func(x, y bool) bool) (Value, *ComputeError) {
	ab, ok := a.(BoolValue)
	if !ok {
		return nil, TypeError()
	}
	bb, ok := b.(BoolValue)
	if !ok {
		return nil, TypeError()
	}
	return BoolValue(f(bool(ab), bool(bb))), nil
}

func And(a, b Value) (Value, *ComputeError) {
	return boolBinOp(a, b, func(x, y bool) bool { return x && y })
}
func Or(a, b Value) (Value, *ComputeError) {
	return boolBinOp(a, b, func(x, y bool) bool { return x || y })
}

// Not implements the unary "!" operator.
func Not(a Value) (Value, *ComputeError) {
	ab, ok := a.(BoolValue)
	if !ok {
		return nil, TypeError()
	}
	return BoolValue(!ab), nil
}
