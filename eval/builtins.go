package eval

import (
	"math"
	"math/rand"

	"sheetengine/value"
)

// Func is the signature every built-in implements: a pure reducer over a
// flat argument list.
type Func func(args []value.Value) (value.Value, *value.ComputeError)

// Builtins is the closed function table. Lookup is case-sensitive,
// lowercase-only by design.
var Builtins = map[string]Func{
	"sum":     builtinSum,
	"product": builtinProduct,
	"max":     builtinMax,
	"min":     builtinMin,
	"average": builtinAverage,
	"count":   builtinCount,
	"length":  builtinLength,
	"if":      builtinIf,
	"round":   builtinRound,
	"pow":     builtinPow,
	"rand":    builtinRand,
}

func numbers(args []value.Value) ([]float64, bool) {
	out := make([]float64, len(args))
	for i, a := range args {
		n, ok := a.(value.NumberValue)
		if !ok {
			return nil, false
		}
		out[i] = float64(n)
	}
	return out, true
}

func builtinSum(args []value.Value) (value.Value, *value.ComputeError) {
	nums, ok := numbers(args)
	if !ok {
		return nil, value.TypeError()
	}
	total := 0.0
	for _, n := range nums {
		total += n
	}
	return value.NumberValue(total), nil
}

func builtinProduct(args []value.Value) (value.Value, *value.ComputeError) {
	nums, ok := numbers(args)
	if !ok {
		return nil, value.TypeError()
	}
	total := 1.0
	for _, n := range nums {
		total *= n
	}
	return value.NumberValue(total), nil
}

func builtinMax(args []value.Value) (value.Value, *value.ComputeError) {
	nums, ok := numbers(args)
	if !ok || len(nums) == 0 {
		return nil, value.TypeError()
	}
	m := nums[0]
	for _, n := range nums[1:] {
		m = math.Max(m, n)
	}
	return value.NumberValue(m), nil
}

func builtinMin(args []value.Value) (value.Value, *value.ComputeError) {
	nums, ok := numbers(args)
	if !ok || len(nums) == 0 {
		return nil, value.TypeError()
	}
	m := nums[0]
	for _, n := range nums[1:] {
		m = math.Min(m, n)
	}
	return value.NumberValue(m), nil
}

func builtinAverage(args []value.Value) (value.Value, *value.ComputeError) {
	nums, ok := numbers(args)
	if !ok || len(nums) == 0 {
		return nil, value.TypeError()
	}
	total := 0.0
	for _, n := range nums {
		total += n
	}
	return value.NumberValue(total / float64(len(nums))), nil
}

func builtinCount(args []value.Value) (value.Value, *value.ComputeError) {
	nums, ok := numbers(args)
	if !ok {
		return nil, value.TypeError()
	}
	return value.NumberValue(float64(len(nums))), nil
}

func builtinLength(args []value.Value) (value.Value, *value.ComputeError) {
	if len(args) != 1 {
		return nil, value.TypeError()
	}
	t, ok := args[0].(value.TextValue)
	if !ok {
		return nil, value.TypeError()
	}
	return value.NumberValue(float64(len([]rune(string(t))))), nil
}

func builtinIf(args []value.Value) (value.Value, *value.ComputeError) {
	if len(args) != 3 {
		return nil, value.TypeError()
	}
	cond, ok := args[0].(value.BoolValue)
	if !ok {
		return nil, value.TypeError()
	}
	if cond {
		return args[1], nil
	}
	return args[2], nil
}

// builtinRound rounds to the nearest integer, ties away from zero.
func builtinRound(args []value.Value) (value.Value, *value.ComputeError) {
	if len(args) != 1 {
		return nil, value.TypeError()
	}
	n, ok := args[0].(value.NumberValue)
	if !ok {
		return nil, value.TypeError()
	}
	return value.NumberValue(math.Round(float64(n))), nil
}

func builtinPow(args []value.Value) (value.Value, *value.ComputeError) {
	if len(args) != 2 {
		return nil, value.TypeError()
	}
	base, ok := args[0].(value.NumberValue)
	if !ok {
		return nil, value.TypeError()
	}
	exp, ok := args[1].(value.NumberValue)
	if !ok {
		return nil, value.TypeError()
	}
	return value.NumberValue(math.Pow(float64(base), float64(exp))), nil
}

func builtinRand(args []value.Value) (value.Value, *value.ComputeError) {
	if len(args) != 0 {
		return nil, value.TypeError()
	}
	return value.NumberValue(rand.Float64()), nil
}
