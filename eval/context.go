// Package eval is the pure interpreter over ast.Expr trees (Resolve)
// plus the closed built-in function table.
package eval

import (
	"sheetengine/addr"
	"sheetengine/value"
)

// Lookup is the capability the evaluator is parameterized over:
// production wires it to the sheet engine; tests wire it to a plain map.
// ok reports whether a is a live cell at all; when it is, Value/Err
// carries the cell's cached result or error, never both.
type Lookup interface {
	Resolve(a addr.Address) (val value.Value, err *value.ComputeError, ok bool)
}

// MapContext is a Lookup backed by a plain map, used by evaluator tests.
type MapContext map[addr.Address]value.Value

func (m MapContext) Resolve(a addr.Address) (value.Value, *value.ComputeError, bool) {
	v, ok := m[a]
	if !ok {
		return nil, nil, false
	}
	return v, nil, true
}
