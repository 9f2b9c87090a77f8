// Package sheet is the formula engine's owner of record for cells: it
// drives parsing and dependency-graph updates on every edit and schedules
// recompute in topological order.
package sheet

import (
	"sheetengine/addr"
	"sheetengine/ast"
	"sheetengine/value"
)

// Address identifies a cell; it is addr.Address verbatim, re-exported so
// callers of this package need not import sheetengine/addr directly.
type Address = addr.Address

// ParseAddress parses the textual form "<column-letters><row-number>" into
// an Address.
func ParseAddress(s string) (Address, error) { return addr.ParseAddress(s) }

// expression is the Expression half of a parsed cell: an AST plus the
// addresses it reads from.
type expression struct {
	tree ast.Expr
	deps []Address
}

// parsedCell is either a literal Value or an expression.
type parsedCell struct {
	isLiteral bool
	literal   value.Value
	expr      expression
}

// Cell is a mutable record owned exclusively by the Sheet Engine. No
// cell exists without an address; an empty text is not a cell.
type Cell struct {
	RawText string

	ok     bool // whether parsing succeeded
	cell   parsedCell
	perErr *value.ComputeError // present iff !ok

	Computed     value.Value
	ComputeErr   *value.ComputeError
	NeedsCompute bool
}
