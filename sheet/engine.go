package sheet

import (
	"sort"
	"strings"

	"sheetengine/eval"
	"sheetengine/graph"
	"sheetengine/value"
)

// Sheet owns every cell and orchestrates parse -> graph update -> recompute
// on every public edit. All state lives inside the engine; no I/O is ever
// performed here. Operations are synchronous and are not
// re-entrant: evaluation only reads the sheet through Resolve, it never
// invokes a public edit.
type Sheet struct {
	cells map[Address]*Cell
	graph *graph.Graph
}

// New returns an empty sheet.
func New() *Sheet {
	return &Sheet{
		cells: make(map[Address]*Cell),
		graph: graph.New(),
	}
}

// Insert parses raw_text, installs the cell, adds its graph node with
// dependencies, computes it once, marks every transitive dependant dirty,
// and recomputes in topological order. If the address already holds a
// cell this behaves exactly like Mutate.
func (s *Sheet) Insert(a Address, rawText string) {
	s.Mutate(a, rawText)
}

// Mutate replaces the parsed/computed state at a, updates graph edges to
// the new dependency set, marks a and all transitive dependants dirty, and
// recomputes. An empty (or all-whitespace) raw text is not a cell
//, so mutating to empty text behaves like Remove.
func (s *Sheet) Mutate(a Address, rawText string) {
	if strings.TrimSpace(rawText) == "" {
		s.Remove(a)
		return
	}

	cell, ok := s.cells[a]
	if !ok {
		cell = &Cell{}
		s.cells[a] = cell
	}

	cell.RawText = rawText
	trimmed := strings.TrimSpace(rawText)

	if pc, err := parseRaw(trimmed); err != nil {
		cell.ok = false
		cell.perErr = err
		cell.cell = parsedCell{}
	} else {
		cell.ok = true
		cell.perErr = nil
		cell.cell = pc
	}

	deps := cell.dependencies()
	s.graph.ChangeNode(a, deps)

	cell.NeedsCompute = true
	for _, dep := range s.graph.TransitiveDependants(a) {
		if depCell, ok := s.cells[dep]; ok {
			depCell.NeedsCompute = true
		}
	}

	s.recomputeAll()
}

func (c *Cell) dependencies() []Address {
	if !c.ok || c.cell.isLiteral {
		return nil
	}
	return c.cell.expr.deps
}

// Remove marks all transitive dependants dirty, removes the node and its
// incident edges, deletes the cell, and recomputes so dependants see
// UnfindableReference.
func (s *Sheet) Remove(a Address) {
	if _, ok := s.cells[a]; !ok {
		return
	}
	for _, dep := range s.graph.TransitiveDependants(a) {
		if depCell, ok := s.cells[dep]; ok {
			depCell.NeedsCompute = true
		}
	}
	s.graph.RemoveNode(a)
	delete(s.cells, a)
	s.recomputeAll()
}

// GetComputed returns the cached value or compute error at a, or ok=false
// if no such cell exists.
func (s *Sheet) GetComputed(a Address) (v value.Value, cerr *value.ComputeError, ok bool) {
	cell, present := s.cells[a]
	if !present {
		return nil, nil, false
	}
	return cell.Computed, cell.ComputeErr, true
}

// GetRaw returns the raw text at a, or ok=false if no such cell exists.
func (s *Sheet) GetRaw(a Address) (raw string, ok bool) {
	cell, present := s.cells[a]
	if !present {
		return "", false
	}
	return cell.RawText, true
}

// GetText renders the display string for a cell: empty for no computed
// value, Text verbatim, Number in shortest decimal (or scientific beyond
// 1e15), TRUE/FALSE for Bool, and the fixed banner for errors.
func (s *Sheet) GetText(a Address) string {
	cell, ok := s.cells[a]
	if !ok {
		return ""
	}
	if cell.ComputeErr != nil {
		return cell.ComputeErr.Banner()
	}
	if cell.Computed == nil {
		return ""
	}
	return cell.Computed.String()
}

// Load seeds a sheet from a pipe-delimited grid: field (x, y) is the x-th
// pipe-delimited segment of the y-th line; empty/whitespace fields yield
// no cell; no escaping. Inserts run in any order (row-major here)
// followed by a single final recompute. The delimiter is the caller's
// choice of field separator; it defaults to the pipe.
func (s *Sheet) Load(text string, delimiter string) {
	if delimiter == "" {
		delimiter = "|"
	}
	lines := strings.Split(text, "\n")
	for y, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, delimiter)
		for x, field := range fields {
			trimmed := strings.TrimSpace(field)
			if trimmed == "" {
				continue
			}
			s.insertNoRecompute(Address{X: x, Y: y}, trimmed)
		}
	}
	s.recomputeAll()
}

// insertNoRecompute installs a cell and its graph edges without triggering
// a recompute sweep, used only by Load to batch many inserts into one
// final recompute.
func (s *Sheet) insertNoRecompute(a Address, rawText string) {
	cell := &Cell{RawText: rawText}
	if pc, err := parseRaw(rawText); err != nil {
		cell.ok = false
		cell.perErr = err
	} else {
		cell.ok = true
		cell.cell = pc
	}
	cell.NeedsCompute = true
	s.cells[a] = cell
	s.graph.ChangeNode(a, cell.dependencies())
}

// Addresses returns every address that currently holds a cell, sorted for
// deterministic iteration (e.g. for a renderer syncing its whole view).
func (s *Sheet) Addresses() []Address {
	out := make([]Address, 0, len(s.cells))
	for a := range s.cells {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Clear removes every cell, resetting the sheet to empty.
func (s *Sheet) Clear() {
	s.cells = make(map[Address]*Cell)
	s.graph = graph.New()
}

// Resolve implements eval.Lookup by reading the sheet's own cached results,
// the sole seam between the evaluator and cell storage.
func (s *Sheet) Resolve(a Address) (value.Value, *value.ComputeError, bool) {
	cell, ok := s.cells[a]
	if !ok {
		return nil, nil, false
	}
	return cell.Computed, cell.ComputeErr, true
}

var _ eval.Lookup = (*Sheet)(nil)

// recomputeAll sweeps the whole graph: topological sort, then evaluate
// every dirty cell in order, then mark every cyclic cell's computed value
// as Cycle.
func (s *Sheet) recomputeAll() {
	sorted, cycles := s.graph.TopologicalSort()

	for _, a := range sorted {
		cell, ok := s.cells[a]
		if !ok || !cell.NeedsCompute {
			continue
		}
		s.evaluate(cell)
		cell.NeedsCompute = false
	}

	for _, a := range cycles {
		cell, ok := s.cells[a]
		if !ok || !cell.NeedsCompute {
			continue
		}
		cell.Computed = nil
		cell.ComputeErr = value.Cycle()
		cell.NeedsCompute = false
	}
}

func (s *Sheet) evaluate(cell *Cell) {
	if !cell.ok {
		cell.Computed = nil
		cell.ComputeErr = cell.perErr
		return
	}
	if cell.cell.isLiteral {
		cell.Computed = cell.cell.literal
		cell.ComputeErr = nil
		return
	}
	v, err := eval.Resolve(cell.cell.expr.tree, s)
	if err != nil {
		cell.Computed = nil
		cell.ComputeErr = err
		return
	}
	cell.Computed = v
	cell.ComputeErr = nil
}

