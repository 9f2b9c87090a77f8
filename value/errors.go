package value

import "fmt"

// ComputeError is the variant of things that can go wrong while parsing or
// evaluating a cell. Every error has a fixed display banner used
// as the on-screen fallback by get_text.
type ComputeError struct {
	Kind ErrorKind
	// Msg holds the parser's message for ParseError, or the unresolved
	// name for UnfindableReference. Unused by the other kinds.
	Msg string
}

func (e *ComputeError) Error() string { return e.Banner() }

type ErrorKind string

const (
	ParseErrorKind          ErrorKind = "ParseError"
	TypeErrorKind           ErrorKind = "TypeError"
	UnfindableReferenceKind ErrorKind = "UnfindableReference"
	CycleKind               ErrorKind = "Cycle"
	UnknownFunctionKind     ErrorKind = "UnknownFunction"
)

func ParseError(msg string) *ComputeError { return &ComputeError{Kind: ParseErrorKind, Msg: msg} }
func TypeError() *ComputeError            { return &ComputeError{Kind: TypeErrorKind} }
func UnfindableReference(name string) *ComputeError {
	return &ComputeError{Kind: UnfindableReferenceKind, Msg: name}
}
func Cycle() *ComputeError           { return &ComputeError{Kind: CycleKind} }
func UnknownFunction() *ComputeError { return &ComputeError{Kind: UnknownFunctionKind} }

// Banner is the fixed on-screen fallback string for this error.
func (e *ComputeError) Banner() string {
	switch e.Kind {
	case ParseErrorKind:
		return "!PARSE ERROR!"
	case TypeErrorKind:
		return "!TYPE ERROR!"
	case UnfindableReferenceKind:
		return "!REFERENCE ERROR!"
	case CycleKind:
		return "!CYCLIC REFERENCE!"
	case UnknownFunctionKind:
		return "!UNKNOWN FUNCTION!"
	default:
		return fmt.Sprintf("!ERROR(%s)!", e.Kind)
	}
}
