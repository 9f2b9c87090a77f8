package token

import "fmt"

// LexError enumerates the ways a formula body can fail to tokenize.
type LexError struct {
	Kind   string // UnexpectedCharacter, InvalidCellName, InvalidNumber
	Detail string
	Pos    Token
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func UnexpectedCharacter(ch rune, pos Token) error {
	return &LexError{Kind: "UnexpectedCharacter", Detail: fmt.Sprintf("unexpected character %q", ch), Pos: pos}
}

func InvalidCellName(s string, pos Token) error {
	return &LexError{Kind: "InvalidCellName", Detail: fmt.Sprintf("invalid cell name %q", s), Pos: pos}
}

func InvalidNumber(s string, pos Token) error {
	return &LexError{Kind: "InvalidNumber", Detail: fmt.Sprintf("invalid number %q", s), Pos: pos}
}
