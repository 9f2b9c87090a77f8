package token

import "testing"

func TestLexErrorMessages(t *testing.T) {
	pos := New(ILLEGAL, "@", 1, 1, 0)

	if err := UnexpectedCharacter('@', pos); err.Error() == "" {
		t.Errorf("expected non-empty message")
	}
	if err := InvalidCellName("AB", pos); err.Error() == "" {
		t.Errorf("expected non-empty message")
	}
	if err := InvalidNumber("1.2.3", pos); err.Error() == "" {
		t.Errorf("expected non-empty message")
	}
}

func TestLexErrorCarriesPosition(t *testing.T) {
	pos := New(ILLEGAL, "@", 3, 5, 10)
	err := UnexpectedCharacter('@', pos).(*LexError)
	if err.Pos.Line != 3 || err.Pos.Column != 5 {
		t.Errorf("expected position 3:5, got %d:%d", err.Pos.Line, err.Pos.Column)
	}
}
