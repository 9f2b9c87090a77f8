package parser

import (
	"fmt"
	"strings"

	"sheetengine/token"
)

// FormatError renders a parse error with a caret pointing at the offending
// token within the formula body.
func FormatError(err error, tok token.Token, source string) string {
	if tok.Line == 0 || source == "" {
		return "parse error: " + err.Error()
	}
	lines := strings.Split(source, "\n")
	line, col := tok.Line, tok.Column
	if line < 1 || line > len(lines) {
		return "parse error: " + err.Error()
	}
	lineText := strings.TrimRight(lines[line-1], "\r")
	if col < 1 {
		col = 1
	}
	if col > len(lineText)+1 {
		col = len(lineText) + 1
	}
	caret := strings.Repeat(" ", col-1) + "^"
	return fmt.Sprintf("parse error: %s\n  at %d:%d\n  %s\n  %s", err.Error(), line, col, lineText, caret)
}
