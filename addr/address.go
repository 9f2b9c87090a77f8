// Package addr is the shared address/range arithmetic used by both the
// sheet engine (storage) and the evaluator (range expansion), keeping the
// evaluator decoupled from cell storage.
package addr

import (
	"fmt"
	"strconv"
	"strings"
)

// Address identifies a cell by zero-indexed column and row.
type Address struct {
	X, Y int
}

// ParseAddress parses the textual form "<column-letters><row-number>"
// (e.g. "A1", "AA12") into an Address. Columns are a bijective base-26
// encoding (A=0, B=1, ..., Z=25, AA=26, ...); rows are 1-based decimal.
func ParseAddress(s string) (Address, error) {
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(s) {
		return Address{}, fmt.Errorf("invalid address %q", s)
	}
	letters, digits := s[:i], s[i:]
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return Address{}, fmt.Errorf("invalid address %q", s)
		}
	}
	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 {
		return Address{}, fmt.Errorf("invalid address %q", s)
	}

	col := 0
	for _, ch := range letters {
		col = col*26 + int(ch-'A'+1)
	}
	return Address{X: col - 1, Y: row - 1}, nil
}

// String renders an Address back to its textual form; the inverse of
// ParseAddress.
func (a Address) String() string {
	return columnLetters(a.X) + strconv.Itoa(a.Y+1)
}

func columnLetters(x int) string {
	if x < 0 {
		return ""
	}
	var b strings.Builder
	var runes []byte
	n := x + 1
	for n > 0 {
		n--
		runes = append(runes, byte('A'+n%26))
		n /= 26
	}
	for i := len(runes) - 1; i >= 0; i-- {
		b.WriteByte(runes[i])
	}
	return b.String()
}
