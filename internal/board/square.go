// Package board implements the chess rules engine: board and piece state,
// legal move generation, and the reversible apply/undo move protocol.
package board

import "fmt"

// Square identifies a board square by row and column, both 0-indexed.
// Row 0 is Black's back rank; row 7 is White's.
type Square struct {
	Row int
	Col int
}

// SquareFromCoords builds a square from row and column, reporting whether the
// coordinates are on the board.
func SquareFromCoords(row, col int) (Square, bool) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return Square{}, false
	}
	return Square{Row: row, Col: col}, true
}

// String returns the algebraic name of the square (e.g., "e4").
func (sq Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+byte(sq.Col), '0'+byte(8-sq.Row))
}

// ParseSquare parses an algebraic square name (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("invalid square: %s", s)
	}

	col := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if col < 0 || col > 7 || rank < 0 || rank > 7 {
		return Square{}, fmt.Errorf("invalid square: %s", s)
	}

	return Square{Row: 7 - rank, Col: col}, nil
}
