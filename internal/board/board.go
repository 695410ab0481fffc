package board

import (
	"fmt"
	"strings"
)

// EnPassantTarget records the square a capturing pawn would land on after the
// opponent's double pawn push, if any.
type EnPassantTarget struct {
	sq  Square
	set bool
}

// NoEnPassant returns an empty en passant target.
func NoEnPassant() EnPassantTarget {
	return EnPassantTarget{}
}

// EnPassantAt returns an en passant target at the given square.
func EnPassantAt(sq Square) EnPassantTarget {
	return EnPassantTarget{sq: sq, set: true}
}

// Square returns the target square and whether one is set.
func (t EnPassantTarget) Square() (Square, bool) {
	return t.sq, t.set
}

// GameState is the per-position bookkeeping that travels with the board.
// It is a plain value: saving and restoring it is a struct assignment.
type GameState struct {
	CurrentTurn     Color
	EnPassantTarget EnPassantTarget
	IsCheck         bool
	IsCheckmate     bool
	IsStalemate     bool
	IsGameOver      bool
	MoveCount       int
	LastMove        Move
}

// Board owns the 8x8 piece grid and the game state. A Board is not safe for
// concurrent use; callers that search in the background must work on a Copy.
type Board struct {
	grid  [8][8]*Piece
	state GameState
}

// New creates a board set up for the start of a game.
func New() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset restores the initial position and clears the game state.
func (b *Board) Reset() {
	b.grid = [8][8]*Piece{}
	b.state = GameState{CurrentTurn: White}

	order := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, pt := range order {
		b.grid[0][col] = &Piece{Type: pt, Color: Black}
		b.grid[7][col] = &Piece{Type: pt, Color: White}
	}
	for col := 0; col < 8; col++ {
		b.grid[1][col] = &Piece{Type: Pawn, Color: Black}
		b.grid[6][col] = &Piece{Type: Pawn, Color: White}
	}
}

// Copy returns a deep copy of the board. The copy shares nothing with the
// original, so one side can be mutated while the other is read.
func (b *Board) Copy() *Board {
	nb := &Board{state: b.state}
	for row := range b.grid {
		for col, p := range b.grid[row] {
			if p != nil {
				cp := *p
				nb.grid[row][col] = &cp
			}
		}
	}
	return nb
}

// State returns the current game state.
func (b *Board) State() GameState {
	return b.state
}

// PieceAt returns the piece on the given square and whether one is there.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if sq.Row < 0 || sq.Row > 7 || sq.Col < 0 || sq.Col > 7 {
		return Piece{}, false
	}
	p := b.grid[sq.Row][sq.Col]
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// KingSquare returns the square of the given color's king.
func (b *Board) KingSquare(c Color) (Square, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p != nil && p.Type == King && p.Color == c {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Validate checks basic position invariants.
func (b *Board) Validate() error {
	var kings [2]int
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p == nil {
				continue
			}
			if p.Type == King {
				kings[p.Color]++
			}
			if p.Type == Pawn && (row == 0 || row == 7) {
				return fmt.Errorf("pawn on back rank at %s", Square{Row: row, Col: col})
			}
		}
	}

	if kings[White] != 1 {
		return fmt.Errorf("white must have exactly one king, found %d", kings[White])
	}
	if kings[Black] != 1 {
		return fmt.Errorf("black must have exactly one king, found %d", kings[Black])
	}

	return nil
}

// String returns an ASCII diagram of the board.
func (b *Board) String() string {
	var sb strings.Builder

	sb.WriteString("\n")
	for row := 0; row < 8; row++ {
		sb.WriteString(fmt.Sprintf("%d  ", 8-row))
		for col := 0; col < 8; col++ {
			if p := b.grid[row][col]; p != nil {
				sb.WriteString(p.String())
			} else {
				sb.WriteString(".")
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n\n")

	sb.WriteString(fmt.Sprintf("Turn: %s\n", b.state.CurrentTurn))
	if sq, ok := b.state.EnPassantTarget.Square(); ok {
		sb.WriteString(fmt.Sprintf("En passant: %s\n", sq))
	}
	sb.WriteString(fmt.Sprintf("Moves: %d\n", b.state.MoveCount))

	return sb.String()
}
