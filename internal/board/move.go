package board

import "fmt"

// Move is a from/to square pair. Promotion carries no annotation because
// pawns reaching the back rank always become queens.
type Move struct {
	From Square
	To   Square
}

// NoMove is the zero Move, used where no move applies.
var NoMove = Move{}

// String returns the move in coordinate form (e.g., "e2e4").
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses a move in coordinate form (e.g., "e2e4").
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	return Move{From: from, To: to}, nil
}

// MoveRecord captures everything needed to reverse one applied move. A record
// with a nil Moved pointer is inert: undoing it changes nothing.
type MoveRecord struct {
	Move       Move
	Moved      *Piece
	MovedPrior Piece
	Captured   *Piece
	CapturedSq Square
	Rook       *Piece
	RookPrior  Piece
	RookFrom   Square
	RookTo     Square
	Promoted   bool
	Prior      GameState
}
