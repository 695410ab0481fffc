package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "Unknown"
	}
}

// PieceValue is the material value of each piece type in centipawns.
var PieceValue = [6]int{100, 320, 330, 500, 900, 20000}

// Piece is a single piece on the board. HasMoved is set the first time the
// piece relocates and is never cleared, castling rooks included.
type Piece struct {
	Type     PieceType
	Color    Color
	HasMoved bool
}

// Value returns the material value of the piece in centipawns.
func (p Piece) Value() int {
	return PieceValue[p.Type]
}

// String returns the piece letter, uppercase for White and lowercase for Black.
func (p Piece) String() string {
	const letters = "PNBRQKpnbrqk"
	return string(letters[int(p.Type)+int(p.Color)*6])
}
