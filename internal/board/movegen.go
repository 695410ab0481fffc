package board

// moveDelta is a row/column step used by the offset-based generators.
type moveDelta struct {
	dr int
	dc int
}

var (
	rookDirections = [...]moveDelta{
		{dr: 1, dc: 0},
		{dr: -1, dc: 0},
		{dr: 0, dc: 1},
		{dr: 0, dc: -1},
	}
	bishopDirections = [...]moveDelta{
		{dr: 1, dc: 1},
		{dr: 1, dc: -1},
		{dr: -1, dc: 1},
		{dr: -1, dc: -1},
	}
	knightOffsets = [...]moveDelta{
		{dr: 2, dc: 1},
		{dr: 2, dc: -1},
		{dr: -2, dc: 1},
		{dr: -2, dc: -1},
		{dr: 1, dc: 2},
		{dr: 1, dc: -2},
		{dr: -1, dc: 2},
		{dr: -1, dc: -2},
	}
	kingOffsets = [...]moveDelta{
		{dr: 1, dc: 0},
		{dr: -1, dc: 0},
		{dr: 0, dc: 1},
		{dr: 0, dc: -1},
		{dr: 1, dc: 1},
		{dr: 1, dc: -1},
		{dr: -1, dc: 1},
		{dr: -1, dc: -1},
	}
)

// pawnDirection is the row step a pawn of the given color advances by.
// White pawns move toward row 0, Black pawns toward row 7.
func pawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// pawnStartRow is the row a pawn of the given color starts on.
func pawnStartRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// LegalMoves returns every legal move for the given color, castling included.
func (b *Board) LegalMoves(c Color) []Move {
	return b.legalMoves(c, true)
}

// SearchMoves returns every legal move for the given color except castling.
// The search opponent explores positions with this reduced set; castling is
// still offered to it at the root through LegalMoves.
func (b *Board) SearchMoves(c Color) []Move {
	return b.legalMoves(c, false)
}

// LegalMovesFrom returns the legal moves for the piece on the given square,
// or nil if the square is empty. Legality is judged for the piece's own
// color; whose turn it is remains the caller's concern.
func (b *Board) LegalMovesFrom(sq Square) []Move {
	p, ok := b.PieceAt(sq)
	if !ok {
		return nil
	}

	var legal []Move
	for _, m := range b.pseudoMovesFrom(sq, p, true) {
		if !b.wouldLeaveKingInCheck(m.From, m.To) {
			legal = append(legal, m)
		}
	}
	return legal
}

func (b *Board) legalMoves(c Color, includeCastling bool) []Move {
	var legal []Move
	for _, m := range b.pseudoMoves(c, includeCastling) {
		if !b.wouldLeaveKingInCheck(m.From, m.To) {
			legal = append(legal, m)
		}
	}
	return legal
}

// hasAnyLegalMove reports whether the given color has at least one legal
// move, stopping at the first it finds.
func (b *Board) hasAnyLegalMove(c Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p == nil || p.Color != c {
				continue
			}
			sq := Square{Row: row, Col: col}
			for _, m := range b.pseudoMovesFrom(sq, *p, true) {
				if !b.wouldLeaveKingInCheck(m.From, m.To) {
					return true
				}
			}
		}
	}
	return false
}

// pseudoMoves generates moves for every piece of the given color without
// testing king safety.
func (b *Board) pseudoMoves(c Color, includeCastling bool) []Move {
	var moves []Move
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p == nil || p.Color != c {
				continue
			}
			sq := Square{Row: row, Col: col}
			moves = append(moves, b.pseudoMovesFrom(sq, *p, includeCastling)...)
		}
	}
	return moves
}

func (b *Board) pseudoMovesFrom(from Square, p Piece, includeCastling bool) []Move {
	switch p.Type {
	case Pawn:
		return b.pawnMoves(from, p)
	case Knight:
		return b.offsetMoves(from, p, knightOffsets[:])
	case Bishop:
		return b.slidingMoves(from, p, bishopDirections[:])
	case Rook:
		return b.slidingMoves(from, p, rookDirections[:])
	case Queen:
		moves := b.slidingMoves(from, p, rookDirections[:])
		return append(moves, b.slidingMoves(from, p, bishopDirections[:])...)
	case King:
		moves := b.offsetMoves(from, p, kingOffsets[:])
		if includeCastling {
			moves = append(moves, b.castlingMoves(from, p)...)
		}
		return moves
	default:
		return nil
	}
}

func (b *Board) pawnMoves(from Square, p Piece) []Move {
	var moves []Move
	dir := pawnDirection(p.Color)

	// Single push, and the double push from the start row behind it.
	if to, ok := SquareFromCoords(from.Row+dir, from.Col); ok && b.grid[to.Row][to.Col] == nil {
		moves = append(moves, Move{From: from, To: to})
		if from.Row == pawnStartRow(p.Color) {
			if to2, ok := SquareFromCoords(from.Row+2*dir, from.Col); ok && b.grid[to2.Row][to2.Col] == nil {
				moves = append(moves, Move{From: from, To: to2})
			}
		}
	}

	// Diagonal captures, en passant included.
	for _, dc := range []int{-1, 1} {
		to, ok := SquareFromCoords(from.Row+dir, from.Col+dc)
		if !ok {
			continue
		}
		if target := b.grid[to.Row][to.Col]; target != nil {
			if target.Color != p.Color {
				moves = append(moves, Move{From: from, To: to})
			}
			continue
		}
		if ep, ok := b.state.EnPassantTarget.Square(); ok && ep == to {
			moves = append(moves, Move{From: from, To: to})
		}
	}

	return moves
}

func (b *Board) offsetMoves(from Square, p Piece, offsets []moveDelta) []Move {
	var moves []Move
	for _, delta := range offsets {
		to, ok := SquareFromCoords(from.Row+delta.dr, from.Col+delta.dc)
		if !ok {
			continue
		}
		if target := b.grid[to.Row][to.Col]; target != nil && target.Color == p.Color {
			continue
		}
		moves = append(moves, Move{From: from, To: to})
	}
	return moves
}

func (b *Board) slidingMoves(from Square, p Piece, directions []moveDelta) []Move {
	var moves []Move
	for _, delta := range directions {
		row, col := from.Row+delta.dr, from.Col+delta.dc
		for {
			to, ok := SquareFromCoords(row, col)
			if !ok {
				break
			}
			target := b.grid[to.Row][to.Col]
			if target == nil {
				moves = append(moves, Move{From: from, To: to})
				row += delta.dr
				col += delta.dc
				continue
			}
			if target.Color != p.Color {
				moves = append(moves, Move{From: from, To: to})
			}
			break
		}
	}
	return moves
}

// castlingMoves returns the castling king moves available from the given
// square. The rook's relocation is not part of the move; applying the king's
// two-column step performs it.
func (b *Board) castlingMoves(from Square, king Piece) []Move {
	if king.HasMoved || b.IsSquareAttacked(from, king.Color.Other()) {
		return nil
	}

	var moves []Move
	for _, side := range []struct {
		rookCol int
		step    int
	}{
		{rookCol: 7, step: 1},
		{rookCol: 0, step: -1},
	} {
		rook := b.grid[from.Row][side.rookCol]
		if rook == nil || rook.Type != Rook || rook.Color != king.Color || rook.HasMoved {
			continue
		}

		// Every square between king and rook must be empty.
		blocked := false
		for col := from.Col + side.step; col != side.rookCol; col += side.step {
			if col < 0 || col > 7 || b.grid[from.Row][col] != nil {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		// The king may not pass through or land on an attacked square.
		transit, ok := SquareFromCoords(from.Row, from.Col+side.step)
		if !ok || b.IsSquareAttacked(transit, king.Color.Other()) {
			continue
		}
		dest, ok := SquareFromCoords(from.Row, from.Col+2*side.step)
		if !ok || b.IsSquareAttacked(dest, king.Color.Other()) {
			continue
		}

		moves = append(moves, Move{From: from, To: dest})
	}
	return moves
}

// wouldLeaveKingInCheck tests a move by applying it in simulated mode,
// probing the mover's king, and undoing it. The board is unchanged when this
// returns.
func (b *Board) wouldLeaveKingInCheck(from, to Square) bool {
	rec := b.ApplyMove(from, to, true)
	if rec.Moved == nil {
		return false
	}
	inCheck := b.InCheck(rec.MovedPrior.Color)
	b.UndoMove(rec)
	return inCheck
}
