package board

// IsSquareAttacked reports whether the given square is attacked by any piece
// of the given color. Each piece family is probed directly from the square,
// so the answer never depends on whose turn it is or on move legality.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	// Pawns attack one row forward on the diagonals.
	dir := pawnDirection(by)
	for _, dc := range []int{-1, 1} {
		if from, ok := SquareFromCoords(sq.Row-dir, sq.Col+dc); ok {
			if p := b.grid[from.Row][from.Col]; p != nil && p.Type == Pawn && p.Color == by {
				return true
			}
		}
	}

	for _, delta := range knightOffsets {
		if from, ok := SquareFromCoords(sq.Row+delta.dr, sq.Col+delta.dc); ok {
			if p := b.grid[from.Row][from.Col]; p != nil && p.Type == Knight && p.Color == by {
				return true
			}
		}
	}

	for _, delta := range kingOffsets {
		if from, ok := SquareFromCoords(sq.Row+delta.dr, sq.Col+delta.dc); ok {
			if p := b.grid[from.Row][from.Col]; p != nil && p.Type == King && p.Color == by {
				return true
			}
		}
	}

	if b.attackedAlong(sq, by, rookDirections[:], Rook) {
		return true
	}
	return b.attackedAlong(sq, by, bishopDirections[:], Bishop)
}

// attackedAlong walks each ray from the square and reports whether the first
// piece met is a slider of the given type, or a queen, of the attacking color.
func (b *Board) attackedAlong(sq Square, by Color, directions []moveDelta, slider PieceType) bool {
	for _, delta := range directions {
		row, col := sq.Row+delta.dr, sq.Col+delta.dc
		for {
			from, ok := SquareFromCoords(row, col)
			if !ok {
				break
			}
			p := b.grid[from.Row][from.Col]
			if p == nil {
				row += delta.dr
				col += delta.dc
				continue
			}
			if p.Color == by && (p.Type == slider || p.Type == Queen) {
				return true
			}
			break
		}
	}
	return false
}

// InCheck reports whether the given color's king is attacked.
func (b *Board) InCheck(c Color) bool {
	kingSq, ok := b.KingSquare(c)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(kingSq, c.Other())
}
