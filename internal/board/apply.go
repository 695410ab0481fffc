package board

// ApplyMove executes a move and returns the record needed to undo it. The
// move is trusted: legality filtering happens in the generators, and
// ApplyMove itself never fails. Moving from an empty square is a no-op that
// returns an inert record.
//
// When simulated is true the move is applied for look-ahead only: check is
// still recomputed, but the full legal-move scan that detects checkmate and
// stalemate is skipped. Committed moves pass simulated=false and leave the
// game state fully up to date.
func (b *Board) ApplyMove(from, to Square, simulated bool) MoveRecord {
	if _, ok := SquareFromCoords(from.Row, from.Col); !ok {
		return MoveRecord{}
	}
	if _, ok := SquareFromCoords(to.Row, to.Col); !ok {
		return MoveRecord{}
	}
	piece := b.grid[from.Row][from.Col]
	if piece == nil {
		return MoveRecord{}
	}

	rec := MoveRecord{
		Move:       Move{From: from, To: to},
		Moved:      piece,
		MovedPrior: *piece,
		Prior:      b.state,
	}

	// En passant capture: the victim sits beside the pawn, not on the
	// destination square.
	if ep, ok := b.state.EnPassantTarget.Square(); ok && piece.Type == Pawn && to == ep {
		capSq := Square{Row: from.Row, Col: to.Col}
		rec.Captured = b.grid[capSq.Row][capSq.Col]
		rec.CapturedSq = capSq
		b.grid[capSq.Row][capSq.Col] = nil
	}

	// Ordinary capture on the destination square.
	if victim := b.grid[to.Row][to.Col]; victim != nil {
		rec.Captured = victim
		rec.CapturedSq = to
	}

	// A king stepping two columns is castling; relocate the rook as well.
	if piece.Type == King && abs(to.Col-from.Col) == 2 {
		var rookFrom, rookTo Square
		if to.Col > from.Col {
			rookFrom = Square{Row: from.Row, Col: 7}
			rookTo = Square{Row: from.Row, Col: to.Col - 1}
		} else {
			rookFrom = Square{Row: from.Row, Col: 0}
			rookTo = Square{Row: from.Row, Col: to.Col + 1}
		}
		if rook := b.grid[rookFrom.Row][rookFrom.Col]; rook != nil {
			rec.Rook = rook
			rec.RookPrior = *rook
			rec.RookFrom = rookFrom
			rec.RookTo = rookTo
			b.grid[rookTo.Row][rookTo.Col] = rook
			b.grid[rookFrom.Row][rookFrom.Col] = nil
			rook.HasMoved = true
		}
	}

	// A double pawn push opens an en passant window behind the pawn; any
	// other move closes it.
	if piece.Type == Pawn && abs(to.Row-from.Row) == 2 {
		b.state.EnPassantTarget = EnPassantAt(Square{Row: (from.Row + to.Row) / 2, Col: from.Col})
	} else {
		b.state.EnPassantTarget = NoEnPassant()
	}

	// Relocate the piece.
	b.grid[to.Row][to.Col] = piece
	b.grid[from.Row][from.Col] = nil
	piece.HasMoved = true

	// Pawns reaching the far rank always promote to queens.
	if piece.Type == Pawn {
		if (piece.Color == White && to.Row == 0) || (piece.Color == Black && to.Row == 7) {
			piece.Type = Queen
			rec.Promoted = true
		}
	}

	b.state.CurrentTurn = b.state.CurrentTurn.Other()
	b.state.MoveCount++
	b.state.LastMove = rec.Move

	b.updateStatus(simulated)

	return rec
}

// UndoMove reverses a move applied by ApplyMove, restoring the exact prior
// board and game state. Undoing an inert record changes nothing.
func (b *Board) UndoMove(rec MoveRecord) {
	if rec.Moved == nil {
		return
	}

	*rec.Moved = rec.MovedPrior
	b.grid[rec.Move.From.Row][rec.Move.From.Col] = rec.Moved
	b.grid[rec.Move.To.Row][rec.Move.To.Col] = nil

	if rec.Captured != nil {
		b.grid[rec.CapturedSq.Row][rec.CapturedSq.Col] = rec.Captured
	}

	if rec.Rook != nil {
		*rec.Rook = rec.RookPrior
		b.grid[rec.RookFrom.Row][rec.RookFrom.Col] = rec.Rook
		b.grid[rec.RookTo.Row][rec.RookTo.Col] = nil
	}

	b.state = rec.Prior
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
