package board

// updateStatus refreshes the check flag for the side to move and, unless the
// update is for a simulated move, scans for the end of the game. Checkmate
// and stalemate are mutually exclusive and both imply game over.
func (b *Board) updateStatus(simulated bool) {
	turn := b.state.CurrentTurn
	b.state.IsCheck = b.InCheck(turn)

	if simulated {
		return
	}

	b.state.IsCheckmate = false
	b.state.IsStalemate = false
	b.state.IsGameOver = false
	if b.hasAnyLegalMove(turn) {
		return
	}

	b.state.IsGameOver = true
	if b.state.IsCheck {
		b.state.IsCheckmate = true
	} else {
		b.state.IsStalemate = true
	}
}
