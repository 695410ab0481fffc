package board

import "testing"

// applyAndRevert commits the move, runs the per-move checks, then undoes it
// and verifies the board came back byte for byte.
func applyAndRevert(t *testing.T, b *Board, move string, check func(t *testing.T, b *Board, rec MoveRecord)) {
	t.Helper()
	m, err := ParseMove(move)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", move, err)
	}

	want := b.Copy()
	rec := b.ApplyMove(m.From, m.To, false)
	if rec.Moved == nil {
		t.Fatalf("ApplyMove(%s) returned an inert record", move)
	}
	if check != nil {
		check(t, b, rec)
	}
	b.UndoMove(rec)

	if !sameBoards(b, want) {
		t.Errorf("undo of %s did not restore the position\ngot:%s\nwant:%s", move, b, want)
	}
}

func TestApplyQuietMove(t *testing.T) {
	b := New()
	applyAndRevert(t, b, "g1f3", func(t *testing.T, b *Board, rec MoveRecord) {
		p, ok := b.PieceAt(mustSquare(t, "f3"))
		if !ok || p.Type != Knight || !p.HasMoved {
			t.Errorf("f3 = %+v, want a moved white knight", p)
		}
		if _, ok := b.PieceAt(mustSquare(t, "g1")); ok {
			t.Error("g1 should be empty")
		}

		st := b.State()
		if st.CurrentTurn != Black {
			t.Errorf("CurrentTurn = %s, want Black", st.CurrentTurn)
		}
		if st.MoveCount != 1 {
			t.Errorf("MoveCount = %d, want 1", st.MoveCount)
		}
		if st.LastMove.String() != "g1f3" {
			t.Errorf("LastMove = %s, want g1f3", st.LastMove)
		}
		if rec.Captured != nil {
			t.Error("quiet move recorded a capture")
		}
	})
}

func TestApplyDoublePushSetsEnPassant(t *testing.T) {
	b := New()
	applyAndRevert(t, b, "e2e4", func(t *testing.T, b *Board, rec MoveRecord) {
		ep, ok := b.State().EnPassantTarget.Square()
		if !ok || ep != mustSquare(t, "e3") {
			t.Errorf("en passant target = %v (%v), want e3", ep, ok)
		}
	})

	// A quiet reply closes the window.
	playMoves(t, b, "e2e4", "g8f6")
	if _, ok := b.State().EnPassantTarget.Square(); ok {
		t.Error("en passant target should be cleared after a quiet reply")
	}
}

func TestApplyCapture(t *testing.T) {
	b := New()
	playMoves(t, b, "e2e4", "d7d5")
	applyAndRevert(t, b, "e4d5", func(t *testing.T, b *Board, rec MoveRecord) {
		if rec.Captured == nil || rec.Captured.Type != Pawn || rec.Captured.Color != Black {
			t.Errorf("Captured = %+v, want the black d-pawn", rec.Captured)
		}
		if rec.CapturedSq != mustSquare(t, "d5") {
			t.Errorf("CapturedSq = %s, want d5", rec.CapturedSq)
		}
		p, ok := b.PieceAt(mustSquare(t, "d5"))
		if !ok || p.Color != White {
			t.Error("white pawn should stand on d5")
		}
	})
}

func TestApplyEnPassantCapture(t *testing.T) {
	b := New()
	playMoves(t, b, "h2h3", "e7e5", "h3h4", "e5e4", "d2d4")

	applyAndRevert(t, b, "e4d3", func(t *testing.T, b *Board, rec MoveRecord) {
		if rec.Captured == nil || rec.Captured.Color != White || rec.Captured.Type != Pawn {
			t.Errorf("Captured = %+v, want the white d-pawn", rec.Captured)
		}
		if rec.CapturedSq != mustSquare(t, "d4") {
			t.Errorf("CapturedSq = %s, want d4 (beside the capturer, not the destination)", rec.CapturedSq)
		}
		if _, ok := b.PieceAt(mustSquare(t, "d4")); ok {
			t.Error("captured pawn should be removed from d4")
		}
		p, ok := b.PieceAt(mustSquare(t, "d3"))
		if !ok || p.Color != Black || p.Type != Pawn {
			t.Error("black pawn should stand on d3")
		}
	})
}

func TestApplyCastling(t *testing.T) {
	t.Run("kingside", func(t *testing.T) {
		b := New()
		clearKingside(t, b)
		before := b.State().MoveCount

		applyAndRevert(t, b, "e1g1", func(t *testing.T, b *Board, rec MoveRecord) {
			king, ok := b.PieceAt(mustSquare(t, "g1"))
			if !ok || king.Type != King || !king.HasMoved {
				t.Errorf("g1 = %+v, want the moved king", king)
			}
			rook, ok := b.PieceAt(mustSquare(t, "f1"))
			if !ok || rook.Type != Rook || !rook.HasMoved {
				t.Errorf("f1 = %+v, want the moved rook", rook)
			}
			for _, sq := range []string{"e1", "h1"} {
				if _, ok := b.PieceAt(mustSquare(t, sq)); ok {
					t.Errorf("%s should be empty", sq)
				}
			}
			if rec.Rook == nil || rec.RookFrom != mustSquare(t, "h1") || rec.RookTo != mustSquare(t, "f1") {
				t.Errorf("rook relocation recorded as %s -> %s", rec.RookFrom, rec.RookTo)
			}
			if got := b.State().MoveCount; got != before+1 {
				t.Errorf("castling advanced MoveCount by %d, want 1", got-before)
			}
		})

		// Undo must also clear HasMoved on both pieces.
		king, _ := b.PieceAt(mustSquare(t, "e1"))
		rook, _ := b.PieceAt(mustSquare(t, "h1"))
		if king.HasMoved || rook.HasMoved {
			t.Error("undo should restore HasMoved on king and rook")
		}
	})

	t.Run("queenside", func(t *testing.T) {
		b := New()
		playMoves(t, b, "d2d4", "a7a6", "c1f4", "b7b6", "b1c3", "c7c6", "d1d2", "d7d6")

		applyAndRevert(t, b, "e1c1", func(t *testing.T, b *Board, rec MoveRecord) {
			if p, ok := b.PieceAt(mustSquare(t, "c1")); !ok || p.Type != King {
				t.Error("king should stand on c1")
			}
			if p, ok := b.PieceAt(mustSquare(t, "d1")); !ok || p.Type != Rook {
				t.Error("rook should stand on d1")
			}
			for _, sq := range []string{"a1", "b1", "e1"} {
				if _, ok := b.PieceAt(mustSquare(t, sq)); ok {
					t.Errorf("%s should be empty", sq)
				}
			}
		})
	})
}

func TestApplyPromotion(t *testing.T) {
	setup := func(t *testing.T) *Board {
		t.Helper()
		b := emptyBoard(White)
		put(t, b, "e1", White, King)
		put(t, b, "h8", Black, King)
		put(t, b, "a7", White, Pawn)
		put(t, b, "b8", Black, Rook)
		return b
	}

	t.Run("push", func(t *testing.T) {
		applyAndRevert(t, setup(t), "a7a8", func(t *testing.T, b *Board, rec MoveRecord) {
			p, ok := b.PieceAt(mustSquare(t, "a8"))
			if !ok || p.Type != Queen || p.Color != White {
				t.Errorf("a8 = %+v, want a white queen", p)
			}
			if !rec.Promoted {
				t.Error("record should mark the promotion")
			}
		})
	})

	t.Run("capture and promote", func(t *testing.T) {
		applyAndRevert(t, setup(t), "a7b8", func(t *testing.T, b *Board, rec MoveRecord) {
			p, ok := b.PieceAt(mustSquare(t, "b8"))
			if !ok || p.Type != Queen {
				t.Errorf("b8 = %+v, want a white queen", p)
			}
			if !rec.Promoted || rec.Captured == nil || rec.Captured.Type != Rook {
				t.Errorf("record = %+v, want promotion with a rook captured", rec)
			}
		})
	})
}

func TestApplyEmptyOrigin(t *testing.T) {
	b := New()
	want := b.Copy()

	rec := b.ApplyMove(mustSquare(t, "e4"), mustSquare(t, "e5"), false)
	if rec.Moved != nil {
		t.Fatal("moving from an empty square should return an inert record")
	}
	if !sameBoards(b, want) {
		t.Error("moving from an empty square changed the board")
	}

	b.UndoMove(rec)
	if !sameBoards(b, want) {
		t.Error("undoing an inert record changed the board")
	}
}

func TestUndoKeepsEarlierHasMoved(t *testing.T) {
	b := New()
	playMoves(t, b, "e2e4", "e7e5")

	m, _ := ParseMove("g1f3")
	rec := b.ApplyMove(m.From, m.To, false)
	b.UndoMove(rec)

	knight, _ := b.PieceAt(mustSquare(t, "g1"))
	if knight.HasMoved {
		t.Error("undone knight should have HasMoved cleared")
	}
	pawn, _ := b.PieceAt(mustSquare(t, "e4"))
	if !pawn.HasMoved {
		t.Error("undo of a later move must not clear the e-pawn's HasMoved")
	}
}

func TestSimulatedApplySkipsGameOverScan(t *testing.T) {
	// Fool's mate, with the mating move applied in simulated mode: check is
	// recomputed but the terminal flags stay untouched.
	b := New()
	playMoves(t, b, "f2f3", "e7e5", "g2g4")

	m, _ := ParseMove("d8h4")
	rec := b.ApplyMove(m.From, m.To, true)

	st := b.State()
	if !st.IsCheck {
		t.Error("simulated apply should still recompute the check flag")
	}
	if st.IsCheckmate || st.IsGameOver {
		t.Error("simulated apply should not run checkmate detection")
	}

	b.UndoMove(rec)
	if b.State().IsCheck {
		t.Error("undo should clear the check flag")
	}
}
