package engine

import (
	"github.com/hailam/chesscore/internal/board"
)

// Infinity bounds the alpha-beta window; real scores stay well inside it.
const Infinity = 30000

// minimax searches the position to the given depth with alpha-beta pruning
// and returns its score. maximizing is true when the node chooses for White.
// Moves are applied and undone on b in place, so b must not be shared.
//
// A node whose side to move has no legal reply scores as the static
// evaluation of the position, checkmate and stalemate alike.
func minimax(b *board.Board, depth, alpha, beta int, maximizing bool) int {
	if depth == 0 {
		return Evaluate(b)
	}

	moves := b.SearchMoves(b.State().CurrentTurn)
	if len(moves) == 0 {
		return Evaluate(b)
	}

	if maximizing {
		best := -Infinity
		for _, m := range moves {
			rec := b.ApplyMove(m.From, m.To, true)
			score := minimax(b, depth-1, alpha, beta, false)
			b.UndoMove(rec)

			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := Infinity
	for _, m := range moves {
		rec := b.ApplyMove(m.From, m.To, true)
		score := minimax(b, depth-1, alpha, beta, true)
		b.UndoMove(rec)

		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// bestMove picks a move for the side to move by trying every legal move,
// castling included, and searching the reply tree under each to depth-1.
// Ties keep the first candidate encountered. The second return is false
// when there is no legal move.
func bestMove(b *board.Board, depth int) (board.Move, bool) {
	turn := b.State().CurrentTurn
	moves := b.LegalMoves(turn)
	if len(moves) == 0 {
		return board.NoMove, false
	}

	maximizing := turn == board.White
	alpha, beta := -Infinity, Infinity

	best := board.NoMove
	bestScore := Infinity
	if maximizing {
		bestScore = -Infinity
	}

	for _, m := range moves {
		rec := b.ApplyMove(m.From, m.To, true)
		score := minimax(b, depth-1, alpha, beta, !maximizing)
		b.UndoMove(rec)

		if maximizing {
			if score > bestScore {
				bestScore = score
				best = m
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			if score < bestScore {
				bestScore = score
				best = m
			}
			if bestScore < beta {
				beta = bestScore
			}
		}
	}

	return best, true
}
