// Package engine implements the search opponent: a fixed-depth minimax
// search with alpha-beta pruning over a material-and-centralization
// evaluation, tuned per difficulty tier.
package engine

import (
	"github.com/hailam/chesscore/internal/board"
)

// checkBonus rewards the side that has just delivered check.
const checkBonus = 50

// Evaluate returns the static evaluation of the board in centipawns.
// Positive favors White. The score is the signed material sum plus a
// centralization bonus for pawns and knights, plus a swing for check.
func Evaluate(b *board.Board) int {
	score := 0

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p, ok := b.PieceAt(board.Square{Row: row, Col: col})
			if !ok {
				continue
			}

			value := p.Value()
			if p.Type == board.Pawn || p.Type == board.Knight {
				value += centerBonus(row, col)
			}

			if p.Color == board.White {
				score += value
			} else {
				score -= value
			}
		}
	}

	// Only the side to move can be in check; score the swing toward the
	// side that delivered it.
	turn := b.State().CurrentTurn
	if b.InCheck(turn) {
		if turn == board.White {
			score -= checkBonus
		} else {
			score += checkBonus
		}
	}

	return score
}

// centerBonus scores proximity to the board center for pawns and knights.
// The four center squares score 20, the ring around them 10, and the rest 0.
func centerBonus(row, col int) int {
	// Doubled Chebyshev distance from the center point between the four
	// center squares; it takes the odd values 1, 3, 5, 7.
	d := max(abs(2*row-7), abs(2*col-7))
	bonus := (5 - d) * 5
	if bonus < 0 {
		return 0
	}
	return bonus
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
