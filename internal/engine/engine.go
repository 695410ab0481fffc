package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/hailam/chesscore/internal/board"
)

// Difficulty represents the bot difficulty level.
type Difficulty int

const (
	Easy   Difficulty = iota // 1 ply, 30% random moves
	Medium                   // 2 ply
	Hard                     // 3 ply
)

// String returns the difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty maps a difficulty name to its tier.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Medium, fmt.Errorf("unknown difficulty: %q", s)
	}
}

// Settings bundles the search parameters for one difficulty tier.
type Settings struct {
	Depth        int
	RandomChance float64 // probability of replacing the search result with a random legal move
}

// DifficultySettings maps difficulty to search settings.
var DifficultySettings = map[Difficulty]Settings{
	Easy:   {Depth: 1, RandomChance: 0.3},
	Medium: {Depth: 2},
	Hard:   {Depth: 3},
}

// Engine is the search opponent for one game.
type Engine struct {
	difficulty Difficulty
	rng        *rand.Rand
}

// New creates an engine at Medium difficulty.
func New() *Engine {
	return &Engine{
		difficulty: Medium,
		rng:        rand.New(rand.NewSource(int64(rand.Uint64()))),
	}
}

// SetDifficulty sets the engine difficulty.
func (e *Engine) SetDifficulty(d Difficulty) {
	e.difficulty = d
}

// Difficulty returns the current difficulty tier.
func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// Search finds a move for the side to move on b. The board is mutated during
// the search and restored before returning, so callers that keep playing on
// a shared board must hand the engine a private copy. The second return is
// false when the side to move has no legal move.
func (e *Engine) Search(b *board.Board) (board.Move, bool) {
	settings := DifficultySettings[e.difficulty]

	move, ok := bestMove(b, settings.Depth)
	if !ok {
		return board.NoMove, false
	}

	if settings.RandomChance > 0 && e.rng.Float64() < settings.RandomChance {
		moves := b.LegalMoves(b.State().CurrentTurn)
		move = moves[e.rng.Intn(len(moves))]
	}

	return move, true
}

// Evaluate returns the static evaluation of a position.
func (e *Engine) Evaluate(b *board.Board) int {
	return Evaluate(b)
}

// Perft performs a perft test (for debugging move generation).
func (e *Engine) Perft(b *board.Board, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := b.LegalMoves(b.State().CurrentTurn)
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		rec := b.ApplyMove(m.From, m.To, true)
		nodes += e.Perft(b, depth-1)
		b.UndoMove(rec)
	}

	return nodes
}
