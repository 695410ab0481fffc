// Package game hosts interactive play: it owns the live board, validates and
// commits moves, runs the bot search in the background, and records finished
// games.
//
// A Session is confined to a single caller goroutine. The bot searches on a
// snapshot of the board in its own goroutine and hands its move back through
// a channel; the caller collects it with PollBot. State-changing calls are
// refused with ErrBotThinking while a search is in flight, so the live board
// is never mutated concurrently.
package game

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/engine"
	"github.com/hailam/chesscore/internal/storage"
)

var (
	ErrGameOver      = errors.New("game is already over")
	ErrBotThinking   = errors.New("bot is still thinking")
	ErrNotYourTurn   = errors.New("not your turn to move")
	ErrIllegalMove   = errors.New("illegal move")
	ErrNothingToUndo = errors.New("no moves available to undo")
)

// Config carries the settings a new session starts with.
type Config struct {
	BotColor   board.Color
	BotEnabled bool
	Difficulty engine.Difficulty
	Store      *storage.Storage
	Logger     *zap.Logger
}

// Session is one game in progress.
type Session struct {
	id     string
	logger *zap.Logger

	board  *board.Board
	engine *engine.Engine
	store  *storage.Storage

	botColor   board.Color
	botEnabled bool

	history []board.MoveRecord

	botThinking bool
	botMove     chan board.Move

	started  time.Time
	result   string
	recorded bool
}

// NewSession starts a fresh game from the initial position. If the bot plays
// White it starts thinking immediately.
func NewSession(cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := engine.New()
	e.SetDifficulty(cfg.Difficulty)

	s := &Session{
		id:         uuid.NewString(),
		logger:     logger,
		board:      board.New(),
		engine:     e,
		store:      cfg.Store,
		botColor:   cfg.BotColor,
		botEnabled: cfg.BotEnabled,
		botMove:    make(chan board.Move, 1),
		started:    time.Now(),
	}

	s.logger.Info("session started",
		zap.String("session", s.id),
		zap.String("difficulty", cfg.Difficulty.String()),
		zap.Bool("bot", cfg.BotEnabled),
	)

	s.maybeStartBot()
	return s
}

// MakeMove validates and commits a move for the side to move. It refuses the
// move while the game is over, while the bot is thinking, and when the moving
// piece does not belong to the caller.
func (s *Session) MakeMove(m board.Move) error {
	if s.board.State().IsGameOver {
		return ErrGameOver
	}
	if s.botThinking {
		return ErrBotThinking
	}

	turn := s.board.State().CurrentTurn
	if s.botEnabled && turn == s.botColor {
		return ErrNotYourTurn
	}

	piece, ok := s.board.PieceAt(m.From)
	if !ok || piece.Color != turn {
		return ErrIllegalMove
	}

	legal := false
	for _, cand := range s.board.LegalMovesFrom(m.From) {
		if cand == m {
			legal = true
			break
		}
	}
	if !legal {
		return ErrIllegalMove
	}

	s.commit(m)
	s.maybeStartBot()
	return nil
}

// commit applies a validated move to the live board.
func (s *Session) commit(m board.Move) {
	rec := s.board.ApplyMove(m.From, m.To, false)
	s.history = append(s.history, rec)

	s.logger.Debug("move committed",
		zap.Stringer("move", m),
		zap.Int("ply", s.board.State().MoveCount),
	)

	s.checkGameEnd()
}

// checkGameEnd sets the result text and records the game once it is decided.
func (s *Session) checkGameEnd() {
	st := s.board.State()
	if !st.IsGameOver {
		if st.IsCheck {
			s.logger.Debug("check", zap.Stringer("side", st.CurrentTurn))
		}
		return
	}

	won := false
	draw := false
	if st.IsCheckmate {
		// The side to move is the side that got mated.
		if st.CurrentTurn == board.White {
			s.result = "Black wins by checkmate!"
		} else {
			s.result = "White wins by checkmate!"
		}
		won = st.CurrentTurn == s.botColor
	} else {
		s.result = "Draw by stalemate"
		draw = true
	}

	s.logger.Info("game over",
		zap.String("session", s.id),
		zap.String("result", s.result),
		zap.Int("ply", st.MoveCount),
	)

	if s.recorded || s.store == nil || !s.botEnabled {
		return
	}
	s.recorded = true

	err := s.store.RecordGame(storage.GameResult{
		Won:        won,
		Draw:       draw,
		Difficulty: s.engine.Difficulty().String(),
		Duration:   time.Since(s.started),
	})
	if err != nil {
		s.logger.Warn("failed to record finished game", zap.Error(err))
	}
}

// maybeStartBot launches a background search when it is the bot's turn.
func (s *Session) maybeStartBot() {
	if !s.botEnabled || s.botThinking || s.board.State().IsGameOver {
		return
	}
	if s.board.State().CurrentTurn != s.botColor {
		return
	}

	s.botThinking = true
	snapshot := s.board.Copy()

	go func() {
		start := time.Now()
		move, ok := s.engine.Search(snapshot)
		if !ok {
			move = board.NoMove
		}
		s.logger.Debug("bot move selected",
			zap.Stringer("move", move),
			zap.Duration("took", time.Since(start)),
		)
		s.botMove <- move // Always send, even if NoMove
	}()
}

// PollBot collects the bot's move if the search has finished. It returns true
// when a bot move was committed to the board.
func (s *Session) PollBot() bool {
	if !s.botThinking {
		return false
	}

	select {
	case move := <-s.botMove:
		s.botThinking = false
		if move == board.NoMove {
			// No move means the game ended under the bot.
			s.checkGameEnd()
			return false
		}
		s.commit(move)
		return true
	default:
		// Still thinking
		return false
	}
}

// Undo takes back the most recent half-move. With the bot enabled it takes
// back the player's move together with the bot's reply, so it is the
// player's turn again; when the bot never replied to the last move (the
// player's move ended the game, or the bot opened and the player has not
// answered), only that single move comes back, and the bot resumes thinking
// if the undo leaves it on move. Undoing past the end of a finished game
// reopens it; the recorded result stands, a session contributes at most one
// game to the statistics.
func (s *Session) Undo() error {
	if s.botThinking {
		return ErrBotThinking
	}
	if len(s.history) == 0 {
		return ErrNothingToUndo
	}

	// The last record decides the pop count: a bot reply comes back together
	// with the player's move under it, anything else comes back alone.
	steps := 1
	if s.botEnabled && len(s.history) >= 2 {
		last := s.history[len(s.history)-1]
		if last.MovedPrior.Color == s.botColor {
			steps = 2
		}
	}

	for i := 0; i < steps; i++ {
		rec := s.history[len(s.history)-1]
		s.history = s.history[:len(s.history)-1]
		s.board.UndoMove(rec)
	}
	s.result = ""

	s.logger.Debug("moves undone", zap.Int("count", steps))

	s.maybeStartBot()
	return nil
}

// NewGame resets the session to the initial position.
func (s *Session) NewGame() error {
	if s.botThinking {
		return ErrBotThinking
	}

	s.board.Reset()
	s.history = nil
	s.result = ""
	s.recorded = false
	s.started = time.Now()

	s.logger.Info("new game", zap.String("session", s.id))

	s.maybeStartBot()
	return nil
}

// SetDifficulty changes the bot strength for subsequent searches.
func (s *Session) SetDifficulty(d engine.Difficulty) error {
	if s.botThinking {
		return ErrBotThinking
	}
	s.engine.SetDifficulty(d)
	s.logger.Info("difficulty changed", zap.String("difficulty", d.String()))
	return nil
}

// SetBotColor assigns the side the bot plays. If that side is to move, the
// bot starts thinking.
func (s *Session) SetBotColor(c board.Color) error {
	if s.botThinking {
		return ErrBotThinking
	}
	s.botColor = c
	s.maybeStartBot()
	return nil
}

// SetBotEnabled turns the bot opponent on or off.
func (s *Session) SetBotEnabled(enabled bool) error {
	if s.botThinking {
		return ErrBotThinking
	}
	s.botEnabled = enabled
	if enabled {
		s.maybeStartBot()
	}
	return nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current game state.
func (s *Session) State() board.GameState { return s.board.State() }

// Snapshot returns an independent copy of the live board.
func (s *Session) Snapshot() *board.Board { return s.board.Copy() }

// MovesFrom returns the legal moves for the piece on the given square.
func (s *Session) MovesFrom(sq board.Square) []board.Move {
	return s.board.LegalMovesFrom(sq)
}

// BotThinking reports whether a bot search is in flight.
func (s *Session) BotThinking() bool { return s.botThinking }

// Result returns the result text of a finished game, or "" while play
// continues.
func (s *Session) Result() string { return s.result }

// Difficulty returns the current bot strength.
func (s *Session) Difficulty() engine.Difficulty { return s.engine.Difficulty() }

// BotColor returns the side the bot plays.
func (s *Session) BotColor() board.Color { return s.botColor }

// BotEnabled reports whether the bot opponent is on.
func (s *Session) BotEnabled() bool { return s.botEnabled }
