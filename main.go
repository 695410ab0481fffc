// chesscore - a terminal chess game against a search bot
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/engine"
	"github.com/hailam/chesscore/internal/game"
	"github.com/hailam/chesscore/internal/storage"
)

func main() {
	var (
		difficultyFlag = flag.String("difficulty", "", "bot strength: easy, medium or hard")
		colorFlag      = flag.String("color", "", "side you play: white or black")
		botFlag        = flag.Bool("bot", true, "play against the bot")
		dataFlag       = flag.String("data", "", "directory for preferences and statistics")
		verboseFlag    = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	logger := newLogger(*verboseFlag)
	defer logger.Sync()

	store := openStore(*dataFlag)
	if store != nil {
		defer store.Close()
	}

	prefs := loadPreferences(store)

	// Flags passed on the command line win over saved preferences.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "difficulty":
			prefs.Difficulty = *difficultyFlag
		case "color":
			prefs.PlayerColor = *colorFlag
		case "bot":
			prefs.BotEnabled = *botFlag
		}
	})

	difficulty, err := engine.ParseDifficulty(prefs.Difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using %s\n", err, difficulty)
	}

	botColor := board.Black
	if strings.EqualFold(prefs.PlayerColor, "black") {
		botColor = board.White
	}

	sess := game.NewSession(game.Config{
		BotColor:   botColor,
		BotEnabled: prefs.BotEnabled,
		Difficulty: difficulty,
		Store:      store,
		Logger:     logger,
	})

	fmt.Println("chesscore - type moves like e2e4, or help for commands")
	run(sess, store, prefs)
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func openStore(dir string) *storage.Storage {
	var (
		store *storage.Storage
		err   error
	)
	if dir != "" {
		store, err = storage.OpenStorage(dir)
	} else {
		store, err = storage.NewStorage()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: storage unavailable: %v\n", err)
		return nil
	}
	return store
}

func loadPreferences(store *storage.Storage) *storage.UserPreferences {
	if store == nil {
		return storage.DefaultPreferences()
	}
	prefs, err := store.LoadPreferences()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load preferences: %v\n", err)
		return storage.DefaultPreferences()
	}
	return prefs
}

func run(sess *game.Session, store *storage.Storage, prefs *storage.UserPreferences) {
	printBoard(sess)
	collectBot(sess)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			savePreferences(store, prefs, sess)
			return
		case "help":
			printHelp()
		case "board":
			printBoard(sess)
		case "new":
			if err := sess.NewGame(); err != nil {
				fmt.Println(err)
				continue
			}
			printBoard(sess)
			collectBot(sess)
		case "undo":
			if err := sess.Undo(); err != nil {
				fmt.Println(err)
				continue
			}
			printBoard(sess)
			collectBot(sess)
		case "moves":
			if len(fields) < 2 {
				fmt.Println("usage: moves <square>")
				continue
			}
			showMoves(sess, fields[1])
		case "difficulty":
			if len(fields) < 2 {
				fmt.Printf("difficulty is %s\n", sess.Difficulty())
				continue
			}
			changeDifficulty(sess, prefs, fields[1])
		case "stats":
			showStats(store)
		default:
			playerMove(sess, strings.Join(fields, ""))
		}
	}
	savePreferences(store, prefs, sess)
}

func playerMove(sess *game.Session, ms string) {
	m, err := board.ParseMove(ms)
	if err != nil {
		fmt.Println("unrecognized command or move, try help")
		return
	}
	if err := sess.MakeMove(m); err != nil {
		fmt.Println(err)
		return
	}
	printBoard(sess)
	collectBot(sess)
}

// collectBot waits for an in-flight bot search and announces its move.
func collectBot(sess *game.Session) {
	for sess.BotThinking() {
		if sess.PollBot() {
			fmt.Printf("bot plays %s\n", sess.State().LastMove)
			printBoard(sess)
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func printBoard(sess *game.Session) {
	fmt.Println(sess.Snapshot())
	st := sess.State()
	switch {
	case st.IsGameOver:
		fmt.Println(sess.Result())
	case st.IsCheck:
		fmt.Println("Check!")
	}
}

func showMoves(sess *game.Session, sq string) {
	from, err := board.ParseSquare(sq)
	if err != nil {
		fmt.Println(err)
		return
	}
	moves := sess.MovesFrom(from)
	if len(moves) == 0 {
		fmt.Println("no legal moves from", from)
		return
	}
	targets := make([]string, len(moves))
	for i, m := range moves {
		targets[i] = m.To.String()
	}
	fmt.Println(strings.Join(targets, " "))
}

func changeDifficulty(sess *game.Session, prefs *storage.UserPreferences, name string) {
	d, err := engine.ParseDifficulty(name)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := sess.SetDifficulty(d); err != nil {
		fmt.Println(err)
		return
	}
	prefs.Difficulty = d.String()
	fmt.Printf("difficulty set to %s\n", d)
}

func showStats(store *storage.Storage) {
	if store == nil {
		fmt.Println("statistics are unavailable")
		return
	}
	stats, err := store.LoadStats()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("games: %d  wins: %d  losses: %d  draws: %d\n",
		stats.GamesPlayed, stats.Wins, stats.Losses, stats.Draws)
	if stats.GamesPlayed > 0 {
		fmt.Printf("win rate: %.0f%%  best streak: %d\n", stats.GetWinRate(), stats.LongestWinStrk)
	}
}

func savePreferences(store *storage.Storage, prefs *storage.UserPreferences, sess *game.Session) {
	if store == nil {
		return
	}
	prefs.Difficulty = sess.Difficulty().String()
	prefs.BotEnabled = sess.BotEnabled()
	if sess.BotColor() == board.White {
		prefs.PlayerColor = "black"
	} else {
		prefs.PlayerColor = "white"
	}
	if err := store.SavePreferences(prefs); err != nil {
		fmt.Fprintln(os.Stderr, "failed to save preferences:", err)
	}
}

func printHelp() {
	fmt.Println(`commands:
  e2e4              play a move (from square, to square)
  moves <square>    list legal moves for the piece on a square
  board             show the board
  new               start a new game
  undo              take back the last move
  difficulty [lvl]  show or set bot strength (easy, medium, hard)
  stats             show the game record
  quit              save preferences and exit`)
}
