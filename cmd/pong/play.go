package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/round"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagLeft   string
	flagRight  string
	flagRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a session in the terminal.

Each paddle is driven by a player: human (keyboard), tracker (follows the
ball) or idle. With a single human player both key sets move its paddle.

Controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle up/down
  P/Esc      - Pause
  R          - Restart with a new seed
  Q/Ctrl+C   - Quit

Examples:
  pong play
  pong play --left human --right human
  pong play --left tracker --right tracker --seed 42
  pong play --record`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLeft, "left", "tracker", "Left paddle player")
	playCmd.Flags().StringVar(&flagRight, "right", "human", "Right paddle player")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the session for replay")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns stdout, so logs go to --log-file or nowhere.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	left, right, err := createPlayers(cfg, flagLeft, flagRight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pong players' to see available players.")
		os.Exit(1)
	}

	// Terminal size fixes the playfield aspect for the whole session.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	field := round.PlayfieldFromCells(width, max(height-1, 1), cfg.Field.HalfHeight)
	if err := field.Fits(cfg.Layout()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: terminal is too narrow (%dx%d): %v\n", width, height, err)
		os.Exit(1)
	}
	logger.Debug("playfield", "cols", width, "rows", height,
		"half_width", field.HalfWidth, "half_height", field.HalfHeight)

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
		MaxDelta: cfg.Loop.MaxDelta(),
	}

	session, err := tui.Run(tui.Options{
		Left:     left,
		Right:    right,
		NewRound: roundFactory(cfg, field, logger),
		Runtime:  rt,
		Record:   flagRecord,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Final points: %d - %d\n", session.PointsLeft, session.PointsRight)

	if !flagRecord || len(session.Frames) == 0 {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveReplay(storage.Replay{
		ReplayInfo: storage.ReplayInfo{
			Seed:        session.Seed,
			Field:       field,
			LeftPlayer:  left.ID(),
			RightPlayer: right.ID(),
		},
		Config: cfg,
		Steps:  session.Frames,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving replay: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved replay %d (%d frames). Run 'pong replay %d' to re-run it.\n", id, len(session.Frames), id)
}
