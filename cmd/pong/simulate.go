package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/physics"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/round"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagFrames   int
	flagDelta    float64
	flagCols     int
	flagRows     int
	flagSimLeft  string
	flagSimRight string
	flagSimSave  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session and print the result",
	Long: `Run a session without a terminal UI using a fixed step.
Keyboard players cannot take part; use tracker or idle.

Examples:
  pong simulate
  pong simulate --frames 3600 --dt 0.008 --seed 42
  pong simulate --left idle --cols 120 --rows 40 --record`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	simulateCmd.Flags().Float64Var(&flagDelta, "dt", 1.0/60, "Seconds per frame")
	simulateCmd.Flags().IntVar(&flagCols, "cols", 80, "Virtual terminal columns (sets the aspect)")
	simulateCmd.Flags().IntVar(&flagRows, "rows", 24, "Virtual terminal rows (sets the aspect)")
	simulateCmd.Flags().StringVar(&flagSimLeft, "left", "tracker", "Left paddle player")
	simulateCmd.Flags().StringVar(&flagSimRight, "right", "tracker", "Right paddle player")
	simulateCmd.Flags().BoolVar(&flagSimSave, "record", false, "Save the session for replay")
}

func runSimulate(cmd *cobra.Command, args []string) {
	if flagFrames <= 0 || flagDelta <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --frames and --dt must be positive")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	left, right, err := createPlayers(cfg, flagSimLeft, flagSimRight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, p := range []registry.Player{left, right} {
		if _, ok := p.(registry.InputReceiver); ok {
			fmt.Fprintf(os.Stderr, "Error: player %q needs a keyboard\n", p.ID())
			os.Exit(1)
		}
	}

	seed := resolveSeed()
	field := round.PlayfieldFromCells(flagCols, flagRows, cfg.Field.HalfHeight)
	if err := field.Fits(cfg.Layout()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: --cols %d --rows %d: %v\n", flagCols, flagRows, err)
		os.Exit(1)
	}
	ctrl := roundFactory(cfg, field, logger)(seed)

	frames := make([]round.Frame, 0, flagFrames)
	collisions := map[round.Collision]int{}
	for i, n := 0, flagFrames; i < n; i++ {
		view := ctrl.View()
		f := round.Frame{
			Delta: flagDelta,
			Left:  left.Intent(physics.SideLeft, view),
			Right: right.Intent(physics.SideRight, view),
		}
		frames = append(frames, f)
		res := ctrl.Step(f)
		collisions[res.Collision]++
		if res.Scored != physics.SideNone {
			logger.Info("point", "frame", res.Frame, "crossed", res.Scored)
		}
	}

	fmt.Printf("Simulated %s vs %s (seed %d)\n", left.ID(), right.ID(), seed)
	printState(ctrl)
	fmt.Printf("  Hits:     left %d, right %d, border %d\n",
		collisions[round.CollisionLeftPaddle],
		collisions[round.CollisionRightPaddle],
		collisions[round.CollisionBorder])

	if !flagSimSave {
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
			Seed:        seed,
			Field:       field,
			LeftPlayer:  left.ID(),
			RightPlayer: right.ID(),
		},
		Config: cfg,
		Steps:  frames,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving replay: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved replay %d\n", id)
}
