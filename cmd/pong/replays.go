package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/round"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagLimit  int
	flagDelete bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded sessions",
	Long: `Shows the most recent recorded sessions, newest first.

Examples:
  pong replays
  pong replays --limit 50`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a recorded session headlessly",
	Long: `Rebuilds the round from the stored seed, playfield and config and
feeds it the recorded frames. The printed state is the state the session
ended in.

Examples:
  pong replay 3
  pong replay 3 --delete`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of replays to show")
	replayCmd.Flags().BoolVar(&flagDelete, "delete", false, "Delete the replay instead of running it")
}

func runReplays(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	replays, err := store.ListReplays(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replays: %v\n", err)
		os.Exit(1)
	}

	if len(replays) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pong play --record' to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-16s  %-17s  %-8s  %s\n", "ID", "Date", "Players", "Frames", "Seed")
	fmt.Printf("  %-5s  %-16s  %-17s  %-8s  %s\n", "--", "----", "-------", "------", "----")

	for _, r := range replays {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		players := r.LeftPlayer + " vs " + r.RightPlayer
		fmt.Printf("  %-5d  %-16s  %-17s  %-8d  %d\n", r.ID, dateStr, players, r.Frames, r.Seed)
	}
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid replay id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDelete {
		if err := store.DeleteReplay(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting replay: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted replay %d\n", id)
		return
	}

	replay, err := store.LoadReplay(id)
	if errors.Is(err, storage.ErrReplayNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no replay with id %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'pong replays' to see recorded sessions.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := replay.Field.Fits(replay.Config.Layout()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: replay %d: %v\n", id, err)
		os.Exit(1)
	}

	ctrl := roundFactory(replay.Config, replay.Field, logger)(replay.Seed)
	round.Replay(ctrl, replay.Steps)

	fmt.Printf("Replay %d: %s vs %s (seed %d, recorded %s)\n",
		replay.ID, replay.LeftPlayer, replay.RightPlayer, replay.Seed,
		replay.CreatedAt.Format("2006-01-02 15:04"))
	printState(ctrl)
}
