// pong is a terminal paddle-and-ball game with a deterministic physics core.
//
// Usage:
//
//	pong play                - Play in the terminal
//	pong simulate            - Run a headless session and print the result
//	pong replays             - List recorded sessions
//	pong replay <id>         - Re-run a recorded session headlessly
//	pong players             - List available paddle players
//	pong config              - Print or write the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible launches
//	--db <path>          - Set database path (default: ~/.pong/replays.db)
//	--config <path>      - Use a custom YAML or TOML config
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import players to register them
	_ "github.com/vovakirdan/tui-pong/internal/players"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - a paddle and ball game in your terminal",
	Long: `Pong is a two-player paddle and ball game for the terminal.
The simulation is deterministic given the seed and the per-frame inputs,
so sessions can be recorded and replayed exactly.

Available commands:
  play      - Play in the terminal
  simulate  - Run a headless session
  replays   - List recorded sessions
  replay    - Re-run a recorded session
  players   - List paddle players
  config    - Show the effective configuration

Examples:
  pong play
  pong play --left tracker --right human --record
  pong simulate --frames 3600 --seed 42
  pong replays
  pong replay 3`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Without --log-file it writes to
// fallback. The returned closer releases the log file, if any.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "pong",
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closer, nil
}
