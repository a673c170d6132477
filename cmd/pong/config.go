package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagWrite string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or write the effective configuration",
	Long: `Loads the configuration the way 'play' does (file, then PONG_*
environment overrides) and prints it as YAML, or writes it to a file.
The file format follows the extension: .toml writes TOML, anything else YAML.

Examples:
  pong config
  PONG_PHYSICS_BALL_SPEED=10 pong config
  pong config --write ~/.pong/configs/pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagWrite, "write", "", "Write the configuration to this path")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagWrite == "" {
		if err := config.Write(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := config.Save(flagWrite, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", flagWrite)
}
