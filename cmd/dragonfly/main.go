// dragonfly is a terminal dragon-flight game: hold altitude with flame
// bursts and weave through the tower gaps.
//
// Usage:
//
//	dragonfly play              - Play in the current terminal
//	dragonfly scores            - Show recorded run scores
//	dragonfly serve             - Start SSH server for remote play
//	dragonfly autoplay          - Run a headless scripted session
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: from config, 60)
//	--seed <value>    - Set RNG seed for reproducible runs
//	--db <path>       - Set database path (default: ~/.dragonfly/scores.db)
//	--config <path>   - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slevin48/dragon-flame-fly/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragonfly",
	Short: "Dragonfly - fly a dragon through tower gaps in your terminal",
	Long: `Dragonfly is a terminal game: a dragon falls under gravity, each
flame burst kicks it upward, and towers scroll in from the right. Slip
through the gaps to score.

Available commands:
  play      - Play in the current terminal
  scores    - View recorded runs and the high score
  serve     - Start SSH server for remote play
  autoplay  - Run a headless scripted session

Examples:
  dragonfly play
  dragonfly play --fps 30 --seed 42
  dragonfly scores --board
  dragonfly serve --ssh :2222
  dragonfly autoplay --ticks 3600`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(autoplayCmd)
}

// loadConfig resolves the effective platform configuration: the YAML layer
// first, then the global flags on top of it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Database.Path = flagDBPath
	}
	return cfg, nil
}
