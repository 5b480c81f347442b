// g2048 plays 2048 in the terminal.
//
// Usage:
//
//	g2048 play               - Play a game
//	g2048 menu               - Pick a difficulty interactively
//	g2048 scores             - Show the best games
//	g2048 stats              - Show totals and achievements
//	g2048 simulate           - Play headless games with a bot
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/2048.db)
//	--log-level <level>  - debug, info, warn or error
//	--config <path>      - Path to a 2048.yaml config file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagConfig   string

	// appConfig is resolved once before any subcommand runs.
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "g2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `g2048 is a terminal version of the 2048 sliding puzzle.

Available commands:
  play      - Play a game directly
  menu      - Difficulty picker with scoreboard
  scores    - View the best games
  stats     - View totals and achievements
  simulate  - Run headless games with a bot policy

Examples:
  g2048 play
  g2048 play --difficulty hard --seed 42
  g2048 menu
  g2048 scores --limit 20
  g2048 simulate --games 500 --policy corner`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(cmd, config.EnvLookup(".env"))
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default: "+config.DefaultDBPath+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom 2048.yaml")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// resolveConfig layers the config file, the environment (.env included)
// and explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, lookup func(string) (string, bool)) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyEnv(&cfg, lookup)

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("fps") {
		if flagFPS < 1 {
			return config.Config{}, fmt.Errorf("--fps must be at least 1, got %d", flagFPS)
		}
		cfg.Display.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
