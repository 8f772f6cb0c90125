// adventure is a two-player cooperative tile-grid adventure for the terminal.
//
// Usage:
//
//	adventure                 - Start the menu
//	adventure play            - Play a game directly
//	adventure replay          - Replay a recorded game and check its results
//	adventure rooms           - List and validate the rooms of a world
//	adventure scores [world]  - Show the best team scores
//
// Global flags:
//
//	--config <path>     - Custom configuration file
//	--db <path>         - Score database (default from config: ~/.adventure/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--tick <ms>         - Override the tick interval
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagTick     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "adventure",
	Short: "A two-player adventure in your terminal",
	Long: `Two players share one keyboard and cross a world of rooms together:
keys and doors, switches, springs, obstacles, bombs, torches, teleports
and riddles stand between them and the final room.

Available commands:
  menu     - Interactive menu (default)
  play     - Start a game directly
  replay   - Play back a recorded game and compare its results
  rooms    - List the rooms of a world and report problems
  scores   - View the best team scores

Examples:
  adventure
  adventure play --save
  adventure play --world ./my-world --difficulty hard
  adventure replay --silent
  adventure rooms --world ./my-world
  adventure scores classic`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 0, "Tick interval in ms (0 = from config)")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(roomsCmd)
	rootCmd.AddCommand(scoresCmd)
}
