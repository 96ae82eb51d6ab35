// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake play               - Play a round
//	snake menu               - Start menu with difficulty and scoreboard
//	snake serve              - Start SSH server for remote play
//	snake scores             - Show the recorded rounds
//	snake snapshot <out.png> - Render a seeded round to PNG
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config file (default: search ~/.snake, ./configs)
//	--seed <value>       - Set RNG seed for reproducible food placement
//	--db <path>          - Set database path (default: ~/.snake/scores.db)
//	--highscore <path>   - Set high score file (default: ~/.snake/highscore.json)
//	--difficulty <name>  - easy, normal, hard or fixed
//	--no-audio           - Disable sound effects
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       int64
	flagDBPath     string
	flagHighScore  string
	flagDifficulty string
	flagNoAudio    bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic arcade game rendered in your terminal.

Steer the snake with the arrow keys or WASD, eat the red food to grow
and score, and don't run into the walls or yourself.

Available commands:
  play      - Play a round directly
  menu      - Start menu with difficulty and scoreboard
  serve     - Start SSH server for remote play
  scores    - View recorded rounds
  snapshot  - Render a seeded round to PNG
  config    - Print the effective configuration

Examples:
  snake play
  snake play --difficulty hard
  snake menu
  snake serve --ssh :2222
  snake scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides storage.db_path)")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "", "Path to high score file (overrides storage.high_score_file)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides log.level)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
}
