package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagYes   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded rounds",
	Long: `Display the top rounds from the score history.

Subcommands:
  stats  - Aggregate statistics
  board  - Interactive scoreboard
  clear  - Delete the history and stored high score

Examples:
  snake scores
  snake scores --limit 25
  snake scores stats
  snake scores clear --yes`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var scoresStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics",
	Args:  cobra.NoArgs,
	Run:   runScoresStats,
}

var scoresBoardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive scoreboard",
	Args:  cobra.NoArgs,
	Run:   runScoresBoard,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded rounds",
	Args:  cobra.NoArgs,
	Run:   runScoresClear,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show (0 = all)")
	scoresClearCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm deletion")

	scoresCmd.AddCommand(scoresStatsCmd)
	scoresCmd.AddCommand(scoresBoardCmd)
	scoresCmd.AddCommand(scoresClearCmd)
}

// mustOpenStore opens the history database or exits.
func mustOpenStore(s *settings) *storage.Store {
	store, err := storage.Open(s.cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScores(_ *cobra.Command, _ []string) {
	s := mustLoadSettings()
	store := mustOpenStore(s)

	var scores []storage.ScoreEntry
	var err error
	if flagLimit == 0 {
		scores, err = store.AllScores(snake.GameID)
	} else {
		scores, err = store.TopScores(snake.GameID, flagLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-12s  %s\n", "Rank", "Score", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-12s  %s\n", "----", "-----", "----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-6s  %-12s  %s\n",
			i+1, entry.Score, formatClock(entry.Duration), player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(snake.GameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if s.cfg.Storage.Backend == config.BackendJSON {
		file := storage.NewFile(s.cfg.Storage.HighScoreFile, s.logger)
		fmt.Printf("High score file: %d (%s)\n", file.LoadHighScore(), file.Path())
	}
}

func runScoresStats(_ *cobra.Command, _ []string) {
	s := mustLoadSettings()
	store := mustOpenStore(s)
	defer store.Close()

	stats, err := store.GetGameStats(snake.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	fmt.Println("Snake statistics")
	fmt.Println()
	fmt.Printf("  Rounds played:  %d\n", stats.GamesCount)
	fmt.Printf("  Best score:     %d\n", stats.HighScore)
	fmt.Printf("  Average score:  %.1f\n", stats.AvgScore)
	fmt.Printf("  Total score:    %d\n", stats.TotalScore)
	fmt.Printf("  Time played:    %s\n", stats.TotalPlayed.Round(time.Second))
	fmt.Printf("  Longest round:  %s\n", stats.LongestRound.Round(time.Second))
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:    %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}

func runScoresBoard(_ *cobra.Command, _ []string) {
	s := mustLoadSettings()
	store := mustOpenStore(s)
	defer store.Close()

	width, height := terminalSize()
	if _, err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func runScoresClear(_ *cobra.Command, _ []string) {
	if !flagYes {
		fmt.Fprintln(os.Stderr, "Refusing to clear scores without --yes")
		os.Exit(1)
	}

	s := mustLoadSettings()
	store := mustOpenStore(s)
	defer store.Close()

	if err := store.ClearScores(snake.GameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
		return
	}
	s.logger.Info("score history cleared", "db", s.cfg.Storage.DBPath)
	fmt.Println("Score history cleared.")
}

// formatClock renders a round length as mm:ss.
func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
