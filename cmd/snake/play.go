package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/render/raster"
)

var flagScreenshotDir string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round of Snake",
	Long: `Start playing Snake directly.

Controls:
  Arrows/WASD  - Steer
  Space/R      - Restart (after game over)
  Ctrl+S       - Save a screenshot (text and PNG)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 7 fps, +1 every 6 foods, up to 14
  normal - Uses the config speed (10 fps, +1 every 5 foods, up to 20)
  hard   - 14 fps, +1 every 3 foods, up to 28
  fixed  - No progression, stays at the config start speed

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42 --no-audio
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", tui.DefaultScreenshotDir, "Directory for Ctrl+S screenshots")
}

func runPlay(_ *cobra.Command, _ []string) {
	s := mustLoadSettings()

	cfg := s.cfg
	config.ApplyPreset(&cfg, s.preset)
	width, height := terminalSize()

	restore := s.redirectLogs()
	stores := s.openScoreStores()
	sink := audio.New(cfg.Audio.Enabled, s.logger)

	opts := cfg.GameOptions()
	opts.Seed = seed()
	opts.HighScores = stores.high
	opts.Sink = sink
	game := snake.New(opts)

	modelOpts := tui.ModelOptions{
		Width:         width,
		Height:        height,
		Player:        playerName(),
		ScreenshotDir: flagScreenshotDir,
		Raster:        raster.New(cfg.Board.CellSize),
		Logger:        s.logger,
	}
	if stores.store != nil {
		modelOpts.History = stores.store
	}

	s.logger.Info("round started", "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height), "preset", s.preset, "seed", opts.Seed)
	runErr := tui.Run(game, modelOpts)

	// Close before potential exit
	sink.Close()
	stores.Close()
	restore()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("Score: %d  High score: %d\n", game.Score(), game.HighScore())
}
