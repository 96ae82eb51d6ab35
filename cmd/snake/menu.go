package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/render/raster"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Snake with a menu",
	Long: `Start Snake in interactive menu mode.

Pick a difficulty, play, and check the scoreboard. After a round ends,
press Esc or B to return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select
  Tab             - Scoreboard
  Q               - Quit

Examples:
  snake menu
  snake menu --difficulty hard
  snake menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	s := mustLoadSettings()
	width, height := terminalSize()

	restore := s.redirectLogs()
	stores := s.openScoreStores()
	sink := audio.New(s.cfg.Audio.Enabled, s.logger)

	err := tui.RunSession(tui.SessionOptions{
		Store:         stores.store,
		HighScores:    stores.high,
		Sink:          sink,
		Screenshots:   true,
		ScreenshotDir: tui.DefaultScreenshotDir,
		Raster:        raster.New(s.cfg.Board.CellSize),
		Config:        s.cfg,
		Preset:        s.preset,
		Player:        playerName(),
		Width:         width,
		Height:        height,
		Logger:        s.logger,
		Seed:          flagSeed,
	})

	sink.Close()
	stores.Close()
	restore()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
