// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SnakeConfig contains all configuration for the game and its collaborators.
type SnakeConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Speed    SpeedConfig    `yaml:"speed"`
	Storage  StorageConfig  `yaml:"storage"`
	Audio    AudioConfig    `yaml:"audio"`
	Log      LogConfig      `yaml:"log"`
	SSH      SSHConfig      `yaml:"ssh"`
}

// BoardConfig defines the board size in cells.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"` // Pixels per cell for PNG output
}

// GameplayConfig defines scoring.
type GameplayConfig struct {
	Reward int `yaml:"reward"`
}

// SpeedConfig defines the frame-rate progression.
type SpeedConfig struct {
	StartFPS        int `yaml:"start_fps"`
	MaxFPS          int `yaml:"max_fps"`
	FoodsPerSpeedup int `yaml:"foods_per_speedup"` // 0 disables progression
}

// StorageConfig selects where scores are kept.
type StorageConfig struct {
	Backend       string `yaml:"backend"` // "json" or "sqlite"
	HighScoreFile string `yaml:"high_score_file"`
	DBPath        string `yaml:"db_path"`
}

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// AudioConfig toggles sound effects.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty discards logs during a local TUI session
}

// SSHConfig defines the remote play server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// MinBoardWidth fits the starting snake plus one free cell.
const MinBoardWidth = snake.InitialLength + 1

// Validate reports the first invalid setting.
func (c SnakeConfig) Validate() error {
	if c.Board.Width < MinBoardWidth {
		return fmt.Errorf("config: board.width must be at least %d, got %d", MinBoardWidth, c.Board.Width)
	}
	if c.Board.Height < 1 {
		return fmt.Errorf("config: board.height must be positive, got %d", c.Board.Height)
	}
	if c.Board.CellSize < 1 {
		return fmt.Errorf("config: board.cell_size must be positive, got %d", c.Board.CellSize)
	}
	if c.Gameplay.Reward < 1 {
		return fmt.Errorf("config: gameplay.reward must be positive, got %d", c.Gameplay.Reward)
	}
	if c.Speed.StartFPS < 1 {
		return fmt.Errorf("config: speed.start_fps must be positive, got %d", c.Speed.StartFPS)
	}
	if c.Speed.MaxFPS < c.Speed.StartFPS {
		return fmt.Errorf("config: speed.max_fps (%d) is below speed.start_fps (%d)", c.Speed.MaxFPS, c.Speed.StartFPS)
	}
	if c.Speed.FoodsPerSpeedup < 0 {
		return errors.New("config: speed.foods_per_speedup must not be negative")
	}
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown storage.backend %q", c.Storage.Backend)
	}
	return nil
}

// GameOptions converts the config into options for a new game.
// Collaborators (high scores, sink, random source) are left for the caller.
func (c SnakeConfig) GameOptions() snake.Options {
	return snake.Options{
		Width:  c.Board.Width,
		Height: c.Board.Height,
		Reward: c.Gameplay.Reward,
		Speed: snake.Speed{
			StartFPS:        c.Speed.StartFPS,
			MaxFPS:          c.Speed.MaxFPS,
			FoodsPerSpeedup: c.Speed.FoodsPerSpeedup,
		},
	}
}
