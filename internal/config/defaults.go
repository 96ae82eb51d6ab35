package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the built-in configuration: the classic 40x30 board
// at 10 to 20 fps with JSON high-score storage.
func DefaultConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    40,
			Height:   30,
			CellSize: 20,
		},
		Gameplay: GameplayConfig{
			Reward: 10,
		},
		Speed: SpeedConfig{
			StartFPS:        10,
			MaxFPS:          20,
			FoodsPerSpeedup: 5,
		},
		Storage: StorageConfig{
			Backend:       BackendJSON,
			HighScoreFile: "~/.snake/highscore.json",
			DBPath:        "~/.snake/scores.db",
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
