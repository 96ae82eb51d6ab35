package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// settings is the configuration every command starts from.
type settings struct {
	cfg    config.SnakeConfig
	source string
	preset config.DifficultyPreset
	logger *log.Logger
}

// loadSettings loads the config, applies the global flags and validates.
// The difficulty preset is parsed but not applied.
func loadSettings() (*settings, error) {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}

	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	logger.Debug("config loaded", "source", source, "preset", preset)
	return &settings{cfg: cfg, source: source, preset: preset, logger: logger}, nil
}

// mustLoadSettings is loadSettings for commands that cannot run without it.
func mustLoadSettings() *settings {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return s
}

// applyFlags overrides config values with the global flags that were set.
func applyFlags(cfg *config.SnakeConfig) {
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagHighScore != "" {
		cfg.Storage.HighScoreFile = flagHighScore
	}
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
}

// newLogger builds the command logger on stderr.
func newLogger(level string) (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if level == "" {
		return logger, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("config: invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// redirectLogs points the logger at the configured log file, or discards
// output, while the alternate screen owns the terminal. The returned func
// restores stderr and closes the file.
func (s *settings) redirectLogs() func() {
	if s.cfg.Log.File == "" {
		s.logger.SetOutput(io.Discard)
		return func() { s.logger.SetOutput(os.Stderr) }
	}

	f, err := openLogFile(s.cfg.Log.File)
	if err != nil {
		s.logger.Warn("could not open log file, logs are discarded", "path", s.cfg.Log.File, "error", err)
		s.logger.SetOutput(io.Discard)
		return func() { s.logger.SetOutput(os.Stderr) }
	}

	s.logger.SetOutput(f)
	return func() {
		s.logger.SetOutput(os.Stderr)
		f.Close()
	}
}

func openLogFile(path string) (*os.File, error) {
	path, err := storage.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if err := storage.EnsureDir(path); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// scoreStores holds the high-score collaborator and the optional history.
type scoreStores struct {
	high  snake.HighScores
	store *storage.Store // nil when the database could not be opened
}

// openScoreStores opens the history database (best effort) and picks the
// high-score backend. A sqlite backend without a database falls back to the
// JSON file.
func (s *settings) openScoreStores() scoreStores {
	var out scoreStores

	store, err := storage.Open(s.cfg.Storage.DBPath)
	if err != nil {
		s.logger.Warn("could not open scores database", "path", s.cfg.Storage.DBPath, "error", err)
	} else {
		out.store = store
	}

	switch {
	case s.cfg.Storage.Backend == config.BackendSQLite && out.store != nil:
		out.high = out.store.HighScores(snake.GameID, s.logger)
	case s.cfg.Storage.Backend == config.BackendSQLite:
		s.logger.Warn("sqlite backend unavailable, using high score file", "path", s.cfg.Storage.HighScoreFile)
		fallthrough
	default:
		out.high = storage.NewFile(s.cfg.Storage.HighScoreFile, s.logger)
	}

	return out
}

// Close closes the history database.
func (st scoreStores) Close() {
	if st.store != nil {
		st.store.Close()
	}
}

// seed returns the --seed value, or the clock when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// terminalSize returns the stdout size, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// playerName returns the local user name recorded with each round.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
