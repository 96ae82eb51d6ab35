package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/render/raster"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// DefaultHostKeyPath is where the server keeps its generated host key.
const DefaultHostKeyPath = "~/.snake/host_key"

// shutdownGrace bounds how long Shutdown waits for open sessions.
const shutdownGrace = 10 * time.Second

// SSHServerConfig describes a remote play server.
type SSHServerConfig struct {
	Address     string        // listen address, e.g. ":23234"
	HostKeyPath string        // generated on first start; DefaultHostKeyPath when empty
	DBPath      string        // history shared by every session
	IdleTimeout time.Duration // idle sessions are dropped after this

	Game   config.SnakeConfig       // board and speed for every session
	Preset config.DifficultyPreset // difficulty preselected in each menu
	Logger *log.Logger
}

// SSHServerConfigFrom builds the server settings from the loaded config.
func SSHServerConfigFrom(cfg config.SnakeConfig) SSHServerConfig {
	return SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKey,
		DBPath:      cfg.Storage.DBPath,
		IdleTimeout: cfg.SSH.IdleTimeout,
		Game:        cfg,
	}
}

// SSHServer serves the session flow over SSH. Each connection plays its own
// round; all of them record into one history.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer prepares the host key and the history database. A database
// that fails to open is logged and sessions play without history.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	srv := &SSHServer{config: cfg, logger: cfg.Logger}
	if srv.logger == nil {
		srv.logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "snake-ssh"})
	}

	if store, err := storage.Open(cfg.DBPath); err != nil {
		srv.logger.Warn("playing without score history", "db", cfg.DBPath, "error", err)
	} else {
		srv.store = store
	}

	keyPath, err := srv.prepareHostKeyDir()
	if err != nil {
		srv.closeStore()
		return nil, err
	}

	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.logSessions,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: ssh server: %w", err)
	}
	return srv, nil
}

// prepareHostKeyDir resolves the host key path and creates its directory.
func (s *SSHServer) prepareHostKeyDir() (string, error) {
	path := s.config.HostKeyPath
	if path == "" {
		path = DefaultHostKeyPath
	}
	path, err := storage.ExpandPath(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: host key directory: %w", err)
	}
	return path, nil
}

// teaHandler starts a session model for a connection with a PTY and refuses
// the rest.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	user := sess.User()
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("rejecting session without a PTY", "user", user)
		return nil, nil
	}

	return NewSessionModel(SessionOptions{
		Store:  s.store,
		Config: s.config.Game,
		Preset: s.config.Preset,
		Player: user,
		Width:  pty.Window.Width,
		Height: pty.Window.Height,
		Logger: s.logger.With("user", user),
	}), []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		kv := []any{"user", sess.User(), "remote", sess.RemoteAddr().String()}
		start := time.Now()
		s.logger.Info("session opened", kv...)
		next(sess)
		s.logger.Info("session closed", append(kv, "after", time.Since(start).Round(time.Second))...)
	}
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("listening", "address", s.config.Address)
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("ssh server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown closes the listener, waits for sessions up to a grace period and
// closes the history.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Debug("closing score history", "error", err)
	}
	s.store = nil
}

// Addr is the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Store *storage.Store // Score history; nil plays without it

	// HighScores overrides the store's high score. With neither set the
	// high score lives for the session only.
	HighScores snake.HighScores
	Sink       snake.SignalSink

	// Screenshots enables ctrl+s, written under ScreenshotDir.
	Screenshots   bool
	ScreenshotDir string
	Raster        *raster.Renderer

	Config config.SnakeConfig
	Preset config.DifficultyPreset
	Player string
	Width  int
	Height int
	Logger *log.Logger

	// Seed fixes the food sequence; 0 seeds each round from the clock.
	Seed int64
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel drives one player's visit: the menu starts rounds or opens
// the scoreboard, and both return to the menu when left.
type SessionModel struct {
	opts      SessionOptions
	width     int
	height    int
	view      sessionView
	menu      MenuModel
	gameModel Model
	scores    ScoreboardModel
	tickLive  bool // a TickMsg is scheduled and will arrive
	quitting  bool
}

// NewSessionModel opens on the menu with opts.Preset selected.
func NewSessionModel(opts SessionOptions) SessionModel {
	m := SessionModel{
		opts:   opts,
		width:  opts.Width,
		height: opts.Height,
	}
	m.menu = m.newMenu(opts.Preset)
	return m
}

func (m SessionModel) highScores() snake.HighScores {
	if m.opts.HighScores != nil {
		return m.opts.HighScores
	}
	if m.opts.Store != nil {
		return m.opts.Store.HighScores(snake.GameID, m.opts.Logger)
	}
	return nil
}

func (m SessionModel) newMenu(preset config.DifficultyPreset) MenuModel {
	high := 0
	if hs := m.highScores(); hs != nil {
		high = hs.LoadHighScore()
	} else if m.gameModel.game != nil {
		high = m.gameModel.game.HighScore()
	}
	return NewMenuModel(m.width, m.height, preset, high)
}

// newGame builds a round for the chosen preset.
func (m SessionModel) newGame(preset config.DifficultyPreset) Model {
	cfg := m.opts.Config
	config.ApplyPreset(&cfg, preset)

	gameOpts := cfg.GameOptions()
	gameOpts.Seed = m.opts.Seed
	if gameOpts.Seed == 0 {
		gameOpts.Seed = time.Now().UnixNano()
	}

	gameOpts.HighScores = m.highScores()
	gameOpts.Sink = m.opts.Sink

	modelOpts := ModelOptions{
		Width:         m.width,
		Height:        m.height,
		Player:        m.opts.Player,
		Logger:        m.opts.Logger,
		AllowBack:     true,
		NoScreenshots: !m.opts.Screenshots,
		ScreenshotDir: m.opts.ScreenshotDir,
		Raster:        m.opts.Raster,
	}
	if m.opts.Store != nil {
		modelOpts.History = m.opts.Store
	}

	return NewModel(snake.New(gameOpts), modelOpts)
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
	}
	if _, ok := msg.(TickMsg); ok && m.view != viewGame {
		// Left over from the previous round; the loop ends here.
		m.tickLive = false
		return m, nil
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// toMenu rebuilds the menu so it shows the latest high score.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = m.newMenu(m.menu.Preset())
	m.view = viewMenu
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch m.menu.Choice() {
	case ChoiceQuit:
		return m.quit()

	case ChoicePlay:
		m.gameModel = m.newGame(m.menu.Preset())
		m.view = viewGame
		if m.tickLive {
			// The pending tick drives the new round.
			return m, nil
		}
		m.tickLive = true
		return m, m.gameModel.Init()

	case ChoiceScores:
		var source ScoreSource
		if m.opts.Store != nil {
			source = m.opts.Store
		}
		m.scores = NewScoreboardModel(source, m.width, m.height)
		m.view = viewScores
		return m, m.scores.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if game, ok := next.(Model); ok {
		m.gameModel = game
	}

	switch {
	case m.gameModel.IsQuitting():
		return m.quit()
	case m.gameModel.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scores = sb
	}

	switch {
	case m.scores.IsQuitting():
		return m.quit()
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.view == viewGame:
		return m.gameModel.View()
	case m.view == viewScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu, game and scoreboard flow in the local terminal.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(NewSessionModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
