// Package storage keeps scores: a JSON file with the single best score and a
// SQLite round history on the pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

// Store is the SQLite score history. Every round is a row in scores; the
// high_scores table keeps a best score per game that survives history edits.
type Store struct {
	db *sql.DB
}

// Result is a finished round to record.
type Result struct {
	GameID   string
	Score    int
	Duration time.Duration
	Player   string // empty for local play
}

// ScoreEntry is one recorded round.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Duration  time.Duration
	Player    string
	CreatedAt time.Time
}

// GameStats aggregates the history of one game.
type GameStats struct {
	GameID       string
	GamesCount   int
	HighScore    int
	AvgScore     float64
	TotalScore   int64
	TotalPlayed  time.Duration
	LongestRound time.Duration
	LastPlayed   time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id     TEXT    NOT NULL,
	score       INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL DEFAULT 0,
	player      TEXT    NOT NULL DEFAULT '',
	created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS scores_by_game ON scores(game_id, score DESC);

CREATE TABLE IF NOT EXISTS high_scores (
	game_id    TEXT PRIMARY KEY,
	score      INTEGER NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

// selectScores lists a game's rounds best first; ties keep insertion order.
const selectScores = `SELECT id, game_id, score, duration_ms, player, created_at
FROM scores WHERE game_id = ? ORDER BY score DESC, id ASC`

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Open opens the database at dbPath, creating it and its directory when
// missing, and brings the schema up to date.
func Open(dbPath string) (*Store, error) {
	path, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := EnsureDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connect %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore appends a round and returns its row ID.
func (s *Store) SaveScore(r Result) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, duration_ms, player) VALUES (?, ?, ?, ?)",
		r.GameID, r.Score, r.Duration.Milliseconds(), r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: insert round: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: read round id: %w", err)
	}
	return id, nil
}

// TopScores returns the best limit rounds. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.listScores(selectScores+" LIMIT ?", gameID, limit)
}

// AllScores returns every round of the game, best first.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.listScores(selectScores, gameID)
}

func (s *Store) listScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: list rounds: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			ms      int64
			created any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &ms, &e.Player, &created); err != nil {
			return nil, fmt.Errorf("storage: scan round: %w", err)
		}
		e.Duration = time.Duration(ms) * time.Millisecond
		e.CreatedAt = toTime(created)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: list rounds: %w", err)
	}
	return out, nil
}

// toTime accepts either a driver time.Time or SQLite's text timestamp.
func toTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore is the larger of the stored high score and the best recorded
// round, or 0 when the game has neither.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	row := s.db.QueryRow(`SELECT MAX(score) FROM (
		SELECT score FROM scores WHERE game_id = ?
		UNION ALL
		SELECT score FROM high_scores WHERE game_id = ?)`, gameID, gameID)
	if err := row.Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: read high score: %w", err)
	}
	return int(best.Int64), nil
}

// SetHighScore replaces the stored high score of the game.
func (s *Store) SetHighScore(gameID string, score int) error {
	_, err := s.db.Exec(`INSERT INTO high_scores (game_id, score) VALUES (?, ?)
		ON CONFLICT(game_id) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP`,
		gameID, score)
	if err != nil {
		return fmt.Errorf("storage: write high score: %w", err)
	}
	return nil
}

// ClearScores removes the history and the stored high score of the game.
func (s *Store) ClearScores(gameID string) error {
	for _, table := range []string{"scores", "high_scores"} {
		if _, err := s.db.Exec("DELETE FROM "+table+" WHERE game_id = ?", gameID); err != nil {
			return fmt.Errorf("storage: clear %s: %w", table, err)
		}
	}
	return nil
}

// GetGameStats summarizes the recorded rounds. LastPlayed stays zero when
// the game has no rounds.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	st := &GameStats{GameID: gameID}
	var totalMS, longestMS int64

	row := s.db.QueryRow(`SELECT COUNT(*),
		COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		COALESCE(SUM(duration_ms), 0), COALESCE(MAX(duration_ms), 0)
		FROM scores WHERE game_id = ?`, gameID)
	if err := row.Scan(&st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &totalMS, &longestMS); err != nil {
		return nil, fmt.Errorf("storage: summarize rounds: %w", err)
	}
	st.TotalPlayed = time.Duration(totalMS) * time.Millisecond
	st.LongestRound = time.Duration(longestMS) * time.Millisecond

	var last any
	err := s.db.QueryRow(`SELECT created_at FROM scores WHERE game_id = ?
		ORDER BY created_at DESC, id DESC LIMIT 1`, gameID).Scan(&last)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: read last round: %w", err)
	default:
		st.LastPlayed = toTime(last)
	}
	return st, nil
}

// HighScores adapts the store to the game's high-score collaborator for one
// game ID. Errors are logged and never surface to the game.
func (s *Store) HighScores(gameID string, logger *log.Logger) *DBHighScores {
	if logger == nil {
		logger = log.Default()
	}
	return &DBHighScores{store: s, gameID: gameID, logger: logger}
}

// DBHighScores is a high-score collaborator backed by the SQLite store.
type DBHighScores struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// LoadHighScore returns the best known score, or 0 on error.
func (h *DBHighScores) LoadHighScore() int {
	score, err := h.store.HighScore(h.gameID)
	if err != nil {
		h.logger.Debug("cannot load high score", "game", h.gameID, "error", err)
		return 0
	}
	return score
}

// SaveHighScore stores a new high score.
func (h *DBHighScores) SaveHighScore(score int) {
	if err := h.store.SetHighScore(h.gameID, score); err != nil {
		h.logger.Debug("cannot save high score", "game", h.gameID, "error", err)
	}
}
