package storage

import (
	"encoding/json"
	"os"

	"github.com/charmbracelet/log"
)

// File keeps the high score in a small JSON document: {"high_score": N}.
// It never fails: unreadable data loads as 0 and write errors are logged.
type File struct {
	path   string
	logger *log.Logger
}

type highScoreDoc struct {
	HighScore int `json:"high_score"`
}

// NewFile returns a JSON high-score store at path. A nil logger uses the
// package default.
func NewFile(path string, logger *log.Logger) *File {
	if logger == nil {
		logger = log.Default()
	}
	if expanded, err := ExpandPath(path); err == nil {
		path = expanded
	} else {
		logger.Debug("keeping unexpanded high score path", "path", path, "error", err)
	}
	return &File{path: path, logger: logger}
}

// Path returns the resolved file path.
func (f *File) Path() string {
	return f.path
}

// LoadHighScore returns the stored score, or 0 when the file is missing,
// malformed or holds a negative value.
func (f *File) LoadHighScore() int {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Debug("cannot read high score", "path", f.path, "error", err)
		}
		return 0
	}

	var doc highScoreDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		f.logger.Debug("cannot parse high score", "path", f.path, "error", err)
		return 0
	}
	return max(doc.HighScore, 0)
}

// SaveHighScore writes the score, creating parent directories as needed.
func (f *File) SaveHighScore(score int) {
	if err := f.save(score); err != nil {
		f.logger.Debug("cannot save high score", "path", f.path, "error", err)
	}
}

func (f *File) save(score int) error {
	if err := EnsureDir(f.path); err != nil {
		return err
	}
	data, err := json.Marshal(highScoreDoc{HighScore: score})
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}
