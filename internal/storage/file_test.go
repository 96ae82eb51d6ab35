package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileMissingLoadsZero(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "highscore.json"), nil)
	if got := f.LoadHighScore(); got != 0 {
		t.Errorf("LoadHighScore() = %d, expected 0", got)
	}
}

func TestFileSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "highscore.json")
	f := NewFile(path, nil)

	f.SaveHighScore(120)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("high score file not written: %v", err)
	}
	if string(data) != `{"high_score":120}` {
		t.Errorf("file content = %s", data)
	}
	if got := NewFile(path, nil).LoadHighScore(); got != 120 {
		t.Errorf("LoadHighScore() = %d, expected 120", got)
	}
}

func TestFileReadsHighScoreKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.json")
	if err := os.WriteFile(path, []byte("{\n  \"high_score\": 340\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := NewFile(path, nil).LoadHighScore(); got != 340 {
		t.Errorf("LoadHighScore() = %d, expected 340", got)
	}
}

func TestFileBadContentLoadsZero(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "{not json"},
		{"wrong type", `{"high_score": "lots"}`},
		{"negative", `{"high_score": -5}`},
		{"missing key", `{"best": 99}`},
		{"empty", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.json")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if got := NewFile(path, nil).LoadHighScore(); got != 0 {
				t.Errorf("LoadHighScore() = %d, expected 0", got)
			}
		})
	}
}

func TestFileSaveFailureIsSwallowed(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	// The parent "directory" is a regular file, so the write must fail quietly.
	f := NewFile(filepath.Join(blocker, "highscore.json"), nil)
	f.SaveHighScore(10)

	if got := f.LoadHighScore(); got != 0 {
		t.Errorf("LoadHighScore() = %d, expected 0", got)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.snake/highscore.json")
	if err != nil {
		t.Fatalf("ExpandPath() error: %v", err)
	}
	if got != filepath.Join(home, ".snake", "highscore.json") {
		t.Errorf("ExpandPath() = %q", got)
	}

	if got, _ := ExpandPath("/tmp/x.json"); got != "/tmp/x.json" {
		t.Errorf("absolute path changed to %q", got)
	}
	if got, _ := ExpandPath("~user/x"); !strings.HasPrefix(got, "~user") {
		t.Errorf("~user paths should be left alone, got %q", got)
	}

	f := NewFile("~/hs.json", nil)
	if f.Path() != filepath.Join(home, "hs.json") {
		t.Errorf("Path() = %q", f.Path())
	}
}
