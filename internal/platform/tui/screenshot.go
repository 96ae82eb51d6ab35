package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/render/raster"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// DefaultScreenshotDir is where ctrl+s writes captures.
const DefaultScreenshotDir = "~/.snake/screenshots"

// Screenshot writes the terminal frame as text and the board as PNG.
// It returns the written paths; the PNG is skipped when renderer is nil.
func Screenshot(dir string, at time.Time, screen *core.Screen, snap snake.Snapshot, renderer *raster.Renderer) ([]string, error) {
	dir, err := storage.ExpandPath(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", snake.GameID, at.Format("20060102_150405")))
	txtPath := base + ".txt"
	if err := os.WriteFile(txtPath, []byte(screen.String()), 0o600); err != nil {
		return nil, fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	paths := []string{txtPath}

	if renderer != nil {
		pngPath := base + ".png"
		if err := renderer.SavePNG(snap, pngPath); err != nil {
			return paths, err
		}
		paths = append(paths, pngPath)
	}
	return paths, nil
}
