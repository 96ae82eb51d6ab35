// Package raster draws game snapshots as images: a black board with a white
// grid, rounded cells for the snake and food, and text for the score,
// instructions and game-over overlay.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// DefaultCellSize is the pixel size of one board cell.
const DefaultCellSize = 20

// Palette.
var (
	Black     = color.RGBA{0, 0, 0, 255}
	White     = color.RGBA{255, 255, 255, 255}
	Green     = color.RGBA{0, 200, 0, 255}
	DarkGreen = color.RGBA{0, 140, 0, 255}
	Red       = color.RGBA{220, 40, 40, 255}
	Shade     = color.RGBA{0, 0, 0, 160}
)

// Renderer draws snapshots at a fixed cell size.
type Renderer struct {
	CellSize int
}

// New returns a renderer; non-positive sizes use DefaultCellSize.
func New(cellSize int) *Renderer {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Renderer{CellSize: cellSize}
}

// Size returns the canvas size for a board.
func (r *Renderer) Size(boardW, boardH int) (w, h int) {
	return boardW * r.CellSize, boardH * r.CellSize
}

// Render draws the snapshot into a new image.
func (r *Renderer) Render(s snake.Snapshot) image.Image {
	w, h := r.Size(s.Width, s.Height)
	dc := gg.NewContext(w, h)

	dc.SetColor(Black)
	dc.Clear()
	r.drawGrid(dc, w, h)

	if s.HasFood {
		r.drawCell(dc, s.Food.X, s.Food.Y, Red)
	}
	for i, seg := range s.Segments {
		c := Green
		if i == 0 {
			c = DarkGreen
		}
		r.drawCell(dc, seg.X, seg.Y, c)
	}

	dc.SetColor(White)
	dc.DrawStringAnchored(fmt.Sprintf("Score: %d", s.Score), 10, 10, 0, 1)

	if s.ShowInstructions {
		dc.DrawStringAnchored(snake.Instructions, float64(w)/2, float64(h)-30, 0.5, 0.5)
	}

	if s.Status == snake.StateGameOver {
		r.drawGameOver(dc, s, w, h)
	}

	return dc.Image()
}

func (r *Renderer) drawGrid(dc *gg.Context, width, height int) {
	dc.SetColor(White)
	dc.SetLineWidth(1)
	// Half-pixel offsets keep 1px lines on a single pixel column.
	for x := 0; x < width; x += r.CellSize {
		dc.DrawLine(float64(x)+0.5, 0, float64(x)+0.5, float64(height))
		dc.Stroke()
	}
	for y := 0; y < height; y += r.CellSize {
		dc.DrawLine(0, float64(y)+0.5, float64(width), float64(y)+0.5)
		dc.Stroke()
	}
}

func (r *Renderer) drawCell(dc *gg.Context, x, y int, c color.Color) {
	size := float64(r.CellSize)
	radius := size * 6 / DefaultCellSize
	dc.SetColor(c)
	dc.DrawRoundedRectangle(float64(x)*size, float64(y)*size, size, size, radius)
	dc.Fill()
}

func (r *Renderer) drawGameOver(dc *gg.Context, s snake.Snapshot, w, h int) {
	dc.SetColor(Shade)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	cx, cy := float64(w)/2, float64(h)/2
	lines := []struct {
		text string
		dy   float64
	}{
		{"Game Over", -60},
		{fmt.Sprintf("Final Score: %d", s.Score), -10},
		{fmt.Sprintf("High Score: %d", s.HighScore), 25},
		{"Press SPACE or R to restart", 70},
	}
	dc.SetColor(White)
	for _, l := range lines {
		dc.DrawStringAnchored(l.text, cx, cy+l.dy, 0.5, 0.5)
	}
}

// SavePNG renders the snapshot and writes it to path, creating parent
// directories. A leading ~ is expanded.
func (r *Renderer) SavePNG(s snake.Snapshot, path string) error {
	path, err := storage.ExpandPath(path)
	if err != nil {
		return err
	}
	if err := storage.EnsureDir(path); err != nil {
		return err
	}
	if err := gg.SavePNG(path, r.Render(s)); err != nil {
		return fmt.Errorf("raster: cannot save %s: %w", path, err)
	}
	return nil
}

// Thumbnail scales an image to the given width, keeping the aspect ratio.
func Thumbnail(img image.Image, width int) image.Image {
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}

// SaveThumbnail writes a scaled copy of img to path. A leading ~ is expanded.
func SaveThumbnail(img image.Image, width int, path string) error {
	path, err := storage.ExpandPath(path)
	if err != nil {
		return err
	}
	if err := storage.EnsureDir(path); err != nil {
		return err
	}
	if err := imaging.Save(Thumbnail(img, width), path); err != nil {
		return fmt.Errorf("raster: cannot save thumbnail %s: %w", path, err)
	}
	return nil
}
