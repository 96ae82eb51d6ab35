// Package snake implements the Snake round: the snake model, food placement,
// speed progression and the per-frame controller. It has no I/O of its own;
// persistence and audio are reached through the HighScores and SignalSink
// interfaces.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// GameID is the identifier used for score storage.
const GameID = "snake"

// DefaultReward is the score granted per food eaten.
const DefaultReward = 10

// Default board dimensions in cells.
const (
	DefaultWidth  = 40
	DefaultHeight = 30
)

// Status is the round state.
type Status string

const (
	StatePlaying  Status = "playing"
	StateGameOver Status = "game_over"
)

// HighScores loads and stores the best score across runs.
// Implementations never fail: load falls back to 0, save is best effort.
type HighScores interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

// SignalSink receives the round's discrete events (sound, UI effects).
type SignalSink interface {
	Play(sig core.Signal)
}

// Options configures a Game.
type Options struct {
	Width  int
	Height int
	Reward int
	Speed  Speed

	// Rand picks food cells. When nil a *rand.Rand seeded with Seed is used.
	Rand Chooser
	Seed int64

	HighScores HighScores // nil keeps the high score in memory only
	Sink       SignalSink // nil drops signals
}

// DefaultOptions returns the classic 40x30 board with default speed.
func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Reward: DefaultReward,
		Speed:  DefaultSpeed(),
	}
}

// Signals reports what happened during one Advance call.
type Signals struct {
	Emitted   []core.Signal
	FrameRate int  // Target frame rate for the next frame
	Restarted bool // The round was reset this frame
	Quit      bool // A quit intent was received
}

// Has reports whether sig was emitted.
func (s Signals) Has(sig core.Signal) bool {
	for _, got := range s.Emitted {
		if got == sig {
			return true
		}
	}
	return false
}

// Game is one Snake session: the current round plus the session high score.
type Game struct {
	width  int
	height int
	reward int
	speed  Speed
	rng    Chooser
	scores HighScores
	sink   SignalSink

	snake            *Snake
	food             core.Point
	hasFood          bool
	starved          bool // last placement found no free cell
	score            int
	foodsEaten       int
	gameOver         bool
	highScore        int
	showInstructions bool
	elapsed          time.Duration
	frames           uint64
}

// New creates a game, loads the persisted high score once and starts a round.
func New(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Reward <= 0 {
		opts.Reward = DefaultReward
	}
	if opts.Speed == (Speed{}) {
		opts.Speed = DefaultSpeed()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	g := &Game{
		width:  opts.Width,
		height: opts.Height,
		reward: opts.Reward,
		speed:  opts.Speed,
		rng:    rng,
		scores: opts.HighScores,
		sink:   opts.Sink,
	}
	if g.scores != nil {
		g.highScore = max(g.scores.LoadHighScore(), 0)
	}
	g.Reset()
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a new round. The high score is kept.
func (g *Game) Reset() {
	g.snake = NewSnake(g.width, g.height)
	g.score = 0
	g.foodsEaten = 0
	g.gameOver = false
	g.showInstructions = true
	g.elapsed = 0
	g.frames = 0
	g.placeFood()
}

func (g *Game) placeFood() {
	g.food, g.hasFood = PlaceFood(g.width, g.height, g.snake.Occupied(), g.rng)
	g.starved = !g.hasFood
}

// Advance runs one frame: input, then at most one simulation step.
//
// While playing, the step is one move followed by the collision check and
// only then the food check, so a move that is both fatal and onto the food
// ends the round without scoring. While the round is over only a restart
// intent has an effect. elapsed is the wall time since the previous frame.
func (g *Game) Advance(in core.InputFrame, elapsed time.Duration) Signals {
	var sig Signals

	if in.Has(core.ActionQuit) {
		sig.Quit = true
		sig.FrameRate = g.FrameRate()
		return sig
	}

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset()
			sig.Restarted = true
		}
		sig.FrameRate = g.FrameRate()
		return sig
	}

	// Instructions stay up through the frame that shows the first eat.
	if g.showInstructions && g.foodsEaten > 0 {
		g.showInstructions = false
	}

	for _, a := range in.Actions() {
		if d, ok := a.Direction(); ok {
			g.snake.SetDirection(d)
		}
	}

	g.frames++
	g.elapsed += max(elapsed, 0)
	g.step(&sig)

	sig.FrameRate = g.FrameRate()
	return sig
}

func (g *Game) step(sig *Signals) {
	g.snake.Move()

	if g.snake.HitsWall() || g.snake.HitsSelf() {
		g.gameOver = true
		if g.score > g.highScore {
			g.highScore = g.score
			if g.scores != nil {
				g.scores.SaveHighScore(g.highScore)
			}
		}
		g.emit(sig, core.SignalRoundOver)
		return
	}

	if g.hasFood && g.snake.Head() == g.food {
		g.snake.Grow()
		g.score += g.reward
		g.foodsEaten++
		g.emit(sig, core.SignalFoodEaten)
		g.placeFood()
		return
	}

	// The board was full at the last placement; the tail may have freed a cell.
	if g.starved {
		g.placeFood()
	}
}

func (g *Game) emit(sig *Signals, s core.Signal) {
	sig.Emitted = append(sig.Emitted, s)
	if g.sink != nil {
		g.sink.Play(s)
	}
}

// FrameRate returns the target frame rate for the current foods eaten.
func (g *Game) FrameRate() int {
	return g.speed.FrameRate(g.foodsEaten)
}

// Status returns the round state.
func (g *Game) Status() Status {
	if g.gameOver {
		return StateGameOver
	}
	return StatePlaying
}

// Score returns the current round score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the session high score.
func (g *Game) HighScore() int {
	return g.highScore
}

// FoodsEaten returns the number of foods eaten this round.
func (g *Game) FoodsEaten() int {
	return g.foodsEaten
}

// Elapsed returns the play time accumulated this round.
func (g *Game) Elapsed() time.Duration {
	return g.elapsed
}

// Food returns the food cell; the second result is false when there is none.
func (g *Game) Food() (core.Point, bool) {
	return g.food, g.hasFood
}

// Snake returns the current snake. Callers must not mutate it.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Size returns the board dimensions in cells.
func (g *Game) Size() (width, height int) {
	return g.width, g.height
}
