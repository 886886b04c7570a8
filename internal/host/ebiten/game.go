package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/dshills/clipevent/internal/input"
)

// Default window size.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Game is an ebiten.Game that reports the window's input.
type Game struct {
	tracker *Tracker
	emit    func(input.PlayerEvent)
	poll    func() Snapshot
	frame   func() error
	status  func() string
	width   int
	height  int
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithTracker replaces the default tracker.
func WithTracker(t *Tracker) GameOption {
	return func(g *Game) {
		if t != nil {
			g.tracker = t
		}
	}
}

// WithWindowSize sets the initial window size.
func WithWindowSize(width, height int) GameOption {
	return func(g *Game) {
		if width > 0 && height > 0 {
			g.width, g.height = width, height
		}
	}
}

// WithFrameFunc sets a function called once per tick after the tick's
// events have been emitted. A non-nil error ends the game;
// ebiten.Termination ends it cleanly.
func WithFrameFunc(fn func() error) GameOption {
	return func(g *Game) {
		g.frame = fn
	}
}

// WithStatus sets the text drawn in the window's top left corner.
func WithStatus(fn func() string) GameOption {
	return func(g *Game) {
		g.status = fn
	}
}

// NewGame creates a game that calls emit for every event, on the
// Ebitengine update goroutine.
func NewGame(emit func(input.PlayerEvent), opts ...GameOption) *Game {
	g := &Game{
		tracker: NewTracker(),
		emit:    emit,
		poll:    Poll,
		width:   DefaultWidth,
		height:  DefaultHeight,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run opens the window and blocks until it is closed. Must be called from
// the main goroutine.
func (g *Game) Run(title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	for _, ev := range g.tracker.Update(g.poll()) {
		if g.emit != nil {
			g.emit(ev)
		}
	}
	if g.frame != nil {
		return g.frame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.status != nil {
		ebitenutil.DebugPrint(screen, g.status())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
