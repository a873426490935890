//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/Leden/go-life/internal/render"
	"github.com/Leden/go-life/internal/ui"
	"github.com/Leden/go-life/pkg/life"
	"github.com/Leden/go-life/pkg/rng"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// App adapts a life.Game to the ebiten.Game interface.
type App struct {
	cfg     *Config
	factory life.Factory
	game    *life.Game
	painter *render.GridPainter
	overlay *ui.Overlay
	frame   *render.Frame
	pace    *Pacer
	rate    int

	onColor  color.Color
	offColor color.Color
}

// New constructs an App running worlds built by the provided factory.
func New(factory life.Factory, cfg *Config) *App {
	a := &App{
		cfg:      cfg,
		factory:  factory,
		painter:  render.NewGridPainter(cfg.Width, cfg.Height),
		overlay:  ui.NewOverlay(cfg.Width, cfg.Height, cfg.Scale),
		frame:    render.NewFrame(cfg.Width, cfg.Height),
		pace:     NewPacer(cfg.GPS),
		rate:     cfg.GPS,
		onColor:  color.White,
		offColor: color.Black,
	}
	a.reseed(cfg.Seed)
	return a
}

// reseed replaces the board with a fresh scatter. The new game starts paused
// so the result can be inspected or edited before it runs.
func (a *App) reseed(seed int64) {
	w := a.factory(a.cfg.Width, a.cfg.Height)
	life.Scatter(w, rng.New(seed).Source(), a.cfg.Density)
	a.game = life.NewGame(w)
}

// clear replaces the board with an all-dead grid.
func (a *App) clear() {
	a.game = life.NewGame(a.factory(a.cfg.Width, a.cfg.Height))
}

// Update handles per-frame input and advances the game at the paced rate.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.game.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.game.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.reseed(a.cfg.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		a.setRate(a.rate / 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		a.setRate(a.rate * 2)
	}

	a.overlay.Update()
	a.handleCursor()

	// Resetting the pacer on every paused frame keeps pause time from
	// accumulating, so unpausing runs one fresh generation instead of a
	// burst of stale ones.
	if a.game.Paused() {
		a.pace.Reset()
	} else if a.pace.ShouldStep() {
		a.game.Tick()
	}
	return nil
}

func (a *App) setRate(gps int) {
	if gps < 1 {
		gps = 1
	}
	// One generation per frame is the ceiling the update loop can honor.
	if gps > a.cfg.TPS {
		gps = a.cfg.TPS
	}
	a.rate = gps
	a.pace.SetRate(gps)
}

func (a *App) handleCursor() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	cx, cy := ebiten.CursorPosition()
	size := a.game.World().Size()
	if cx < 0 || cy < 0 || cx >= size.W*a.cfg.Scale || cy >= size.H*a.cfg.Scale {
		return
	}
	a.game.Toggle(life.Cell{X: cx / a.cfg.Scale, Y: cy / a.cfg.Scale})
}

// Draw renders the current board state.
func (a *App) Draw(screen *ebiten.Image) {
	w := a.game.World()
	a.frame.Clear()
	cells := a.frame.Cells()
	for _, c := range w.AliveCells() {
		cells[a.frame.Index(c.X, c.Y)] = 1
	}
	a.painter.Blit(screen, cells, a.onColor, a.offColor, a.cfg.Scale)

	a.overlay.Draw(screen, w, ui.Status{
		Engine:     w.Name(),
		Generation: a.game.Generation(),
		Population: w.Population(),
		Rate:       a.rate,
		Paused:     a.game.Paused(),
	})
}

// Layout returns the logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := a.game.World().Size()
	return s.W * a.cfg.Scale, s.H * a.cfg.Scale
}
