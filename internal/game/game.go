// Package game is the loop that drives one journey: it clamps frame
// deltas, runs the countdown, moves the player and the pursuer, fires
// trigger zones and keeps the camera on the player. Commands from the UI
// are applied between steps on the same goroutine.
package game

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/homeward/internal/camera"
	"github.com/vovakirdan/homeward/internal/config"
	"github.com/vovakirdan/homeward/internal/content"
	"github.com/vovakirdan/homeward/internal/core"
	"github.com/vovakirdan/homeward/internal/entity"
	"github.com/vovakirdan/homeward/internal/progress"
	"github.com/vovakirdan/homeward/internal/render"
	"github.com/vovakirdan/homeward/internal/world"
)

// Default viewport in terminal cells.
const (
	DefaultViewCols = 80
	DefaultViewRows = 20
)

// ErrNoCatalog is returned by CallMom when the game has no content catalog.
var ErrNoCatalog = errors.New("game: no content catalog")

// Game owns the simulation state of one journey.
type Game struct {
	world   *world.World
	tuning  config.Tuning
	pending *config.Tuning
	device  config.Device
	catalog *content.Catalog
	logger  *log.Logger

	state     *progress.State
	observers []progress.Observer
	player    *entity.Player
	pursuer   *entity.Pursuer
	clock     clock
	callRNG   *world.LCG

	proj               camera.Projection
	cam                camera.Camera
	viewCols, viewRows int

	ready     bool
	gestured  bool
	wall      float64
	lastFrame time.Time
}

// New creates a game on w. The simulation waits for SetReady before it
// advances.
func New(w *world.World, t config.Tuning, opts ...Option) *Game {
	g := &Game{
		world:    w,
		tuning:   t,
		device:   t.Input.Device,
		viewCols: DefaultViewCols,
		viewRows: DefaultViewRows,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.state = progress.New(w.Steps(), t.Clock.Duration)
	g.state.Observe(logEvents(g.logger))
	g.spawn()
	return g
}

func (g *Game) spawn() {
	g.proj = camera.Projection{CellW: g.tuning.View.CellW, CellH: g.tuning.View.CellH}
	g.player = entity.NewPlayer(g.world.PlayerSpawn())
	g.pursuer = entity.NewPursuer(g.world.PursuerSpawn())
	g.callRNG = world.NewLCG(g.world.Seed())
	g.clock.reset()
	g.gestured = false
	g.lastFrame = time.Time{}
	g.follow()
}

// World returns the map the game runs on.
func (g *Game) World() *world.World { return g.world }

// Tuning returns the active tuning.
func (g *Game) Tuning() config.Tuning { return g.tuning }

// Projection returns the world-to-cell scale in use.
func (g *Game) Projection() camera.Projection { return g.proj }

// Ready reports whether assets are loaded and the simulation may run.
func (g *Game) Ready() bool { return g.ready }

// Gestured reports whether the player has engaged yet.
func (g *Game) Gestured() bool { return g.gestured }

// Progress returns a snapshot of the progression state.
func (g *Game) Progress() progress.Snapshot { return g.state.Snapshot() }

// Player returns a copy of the player.
func (g *Game) Player() entity.Player { return *g.player }

// Pursuer returns a copy of the pursuer.
func (g *Game) Pursuer() entity.Pursuer { return *g.pursuer }

// Elapsed returns the precise seconds on the clock. The progress
// snapshot only sees synced values.
func (g *Game) Elapsed() float64 { return g.clock.Seconds() }

// Device returns the input device the game was created for.
func (g *Game) Device() config.Device { return g.device }

// Catalog returns the content catalog, or nil.
func (g *Game) Catalog() *content.Catalog { return g.catalog }

// Observe registers a progression observer. Observers survive Reset.
func (g *Game) Observe(o progress.Observer) {
	g.observers = append(g.observers, o)
	g.state.Observe(o)
}

// SetReady opens the readiness gate. It is called once the glyph sheet
// has loaded.
func (g *Game) SetReady() { g.ready = true }

// NoteGesture records user engagement that is not a held direction: any
// key press or click.
func (g *Game) NoteGesture() { g.gestured = true }

// SetViewport resizes the map viewport in cells.
func (g *Game) SetViewport(cols, rows int) {
	g.viewCols, g.viewRows = max(cols, 0), max(rows, 0)
	g.follow()
}

// SetTuning stages t. It takes effect on the next Reset. The input device
// chosen at creation is kept.
func (g *Game) SetTuning(t config.Tuning) {
	g.pending = &t
}

// Frame advances the game to now. The first frame after a reset uses the
// configured first delta.
func (g *Game) Frame(now time.Time, in core.Intents) {
	dt := g.tuning.Clock.FirstDt
	if !g.lastFrame.IsZero() {
		dt = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now
	g.Step(dt, in)
}

// Step advances the simulation by dt seconds with the given held intents.
func (g *Game) Step(dt float64, in core.Intents) {
	dt = core.ClampF(dt, 0, g.tuning.Clock.MaxDt)
	g.wall += dt

	if !g.ready {
		return
	}
	if in.Any() {
		g.gestured = true
	}

	// both checks see the state as it was at the start of the step
	paused := g.state.Paused()
	completed := g.state.Completed()

	if !paused && !completed && g.gestured {
		g.tickClock(dt)
	}

	if !paused && !g.state.GameOver() {
		g.movePlayer(dt, in)
		g.checkTriggers()
		if g.gestured && !g.state.Completed() {
			g.movePursuer(dt)
		}
	}

	g.follow()
}

func (g *Game) tickClock(dt float64) {
	c := g.tuning.Clock
	synced, expired := g.clock.advance(dt, c.Duration, c.SyncInterval)
	if synced {
		g.state.SyncElapsed(g.clock.Seconds())
	}
	if expired {
		g.state.SyncElapsed(c.Duration)
		g.state.EndGame(progress.ReasonTimeout)
	}
}

func (g *Game) movePlayer(dt float64, in core.Intents) {
	step := g.state.Step()
	solid := func(x, y float64) bool {
		return g.world.IsSolid(x, y, step)
	}
	g.player.Update(entity.DirectionFromIntents(in), dt, solid, entity.PlayerParams{
		Speed:   g.tuning.Player.Speed,
		Radius:  g.tuning.Player.Radius,
		AnimFPS: g.tuning.Player.AnimFPS,
		WorldW:  g.world.Width(),
		WorldH:  g.world.Height(),
	})
}

// checkTriggers fires the first current-step zone the player stands in.
// Leaving every zone re-arms the last one.
func (g *Game) checkTriggers() {
	box := g.player.Box(g.tuning.Player.Radius)
	for z := range g.world.TriggersAt(g.state.Step()) {
		if !box.Touches(z.Rect) {
			continue
		}
		if !g.state.IsDiscovered(z.ID) && g.state.LastTrigger() != z.ID {
			g.state.Discover(z, g.world.IsFinal(z))
		}
		return
	}
	g.state.ClearLastTrigger()
}

func (g *Game) movePursuer(dt float64) {
	p := g.tuning.Pursuer
	dist := g.pursuer.Update(g.player.Pos, dt, g.tuning.PursuerSpeed(g.device), p.MinMoveDistance,
		g.world.Width(), g.world.Height())
	if dist < p.CatchDistance {
		g.state.EndGame(progress.ReasonCaught)
	}
}

func (g *Game) follow() {
	viewW, viewH := g.proj.ViewSize(g.viewCols, g.viewRows)
	g.cam = camera.Follow(g.player.Pos, viewW, viewH, g.world.Width(), g.world.Height()).Snap(g.proj)
}

// View returns the data the renderer needs for the current frame.
func (g *Game) View() render.FrameView {
	return render.FrameView{
		World:    g.world,
		Progress: g.state.Snapshot(),
		Player:   *g.player,
		Pursuer:  *g.pursuer,
		Camera:   g.cam,
		Time:     g.wall,
		Ready:    g.ready,
	}
}

// OpenModal opens a dialog. It fails once the game is over.
func (g *Game) OpenModal(m progress.Modal) error {
	return g.state.OpenModal(m)
}

// CloseModal closes the open dialog, if any.
func (g *Game) CloseModal() {
	g.state.CloseModal()
}

// ToggleInventory shows or hides the inventory panel.
func (g *Game) ToggleInventory() {
	g.state.ToggleInventory()
}

// CallMom opens the phone dialog with the next seeded line.
func (g *Game) CallMom() error {
	if g.catalog == nil {
		return ErrNoCatalog
	}
	line := g.catalog.NPCLine(g.callRNG.Intn(len(g.catalog.NPC.Lines)))
	return g.state.OpenModal(progress.NpcDialogModal{Line: line})
}

// Reset starts the journey over, applying any staged tuning.
func (g *Game) Reset() {
	if g.pending != nil {
		g.tuning = *g.pending
		g.pending = nil
		g.logger.Info("tuning applied")
	}
	g.state = g.resetState()
	g.spawn()
}

func (g *Game) resetState() *progress.State {
	if g.state.Duration() == g.tuning.Clock.Duration && g.state.TotalSteps() == g.world.Steps() {
		g.state.Reset()
		return g.state
	}
	// a new duration needs a fresh state; observers move over
	s := progress.New(g.world.Steps(), g.tuning.Clock.Duration)
	s.Observe(logEvents(g.logger))
	for _, o := range g.observers {
		s.Observe(o)
	}
	s.Reset()
	return s
}
