package ebiten

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"dungeondigger/pkg/engine/world"
	"dungeondigger/pkg/game/generator"
	"dungeondigger/pkg/game/renderer"
	"dungeondigger/pkg/game/text"
)

// GenerateFunc builds a fresh dungeon for the viewer
type GenerateFunc func() (*generator.Dungeon, error)

// EbitenRenderer draws a dungeon as one filled square per cell.
// Keys go through the engine input bindings: R regenerates through the
// GenerateFunc, Esc closes the window.
type EbitenRenderer struct {
	mu       sync.Mutex
	dungeon  *generator.Dungeon
	status   string
	generate GenerateFunc
	log      log.FieldLogger

	tileSize int
}

// New creates a new Ebiten renderer. generate may be nil, which disables R.
func New(generate GenerateFunc, logger log.FieldLogger) *EbitenRenderer {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &EbitenRenderer{
		generate: generate,
		log:      logger,
		tileSize: defaultTileSize,
	}
}

// Init sets the window title
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowTitle(text.Get(text.WindowTitle))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear drops the current dungeon; the next frame is blank
func (e *EbitenRenderer) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dungeon = nil
	e.status = ""
}

// StyleText returns text unchanged; colors are applied when drawing
func (e *EbitenRenderer) StyleText(s string, style renderer.TextStyle) string {
	return s
}

// RenderDungeon opens the window on d and blocks until it is closed
func (e *EbitenRenderer) RenderDungeon(d *generator.Dungeon) error {
	e.SetDungeon(d)

	w, h := e.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	return e.Run()
}

// Run starts the Ebiten game loop. Returning ebiten.Termination from Update
// ends it without an error.
func (e *EbitenRenderer) Run() error {
	return ebiten.RunGame(e)
}

// SetDungeon replaces the dungeon being shown
func (e *EbitenRenderer) SetDungeon(d *generator.Dungeon) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dungeon = d
	e.status = renderer.StatsLine(d)
}

// Dungeon returns the dungeon being shown
func (e *EbitenRenderer) Dungeon() *generator.Dungeon {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dungeon
}

// Status returns the text drawn under the map
func (e *EbitenRenderer) Status() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Regenerate replaces the dungeon with a fresh one. On failure the old
// dungeon stays and the error is shown in the status line.
func (e *EbitenRenderer) Regenerate() {
	if e.generate == nil {
		return
	}

	d, err := e.generate()
	if err != nil {
		e.log.WithError(err).Warn("regeneration failed")
		e.mu.Lock()
		e.status = text.Get(text.GenerationFailed, err.Error())
		e.mu.Unlock()
		return
	}

	e.log.WithField("seed", d.Seed).Debug("dungeon regenerated")
	e.SetDungeon(d)
}

// Layout returns the logical screen size: one tile per cell plus the footer
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.mu.Lock()
	d, ts := e.dungeon, e.tileSize
	e.mu.Unlock()

	if d == nil {
		def := generator.DefaultConfig()
		return def.Width * ts, def.Height*ts + footerHeight
	}
	return d.Grid.Width() * ts, d.Grid.Height()*ts + footerHeight
}

// cellColor returns the fill color for a cell; nil means leave the background
func cellColor(t world.CellType, ok bool) color.Color {
	switch renderer.CellStyle(t, ok) {
	case renderer.StyleUndug:
		return nil
	case renderer.StyleWall:
		return colorWall
	case renderer.StyleFloor:
		return colorFloor
	case renderer.StyleDoor:
		return colorDoor
	default:
		return colorUnknown
	}
}
