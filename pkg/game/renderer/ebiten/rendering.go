package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungeondigger/pkg/engine/world"
	"dungeondigger/pkg/game/text"
)

// Draw renders the dungeon to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.mu.Lock()
	d, tileSize := e.dungeon, e.tileSize
	e.mu.Unlock()
	if d == nil {
		return
	}

	ts := float32(tileSize)
	d.Grid.ForEachCell(func(p world.Point, t world.CellType) {
		if !d.Grid.IsValidPosition(p) {
			return
		}
		c := cellColor(t, true)
		if c == nil {
			return
		}
		vector.DrawFilledRect(screen, float32(p.X)*ts, float32(p.Y)*ts, ts, ts, c, false)
	})

	mapHeight := d.Grid.Height() * tileSize
	ebitenutil.DebugPrintAt(screen, e.Status(), statusPadding, mapHeight+statusPadding)
	ebitenutil.DebugPrintAt(screen, text.Get(text.ViewerHelp), statusPadding, mapHeight+footerHeight/2)
}
