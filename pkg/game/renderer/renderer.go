package renderer

import (
	"dungeondigger/pkg/engine/world"
	"dungeondigger/pkg/game/generator"
	"dungeondigger/pkg/game/text"
)

// CellStyle returns the style used to draw a cell. ok is false for undug cells.
func CellStyle(t world.CellType, ok bool) TextStyle {
	if !ok {
		return StyleUndug
	}
	switch t {
	case world.Wall:
		return StyleWall
	case world.Door:
		return StyleDoor
	case world.Empty:
		return StyleFloor
	default:
		return StyleNormal
	}
}

// CellSymbol returns the map character for a cell. ok is false for undug cells.
func CellSymbol(t world.CellType, ok bool) rune {
	if !ok {
		return world.SymbolUndug
	}
	return t.Symbol()
}

// LegendEntry pairs a map symbol with its translated meaning
type LegendEntry struct {
	Symbol rune
	Style  TextStyle
	Label  string
}

// Legend returns the entries every renderer shows next to the map
func Legend() []LegendEntry {
	return []LegendEntry{
		{world.SymbolWall, StyleWall, text.Get(text.LegendWall)},
		{world.SymbolEmpty, StyleFloor, text.Get(text.LegendFloor)},
		{world.SymbolDoor, StyleDoor, text.Get(text.LegendDoor)},
	}
}

// StatsLine summarises a dungeon in one translated line
func StatsLine(d *generator.Dungeon) string {
	return text.Get(text.StatsLine,
		d.Generator,
		d.Seed,
		len(d.Rooms),
		len(d.Corridors),
		len(d.Doors()),
		d.DugRatio()*100,
	)
}
