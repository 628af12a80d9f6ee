// Package world provides generic 2D grid primitives for dungeon carving:
// points, directions, cell types and the sparse grid they are written into.
package world

// CellType is the carved type of a grid cell.
// A point that was never written is undug, which is not the same as Wall.
type CellType int

// Cell type constants
const (
	Empty CellType = iota // walkable floor
	Wall
	Door
)

// Symbols used when a grid is written out as text
const (
	SymbolEmpty   = '.'
	SymbolWall    = '#'
	SymbolDoor    = '+'
	SymbolUndug   = ' '
	SymbolUnknown = '?'
)

// String returns the string representation of a cell type
func (t CellType) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Door:
		return "Door"
	default:
		return "Unknown"
	}
}

// Symbol returns the single-character symbol for a cell type
func (t CellType) Symbol() rune {
	switch t {
	case Empty:
		return SymbolEmpty
	case Wall:
		return SymbolWall
	case Door:
		return SymbolDoor
	default:
		return SymbolUnknown
	}
}

// IsValid returns true for the three known cell types
func (t CellType) IsValid() bool {
	return t >= Empty && t <= Door
}

// IsWalkable returns true for floor and doors
func (t CellType) IsWalkable() bool {
	return t == Empty || t == Door
}
