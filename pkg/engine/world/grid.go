package world

import (
	"github.com/zyedidia/generic/avl"
)

// Grid is a sparse map from Point to CellType with fixed bounds.
// Cells are kept in row-major order so iteration is deterministic.
type Grid struct {
	cells  *avl.Tree[Point, CellType]
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions and no cells set
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	return &Grid{
		cells:  avl.New[Point, CellType](Less),
		width:  width,
		height: height,
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if a point is within grid bounds
func (g *Grid) IsValidPosition(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsPlayablePosition checks if a point is within the playable area (not on the perimeter)
func (g *Grid) IsPlayablePosition(p Point) bool {
	return p.X >= 1 && p.X < g.width-1 && p.Y >= 1 && p.Y < g.height-1
}

// IsOnPerimeter checks if a point is on the edge of the grid
func (g *Grid) IsOnPerimeter(p Point) bool {
	return g.IsValidPosition(p) && !g.IsPlayablePosition(p)
}

// Cell returns the cell type at p. The second result is false if p is undug.
func (g *Grid) Cell(p Point) (CellType, bool) {
	return g.cells.Get(p)
}

// IsWall returns true if the grid holds a Wall at p
func (g *Grid) IsWall(p Point) bool {
	t, ok := g.cells.Get(p)
	return ok && t == Wall
}

// IsEmpty returns true if the grid holds floor at p
func (g *Grid) IsEmpty(p Point) bool {
	t, ok := g.cells.Get(p)
	return ok && t == Empty
}

// IsWalkable returns true if the grid holds floor or a door at p
func (g *Grid) IsWalkable(p Point) bool {
	t, ok := g.cells.Get(p)
	return ok && t.IsWalkable()
}

// IsUndug returns true if nothing has been written at p
func (g *Grid) IsUndug(p Point) bool {
	_, ok := g.cells.Get(p)
	return !ok
}

// CanDig returns true if p is in bounds and either undug or a Wall.
// Floor and doors are never dug over.
func (g *Grid) CanDig(p Point) bool {
	if !g.IsValidPosition(p) {
		return false
	}
	t, ok := g.cells.Get(p)
	return !ok || t == Wall
}

// Dig writes t at p. The last write wins. Points outside the bounds are
// stored as well; bounds only restrict CanDig.
func (g *Grid) Dig(p Point, t CellType) {
	g.cells.Put(p, t)
}

// Clear returns p to the undug state
func (g *Grid) Clear(p Point) {
	g.cells.Remove(p)
}

// Fill writes t to every in-bounds cell
func (g *Grid) Fill(t CellType) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells.Put(Point{X: x, Y: y}, t)
		}
	}
}

// Size returns the number of cells that have been written
func (g *Grid) Size() int {
	return g.cells.Size()
}

// Count returns the number of written cells holding t
func (g *Grid) Count(t CellType) int {
	n := 0
	g.cells.Each(func(_ Point, ct CellType) {
		if ct == t {
			n++
		}
	})
	return n
}

// ForEachCell calls fn for every written cell in row-major order
func (g *Grid) ForEachCell(fn func(p Point, t CellType)) {
	g.cells.Each(fn)
}

// CenterPosition returns the point at the center of the grid
func (g *Grid) CenterPosition() Point {
	return Point{X: g.width / 2, Y: g.height / 2}
}

// Neighbor returns the point adjacent to p in the given direction
func (g *Grid) Neighbor(p Point, dir Direction) Point {
	return p.Add(dir.Step())
}
