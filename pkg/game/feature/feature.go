// Package feature implements the dungeon features that are carved into a
// grid: straight corridors and walled rectangular rooms.
//
// Placing a feature is a two-step transaction. Rectify validates the
// candidate against the current grid using read-only queries and may shrink
// a corridor in place; Create writes the cells. Callers must run both steps
// for one feature before generating the next candidate, because two features
// validated against the same grid state can conflict on commit.
package feature

import (
	"dungeondigger/pkg/engine/world"
)

// Inspector answers the grid queries features validate against
type Inspector interface {
	IsWall(p world.Point) bool
	CanDig(p world.Point) bool
}

// Digger writes cells into the grid
type Digger interface {
	Dig(p world.Point, t world.CellType)
}

// Feature is a candidate piece of dungeon geometry
type Feature interface {
	// Rectify validates the feature against the grid. It returns false if the
	// feature cannot be placed.
	Rectify(in Inspector) bool
	// Create carves the feature. Only call it after Rectify returned true.
	Create(d Digger)
	// Cells returns every cell Create would write
	Cells() []world.Point
}

// InspectorFuncs adapts a pair of functions to an Inspector
type InspectorFuncs struct {
	IsWallFunc func(world.Point) bool
	CanDigFunc func(world.Point) bool
}

func (f InspectorFuncs) IsWall(p world.Point) bool {
	if f.IsWallFunc == nil {
		return false
	}
	return f.IsWallFunc(p)
}

func (f InspectorFuncs) CanDig(p world.Point) bool {
	if f.CanDigFunc == nil {
		return false
	}
	return f.CanDigFunc(p)
}

// DiggerFunc adapts a function to a Digger
type DiggerFunc func(p world.Point, t world.CellType)

func (f DiggerFunc) Dig(p world.Point, t world.CellType) {
	f(p, t)
}

// Place runs Rectify and, if it passes, Create against the same grid.
// It returns whether the feature was committed.
func Place(f Feature, g interface {
	Inspector
	Digger
}) bool {
	if !f.Rectify(g) {
		return false
	}
	f.Create(g)
	return true
}
