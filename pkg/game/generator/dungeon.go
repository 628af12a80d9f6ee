package generator

import (
	"dungeondigger/pkg/engine/world"
	"dungeondigger/pkg/game/feature"
)

// Dungeon is the result of a generator run
type Dungeon struct {
	Grid      *world.Grid
	Rooms     []*feature.Room
	Corridors []*feature.Corridor

	Seed      int64
	Generator string
	// Attempts is the number of walls (digger) or connections (BSP) tried
	Attempts int
}

// DugRatio returns the carved fraction of the playable area
func (d *Dungeon) DugRatio() float64 {
	area := (d.Grid.Width() - 2) * (d.Grid.Height() - 2)
	if area <= 0 {
		return 0
	}
	return float64(d.Grid.Count(world.Empty)+d.Grid.Count(world.Door)) / float64(area)
}

// Doors returns the doors of every room, in room order
func (d *Dungeon) Doors() []world.Point {
	var doors []world.Point
	for _, r := range d.Rooms {
		doors = append(doors, r.Doors()...)
	}
	return doors
}

// EventKind says what an Event reports
type EventKind string

const (
	EventRoom     EventKind = "room"
	EventCorridor EventKind = "corridor"
	EventDoors    EventKind = "doors"
)

// Event reports one committed step of a generator run
type Event struct {
	Kind    EventKind
	Step    int
	Feature feature.Feature
	// Cells written by this step
	Cells []world.Point
}

// finalizeDoors turns every opening in a room border into a door
func finalizeDoors(grid *world.Grid, rooms []*feature.Room) []world.Point {
	var doors []world.Point
	for _, r := range rooms {
		r.ClearDoors()
		r.AddDoors(grid.IsWall)
		for _, p := range r.Doors() {
			grid.Dig(p, world.Door)
			doors = append(doors, p)
		}
	}
	return doors
}
