package generator

import (
	"github.com/zyedidia/generic/mapset"

	"dungeondigger/pkg/engine/world"
)

// Reachable returns every walkable cell reachable from start through
// orthogonal steps over floor and doors. It is empty if start is not walkable.
func Reachable(g *world.Grid, start world.Point) mapset.Set[world.Point] {
	visited := mapset.New[world.Point]()
	if !g.IsWalkable(start) {
		return visited
	}

	queue := []world.Point{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, dir := range world.AllDirections() {
			n := g.Neighbor(current, dir)
			if g.IsWalkable(n) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// Regions returns the number of separate walkable areas in the grid
func Regions(g *world.Grid) int {
	seen := mapset.New[world.Point]()
	regions := 0
	g.ForEachCell(func(p world.Point, t world.CellType) {
		if !t.IsWalkable() || seen.Has(p) {
			return
		}
		regions++
		Reachable(g, p).Each(func(q world.Point) {
			seen.Put(q)
		})
	})
	return regions
}

// Connected returns true if every walkable cell can reach every other one
func (d *Dungeon) Connected() bool {
	return Regions(d.Grid) <= 1
}
