package feature

import (
	"dungeondigger/pkg/engine/rng"
	"dungeondigger/pkg/engine/world"
)

// Corridor is a straight, axis-aligned run of floor from start to end inclusive
type Corridor struct {
	start world.Point
	end   world.Point

	// endsWithWall is set by Rectify: the cell straight past the end is a wall
	endsWithWall bool
}

// NewCorridor creates a corridor between two points on the same row or column
func NewCorridor(start, end world.Point) *Corridor {
	return &Corridor{start: start, end: end}
}

// CreateRandomCorridorAt creates a corridor starting at start and running
// a random length in the given direction. Horizontal wins if both axes are set.
func CreateRandomCorridorAt(start world.Point, dx world.DirectionX, dy world.DirectionY, opts CorridorOptions, src rng.Source) (*Corridor, error) {
	if dx == world.XNone && dy == world.YNone {
		return nil, ErrNoDirection
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if dx != world.XNone {
		dy = world.YNone
	}

	length := src.UniformInt(opts.MinLength, opts.MaxLength)
	step := world.Axes{X: dx, Y: dy}.Step()

	return &Corridor{
		start: start,
		end:   start.Add(step.Scale(length)),
	}, nil
}

// Start returns the first tile
func (c *Corridor) Start() world.Point {
	return c.start
}

// End returns the last tile. Rectify may pull it back toward Start.
func (c *Corridor) End() world.Point {
	return c.end
}

// EndsWithWall reports whether the corridor runs into a wall. Only meaningful after Rectify.
func (c *Corridor) EndsWithWall() bool {
	return c.endsWithWall
}

// Direction returns the unit step from start toward end
func (c *Corridor) Direction() world.Point {
	return c.end.Sub(c.start).Sign()
}

// Length returns the number of tiles between start and end inclusive
func (c *Corridor) Length() int {
	dist := c.end.Sub(c.start)
	return 1 + max(world.Abs(dist.X), world.Abs(dist.Y))
}

// Rectify walks the corridor from start and truncates it at the first tile
// that is not diggable or is not flanked by walls on both sides.
// It rejects an empty result, a single tile facing a wall, and an end that
// faces a wall with open floor on both diagonals.
func (c *Corridor) Rectify(in Inspector) bool {
	dir := c.Direction()
	n := dir.Perpendicular()
	length := c.Length()

	for i := 0; i < length; i++ {
		p := c.start.Add(dir.Scale(i))
		if !in.CanDig(p) || !in.IsWall(p.Add(n)) || !in.IsWall(p.Sub(n)) {
			length = i
			c.end = p.Sub(dir)
			break
		}
	}

	if length == 0 {
		return false
	}

	ahead := c.end.Add(dir)
	if length == 1 && in.IsWall(ahead) {
		return false
	}

	badCorner := !in.IsWall(ahead.Add(n)) && !in.IsWall(ahead.Sub(n))
	c.endsWithWall = in.IsWall(ahead)

	return !(badCorner && c.endsWithWall)
}

// Create digs floor along the corridor. It never writes walls.
func (c *Corridor) Create(d Digger) {
	for _, p := range c.Cells() {
		d.Dig(p, world.Empty)
	}
}

// Cells returns the tiles from start to end
func (c *Corridor) Cells() []world.Point {
	dir := c.Direction()
	length := c.Length()
	cells := make([]world.Point, 0, length)
	for i := 0; i < length; i++ {
		cells = append(cells, c.start.Add(dir.Scale(i)))
	}
	return cells
}

// CreatePriorityWalls marks the cells around an open end as walls-to-be:
// straight ahead and both sides of the last tile. Nothing is marked if the
// corridor already ends in a wall.
func (c *Corridor) CreatePriorityWalls(mark func(world.Point)) {
	if c.endsWithWall {
		return
	}

	dir := c.Direction()
	n := dir.Perpendicular()

	mark(c.end.Add(dir))
	mark(c.end.Add(n))
	mark(c.end.Sub(n))
}
