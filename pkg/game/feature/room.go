package feature

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"dungeondigger/pkg/engine/rng"
	"dungeondigger/pkg/engine/world"
)

// Room is an axis-aligned rectangle of floor. The stored rectangle is the
// interior; Create surrounds it with a one-cell wall border. Doors are cells
// on that border carved as Door instead of Wall.
type Room struct {
	topLeft     world.Point
	bottomRight world.Point

	// doors keeps insertion order, doorSet answers membership
	doors   []world.Point
	doorSet mapset.Set[world.Point]
}

// NewRoom creates a room from two opposite interior corners
func NewRoom(topLeft, bottomRight world.Point) *Room {
	if topLeft.X > bottomRight.X {
		topLeft.X, bottomRight.X = bottomRight.X, topLeft.X
	}
	if topLeft.Y > bottomRight.Y {
		topLeft.Y, bottomRight.Y = bottomRight.Y, topLeft.Y
	}
	return &Room{
		topLeft:     topLeft,
		bottomRight: bottomRight,
		doorSet:     mapset.New[world.Point](),
	}
}

// CreateRandomRoomAt creates a room that grows away from door in the given
// direction, with door on its border. A random scale shifts the room along
// the other axis. Horizontal anchoring wins if both axes are set.
func CreateRandomRoomAt(door world.Point, dx world.DirectionX, dy world.DirectionY, opts RoomOptions, src rng.Source) (*Room, error) {
	if dx == world.XNone && dy == world.YNone {
		return nil, ErrNoDirection
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	height := src.UniformInt(opts.MinHeight, opts.MaxHeight)
	width := src.UniformInt(opts.MinWidth, opts.MaxWidth)
	scale := src.UniformFloat()
	x2 := door.X - scaled(width, scale)
	y2 := door.Y - scaled(height, scale)

	var r *Room
	switch {
	case dx == world.Right:
		r = NewRoom(world.Pt(door.X+1, y2), world.Pt(door.X+width, y2+height-1))
	case dx == world.Left:
		r = NewRoom(world.Pt(door.X-width, y2), world.Pt(door.X-1, y2+height-1))
	case dy == world.Down:
		r = NewRoom(world.Pt(x2, door.Y+1), world.Pt(x2+width-1, door.Y+height))
	default:
		r = NewRoom(world.Pt(x2, door.Y-height), world.Pt(x2+width-1, door.Y-1))
	}

	r.AddDoor(door)
	return r, nil
}

// CreateRandomRoomCenter creates a room with a random offset so that center
// lies inside its interior
func CreateRandomRoomCenter(center world.Point, opts RoomOptions, src rng.Source) (*Room, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	width := src.UniformInt(opts.MinWidth, opts.MaxWidth)
	height := src.UniformInt(opts.MinHeight, opts.MaxHeight)

	start := world.Pt(
		center.X-scaled(width, src.UniformFloat()),
		center.Y-scaled(height, src.UniformFloat()),
	)
	end := world.Pt(start.X+width-1, start.Y+height-1)

	return NewRoom(start, end), nil
}

// CreateRandomRoom places a room at a uniformly random position inside an
// area of availWidth x availHeight cells, border included
func CreateRandomRoom(availHeight, availWidth int, opts RoomOptions, src rng.Source) (*Room, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	width := src.UniformInt(opts.MinWidth, opts.MaxWidth)
	height := src.UniformInt(opts.MinHeight, opts.MaxHeight)

	left := availWidth - width - 1
	top := availHeight - height - 1
	if left < 0 || top < 0 {
		return nil, fmt.Errorf("room %dx%d does not fit in %dx%d: %w", width, height, availWidth, availHeight, ErrInvalidRange)
	}

	start := world.Pt(
		1+scaled(left, src.UniformFloat()),
		1+scaled(top, src.UniformFloat()),
	)
	end := world.Pt(start.X+width-1, start.Y+height-1)

	return NewRoom(start, end), nil
}

func scaled(size int, scale float64) int {
	return int(math.Floor(float64(size) * scale))
}

// Rectify checks that every cell of the bordered footprint can be dug and
// that every border cell is already a wall. There is no partial acceptance.
func (r *Room) Rectify(in Inspector) bool {
	left, top, right, bottom := r.footprint()

	for x := left; x <= right; x++ {
		for y := top; y <= bottom; y++ {
			p := world.Pt(x, y)
			if r.IsBorder(p) && !in.IsWall(p) {
				return false
			}
			if !in.CanDig(p) {
				return false
			}
		}
	}

	return true
}

// Create carves the footprint: doors, then the wall border, then floor
func (r *Room) Create(d Digger) {
	left, top, right, bottom := r.footprint()

	for x := left; x <= right; x++ {
		for y := top; y <= bottom; y++ {
			p := world.Pt(x, y)
			switch {
			case r.HasDoor(p):
				d.Dig(p, world.Door)
			case r.IsBorder(p):
				d.Dig(p, world.Wall)
			default:
				d.Dig(p, world.Empty)
			}
		}
	}
}

// Cells returns the full footprint, border included, in row-major order
func (r *Room) Cells() []world.Point {
	left, top, right, bottom := r.footprint()
	cells := make([]world.Point, 0, (right-left+1)*(bottom-top+1))
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			cells = append(cells, world.Pt(x, y))
		}
	}
	return cells
}

// BorderCells returns the footprint's border in row-major order
func (r *Room) BorderCells() []world.Point {
	var cells []world.Point
	for _, p := range r.Cells() {
		if r.IsBorder(p) {
			cells = append(cells, p)
		}
	}
	return cells
}

func (r *Room) footprint() (left, top, right, bottom int) {
	return r.topLeft.X - 1, r.topLeft.Y - 1, r.bottomRight.X + 1, r.bottomRight.Y + 1
}

// IsBorder returns true if p lies on the wall ring around the interior
func (r *Room) IsBorder(p world.Point) bool {
	left, top, right, bottom := r.footprint()
	if p.X < left || p.X > right || p.Y < top || p.Y > bottom {
		return false
	}
	return p.X == left || p.X == right || p.Y == top || p.Y == bottom
}

// Contains returns true if p is inside the interior
func (r *Room) Contains(p world.Point) bool {
	return p.X >= r.topLeft.X && p.X <= r.bottomRight.X && p.Y >= r.topLeft.Y && p.Y <= r.bottomRight.Y
}

// Intersects returns true if the two interiors share a cell
func (r *Room) Intersects(other *Room) bool {
	return r.topLeft.X <= other.bottomRight.X &&
		r.bottomRight.X >= other.topLeft.X &&
		r.topLeft.Y <= other.bottomRight.Y &&
		r.bottomRight.Y >= other.topLeft.Y
}

// AddDoor registers a door. Adding the same point twice has no effect.
func (r *Room) AddDoor(p world.Point) {
	if r.doorSet.Has(p) {
		return
	}
	r.doorSet.Put(p)
	r.doors = append(r.doors, p)
}

// AddDoors registers every border cell that is not currently a wall.
// Openings already cut into the border become doors.
func (r *Room) AddDoors(isWall func(world.Point) bool) {
	for _, p := range r.BorderCells() {
		if isWall(p) {
			continue
		}
		r.AddDoor(p)
	}
}

// ClearDoors removes every door
func (r *Room) ClearDoors() {
	r.doors = nil
	r.doorSet = mapset.New[world.Point]()
}

// Doors returns the doors in the order they were added
func (r *Room) Doors() []world.Point {
	doors := make([]world.Point, len(r.doors))
	copy(doors, r.doors)
	return doors
}

// HasDoor returns true if p is a registered door
func (r *Room) HasDoor(p world.Point) bool {
	return r.doorSet.Has(p)
}

// Center returns the midpoint of the interior
func (r *Room) Center() world.Point {
	return world.Pt((r.topLeft.X+r.bottomRight.X)/2, (r.topLeft.Y+r.bottomRight.Y)/2)
}

func (r *Room) Left() int   { return r.topLeft.X }
func (r *Room) Right() int  { return r.bottomRight.X }
func (r *Room) Top() int    { return r.topLeft.Y }
func (r *Room) Bottom() int { return r.bottomRight.Y }

// Width returns the interior width
func (r *Room) Width() int {
	return r.bottomRight.X - r.topLeft.X + 1
}

// Height returns the interior height
func (r *Room) Height() int {
	return r.bottomRight.Y - r.topLeft.Y + 1
}

func (r *Room) TopLeft() world.Point     { return r.topLeft }
func (r *Room) BottomRight() world.Point { return r.bottomRight }

func (r *Room) String() string {
	return fmt.Sprintf("room %v-%v", r.topLeft, r.bottomRight)
}
