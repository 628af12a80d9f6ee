package generator

import (
	"errors"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"dungeondigger/pkg/engine/rng"
	"dungeondigger/pkg/engine/world"
	"dungeondigger/pkg/game/feature"
)

// ErrGenerationFailed is returned when not even the first room fits
var ErrGenerationFailed = errors.New("dungeon generation failed")

// Wall candidate priorities
const (
	wallNormal   = 1
	wallPriority = 2
)

// DiggerGenerator grows a dungeon outward from a central room. Each step picks
// a wall next to carved floor and tries to attach a random room or corridor
// to it, keeping only candidates that pass validation.
type DiggerGenerator struct{}

// Name returns the name of this generator
func (g *DiggerGenerator) Name() string {
	return "digger"
}

// digger holds the state of one run
type digger struct {
	cfg  Config
	src  *rng.Rand
	grid *world.Grid
	log  log.FieldLogger

	// inspect keeps features off the outer ring
	inspect feature.InspectorFuncs

	walls     map[world.Point]int
	rooms     []*feature.Room
	corridors []*feature.Corridor
	dug       int
	step      int
}

// Generate creates a new dungeon
func (g *DiggerGenerator) Generate(cfg Config) (*Dungeon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src := rng.New(cfg.Seed)
	d := &digger{
		cfg:   cfg,
		src:   src,
		grid:  world.NewGrid(cfg.Width, cfg.Height),
		walls: make(map[world.Point]int),
		log: cfg.logger().WithFields(log.Fields{
			"generator": g.Name(),
			"seed":      src.Seed(),
		}),
	}
	d.inspect = playableInspector(d.grid)

	attempts, err := d.run()
	if err != nil {
		return nil, err
	}

	return &Dungeon{
		Grid:      d.grid,
		Rooms:     d.rooms,
		Corridors: d.corridors,
		Seed:      src.Seed(),
		Generator: g.Name(),
		Attempts:  attempts,
	}, nil
}

// playableInspector validates against g but never lets a feature dig the
// outer ring
func playableInspector(g *world.Grid) feature.InspectorFuncs {
	return feature.InspectorFuncs{
		IsWallFunc: g.IsWall,
		CanDigFunc: func(p world.Point) bool {
			return g.IsPlayablePosition(p) && g.CanDig(p)
		},
	}
}

func (d *digger) run() (int, error) {
	d.grid.Fill(world.Wall)

	if err := d.firstRoom(); err != nil {
		return 0, err
	}

	area := float64((d.cfg.Width - 2) * (d.cfg.Height - 2))
	started := time.Now()
	attempts := 0

	for {
		if attempts >= d.cfg.MaxAttempts {
			d.log.WithField("attempts", attempts).Debug("attempt budget exhausted")
			break
		}
		if d.cfg.TimeLimit > 0 && time.Since(started) > d.cfg.TimeLimit {
			d.log.WithField("attempts", attempts).Debug("time limit reached")
			break
		}

		wall, ok := d.findWall()
		if !ok {
			d.log.Debug("no wall candidates left")
			break
		}
		attempts++

		dir, ok := d.diggingDirection(wall)
		if !ok {
			continue
		}

		for i := 0; i < d.cfg.FeatureAttempts; i++ {
			if d.tryFeature(wall, dir) {
				d.removeSurroundingWalls(wall)
				d.removeSurroundingWalls(wall.Sub(dir.Step()))
				break
			}
		}

		if float64(d.dug)/area >= d.cfg.DugPercentage && d.priorityWalls() == 0 {
			break
		}
	}

	doors := finalizeDoors(d.grid, d.rooms)
	d.step++
	d.cfg.emit(Event{Kind: EventDoors, Step: d.step, Cells: doors})

	d.log.WithFields(log.Fields{
		"attempts":  attempts,
		"rooms":     len(d.rooms),
		"corridors": len(d.corridors),
		"doors":     len(doors),
		"dug":       fmt.Sprintf("%.2f", float64(d.dug)/area),
	}).Info("dungeon generated")

	return attempts, nil
}

// firstRoom places a room around the grid center
func (d *digger) firstRoom() error {
	center := d.grid.CenterPosition()
	for i := 0; i < d.cfg.FeatureAttempts; i++ {
		room, err := feature.CreateRandomRoomCenter(center, d.cfg.Room, d.src)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
		}
		if !room.Rectify(d.inspect) {
			continue
		}
		d.commit(room, EventRoom)
		d.rooms = append(d.rooms, room)
		return nil
	}
	return fmt.Errorf("%w: first room does not fit in %dx%d", ErrGenerationFailed, d.cfg.Width, d.cfg.Height)
}

// tryFeature builds one random candidate anchored at wall and commits it if valid
func (d *digger) tryFeature(wall world.Point, dir world.Direction) bool {
	axes := dir.Axes()
	weights := []int{d.cfg.RoomWeight, d.cfg.CorridorWeight}

	switch rng.Weighted(d.src, weights) {
	case 0:
		room, err := feature.CreateRandomRoomAt(wall, axes.X, axes.Y, d.cfg.Room, d.src)
		if err != nil {
			d.log.WithError(err).Warn("room construction failed")
			return false
		}
		if !room.Rectify(d.inspect) {
			d.log.WithField("room", room.String()).Trace("room rejected")
			return false
		}
		d.commit(room, EventRoom)
		d.rooms = append(d.rooms, room)
	default:
		corridor, err := feature.CreateRandomCorridorAt(wall, axes.X, axes.Y, d.cfg.Corridor, d.src)
		if err != nil {
			d.log.WithError(err).Warn("corridor construction failed")
			return false
		}
		if !corridor.Rectify(d.inspect) {
			d.log.WithField("start", corridor.Start().String()).Trace("corridor rejected")
			return false
		}
		d.commit(corridor, EventCorridor)
		corridor.CreatePriorityWalls(d.markPriorityWall)
		d.corridors = append(d.corridors, corridor)
	}
	return true
}

// commit carves f through dig so wall candidates and the dug count stay current
func (d *digger) commit(f feature.Feature, kind EventKind) {
	f.Create(feature.DiggerFunc(d.dig))
	d.step++
	d.cfg.emit(Event{Kind: kind, Step: d.step, Feature: f, Cells: f.Cells()})
}

func (d *digger) dig(p world.Point, t world.CellType) {
	if t == world.Wall {
		d.grid.Dig(p, t)
		d.walls[p] = wallNormal
		return
	}
	if !d.grid.IsWalkable(p) {
		d.dug++
	}
	d.grid.Dig(p, t)
	delete(d.walls, p)
}

func (d *digger) markPriorityWall(p world.Point) {
	d.walls[p] = wallPriority
}

func (d *digger) priorityWalls() int {
	n := 0
	for _, prio := range d.walls {
		if prio > wallNormal {
			n++
		}
	}
	return n
}

// findWall removes and returns a random wall candidate, priority walls first
func (d *digger) findWall() (world.Point, bool) {
	normal := mapset.New[world.Point]()
	priority := mapset.New[world.Point]()
	for p, prio := range d.walls {
		if prio > wallNormal {
			priority.Put(p)
		} else {
			normal.Put(p)
		}
	}

	candidates := priority
	if candidates.Size() == 0 {
		candidates = normal
	}
	if candidates.Size() == 0 {
		return world.Point{}, false
	}

	// map order is random, so sort before drawing to keep runs reproducible
	list := make([]world.Point, 0, candidates.Size())
	candidates.Each(func(p world.Point) {
		list = append(list, p)
	})
	sort.Slice(list, func(i, j int) bool {
		return world.Less(list[i], list[j])
	})

	wall := list[rng.Pick(d.src, len(list))]
	delete(d.walls, wall)
	return wall, true
}

// diggingDirection returns the direction pointing away from the single
// walkable cell next to wall. Perimeter walls and walls touching zero or
// several walkable cells cannot be dug from.
func (d *digger) diggingDirection(wall world.Point) (world.Direction, bool) {
	if !d.grid.IsPlayablePosition(wall) {
		return 0, false
	}

	found := false
	var result world.Direction
	for _, dir := range world.AllDirections() {
		if !d.grid.IsWalkable(d.grid.Neighbor(wall, dir)) {
			continue
		}
		if found {
			return 0, false
		}
		found = true
		result = dir
	}

	if !found {
		return 0, false
	}
	return result.Opposite(), true
}

// removeSurroundingWalls drops the eight neighbours of p from the candidates
func (d *digger) removeSurroundingWalls(p world.Point) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			delete(d.walls, p.Add(world.Pt(dx, dy)))
		}
	}
}
