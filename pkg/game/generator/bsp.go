package generator

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"dungeondigger/pkg/engine/rng"
	"dungeondigger/pkg/engine/world"
	"dungeondigger/pkg/game/feature"
)

// BSPGenerator generates maps using Binary Space Partitioning: one room per
// leaf, and corridors joining sibling subtrees
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "bsp"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *feature.Room
}

// Minimum size of a BSP node
const minNodeSize = 8

// bspBuild holds the state of one run
type bspBuild struct {
	cfg  Config
	src  *rng.Rand
	grid *world.Grid
	log  log.FieldLogger

	rooms     []*feature.Room
	corridors []*feature.Corridor
	attempts  int
	step      int
}

// Generate creates a new dungeon using the BSP algorithm
func (g *BSPGenerator) Generate(cfg Config) (*Dungeon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src := rng.New(cfg.Seed)
	b := &bspBuild{
		cfg:  cfg,
		src:  src,
		grid: world.NewGrid(cfg.Width, cfg.Height),
		log: cfg.logger().WithFields(log.Fields{
			"generator": g.Name(),
			"seed":      src.Seed(),
		}),
	}
	b.grid.Fill(world.Wall)

	// Leave the outer ring for perimeter walls
	root := &bspNode{
		x:      1,
		y:      1,
		width:  cfg.Width - 2,
		height: cfg.Height - 2,
	}

	// A leaf must hold the smallest room plus one wall column and row
	minSize := max(minNodeSize, cfg.Room.MinWidth+2, cfg.Room.MinHeight+2)
	b.splitBSP(root, minSize)
	b.createRooms(root)

	if len(b.rooms) == 0 {
		return nil, fmt.Errorf("%w: no room fits in %dx%d", ErrGenerationFailed, cfg.Width, cfg.Height)
	}

	b.connectRooms(root)

	doors := finalizeDoors(b.grid, b.rooms)
	b.step++
	cfg.emit(Event{Kind: EventDoors, Step: b.step, Cells: doors})

	b.log.WithFields(log.Fields{
		"attempts":  b.attempts,
		"rooms":     len(b.rooms),
		"corridors": len(b.corridors),
		"doors":     len(doors),
	}).Info("dungeon generated")

	return &Dungeon{
		Grid:      b.grid,
		Rooms:     b.rooms,
		Corridors: b.corridors,
		Seed:      src.Seed(),
		Generator: g.Name(),
		Attempts:  b.attempts,
	}, nil
}

// splitBSP recursively splits a BSP node
func (b *bspBuild) splitBSP(node *bspNode, minSize int) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	// Decide split direction
	var splitHorizontal bool
	if node.width > node.height && node.width >= minSize*2 {
		splitHorizontal = false
	} else if node.height > node.width && node.height >= minSize*2 {
		splitHorizontal = true
	} else if node.width >= minSize*2 && node.height >= minSize*2 {
		splitHorizontal = b.src.Intn(2) == 0
	} else if node.width >= minSize*2 {
		splitHorizontal = false
	} else {
		splitHorizontal = true
	}

	if splitHorizontal {
		splitPoint := minSize + b.src.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		splitPoint := minSize + b.src.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	b.splitBSP(node.left, minSize)
	b.splitBSP(node.right, minSize)
}

// createRooms places one room in every leaf
func (b *bspBuild) createRooms(node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			b.createRooms(node.left)
		}
		if node.right != nil {
			b.createRooms(node.right)
		}
		return
	}

	// Interior must leave a column and a row for the border inside the leaf
	opts := b.cfg.Room
	opts.MaxWidth = min(opts.MaxWidth, node.width)
	opts.MaxHeight = min(opts.MaxHeight, node.height)
	if opts.Validate() != nil {
		b.log.WithField("leaf", fmt.Sprintf("%dx%d", node.width, node.height)).Debug("leaf too small for a room")
		return
	}

	for i := 0; i < b.cfg.FeatureAttempts; i++ {
		local, err := feature.CreateRandomRoom(node.height, node.width, opts, b.src)
		if err != nil {
			continue
		}

		// CreateRandomRoom works in leaf coordinates with the border at 0
		offset := world.Pt(node.x-1, node.y-1)
		room := feature.NewRoom(local.TopLeft().Add(offset), local.BottomRight().Add(offset))
		if !room.Rectify(b.grid) {
			continue
		}

		b.commit(room, EventRoom)
		node.room = room
		b.rooms = append(b.rooms, room)
		return
	}
}

// connectRooms joins the two subtrees of every inner node
func (b *bspBuild) connectRooms(node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	for i := 0; i < b.cfg.FeatureAttempts; i++ {
		leftRoom := b.getRoom(node.left)
		rightRoom := b.getRoom(node.right)
		if leftRoom == nil || rightRoom == nil {
			break
		}
		b.attempts++
		if b.connect(leftRoom, rightRoom) {
			break
		}
	}

	b.connectRooms(node.left)
	b.connectRooms(node.right)
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func (b *bspBuild) getRoom(node *bspNode) *feature.Room {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *feature.Room
	if node.left != nil {
		leftRoom = b.getRoom(node.left)
	}
	if node.right != nil {
		rightRoom = b.getRoom(node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if b.src.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}

	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// connect digs a straight corridor between rooms whose interiors overlap on
// one axis, or an L of two corridors otherwise. Nothing is carved unless
// every segment validates at full length.
func (b *bspBuild) connect(a, c *feature.Room) bool {
	if lo, hi := max(a.Top(), c.Top()), min(a.Bottom(), c.Bottom()); lo <= hi {
		y := b.src.UniformInt(lo, hi+1)
		if a.Right() < c.Left() {
			return b.digSegments(feature.NewCorridor(world.Pt(a.Right()+1, y), world.Pt(c.Left()-1, y)))
		}
		if c.Right() < a.Left() {
			return b.digSegments(feature.NewCorridor(world.Pt(c.Right()+1, y), world.Pt(a.Left()-1, y)))
		}
		return false
	}

	if lo, hi := max(a.Left(), c.Left()), min(a.Right(), c.Right()); lo <= hi {
		x := b.src.UniformInt(lo, hi+1)
		if a.Bottom() < c.Top() {
			return b.digSegments(feature.NewCorridor(world.Pt(x, a.Bottom()+1), world.Pt(x, c.Top()-1)))
		}
		if c.Bottom() < a.Top() {
			return b.digSegments(feature.NewCorridor(world.Pt(x, c.Bottom()+1), world.Pt(x, a.Top()-1)))
		}
		return false
	}

	// Create L-shaped corridor
	if b.src.Intn(2) == 0 {
		// Horizontal first, then vertical
		return b.connectL(a, c) || b.connectL(c, a)
	}
	// Vertical first, then horizontal
	return b.connectL(c, a) || b.connectL(a, c)
}

// connectL leaves from the side of a facing c, turns at one of c's columns
// and enters c through its top or bottom border
func (b *bspBuild) connectL(a, c *feature.Room) bool {
	step := c.Center().Sub(a.Center()).Sign()
	ay := b.src.UniformInt(a.Top(), a.Bottom()+1)
	cx := b.src.UniformInt(c.Left(), c.Right()+1)

	startX := a.Right() + 1
	if step.X < 0 {
		startX = a.Left() - 1
	}
	endY := c.Top() - 1
	if step.Y < 0 {
		endY = c.Bottom() + 1
	}

	// the vertical leg must run at least one tile in the right direction
	if (endY-(ay+step.Y))*step.Y < 0 {
		return false
	}

	first := feature.NewCorridor(world.Pt(startX, ay), world.Pt(cx, ay))
	second := feature.NewCorridor(world.Pt(cx, ay+step.Y), world.Pt(cx, endY))
	return b.digSegments(first, second)
}

// digSegments validates every segment and commits them only if none was
// rejected or truncated
func (b *bspBuild) digSegments(segments ...*feature.Corridor) bool {
	for _, s := range segments {
		want := s.End()
		if !s.Rectify(b.grid) || s.End() != want {
			b.log.WithField("start", s.Start().String()).Trace("connection rejected")
			return false
		}
	}

	for _, s := range segments {
		b.commit(s, EventCorridor)
		b.corridors = append(b.corridors, s)
	}
	return true
}

func (b *bspBuild) commit(f feature.Feature, kind EventKind) {
	f.Create(b.grid)
	b.step++
	b.cfg.emit(Event{Kind: kind, Step: b.step, Feature: f, Cells: f.Cells()})
}
