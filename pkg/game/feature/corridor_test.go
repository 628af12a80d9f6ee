package feature

import (
	"errors"
	"math/rand"
	"testing"

	"dungeondigger/pkg/engine/rng"
	"dungeondigger/pkg/engine/world"
)

// wallRows writes walls on rows y-1 and y+1 for x in [fromX, toX]
func wallRows(g *world.Grid, y, fromX, toX int) {
	for x := fromX; x <= toX; x++ {
		g.Dig(world.Pt(x, y-1), world.Wall)
		g.Dig(world.Pt(x, y+1), world.Wall)
	}
}

func TestCorridor_Geometry(t *testing.T) {
	tests := []struct {
		name       string
		start, end world.Point
		wantDir    world.Point
		wantLength int
	}{
		{"right", world.Pt(0, 0), world.Pt(5, 0), world.Pt(1, 0), 6},
		{"left", world.Pt(5, 2), world.Pt(2, 2), world.Pt(-1, 0), 4},
		{"down", world.Pt(1, 1), world.Pt(1, 4), world.Pt(0, 1), 4},
		{"up", world.Pt(1, 4), world.Pt(1, 1), world.Pt(0, -1), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCorridor(tt.start, tt.end)
			if got := c.Direction(); got != tt.wantDir {
				t.Errorf("Direction() = %v, want %v", got, tt.wantDir)
			}
			if got := c.Length(); got != tt.wantLength {
				t.Errorf("Length() = %d, want %d", got, tt.wantLength)
			}
			if got := len(c.Cells()); got != tt.wantLength {
				t.Errorf("len(Cells()) = %d, want %d", got, tt.wantLength)
			}
		})
	}
}

func TestCorridor_RejectsWithoutFlankingWalls(t *testing.T) {
	// Undug flanks are not walls, so the very first tile fails.
	g := world.NewGrid(10, 10)
	c := NewCorridor(world.Pt(0, 0), world.Pt(5, 0))
	if c.Rectify(g) {
		t.Fatal("Rectify() = true, want false for a corridor with undug flanks")
	}
	if g.Size() != 0 {
		t.Errorf("Rectify wrote %d cells, want none", g.Size())
	}
}

func TestCorridor_AcceptsFullLengthIntoWall(t *testing.T) {
	g := world.NewGrid(10, 10)
	wallRows(g, 0, 0, 6)
	g.Dig(world.Pt(6, 0), world.Wall)

	c := NewCorridor(world.Pt(0, 0), world.Pt(5, 0))
	if !c.Rectify(g) {
		t.Fatal("Rectify() = false, want true")
	}
	if c.End() != world.Pt(5, 0) {
		t.Errorf("End() = %v, want (5,0) (no truncation)", c.End())
	}
	if !c.EndsWithWall() {
		t.Error("EndsWithWall() = false, want true")
	}

	c.Create(g)
	for x := 0; x <= 5; x++ {
		if !g.IsEmpty(world.Pt(x, 0)) {
			t.Errorf("cell (%d,0) not carved", x)
		}
	}
	if !g.IsWall(world.Pt(6, 0)) {
		t.Error("corridor must not dig past its end")
	}
}

func TestCorridor_RejectsWallEndWithOpenCorners(t *testing.T) {
	// Flank walls stop at x=5, so both diagonals past the end are open
	// while the cell straight ahead is a wall.
	g := world.NewGrid(10, 10)
	wallRows(g, 0, 0, 5)
	g.Dig(world.Pt(6, 0), world.Wall)

	c := NewCorridor(world.Pt(0, 0), world.Pt(5, 0))
	if c.Rectify(g) {
		t.Error("Rectify() = true, want false for a wall end with open corners")
	}
}

func TestCorridor_TruncatesAtMissingFlank(t *testing.T) {
	g := world.NewGrid(10, 10)
	wallRows(g, 0, 0, 3)

	c := NewCorridor(world.Pt(0, 0), world.Pt(7, 0))
	if !c.Rectify(g) {
		t.Fatal("Rectify() = false, want true after truncation")
	}
	if c.End() != world.Pt(3, 0) {
		t.Errorf("End() = %v, want (3,0)", c.End())
	}
	if c.Length() != 4 {
		t.Errorf("Length() = %d, want 4", c.Length())
	}
	if c.EndsWithWall() {
		t.Error("EndsWithWall() = true, want false")
	}

	var marked []world.Point
	c.CreatePriorityWalls(func(p world.Point) {
		marked = append(marked, p)
	})
	want := []world.Point{world.Pt(4, 0), world.Pt(3, -1), world.Pt(3, 1)}
	if len(marked) != len(want) {
		t.Fatalf("marked %v, want %v", marked, want)
	}
	for i := range want {
		if marked[i] != want[i] {
			t.Errorf("priority wall %d = %v, want %v", i, marked[i], want[i])
		}
	}
}

func TestCorridor_TruncatesAtUndiggableCell(t *testing.T) {
	g := world.NewGrid(10, 10)
	wallRows(g, 2, 0, 8)
	g.Dig(world.Pt(4, 2), world.Empty)

	c := NewCorridor(world.Pt(1, 2), world.Pt(7, 2))
	if !c.Rectify(g) {
		t.Fatal("Rectify() = false, want true")
	}
	if c.End() != world.Pt(3, 2) {
		t.Errorf("End() = %v, want (3,2)", c.End())
	}
}

func TestCorridor_RejectsSingleTileFacingWall(t *testing.T) {
	g := world.NewGrid(10, 10)
	wallRows(g, 0, 0, 0)
	g.Dig(world.Pt(1, 0), world.Wall)

	c := NewCorridor(world.Pt(0, 0), world.Pt(4, 0))
	if c.Rectify(g) {
		t.Error("Rectify() = true, want false for a one-tile dead end")
	}
}

func TestCorridor_NoPriorityWallsWhenEndingInWall(t *testing.T) {
	g := world.NewGrid(10, 10)
	wallRows(g, 0, 0, 6)
	g.Dig(world.Pt(6, 0), world.Wall)

	c := NewCorridor(world.Pt(0, 0), world.Pt(5, 0))
	if !c.Rectify(g) {
		t.Fatal("Rectify() = false, want true")
	}
	c.CreatePriorityWalls(func(p world.Point) {
		t.Errorf("unexpected priority wall at %v", p)
	})
}

func TestCorridor_VerticalRectify(t *testing.T) {
	g := world.NewGrid(10, 10)
	g.Fill(world.Wall)

	c := NewCorridor(world.Pt(4, 1), world.Pt(4, 5))
	if !Place(c, g) {
		t.Fatal("Place() = false, want true in a solid grid")
	}
	for y := 1; y <= 5; y++ {
		if !g.IsEmpty(world.Pt(4, y)) {
			t.Errorf("cell (4,%d) not carved", y)
		}
	}
}

func TestCreateRandomCorridorAt(t *testing.T) {
	opts := CorridorOptions{MinLength: 3, MaxLength: 10}
	start := world.Pt(5, 5)

	tests := []struct {
		name    string
		dx      world.DirectionX
		dy      world.DirectionY
		wantEnd world.Point
	}{
		{"right", world.Right, world.YNone, world.Pt(9, 5)},
		{"left", world.Left, world.YNone, world.Pt(1, 5)},
		{"down", world.XNone, world.Down, world.Pt(5, 9)},
		{"up", world.XNone, world.Up, world.Pt(5, 1)},
		{"horizontal wins", world.Right, world.Down, world.Pt(9, 5)},
		{"horizontal wins left", world.Left, world.Up, world.Pt(1, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &rng.Sequence{Ints: []int{4}}
			c, err := CreateRandomCorridorAt(start, tt.dx, tt.dy, opts, src)
			if err != nil {
				t.Fatalf("CreateRandomCorridorAt() error = %v", err)
			}
			if c.Start() != start {
				t.Errorf("Start() = %v, want %v", c.Start(), start)
			}
			if c.End() != tt.wantEnd {
				t.Errorf("End() = %v, want %v", c.End(), tt.wantEnd)
			}
		})
	}
}

func TestCreateRandomCorridorAt_Errors(t *testing.T) {
	src := rng.New(1)
	_, err := CreateRandomCorridorAt(world.Pt(0, 0), world.XNone, world.YNone, CorridorOptions{MinLength: 3, MaxLength: 5}, src)
	if !errors.Is(err, ErrNoDirection) || !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("no direction: err = %v, want ErrNoDirection", err)
	}
	_, err = CreateRandomCorridorAt(world.Pt(0, 0), world.Right, world.YNone, CorridorOptions{MinLength: 5, MaxLength: 5}, src)
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("empty range: err = %v, want ErrInvalidRange", err)
	}
}

func TestCorridor_RectifyProperties(t *testing.T) {
	// Random wall/floor patterns: a validated corridor never grows, starts where
	// it was asked to, and only covers cells that were diggable.
	r := rand.New(rand.NewSource(11))
	src := rng.New(11)
	opts := CorridorOptions{MinLength: 1, MaxLength: 12}

	for trial := 0; trial < 300; trial++ {
		g := world.NewGrid(16, 16)
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				switch r.Intn(10) {
				case 0:
					g.Dig(world.Pt(x, y), world.Empty)
				case 1:
					// leave undug
				default:
					g.Dig(world.Pt(x, y), world.Wall)
				}
			}
		}

		dir := world.AllDirections()[r.Intn(4)].Axes()
		start := world.Pt(1+r.Intn(14), 1+r.Intn(14))
		c, err := CreateRandomCorridorAt(start, dir.X, dir.Y, opts, src)
		if err != nil {
			t.Fatalf("CreateRandomCorridorAt() error = %v", err)
		}
		requested := c.Length()

		if !c.Rectify(g) {
			continue
		}
		if c.Start() != start {
			t.Fatalf("trial %d: start moved from %v to %v", trial, start, c.Start())
		}
		if c.Length() > requested {
			t.Fatalf("trial %d: length grew from %d to %d", trial, requested, c.Length())
		}
		for _, p := range c.Cells() {
			if !g.CanDig(p) {
				t.Fatalf("trial %d: corridor covers undiggable cell %v", trial, p)
			}
		}

		c.Create(g)
		for _, p := range c.Cells() {
			if !g.IsEmpty(p) {
				t.Fatalf("trial %d: cell %v not carved", trial, p)
			}
		}
	}
}
