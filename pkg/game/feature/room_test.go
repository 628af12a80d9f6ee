package feature

import (
	"errors"
	"testing"

	"dungeondigger/pkg/engine/rng"
	"dungeondigger/pkg/engine/world"
)

var testRoomOptions = RoomOptions{MinWidth: 3, MaxWidth: 9, MinHeight: 3, MaxHeight: 6}

func TestRoom_RejectsOnUndugGrid(t *testing.T) {
	// Undug border cells are diggable but are not walls yet.
	g := world.NewGrid(10, 10)
	r := NewRoom(world.Pt(1, 1), world.Pt(3, 3))
	if r.Rectify(g) {
		t.Error("Rectify() = true, want false when the border is not wall")
	}
}

func TestRoom_AcceptsInSolidRock(t *testing.T) {
	g := world.NewGrid(10, 10)
	g.Fill(world.Wall)
	r := NewRoom(world.Pt(1, 1), world.Pt(3, 3))
	if !r.Rectify(g) {
		t.Fatal("Rectify() = false, want true in a wall-filled grid")
	}
}

func TestRoom_RectifyRejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *world.Grid)
		room  *Room
	}{
		{
			name:  "floor on border",
			setup: func(g *world.Grid) { g.Dig(world.Pt(0, 2), world.Empty) },
			room:  NewRoom(world.Pt(1, 1), world.Pt(3, 3)),
		},
		{
			name:  "door on border",
			setup: func(g *world.Grid) { g.Dig(world.Pt(4, 4), world.Door) },
			room:  NewRoom(world.Pt(1, 1), world.Pt(3, 3)),
		},
		{
			name:  "floor in interior",
			setup: func(g *world.Grid) { g.Dig(world.Pt(2, 2), world.Empty) },
			room:  NewRoom(world.Pt(1, 1), world.Pt(3, 3)),
		},
		{
			name:  "border outside grid",
			setup: func(g *world.Grid) {},
			room:  NewRoom(world.Pt(0, 1), world.Pt(2, 3)),
		},
		{
			name:  "interior past right edge",
			setup: func(g *world.Grid) {},
			room:  NewRoom(world.Pt(7, 1), world.Pt(9, 3)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := world.NewGrid(10, 10)
			g.Fill(world.Wall)
			tt.setup(g)
			if tt.room.Rectify(g) {
				t.Error("Rectify() = true, want false")
			}
		})
	}
}

func TestRoom_CreatePartitionsFootprint(t *testing.T) {
	g := world.NewGrid(10, 10)
	g.Fill(world.Wall)
	r := NewRoom(world.Pt(2, 2), world.Pt(5, 4))
	door := world.Pt(1, 3)
	r.AddDoor(door)

	if !Place(r, g) {
		t.Fatal("Place() = false, want true")
	}

	for _, p := range r.Cells() {
		got, ok := g.Cell(p)
		if !ok {
			t.Fatalf("footprint cell %v not written", p)
		}
		var want world.CellType
		switch {
		case p == door:
			want = world.Door
		case r.IsBorder(p):
			want = world.Wall
		default:
			want = world.Empty
		}
		if got != want {
			t.Errorf("cell %v = %v, want %v", p, got, want)
		}
	}
	if got := len(r.Cells()); got != 6*5 {
		t.Errorf("footprint has %d cells, want 30", got)
	}
	if got := g.Count(world.Empty); got != 4*3 {
		t.Errorf("carved %d floor cells, want 12", got)
	}
}

func TestRoom_AddDoorIdempotent(t *testing.T) {
	r := NewRoom(world.Pt(1, 1), world.Pt(3, 3))
	r.AddDoor(world.Pt(0, 2))
	r.AddDoor(world.Pt(0, 2))
	r.AddDoor(world.Pt(4, 2))
	if got := len(r.Doors()); got != 2 {
		t.Fatalf("len(Doors()) = %d, want 2", got)
	}
	if r.Doors()[0] != world.Pt(0, 2) || r.Doors()[1] != world.Pt(4, 2) {
		t.Errorf("Doors() = %v, want insertion order", r.Doors())
	}

	r.ClearDoors()
	if len(r.Doors()) != 0 || r.HasDoor(world.Pt(0, 2)) {
		t.Error("ClearDoors() left doors behind")
	}
}

func TestRoom_AddDoorsFromOpenings(t *testing.T) {
	g := world.NewGrid(10, 10)
	g.Fill(world.Wall)
	r := NewRoom(world.Pt(2, 2), world.Pt(4, 4))
	r.Create(g)

	// a corridor cut through the top and left borders
	g.Dig(world.Pt(3, 1), world.Empty)
	g.Dig(world.Pt(1, 3), world.Empty)

	r.AddDoors(g.IsWall)
	doors := r.Doors()
	if len(doors) != 2 {
		t.Fatalf("Doors() = %v, want 2 doors", doors)
	}
	// border scan is row-major
	if doors[0] != world.Pt(3, 1) || doors[1] != world.Pt(1, 3) {
		t.Errorf("Doors() = %v, want [(3,1) (1,3)]", doors)
	}

	r.AddDoors(g.IsWall)
	if len(r.Doors()) != 2 {
		t.Error("AddDoors should not duplicate existing doors")
	}
}

func TestRoom_Accessors(t *testing.T) {
	r := NewRoom(world.Pt(8, 10), world.Pt(2, 4)) // swapped corners
	if r.TopLeft() != world.Pt(2, 4) || r.BottomRight() != world.Pt(8, 10) {
		t.Fatalf("corners = %v %v, want normalised (2,4) (8,10)", r.TopLeft(), r.BottomRight())
	}
	if r.Left() != 2 || r.Right() != 8 || r.Top() != 4 || r.Bottom() != 10 {
		t.Errorf("edges = %d %d %d %d", r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if r.Center() != world.Pt(5, 7) {
		t.Errorf("Center() = %v, want (5,7)", r.Center())
	}
	if r.Width() != 7 || r.Height() != 7 {
		t.Errorf("size = %dx%d, want 7x7", r.Width(), r.Height())
	}
	if !r.Contains(world.Pt(5, 7)) || r.Contains(world.Pt(1, 7)) {
		t.Error("Contains() wrong")
	}
	if !r.IsBorder(world.Pt(1, 3)) || r.IsBorder(world.Pt(0, 3)) || r.IsBorder(world.Pt(5, 7)) {
		t.Error("IsBorder() wrong")
	}
	if !r.Intersects(NewRoom(world.Pt(8, 10), world.Pt(9, 11))) || r.Intersects(NewRoom(world.Pt(9, 4), world.Pt(12, 6))) {
		t.Error("Intersects() wrong")
	}
}

func TestCreateRandomRoomAt(t *testing.T) {
	door := world.Pt(10, 10)
	tests := []struct {
		name           string
		dx             world.DirectionX
		dy             world.DirectionY
		wantTL, wantBR world.Point
	}{
		{"right", world.Right, world.YNone, world.Pt(11, 8), world.Pt(15, 11)},
		{"left", world.Left, world.YNone, world.Pt(5, 8), world.Pt(9, 11)},
		{"down", world.XNone, world.Down, world.Pt(8, 11), world.Pt(12, 14)},
		{"up", world.XNone, world.Up, world.Pt(8, 6), world.Pt(12, 9)},
		{"horizontal wins", world.Right, world.Down, world.Pt(11, 8), world.Pt(15, 11)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// height 4, width 5, scale 0.5
			src := &rng.Sequence{Ints: []int{4, 5}, Floats: []float64{0.5}}
			r, err := CreateRandomRoomAt(door, tt.dx, tt.dy, testRoomOptions, src)
			if err != nil {
				t.Fatalf("CreateRandomRoomAt() error = %v", err)
			}
			if r.TopLeft() != tt.wantTL || r.BottomRight() != tt.wantBR {
				t.Errorf("room = %v-%v, want %v-%v", r.TopLeft(), r.BottomRight(), tt.wantTL, tt.wantBR)
			}
			if !r.HasDoor(door) || len(r.Doors()) != 1 {
				t.Errorf("Doors() = %v, want [%v]", r.Doors(), door)
			}
		})
	}
}

func TestCreateRandomRoomAt_DoorOnBorderNotCorner(t *testing.T) {
	src := rng.New(5)
	door := world.Pt(20, 20)
	for i := 0; i < 200; i++ {
		dir := world.AllDirections()[i%4].Axes()
		r, err := CreateRandomRoomAt(door, dir.X, dir.Y, testRoomOptions, src)
		if err != nil {
			t.Fatalf("CreateRandomRoomAt() error = %v", err)
		}
		if !r.IsBorder(door) {
			t.Fatalf("%v: door %v is not on the border", r, door)
		}
		left, top, right, bottom := r.footprint()
		if (door.X == left || door.X == right) && (door.Y == top || door.Y == bottom) {
			t.Fatalf("%v: door %v sits on a corner", r, door)
		}
		if r.Width() < testRoomOptions.MinWidth || r.Width() >= testRoomOptions.MaxWidth {
			t.Fatalf("%v: width %d out of range", r, r.Width())
		}
		if r.Height() < testRoomOptions.MinHeight || r.Height() >= testRoomOptions.MaxHeight {
			t.Fatalf("%v: height %d out of range", r, r.Height())
		}
	}
}

func TestCreateRandomRoomAt_NoDirection(t *testing.T) {
	g := world.NewGrid(10, 10)
	r, err := CreateRandomRoomAt(world.Pt(5, 5), world.XNone, world.YNone, testRoomOptions, rng.New(1))
	if !errors.Is(err, ErrNoDirection) || !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("err = %v, want ErrNoDirection", err)
	}
	if r != nil {
		t.Error("expected no room on error")
	}
	if g.Size() != 0 {
		t.Error("grid must be untouched")
	}
}

func TestCreateRandomRoomCenter_ContainsCenter(t *testing.T) {
	src := rng.New(8)
	center := world.Pt(30, 12)
	for i := 0; i < 200; i++ {
		r, err := CreateRandomRoomCenter(center, testRoomOptions, src)
		if err != nil {
			t.Fatalf("CreateRandomRoomCenter() error = %v", err)
		}
		if !r.Contains(center) {
			t.Fatalf("%v does not contain %v", r, center)
		}
		if len(r.Doors()) != 0 {
			t.Fatalf("%v has doors", r)
		}
	}
}

func TestCreateRandomRoom_InsideArea(t *testing.T) {
	src := rng.New(3)
	const availW, availH = 12, 9
	for i := 0; i < 200; i++ {
		r, err := CreateRandomRoom(availH, availW, testRoomOptions, src)
		if err != nil {
			t.Fatalf("CreateRandomRoom() error = %v", err)
		}
		left, top, right, bottom := r.footprint()
		if left < 0 || top < 0 || right > availW || bottom > availH {
			t.Fatalf("%v footprint (%d,%d)-(%d,%d) escapes %dx%d", r, left, top, right, bottom, availW, availH)
		}
	}
}

func TestCreateRandomRoom_TooSmall(t *testing.T) {
	_, err := CreateRandomRoom(3, 3, testRoomOptions, rng.New(1))
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("err = %v, want ErrInvalidRange", err)
	}
}

func TestRoomOptions_Validate(t *testing.T) {
	bad := []RoomOptions{
		{MinWidth: 0, MaxWidth: 4, MinHeight: 1, MaxHeight: 2},
		{MinWidth: 4, MaxWidth: 4, MinHeight: 1, MaxHeight: 2},
		{MinWidth: 1, MaxWidth: 4, MinHeight: 3, MaxHeight: 2},
	}
	for _, o := range bad {
		if err := o.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%+v: err = %v, want ErrInvalidConfiguration", o, err)
		}
	}
	if err := testRoomOptions.Validate(); err != nil {
		t.Errorf("valid options: err = %v", err)
	}
}
