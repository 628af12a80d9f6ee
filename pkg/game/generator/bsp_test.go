package generator

import (
	"testing"

	"dungeondigger/pkg/engine/rng"
	"dungeondigger/pkg/engine/world"
	"dungeondigger/pkg/game/feature"
)

func newTestBuild(w, h int) *bspBuild {
	cfg := testConfig(1)
	cfg.Width, cfg.Height = w, h
	b := &bspBuild{
		cfg:  cfg,
		src:  rng.New(1),
		grid: world.NewGrid(w, h),
		log:  cfg.logger(),
	}
	b.grid.Fill(world.Wall)
	return b
}

func placeRoom(t *testing.T, b *bspBuild, tl, br world.Point) *feature.Room {
	t.Helper()
	r := feature.NewRoom(tl, br)
	if !feature.Place(r, b.grid) {
		t.Fatalf("room %v does not fit", r)
	}
	b.rooms = append(b.rooms, r)
	return r
}

func TestBSPGenerate_PerimeterIntact(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		d, err := BSP.Generate(testConfig(seed))
		if err != nil {
			t.Fatalf("seed %d: Generate() error = %v", seed, err)
		}
		d.Grid.ForEachCell(func(p world.Point, ct world.CellType) {
			if d.Grid.IsOnPerimeter(p) && ct != world.Wall {
				t.Errorf("seed %d: perimeter cell %v = %v", seed, p, ct)
			}
		})
	}
}

func TestBSPGenerate_OneRoomPerLeaf(t *testing.T) {
	d, err := BSP.Generate(testConfig(3))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	// an 80x25 grid splits at least once along x
	if len(d.Rooms) < 2 {
		t.Errorf("got %d rooms, want at least 2", len(d.Rooms))
	}
	for i, a := range d.Rooms {
		for _, c := range d.Rooms[i+1:] {
			if a.Contains(c.Center()) || c.Contains(a.Center()) {
				t.Errorf("rooms %v and %v overlap", a, c)
			}
		}
	}
}

func TestBSPBuild_ConnectStraight(t *testing.T) {
	b := newTestBuild(20, 10)
	a := placeRoom(t, b, world.Pt(2, 2), world.Pt(4, 4))
	c := placeRoom(t, b, world.Pt(10, 2), world.Pt(12, 4))

	if !b.connect(a, c) {
		t.Fatal("connect() = false, want true for rooms sharing rows")
	}
	if len(b.corridors) != 1 {
		t.Fatalf("dug %d corridors, want 1", len(b.corridors))
	}

	corridor := b.corridors[0]
	if corridor.Start().X != 5 || corridor.End().X != 9 {
		t.Errorf("corridor %v-%v, want it to run from x=5 to x=9", corridor.Start(), corridor.End())
	}

	doors := finalizeDoors(b.grid, b.rooms)
	if len(doors) != 2 {
		t.Fatalf("doors = %v, want one per room", doors)
	}
	if !a.HasDoor(corridor.Start()) || !c.HasDoor(corridor.End()) {
		t.Errorf("doors %v %v do not match corridor ends", a.Doors(), c.Doors())
	}
}

func TestBSPBuild_ConnectL(t *testing.T) {
	b := newTestBuild(20, 20)
	a := placeRoom(t, b, world.Pt(2, 2), world.Pt(4, 4))
	c := placeRoom(t, b, world.Pt(10, 10), world.Pt(12, 12))

	if !b.connect(a, c) {
		t.Fatal("connect() = false, want true in solid rock")
	}
	if len(b.corridors) != 2 {
		t.Fatalf("dug %d corridors, want 2 legs", len(b.corridors))
	}

	doors := finalizeDoors(b.grid, b.rooms)
	if len(a.Doors()) != 1 || len(c.Doors()) != 1 {
		t.Errorf("doors = %v, want one per room", doors)
	}
}

func TestBSPBuild_ConnectRejectsBlockedPath(t *testing.T) {
	b := newTestBuild(20, 10)
	a := placeRoom(t, b, world.Pt(2, 2), world.Pt(4, 4))
	c := placeRoom(t, b, world.Pt(14, 2), world.Pt(16, 4))
	// a floor column between the rooms truncates every straight corridor
	for y := 1; y <= 5; y++ {
		b.grid.Dig(world.Pt(9, y), world.Empty)
	}
	before := snapshot(b.grid)

	if b.connect(a, c) {
		t.Fatal("connect() = true, want false across a blocked path")
	}
	after := snapshot(b.grid)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("grid changed at %v after a rejected connection", before[i].p)
		}
	}
}
