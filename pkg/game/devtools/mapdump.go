// Package devtools provides developer tools for inspecting generated dungeons.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dungeondigger/pkg/engine/world"
	"dungeondigger/pkg/game/generator"
	"dungeondigger/pkg/game/renderer"
)

const mapDumpFilename = "map.txt"

// ErrNoGrid is returned when a dungeon without a grid is dumped
var ErrNoGrid = errors.New("no grid")

// WriteMap writes the grid as rows of cell symbols, undug cells as spaces
func WriteMap(w io.Writer, g *world.Grid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			ct, ok := g.Cell(world.Pt(x, y))
			bw.WriteRune(renderer.CellSymbol(ct, ok))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteDungeon writes a full debug dump: metadata, legend, map, and the
// room, corridor and door lists. Sections use "key: value" lines so the
// output is easy to diff and grep.
func WriteDungeon(w io.Writer, d *generator.Dungeon) error {
	if d == nil || d.Grid == nil {
		return ErrNoGrid
	}
	g := d.Grid
	bw := bufio.NewWriter(w)

	// --- Metadata ---
	fmt.Fprintln(bw, "=== DUNGEON DUMP ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "generator: %s\n", d.Generator)
	fmt.Fprintf(bw, "seed: %d\n", d.Seed)
	fmt.Fprintf(bw, "width: %d\n", g.Width())
	fmt.Fprintf(bw, "height: %d\n", g.Height())
	fmt.Fprintf(bw, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(bw, "attempts: %d\n", d.Attempts)
	fmt.Fprintf(bw, "dug_ratio: %.3f\n", d.DugRatio())
	fmt.Fprintf(bw, "regions: %d\n", generator.Regions(g))
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend ---")
	for _, e := range renderer.Legend() {
		fmt.Fprintf(bw, "%c: %s\n", e.Symbol, e.Label)
	}
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	if err := WriteMap(bw, g); err != nil {
		return err
	}
	fmt.Fprintln(bw, "")

	// --- Rooms ---
	fmt.Fprintf(bw, "--- Rooms (%d) ---\n", len(d.Rooms))
	for i, r := range d.Rooms {
		fmt.Fprintf(bw, "room %d: %v-%v size=%dx%d doors=%v\n", i, r.TopLeft(), r.BottomRight(), r.Width(), r.Height(), r.Doors())
	}
	fmt.Fprintln(bw, "")

	// --- Corridors ---
	fmt.Fprintf(bw, "--- Corridors (%d) ---\n", len(d.Corridors))
	for i, c := range d.Corridors {
		fmt.Fprintf(bw, "corridor %d: %v-%v length=%d\n", i, c.Start(), c.End(), c.Length())
	}
	fmt.Fprintln(bw, "")

	// --- Doors ---
	doors := d.Doors()
	fmt.Fprintf(bw, "--- Doors (%d) ---\n", len(doors))
	for _, p := range doors {
		fmt.Fprintf(bw, "door: %v\n", p)
	}

	return bw.Flush()
}

// DumpDungeonToFile writes WriteDungeon output to path, or to map.txt in the
// working directory when path is empty. It returns the absolute path written.
func DumpDungeonToFile(d *generator.Dungeon, path string) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDungeon(f, d); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
