package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"dungeondigger/pkg/engine/terminal"
	"dungeondigger/pkg/engine/world"
	"dungeondigger/pkg/game/generator"
	"dungeondigger/pkg/game/renderer"
	"dungeondigger/pkg/game/text"
)

// Lines printed below the map: blank, legend, stats, crop note
const reservedRows = 4

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	// ScreenSize reports the terminal size; nil draws the whole grid
	ScreenSize func() (width, height int)

	colorWall   color.Style
	colorFloor  color.Style
	colorDoor   color.Style
	colorUndug  color.Style
	colorSubtle color.Style
	colorTitle  color.Style
}

// New creates a new TUI renderer writing to out. When out is a terminal the
// map is cropped to fit it.
func New(out io.Writer) *TUIRenderer {
	t := &TUIRenderer{out: out}
	if terminal.IsTerminal() {
		t.ScreenSize = terminal.GetSize
	}
	return t
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgBlue}
	t.colorDoor = color.Style{color.FgYellow, color.OpBold}
	t.colorUndug = color.Style{color.BgBlack}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.ScreenSize == nil {
		return
	}
	fmt.Fprint(t.out, "\033[H\033[2J")
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(s string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(s)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(s)
	case renderer.StyleDoor:
		return t.colorDoor.Sprint(s)
	case renderer.StyleUndug:
		return t.colorUndug.Sprint(s)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(s)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(s)
	default:
		return s
	}
}

// RenderDungeon prints the map, the legend and a stats line
func (t *TUIRenderer) RenderDungeon(d *generator.Dungeon) error {
	grid := d.Grid
	cols, rows := grid.Width(), grid.Height()
	if t.ScreenSize != nil {
		sw, sh := t.ScreenSize()
		cols, rows = terminal.Viewport(grid.Width(), grid.Height(), sw, sh, reservedRows)
	}

	var b strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			b.WriteString(t.renderCell(grid, world.Pt(x, y)))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(t.colorTitle.Sprint(text.Get(text.LegendTitle)) + ":")
	for _, e := range renderer.Legend() {
		b.WriteString("  " + t.StyleText(string(e.Symbol), e.Style) + " " + e.Label)
	}
	b.WriteByte('\n')
	b.WriteString(t.colorSubtle.Sprint(renderer.StatsLine(d)))
	b.WriteByte('\n')
	if cols < grid.Width() || rows < grid.Height() {
		b.WriteString(t.colorSubtle.Sprint(text.Get(text.Cropped, cols, rows, grid.Width(), grid.Height())))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(t.out, b.String())
	return err
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(g *world.Grid, p world.Point) string {
	ct, ok := g.Cell(p)
	return t.StyleText(string(renderer.CellSymbol(ct, ok)), renderer.CellStyle(ct, ok))
}
