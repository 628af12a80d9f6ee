package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"dungeondigger/pkg/engine/world"
	"dungeondigger/pkg/game/generator"
	"dungeondigger/pkg/game/renderer"
	"dungeondigger/pkg/game/text"
)

// WriteScreenshotHTML writes the dungeon as a standalone HTML page
func WriteScreenshotHTML(w io.Writer, d *generator.Dungeon) error {
	if d == nil || d.Grid == nil {
		return ErrNoGrid
	}

	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>` + html.EscapeString(text.Get(text.WindowTitle)) + `</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .wall { color: #666; }
        .floor { color: #aaa; }
        .door { color: #ffff00; font-weight: bold; }
        .void { color: #1a1a2e; }
        .legend { margin-top: 10px; color: #888; }
    </style>
</head>
<body>
`)

	// Header
	b.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", html.EscapeString(renderer.StatsLine(d))))

	// Map container
	b.WriteString(`    <div class="map-container">` + "\n")
	g := d.Grid
	for y := 0; y < g.Height(); y++ {
		b.WriteString(`        <div class="map-row">`)
		for x := 0; x < g.Width(); x++ {
			ct, ok := g.Cell(world.Pt(x, y))
			b.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`,
				cellClass(renderer.CellStyle(ct, ok)),
				html.EscapeString(string(renderer.CellSymbol(ct, ok)))))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	// Legend
	b.WriteString(`    <div class="legend">`)
	for i, e := range renderer.Legend() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf(`<span class="%s">%c</span> %s`, cellClass(e.Style), e.Symbol, html.EscapeString(e.Label)))
	}
	b.WriteString(`</div>` + "\n")

	b.WriteString(`</body>
</html>
`)

	_, err := io.WriteString(w, b.String())
	return err
}

// SaveScreenshotHTML writes the dungeon to a timestamped HTML file in the
// working directory and returns its name
func SaveScreenshotHTML(d *generator.Dungeon) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteScreenshotHTML(f, d); err != nil {
		return "", err
	}
	return filename, f.Close()
}

// cellClass returns the CSS class for a style
func cellClass(style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return "wall"
	case renderer.StyleFloor:
		return "floor"
	case renderer.StyleDoor:
		return "door"
	default:
		return "void"
	}
}
