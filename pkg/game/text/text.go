// Package text holds the user-facing strings of the renderers and the CLI.
// Keys are looked up in an embedded gettext catalogue; unknown keys are
// returned unchanged.
package text

import (
	_ "embed"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// Translation keys
const (
	LegendTitle      = "LEGEND_TITLE"
	LegendWall       = "LEGEND_WALL"
	LegendFloor      = "LEGEND_FLOOR"
	LegendDoor       = "LEGEND_DOOR"
	StatsLine        = "STATS_LINE"
	Cropped          = "CROPPED"
	WindowTitle      = "WINDOW_TITLE"
	ViewerHelp       = "VIEWER_HELP"
	GenerationFailed = "GENERATION_FAILED"
)

//go:embed locales/en.po
var enPo []byte

var (
	catalogue *gotext.Po
	once      sync.Once
)

func load() {
	catalogue = gotext.NewPo()
	catalogue.Parse(enPo)
}

// Get returns the translation of key formatted with vars
func Get(key string, vars ...interface{}) string {
	once.Do(load)
	return catalogue.Get(key, vars...)
}
