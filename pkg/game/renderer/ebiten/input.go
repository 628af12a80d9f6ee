package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "dungeondigger/pkg/engine/input"
	"dungeondigger/pkg/game/devtools"
)

// keyCodes maps Ebiten keys to the raw codes used by the bindings
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyR:              "r",
	ebiten.KeySpace:          "space",
	ebiten.KeyQ:              "q",
	ebiten.KeyEscape:         "escape",
	ebiten.KeyP:              "p",
	ebiten.KeyD:              "d",
	ebiten.KeyEqual:          "=",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
}

// gamepadCodes maps standard gamepad buttons to raw codes
var gamepadCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonRightBottom: "gamepad_a",
	ebiten.StandardGamepadButtonRightRight:  "gamepad_b",
}

// Tile size limits for zooming
const (
	minTileSize = 2
	maxTileSize = 40
)

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	for _, raw := range pressed() {
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		if err := e.apply(intent.Action); err != nil {
			return err
		}
	}
	return nil
}

// pressed collects the raw inputs that went down this tick
func pressed() []engineinput.RawInput {
	var raws []engineinput.RawInput
	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			raws = append(raws, engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code})
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for btn, code := range gamepadCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				raws = append(raws, engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: code})
			}
		}
	}
	return raws
}

// apply performs one action. It returns ebiten.Termination to quit.
func (e *EbitenRenderer) apply(action engineinput.Action) error {
	switch action {
	case engineinput.ActionQuit:
		return ebiten.Termination
	case engineinput.ActionRegenerate:
		e.Regenerate()
	case engineinput.ActionZoomIn:
		e.zoom(1)
	case engineinput.ActionZoomOut:
		e.zoom(-1)
	case engineinput.ActionScreenshot:
		if d := e.Dungeon(); d != nil {
			path, err := devtools.SaveScreenshotHTML(d)
			if err != nil {
				e.log.WithError(err).Warn("screenshot failed")
				break
			}
			e.log.WithField("path", path).Info("screenshot saved")
		}
	case engineinput.ActionDump:
		if d := e.Dungeon(); d != nil {
			path, err := devtools.DumpDungeonToFile(d, "")
			if err != nil {
				e.log.WithError(err).Warn("dump failed")
				break
			}
			e.log.WithField("path", path).Info("dungeon dumped")
		}
	}
	return nil
}

// zoom changes the tile size by delta within the limits
func (e *EbitenRenderer) zoom(delta int) {
	e.mu.Lock()
	e.tileSize = min(max(e.tileSize+delta, minTileSize), maxTileSize)
	e.mu.Unlock()

	w, h := e.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
}
