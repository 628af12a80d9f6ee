package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
)

// Action represents a high‑level intent in the viewer.
type Action int

const (
	ActionNone Action = iota

	ActionRegenerate // New dungeon with a fresh seed
	ActionQuit
	ActionScreenshot // Save an HTML screenshot
	ActionDump       // Write the debug dump
	ActionZoomIn     // Increase tile size
	ActionZoomOut    // Decrease tile size
)

// Intent is the 4th‑layer, high‑level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "r", "escape", "gamepad_a").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten's just-pressed queries already debounce, so this is a distinct type
// only to keep the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"r":         ActionRegenerate,
	"space":     ActionRegenerate,
	"gamepad_a": ActionRegenerate,

	"q":         ActionQuit,
	"escape":    ActionQuit,
	"gamepad_b": ActionQuit,

	"p": ActionScreenshot,
	"d": ActionDump,

	// Zoom (fixed bindings, not rebindable)
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Codes returns every bound code, sorted, so a device can poll them
func Codes() []string {
	codes := make([]string, 0, len(bindings))
	for code := range bindings {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionRegenerate:
		return "Regenerate"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	case ActionDump:
		return "Dump"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Zoom bindings are fixed.
func SetSingleBinding(action Action, code string) {
	if action == ActionZoomIn || action == ActionZoomOut {
		return
	}
	for c, a := range bindings {
		if a == action {
			delete(bindings, c)
		}
	}
	if code == "" {
		return
	}
	if a, ok := bindings[code]; ok && (a == ActionZoomIn || a == ActionZoomOut) {
		return
	}
	bindings[code] = action
}
