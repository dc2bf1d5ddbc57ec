package entity

import (
	"fmt"
	"sort"
	"strings"
)

// Modifier represents keyboard modifier flags.
type Modifier uint

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Accelerator is a normalized key binding such as "ctrl+shift+c" or "f12".
type Accelerator struct {
	Key       string
	Modifiers Modifier
}

var keyAliases = map[string]string{
	"esc":        "escape",
	"return":     "enter",
	"del":        "delete",
	"arrowleft":  "left",
	"arrowright": "right",
	"arrowup":    "up",
	"arrowdown":  "down",
	"page_up":    "pageup",
	"page_down":  "pagedown",
	"plus":       "+",
	"minus":      "-",
	"equal":      "=",
}

// ParseAccelerator parses a "+" separated accelerator string.
// "cmdorctrl" maps to Ctrl, "cmd"/"super"/"meta" to Super.
func ParseAccelerator(s string) (Accelerator, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Accelerator{}, fmt.Errorf("empty accelerator")
	}
	if s == "+" {
		return Accelerator{Key: "+"}, nil
	}

	var acc Accelerator
	parts := strings.Split(s, "+")
	for i, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			// "ctrl++" ends with an empty segment for the "+" key.
			if i == len(parts)-1 && acc.Key == "" {
				acc.Key = "+"
			}
			continue
		}
		switch part {
		case "ctrl", "control", "cmdorctrl", "cmdorcontrol":
			acc.Modifiers |= ModCtrl
		case "shift":
			acc.Modifiers |= ModShift
		case "alt", "option", "optionoralt":
			acc.Modifiers |= ModAlt
		case "cmd", "command", "super", "meta":
			acc.Modifiers |= ModSuper
		default:
			if acc.Key != "" {
				return Accelerator{}, fmt.Errorf("accelerator %q has more than one key", s)
			}
			if alias, ok := keyAliases[part]; ok {
				part = alias
			}
			acc.Key = part
		}
	}
	if acc.Key == "" {
		return Accelerator{}, fmt.Errorf("accelerator %q has no key", s)
	}
	return acc, nil
}

func (a Accelerator) String() string {
	var mods []string
	if a.Modifiers&ModCtrl != 0 {
		mods = append(mods, "ctrl")
	}
	if a.Modifiers&ModAlt != 0 {
		mods = append(mods, "alt")
	}
	if a.Modifiers&ModShift != 0 {
		mods = append(mods, "shift")
	}
	if a.Modifiers&ModSuper != 0 {
		mods = append(mods, "super")
	}
	sort.Strings(mods)
	return strings.Join(append(mods, a.Key), "+")
}

// KeyEvent is a key press delivered to a window.
type KeyEvent struct {
	Key       string
	Modifiers Modifier
}

// Accelerator returns the normalized accelerator for the event.
func (e KeyEvent) Accelerator() Accelerator {
	key := strings.ToLower(e.Key)
	if alias, ok := keyAliases[key]; ok {
		key = alias
	}
	return Accelerator{Key: key, Modifiers: e.Modifiers}
}
