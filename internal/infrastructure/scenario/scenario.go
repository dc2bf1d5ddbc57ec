// Package scenario loads YAML scenarios and replays them against the
// window and content core, recording every notification the core emits.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/infrastructure/config"
)

// ErrInvalidScenario is returned for scenarios that fail validation.
var ErrInvalidScenario = errors.New("invalid scenario")

// Step actions.
const (
	ActionOpen       = "open"
	ActionClose      = "close"
	ActionShow       = "show"
	ActionCenter     = "center"
	ActionFocus      = "focus"
	ActionBlur       = "blur"
	ActionMouseDown  = "mouse-down"
	ActionMouseUp    = "mouse-up"
	ActionDragTo     = "drag-to"
	ActionKey        = "key"
	ActionFrameless  = "frameless"
	ActionFullscreen = "fullscreen"
	ActionTitleBar   = "title-bar"
	ActionLoad       = "load"
	ActionNavigate   = "navigate"
	ActionReload     = "reload"
	ActionMessage    = "message"
	ActionScript     = "script"
	ActionDragEnter  = "drag-enter"
	ActionDragExit   = "drag-exit"
	ActionDrop       = "drop"
	ActionExpect     = "expect"
)

var knownActions = map[string]bool{
	ActionOpen: true, ActionClose: true, ActionShow: true, ActionCenter: true,
	ActionFocus: true, ActionBlur: true, ActionMouseDown: true, ActionMouseUp: true,
	ActionDragTo: true, ActionKey: true, ActionFrameless: true, ActionFullscreen: true,
	ActionTitleBar: true, ActionLoad: true, ActionNavigate: true, ActionReload: true,
	ActionMessage: true, ActionScript: true, ActionDragEnter: true, ActionDragExit: true,
	ActionDrop: true, ActionExpect: true,
}

// Scenario is a window configuration plus a list of input steps.
type Scenario struct {
	Name string `yaml:"name"`
	// Config starts from the defaults; the file only overrides.
	Config *config.Config `yaml:"config"`
	// AcceptDrops makes the shell accept every drag entering a window.
	AcceptDrops bool   `yaml:"accept_drops"`
	Steps       []Step `yaml:"steps"`
}

// Step is one scripted input. Which fields apply depends on Do.
type Step struct {
	Do     string    `yaml:"do"`
	Window string    `yaml:"window,omitempty"`
	At     []float64 `yaml:"at,flow,omitempty"`
	Screen []float64 `yaml:"screen,flow,omitempty"`
	Button string    `yaml:"button,omitempty"`
	Key    string    `yaml:"key,omitempty"`
	On     *bool     `yaml:"on,omitempty"`
	URL    string    `yaml:"url,omitempty"`
	Frame  string    `yaml:"frame,omitempty"`
	// Name and Payload form a script message.
	Name    string   `yaml:"name,omitempty"`
	Payload any      `yaml:"payload,omitempty"`
	Script  string   `yaml:"script,omitempty"`
	Files   []string `yaml:"files,omitempty"`
	Text    string   `yaml:"text,omitempty"`
	URLs    []string `yaml:"urls,omitempty"`
	Height  uint32   `yaml:"height,omitempty"`

	Open   *config.WindowConfig `yaml:"open,omitempty"`
	Expect *Expect              `yaml:"expect,omitempty"`
}

// Expect is checked after the step has run and the UI queue settled.
type Expect struct {
	Frameless  *bool     `yaml:"frameless,omitempty"`
	Fullscreen *bool     `yaml:"fullscreen,omitempty"`
	Key        *bool     `yaml:"key,omitempty"`
	Main       *bool     `yaml:"main,omitempty"`
	Closed     *bool     `yaml:"closed,omitempty"`
	Consumed   *bool     `yaml:"consumed,omitempty"`
	Frame      []float64 `yaml:"frame,flow,omitempty"`
	Style      []string  `yaml:"style,flow,omitempty"`
	URL        string    `yaml:"url,omitempty"`
	Regions    *int      `yaml:"regions,omitempty"`
}

// Load reads and validates the scenario at path.
func Load(ctx context.Context, path string) (*Scenario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a scenario document.
func Parse(raw []byte) (*Scenario, error) {
	sc := &Scenario{Config: config.DefaultConfig()}
	if err := yaml.Unmarshal(raw, sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if sc.Config == nil {
		sc.Config = config.DefaultConfig()
	}
	config.Normalize(sc.Config)
	if err := config.Validate(sc.Config); err != nil {
		return nil, err
	}
	if err := validateSteps(sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func validateSteps(sc *Scenario) error {
	names := make(map[string]bool)
	for _, wc := range sc.Config.AllWindows() {
		if wc.Name != "" {
			names[wc.Name] = true
		}
	}

	var problems []string
	for i, s := range sc.Steps {
		bad := func(format string, args ...any) {
			problems = append(problems, fmt.Sprintf("step %d (%s): %s", i+1, s.Do, fmt.Sprintf(format, args...)))
		}
		if !knownActions[s.Do] {
			bad("unknown action")
			continue
		}
		if s.Do == ActionOpen {
			if s.Open == nil || s.Open.Name == "" {
				bad("open needs a named window")
				continue
			}
			if names[s.Open.Name] {
				bad("window %q already exists", s.Open.Name)
			}
			names[s.Open.Name] = true
			continue
		}
		if !names[s.Window] {
			bad("unknown window %q", s.Window)
		}
		if s.At != nil && len(s.At) != 2 {
			bad("at needs [x, y]")
		}
		if s.Screen != nil && len(s.Screen) != 2 {
			bad("screen needs [x, y]")
		}
		if _, err := parseButton(s.Button); err != nil {
			bad("%v", err)
		}
		switch s.Do {
		case ActionKey:
			if _, err := entity.ParseAccelerator(s.Key); err != nil {
				bad("%v", err)
			}
		case ActionDragTo:
			if len(s.Screen) != 2 {
				bad("drag-to needs screen")
			}
		case ActionLoad, ActionNavigate:
			if s.URL == "" {
				bad("url is required")
			}
		case ActionMessage:
			if s.Name == "" {
				bad("message name is required")
			}
		case ActionScript:
			if strings.TrimSpace(s.Script) == "" {
				bad("script is empty")
			}
		}
		if e := s.Expect; e != nil {
			if e.Frame != nil && len(e.Frame) != 4 {
				bad("expect.frame needs [x, y, width, height]")
			}
			if _, err := entity.ParseStyleMask(e.Style); e.Style != nil && err != nil {
				bad("%v", err)
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidScenario, strings.Join(problems, "\n  - "))
	}
	return nil
}

func parseButton(name string) (entity.MouseButton, error) {
	switch strings.ToLower(name) {
	case "", "left":
		return entity.MouseLeft, nil
	case "right":
		return entity.MouseRight, nil
	case "middle":
		return entity.MouseMiddle, nil
	default:
		return 0, fmt.Errorf("unknown button %q", name)
	}
}

func point(v []float64) entity.Point {
	if len(v) != 2 {
		return entity.Point{}
	}
	return entity.Point{X: v[0], Y: v[1]}
}
