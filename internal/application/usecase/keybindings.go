package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/logging"
	"github.com/rs/zerolog"
)

// Action names a built-in key binding action.
type Action string

const (
	ActionCenter           Action = "center"
	ActionToggleFrameless  Action = "toggle-frameless"
	ActionToggleFullscreen Action = "toggle-fullscreen"
	ActionClose            Action = "close"
	ActionReload           Action = "reload"
)

// Actions lists the built-in actions in stable order.
func Actions() []Action {
	return []Action{ActionCenter, ActionClose, ActionReload, ActionToggleFrameless, ActionToggleFullscreen}
}

// KeyHandler runs a bound key press against the focused window.
type KeyHandler func(ctx context.Context, w *ManagedWindow)

// KeyBindings dispatches accelerators. Per-window bindings take precedence
// over application bindings.
type KeyBindings struct {
	mu        sync.RWMutex
	app       map[string]KeyHandler
	perWindow map[entity.WindowID]map[string]KeyHandler
	logger    zerolog.Logger
}

// NewKeyBindings creates an empty binding table.
func NewKeyBindings(ctx context.Context) *KeyBindings {
	return &KeyBindings{
		app:       make(map[string]KeyHandler),
		perWindow: make(map[entity.WindowID]map[string]KeyHandler),
		logger:    logging.FromContext(ctx).With().Str("component", "keybindings").Logger(),
	}
}

// Bind registers an application-wide binding.
func (k *KeyBindings) Bind(accelerator string, fn KeyHandler) error {
	key, err := bindingKey(accelerator, fn)
	if err != nil {
		return err
	}
	k.mu.Lock()
	k.app[key] = fn
	k.mu.Unlock()
	return nil
}

// BindWindow registers a binding for one window only.
func (k *KeyBindings) BindWindow(id entity.WindowID, accelerator string, fn KeyHandler) error {
	key, err := bindingKey(accelerator, fn)
	if err != nil {
		return err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.perWindow[id] == nil {
		k.perWindow[id] = make(map[string]KeyHandler)
	}
	k.perWindow[id][key] = fn
	return nil
}

// BindAction registers a built-in action application-wide.
func (k *KeyBindings) BindAction(accelerator string, action Action) error {
	fn, err := BuiltinAction(action)
	if err != nil {
		return err
	}
	return k.Bind(accelerator, fn)
}

// ReplaceActions swaps every application binding for the accelerator to
// action table. Nothing changes when an entry is invalid.
func (k *KeyBindings) ReplaceActions(table map[string]string) error {
	next := make(map[string]KeyHandler, len(table))
	for accel, name := range table {
		fn, err := BuiltinAction(Action(name))
		if err != nil {
			return fmt.Errorf("binding %q: %w", accel, err)
		}
		key, err := bindingKey(accel, fn)
		if err != nil {
			return err
		}
		next[key] = fn
	}
	k.mu.Lock()
	k.app = next
	k.mu.Unlock()
	k.logger.Debug().Int("count", len(next)).Msg("key bindings replaced")
	return nil
}

// UnbindWindow drops the bindings of a closed window.
func (k *KeyBindings) UnbindWindow(id entity.WindowID) {
	k.mu.Lock()
	delete(k.perWindow, id)
	k.mu.Unlock()
}

// Accelerators returns the application accelerators in canonical form.
func (k *KeyBindings) Accelerators() []string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	out := make([]string, 0, len(k.app))
	for key := range k.app {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Dispatch runs the binding matching ev, reporting whether one ran.
func (k *KeyBindings) Dispatch(ctx context.Context, w *ManagedWindow, ev entity.KeyEvent) bool {
	key := ev.Accelerator().String()

	k.mu.RLock()
	fn, ok := k.perWindow[w.ID()][key]
	if !ok {
		fn, ok = k.app[key]
	}
	k.mu.RUnlock()

	if !ok {
		return false
	}
	k.logger.Debug().Str("accelerator", key).Uint32("window_id", uint32(w.ID())).Msg("key binding")
	fn(ctx, w)
	return true
}

func bindingKey(accelerator string, fn KeyHandler) (string, error) {
	if fn == nil {
		return "", fmt.Errorf("binding %q: nil handler", accelerator)
	}
	accel, err := entity.ParseAccelerator(accelerator)
	if err != nil {
		return "", err
	}
	return accel.String(), nil
}

// BuiltinAction returns the handler of a named action.
func BuiltinAction(action Action) (KeyHandler, error) {
	switch action {
	case ActionCenter:
		return func(_ context.Context, w *ManagedWindow) { w.Window.Center() }, nil
	case ActionToggleFrameless:
		return func(_ context.Context, w *ManagedWindow) {
			w.Window.SetFrameless(!w.Window.Chrome().Frameless())
		}, nil
	case ActionToggleFullscreen:
		return func(_ context.Context, w *ManagedWindow) { w.Window.ToggleFullscreen() }, nil
	case ActionClose:
		return func(_ context.Context, w *ManagedWindow) { w.Window.Close() }, nil
	case ActionReload:
		return func(ctx context.Context, w *ManagedWindow) {
			if err := w.Bridge.Reload(ctx); err != nil {
				logging.FromContext(ctx).Warn().Err(err).Msg("reload failed")
			}
		}, nil
	}
	names := make([]string, 0, len(Actions()))
	for _, a := range Actions() {
		names = append(names, string(a))
	}
	sort.Strings(names)
	return nil, fmt.Errorf("unknown action %q (want one of %v)", action, names)
}
