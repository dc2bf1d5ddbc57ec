package usecase

import (
	"context"
	"testing"

	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBindings_Bind(t *testing.T) {
	noop := func(context.Context, *ManagedWindow) {}

	tests := []struct {
		name        string
		accelerator string
		handler     KeyHandler
		wantKey     string
		wantErr     bool
	}{
		{"devtools", "F12", noop, "f12", false},
		{"copy with shift", "shift+ctrl+c", noop, "ctrl+shift+c", false},
		{"cmdorctrl maps to ctrl", "CmdOrCtrl+Q", noop, "ctrl+q", false},
		{"plus key", "ctrl++", noop, "ctrl++", false},
		{"empty", "", noop, "", true},
		{"modifiers only", "ctrl+shift", noop, "", true},
		{"two keys", "a+b", noop, "", true},
		{"nil handler", "f1", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := NewKeyBindings(context.Background())
			err := kb.Bind(tt.accelerator, tt.handler)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, kb.Accelerators())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{tt.wantKey}, kb.Accelerators())
		})
	}
}

func TestKeyBindings_WindowBindingTakesPrecedence(t *testing.T) {
	ctx := context.Background()
	f := newManagerFixture(t)
	mw, err := f.manager.Open(ctx, basicSpec("main"))
	require.NoError(t, err)

	var ran []string
	require.NoError(t, f.keys.Bind("ctrl+k", func(context.Context, *ManagedWindow) { ran = append(ran, "app") }))
	require.NoError(t, f.keys.BindWindow(mw.ID(), "ctrl+k", func(context.Context, *ManagedWindow) { ran = append(ran, "window") }))

	other, err := f.manager.Open(ctx, basicSpec("other"))
	require.NoError(t, err)

	assert.True(t, mw.Window.HandleKeyDown(entity.KeyEvent{Key: "K", Modifiers: entity.ModCtrl}))
	assert.True(t, other.Window.HandleKeyDown(entity.KeyEvent{Key: "k", Modifiers: entity.ModCtrl}))
	assert.Equal(t, []string{"window", "app"}, ran)

	mw.Window.Close()
	f.keys.mu.RLock()
	_, stillBound := f.keys.perWindow[mw.ID()]
	f.keys.mu.RUnlock()
	assert.False(t, stillBound, "window bindings are dropped on close")
}

func TestKeyBindings_ReplaceActionsIsAtomic(t *testing.T) {
	kb := NewKeyBindings(context.Background())
	require.NoError(t, kb.BindAction("f12", ActionReload))

	err := kb.ReplaceActions(map[string]string{
		"ctrl+shift+f": string(ActionToggleFullscreen),
		"ctrl+x":       "explode",
	})
	require.ErrorContains(t, err, "unknown action")
	assert.Equal(t, []string{"f12"}, kb.Accelerators())

	require.NoError(t, kb.ReplaceActions(map[string]string{
		"ctrl+shift+f": string(ActionToggleFullscreen),
		"ctrl+alt+c":   string(ActionCenter),
	}))
	assert.Equal(t, []string{"alt+ctrl+c", "ctrl+shift+f"}, kb.Accelerators())
}

func TestBuiltinActions(t *testing.T) {
	ctx := context.Background()
	f := newManagerFixture(t)
	mw, err := f.manager.Open(ctx, basicSpec("main"))
	require.NoError(t, err)

	for _, action := range Actions() {
		_, err := BuiltinAction(action)
		require.NoError(t, err, action)
	}

	frameless, _ := BuiltinAction(ActionToggleFrameless)
	frameless(ctx, mw)
	assert.True(t, mw.Window.Chrome().Frameless())
	frameless(ctx, mw)
	assert.False(t, mw.Window.Chrome().Frameless())
	assert.Equal(t, entity.StyleDefault, mw.Window.StyleMask())

	center, _ := BuiltinAction(ActionCenter)
	center(ctx, mw)
	assert.Equal(t, entity.NewRect(640, 300, 640, 480), mw.Window.Frame())

	reload, _ := BuiltinAction(ActionReload)
	assert.NotPanics(t, func() { reload(ctx, mw) }, "reload without a committed page only logs")
}
