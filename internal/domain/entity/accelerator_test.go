package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccelerator(t *testing.T) {
	tests := []struct {
		in      string
		want    Accelerator
		wantErr string
	}{
		{in: "f12", want: Accelerator{Key: "f12"}},
		{in: "ctrl+w", want: Accelerator{Key: "w", Modifiers: ModCtrl}},
		{in: "CmdOrCtrl+Shift+F", want: Accelerator{Key: "f", Modifiers: ModCtrl | ModShift}},
		{in: "alt+esc", want: Accelerator{Key: "escape", Modifiers: ModAlt}},
		{in: "super+return", want: Accelerator{Key: "enter", Modifiers: ModSuper}},
		{in: "ctrl++", want: Accelerator{Key: "+", Modifiers: ModCtrl}},
		{in: "ctrl+plus", want: Accelerator{Key: "+", Modifiers: ModCtrl}},
		{in: "+", want: Accelerator{Key: "+"}},
		{in: "", wantErr: "empty accelerator"},
		{in: "ctrl+shift", wantErr: "has no key"},
		{in: "ctrl+a+b", wantErr: "more than one key"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAccelerator(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccelerator_String(t *testing.T) {
	acc, err := ParseAccelerator("shift+super+alt+ctrl+k")
	require.NoError(t, err)
	assert.Equal(t, "alt+ctrl+shift+super+k", acc.String())
	assert.Equal(t, "f1", Accelerator{Key: "f1"}.String())
}

func TestKeyEvent_Accelerator(t *testing.T) {
	ev := KeyEvent{Key: "Escape", Modifiers: ModCtrl}
	assert.Equal(t, Accelerator{Key: "escape", Modifiers: ModCtrl}, ev.Accelerator())

	parsed, err := ParseAccelerator("ctrl+esc")
	require.NoError(t, err)
	assert.Equal(t, parsed, ev.Accelerator())

	assert.Equal(t, "left", KeyEvent{Key: "ArrowLeft"}.Accelerator().Key)
}
