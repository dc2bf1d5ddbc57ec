package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleMask_String(t *testing.T) {
	assert.Equal(t, "borderless", StyleBorderless.String())
	assert.Equal(t, "titled|closable|miniaturizable|resizable", StyleDefault.String())
	assert.Equal(t, "titled|utility", (StyleTitled | StyleUtilityWindow).String())
}

func TestStyleMask_Borderless(t *testing.T) {
	assert.True(t, StyleBorderless.IsBorderless())
	assert.True(t, StyleResizable.IsBorderless(), "no title bar without the titled flag")
	assert.False(t, StyleDefault.IsBorderless())
	assert.True(t, StyleDefault.Has(StyleTitled|StyleClosable))
	assert.False(t, StyleDefault.Has(StyleTitled|StyleHUDWindow))
}

func TestParseStyleMask(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    StyleMask
		wantErr bool
	}{
		{name: "empty", in: nil, want: StyleBorderless},
		{name: "borderless", in: []string{"borderless"}, want: StyleBorderless},
		{name: "default set", in: []string{"titled", "closable", "miniaturizable", "resizable"}, want: StyleDefault},
		{name: "case and spaces", in: []string{" Titled ", "HUD"}, want: StyleTitled | StyleHUDWindow},
		{name: "full size content", in: []string{"full-size-content"}, want: StyleFullSizeContentView},
		{name: "unknown flag", in: []string{"titled", "wobbly"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStyleMask(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStyleMask_RoundTripsString(t *testing.T) {
	mask := StyleTitled | StyleNonactivatingPanel | StyleUnifiedTitleToolbar
	got, err := ParseStyleMask([]string{"titled", "nonactivating", "unified-toolbar"})
	require.NoError(t, err)
	assert.Equal(t, mask, got)
	assert.Equal(t, "titled|nonactivating|unified-toolbar", got.String())
}

func TestParseBackingMode(t *testing.T) {
	for in, want := range map[string]BackingMode{
		"":            BackingBuffered,
		"buffered":    BackingBuffered,
		"Retained":    BackingRetained,
		"nonretained": BackingNonretained,
	} {
		got, err := ParseBackingMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseBackingMode("double")
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Equal(t, "nonretained", BackingNonretained.String())
}

func TestWindowCategory_String(t *testing.T) {
	assert.Equal(t, "window", CategoryWindow.String())
	assert.Equal(t, "panel", CategoryPanel.String())
	assert.Equal(t, "unknown", WindowCategory(9).String())
}
