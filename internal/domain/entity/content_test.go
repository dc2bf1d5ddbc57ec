package entity

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemeOf(t *testing.T) {
	tests := map[string]string{
		"APP://index.html":       "app",
		"https://example.com/":   "https",
		"about:blank":            "about",
		"/relative/path":         "",
		"":                       "",
		"my-scheme://host/%zz":   "my-scheme",
		"data:text/plain,hello":  "data",
		"no-scheme-here.example": "",
	}
	for in, want := range tests {
		assert.Equal(t, want, SchemeOf(in), in)
	}
	assert.Equal(t, "app", NavigationAction{URL: "App://x"}.Scheme())
}

func TestNewResourceRequest(t *testing.T) {
	req, err := NewResourceRequest("t1", 3, "App://assets/css/site.css?v=2", "")
	require.NoError(t, err)
	assert.Equal(t, "t1", req.TaskID)
	assert.Equal(t, WindowID(3), req.WindowID)
	assert.Equal(t, "app", req.Scheme)
	assert.Equal(t, "assets", req.Host)
	assert.Equal(t, "/css/site.css", req.Path)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.NotNil(t, req.Header)

	req, err = NewResourceRequest("t2", 1, "app://host", http.MethodPost)
	require.NoError(t, err)
	assert.Equal(t, "/", req.Path)
	assert.Equal(t, http.MethodPost, req.Method)

	_, err = NewResourceRequest("t3", 1, "app://host/%zz", "")
	assert.Error(t, err)
}

func TestSortedSchemes(t *testing.T) {
	got := SortedSchemes(map[string]int{"zed": 1, "app": 2, "media": 3})
	assert.Equal(t, []string{"app", "media", "zed"}, got)
	assert.Empty(t, SortedSchemes(map[string]int{}))
}

func TestDecisionAndOperationStrings(t *testing.T) {
	assert.Equal(t, "allow", NavigationAllow.String())
	assert.Equal(t, "cancel", NavigationCancel.String())
	assert.Equal(t, "accept", DragAccept.String())
	assert.Equal(t, "reject", DragReject.String())
	assert.Equal(t, "link", NavigationLinkActivated.String())
}

func TestHandlerFault(t *testing.T) {
	cause := errors.New("disk gone")
	err := error(&HandlerFault{Scheme: "app", URL: "app://x/", Cause: cause})
	assert.ErrorIs(t, err, ErrHandlerFault)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `scheme handler "app" failed on app://x/`)

	panicked := &HandlerFault{Scheme: "app", URL: "app://x/", Panic: "nil map"}
	assert.ErrorIs(t, panicked, ErrHandlerFault)
	assert.Contains(t, panicked.Error(), "panicked")
}

func TestConfigurationError(t *testing.T) {
	err := error(&ConfigurationError{Field: "backing", Reason: "unknown mode x"})
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Equal(t, "invalid configuration: backing unknown mode x", err.Error())

	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "backing", ce.Field)
}
