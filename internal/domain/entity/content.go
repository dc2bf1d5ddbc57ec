package entity

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// NavigationType classifies what triggered a navigation.
type NavigationType int

const (
	NavigationOther NavigationType = iota
	NavigationLinkActivated
	NavigationFormSubmitted
	NavigationBackForward
	NavigationReload
	NavigationFormResubmitted
)

func (t NavigationType) String() string {
	switch t {
	case NavigationLinkActivated:
		return "link"
	case NavigationFormSubmitted:
		return "form"
	case NavigationBackForward:
		return "back-forward"
	case NavigationReload:
		return "reload"
	case NavigationFormResubmitted:
		return "form-resubmit"
	default:
		return "other"
	}
}

// NavigationAction describes a proposed navigation.
type NavigationAction struct {
	WindowID       WindowID
	URL            string
	Type           NavigationType
	MainFrame      bool
	FrameID        string
	IsUserGesture  bool
	SourceFrameURL string
}

// Scheme returns the lower-cased scheme of the action URL.
func (a NavigationAction) Scheme() string {
	return SchemeOf(a.URL)
}

// NavigationDecision is the policy answer for a navigation.
type NavigationDecision int

const (
	NavigationAllow NavigationDecision = iota
	NavigationCancel
)

func (d NavigationDecision) String() string {
	if d == NavigationCancel {
		return "cancel"
	}
	return "allow"
}

// SchemeOf extracts the lower-cased scheme of a URL, or "" when absent.
func SchemeOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		i := strings.Index(raw, ":")
		if i <= 0 {
			return ""
		}
		return strings.ToLower(raw[:i])
	}
	return strings.ToLower(u.Scheme)
}

// ResourceRequest is a request routed to a custom scheme handler.
type ResourceRequest struct {
	TaskID   string
	WindowID WindowID
	URL      string
	Scheme   string
	Host     string
	Path     string
	Method   string
	Header   http.Header
	Body     []byte
}

// NewResourceRequest parses raw into a request. Method defaults to GET.
func NewResourceRequest(taskID string, windowID WindowID, raw, method string) (ResourceRequest, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return ResourceRequest{}, err
	}
	if method == "" {
		method = http.MethodGet
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	return ResourceRequest{
		TaskID:   taskID,
		WindowID: windowID,
		URL:      raw,
		Scheme:   strings.ToLower(u.Scheme),
		Host:     u.Host,
		Path:     path,
		Method:   method,
		Header:   http.Header{},
	}, nil
}

// ResourceResponse is a scheme handler answer. Either Data or Body is
// used; Body takes precedence and is closed by the consumer.
type ResourceResponse struct {
	StatusCode  int
	ContentType string
	Header      http.Header
	Data        []byte
	Body        io.ReadCloser
}

// ScriptMessage is a structured message posted by rendered content.
// Sequence is assigned per frame in arrival order.
type ScriptMessage struct {
	WindowID WindowID
	FrameID  string
	Name     string
	Payload  json.RawMessage
	Sequence uint64
}

// DragOperation is the answer to a dragging-entered query.
type DragOperation int

const (
	DragReject DragOperation = iota
	DragAccept
)

func (o DragOperation) String() string {
	if o == DragAccept {
		return "accept"
	}
	return "reject"
}

// DropPayload is content dragged onto a renderer surface.
type DropPayload struct {
	WindowID WindowID
	Location Point
	Files    []string
	Text     string
	URLs     []string
}

// DragRegion is a content-declared rectangle that either starts a window
// drag (Draggable) or must remain a content click area.
type DragRegion struct {
	Rect      Rect `json:"rect"`
	Draggable bool `json:"draggable"`
}

// RendererSurface is the snapshot of a window's embedded content view.
type RendererSurface struct {
	WindowID   WindowID
	Schemes    []string
	CurrentURL string
	Regions    []DragRegion
}

// SortedSchemes returns the keys of a scheme set in stable order.
func SortedSchemes[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
