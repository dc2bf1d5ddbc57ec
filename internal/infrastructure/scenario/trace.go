package scenario

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/domain/entity"
)

// Trace entry kinds that are not window events.
const (
	KindScriptMessage = "content.script_message"
	KindCommitted     = "content.committed"
	KindFault         = "content.fault"
)

// Entry is one recorded notification.
type Entry struct {
	Seq    int    `json:"seq" yaml:"seq"`
	Step   int    `json:"step" yaml:"step"`
	Window string `json:"window" yaml:"window"`
	Kind   string `json:"kind" yaml:"kind"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`

	windowID entity.WindowID
}

// Recorder collects shell notifications in arrival order.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	names   map[entity.WindowID]string
	step    int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{names: make(map[entity.WindowID]string)}
}

// Name associates a window id with its name for rendering.
func (r *Recorder) Name(id entity.WindowID, name string) {
	r.mu.Lock()
	r.names[id] = name
	r.mu.Unlock()
}

// SetStep tags subsequent entries with step.
func (r *Recorder) SetStep(step int) {
	r.mu.Lock()
	r.step = step
	r.mu.Unlock()
}

func (r *Recorder) add(id entity.WindowID, kind, detail string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{
		Seq:      len(r.entries) + 1,
		Step:     r.step,
		Kind:     kind,
		Detail:   detail,
		windowID: id,
	})
}

// Entries returns the recorded notifications with window names resolved.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		e.Window = r.names[e.windowID]
		if e.Window == "" {
			e.Window = fmt.Sprintf("#%d", e.windowID)
		}
		out[i] = e
	}
	return out
}

// Kinds returns the kind of every entry, in order.
func (r *Recorder) Kinds() []string {
	entries := r.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Kind
	}
	return out
}

// Callbacks returns shell callbacks feeding the recorder. With acceptDrops
// every drag is accepted and every drop performed.
func (r *Recorder) Callbacks(acceptDrops bool) port.ShellCallbacks {
	return port.ShellCallbacks{
		OnWindowEvent: func(ev entity.WindowEvent) {
			r.add(ev.WindowID, string(ev.Kind), "")
		},
		OnScriptMessage: func(msg entity.ScriptMessage) {
			r.add(msg.WindowID, KindScriptMessage,
				fmt.Sprintf("%s#%d %s %s", msg.FrameID, msg.Sequence, msg.Name, string(msg.Payload)))
		},
		OnDraggingEntered: func(entity.DropPayload) entity.DragOperation {
			if acceptDrops {
				return entity.DragAccept
			}
			return entity.DragReject
		},
		OnPerformDrop: func(entity.DropPayload) bool { return acceptDrops },
		OnDropEvent: func(ev entity.DropEvent) {
			r.add(ev.WindowID, string(ev.Kind), dropDetail(ev))
		},
		OnContentFault: func(fault entity.ContentFault) {
			detail := fmt.Sprintf("%s %s", fault.Kind, fault.URL)
			if fault.Err != nil {
				detail += ": " + fault.Err.Error()
			}
			r.add(fault.WindowID, KindFault, detail)
		},
		OnNavigationCommitted: func(id entity.WindowID, url string) {
			r.add(id, KindCommitted, url)
		},
	}
}

func dropDetail(ev entity.DropEvent) string {
	parts := []string{fmt.Sprintf("accepted=%t", ev.Accepted)}
	if len(ev.Payload.Files) > 0 {
		parts = append(parts, "files="+strings.Join(ev.Payload.Files, ","))
	}
	if ev.Payload.Text != "" {
		parts = append(parts, fmt.Sprintf("text=%q", ev.Payload.Text))
	}
	if len(ev.Payload.URLs) > 0 {
		parts = append(parts, "urls="+strings.Join(ev.Payload.URLs, ","))
	}
	return strings.Join(parts, " ")
}
