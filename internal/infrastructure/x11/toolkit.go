// Package x11 implements the toolkit port on an X11 display through
// xgbutil: Motif hints for the style mask, EWMH for fullscreen, window
// type and interactive moves.
package x11

import (
	"context"
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/rs/zerolog"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/logging"
)

// Toolkit creates top-level X11 windows. X events are read on the
// goroutine running Run and posted to the scheduler.
type Toolkit struct {
	xu     *xgbutil.XUtil
	root   xproto.Window
	sched  port.Scheduler
	mu     sync.Mutex
	wins   map[entity.WindowID]*Window
	logger zerolog.Logger
}

var _ port.Toolkit = (*Toolkit)(nil)

// NewToolkit connects to $DISPLAY.
func NewToolkit(ctx context.Context, sched port.Scheduler) (*Toolkit, error) {
	if sched == nil {
		return nil, fmt.Errorf("x11: scheduler is nil")
	}
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: connect: %w", err)
	}
	keybind.Initialize(xu)

	return &Toolkit{
		xu:     xu,
		root:   xu.RootWin(),
		sched:  sched,
		wins:   make(map[entity.WindowID]*Window),
		logger: logging.FromContext(ctx).With().Str("component", "x11-toolkit").Logger(),
	}, nil
}

// CreateWindow implements port.Toolkit.
func (t *Toolkit) CreateWindow(_ context.Context, spec entity.NativeWindowSpec) (port.NativeWindow, error) {
	win, err := xwindow.Generate(t.xu)
	if err != nil {
		return nil, fmt.Errorf("x11: allocate window id: %w", err)
	}

	const eventMask = xproto.EventMaskStructureNotify | xproto.EventMaskFocusChange |
		xproto.EventMaskKeyPress | xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease |
		xproto.EventMaskPointerMotion
	// Value list order follows the bit positions of the mask.
	err = win.CreateChecked(t.root,
		int(spec.Geometry.Origin.X), int(spec.Geometry.Origin.Y),
		clampSize(spec.Geometry.Size.Width), clampSize(spec.Geometry.Size.Height),
		xproto.CwBackPixel|xproto.CwBackingStore|xproto.CwEventMask,
		0xffffff, backingStore(spec.Backing), eventMask,
	)
	if err != nil {
		return nil, fmt.Errorf("x11: create window: %w", err)
	}

	w := &Window{
		toolkit:  t,
		win:      win,
		spec:     spec,
		mask:     spec.StyleMask,
		frame:    spec.Geometry,
		autoHide: true,
	}
	w.applyIdentity()
	w.SetStyleMask(spec.StyleMask)
	w.connectEvents()
	if !spec.Defer {
		win.Map()
		w.mapped = true
	}

	t.mu.Lock()
	t.wins[spec.ID] = w
	t.mu.Unlock()

	t.logger.Debug().
		Uint32("window_id", uint32(spec.ID)).
		Uint32("xid", uint32(win.Id)).
		Str("category", spec.Category.String()).
		Msg("native window created")
	return w, nil
}

// ScreenBounds implements port.Toolkit. It prefers the EWMH work area of
// the current desktop and falls back to the root window geometry.
func (t *Toolkit) ScreenBounds() entity.Rect {
	if areas, err := ewmh.WorkareaGet(t.xu); err == nil && len(areas) > 0 {
		idx := 0
		if cur, err := ewmh.CurrentDesktopGet(t.xu); err == nil && int(cur) < len(areas) {
			idx = int(cur)
		}
		a := areas[idx]
		return entity.NewRect(float64(a.X), float64(a.Y), float64(a.Width), float64(a.Height))
	}
	g := xwindow.RootGeometry(t.xu)
	return entity.NewRect(float64(g.X()), float64(g.Y()), float64(g.Width()), float64(g.Height()))
}

// Bind routes X events of the window with id to h.
func (t *Toolkit) Bind(id entity.WindowID, h Handlers) bool {
	t.mu.Lock()
	w, ok := t.wins[id]
	t.mu.Unlock()
	if !ok {
		return false
	}
	w.setHandlers(h)
	return true
}

// Run reads X events until ctx is done.
func (t *Toolkit) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		xevent.Quit(t.xu)
	}()
	xevent.Main(t.xu)
}

// Close disconnects from the X server.
func (t *Toolkit) Close() {
	t.xu.Conn().Close()
}

func (t *Toolkit) forget(id entity.WindowID) {
	t.mu.Lock()
	delete(t.wins, id)
	t.mu.Unlock()
}
