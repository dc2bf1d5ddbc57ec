package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/application/usecase"
	"github.com/bnema/webwindow/internal/bootstrap"
	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/infrastructure/config"
	"github.com/bnema/webwindow/internal/infrastructure/headless"
	"github.com/bnema/webwindow/internal/infrastructure/mainloop"
	"github.com/bnema/webwindow/internal/logging"
)

const defaultSettleTimeout = 5 * time.Second

// Options select the platform a scenario runs on.
type Options struct {
	// Toolkit defaults to a headless toolkit on headless.DefaultScreen.
	Toolkit port.Toolkit
	// Queue is the UI queue the toolkit posts to. Defaults to a new queue
	// owned by the run.
	Queue *mainloop.Queue
	// OnOpen is called for every window once it is open, e.g. to route
	// native input to it.
	OnOpen        func(mw *usecase.ManagedWindow)
	SettleTimeout time.Duration
}

// Result is the outcome of a replay.
type Result struct {
	Name  string  `json:"name" yaml:"name"`
	Steps int     `json:"steps" yaml:"steps"`
	Trace []Entry `json:"trace" yaml:"trace"`
}

// nativeDragger is implemented by toolkits that can simulate the pointer
// during an interactive move.
type nativeDragger interface {
	DragTo(screen entity.Point)
	EndDrag()
}

type replayer struct {
	sc       *Scenario
	opts     Options
	toolkit  port.Toolkit
	queue    *mainloop.Queue
	app      *bootstrap.App
	rec      *Recorder
	engines  map[entity.WindowID]*headless.Engine
	consumed *bool
	logger   zerolog.Logger
}

// Run replays sc on the calling goroutine, which acts as the UI thread.
// Content is served by headless engines whatever the toolkit.
func Run(ctx context.Context, sc *Scenario, opts Options) (*Result, error) {
	if opts.SettleTimeout <= 0 {
		opts.SettleTimeout = defaultSettleTimeout
	}
	r := &replayer{
		sc:      sc,
		opts:    opts,
		toolkit: opts.Toolkit,
		queue:   opts.Queue,
		rec:     NewRecorder(),
		engines: make(map[entity.WindowID]*headless.Engine),
		logger:  logging.FromContext(ctx).With().Str("component", "scenario").Str("scenario", sc.Name).Logger(),
	}
	if r.toolkit == nil {
		r.toolkit = headless.NewToolkit(ctx, headless.DefaultScreen)
	}
	if r.queue == nil {
		r.queue = mainloop.NewQueue()
		r.queue.SetLogger(r.logger)
		defer r.queue.Close()
	}

	app, err := bootstrap.New(ctx, sc.Config, bootstrap.Options{
		Toolkit:   r.toolkit,
		Engines:   r.newEngine,
		Queue:     r.queue,
		Callbacks: r.rec.Callbacks(sc.AcceptDrops),
	})
	if err != nil {
		return nil, err
	}
	r.app = app
	defer func() {
		if err := app.Close(); err != nil {
			r.logger.Warn().Err(err).Msg("close scenario app")
		}
	}()

	opened, err := app.OpenWindows(ctx, sc.Config)
	for _, mw := range opened {
		r.opened(mw)
	}
	if err != nil {
		return nil, err
	}
	if err := r.settle(); err != nil {
		return nil, err
	}

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.rec.SetStep(i + 1)
		r.consumed = nil
		if err := r.apply(ctx, step); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Do, err)
		}
		if err := r.settle(); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Do, err)
		}
		if step.Expect != nil {
			if err := r.check(step, *step.Expect); err != nil {
				return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Do, err)
			}
		}
		r.logger.Debug().Int("step", i+1).Str("do", step.Do).Str("window", step.Window).Msg("step replayed")
	}

	return &Result{Name: sc.Name, Steps: len(sc.Steps), Trace: r.rec.Entries()}, nil
}

func (r *replayer) newEngine(ctx context.Context, id entity.WindowID) (port.ContentEngine, error) {
	e := headless.NewEngine(ctx)
	r.engines[id] = e
	return e, nil
}

func (r *replayer) opened(mw *usecase.ManagedWindow) {
	r.rec.Name(mw.ID(), mw.Window.Name())
	if r.opts.OnOpen != nil {
		r.opts.OnOpen(mw)
	}
}

// settle runs the UI queue until it is empty and no scheme load is in
// flight.
func (r *replayer) settle() error {
	deadline := time.Now().Add(r.opts.SettleTimeout)
	for {
		ran := r.queue.RunPending()
		if ran == 0 && r.idle() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("did not settle within %s", r.opts.SettleTimeout)
		}
		if ran == 0 {
			time.Sleep(time.Millisecond)
		}
	}
}

func (r *replayer) idle() bool {
	if r.queue.Len() > 0 {
		return false
	}
	for _, mw := range r.app.Manager.Windows() {
		if mw.Bridge.InFlight() > 0 {
			return false
		}
	}
	return true
}

func (r *replayer) window(name string) (*usecase.ManagedWindow, error) {
	mw, ok := r.app.Manager.ByName(name)
	if !ok {
		return nil, fmt.Errorf("window %q: %w", name, entity.ErrWindowClosed)
	}
	return mw, nil
}

func (r *replayer) apply(ctx context.Context, s Step) error {
	if s.Do == ActionOpen {
		cfg := config.Config{Window: *s.Open}
		config.Normalize(&cfg)
		mw, err := r.app.OpenWindow(ctx, cfg.Window)
		if err != nil {
			return err
		}
		r.opened(mw)
		return nil
	}
	if s.Do == ActionExpect {
		return nil
	}

	mw, err := r.window(s.Window)
	if err != nil {
		return err
	}
	w := mw.Window
	engine := r.engines[mw.ID()]
	frame := s.Frame
	if frame == "" {
		frame = headless.MainFrame
	}

	switch s.Do {
	case ActionClose:
		return r.app.Manager.Close(mw.ID())
	case ActionShow:
		w.Show()
	case ActionCenter:
		w.Center()
	case ActionFocus:
		w.DidBecomeKey()
		w.DidBecomeMain()
	case ActionBlur:
		w.DidResignKey()
		w.DidResignMain()
	case ActionMouseDown:
		consumed := w.MouseDown(r.mouseEvent(entity.MouseDown, s, w.Frame()))
		r.consumed = &consumed
	case ActionMouseUp:
		ev := r.mouseEvent(entity.MouseUp, s, w.Frame())
		w.MouseUp(ev)
		if d, ok := r.native(mw).(nativeDragger); ok && ev.Button == entity.MouseLeft {
			d.EndDrag()
		}
	case ActionDragTo:
		d, ok := r.native(mw).(nativeDragger)
		if !ok {
			return errors.New("toolkit cannot simulate pointer moves")
		}
		d.DragTo(point(s.Screen))
	case ActionKey:
		acc, err := entity.ParseAccelerator(s.Key)
		if err != nil {
			return err
		}
		consumed := w.HandleKeyDown(entity.KeyEvent{Key: acc.Key, Modifiers: acc.Modifiers})
		r.consumed = &consumed
	case ActionFrameless:
		if s.On == nil {
			w.SetFrameless(!w.Chrome().Frameless())
		} else {
			w.SetFrameless(*s.On)
		}
	case ActionFullscreen:
		switch {
		case s.On == nil:
			w.ToggleFullscreen()
		case *s.On:
			w.EnterFullscreen()
		default:
			w.ExitFullscreen()
		}
	case ActionTitleBar:
		w.SetInvisibleTitleBarHeight(s.Height)
	case ActionLoad:
		return mw.Bridge.Load(ctx, s.URL)
	case ActionReload:
		return mw.Bridge.Reload(ctx)
	case ActionNavigate:
		if engine == nil {
			return errNoContent
		}
		return engine.Navigate(frame, s.URL, entity.NavigationLinkActivated)
	case ActionMessage:
		if engine == nil {
			return errNoContent
		}
		src, err := postMessageScript(s.Name, s.Payload)
		if err != nil {
			return err
		}
		return engine.Evaluate(frame, src)
	case ActionScript:
		if engine == nil {
			return errNoContent
		}
		return engine.Evaluate(frame, s.Script)
	case ActionDragEnter:
		if engine == nil {
			return errNoContent
		}
		engine.DragEnter(r.dropPayload(s))
	case ActionDragExit:
		if engine == nil {
			return errNoContent
		}
		engine.DragExit()
	case ActionDrop:
		if engine == nil {
			return errNoContent
		}
		engine.Drop(r.dropPayload(s))
	default:
		return errors.New("unknown action")
	}
	return nil
}

var errNoContent = errors.New("window has no content engine")

func (r *replayer) native(mw *usecase.ManagedWindow) port.NativeWindow {
	if t, ok := r.toolkit.(*headless.Toolkit); ok {
		if w, ok := t.Window(mw.ID()); ok {
			return w
		}
	}
	return nil
}

// mouseEvent builds a mouse event at s.At. The screen location defaults to
// the window origin plus the content location.
func (r *replayer) mouseEvent(kind entity.MouseEventType, s Step, frame entity.Rect) entity.MouseEvent {
	button, _ := parseButton(s.Button)
	loc := point(s.At)
	screen := entity.Point{X: frame.Origin.X + loc.X, Y: frame.Origin.Y + loc.Y}
	if s.Screen != nil {
		screen = point(s.Screen)
	}
	return entity.MouseEvent{
		Type:           kind,
		Button:         button,
		Location:       loc,
		ScreenLocation: screen,
		ClickCount:     1,
		Timestamp:      time.Now(),
	}
}

func (r *replayer) dropPayload(s Step) entity.DropPayload {
	return entity.DropPayload{
		Location: point(s.At),
		Files:    s.Files,
		Text:     s.Text,
		URLs:     s.URLs,
	}
}

// postMessageScript returns the page script posting payload to the named
// message handler.
func postMessageScript(name string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	handler, err := json.Marshal(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("window.webkit.messageHandlers[%s].postMessage(%s);", handler, body), nil
}

func (r *replayer) check(s Step, e Expect) error {
	var problems []string
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}
	boolCheck := func(what string, want *bool, got bool) {
		if want != nil && *want != got {
			fail("%s = %t, want %t", what, got, *want)
		}
	}

	if e.Consumed != nil {
		if r.consumed == nil {
			fail("consumed is only reported by mouse-down and key steps")
		} else {
			boolCheck("consumed", e.Consumed, *r.consumed)
		}
	}

	name := s.Window
	if s.Do == ActionOpen {
		name = s.Open.Name
	}
	mw, open := r.app.Manager.ByName(name)
	boolCheck("closed", e.Closed, !open)
	if !open {
		if e.Closed == nil {
			fail("window %q is closed", name)
		}
		return joinProblems(problems)
	}

	w := mw.Window
	chrome := w.Chrome()
	boolCheck("frameless", e.Frameless, chrome.Frameless())
	boolCheck("fullscreen", e.Fullscreen, chrome.Fullscreen)
	boolCheck("key", e.Key, w.IsKey())
	boolCheck("main", e.Main, w.IsMain())

	if e.Frame != nil {
		want := entity.NewRect(e.Frame[0], e.Frame[1], e.Frame[2], e.Frame[3])
		if got := w.Frame(); got != want {
			fail("frame = %s, want %s", got, want)
		}
	}
	if e.Style != nil {
		want, _ := entity.ParseStyleMask(e.Style)
		if got := w.StyleMask(); got != want {
			fail("style = %s, want %s", got, want)
		}
	}
	surface := mw.Bridge.Surface()
	if e.URL != "" && surface.CurrentURL != e.URL {
		fail("url = %q, want %q", surface.CurrentURL, e.URL)
	}
	if e.Regions != nil && len(surface.Regions) != *e.Regions {
		fail("regions = %d, want %d", len(surface.Regions), *e.Regions)
	}
	return joinProblems(problems)
}

func joinProblems(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("expectation failed: %s", strings.Join(problems, "; "))
}
