package headless

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/logging"
	"github.com/google/uuid"
	"github.com/grafana/sobek"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// MainFrame is the frame id of the top-level document.
const MainFrame = "main"

var inlineScriptPattern = regexp.MustCompile(`(?is)<script[^>]*>(.*?)</script>`)

// scriptPrelude exposes the message handler bridge to page scripts.
const scriptPrelude = `
var window = this;
window.webkit = {
  messageHandlers: new Proxy({}, {
    get: function (target, name) {
      return {
        postMessage: function (body) {
          __webwindowPost(String(name), JSON.stringify(body === undefined ? null : body));
        }
      };
    }
  })
};
`

// Engine is a headless content engine. It runs no layout or network
// stack: custom schemes are served through the delegate, http(s) and
// about URLs commit empty documents, and inline scripts of HTML responses
// run in a sobek VM per frame.
//
// Engine methods must be called on the UI thread.
type Engine struct {
	ctx      context.Context
	delegate port.ContentDelegate
	frames   map[string]*sobek.Runtime
	loads    map[string]*schemeLoad

	currentURL string
	commits    []string
	late       int
	closed     bool

	logger zerolog.Logger
}

var _ port.ContentEngine = (*Engine)(nil)

// NewEngine creates an engine with no delegate.
func NewEngine(ctx context.Context) *Engine {
	return &Engine{
		ctx:    ctx,
		frames: make(map[string]*sobek.Runtime),
		loads:  make(map[string]*schemeLoad),
		logger: logging.FromContext(ctx).With().Str("component", "headless-engine").Logger(),
	}
}

// SetDelegate implements port.ContentEngine.
func (e *Engine) SetDelegate(d port.ContentDelegate) { e.delegate = d }

// Load implements port.ContentEngine.
func (e *Engine) Load(_ context.Context, rawURL string) error {
	return e.navigate(MainFrame, rawURL, entity.NavigationOther)
}

// Reload implements port.ContentEngine.
func (e *Engine) Reload(_ context.Context) error {
	if e.currentURL == "" {
		return errors.New("nothing to reload")
	}
	return e.navigate(MainFrame, e.currentURL, entity.NavigationReload)
}

// Navigate starts a navigation of frame triggered as navType.
func (e *Engine) Navigate(frame, rawURL string, navType entity.NavigationType) error {
	return e.navigate(frame, rawURL, navType)
}

func (e *Engine) navigate(frame, rawURL string, navType entity.NavigationType) error {
	if e.closed {
		return entity.ErrWindowClosed
	}
	if e.delegate == nil {
		return errors.New("no delegate installed")
	}
	if _, err := url.Parse(rawURL); err != nil {
		return fmt.Errorf("parse url: %w", err)
	}

	action := entity.NavigationAction{
		URL:            rawURL,
		Type:           navType,
		MainFrame:      frame == MainFrame,
		FrameID:        frame,
		SourceFrameURL: e.currentURL,
	}
	e.delegate.DecidePolicyForNavigation(action, func(d entity.NavigationDecision) {
		if e.closed {
			return
		}
		if d != entity.NavigationAllow {
			e.logger.Debug().Str("url", rawURL).Msg("navigation cancelled")
			return
		}
		e.startLoad(frame, rawURL)
	})
	return nil
}

func (e *Engine) startLoad(frame, rawURL string) {
	if frame == MainFrame {
		e.stopLoads(func(l *schemeLoad) bool { return l.navigation })
	}

	scheme := entity.SchemeOf(rawURL)
	switch scheme {
	case "http", "https", "about", "file", "blob", "javascript":
		e.commit(frame, rawURL, "", nil)
		return
	case "data":
		contentType, body := decodeDataURL(rawURL)
		e.commit(frame, rawURL, contentType, body)
		return
	}

	e.fetch(rawURL, true, func(resp entity.ResourceResponse, body []byte, err error) {
		if err != nil {
			e.delegate.DidFailNavigation(rawURL, err)
			return
		}
		e.commit(frame, rawURL, resp.ContentType, body)
	})
}

// Fetch loads a subresource through the delegate's scheme handlers.
// done runs on the UI thread when the load finishes or fails; it never runs
// for a stopped load.
func (e *Engine) Fetch(rawURL string, done func(resp entity.ResourceResponse, body []byte, err error)) (string, error) {
	if e.closed {
		return "", entity.ErrWindowClosed
	}
	if e.delegate == nil {
		return "", errors.New("no delegate installed")
	}
	return e.fetch(rawURL, false, done), nil
}

func (e *Engine) fetch(rawURL string, navigation bool, done func(entity.ResourceResponse, []byte, error)) string {
	id := uuid.NewString()
	req, err := entity.NewResourceRequest(id, 0, rawURL, "")
	if err != nil {
		done(entity.ResourceResponse{}, nil, err)
		return id
	}
	load := &schemeLoad{engine: e, id: id, request: req, navigation: navigation, done: done}
	e.loads[id] = load
	e.delegate.StartURLSchemeTask(load)
	return id
}

// Stop cancels an in-flight load started by Fetch.
func (e *Engine) Stop(id string) {
	e.stopLoads(func(l *schemeLoad) bool { return l.id == id })
}

func (e *Engine) stopLoads(match func(*schemeLoad) bool) {
	for id, l := range e.loads {
		if !match(l) {
			continue
		}
		l.stopped = true
		delete(e.loads, id)
		if e.delegate != nil {
			e.delegate.StopURLSchemeTask(l)
		}
	}
}

func (e *Engine) commit(frame, rawURL, contentType string, body []byte) {
	if frame == MainFrame {
		e.currentURL = rawURL
		e.commits = append(e.commits, rawURL)
		clear(e.frames)
	} else {
		delete(e.frames, frame)
	}
	e.delegate.DidCommitNavigation(frame, rawURL, frame == MainFrame)

	if isHTML(contentType, body) {
		e.runScripts(frame, extractScripts(body))
	}
}

// Evaluate runs src in frame's script context.
func (e *Engine) Evaluate(frame, src string) error {
	if e.closed {
		return entity.ErrWindowClosed
	}
	vm, err := e.runtime(frame)
	if err != nil {
		return err
	}
	if _, err := vm.RunString(src); err != nil {
		return fmt.Errorf("evaluate in %s: %w", frame, err)
	}
	return nil
}

// runScripts compiles a document's scripts concurrently, then runs them in
// document order on the frame's VM.
func (e *Engine) runScripts(frame string, sources []string) {
	if len(sources) == 0 {
		return
	}
	programs := make([]*sobek.Program, len(sources))
	g, _ := errgroup.WithContext(e.ctx)
	for i, src := range sources {
		i, src := i, src // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			p, err := sobek.Compile(fmt.Sprintf("%s#script%d", frame, i), src, false)
			if err != nil {
				return err
			}
			programs[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Warn().Err(err).Str("frame", frame).Msg("page script failed to compile")
		return
	}

	vm, err := e.runtime(frame)
	if err != nil {
		e.logger.Warn().Err(err).Msg("script context unavailable")
		return
	}
	for _, p := range programs {
		if e.closed {
			return
		}
		if _, err := vm.RunProgram(p); err != nil {
			e.logger.Warn().Err(err).Str("frame", frame).Msg("page script threw")
		}
	}
}

func (e *Engine) runtime(frame string) (*sobek.Runtime, error) {
	if vm, ok := e.frames[frame]; ok {
		return vm, nil
	}
	vm := sobek.New()
	post := func(call sobek.FunctionCall) sobek.Value {
		if e.closed || e.delegate == nil {
			return sobek.Undefined()
		}
		e.delegate.DidReceiveScriptMessage(entity.ScriptMessage{
			FrameID: frame,
			Name:    call.Argument(0).String(),
			Payload: json.RawMessage(call.Argument(1).String()),
		})
		return sobek.Undefined()
	}
	if err := vm.Set("__webwindowPost", post); err != nil {
		return nil, err
	}
	if _, err := vm.RunString(scriptPrelude); err != nil {
		return nil, fmt.Errorf("install script bridge: %w", err)
	}
	e.frames[frame] = vm
	return vm, nil
}

// DragEnter simulates content dragged over the surface.
func (e *Engine) DragEnter(payload entity.DropPayload) entity.DragOperation {
	if e.closed || e.delegate == nil {
		return entity.DragReject
	}
	return e.delegate.DraggingEntered(payload)
}

// DragExit simulates the drag leaving the surface.
func (e *Engine) DragExit() {
	if e.closed || e.delegate == nil {
		return
	}
	e.delegate.DraggingExited()
}

// Drop simulates releasing the drag over the surface.
func (e *Engine) Drop(payload entity.DropPayload) bool {
	if e.closed || e.delegate == nil {
		return false
	}
	return e.delegate.PerformDrop(payload)
}

// Close implements port.ContentEngine. Loads still in flight are stopped.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.stopLoads(func(*schemeLoad) bool { return true })
	for _, vm := range e.frames {
		vm.Interrupt(entity.ErrWindowClosed)
	}
	e.frames = map[string]*sobek.Runtime{}
	e.closed = true
	e.logger.Debug().Msg("engine closed")
}

// CurrentURL returns the committed main-frame URL.
func (e *Engine) CurrentURL() string { return e.currentURL }

// Commits returns the committed main-frame URLs in order.
func (e *Engine) Commits() []string { return append([]string(nil), e.commits...) }

// InFlight returns the number of loads awaiting an answer.
func (e *Engine) InFlight() int { return len(e.loads) }

// LateCallbacks counts task callbacks received after a load was stopped or
// the engine closed. A real engine treats these as fatal.
func (e *Engine) LateCallbacks() int { return e.late }

// Closed reports whether Close was called.
func (e *Engine) Closed() bool { return e.closed }

// schemeLoad is the engine side of one custom-scheme load.
type schemeLoad struct {
	engine     *Engine
	id         string
	request    entity.ResourceRequest
	navigation bool
	done       func(entity.ResourceResponse, []byte, error)

	response entity.ResourceResponse
	body     bytes.Buffer
	answered bool
	stopped  bool
	finished bool
}

var _ port.URLSchemeTask = (*schemeLoad)(nil)

func (l *schemeLoad) ID() string { return l.id }

func (l *schemeLoad) Request() entity.ResourceRequest { return l.request }

func (l *schemeLoad) DidReceiveResponse(resp entity.ResourceResponse) {
	if !l.accepting() {
		return
	}
	l.response = resp
	l.answered = true
}

func (l *schemeLoad) DidReceiveData(chunk []byte) {
	if !l.accepting() {
		return
	}
	l.body.Write(chunk)
}

func (l *schemeLoad) DidFinish() {
	if !l.accepting() {
		return
	}
	l.finished = true
	delete(l.engine.loads, l.id)
	l.done(l.response, l.body.Bytes(), nil)
}

func (l *schemeLoad) DidFail(err error) {
	if !l.accepting() {
		return
	}
	l.finished = true
	delete(l.engine.loads, l.id)
	l.done(entity.ResourceResponse{}, nil, err)
}

func (l *schemeLoad) accepting() bool {
	if l.stopped || l.finished || l.engine.closed {
		l.engine.late++
		l.engine.logger.Warn().Str("task", l.id).Msg("callback on inactive scheme task")
		return false
	}
	return true
}

func extractScripts(body []byte) []string {
	matches := inlineScriptPattern.FindAllSubmatch(body, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if src := strings.TrimSpace(string(m[1])); src != "" {
			out = append(out, src)
		}
	}
	return out
}

func isHTML(contentType string, body []byte) bool {
	if contentType != "" {
		return strings.HasPrefix(strings.ToLower(contentType), "text/html")
	}
	return bytes.Contains(bytes.ToLower(body), []byte("<script"))
}

// decodeDataURL supports the percent-encoded form used by tests and
// scenarios: data:[<mediatype>],<text>.
func decodeDataURL(raw string) (string, []byte) {
	rest := strings.TrimPrefix(raw, "data:")
	meta, data, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil
	}
	text, err := url.PathUnescape(data)
	if err != nil {
		text = data
	}
	contentType := strings.Split(meta, ";")[0]
	if contentType == "" {
		contentType = "text/plain"
	}
	return contentType, []byte(text)
}
