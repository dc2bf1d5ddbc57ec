package headless

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/domain/entity"
)

// recordingDelegate answers every navigation with decision and records
// the rest of the callbacks.
type recordingDelegate struct {
	decision  entity.NavigationDecision
	actions   []entity.NavigationAction
	commits   []string
	frames    []string
	mainFrame []bool
	failures  []error
	messages  []entity.ScriptMessage
	tasks     []port.URLSchemeTask
	stopped   []string
	drop      entity.DragOperation
	exited    int
	dropped   []entity.DropPayload
}

func (d *recordingDelegate) DecidePolicyForNavigation(a entity.NavigationAction, decide func(entity.NavigationDecision)) {
	d.actions = append(d.actions, a)
	decide(d.decision)
}
func (d *recordingDelegate) DidCommitNavigation(frame, url string, mainFrame bool) {
	d.commits = append(d.commits, url)
	d.frames = append(d.frames, frame)
	d.mainFrame = append(d.mainFrame, mainFrame)
}
func (d *recordingDelegate) DidFailNavigation(_ string, err error) { d.failures = append(d.failures, err) }
func (d *recordingDelegate) DidReceiveScriptMessage(m entity.ScriptMessage) {
	d.messages = append(d.messages, m)
}
func (d *recordingDelegate) StartURLSchemeTask(t port.URLSchemeTask) { d.tasks = append(d.tasks, t) }
func (d *recordingDelegate) StopURLSchemeTask(t port.URLSchemeTask) { d.stopped = append(d.stopped, t.ID()) }
func (d *recordingDelegate) DraggingEntered(entity.DropPayload) entity.DragOperation {
	return d.drop
}
func (d *recordingDelegate) DraggingExited() { d.exited++ }
func (d *recordingDelegate) PerformDrop(p entity.DropPayload) bool {
	d.dropped = append(d.dropped, p)
	return d.drop == entity.DragAccept
}

func newEngine(t *testing.T) (*Engine, *recordingDelegate) {
	t.Helper()
	e := NewEngine(context.Background())
	d := &recordingDelegate{}
	e.SetDelegate(d)
	return e, d
}

func TestEngine_LoadCommitsWebURLs(t *testing.T) {
	e, d := newEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Load(ctx, "https://example.com/"))
	require.Len(t, d.actions, 1)
	assert.True(t, d.actions[0].MainFrame)
	assert.Equal(t, MainFrame, d.actions[0].FrameID)
	assert.Equal(t, entity.NavigationOther, d.actions[0].Type)
	assert.Equal(t, []string{"https://example.com/"}, d.commits)
	assert.Equal(t, []bool{true}, d.mainFrame)

	require.NoError(t, e.Reload(ctx))
	assert.Equal(t, entity.NavigationReload, d.actions[1].Type)
	assert.Equal(t, "https://example.com/", d.actions[1].SourceFrameURL)
	assert.Equal(t, []string{"https://example.com/", "https://example.com/"}, e.Commits())
}

func TestEngine_CancelledNavigationDoesNotCommit(t *testing.T) {
	e, d := newEngine(t)
	d.decision = entity.NavigationCancel

	require.NoError(t, e.Load(context.Background(), "https://blocked.example/"))
	assert.Empty(t, d.commits)
	assert.Empty(t, e.CurrentURL())
	assert.Error(t, e.Reload(context.Background()), "nothing committed yet")
}

func TestEngine_NoDelegate(t *testing.T) {
	e := NewEngine(context.Background())
	assert.Error(t, e.Load(context.Background(), "https://example.com/"))
	assert.Equal(t, entity.DragReject, e.DragEnter(entity.DropPayload{}))
}

func TestEngine_SchemeLoadRunsPageScripts(t *testing.T) {
	e, d := newEngine(t)
	require.NoError(t, e.Load(context.Background(), "app://localhost/index.html"))

	require.Len(t, d.tasks, 1)
	task := d.tasks[0]
	assert.Equal(t, "app", task.Request().Scheme)
	assert.Equal(t, "/index.html", task.Request().Path)
	assert.Equal(t, 1, e.InFlight())
	assert.Empty(t, d.commits, "nothing commits before the response")

	task.DidReceiveResponse(entity.ResourceResponse{ContentType: "text/html; charset=utf-8"})
	task.DidReceiveData([]byte(`<html><script>window.webkit.messageHandlers.ready`))
	task.DidReceiveData([]byte(`.postMessage({ok: true});</script><script>
		window.webkit.messageHandlers["bye"].postMessage();
	</script></html>`))
	task.DidFinish()

	assert.Equal(t, 0, e.InFlight())
	assert.Equal(t, []string{"app://localhost/index.html"}, d.commits)
	require.Len(t, d.messages, 2)
	assert.Equal(t, "ready", d.messages[0].Name)
	assert.Equal(t, MainFrame, d.messages[0].FrameID)
	assert.JSONEq(t, `{"ok":true}`, string(d.messages[0].Payload))
	assert.Equal(t, "bye", d.messages[1].Name)
	assert.Equal(t, "null", string(d.messages[1].Payload))
}

func TestEngine_FailedSchemeLoad(t *testing.T) {
	e, d := newEngine(t)
	require.NoError(t, e.Load(context.Background(), "app://localhost/missing"))
	require.Len(t, d.tasks, 1)

	boom := errors.New("not found")
	d.tasks[0].DidFail(boom)
	assert.Equal(t, []error{boom}, d.failures)
	assert.Empty(t, d.commits)
}

func TestEngine_StoppedLoadIgnoresLateCallbacks(t *testing.T) {
	e, d := newEngine(t)

	var done int
	id, err := e.Fetch("app://localhost/data.json", func(entity.ResourceResponse, []byte, error) { done++ })
	require.NoError(t, err)
	require.Len(t, d.tasks, 1)

	e.Stop(id)
	assert.Equal(t, []string{id}, d.stopped)

	d.tasks[0].DidReceiveData([]byte("{}"))
	d.tasks[0].DidFinish()
	assert.Zero(t, done)
	assert.Equal(t, 2, e.LateCallbacks())
}

func TestEngine_MainFrameNavigationStopsPreviousNavigation(t *testing.T) {
	e, d := newEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Load(ctx, "app://localhost/slow"))
	var subDone int
	_, err := e.Fetch("app://localhost/sub.css", func(entity.ResourceResponse, []byte, error) { subDone++ })
	require.NoError(t, err)
	require.Len(t, d.tasks, 2)

	require.NoError(t, e.Load(ctx, "https://example.com/"))
	assert.Equal(t, []string{d.tasks[0].ID()}, d.stopped, "only the navigation load is stopped")
	assert.Equal(t, 1, e.InFlight())

	d.tasks[1].DidFinish()
	assert.Equal(t, 1, subDone)
}

func TestEngine_EvaluateAndSubframes(t *testing.T) {
	e, d := newEngine(t)

	require.NoError(t, e.Evaluate("child", `window.webkit.messageHandlers.ping.postMessage([1, "two"])`))
	require.Len(t, d.messages, 1)
	assert.Equal(t, "child", d.messages[0].FrameID)
	assert.JSONEq(t, `[1,"two"]`, string(d.messages[0].Payload))

	err := e.Evaluate(MainFrame, `throw new Error("nope")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evaluate in main")

	require.NoError(t, e.Navigate("child", "about:blank", entity.NavigationLinkActivated))
	assert.False(t, d.actions[0].MainFrame)
	assert.Equal(t, entity.NavigationLinkActivated, d.actions[0].Type)
	assert.Empty(t, e.CurrentURL(), "subframe commits leave the main document alone")
	assert.Equal(t, []string{"child"}, d.frames)
	assert.Equal(t, []bool{false}, d.mainFrame)
}

func TestEngine_DragAndDrop(t *testing.T) {
	e, d := newEngine(t)
	d.drop = entity.DragAccept
	payload := entity.DropPayload{Files: []string{"/tmp/a.txt"}}

	assert.Equal(t, entity.DragAccept, e.DragEnter(payload))
	assert.True(t, e.Drop(payload))
	e.DragExit()
	assert.Equal(t, 1, d.exited)
	assert.Equal(t, []entity.DropPayload{payload}, d.dropped)
}

func TestEngine_Close(t *testing.T) {
	e, d := newEngine(t)
	require.NoError(t, e.Load(context.Background(), "app://localhost/"))

	e.Close()
	e.Close()
	assert.True(t, e.Closed())
	assert.Len(t, d.stopped, 1)
	assert.ErrorIs(t, e.Load(context.Background(), "https://example.com/"), entity.ErrWindowClosed)
	assert.ErrorIs(t, e.Evaluate(MainFrame, "1"), entity.ErrWindowClosed)
	assert.False(t, e.Drop(entity.DropPayload{}))
}

func TestDecodeDataURL(t *testing.T) {
	ct, body := decodeDataURL("data:text/html;charset=utf-8,%3Cp%3Ehi%3C/p%3E")
	assert.Equal(t, "text/html", ct)
	assert.Equal(t, "<p>hi</p>", string(body))

	ct, body = decodeDataURL("data:,plain")
	assert.Equal(t, "text/plain", ct)
	assert.Equal(t, "plain", string(body))

	ct, body = decodeDataURL("data:nocomma")
	assert.Empty(t, ct)
	assert.Nil(t, body)
}

func TestIsHTML(t *testing.T) {
	assert.True(t, isHTML("TEXT/HTML", nil))
	assert.False(t, isHTML("application/json", []byte("<script>")))
	assert.True(t, isHTML("", []byte("<SCRIPT>x</SCRIPT>")))
	assert.Equal(t, []string{"a()", "b()"}, extractScripts([]byte("<script>a()</script><script type=module> b() </script><script></script>")))
}

func TestToolkit_Windows(t *testing.T) {
	tk := NewToolkit(context.Background(), DefaultScreen)
	assert.Equal(t, entity.NewRect(0, 0, 1920, 1080), tk.ScreenBounds())

	nw, err := tk.CreateWindow(context.Background(), entity.NativeWindowSpec{
		ID:        4,
		Geometry:  entity.NewRect(10, 10, 300, 200),
		StyleMask: entity.StyleDefault,
		Defer:     true,
	})
	require.NoError(t, err)
	w, ok := tk.Window(4)
	require.True(t, ok)
	assert.Same(t, nw, port.NativeWindow(w))
	assert.False(t, w.Visible(), "deferred windows start hidden")
	assert.True(t, w.ToolbarAutoHide())

	w.MakeKeyAndOrderFront()
	assert.True(t, w.Visible())

	w.SetFullscreen(true)
	assert.True(t, w.Fullscreen())
	assert.True(t, w.StyleMask().Has(entity.StyleFullScreen))
	w.SetFullscreen(false)
	assert.Equal(t, entity.StyleDefault, w.StyleMask())

	_, ok = tk.Window(5)
	assert.False(t, ok)
}

func TestWindow_Drag(t *testing.T) {
	tk := NewToolkit(context.Background(), DefaultScreen)
	nw, err := tk.CreateWindow(context.Background(), entity.NativeWindowSpec{ID: 1, Geometry: entity.NewRect(100, 100, 400, 300)})
	require.NoError(t, err)
	w := nw.(*Window)

	w.DragTo(entity.Point{X: 500, Y: 500})
	assert.Equal(t, entity.NewRect(100, 100, 400, 300), w.Frame(), "no drag in progress")

	require.NoError(t, w.PerformDrag(entity.MouseEvent{ScreenLocation: entity.Point{X: 110, Y: 110}}))
	assert.True(t, w.Dragging())
	w.DragTo(entity.Point{X: 160, Y: 90})
	assert.Equal(t, entity.NewRect(150, 80, 400, 300), w.Frame())
	w.EndDrag()
	assert.False(t, w.Dragging())
	assert.Equal(t, 1, w.DragCount())

	w.Close()
	assert.True(t, w.Closed())
	assert.ErrorIs(t, w.PerformDrag(entity.MouseEvent{}), entity.ErrWindowClosed)
}
