package bridge_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/bnema/webwindow/internal/application/bridge"
	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/application/port/mocks"
	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/infrastructure/headless"
	"github.com/bnema/webwindow/internal/infrastructure/mainloop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	faults   []entity.ContentFault
	messages []entity.ScriptMessage
	drops    []entity.DropEvent
	commits  []string
}

type fakeWindow struct {
	id     entity.WindowID
	chrome entity.ChromeState
	drags  int
}

func (w *fakeWindow) ID() entity.WindowID { return w.id }

func (w *fakeWindow) Chrome() entity.ChromeState { return w.chrome }

func (w *fakeWindow) StartDrag() bool {
	w.drags++
	return true
}

type fixture struct {
	queue  *mainloop.Queue
	engine *headless.Engine
	bridge *bridge.Bridge
	window *fakeWindow
	rec    *recorder
}

func newFixture(t *testing.T, mutate func(*bridge.Options)) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{
		queue:  mainloop.NewQueue(),
		engine: headless.NewEngine(ctx),
		window: &fakeWindow{id: 7},
		rec:    &recorder{},
	}
	opts := bridge.Options{
		Scheduler: f.queue,
		Engine:    f.engine,
		Window:    f.window,
		Callbacks: port.ShellCallbacks{
			OnContentFault:  func(fault entity.ContentFault) { f.rec.faults = append(f.rec.faults, fault) },
			OnScriptMessage: func(msg entity.ScriptMessage) { f.rec.messages = append(f.rec.messages, msg) },
			OnDropEvent:     func(ev entity.DropEvent) { f.rec.drops = append(f.rec.drops, ev) },
			OnNavigationCommitted: func(_ entity.WindowID, url string) {
				f.rec.commits = append(f.rec.commits, url)
			},
		},
	}
	if mutate != nil {
		mutate(&opts)
	}
	b, err := bridge.New(ctx, f.window.id, opts)
	require.NoError(t, err)
	f.bridge = b
	return f
}

func staticPage(body string) bridge.HandlerFunc {
	return func(_ context.Context, _ entity.ResourceRequest) (*entity.ResourceResponse, error) {
		return &entity.ResourceResponse{ContentType: "text/html", Data: []byte(body)}, nil
	}
}

func TestNew_RequiresScheduler(t *testing.T) {
	_, err := bridge.New(context.Background(), 1, bridge.Options{})
	require.ErrorIs(t, err, entity.ErrConfiguration)
}

func TestRegisterSchemeHandler_Validation(t *testing.T) {
	f := newFixture(t, nil)
	h := staticPage("")

	tests := []struct {
		name    string
		scheme  string
		handler port.SchemeHandler
		wantErr bool
	}{
		{"custom scheme", "app", h, false},
		{"trailing separator", "wails://", h, false},
		{"upper case is normalized", "Assets", h, false},
		{"builtin http", "http", h, true},
		{"builtin file", "file", h, true},
		{"empty", "", h, true},
		{"starts with digit", "1app", h, true},
		{"space", "my app", h, true},
		{"nil handler", "other", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.bridge.RegisterSchemeHandler(tt.scheme, tt.handler)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidScheme)
				return
			}
			require.NoError(t, err)
		})
	}

	assert.Equal(t, []string{"app", "assets", "wails"}, f.bridge.Schemes())
}

func TestRegisterSchemeHandler_ReplacesPriorHandler(t *testing.T) {
	f := newFixture(t, nil)
	first := mocks.NewMockSchemeHandler(t)
	second := mocks.NewMockSchemeHandler(t)
	second.EXPECT().Start(mock.Anything, mock.Anything).Run(func(_ context.Context, task port.SchemeTask) {
		task.Respond(&entity.ResourceResponse{Data: []byte("second")})
	}).Once()

	require.NoError(t, f.bridge.RegisterSchemeHandler("app", first))
	require.NoError(t, f.bridge.RegisterSchemeHandler("app", second))

	require.NoError(t, f.bridge.Load(context.Background(), "app://index.html"))
	f.queue.RunPending()

	assert.Equal(t, []string{"app://index.html"}, f.rec.commits)
}

func TestNavigation_UnregisteredSchemeFailsFast(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.bridge.RegisterSchemeHandler("app", mocks.NewMockSchemeHandler(t)))

	require.NoError(t, f.bridge.Load(context.Background(), "nope://index.html"))
	f.queue.RunPending()

	require.Len(t, f.rec.faults, 1)
	fault := f.rec.faults[0]
	assert.Equal(t, entity.FaultSchemeNotRegistered, fault.Kind)
	assert.Equal(t, "nope", fault.Scheme)
	assert.Equal(t, entity.WindowID(7), fault.WindowID)
	assert.ErrorIs(t, fault.Err, entity.ErrSchemeNotRegistered)
	assert.Empty(t, f.engine.Commits(), "no content load")
	assert.Empty(t, f.rec.commits)
}

func TestSchemeTask_UnregisteredSubresourceFails(t *testing.T) {
	f := newFixture(t, nil)

	var gotErr error
	_, err := f.engine.Fetch("img://logo.png", func(_ entity.ResourceResponse, _ []byte, err error) { gotErr = err })
	require.NoError(t, err)

	assert.ErrorIs(t, gotErr, entity.ErrSchemeNotRegistered)
	require.Len(t, f.rec.faults, 1)
	assert.Equal(t, entity.FaultSchemeNotRegistered, f.rec.faults[0].Kind)
}

func TestSchemeTask_FailsEngineTask(t *testing.T) {
	f := newFixture(t, nil)
	req, err := entity.NewResourceRequest("t1", 0, "nope://localhost/logo.png", "")
	require.NoError(t, err)

	task := mocks.NewMockURLSchemeTask(t)
	task.EXPECT().ID().Return("t1").Maybe()
	task.EXPECT().Request().Return(req)
	task.EXPECT().DidFail(mock.MatchedBy(func(err error) bool {
		return errors.Is(err, entity.ErrSchemeNotRegistered)
	})).Once()

	f.bridge.StartURLSchemeTask(task)

	require.Len(t, f.rec.faults, 1)
	assert.Equal(t, "nope", f.rec.faults[0].Scheme)

	closed := mocks.NewMockURLSchemeTask(t)
	closed.EXPECT().ID().Return("t2").Maybe()
	closed.EXPECT().Request().Return(req)
	closed.EXPECT().DidFail(entity.ErrWindowClosed).Once()

	f.bridge.Teardown()
	f.bridge.StartURLSchemeTask(closed)
	assert.Len(t, f.rec.faults, 1)
}

func TestScheme_AppIndexScenario(t *testing.T) {
	f := newFixture(t, nil)
	handler := mocks.NewMockSchemeHandler(t)

	var started []entity.ResourceRequest
	handler.EXPECT().Start(mock.Anything, mock.Anything).Run(func(_ context.Context, task port.SchemeTask) {
		started = append(started, task.Request())
	}).Once()
	require.NoError(t, f.bridge.RegisterSchemeHandler("app", handler))

	require.NoError(t, f.bridge.Load(context.Background(), "app://index.html"))
	f.queue.RunPending()

	require.Len(t, started, 1)
	assert.Equal(t, "app://index.html", started[0].URL)
	assert.Equal(t, "app", started[0].Scheme)
	assert.Equal(t, "/index.html", started[0].Path)
	assert.Equal(t, entity.WindowID(7), started[0].WindowID)
	handler.AssertNotCalled(t, "Stop", mock.Anything)

	handler.EXPECT().Stop(mock.Anything).Once()
	f.bridge.Teardown()

	assert.Zero(t, f.bridge.InFlight())
	assert.True(t, f.engine.Closed())
}

func TestScheme_SupersededLoadIsStopped(t *testing.T) {
	f := newFixture(t, nil)
	handler := mocks.NewMockSchemeHandler(t)

	var tasks []port.SchemeTask
	handler.EXPECT().Start(mock.Anything, mock.Anything).Run(func(_ context.Context, task port.SchemeTask) {
		tasks = append(tasks, task)
	}).Times(2)
	handler.EXPECT().Stop(mock.Anything).Run(func(task port.SchemeTask) {
		assert.Equal(t, tasks[0].ID(), task.ID())
	}).Once()
	require.NoError(t, f.bridge.RegisterSchemeHandler("app", handler))

	require.NoError(t, f.bridge.Load(context.Background(), "app://slow.html"))
	require.NoError(t, f.bridge.Load(context.Background(), "app://fast.html"))

	tasks[0].Respond(&entity.ResourceResponse{Data: []byte("late")})
	tasks[1].Respond(&entity.ResourceResponse{Data: []byte("fresh")})
	f.queue.RunPending()

	assert.Equal(t, []string{"app://fast.html"}, f.rec.commits)
	assert.Zero(t, f.engine.LateCallbacks())
}

func TestScheme_OnlyFirstAnswerCounts(t *testing.T) {
	f := newFixture(t, nil)
	handler := mocks.NewMockSchemeHandler(t)
	handler.EXPECT().Start(mock.Anything, mock.Anything).Run(func(_ context.Context, task port.SchemeTask) {
		task.Respond(&entity.ResourceResponse{Data: []byte("one")})
		task.Fail(errors.New("ignored"))
		task.Respond(&entity.ResourceResponse{Data: []byte("two")})
	}).Once()
	require.NoError(t, f.bridge.RegisterSchemeHandler("app", handler))

	require.NoError(t, f.bridge.Load(context.Background(), "app://index.html"))
	f.queue.RunPending()

	assert.Equal(t, []string{"app://index.html"}, f.rec.commits)
	assert.Empty(t, f.rec.faults)
	assert.Zero(t, f.engine.LateCallbacks())
}

func TestScheme_HandlerPanicBecomesFailedLoad(t *testing.T) {
	f := newFixture(t, nil)
	handler := mocks.NewMockSchemeHandler(t)
	handler.EXPECT().Start(mock.Anything, mock.Anything).Run(func(context.Context, port.SchemeTask) {
		panic("boom")
	}).Once()
	require.NoError(t, f.bridge.RegisterSchemeHandler("app", handler))

	require.NotPanics(t, func() {
		require.NoError(t, f.bridge.Load(context.Background(), "app://index.html"))
		f.queue.RunPending()
	})

	require.Len(t, f.rec.faults, 1, "reported once, not again as a navigation failure")
	fault := f.rec.faults[0]
	assert.Equal(t, entity.FaultHandler, fault.Kind)
	assert.ErrorIs(t, fault.Err, entity.ErrHandlerFault)

	var hf *entity.HandlerFault
	require.ErrorAs(t, fault.Err, &hf)
	assert.Equal(t, "boom", hf.Panic)
	assert.Empty(t, f.rec.commits)
	assert.Zero(t, f.bridge.InFlight())
}

func TestScheme_HandlerErrorBecomesFailedLoad(t *testing.T) {
	f := newFixture(t, nil)
	cause := errors.New("disk gone")
	require.NoError(t, f.bridge.RegisterSchemeHandler("app", bridge.HandlerFunc(
		func(context.Context, entity.ResourceRequest) (*entity.ResourceResponse, error) {
			return nil, cause
		})))

	require.NoError(t, f.bridge.Load(context.Background(), "app://index.html"))
	f.queue.RunPending()

	require.Len(t, f.rec.faults, 1)
	assert.ErrorIs(t, f.rec.faults[0].Err, cause)
	assert.ErrorIs(t, f.rec.faults[0].Err, entity.ErrHandlerFault)
}

func TestScheme_BackgroundResponseIsDeliveredOnQueue(t *testing.T) {
	f := newFixture(t, nil)
	handler := mocks.NewMockSchemeHandler(t)
	handler.EXPECT().Start(mock.Anything, mock.Anything).Run(func(_ context.Context, task port.SchemeTask) {
		go task.Respond(&entity.ResourceResponse{
			ContentType: "text/plain",
			Body:        io.NopCloser(strings.NewReader(strings.Repeat("x", 100*1024))),
		})
	}).Once()
	require.NoError(t, f.bridge.RegisterSchemeHandler("app", handler))

	var body []byte
	_, err := f.engine.Fetch("app://big.txt", func(_ entity.ResourceResponse, b []byte, err error) {
		assert.NoError(t, err)
		body = append([]byte(nil), b...)
	})
	require.NoError(t, err)
	assert.Nil(t, body, "nothing delivered before the queue runs")

	require.Eventually(t, func() bool {
		f.queue.RunPending()
		return body != nil
	}, 2*time.Second, 5*time.Millisecond)
	assert.Len(t, body, 100*1024)
}

func TestScheme_TeardownDropsPendingBackgroundAnswers(t *testing.T) {
	f := newFixture(t, nil)
	handler := mocks.NewMockSchemeHandler(t)

	var task port.SchemeTask
	handler.EXPECT().Start(mock.Anything, mock.Anything).Run(func(_ context.Context, tk port.SchemeTask) {
		task = tk
	}).Once()
	handler.EXPECT().Stop(mock.Anything).Once()
	require.NoError(t, f.bridge.RegisterSchemeHandler("app", handler))

	require.NoError(t, f.bridge.Load(context.Background(), "app://index.html"))
	f.bridge.Teardown()
	f.bridge.Teardown()

	task.Respond(&entity.ResourceResponse{Data: []byte("too late")})
	f.queue.RunPending()

	assert.Empty(t, f.rec.commits)
	assert.Zero(t, f.engine.LateCallbacks())
	assert.ErrorIs(t, f.bridge.Load(context.Background(), "app://index.html"), entity.ErrWindowClosed)
}

func TestNavigation_DeferredDecisionRunsOnQueue(t *testing.T) {
	decider := mocks.NewMockNavigationDecider(t)
	f := newFixture(t, func(o *bridge.Options) { o.Decider = decider })

	release := make(chan struct{})
	done := make(chan struct{})
	decider.EXPECT().DecidePolicy(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, action entity.NavigationAction, decide func(entity.NavigationDecision)) {
			assert.Equal(t, entity.WindowID(7), action.WindowID)
			assert.True(t, action.MainFrame)
			go func() {
				<-release
				decide(entity.NavigationAllow)
				decide(entity.NavigationCancel)
				close(done)
			}()
		}).Once()

	require.NoError(t, f.bridge.Load(context.Background(), "https://example.com/"))
	close(release)
	<-done
	assert.Empty(t, f.rec.commits)

	f.queue.RunPending()
	assert.Equal(t, []string{"https://example.com/"}, f.rec.commits)
}

func TestNavigation_PolicyCanCancel(t *testing.T) {
	f := newFixture(t, func(o *bridge.Options) {
		o.Decider = port.NavigationPolicyFunc(func(a entity.NavigationAction) entity.NavigationDecision {
			if strings.Contains(a.URL, "blocked") {
				return entity.NavigationCancel
			}
			return entity.NavigationAllow
		})
	})

	require.NoError(t, f.bridge.Load(context.Background(), "https://blocked.example/"))
	require.NoError(t, f.bridge.Load(context.Background(), "https://ok.example/"))

	assert.Equal(t, []string{"https://ok.example/"}, f.rec.commits)
	assert.Equal(t, "https://ok.example/", f.bridge.Surface().CurrentURL)
}

func TestScriptMessages_PreserveOrderPerFrame(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.engine.Evaluate(headless.MainFrame, `
		window.webkit.messageHandlers.app.postMessage("A");
		window.webkit.messageHandlers.app.postMessage({"step": "B"});
		window.webkit.messageHandlers.app.postMessage(["C"]);
	`))

	require.Len(t, f.rec.messages, 3)
	assert.JSONEq(t, `"A"`, string(f.rec.messages[0].Payload))
	assert.JSONEq(t, `{"step":"B"}`, string(f.rec.messages[1].Payload))
	assert.JSONEq(t, `["C"]`, string(f.rec.messages[2].Payload))
	for i, msg := range f.rec.messages {
		assert.Equal(t, "app", msg.Name)
		assert.Equal(t, uint64(i+1), msg.Sequence)
		assert.Equal(t, entity.WindowID(7), msg.WindowID)
	}
}

func TestScriptMessages_FromPageScripts(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.bridge.RegisterSchemeHandler("app", staticPage(`<html><body>
		<script>window.webkit.messageHandlers.ready.postMessage({"n": 1});</script>
		<script>window.webkit.messageHandlers.ready.postMessage({"n": 2});</script>
	</body></html>`)))

	require.NoError(t, f.bridge.Load(context.Background(), "app://index.html"))
	f.queue.RunPending()

	require.Len(t, f.rec.messages, 2)
	assert.JSONEq(t, `{"n":1}`, string(f.rec.messages[0].Payload))
	assert.JSONEq(t, `{"n":2}`, string(f.rec.messages[1].Payload))
}

func TestScriptMessages_ReservedDragMessage(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.engine.Evaluate(headless.MainFrame, `window.webkit.messageHandlers["window:drag"].postMessage(null);`))

	assert.Equal(t, 1, f.window.drags)
	assert.Empty(t, f.rec.messages, "reserved messages are not forwarded")
}

func TestDragRegions_DeclaredByContent(t *testing.T) {
	f := newFixture(t, func(o *bridge.Options) { o.Coalescer = mainloop.NewCoalescer(o.Scheduler) })
	f.window.chrome.InvisibleTitleBarHeight = 28

	require.NoError(t, f.engine.Evaluate(headless.MainFrame, `
		window.webkit.messageHandlers["window:drag-regions"].postMessage([]);
		window.webkit.messageHandlers["window:drag-regions"].postMessage([
			{"rect": {"origin": {"x": 0, "y": 0}, "size": {"width": 800, "height": 40}}, "draggable": true},
			{"rect": {"origin": {"x": 700, "y": 0}, "size": {"width": 100, "height": 40}}, "draggable": false}
		]);
	`))
	assert.Empty(t, f.bridge.Surface().Regions, "coalesced until the queue runs")
	f.queue.RunPending()

	require.Len(t, f.bridge.Surface().Regions, 2)
	assert.True(t, f.bridge.IsDraggable(entity.Point{X: 100, Y: 35}))
	assert.False(t, f.bridge.IsDraggable(entity.Point{X: 750, Y: 10}), "no-drag region vetoes the title bar strip")
	assert.False(t, f.bridge.IsDraggable(entity.Point{X: 100, Y: 300}))
}

func TestDragRegions_TitleBarStrip(t *testing.T) {
	f := newFixture(t, nil)

	assert.False(t, f.bridge.IsDraggable(entity.Point{X: 10, Y: 5}))

	f.window.chrome.InvisibleTitleBarHeight = 28
	assert.True(t, f.bridge.IsDraggable(entity.Point{X: 10, Y: 5}))
	assert.False(t, f.bridge.IsDraggable(entity.Point{X: 10, Y: 28}))
}

func TestDragRegions_TopmostPolicy(t *testing.T) {
	f := newFixture(t, func(o *bridge.Options) { o.DragPolicy = bridge.TopmostDragRegionPolicy })
	f.bridge.SetDragRegions([]entity.DragRegion{
		{Rect: entity.NewRect(0, 0, 100, 100), Draggable: false},
		{Rect: entity.NewRect(0, 0, 50, 50), Draggable: true},
	})

	assert.True(t, f.bridge.IsDraggable(entity.Point{X: 10, Y: 10}))
	assert.False(t, f.bridge.IsDraggable(entity.Point{X: 80, Y: 80}))
}

func TestDragRegions_ClearedOnCommit(t *testing.T) {
	f := newFixture(t, nil)
	f.bridge.SetDragRegions([]entity.DragRegion{{Rect: entity.NewRect(0, 0, 10, 10), Draggable: true}})

	require.NoError(t, f.bridge.Load(context.Background(), "about:blank"))

	assert.Empty(t, f.bridge.Surface().Regions)
}

func TestDragRegions_StaleUpdateDroppedAfterCommit(t *testing.T) {
	f := newFixture(t, func(o *bridge.Options) { o.Coalescer = mainloop.NewCoalescer(o.Scheduler) })

	require.NoError(t, f.engine.Evaluate(headless.MainFrame, `
		window.webkit.messageHandlers["window:drag-regions"].postMessage([
			{"rect": {"origin": {"x": 0, "y": 0}, "size": {"width": 800, "height": 600}}, "draggable": true}
		]);
	`))
	require.NoError(t, f.bridge.Load(context.Background(), "https://other.example/"))
	f.queue.RunPending()

	assert.Equal(t, "https://other.example/", f.bridge.Surface().CurrentURL)
	assert.Empty(t, f.bridge.Surface().Regions)
	assert.False(t, f.bridge.IsDraggable(entity.Point{X: 400, Y: 300}))
}

func TestSubframeCommit_KeepsMainDocument(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.bridge.Load(ctx, "https://example.com/"))
	f.bridge.SetDragRegions([]entity.DragRegion{{Rect: entity.NewRect(0, 0, 100, 40), Draggable: true}})
	post := `window.webkit.messageHandlers.app.postMessage(null);`
	require.NoError(t, f.engine.Evaluate(headless.MainFrame, post))
	require.NoError(t, f.engine.Evaluate(headless.MainFrame, post))
	require.NoError(t, f.engine.Evaluate("ad-frame", post))

	require.NoError(t, f.engine.Navigate("ad-frame", "https://ads.example.net/x", entity.NavigationOther))

	require.NoError(t, f.engine.Evaluate(headless.MainFrame, post))
	require.NoError(t, f.engine.Evaluate("ad-frame", post))

	surface := f.bridge.Surface()
	assert.Equal(t, "https://example.com/", surface.CurrentURL)
	require.Len(t, surface.Regions, 1)
	assert.True(t, f.bridge.IsDraggable(entity.Point{X: 10, Y: 10}))
	assert.Equal(t, []string{"https://example.com/"}, f.rec.commits, "subframe commits are not reported")

	var mainSeq, adSeq []uint64
	for _, msg := range f.rec.messages {
		if msg.FrameID == headless.MainFrame {
			mainSeq = append(mainSeq, msg.Sequence)
		} else {
			adSeq = append(adSeq, msg.Sequence)
		}
	}
	assert.Equal(t, []uint64{1, 2, 3}, mainSeq)
	assert.Equal(t, []uint64{1, 1}, adSeq, "the subframe's numbering restarts with its document")
}

func TestDrop_RejectedNeverPerforms(t *testing.T) {
	performed := 0
	f := newFixture(t, func(o *bridge.Options) {
		o.Callbacks.OnDraggingEntered = func(p entity.DropPayload) entity.DragOperation {
			if len(p.Files) == 0 {
				return entity.DragReject
			}
			return entity.DragAccept
		}
		o.Callbacks.OnPerformDrop = func(entity.DropPayload) bool { performed++; return true }
	})

	empty := entity.DropPayload{Text: "hello"}
	assert.Equal(t, entity.DragReject, f.engine.DragEnter(empty))
	assert.False(t, f.engine.Drop(empty))
	assert.Zero(t, performed)

	files := entity.DropPayload{Files: []string{"/tmp/a.txt"}}
	assert.Equal(t, entity.DragAccept, f.engine.DragEnter(files))
	assert.True(t, f.engine.Drop(files))
	assert.Equal(t, 1, performed)

	assert.False(t, f.engine.Drop(files), "acceptance is consumed by the drop")
	assert.Equal(t, 1, performed)

	require.Len(t, f.rec.drops, 3)
	assert.False(t, f.rec.drops[0].Accepted)
	assert.Equal(t, entity.DropPerformed, f.rec.drops[2].Kind)
	assert.True(t, f.rec.drops[2].Accepted)
}

func TestDrop_ExitForgetsAcceptance(t *testing.T) {
	performed := 0
	f := newFixture(t, func(o *bridge.Options) {
		o.Callbacks.OnDraggingEntered = func(entity.DropPayload) entity.DragOperation { return entity.DragAccept }
		o.Callbacks.OnPerformDrop = func(entity.DropPayload) bool { performed++; return false }
	})

	f.engine.DragEnter(entity.DropPayload{})
	f.engine.DragExit()
	assert.False(t, f.engine.Drop(entity.DropPayload{}))

	f.engine.DragEnter(entity.DropPayload{})
	assert.False(t, f.engine.Drop(entity.DropPayload{}), "shell rolled the drop back")
	assert.Equal(t, 1, performed)
}

func TestDrop_NoCallbackRejects(t *testing.T) {
	f := newFixture(t, nil)

	assert.Equal(t, entity.DragReject, f.engine.DragEnter(entity.DropPayload{Files: []string{"a"}}))
}

func TestTeardown_DetachesFromEngine(t *testing.T) {
	ctx := context.Background()
	engine := mocks.NewMockContentEngine(t)
	engine.EXPECT().SetDelegate(mock.Anything).Once()
	engine.EXPECT().Close().Once()

	b, err := bridge.New(ctx, 1, bridge.Options{Scheduler: mainloop.NewQueue(), Engine: engine})
	require.NoError(t, err)

	b.Teardown()
	b.Teardown()

	assert.True(t, b.TornDown())
	assert.False(t, b.IsDraggable(entity.Point{}))
	assert.Equal(t, entity.NavigationCancel, decideNow(b, "https://example.com"))
}

func decideNow(b *bridge.Bridge, url string) entity.NavigationDecision {
	var got entity.NavigationDecision = -1
	b.DecidePolicyForNavigation(entity.NavigationAction{URL: url, MainFrame: true}, func(d entity.NavigationDecision) { got = d })
	return got
}
