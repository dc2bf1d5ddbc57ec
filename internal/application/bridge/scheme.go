package bridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/domain/entity"
)

const streamChunkSize = 32 * 1024

// StartURLSchemeTask routes an engine resource load to the scheme's handler.
func (b *Bridge) StartURLSchemeTask(engineTask port.URLSchemeTask) {
	req := engineTask.Request()
	req.WindowID = b.windowID
	if req.Scheme == "" {
		req.Scheme = entity.SchemeOf(req.URL)
	}

	if b.tornDown {
		engineTask.DidFail(entity.ErrWindowClosed)
		return
	}

	handler, ok := b.handlers[req.Scheme]
	if !ok {
		err := fmt.Errorf("load %s: %w", req.URL, entity.ErrSchemeNotRegistered)
		engineTask.DidFail(err)
		b.fault(entity.FaultSchemeNotRegistered, req.URL, req.Scheme, err)
		return
	}

	ctx, cancel := context.WithCancel(b.ctx)
	t := &schemeTask{
		bridge:     b,
		engineTask: engineTask,
		handler:    handler,
		request:    req,
		ctx:        ctx,
		cancel:     cancel,
	}
	b.tasks[t.ID()] = t

	b.logger.Debug().Str("task", t.ID()).Str("url", req.URL).Msg("scheme task started")
	b.startHandler(t)
}

func (b *Bridge) startHandler(t *schemeTask) {
	defer func() {
		if r := recover(); r != nil {
			t.Fail(&entity.HandlerFault{Scheme: t.request.Scheme, URL: t.request.URL, Panic: r})
		}
	}()
	t.handler.Start(t.ctx, t)
}

// StopURLSchemeTask stops a load the engine no longer wants.
func (b *Bridge) StopURLSchemeTask(engineTask port.URLSchemeTask) {
	t, ok := b.tasks[engineTask.ID()]
	if !ok {
		return
	}
	b.stopTask(t)
	delete(b.tasks, t.ID())
}

func (b *Bridge) stopTask(t *schemeTask) {
	if t.done || t.stopped {
		return
	}
	t.stopped = true
	t.cancel()

	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn().Interface("panic", r).Str("task", t.ID()).Msg("scheme handler panicked in stop")
		}
	}()
	t.handler.Stop(t)
	b.logger.Debug().Str("task", t.ID()).Msg("scheme task stopped")
}

func (b *Bridge) deliver(t *schemeTask, resp *entity.ResourceResponse) {
	if !t.live() {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
		return
	}

	head := entity.ResourceResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.ContentType,
		Header:      resp.Header,
	}
	if head.StatusCode == 0 {
		head.StatusCode = http.StatusOK
	}
	t.engineTask.DidReceiveResponse(head)

	if resp.Body != nil {
		go b.stream(t, resp.Body)
		return
	}
	if len(resp.Data) > 0 {
		t.engineTask.DidReceiveData(resp.Data)
	}
	b.finish(t)
}

// stream reads body off the UI thread and posts each chunk back.
func (b *Bridge) stream(t *schemeTask, body io.ReadCloser) {
	defer body.Close()

	buf := make([]byte, streamChunkSize)
	for {
		if t.ctx.Err() != nil {
			return
		}
		n, err := body.Read(buf)
		if n > 0 {
			chunk := bytes.Clone(buf[:n])
			b.sched.Post(func() {
				if t.live() {
					t.engineTask.DidReceiveData(chunk)
				}
			})
		}
		if errors.Is(err, io.EOF) {
			b.sched.Post(func() {
				if t.live() {
					b.finish(t)
				}
			})
			return
		}
		if err != nil {
			b.sched.Post(func() { b.failTask(t, err) })
			return
		}
	}
}

func (b *Bridge) finish(t *schemeTask) {
	t.done = true
	t.cancel()
	delete(b.tasks, t.ID())
	t.engineTask.DidFinish()
}

func (b *Bridge) failTask(t *schemeTask, err error) {
	if !t.live() {
		return
	}
	var fault *entity.HandlerFault
	if !errors.As(err, &fault) {
		fault = &entity.HandlerFault{Scheme: t.request.Scheme, URL: t.request.URL, Cause: err}
	}

	t.done = true
	t.cancel()
	delete(b.tasks, t.ID())
	t.engineTask.DidFail(fault)
	b.fault(entity.FaultHandler, t.request.URL, t.request.Scheme, fault)
}

// schemeTask adapts an engine task to the handler-facing SchemeTask.
// stopped and done are UI-thread state; answered guards the first answer
// across goroutines.
type schemeTask struct {
	bridge     *Bridge
	engineTask port.URLSchemeTask
	handler    port.SchemeHandler
	request    entity.ResourceRequest
	ctx        context.Context
	cancel     context.CancelFunc

	answered atomic.Bool
	stopped  bool
	done     bool
}

var _ port.SchemeTask = (*schemeTask)(nil)

func (t *schemeTask) ID() string { return t.engineTask.ID() }

func (t *schemeTask) Request() entity.ResourceRequest { return t.request }

func (t *schemeTask) Respond(resp *entity.ResourceResponse) {
	if resp == nil {
		t.Fail(errors.New("handler returned no response"))
		return
	}
	if !t.answered.CompareAndSwap(false, true) {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
		return
	}
	t.bridge.sched.Post(func() { t.bridge.deliver(t, resp) })
}

func (t *schemeTask) Fail(err error) {
	if !t.answered.CompareAndSwap(false, true) {
		return
	}
	t.bridge.sched.Post(func() { t.bridge.failTask(t, err) })
}

func (t *schemeTask) live() bool {
	return !t.stopped && !t.done && !t.bridge.tornDown
}
