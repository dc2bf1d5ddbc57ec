package bridge

import (
	"context"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/domain/entity"
)

// HandlerFunc adapts an in-memory responder to a scheme handler. It runs on
// the UI thread and must not block; use a background loader for I/O.
type HandlerFunc func(ctx context.Context, req entity.ResourceRequest) (*entity.ResourceResponse, error)

var _ port.SchemeHandler = HandlerFunc(nil)

// Start answers the task with the function's result.
func (f HandlerFunc) Start(ctx context.Context, task port.SchemeTask) {
	resp, err := f(ctx, task.Request())
	if err != nil {
		task.Fail(err)
		return
	}
	task.Respond(resp)
}

// Stop is a no-op: the function already answered.
func (f HandlerFunc) Stop(port.SchemeTask) {}
