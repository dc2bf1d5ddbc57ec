package port

import (
	"context"

	"github.com/bnema/webwindow/internal/domain/entity"
)

// SchemeHandler serves requests for one custom resource scheme.
//
// Start is called once per request on the UI thread. It may answer
// immediately or hand the work to another goroutine; the task marshals
// the answer back onto the UI thread. ctx is cancelled when the request
// is stopped. Stop is called when the load is superseded or the surface
// is torn down before an answer was delivered.
type SchemeHandler interface {
	Start(ctx context.Context, task SchemeTask)
	Stop(task SchemeTask)
}

// SchemeTask is the handler side of one resource request.
// Respond and Fail are safe from any goroutine; only the first call counts.
type SchemeTask interface {
	ID() string
	Request() entity.ResourceRequest
	Respond(resp *entity.ResourceResponse)
	Fail(err error)
}
