package assets

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/logging"
	"github.com/rs/zerolog"
)

// PageHandler generates content for a specific page path.
type PageHandler interface {
	Handle(req entity.ResourceRequest) *entity.ResourceResponse
}

// PageHandlerFunc is an adapter to allow use of ordinary functions as PageHandlers.
type PageHandlerFunc func(req entity.ResourceRequest) *entity.ResourceResponse

func (f PageHandlerFunc) Handle(req entity.ResourceRequest) *entity.ResourceResponse {
	return f(req)
}

// StaticPage serves fixed content.
func StaticPage(contentType string, body []byte) PageHandler {
	return PageHandlerFunc(func(entity.ResourceRequest) *entity.ResourceResponse {
		return &entity.ResourceResponse{
			Data:        body,
			ContentType: contentType,
			StatusCode:  http.StatusOK,
		}
	})
}

// PageRouter maps request paths to page handlers.
type PageRouter struct {
	handlers map[string]PageHandler
	logger   zerolog.Logger
	mu       sync.RWMutex
}

var _ Resolver = (*PageRouter)(nil)

// NewPageRouter creates an empty router.
func NewPageRouter(ctx context.Context) *PageRouter {
	return &PageRouter{
		handlers: make(map[string]PageHandler),
		logger:   logging.FromContext(ctx).With().Str("component", "page-router").Logger(),
	}
}

// RegisterPage registers a handler for a specific path.
func (r *PageRouter) RegisterPage(path string, handler PageHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[path] = handler
	r.logger.Debug().Str("path", path).Msg("registered page handler")
}

// Resolve implements Resolver. Unknown paths get a 404 page.
func (r *PageRouter) Resolve(_ context.Context, req entity.ResourceRequest) (*entity.ResourceResponse, error) {
	r.mu.RLock()
	handler, ok := r.handlers[req.Path]
	if !ok {
		// Try without leading slash
		handler, ok = r.handlers[strings.TrimPrefix(req.Path, "/")]
	}
	r.mu.RUnlock()

	if !ok {
		return notFound(), nil
	}
	resp := handler.Handle(req)
	if resp == nil {
		return &entity.ResourceResponse{
			Data:        []byte("Internal error"),
			ContentType: "text/plain",
			StatusCode:  http.StatusInternalServerError,
		}, nil
	}
	if resp.ContentType == "" {
		resp.ContentType = "text/html"
	}
	return resp, nil
}

func notFound() *entity.ResourceResponse {
	return &entity.ResourceResponse{
		Data:        []byte(notFoundHTML),
		ContentType: "text/html",
		StatusCode:  http.StatusNotFound,
	}
}

const notFoundHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Not Found</title>
    <style>
        body {
            font-family: system-ui, sans-serif;
            display: flex;
            align-items: center;
            justify-content: center;
            height: 100vh;
            margin: 0;
        }
        h1 { color: #f39c12; }
    </style>
</head>
<body>
    <h1>404</h1>
</body>
</html>`
