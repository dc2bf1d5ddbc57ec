// Package assets serves custom-scheme content: an in-memory page router, a
// directory tree and SQLite archives, run off the UI thread by a bounded
// loader.
package assets

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/logging"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// DefaultMaxConcurrent bounds background loads per loader.
const DefaultMaxConcurrent = 4

// Resolver produces the response for a request. It may block.
type Resolver interface {
	Resolve(ctx context.Context, req entity.ResourceRequest) (*entity.ResourceResponse, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, req entity.ResourceRequest) (*entity.ResourceResponse, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, req entity.ResourceRequest) (*entity.ResourceResponse, error) {
	return f(ctx, req)
}

// Loader is a scheme handler that resolves requests on background
// goroutines, at most maxConcurrent at a time.
type Loader struct {
	resolver Resolver
	sem      *semaphore.Weighted
	wg       sync.WaitGroup
	logger   zerolog.Logger
}

var _ port.SchemeHandler = (*Loader)(nil)

// NewLoader wraps resolver. maxConcurrent <= 0 uses DefaultMaxConcurrent.
func NewLoader(ctx context.Context, resolver Resolver, maxConcurrent int64) *Loader {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &Loader{
		resolver: resolver,
		sem:      semaphore.NewWeighted(maxConcurrent),
		logger:   logging.FromContext(ctx).With().Str("component", "scheme-loader").Logger(),
	}
}

// Start implements port.SchemeHandler. It returns immediately.
func (l *Loader) Start(ctx context.Context, task port.SchemeTask) {
	l.wg.Add(1)
	go l.run(ctx, task)
}

func (l *Loader) run(ctx context.Context, task port.SchemeTask) {
	defer l.wg.Done()
	req := task.Request()
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error().Interface("panic", r).Str("url", req.URL).Msg("resolver panicked")
			task.Fail(&entity.HandlerFault{Scheme: req.Scheme, URL: req.URL, Panic: r})
		}
	}()

	if err := l.sem.Acquire(ctx, 1); err != nil {
		task.Fail(fmt.Errorf("%w: %v", entity.ErrLoadCancelled, err))
		return
	}
	defer l.sem.Release(1)

	if ctx.Err() != nil {
		task.Fail(entity.ErrLoadCancelled)
		return
	}

	resp, err := l.resolver.Resolve(ctx, req)
	if err != nil {
		task.Fail(err)
		return
	}
	l.logger.Debug().Str("url", req.URL).Int("status", resp.StatusCode).Msg("resource resolved")
	task.Respond(resp)
}

// Stop implements port.SchemeHandler. Cancellation reaches the resolver
// through the request context.
func (l *Loader) Stop(task port.SchemeTask) {
	l.logger.Debug().Str("task", task.ID()).Msg("load stopped")
}

// Wait blocks until every started load has returned.
func (l *Loader) Wait() {
	l.wg.Wait()
}
