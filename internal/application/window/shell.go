// Package window implements the window shell: native window ownership, the
// chrome state machine, first-responder overrides and drag input handling.
package window

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/logging"
	"github.com/rs/zerolog"
)

// Options are the pre-decoded creation parameters of a window.
type Options struct {
	Name      string
	Title     string
	Geometry  entity.Rect
	StyleMask entity.StyleMask
	Backing   entity.BackingMode
	Defer     bool
}

// Shell creates windows on a toolkit and hands out window ids.
type Shell struct {
	toolkit port.Toolkit
	onEvent func(entity.WindowEvent)
	nextID  atomic.Uint32
	now     func() time.Time
	logger  zerolog.Logger
}

// NewShell creates a shell bound to toolkit. onEvent may be nil.
func NewShell(ctx context.Context, toolkit port.Toolkit, onEvent func(entity.WindowEvent)) *Shell {
	return &Shell{
		toolkit: toolkit,
		onEvent: onEvent,
		now:     time.Now,
		logger:  logging.FromContext(ctx).With().Str("component", "window-shell").Logger(),
	}
}

// CreateWindow creates a regular window that may become key and main.
func (s *Shell) CreateWindow(ctx context.Context, opts Options) (*Window, error) {
	return s.create(ctx, entity.CategoryWindow, opts)
}

// CreatePanel creates a floating utility panel that never becomes main.
func (s *Shell) CreatePanel(ctx context.Context, opts Options) (*Window, error) {
	return s.create(ctx, entity.CategoryPanel, opts)
}

func (s *Shell) create(ctx context.Context, category entity.WindowCategory, opts Options) (*Window, error) {
	if err := opts.Geometry.Validate(); err != nil {
		return nil, err
	}

	id := entity.WindowID(s.nextID.Add(1))
	native, err := s.toolkit.CreateWindow(ctx, entity.NativeWindowSpec{
		ID:        id,
		Title:     opts.Title,
		Geometry:  opts.Geometry,
		StyleMask: opts.StyleMask,
		Backing:   opts.Backing,
		Defer:     opts.Defer,
		Category:  category,
	})
	if err != nil {
		return nil, fmt.Errorf("create native %s: %w", category, err)
	}

	w := &Window{
		id:       id,
		name:     opts.Name,
		category: category,
		native:   native,
		screen:   s.toolkit.ScreenBounds,
		onEvent:  s.onEvent,
		now:      s.now,
		logger: s.logger.With().
			Uint32("window_id", uint32(id)).
			Str("category", category.String()).
			Logger(),
	}

	w.logger.Debug().
		Str("geometry", opts.Geometry.String()).
		Str("style", opts.StyleMask.String()).
		Str("backing", opts.Backing.String()).
		Bool("defer", opts.Defer).
		Msg("window created")
	w.emit(entity.EventWindowCreated)
	return w, nil
}
