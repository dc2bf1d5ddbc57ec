package window

import "github.com/bnema/webwindow/internal/domain/entity"

// HandleLeftMouseDown records ev as the current drag session.
func (w *Window) HandleLeftMouseDown(ev entity.MouseEvent) {
	if w.closed {
		return
	}
	w.drag.Record(ev)
}

// HandleLeftMouseUp finalizes the current drag. Safe without a prior mouse-down.
func (w *Window) HandleLeftMouseUp() {
	w.drag.Clear()
}

// StartDrag begins an interactive move from the recorded mouse-down.
// Without one it logs a stale drag and does nothing.
func (w *Window) StartDrag() bool {
	if w.closed {
		return false
	}
	ev, ok := w.drag.Event()
	if !ok {
		w.logger.Debug().Err(entity.ErrStaleDragState).Msg("drag ignored")
		return false
	}
	if err := w.native.PerformDrag(ev); err != nil {
		w.logger.Warn().Err(err).Msg("native drag failed")
		return false
	}
	w.emit(entity.EventDragStarted)
	return true
}

// MouseDown routes a toolkit mouse-down. A left press over draggable chrome
// starts a window drag and is consumed; anything else goes to content.
func (w *Window) MouseDown(ev entity.MouseEvent) (consumed bool) {
	if w.closed || ev.Button != entity.MouseLeft {
		return false
	}
	w.HandleLeftMouseDown(ev)
	if w.hitTester == nil || !w.hitTester.IsDraggable(ev.Location) {
		return false
	}
	return w.StartDrag()
}

// MouseUp routes a toolkit mouse-up.
func (w *Window) MouseUp(ev entity.MouseEvent) {
	if ev.Button == entity.MouseLeft {
		w.HandleLeftMouseUp()
	}
}
