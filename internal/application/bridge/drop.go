package bridge

import "github.com/bnema/webwindow/internal/domain/entity"

// DraggingEntered asks the shell whether the drop may proceed. A missing
// callback rejects.
func (b *Bridge) DraggingEntered(payload entity.DropPayload) entity.DragOperation {
	payload.WindowID = b.windowID
	op := entity.DragReject
	if !b.tornDown && b.callbacks.OnDraggingEntered != nil {
		op = b.callbacks.OnDraggingEntered(payload)
	}
	b.dragAccepted = op == entity.DragAccept
	b.dropEvent(entity.DropEntered, payload, b.dragAccepted)
	return op
}

// DraggingExited forgets the pending acceptance.
func (b *Bridge) DraggingExited() {
	b.dragAccepted = false
}

// PerformDrop performs a drop accepted by DraggingEntered. A rejected or
// unannounced drop never reaches the shell.
func (b *Bridge) PerformDrop(payload entity.DropPayload) bool {
	if !b.dragAccepted || b.tornDown {
		return false
	}
	b.dragAccepted = false
	payload.WindowID = b.windowID

	ok := b.callbacks.OnPerformDrop != nil && b.callbacks.OnPerformDrop(payload)
	b.dropEvent(entity.DropPerformed, payload, ok)
	return ok
}

func (b *Bridge) dropEvent(kind entity.DropEventKind, payload entity.DropPayload, accepted bool) {
	b.logger.Debug().
		Str("kind", string(kind)).
		Bool("accepted", accepted).
		Int("files", len(payload.Files)).
		Msg("drop")
	if b.tornDown || b.callbacks.OnDropEvent == nil {
		return
	}
	b.callbacks.OnDropEvent(entity.DropEvent{
		Kind:     kind,
		WindowID: b.windowID,
		Payload:  payload,
		Accepted: accepted,
	})
}
