package bridge

import (
	"encoding/json"

	"github.com/bnema/webwindow/internal/domain/entity"
)

// Reserved script message names handled by the bridge itself.
const (
	MessageDrag        = "window:drag"
	MessageDragRegions = "window:drag-regions"
)

// DidReceiveScriptMessage delivers a content message. Messages are handled
// synchronously in arrival order and numbered per frame.
func (b *Bridge) DidReceiveScriptMessage(msg entity.ScriptMessage) {
	if b.tornDown {
		return
	}
	msg.WindowID = b.windowID
	b.sequences[msg.FrameID]++
	msg.Sequence = b.sequences[msg.FrameID]

	switch msg.Name {
	case MessageDrag:
		if b.window != nil {
			b.window.StartDrag()
		}
		return
	case MessageDragRegions:
		b.updateRegions(msg.Payload)
		return
	}

	b.logger.Trace().
		Str("name", msg.Name).
		Str("frame", msg.FrameID).
		Uint64("seq", msg.Sequence).
		Msg("script message")
	if b.callbacks.OnScriptMessage != nil {
		b.callbacks.OnScriptMessage(msg)
	}
}

func (b *Bridge) updateRegions(payload json.RawMessage) {
	var regions []entity.DragRegion
	if len(payload) > 0 && string(payload) != "null" {
		if err := json.Unmarshal(payload, &regions); err != nil {
			b.logger.Warn().Err(err).Msg("malformed drag regions ignored")
			return
		}
	}
	for _, r := range regions {
		if err := r.Rect.Validate(); err != nil {
			b.logger.Warn().Err(err).Msg("malformed drag regions ignored")
			return
		}
	}

	document := b.document
	apply := func() {
		if b.tornDown || b.document != document {
			return
		}
		b.regions = regions
	}
	if b.coalescer == nil {
		apply()
		return
	}
	b.coalescer.Post("drag-regions", apply)
}
