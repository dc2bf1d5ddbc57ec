package bridge

import "github.com/bnema/webwindow/internal/domain/entity"

// DragRegionPolicy decides whether p starts a window drag given the
// content-declared regions and the window's chrome.
type DragRegionPolicy func(p entity.Point, regions []entity.DragRegion, chrome entity.ChromeState) bool

// DefaultDragRegionPolicy lets a no-drag region veto everything beneath it.
// Otherwise a draggable region or the invisible title bar strip drags.
func DefaultDragRegionPolicy(p entity.Point, regions []entity.DragRegion, chrome entity.ChromeState) bool {
	draggable := false
	for _, r := range regions {
		if !r.Rect.Contains(p) {
			continue
		}
		if !r.Draggable {
			return false
		}
		draggable = true
	}
	if draggable {
		return true
	}
	return inTitleBarStrip(p, chrome)
}

// TopmostDragRegionPolicy resolves overlaps by declaration order: the last
// declared region containing p wins.
func TopmostDragRegionPolicy(p entity.Point, regions []entity.DragRegion, chrome entity.ChromeState) bool {
	for i := len(regions) - 1; i >= 0; i-- {
		if regions[i].Rect.Contains(p) {
			return regions[i].Draggable
		}
	}
	return inTitleBarStrip(p, chrome)
}

func inTitleBarStrip(p entity.Point, chrome entity.ChromeState) bool {
	h := float64(chrome.InvisibleTitleBarHeight)
	return h > 0 && p.Y >= 0 && p.Y < h
}

// IsDraggable reports whether a mouse-down at p belongs to window chrome.
func (b *Bridge) IsDraggable(p entity.Point) bool {
	if b.tornDown {
		return false
	}
	var chrome entity.ChromeState
	if b.window != nil {
		chrome = b.window.Chrome()
	}
	return b.policy(p, b.regions, chrome)
}

// SetDragRegions replaces the content-declared regions.
func (b *Bridge) SetDragRegions(regions []entity.DragRegion) {
	if b.tornDown {
		return
	}
	b.regions = append([]entity.DragRegion(nil), regions...)
}
