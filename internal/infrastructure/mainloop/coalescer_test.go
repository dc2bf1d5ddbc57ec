package mainloop

import (
	"testing"

	"github.com/bnema/webwindow/internal/application/port"
)

func TestCoalescerMergesBurstIntoSingleTask(t *testing.T) {
	queue := make([]func(), 0, 8)
	c := NewCoalescer(port.SchedulerFunc(func(fn func()) { queue = append(queue, fn) }))

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("drag-regions", func() { value = v })
	}

	if len(queue) != 1 {
		t.Fatalf("expected 1 scheduled callback, got %d", len(queue))
	}
	queue[0]()

	if value != 5 {
		t.Fatalf("expected latest callback to run, got %d", value)
	}
}

func TestCoalescerKeysAreIndependent(t *testing.T) {
	q := NewQueue()
	c := NewCoalescer(q)

	var got []string
	c.Post("a", func() { got = append(got, "a1") })
	c.Post("b", func() { got = append(got, "b1") })
	c.Post("a", func() { got = append(got, "a2") })
	q.RunPending()

	if len(got) != 2 || got[0] != "a2" || got[1] != "b1" {
		t.Fatalf("unexpected run order %v", got)
	}
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer(port.SchedulerFunc(func(fn func()) { queue = append(queue, fn) }))

	ran := false
	c.Post("drag-regions", func() { ran = true })
	c.Destroy()

	if len(queue) != 1 {
		t.Fatalf("expected one queued callback before destroy, got %d", len(queue))
	}
	queue[0]()

	if ran {
		t.Fatalf("expected queued work to be dropped after destroy")
	}

	c.Post("drag-regions", func() { ran = true })
	if len(queue) != 1 {
		t.Fatalf("expected no new callback after destroy, got %d", len(queue))
	}
}

func TestNewCoalescerPanicsOnNilScheduler(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected NewCoalescer to panic when scheduler is nil")
		}
	}()

	_ = NewCoalescer(nil)
}
