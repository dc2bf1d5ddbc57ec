package port

// Scheduler posts work onto the UI thread.
//
// Every window and content callback runs on the thread served by the
// scheduler. Post is safe to call from any goroutine; posted functions run
// in FIFO order.
type Scheduler interface {
	Post(fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(fn func())

// Post calls f(fn).
func (f SchedulerFunc) Post(fn func()) {
	f(fn)
}

// Coalescer merges bursts of same-key tasks so only the latest one posted
// before the scheduler runs it executes.
type Coalescer interface {
	Post(key string, fn func())
	Destroy()
}
