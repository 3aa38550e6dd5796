package breakout

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// Scheduler runs a callback on the next display frame.
type Scheduler interface {
	Schedule(fn func()) FrameID
	Cancel(id FrameID)
}

// FrameQueue is a Scheduler driven by an external clock. The TUI flushes
// it once per display tick; tests flush it by hand. It is not safe for
// concurrent use.
type FrameQueue struct {
	next    FrameID
	pending []frame
	running []frame // batch being flushed; Cancel still applies to it
}

type frame struct {
	id FrameID
	fn func()
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// Schedule queues fn for the next Flush.
func (q *FrameQueue) Schedule(fn func()) FrameID {
	q.next++
	q.pending = append(q.pending, frame{id: q.next, fn: fn})
	return q.next
}

// Cancel drops a pending frame. Unknown or already run ids are ignored.
func (q *FrameQueue) Cancel(id FrameID) {
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// Flush runs the frames that were pending when it was called. Frames
// scheduled by those callbacks wait for the next Flush, so one Flush is
// one tick. It returns the number of frames run.
func (q *FrameQueue) Flush() int {
	q.running = q.pending
	q.pending = nil
	defer func() { q.running = nil }()

	n := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn()
		n++
	}
	return n
}

// Pending returns the number of queued frames.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
