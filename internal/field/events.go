package field

import "time"

// listeners is a set of callbacks keyed by subscription id
type listeners[T any] struct {
	next int
	fns  map[int]func(T)
}

func (l *listeners[T]) add(fn func(T)) (detach func()) {
	if l.fns == nil {
		l.fns = make(map[int]func(T))
	}
	l.next++
	id := l.next
	l.fns[id] = fn
	return func() { delete(l.fns, id) }
}

func (l *listeners[T]) emit(v T) {
	for _, fn := range l.fns {
		fn(v)
	}
}

func (l *listeners[T]) len() int { return len(l.fns) }

// Events implements the subscription and scheduling half of Host. Hosts
// embed it, feed it input through the dispatch methods and call Fire once
// per display refresh.
type Events struct {
	moves   listeners[Vec]
	leaves  listeners[struct{}]
	resizes listeners[Vec]

	nextFrame FrameID
	frames    map[FrameID]func(time.Duration)
}

// OnPointerMove subscribes to pointer motion in logical pixels
func (e *Events) OnPointerMove(fn func(at Vec)) func() { return e.moves.add(fn) }

// OnPointerLeave subscribes to the pointer leaving the container
func (e *Events) OnPointerLeave(fn func()) func() {
	return e.leaves.add(func(struct{}) { fn() })
}

// OnResize subscribes to container size changes
func (e *Events) OnResize(fn func(w, h float64)) func() {
	return e.resizes.add(func(s Vec) { fn(s.X, s.Y) })
}

// RequestFrame queues fn for the next Fire
func (e *Events) RequestFrame(fn func(now time.Duration)) FrameID {
	if e.frames == nil {
		e.frames = make(map[FrameID]func(time.Duration))
	}
	e.nextFrame++
	e.frames[e.nextFrame] = fn
	return e.nextFrame
}

// CancelFrame drops a queued frame
func (e *Events) CancelFrame(id FrameID) { delete(e.frames, id) }

// PointerMove notifies subscribers of a pointer position
func (e *Events) PointerMove(at Vec) { e.moves.emit(at) }

// PointerLeave notifies subscribers that the pointer left
func (e *Events) PointerLeave() { e.leaves.emit(struct{}{}) }

// Resize notifies subscribers of a new container size
func (e *Events) Resize(w, h float64) { e.resizes.emit(Vec{w, h}) }

// Fire runs the frames queued before this call. Frames requested while
// firing wait for the next call. It returns how many ran.
func (e *Events) Fire(now time.Duration) int {
	pending := e.frames
	e.frames = nil
	for _, fn := range pending {
		fn(now)
	}
	return len(pending)
}

// Listening returns the number of live subscriptions
func (e *Events) Listening() int {
	return e.moves.len() + e.leaves.len() + e.resizes.len()
}

// Pending returns the number of queued frames
func (e *Events) Pending() int { return len(e.frames) }
