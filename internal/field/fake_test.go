package field

import (
	"time"
)

// fakeHost drives a renderer by hand
type fakeHost struct {
	w, h  float64
	scale float64

	nextID  FrameID
	frames  map[FrameID]func(time.Duration)
	moves   map[int]func(Vec)
	leaves  map[int]func()
	resizes map[int]func(w, h float64)
	nextSub int
	detachs int
}

func newFakeHost(w, h, scale float64) *fakeHost {
	return &fakeHost{
		w: w, h: h, scale: scale,
		frames:  make(map[FrameID]func(time.Duration)),
		moves:   make(map[int]func(Vec)),
		leaves:  make(map[int]func()),
		resizes: make(map[int]func(w, h float64)),
	}
}

func (f *fakeHost) Size() (float64, float64) { return f.w, f.h }
func (f *fakeHost) DeviceScale() float64     { return f.scale }

func (f *fakeHost) OnPointerMove(fn func(Vec)) func() {
	id := f.sub()
	f.moves[id] = fn
	return f.detacher(func() { delete(f.moves, id) })
}

func (f *fakeHost) OnPointerLeave(fn func()) func() {
	id := f.sub()
	f.leaves[id] = fn
	return f.detacher(func() { delete(f.leaves, id) })
}

func (f *fakeHost) OnResize(fn func(w, h float64)) func() {
	id := f.sub()
	f.resizes[id] = fn
	return f.detacher(func() { delete(f.resizes, id) })
}

func (f *fakeHost) sub() int {
	f.nextSub++
	return f.nextSub
}

func (f *fakeHost) detacher(fn func()) func() {
	return func() {
		f.detachs++
		fn()
	}
}

func (f *fakeHost) RequestFrame(fn func(time.Duration)) FrameID {
	f.nextID++
	f.frames[f.nextID] = fn
	return f.nextID
}

func (f *fakeHost) CancelFrame(id FrameID) { delete(f.frames, id) }

// tick fires every pending frame once
func (f *fakeHost) tick(now time.Duration) int {
	pending := f.frames
	f.frames = make(map[FrameID]func(time.Duration))
	for _, fn := range pending {
		fn(now)
	}
	return len(pending)
}

func (f *fakeHost) move(at Vec) {
	for _, fn := range f.moves {
		fn(at)
	}
}

func (f *fakeHost) leave() {
	for _, fn := range f.leaves {
		fn()
	}
}

func (f *fakeHost) resize(w, h float64) {
	f.w, f.h = w, h
	for _, fn := range f.resizes {
		fn(w, h)
	}
}

func (f *fakeHost) listeners() int {
	return len(f.moves) + len(f.leaves) + len(f.resizes)
}

// recordSurface remembers what was drawn in the current frame
type recordSurface struct {
	w, h, dpr float64
	resizes   int
	clears    int
	dots      []recordedDot
}

type recordedDot struct {
	at     Vec
	radius float64
	style  DotStyle
}

func (s *recordSurface) Resize(w, h, dpr float64) {
	s.w, s.h, s.dpr = w, h, dpr
	s.resizes++
}

func (s *recordSurface) Clear() {
	s.clears++
	s.dots = s.dots[:0]
}

func (s *recordSurface) FillCircle(at Vec, radius float64, style DotStyle) {
	s.dots = append(s.dots, recordedDot{at, radius, style})
}
