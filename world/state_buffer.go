package world

const NilTick int64 = -1

// FrameBuffer keeps the most recent frames in a fixed size ring.
type FrameBuffer struct {
	frames      []*Frame
	index       int
	currentTick int64
}

func newRingBuffer(maxCapacity int) []*Frame {
	frames := make([]*Frame, maxCapacity)
	for i := range frames {
		frames[i] = &Frame{Tick: NilTick}
	}
	return frames
}

func NewFrameBuffer(maxCapacity int) *FrameBuffer {
	if maxCapacity < 1 {
		maxCapacity = 1
	}
	return &FrameBuffer{
		frames:      newRingBuffer(maxCapacity),
		currentTick: NilTick,
	}
}

func (s *FrameBuffer) Add(frame *Frame) {
	index := (s.index + 1) % len(s.frames)
	if s.frames[s.index].Tick == NilTick {
		index = s.index
	}
	s.index = index
	s.frames[index] = frame
	s.currentTick = frame.Tick
}

// Latest returns the newest frame, or nil if nothing was added yet.
func (s *FrameBuffer) Latest() *Frame {
	current := s.frames[s.index]
	if current.Tick == NilTick {
		return nil
	}
	return current
}

// At returns the frame for tick if it is still buffered.
func (s *FrameBuffer) At(tick int64) (*Frame, bool) {
	if tick == NilTick {
		return nil, false
	}
	for _, frame := range s.frames {
		if frame.Tick == tick {
			return frame, true
		}
	}
	return nil, false
}

func (s *FrameBuffer) CurrentTick() int64 {
	return s.currentTick
}

func (s *FrameBuffer) Len() int {
	n := 0
	for _, frame := range s.frames {
		if frame.Tick != NilTick {
			n++
		}
	}
	return n
}

func (s *FrameBuffer) Clear() {
	s.frames = newRingBuffer(len(s.frames))
	s.index = 0
	s.currentTick = NilTick
}
