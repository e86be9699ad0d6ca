package video

// WorkBuffer is a reusable plane buffer. Its length only ever grows, so repeated
// frames at the same or a smaller resolution don't allocate.
type WorkBuffer struct {
	buffer []uint8
}

// NewWorkBuffer creates a new WorkBuffer instance and initialize internal buffer
// with initialSize
func NewWorkBuffer(initialSize int) *WorkBuffer {
	return &WorkBuffer{
		buffer: make([]uint8, initialSize),
	}
}

// reserve makes sure the buffer is at least neededSize long and reports whether
// it had to allocate. Existing content is dropped on allocation.
func (buff *WorkBuffer) reserve(neededSize int) bool {
	if len(buff.buffer) >= neededSize {
		return false
	}

	if cap(buff.buffer) >= neededSize {
		buff.buffer = buff.buffer[:neededSize]
		return false
	}

	buff.buffer = make([]uint8, neededSize)
	return true
}

// Len returns the current buffer length.
func (buff *WorkBuffer) Len() int {
	return len(buff.buffer)
}

// Bytes returns the first n bytes of the buffer. n must not exceed Len.
func (buff *WorkBuffer) Bytes(n int) []uint8 {
	return buff.buffer[:n:n]
}
