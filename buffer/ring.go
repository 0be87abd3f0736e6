package buffer

// Ring is a fixed-capacity circular byte buffer with drop-oldest overwrite.
// Bytes are pushed at the tail and popped from the head; when full, pushing
// evicts the head byte so the newest data always wins.
//
// Ring is not safe for concurrent use.
type Ring struct {
	data []byte
	head int
	size int
}

// NewRing creates a Ring with the given capacity.
// A capacity < 1 is treated as 1.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{data: make([]byte, capacity)}
}

// Len returns the number of bytes currently held.
func (r *Ring) Len() int { return r.size }

// Cap returns the fixed capacity.
func (r *Ring) Cap() int { return len(r.data) }

// IsEmpty returns true if the ring holds no bytes.
func (r *Ring) IsEmpty() bool { return r.size == 0 }

// First returns the oldest byte without removing it.
// It returns ok=false when the ring is empty.
func (r *Ring) First() (byte, bool) {
	if r.size == 0 {
		return 0, false
	}
	return r.data[r.head], true
}

// Pop removes and returns the oldest byte.
// It returns ok=false when the ring is empty.
func (r *Ring) Pop() (byte, bool) {
	if r.size == 0 {
		return 0, false
	}
	c := r.data[r.head]
	r.head = (r.head + 1) % len(r.data)
	r.size--

	return c, true
}

// PushEvict appends a byte at the tail. When the ring is full it evicts the
// oldest byte to make room and returns true; otherwise it returns false.
func (r *Ring) PushEvict(c byte) bool {
	evicted := false
	if r.size == len(r.data) {
		r.head = (r.head + 1) % len(r.data)
		r.size--
		evicted = true
	}
	r.data[(r.head+r.size)%len(r.data)] = c
	r.size++

	return evicted
}

// Reset empties the ring, retaining the underlying storage.
func (r *Ring) Reset() {
	r.head = 0
	r.size = 0
}
