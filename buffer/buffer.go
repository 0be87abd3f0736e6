package buffer

// Bounded is a fixed-capacity byte buffer with FIFO consumption from the
// front. Appends beyond capacity are rejected, never grown.
//
// Bounded is not safe for concurrent use.
type Bounded struct {
	data []byte
	cap  int
}

// NewBounded creates a Bounded buffer with the given capacity.
// A capacity < 1 is treated as 1.
func NewBounded(capacity int) *Bounded {
	if capacity < 1 {
		capacity = 1
	}
	return &Bounded{data: make([]byte, 0, capacity), cap: capacity}
}

// Len returns the number of bytes currently held.
func (b *Bounded) Len() int { return len(b.data) }

// Cap returns the fixed capacity.
func (b *Bounded) Cap() int { return b.cap }

// IsEmpty returns true if the buffer holds no bytes.
func (b *Bounded) IsEmpty() bool { return len(b.data) == 0 }

// AvailableForWrite returns the remaining free capacity. 0 means full.
func (b *Bounded) AvailableForWrite() int { return b.cap - len(b.data) }

// ByteAt returns the byte at index i (0-based from the front).
// It returns ok=false when i is out of range.
func (b *Bounded) ByteAt(i int) (byte, bool) {
	if i < 0 || i >= len(b.data) {
		return 0, false
	}
	return b.data[i], true
}

// AppendByte appends one byte. It returns false when the buffer is full.
func (b *Bounded) AppendByte(c byte) bool {
	if len(b.data) >= b.cap {
		return false
	}
	b.data = append(b.data, c)

	return true
}

// Append appends as many bytes of p as capacity allows and returns the
// number appended.
func (b *Bounded) Append(p []byte) int {
	n := b.cap - len(b.data)
	if n > len(p) {
		n = len(p)
	}
	b.data = append(b.data, p[:n]...)

	return n
}

// Remove deletes count bytes starting at start, shifting the remainder left.
// Out-of-range arguments are clamped; a non-positive count is a no-op.
func (b *Bounded) Remove(start, count int) {
	if start < 0 {
		start = 0
	}
	if start >= len(b.data) || count <= 0 {
		return
	}
	if start+count > len(b.data) {
		count = len(b.data) - start
	}
	b.data = append(b.data[:start], b.data[start+count:]...)
}

// Reset empties the buffer, retaining the underlying storage.
func (b *Bounded) Reset() { b.data = b.data[:0] }

// Bytes returns the buffered bytes. The slice is only valid until the next
// mutating call.
func (b *Bounded) Bytes() []byte { return b.data }

// String returns the buffered bytes as a string.
func (b *Bounded) String() string { return string(b.data) }
