package stream

import (
	"io"
	"time"

	"github.com/arloliu/go-simserial/buffer"
	"github.com/arloliu/go-simserial/internal/clock"
	"github.com/arloliu/go-simserial/logger"
)

// bitsPerByte is the number of bit times a byte occupies on the simulated
// wire: start + 8 data + parity + 2 stop + 1. It may overestimate links that
// run without parity or with a single stop bit.
const bitsPerByte = 13

// receiver is the receive-side container a Stream releases bytes into:
// either the internal drop-oldest ring or an externally supplied bounded
// buffer.
type receiver interface {
	Len() int
	IsEmpty() bool
	First() (byte, bool)
	Pop() (byte, bool)
	// PushEvict appends a byte, evicting the oldest byte when full.
	// It reports whether an eviction happened.
	PushEvict(c byte) bool
}

// boundedReceiver adapts an external buffer.Bounded to the receiver
// interface, applying the drop-oldest overflow policy on push.
type boundedReceiver struct {
	buf *buffer.Bounded
}

func (r boundedReceiver) Len() int { return r.buf.Len() }

func (r boundedReceiver) IsEmpty() bool { return r.buf.IsEmpty() }

func (r boundedReceiver) First() (byte, bool) { return r.buf.ByteAt(0) }

func (r boundedReceiver) Pop() (byte, bool) {
	c, ok := r.buf.ByteAt(0)
	if ok {
		r.buf.Remove(0, 1)
	}
	return c, ok
}

func (r boundedReceiver) PushEvict(c byte) bool {
	evicted := false
	if r.buf.AvailableForWrite() == 0 {
		r.buf.Remove(0, 1)
		evicted = true
	}
	r.buf.AppendByte(c)

	return evicted
}

// Stream is a software-simulated serial port.
//
// Bytes written to the stream queue in a transmit buffer and become readable
// only as simulated transmission time elapses at the configured baud rate.
// See the package documentation for the pacing model.
//
// The zero value is not usable; create streams with [New]. A Stream is not
// safe for concurrent use.
type Stream struct {
	// tx is the backing buffer holding bytes "in flight". It is referenced,
	// not owned, and shrinks only from the front as bytes are released.
	tx *buffer.Bounded
	rx receiver

	baud       uint32
	started    bool
	bytePeriod time.Duration

	// anchor marks the last point bytes were released. It is advanced by
	// every operation that simulates the passage of time, minus any sub-byte
	// excess so fractional timing credit survives across calls.
	anchor time.Time

	clock  clock.Clock
	logger logger.Logger

	metrics StreamMetrics
}

// New creates a Stream from the given options.
//
// Without options the stream has no transmit buffer bound (all operations
// are no-ops until [Stream.BeginWith] binds one) and uses an internal
// receive buffer of [DefaultRxCapacity] bytes.
func New(opts ...Option) (*Stream, error) {
	cfg := &config{
		rxCapacity: DefaultRxCapacity,
		clock:      clock.System(),
		logger:     logger.GetLogger(),
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	s := &Stream{
		tx:     cfg.tx,
		clock:  cfg.clock,
		logger: cfg.logger,
	}

	if cfg.rxExternal != nil {
		s.rx = boundedReceiver{buf: cfg.rxExternal}
	} else {
		s.rx = buffer.NewRing(cfg.rxCapacity)
	}

	return s, nil
}

// Begin activates the stream at the given baud rate and resets the release
// timer to now. A baud rate of 0 disables pacing: written bytes are readable
// immediately.
//
// Begin may be called repeatedly to change the rate.
func (s *Stream) Begin(baud uint32) {
	s.baud = baud
	s.started = true
	s.bytePeriod = 0

	if baud > 0 {
		// 1s / (baud/13) per byte; the +1µs keeps the period non-zero and
		// matches integer truncation of the bit-time division.
		s.bytePeriod = time.Duration(bitsPerByte*1_000_000/uint64(baud)+1) * time.Microsecond
		s.anchor = s.clock.Now()
	}

	s.logger.Debug("stream: begin", "baud", baud, "bytePeriod", s.bytePeriod)
}

// BeginWith rebinds the transmit buffer and then activates the stream at the
// given baud rate.
func (s *Stream) BeginWith(tx *buffer.Bounded, baud uint32) {
	s.tx = tx
	s.Begin(baud)
}

// Baud returns the configured baud rate.
func (s *Stream) Baud() uint32 { return s.baud }

// BytePeriod returns the derived per-byte transfer duration. It is zero when
// pacing is disabled or Begin has not been called.
func (s *Stream) BytePeriod() time.Duration { return s.bytePeriod }

// Metrics returns the stream metrics.
func (s *Stream) Metrics() *StreamMetrics { return &s.metrics }

// AvailableForWrite returns the transmit buffer's free capacity, or 0 when
// no transmit buffer is bound. The write side is not rate-limited.
func (s *Stream) AvailableForWrite() int {
	if s.tx == nil {
		return 0
	}
	return s.tx.AvailableForWrite()
}

// WriteByte queues one byte for simulated transmission. It returns false
// when no transmit buffer is bound or the transmit buffer is full.
func (s *Stream) WriteByte(c byte) bool {
	if s.tx == nil {
		return false
	}
	excess := s.release()
	ok := s.tx.AppendByte(c)
	if ok {
		s.metrics.incBytesWritten()
	}
	s.rearm(excess)

	return ok
}

// Write queues p for simulated transmission, implementing io.Writer over the
// transmit buffer. It returns [ErrNotBound] when no transmit buffer is bound
// and io.ErrShortWrite when the transmit buffer fills before all of p is
// accepted.
func (s *Stream) Write(p []byte) (int, error) {
	if s.tx == nil {
		return 0, ErrNotBound
	}
	excess := s.release()
	n := s.tx.Append(p)
	s.metrics.addBytesWritten(n)
	s.rearm(excess)

	if n < len(p) {
		return n, io.ErrShortWrite
	}

	return n, nil
}

// Available returns the number of bytes ready to read.
//
// It returns 0 when unbound or Begin has not been called. With pacing
// disabled it returns the full transmit buffer length; otherwise it runs the
// release algorithm and returns the receive buffer length.
func (s *Stream) Available() int {
	if s.tx == nil || !s.started {
		return 0
	}
	if s.baud == 0 {
		return s.tx.Len()
	}
	s.rearm(s.release())

	return s.rx.Len()
}

// ReadByte removes and returns the next arrived byte. It returns ok=false
// when unbound, not started, or no byte has arrived yet.
func (s *Stream) ReadByte() (byte, bool) {
	if s.tx == nil || !s.started {
		return 0, false
	}
	if s.baud == 0 {
		c, ok := s.tx.ByteAt(0)
		if ok {
			s.tx.Remove(0, 1)
			s.metrics.incBytesRead()
		}
		return c, ok
	}

	s.rearm(s.release())
	c, ok := s.rx.Pop()
	if ok {
		s.metrics.incBytesRead()
	}

	return c, ok
}

// Peek returns the next arrived byte without removing it, under the same
// conditions as [Stream.ReadByte].
func (s *Stream) Peek() (byte, bool) {
	if s.tx == nil || !s.started {
		return 0, false
	}
	if s.baud == 0 {
		return s.tx.ByteAt(0)
	}

	s.rearm(s.release())

	return s.rx.First()
}

// Flush runs the release algorithm so any elapsed simulated transmission
// time takes effect, without reading or writing.
func (s *Stream) Flush() {
	s.rearm(s.release())
}

// rearm re-anchors the release timer to now minus the unconsumed excess
// time, preserving fractional-byte timing credit across calls.
func (s *Stream) rearm(excess time.Duration) {
	s.anchor = s.clock.Now().Add(-excess)
}

// release moves bytes whose simulated transmission time has elapsed from the
// transmit buffer into the receive buffer, evicting the oldest received byte
// when the receive buffer is full.
//
// It returns the elapsed time not consumed by whole bytes; callers pass it
// to rearm. A zero return means there was nothing pending, so re-anchoring
// to now is correct.
func (s *Stream) release() time.Duration {
	if s.tx == nil || !s.started || s.baud == 0 {
		return 0
	}
	if s.tx.IsEmpty() {
		return 0
	}

	elapsed := s.clock.Since(s.anchor)
	n := int(elapsed / s.bytePeriod)
	if n == 0 {
		// Less than one byte time; hand the whole elapsed span back so the
		// partial-byte credit is not lost.
		return elapsed
	}
	excess := elapsed - time.Duration(n)*s.bytePeriod

	if n > s.tx.Len() {
		n = s.tx.Len()
	}

	overruns := 0
	for i := 0; i < n; i++ {
		c, _ := s.tx.ByteAt(0)
		s.tx.Remove(0, 1)
		if s.rx.PushEvict(c) {
			overruns++
		}
	}

	s.metrics.addBytesReleased(n)
	if overruns > 0 {
		s.metrics.addRxOverrunCount(overruns)
		s.logger.Debug("stream: rx overrun, oldest bytes dropped", "dropped", overruns)
	}

	return excess
}
