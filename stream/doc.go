// Package stream provides a software-simulated serial port: a byte stream
// backed by an in-memory bounded buffer whose read side paces byte
// availability to match a configured baud rate.
//
// Bytes written to a [Stream] are queued in a transmit buffer as if awaiting
// transmission. A lazy release algorithm, run on every stream operation,
// converts wall-clock time elapsed since the last release into a number of
// "arrived" bytes and moves them into a fixed-capacity receive buffer. When
// the receive buffer is full the oldest byte is evicted, modeling a hardware
// receive overrun where the newest data wins.
//
// # Pacing
//
// A byte is assumed to occupy 13 bit times on the wire (start + 8 data +
// parity + 2 stop + 1), so the per-byte period is derived from the baud rate
// as 13e6/baud microseconds. Sub-byte leftover time is carried across calls,
// so timing credit is never lost no matter how often the stream is polled.
//
// There is no background timer: pacing is recomputed on demand from a
// monotonic clock. If callers poll less often than the receive buffer fills,
// bytes are silently aged out, oldest first; the drop count is observable via
// [StreamMetrics].
//
// # Modes
//
// A Stream is inert until [Stream.Begin] is called. A baud rate of 0 disables
// pacing entirely: reads are relayed straight from the transmit buffer.
//
// A Stream is intended for single-goroutine use; only [Hub] is safe for
// concurrent access.
package stream
