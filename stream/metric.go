package stream

import (
	"sync/atomic"
)

// StreamMetrics contains atomic metrics for a simulated serial stream.
// Metrics can be used as the value of a prometheus CounterFunc or GaugeFunc.
type StreamMetrics struct {
	// BytesWritten indicates the number of bytes accepted into the transmit buffer.
	BytesWritten atomic.Uint64
	// BytesReleased indicates the number of bytes moved from the transmit
	// buffer into the receive buffer by the release algorithm.
	BytesReleased atomic.Uint64
	// BytesRead indicates the number of bytes consumed by ReadByte.
	BytesRead atomic.Uint64

	// RxOverrunCount indicates the number of bytes evicted from a full
	// receive buffer (drop-oldest overruns).
	RxOverrunCount atomic.Uint64
}

func (m *StreamMetrics) incBytesWritten() {
	m.BytesWritten.Add(1)
}

func (m *StreamMetrics) addBytesWritten(n int) {
	m.BytesWritten.Add(uint64(n))
}

func (m *StreamMetrics) addBytesReleased(n int) {
	m.BytesReleased.Add(uint64(n))
}

func (m *StreamMetrics) incBytesRead() {
	m.BytesRead.Add(1)
}

func (m *StreamMetrics) addRxOverrunCount(n int) {
	m.RxOverrunCount.Add(uint64(n))
}
