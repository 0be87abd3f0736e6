package stream

import "errors"

var (
	// ErrNotBound indicates that no transmit buffer is bound to the stream.
	ErrNotBound = errors.New("stream: no transmit buffer bound")

	// ErrStreamNil indicates that a nil Stream was provided.
	ErrStreamNil = errors.New("stream: stream is nil")

	// ErrDuplicatePort indicates that a port name is already registered in a Hub.
	ErrDuplicatePort = errors.New("stream: port name already registered")
)
