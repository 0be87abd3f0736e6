package stream

import (
	"errors"
	"fmt"

	"github.com/arloliu/go-simserial/buffer"
	"github.com/arloliu/go-simserial/internal/clock"
	"github.com/arloliu/go-simserial/logger"
)

// DefaultRxCapacity is the capacity of the internal receive buffer when no
// external receive buffer is configured.
const DefaultRxCapacity = 8

// config holds the resolved configuration of a Stream.
//
// The receive buffer choice is a tagged selection resolved once here: either
// an internal ring of rxCapacity bytes, or an externally supplied bounded
// buffer. It is never re-checked per call.
type config struct {
	tx *buffer.Bounded

	rxExternal *buffer.Bounded
	rxCapacity int

	clock  clock.Clock
	logger logger.Logger
}

// Option is a functional option for configuring a Stream.
type Option interface {
	apply(*config) error
}

type optFunc func(*config) error

func (f optFunc) apply(cfg *config) error { return f(cfg) }

// WithTxBuffer binds the transmit (backing) buffer. The buffer is referenced,
// not copied; bytes written to the stream are appended to it and the release
// algorithm consumes it from the front.
func WithTxBuffer(tx *buffer.Bounded) Option {
	return optFunc(func(cfg *config) error {
		if tx == nil {
			return errors.New("stream: transmit buffer must not be nil")
		}
		cfg.tx = tx

		return nil
	})
}

// WithInternalRxBuffer selects an internal receive buffer with the given
// capacity. This is the default, with capacity [DefaultRxCapacity].
func WithInternalRxBuffer(capacity int) Option {
	return optFunc(func(cfg *config) error {
		if capacity < 1 {
			return fmt.Errorf("stream: receive buffer capacity %d must be >= 1", capacity)
		}
		cfg.rxExternal = nil
		cfg.rxCapacity = capacity

		return nil
	})
}

// WithExternalRxBuffer selects an externally supplied receive buffer in place
// of the internal one. The buffer is referenced, not copied, so the caller
// can observe arrived bytes directly.
func WithExternalRxBuffer(rx *buffer.Bounded) Option {
	return optFunc(func(cfg *config) error {
		if rx == nil {
			return errors.New("stream: receive buffer must not be nil")
		}
		cfg.rxExternal = rx

		return nil
	})
}

// WithClock sets the monotonic time source used by the release algorithm.
// Intended for tests; defaults to the system clock.
func WithClock(c clock.Clock) Option {
	return optFunc(func(cfg *config) error {
		if c == nil {
			return errors.New("stream: clock must not be nil")
		}
		cfg.clock = c

		return nil
	})
}

// WithLogger sets the logger for the stream.
func WithLogger(l logger.Logger) Option {
	return optFunc(func(cfg *config) error {
		if l == nil {
			return errors.New("stream: logger must not be nil")
		}
		cfg.logger = l

		return nil
	})
}
