// Package buffer provides the byte containers used by the simulated serial
// stream: a fixed-capacity bounded buffer with front removal, and a circular
// buffer with drop-oldest overwrite semantics.
//
// Bounded models a pre-allocated character buffer: appends fail when the
// buffer is full, and bytes are consumed from the front. It backs the
// transmit side of a stream and may also serve as an externally supplied
// receive buffer.
//
// Ring is the receive-side container: a head/tail circular buffer over a
// single arena. When full, PushEvict drops the oldest byte to make room, so
// the newest data always wins, matching hardware receive-overrun behavior.
package buffer
