package stream

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Hub is a registry of named simulated ports, letting harness code share
// streams by name the way real code opens serial ports by path.
//
// Hub is safe for concurrent use. The streams themselves are not; see the
// package documentation.
type Hub struct {
	ports *xsync.MapOf[string, *Stream]
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		ports: xsync.NewMapOf[string, *Stream](),
	}
}

// Register adds a stream under the given port name.
// It returns [ErrStreamNil] for a nil stream and [ErrDuplicatePort] when the
// name is already taken.
func (h *Hub) Register(name string, s *Stream) error {
	if s == nil {
		return ErrStreamNil
	}
	if _, loaded := h.ports.LoadOrStore(name, s); loaded {
		return ErrDuplicatePort
	}

	return nil
}

// Open returns the stream registered under the given port name.
func (h *Hub) Open(name string) (*Stream, bool) {
	return h.ports.Load(name)
}

// Unregister removes the named port. Removing an unknown name is a no-op.
func (h *Hub) Unregister(name string) {
	h.ports.Delete(name)
}

// Names returns the registered port names in no particular order.
func (h *Hub) Names() []string {
	names := make([]string, 0, h.ports.Size())
	h.ports.Range(func(name string, _ *Stream) bool {
		names = append(names, name)
		return true
	})

	return names
}

// Len returns the number of registered ports.
func (h *Hub) Len() int {
	return h.ports.Size()
}
