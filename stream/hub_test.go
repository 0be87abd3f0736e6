package stream

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub(t *testing.T) {
	assert := assert.New(t)

	t.Run("Register and Open", func(t *testing.T) {
		h := NewHub()

		s, err := New()
		require.NoError(t, err)
		require.NoError(t, h.Register("ttyV0", s))

		got, ok := h.Open("ttyV0")
		assert.True(ok)
		assert.Same(s, got)

		_, ok = h.Open("ttyV1")
		assert.False(ok)
		assert.Equal(1, h.Len())
	})

	t.Run("Duplicate Name", func(t *testing.T) {
		h := NewHub()

		s1, err := New()
		require.NoError(t, err)
		s2, err := New()
		require.NoError(t, err)

		require.NoError(t, h.Register("ttyV0", s1))
		assert.ErrorIs(h.Register("ttyV0", s2), ErrDuplicatePort)

		got, _ := h.Open("ttyV0")
		assert.Same(s1, got)
	})

	t.Run("Nil Stream", func(t *testing.T) {
		h := NewHub()
		assert.ErrorIs(h.Register("ttyV0", nil), ErrStreamNil)
	})

	t.Run("Unregister", func(t *testing.T) {
		h := NewHub()

		s, err := New()
		require.NoError(t, err)
		require.NoError(t, h.Register("ttyV0", s))

		h.Unregister("ttyV0")
		_, ok := h.Open("ttyV0")
		assert.False(ok)
		assert.Equal(0, h.Len())

		h.Unregister("ttyV0") // no-op
	})

	t.Run("Names", func(t *testing.T) {
		h := NewHub()

		for i := 0; i < 3; i++ {
			s, err := New()
			require.NoError(t, err)
			require.NoError(t, h.Register(fmt.Sprintf("ttyV%d", i), s))
		}

		names := h.Names()
		assert.Len(names, 3)
		assert.ElementsMatch([]string{"ttyV0", "ttyV1", "ttyV2"}, names)
	})

	t.Run("Concurrent Access", func(t *testing.T) {
		h := NewHub()

		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				s, err := New()
				if err != nil {
					return
				}
				_ = h.Register(fmt.Sprintf("ttyV%d", i), s)
				_, _ = h.Open(fmt.Sprintf("ttyV%d", i))
			}(i)
		}
		wg.Wait()

		assert.Equal(100, h.Len())
	})
}
