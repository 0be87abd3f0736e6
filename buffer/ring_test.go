package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing(t *testing.T) {
	assert := assert.New(t)

	t.Run("Empty Ring", func(t *testing.T) {
		r := NewRing(4)

		assert.True(r.IsEmpty())
		assert.Equal(0, r.Len())
		assert.Equal(4, r.Cap())

		_, ok := r.First()
		assert.False(ok)
		_, ok = r.Pop()
		assert.False(ok)
	})

	t.Run("FIFO Order", func(t *testing.T) {
		r := NewRing(4)

		assert.False(r.PushEvict('a'))
		assert.False(r.PushEvict('b'))
		assert.False(r.PushEvict('c'))
		assert.Equal(3, r.Len())

		c, ok := r.First()
		assert.True(ok)
		assert.Equal(byte('a'), c)
		assert.Equal(3, r.Len()) // First does not consume

		for _, want := range []byte("abc") {
			c, ok := r.Pop()
			assert.True(ok)
			assert.Equal(want, c)
		}
		assert.True(r.IsEmpty())
	})

	t.Run("Evicts Oldest When Full", func(t *testing.T) {
		r := NewRing(3)

		assert.False(r.PushEvict('a'))
		assert.False(r.PushEvict('b'))
		assert.False(r.PushEvict('c'))
		assert.True(r.PushEvict('d')) // evicts 'a'
		assert.True(r.PushEvict('e')) // evicts 'b'
		assert.Equal(3, r.Len())

		var got []byte
		for {
			c, ok := r.Pop()
			if !ok {
				break
			}
			got = append(got, c)
		}
		assert.Equal("cde", string(got))
	})

	t.Run("Wraps Around", func(t *testing.T) {
		r := NewRing(3)

		for i := 0; i < 10; i++ {
			r.PushEvict(byte('0' + i))
			c, ok := r.Pop()
			assert.True(ok)
			assert.Equal(byte('0'+i), c)
		}
		assert.True(r.IsEmpty())
	})

	t.Run("Reset", func(t *testing.T) {
		r := NewRing(2)
		r.PushEvict('a')
		r.PushEvict('b')

		r.Reset()
		assert.True(r.IsEmpty())
		assert.False(r.PushEvict('c'))

		c, ok := r.Pop()
		assert.True(ok)
		assert.Equal(byte('c'), c)
	})

	t.Run("Minimum Capacity", func(t *testing.T) {
		r := NewRing(0)
		assert.Equal(1, r.Cap())

		assert.False(r.PushEvict('a'))
		assert.True(r.PushEvict('b'))

		c, _ := r.Pop()
		assert.Equal(byte('b'), c)
	})
}
