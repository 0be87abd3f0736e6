package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounded(t *testing.T) {
	assert := assert.New(t)

	t.Run("Empty Buffer", func(t *testing.T) {
		b := NewBounded(4)

		assert.True(b.IsEmpty())
		assert.Equal(0, b.Len())
		assert.Equal(4, b.Cap())
		assert.Equal(4, b.AvailableForWrite())

		_, ok := b.ByteAt(0)
		assert.False(ok)
	})

	t.Run("AppendByte and Capacity", func(t *testing.T) {
		b := NewBounded(2)

		assert.True(b.AppendByte('a'))
		assert.True(b.AppendByte('b'))
		assert.False(b.AppendByte('c')) // full, rejected

		assert.Equal(2, b.Len())
		assert.Equal(0, b.AvailableForWrite())
		assert.Equal("ab", b.String())
	})

	t.Run("Append Slice Clamps", func(t *testing.T) {
		b := NewBounded(3)

		assert.Equal(3, b.Append([]byte("hello")))
		assert.Equal("hel", b.String())
		assert.Equal(0, b.Append([]byte("x")))
	})

	t.Run("ByteAt", func(t *testing.T) {
		b := NewBounded(4)
		b.Append([]byte("xyz"))

		c, ok := b.ByteAt(0)
		assert.True(ok)
		assert.Equal(byte('x'), c)

		c, ok = b.ByteAt(2)
		assert.True(ok)
		assert.Equal(byte('z'), c)

		_, ok = b.ByteAt(3)
		assert.False(ok)
		_, ok = b.ByteAt(-1)
		assert.False(ok)
	})

	t.Run("Remove From Front", func(t *testing.T) {
		b := NewBounded(8)
		b.Append([]byte("abcdef"))

		b.Remove(0, 1)
		assert.Equal("bcdef", b.String())

		b.Remove(1, 2)
		assert.Equal("bef", b.String())
	})

	t.Run("Remove Clamps Out Of Range", func(t *testing.T) {
		b := NewBounded(4)
		b.Append([]byte("abc"))

		b.Remove(1, 100)
		assert.Equal("a", b.String())

		b.Remove(5, 1) // start past end, no-op
		assert.Equal("a", b.String())

		b.Remove(0, 0) // zero count, no-op
		assert.Equal("a", b.String())

		b.Remove(-2, 1)
		assert.Equal("", b.String())
	})

	t.Run("Reset", func(t *testing.T) {
		b := NewBounded(4)
		b.Append([]byte("abcd"))

		b.Reset()
		assert.True(b.IsEmpty())
		assert.Equal(4, b.AvailableForWrite())
		assert.True(b.AppendByte('x'))
	})

	t.Run("Minimum Capacity", func(t *testing.T) {
		b := NewBounded(0)
		assert.Equal(1, b.Cap())
	})
}
