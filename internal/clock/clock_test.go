package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	assert := assert.New(t)

	base := time.Unix(1000, 0)
	c := NewManual(base)

	assert.Equal(base, c.Now())
	assert.Equal(time.Duration(0), c.Since(base))

	c.Advance(250 * time.Microsecond)
	assert.Equal(250*time.Microsecond, c.Since(base))

	c.Advance(-time.Second) // ignored
	assert.Equal(250*time.Microsecond, c.Since(base))

	c.Set(base.Add(time.Second))
	assert.Equal(time.Second, c.Since(base))
}

func TestSystem(t *testing.T) {
	c := System()

	t0 := c.Now()
	assert.False(t, t0.IsZero())
	assert.GreaterOrEqual(t, c.Since(t0), time.Duration(0))
}
