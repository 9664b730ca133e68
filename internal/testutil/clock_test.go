package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClock_StartsStopped(t *testing.T) {
	c := NewManualClock()
	first := c.Now()
	assert.Equal(t, first, c.Now(), "clock must not move on its own")
}

func TestManualClock_Advance(t *testing.T) {
	c := NewManualClock()
	start := c.Now()

	c.Advance(10 * time.Millisecond)
	c.Advance(5 * time.Millisecond)

	assert.Equal(t, 15*time.Millisecond, c.Now().Sub(start))
}

func TestManualClock_ThreadSafe(t *testing.T) {
	c := NewManualClock()
	start := c.Now()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Advance(time.Millisecond)
			_ = c.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50*time.Millisecond, c.Now().Sub(start))
}

func TestStepClock(t *testing.T) {
	c := NewStepClock(time.Millisecond)
	a := c.Now()
	b := c.Now()
	d := c.Now()

	assert.Equal(t, time.Millisecond, b.Sub(a))
	assert.Equal(t, 2*time.Millisecond, d.Sub(a))
	assert.Equal(t, NewManualClock().Now(), a)
}
