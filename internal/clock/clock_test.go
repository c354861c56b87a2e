package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock(t *testing.T) {
	clk := NewRealClock()
	before := time.Now()
	now := clk.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := NewMockClock(start)

	assert.Equal(t, start, clk.Now())

	clk.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), clk.Now())

	reset := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	clk.Set(reset)
	assert.Equal(t, reset, clk.Now())
}
