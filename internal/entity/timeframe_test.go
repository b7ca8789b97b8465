package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalMinutes(t *testing.T) {
	assert.Equal(t, 1, IntervalMinutes("1m"))
	assert.Equal(t, 5, IntervalMinutes("5m"))
	assert.Equal(t, 60, IntervalMinutes("1h"))

	// unrecognized codes fall back instead of failing
	assert.Equal(t, DefaultIntervalMinutes, IntervalMinutes("4h"))
	assert.Equal(t, DefaultIntervalMinutes, IntervalMinutes(""))
	assert.Equal(t, DefaultIntervalMinutes, IntervalMinutes("bogus"))
}

func TestInterval(t *testing.T) {
	assert.Equal(t, time.Minute, Interval("1m"))
	assert.Equal(t, 5*time.Minute, Interval("5m"))
	assert.Equal(t, time.Hour, Interval("1h"))
	assert.Equal(t, time.Hour, Interval("nope"))
}
