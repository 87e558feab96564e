package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	c := Fixed(time.Date(2026, 10, 16, 23, 45, 0, 0, loc))

	got := Today(c)

	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), got)
}

func TestRealClock(t *testing.T) {
	before := time.Now()
	got := Real().Now()
	assert.False(t, got.Before(before))
}
