package devicetest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_FiresTimersInOrder(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := NewClock(start)

	var fired []string
	clock.AfterFunc(30*time.Second, func() { fired = append(fired, "once") })
	ticker := clock.Every(10*time.Second, func() { fired = append(fired, "tick@"+clock.Now().Sub(start).String()) })

	// equal deadlines fire in scheduling order
	clock.Advance(35 * time.Second)
	assert.Equal(t, []string{"tick@10s", "tick@20s", "once", "tick@30s"}, fired)
	assert.Equal(t, start.Add(35*time.Second), clock.Now())

	assert.True(t, ticker.Stop())
	assert.False(t, ticker.Stop())
	assert.Equal(t, 0, clock.Pending())
}

func TestClock_TimerScheduledDuringAdvanceFires(t *testing.T) {
	clock := NewClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	count := 0
	var reschedule func()
	reschedule = func() {
		count++
		clock.AfterFunc(20*time.Second, reschedule)
	}
	clock.AfterFunc(20*time.Second, reschedule)

	clock.Advance(100 * time.Second)
	assert.Equal(t, 5, count)
	assert.Equal(t, 1, clock.Pending())
}
