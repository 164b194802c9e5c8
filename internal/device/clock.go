package device

import (
	"sync"
	"time"
)

// SystemClock schedules callbacks on the runtime timers.
type SystemClock struct{}

// Now returns the wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// AfterFunc runs fn once after delay on its own goroutine.
func (SystemClock) AfterFunc(delay time.Duration, fn func()) Timer {
	return time.AfterFunc(delay, fn)
}

// Every runs fn each interval until the returned timer is stopped.
func (SystemClock) Every(interval time.Duration, fn func()) Timer {
	repeating := &repeatingTimer{
		ticker: time.NewTicker(interval),
		stopCh: make(chan struct{}),
	}
	go repeating.run(fn)
	return repeating
}

type repeatingTimer struct {
	ticker *time.Ticker
	stopCh chan struct{}
	once   sync.Once
}

func (timer *repeatingTimer) run(fn func()) {
	defer timer.ticker.Stop()
	for {
		select {
		case <-timer.stopCh:
			return
		case <-timer.ticker.C:
			fn()
		}
	}
}

func (timer *repeatingTimer) Stop() bool {
	stopped := false
	timer.once.Do(func() {
		close(timer.stopCh)
		stopped = true
	})
	return stopped
}
