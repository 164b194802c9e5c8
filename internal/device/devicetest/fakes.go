// Package devicetest provides deterministic device fakes for tests.
package devicetest

import (
	"sort"
	"sync"
	"time"

	"burnwatch/internal/device"
)

// Clock is a manual clock. Timers fire synchronously inside Advance.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	nextID int
	timers map[int]*fakeTimer
}

type fakeTimer struct {
	clock    *Clock
	id       int
	at       time.Time
	interval time.Duration
	fn       func()
}

// NewClock creates a clock reading start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start, timers: make(map[int]*fakeTimer)}
}

// Now returns the current fake time.
func (clock *Clock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

// AfterFunc schedules fn at now+delay.
func (clock *Clock) AfterFunc(delay time.Duration, fn func()) device.Timer {
	return clock.schedule(delay, 0, fn)
}

// Every schedules fn each interval.
func (clock *Clock) Every(interval time.Duration, fn func()) device.Timer {
	return clock.schedule(interval, interval, fn)
}

// Advance moves time forward by d, firing due timers in time order.
func (clock *Clock) Advance(d time.Duration) {
	clock.mu.Lock()
	target := clock.now.Add(d)
	for {
		next := clock.earliestLocked(target)
		if next == nil {
			break
		}
		clock.now = next.at
		if next.interval > 0 {
			next.at = next.at.Add(next.interval)
		} else {
			delete(clock.timers, next.id)
		}
		fn := next.fn
		clock.mu.Unlock()
		fn()
		clock.mu.Lock()
	}
	clock.now = target
	clock.mu.Unlock()
}

// Pending returns the number of scheduled timers.
func (clock *Clock) Pending() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return len(clock.timers)
}

func (clock *Clock) schedule(delay, interval time.Duration, fn func()) device.Timer {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.nextID++
	timer := &fakeTimer{
		clock:    clock,
		id:       clock.nextID,
		at:       clock.now.Add(delay),
		interval: interval,
		fn:       fn,
	}
	clock.timers[timer.id] = timer
	return timer
}

func (clock *Clock) earliestLocked(limit time.Time) *fakeTimer {
	due := make([]*fakeTimer, 0, len(clock.timers))
	for _, timer := range clock.timers {
		if !timer.at.After(limit) {
			due = append(due, timer)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at.Equal(due[j].at) {
			return due[i].id < due[j].id
		}
		return due[i].at.Before(due[j].at)
	})
	return due[0]
}

func (timer *fakeTimer) Stop() bool {
	timer.clock.mu.Lock()
	defer timer.clock.mu.Unlock()
	if _, ok := timer.clock.timers[timer.id]; !ok {
		return false
	}
	delete(timer.clock.timers, timer.id)
	return true
}

// Haptics counts buzzes.
type Haptics struct {
	mu     sync.Mutex
	buzzes int
}

// Buzz records a buzz.
func (haptics *Haptics) Buzz() {
	haptics.mu.Lock()
	haptics.buzzes++
	haptics.mu.Unlock()
}

// Buzzes returns the number of buzzes so far.
func (haptics *Haptics) Buzzes() int {
	haptics.mu.Lock()
	defer haptics.mu.Unlock()
	return haptics.buzzes
}

// Backlight records brightness changes.
type Backlight struct {
	mu     sync.Mutex
	levels []float64
}

// SetBrightness records level.
func (backlight *Backlight) SetBrightness(level float64) {
	backlight.mu.Lock()
	backlight.levels = append(backlight.levels, level)
	backlight.mu.Unlock()
}

// Levels returns every level set so far.
func (backlight *Backlight) Levels() []float64 {
	backlight.mu.Lock()
	defer backlight.mu.Unlock()
	return append([]float64(nil), backlight.levels...)
}

// Sensor delivers scripted readings to its listeners whether or not it
// is powered, so tests can exercise the consumer's own guards.
type Sensor struct {
	mu        sync.Mutex
	nextID    device.ListenerID
	listeners map[device.ListenerID]func(device.Reading)
	powered   bool
}

// NewSensor creates an unpowered fake sensor.
func NewSensor() *Sensor {
	return &Sensor{listeners: make(map[device.ListenerID]func(device.Reading))}
}

// OnHeartRate registers handler.
func (sensor *Sensor) OnHeartRate(handler func(device.Reading)) device.ListenerID {
	sensor.mu.Lock()
	defer sensor.mu.Unlock()
	sensor.nextID++
	sensor.listeners[sensor.nextID] = handler
	return sensor.nextID
}

// RemoveListener unregisters id.
func (sensor *Sensor) RemoveListener(id device.ListenerID) {
	sensor.mu.Lock()
	delete(sensor.listeners, id)
	sensor.mu.Unlock()
}

// SetPower records the power state.
func (sensor *Sensor) SetPower(on bool) {
	sensor.mu.Lock()
	sensor.powered = on
	sensor.mu.Unlock()
}

// Powered returns the last power state.
func (sensor *Sensor) Powered() bool {
	sensor.mu.Lock()
	defer sensor.mu.Unlock()
	return sensor.powered
}

// Listeners returns the number of registered listeners.
func (sensor *Sensor) Listeners() int {
	sensor.mu.Lock()
	defer sensor.mu.Unlock()
	return len(sensor.listeners)
}

// Emit delivers reading to every listener.
func (sensor *Sensor) Emit(reading device.Reading) {
	sensor.mu.Lock()
	handlers := make([]func(device.Reading), 0, len(sensor.listeners))
	for _, handler := range sensor.listeners {
		handlers = append(handlers, handler)
	}
	sensor.mu.Unlock()

	for _, handler := range handlers {
		handler(reading)
	}
}
