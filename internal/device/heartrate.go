package device

import (
	"context"
	"errors"
	"sort"
	"sync"

	"burnwatch/internal/logger"
)

// Source produces heart-rate readings until ctx is cancelled.
type Source interface {
	Run(ctx context.Context, emit func(Reading)) error
}

// HeartRateMonitor implements Sensor on top of a Source. The source runs
// only while the sensor is powered.
type HeartRateMonitor struct {
	mu        sync.Mutex
	source    Source
	nextID    ListenerID
	listeners map[ListenerID]func(Reading)
	cancel    context.CancelFunc
}

// NewHeartRateMonitor wraps source as a powered sensor.
func NewHeartRateMonitor(source Source) *HeartRateMonitor {
	return &HeartRateMonitor{
		source:    source,
		listeners: make(map[ListenerID]func(Reading)),
	}
}

// OnHeartRate registers a reading listener.
func (monitor *HeartRateMonitor) OnHeartRate(handler func(Reading)) ListenerID {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	monitor.nextID++
	monitor.listeners[monitor.nextID] = handler
	return monitor.nextID
}

// RemoveListener unregisters a listener.
func (monitor *HeartRateMonitor) RemoveListener(id ListenerID) {
	monitor.mu.Lock()
	delete(monitor.listeners, id)
	monitor.mu.Unlock()
}

// SetPower starts or stops the underlying source.
func (monitor *HeartRateMonitor) SetPower(on bool) {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()

	if on {
		if monitor.cancel != nil {
			return
		}
		ctx, cancel := context.WithCancel(context.Background())
		monitor.cancel = cancel
		go monitor.run(ctx)
		return
	}

	if monitor.cancel != nil {
		monitor.cancel()
		monitor.cancel = nil
	}
}

// Powered reports whether the source is running.
func (monitor *HeartRateMonitor) Powered() bool {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	return monitor.cancel != nil
}

func (monitor *HeartRateMonitor) run(ctx context.Context) {
	err := monitor.source.Run(ctx, func(reading Reading) {
		if ctx.Err() != nil {
			return
		}
		monitor.emit(reading)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("Heart-rate source stopped", "error", err)
	}
}

func (monitor *HeartRateMonitor) emit(reading Reading) {
	monitor.mu.Lock()
	ids := make([]ListenerID, 0, len(monitor.listeners))
	for id := range monitor.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	handlers := make([]func(Reading), 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, monitor.listeners[id])
	}
	monitor.mu.Unlock()

	for _, handler := range handlers {
		handler(reading)
	}
}
