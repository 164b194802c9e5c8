package monitor

import (
	"sync"

	"github.com/google/uuid"

	"burnwatch/internal/core/dispatch"
	"burnwatch/internal/core/energy"
	"burnwatch/internal/core/model"
	"burnwatch/internal/device"
	"burnwatch/internal/logger"
)

// Monitor is the energy-budget state machine of the watch app.
// Device callbacks are funnelled through the dispatcher so every handler
// runs to completion before the next one starts.
type Monitor struct {
	mu         sync.Mutex
	config     model.MonitorConfig
	device     device.Bundle
	dispatcher dispatch.Dispatcher

	window       *energy.SampleWindow
	state        State
	cumulativeKJ float64
	sessionID    string

	started      bool
	closed       bool
	toggleWatch  device.WatchID
	dismissWatch device.WatchID
	listener     device.ListenerID
	tickTimer    device.Timer
	tickSeq      uint64
	brightness   device.Timer

	events []chan Event
}

// New creates a stopped Monitor. Nothing touches the device until Start.
func New(config model.MonitorConfig, dev device.Bundle, dispatcher dispatch.Dispatcher) *Monitor {
	defaults := model.DefaultMonitorConfig()
	if config.UpdateInterval <= 0 {
		config.UpdateInterval = defaults.UpdateInterval
	}
	if config.Retention <= 0 {
		config.Retention = defaults.Retention
	}
	if config.BrightnessInterval <= 0 {
		config.BrightnessInterval = defaults.BrightnessInterval
	}
	if dispatcher == nil {
		dispatcher = dispatch.Inline{}
	}

	return &Monitor{
		config:     config,
		device:     dev,
		dispatcher: dispatcher,
		window:     energy.NewSampleWindow(config.Retention, config.AverageSamples),
		state:      StateStopped,
	}
}

// Subscribe registers a new observer channel.
func (monitor *Monitor) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	monitor.mu.Lock()
	if monitor.closed {
		close(ch)
	} else {
		monitor.events = append(monitor.events, ch)
	}
	monitor.mu.Unlock()
	return ch
}

// Start registers the toggle button and shows the idle screen.
func (monitor *Monitor) Start() {
	monitor.dispatcher.Dispatch(func() {
		monitor.mu.Lock()
		defer monitor.mu.Unlock()
		if monitor.started || monitor.closed {
			return
		}
		monitor.started = true
		monitor.toggleWatch = monitor.device.Input.Watch(device.ButtonMain, func() {
			monitor.dispatcher.Dispatch(monitor.toggle)
		}, device.WatchOptions{Debounce: monitor.config.ButtonDebounce, Repeat: true})
		monitor.renderIdleLocked()
	})
}

// Toggle flips monitoring on or off, like a press of the main button.
func (monitor *Monitor) Toggle() {
	monitor.dispatcher.Dispatch(monitor.toggle)
}

// Dismiss acknowledges a displayed warning, like a tap on the screen.
func (monitor *Monitor) Dismiss() {
	monitor.dispatcher.Dispatch(monitor.dismiss)
}

// Status returns a snapshot of the current session.
func (monitor *Monitor) Status() Status {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	return Status{
		State:        monitor.state,
		SessionID:    monitor.sessionID,
		CumulativeKJ: monitor.cumulativeKJ,
		ThresholdKJ:  energy.WarningThresholdKJ(monitor.config.BudgetBTU),
		BudgetBTU:    monitor.config.BudgetBTU,
		Samples:      monitor.window.Len(),
		Ticking:      monitor.tickTimer != nil,
	}
}

// Close releases every device registration and closes observers.
// It may be called from any goroutine.
func (monitor *Monitor) Close() {
	monitor.mu.Lock()
	if monitor.closed {
		monitor.mu.Unlock()
		return
	}
	monitor.closed = true
	if monitor.state != StateStopped {
		monitor.releaseSessionLocked()
		monitor.state = StateStopped
	}
	if monitor.toggleWatch != 0 {
		monitor.device.Input.Unwatch(monitor.toggleWatch)
		monitor.toggleWatch = 0
	}
	events := monitor.events
	monitor.events = nil
	monitor.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (monitor *Monitor) toggle() {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	if monitor.closed {
		return
	}
	if monitor.state == StateStopped {
		monitor.startSessionLocked()
		return
	}
	monitor.stopSessionLocked()
}

func (monitor *Monitor) startSessionLocked() {
	sessionID := uuid.NewString()
	monitor.sessionID = sessionID
	monitor.state = StateRunning
	monitor.cumulativeKJ = 0
	monitor.window.Reset()

	monitor.listener = monitor.device.Sensor.OnHeartRate(func(reading device.Reading) {
		monitor.dispatcher.Dispatch(func() {
			monitor.ingest(sessionID, reading)
		})
	})
	monitor.device.Sensor.SetPower(true)
	monitor.device.Backlight.SetBrightness(monitor.config.ActiveBrightness)

	logger.Info("Monitoring started", "session", sessionID)
	monitor.emitLocked(Event{
		Type:      EventStateChange,
		State:     StateRunning,
		SessionID: sessionID,
		At:        monitor.device.Clock.Now(),
	})

	monitor.tickLocked()

	monitor.brightness = monitor.device.Clock.Every(monitor.config.BrightnessInterval, func() {
		monitor.dispatcher.Dispatch(func() {
			monitor.refreshBrightness(sessionID)
		})
	})
}

func (monitor *Monitor) stopSessionLocked() {
	sessionID := monitor.sessionID
	monitor.releaseSessionLocked()
	monitor.device.Backlight.SetBrightness(monitor.config.IdleBrightness)
	monitor.state = StateStopped

	logger.Info("Monitoring reset", "session", sessionID)
	monitor.renderIdleLocked()
	monitor.emitLocked(Event{
		Type:      EventStateChange,
		State:     StateStopped,
		SessionID: sessionID,
		At:        monitor.device.Clock.Now(),
	})
}

// releaseSessionLocked undoes every registration made by startSessionLocked.
func (monitor *Monitor) releaseSessionLocked() {
	monitor.device.Sensor.RemoveListener(monitor.listener)
	monitor.listener = 0
	monitor.device.Sensor.SetPower(false)

	if monitor.brightness != nil {
		monitor.brightness.Stop()
		monitor.brightness = nil
	}
	monitor.cancelTickLocked()
	if monitor.dismissWatch != 0 {
		monitor.device.Input.Unwatch(monitor.dismissWatch)
		monitor.dismissWatch = 0
	}

	monitor.cumulativeKJ = 0
	monitor.window.Reset()
}

func (monitor *Monitor) ingest(sessionID string, reading device.Reading) {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	if monitor.state == StateStopped || monitor.sessionID != sessionID {
		return
	}
	if reading.Confidence <= monitor.config.MinConfidence {
		return
	}
	monitor.window.Add(monitor.device.Clock.Now(), reading.BPM)
}

func (monitor *Monitor) refreshBrightness(sessionID string) {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	if monitor.state == StateStopped || monitor.sessionID != sessionID {
		return
	}
	monitor.device.Backlight.SetBrightness(monitor.config.ActiveBrightness)
}

func (monitor *Monitor) dismiss() {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	if monitor.state != StateWarning {
		return
	}
	if monitor.dismissWatch != 0 {
		monitor.device.Input.Unwatch(monitor.dismissWatch)
		monitor.dismissWatch = 0
	}

	// Accumulation stays frozen until the next stop/start cycle.
	monitor.state = StateRunning
	monitor.renderLiveLocked()
	monitor.emitLocked(Event{
		Type:         EventStateChange,
		State:        StateRunning,
		SessionID:    monitor.sessionID,
		CumulativeKJ: monitor.cumulativeKJ,
		At:           monitor.device.Clock.Now(),
	})
}

func (monitor *Monitor) emitLocked(event Event) {
	events := append([]chan Event(nil), monitor.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
