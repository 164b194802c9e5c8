package monitor

import (
	"burnwatch/internal/core/energy"
	"burnwatch/internal/device"
	"burnwatch/internal/logger"
)

// tickLocked runs one accumulation step and schedules the next one only
// after it has finished.
func (monitor *Monitor) tickLocked() {
	monitor.tickTimer = nil
	if monitor.state != StateRunning {
		return
	}

	averageBPM := monitor.window.Average()
	rate := energy.RateForAverage(averageBPM, monitor.config.Profile)
	monitor.cumulativeKJ += energy.TickEnergyKJ(rate, monitor.config.UpdateInterval)
	threshold := energy.WarningThresholdKJ(monitor.config.BudgetBTU)
	now := monitor.device.Clock.Now()

	if monitor.cumulativeKJ >= threshold {
		monitor.enterWarningLocked(threshold)
		return
	}

	monitor.renderLiveLocked()
	monitor.emitLocked(Event{
		Type:          EventAccumulated,
		State:         StateRunning,
		SessionID:     monitor.sessionID,
		CumulativeKJ:  monitor.cumulativeKJ,
		ThresholdKJ:   threshold,
		AverageBPM:    averageBPM,
		RateKJPerHour: rate,
		At:            now,
	})
	monitor.scheduleTickLocked()
}

func (monitor *Monitor) scheduleTickLocked() {
	monitor.tickSeq++
	seq := monitor.tickSeq
	monitor.tickTimer = monitor.device.Clock.AfterFunc(monitor.config.UpdateInterval, func() {
		monitor.dispatcher.Dispatch(func() {
			monitor.tick(seq)
		})
	})
}

func (monitor *Monitor) tick(seq uint64) {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	// A timer that fired just before being cancelled is stale.
	if seq != monitor.tickSeq || monitor.tickTimer == nil {
		return
	}
	monitor.tickLocked()
}

func (monitor *Monitor) cancelTickLocked() {
	monitor.tickSeq++
	if monitor.tickTimer != nil {
		monitor.tickTimer.Stop()
		monitor.tickTimer = nil
	}
}

func (monitor *Monitor) enterWarningLocked(threshold float64) {
	monitor.state = StateWarning

	logger.Warn("Energy budget warning",
		"session", monitor.sessionID,
		"cumulative_kj", monitor.cumulativeKJ,
		"threshold_kj", threshold,
	)

	monitor.renderWarningLocked()
	monitor.device.Haptics.Buzz()

	monitor.dismissWatch = monitor.device.Input.Watch(device.ButtonTouch, func() {
		monitor.dispatcher.Dispatch(monitor.dismiss)
	}, device.WatchOptions{Debounce: monitor.config.ButtonDebounce, Repeat: false})

	monitor.emitLocked(Event{
		Type:         EventWarning,
		State:        StateWarning,
		SessionID:    monitor.sessionID,
		CumulativeKJ: monitor.cumulativeKJ,
		ThresholdKJ:  threshold,
		Message:      "approaching max BTU",
		At:           monitor.device.Clock.Now(),
	})
}
