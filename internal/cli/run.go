package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"burnwatch/internal/core/dispatch"
	"burnwatch/internal/core/monitor"
	"burnwatch/internal/device"
	"burnwatch/internal/logger"
	"burnwatch/internal/platform"
	"burnwatch/internal/sensor/natsrc"
	"burnwatch/internal/sensor/sim"
	"burnwatch/internal/ui/preferences"
)

type RunCmd struct {
	Headless    bool    `help:"Render the watch in the terminal instead of a window."`
	Source      string  `help:"Heart-rate source." enum:"sim,nats" default:"sim"`
	NatsURL     string  `help:"NATS server for --source=nats." default:"nats://127.0.0.1:4222"`
	NatsSubject string  `help:"Subject carrying heart-rate messages." default:"ecg.params"`
	SimBPM      float64 `help:"Initial simulated heart rate." default:"72"`
}

// session holds the device stack shared by both front-ends.
type session struct {
	settings    preferences.Settings
	loop        *dispatch.Loop
	clock       device.SystemClock
	buttons     *device.Buttons
	framebuffer *device.Framebuffer
	heartRate   *device.HeartRateMonitor
	simulator   *sim.Source
}

func (c *RunCmd) Run(ctx *Context) error {
	guard, err := platform.AcquireSingleInstance(AppName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		if signalErr := platform.SignalRunning(AppName); signalErr != nil {
			logger.Warn("Could not reach running instance", "error", signalErr)
		}
		return err
	}
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}

	appCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sess := c.newSession(settings)
	go func() {
		if err := sess.loop.Run(appCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Dispatch loop stopped", "error", err)
		}
	}()

	logger.Info("Starting",
		"source", c.Source,
		"headless", c.Headless,
		"weight_kg", settings.WeightKg,
		"age_years", settings.AgeYears,
		"gender", settings.Gender,
		"budget_btu", settings.BudgetBTU,
	)

	if c.Headless {
		return runHeadless(appCtx, ctx, sess)
	}
	return runDesktop(appCtx, cancel, ctx, sess, guard)
}

func (c *RunCmd) newSession(settings preferences.Settings) *session {
	sess := &session{
		settings:    settings,
		loop:        dispatch.NewLoop(64),
		framebuffer: device.NewFramebuffer(),
	}
	sess.buttons = device.NewButtons(sess.clock)

	var source device.Source
	switch c.Source {
	case "nats":
		source = natsrc.New(natsrc.Config{URL: c.NatsURL, Subject: c.NatsSubject})
	default:
		config := sim.DefaultConfig()
		if c.SimBPM > 0 {
			config.BPM = c.SimBPM
		}
		sess.simulator = sim.New(config)
		source = sess.simulator
	}
	sess.heartRate = device.NewHeartRateMonitor(source)
	return sess
}

// bundle assembles the device handed to the Monitor.
func (sess *session) bundle(haptics device.Haptics, backlight device.Backlight) device.Bundle {
	return device.Bundle{
		Sensor:    sess.heartRate,
		Display:   sess.framebuffer,
		Haptics:   haptics,
		Backlight: backlight,
		Input:     sess.buttons,
		Clock:     sess.clock,
	}
}

func (sess *session) setHeartRate(bpm float64) {
	if sess.simulator == nil {
		return
	}
	sess.simulator.SetBPM(bpm)
	logger.Debug("Simulated heart rate changed", "bpm", bpm)
}

// logEvents mirrors Monitor events into the log until the channel closes.
func logEvents(events <-chan monitor.Event) {
	for event := range events {
		switch event.Type {
		case monitor.EventStateChange:
			logger.Debug("State changed", "state", event.State, "session", event.SessionID)
		case monitor.EventAccumulated:
			logger.Debug("Energy accumulated",
				"session", event.SessionID,
				"avg_bpm", fmt.Sprintf("%.1f", event.AverageBPM),
				"rate_kj_h", fmt.Sprintf("%.1f", event.RateKJPerHour),
				"cumulative_kj", fmt.Sprintf("%.2f", event.CumulativeKJ),
			)
		case monitor.EventWarning:
			logger.Info("Budget warning shown", "session", event.SessionID, "cumulative_kj", event.CumulativeKJ)
		}
	}
}
