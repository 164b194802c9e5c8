package cli

import (
	"context"

	"burnwatch/internal/core/monitor"
	"burnwatch/internal/headless"
	"burnwatch/internal/logger"
)

func runHeadless(appCtx context.Context, ctx *Context, sess *session) error {
	console := headless.New(ctx.Out)
	sess.framebuffer.AddSink(console)

	mon := monitor.New(sess.settings.MonitorConfig(), sess.bundle(console, console), sess.loop)
	defer mon.Close()
	go logEvents(mon.Subscribe(16))
	mon.Start()

	done := make(chan error, 1)
	go func() {
		done <- headless.ReadCommands(appCtx, ctx.In, headless.Commands{
			Press:     sess.buttons.Press,
			HeartRate: sess.setHeartRate,
		})
	}()

	select {
	case <-appCtx.Done():
		logger.Info("Interrupted")
		return nil
	case err := <-done:
		return err
	}
}
