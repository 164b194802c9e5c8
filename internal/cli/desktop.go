package cli

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"burnwatch/internal/core/monitor"
	"burnwatch/internal/logger"
	"burnwatch/internal/platform"
	"burnwatch/internal/storage"
	"burnwatch/internal/ui/haptic"
	"burnwatch/internal/ui/preferences"
	"burnwatch/internal/ui/tray"
	"burnwatch/internal/ui/watchface"
)

func runDesktop(appCtx context.Context, cancel context.CancelFunc, ctx *Context, sess *session, guard *platform.InstanceGuard) error {
	fyneApp := app.NewWithID("com.burnwatch.app")

	faceConfig := watchface.DefaultConfig()
	faceConfig.Title = AppName
	if sess.simulator != nil {
		faceConfig.SimulatedBPM = sess.simulator.BPM()
	}
	face := watchface.New(fyneApp, faceConfig)
	face.SetOnPress(sess.buttons.Press)
	face.SetOnHeartRate(sess.setHeartRate)
	sess.framebuffer.AddSink(face)

	motor := haptic.New(haptic.DefaultConfig(), face.SetBuzzing)
	mon := monitor.New(sess.settings.MonitorConfig(), sess.bundle(motor, face), sess.loop)

	var quitOnce sync.Once
	quit := func() {
		quitOnce.Do(func() {
			mon.Close()
			motor.Stop()
			cancel()
			fyneApp.Quit()
		})
	}

	prefsWindow := preferences.New(fyneApp, sess.settings, func(updated preferences.Settings) {
		if err := storage.SaveSettings(ctx.ConfigDir, updated); err != nil {
			logger.Error("Failed to save settings", "error", err)
			return
		}
		logger.Info("Settings saved", "path", storage.SettingsPath(ctx.ConfigDir))
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShowWatch: face.Show,
			OnProfile:   prefsWindow.Show,
			OnToggle:    mon.Toggle,
			OnDismiss:   mon.Dismiss,
			OnQuit:      quit,
		})
		face.SetCloseIntercept(face.Hide)
	} else {
		logger.Warn("System tray unsupported on this platform")
		face.SetCloseIntercept(quit)
	}

	go func() {
		if err := guard.Serve(appCtx, func() { fyne.Do(face.Show) }); err != nil {
			logger.Warn("Single instance listener stopped", "error", err)
		}
	}()
	go func() {
		<-appCtx.Done()
		fyne.Do(quit)
	}()

	events := mon.Subscribe(16)
	go func() {
		for range events {
			if trayManager == nil {
				continue
			}
			status := mon.Status()
			fyne.Do(func() {
				trayManager.SetState(status.State)
				trayManager.SetStatus(tray.StatusLine(status))
			})
		}
	}()
	go logEvents(mon.Subscribe(16))

	mon.Start()
	face.Show()
	fyneApp.Run()
	mon.Close()
	return nil
}
