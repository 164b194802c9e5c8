// Package device describes the wrist-device capabilities the monitor drives.
package device

import "time"

// Reading is a raw heart-rate event from the optical sensor.
type Reading struct {
	Confidence int
	BPM        float64
}

// ListenerID identifies a registered heart-rate listener.
type ListenerID int

// Sensor delivers heart-rate readings while powered.
type Sensor interface {
	OnHeartRate(handler func(Reading)) ListenerID
	RemoveListener(id ListenerID)
	SetPower(on bool)
}

// Display is a frame-buffered text screen.
type Display interface {
	Clear()
	SetFont(family string, scale float64)
	DrawString(text string, x, y int)
	Flip()
}

// Haptics drives the vibration motor.
type Haptics interface {
	Buzz()
}

// Backlight controls screen brightness in [0,1].
type Backlight interface {
	SetBrightness(level float64)
}

// Button names a physical or touch input.
type Button string

const (
	ButtonMain  Button = "BTN1"
	ButtonTouch Button = "TOUCH"
)

// WatchID identifies a registered button watch.
type WatchID int

// WatchOptions configures a rising-edge button watch.
type WatchOptions struct {
	Debounce time.Duration
	Repeat   bool
}

// Input registers button watches.
type Input interface {
	Watch(button Button, handler func(), options WatchOptions) WatchID
	Unwatch(id WatchID)
}

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

// Clock provides time and callback scheduling.
type Clock interface {
	Now() time.Time
	AfterFunc(delay time.Duration, fn func()) Timer
	Every(interval time.Duration, fn func()) Timer
}

// Bundle groups the capabilities of one device.
type Bundle struct {
	Sensor    Sensor
	Display   Display
	Haptics   Haptics
	Backlight Backlight
	Input     Input
	Clock     Clock
}
