package device_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"burnwatch/internal/device"
	"burnwatch/internal/device/devicetest"
)

func TestButtons_DebouncesRepeatingWatch(t *testing.T) {
	clock := devicetest.NewClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	buttons := device.NewButtons(clock)

	presses := 0
	buttons.Watch(device.ButtonMain, func() { presses++ }, device.WatchOptions{
		Debounce: 50 * time.Millisecond,
		Repeat:   true,
	})

	buttons.Press(device.ButtonMain)
	clock.Advance(20 * time.Millisecond)
	buttons.Press(device.ButtonMain)
	clock.Advance(40 * time.Millisecond)
	buttons.Press(device.ButtonMain)

	assert.Equal(t, 2, presses)
	assert.Equal(t, 1, buttons.Watching(device.ButtonMain))
}

func TestButtons_OneShotWatchIsRemovedAfterFiring(t *testing.T) {
	clock := devicetest.NewClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	buttons := device.NewButtons(clock)

	taps := 0
	buttons.Watch(device.ButtonTouch, func() { taps++ }, device.WatchOptions{Debounce: 50 * time.Millisecond})

	buttons.Press(device.ButtonTouch)
	clock.Advance(time.Second)
	buttons.Press(device.ButtonTouch)

	assert.Equal(t, 1, taps)
	assert.Equal(t, 0, buttons.Watching(device.ButtonTouch))
}

func TestButtons_OnlyMatchingButtonFires(t *testing.T) {
	clock := devicetest.NewClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	buttons := device.NewButtons(clock)

	var fired []string
	buttons.Watch(device.ButtonMain, func() { fired = append(fired, "main") }, device.WatchOptions{Repeat: true})
	buttons.Watch(device.ButtonTouch, func() { fired = append(fired, "touch") }, device.WatchOptions{Repeat: true})

	buttons.Press(device.ButtonTouch)

	assert.Equal(t, []string{"touch"}, fired)
}

func TestButtons_HandlersRunInRegistrationOrderAndMayUnwatch(t *testing.T) {
	clock := devicetest.NewClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	buttons := device.NewButtons(clock)

	var order []int
	var second device.WatchID
	buttons.Watch(device.ButtonMain, func() {
		order = append(order, 1)
		buttons.Unwatch(second)
	}, device.WatchOptions{Repeat: true})
	second = buttons.Watch(device.ButtonMain, func() { order = append(order, 2) }, device.WatchOptions{Repeat: true})

	buttons.Press(device.ButtonMain)
	clock.Advance(time.Second)
	buttons.Press(device.ButtonMain)

	// the second handler was collected before the first one unwatched it
	assert.Equal(t, []int{1, 2, 1}, order)
}
