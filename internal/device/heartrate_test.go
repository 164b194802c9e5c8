package device_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burnwatch/internal/device"
)

type channelSource struct {
	readings chan device.Reading
	started  chan struct{}
}

func (source *channelSource) Run(ctx context.Context, emit func(device.Reading)) error {
	source.started <- struct{}{}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case reading := <-source.readings:
			emit(reading)
		}
	}
}

func TestHeartRateMonitor_DeliversWhilePowered(t *testing.T) {
	source := &channelSource{readings: make(chan device.Reading), started: make(chan struct{}, 2)}
	sensor := device.NewHeartRateMonitor(source)

	received := make(chan device.Reading, 1)
	sensor.OnHeartRate(func(reading device.Reading) { received <- reading })

	sensor.SetPower(true)
	sensor.SetPower(true)
	<-source.started
	assert.True(t, sensor.Powered())

	source.readings <- device.Reading{Confidence: 90, BPM: 72}
	select {
	case reading := <-received:
		assert.Equal(t, 72.0, reading.BPM)
	case <-time.After(time.Second):
		t.Fatal("reading not delivered")
	}

	sensor.SetPower(false)
	assert.False(t, sensor.Powered())
	require.Len(t, source.started, 0)
}

func TestHeartRateMonitor_RemovedListenerStopsReceiving(t *testing.T) {
	source := &channelSource{readings: make(chan device.Reading), started: make(chan struct{}, 1)}
	sensor := device.NewHeartRateMonitor(source)

	removed := make(chan device.Reading, 1)
	kept := make(chan device.Reading, 1)
	id := sensor.OnHeartRate(func(reading device.Reading) { removed <- reading })
	sensor.OnHeartRate(func(reading device.Reading) { kept <- reading })
	sensor.RemoveListener(id)

	sensor.SetPower(true)
	defer sensor.SetPower(false)
	<-source.started

	source.readings <- device.Reading{Confidence: 80, BPM: 64}
	select {
	case <-kept:
	case <-time.After(time.Second):
		t.Fatal("reading not delivered")
	}
	assert.Len(t, removed, 0)
}
