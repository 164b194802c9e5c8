package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burnwatch/internal/device"
)

func TestStep_DetectsConfiguredRate(t *testing.T) {
	source := New(Config{SampleRate: 250, BPM: 72, Noise: 0.02, Interval: time.Second})

	var last device.Reading
	readings := 0
	for i := 0; i < 10; i++ {
		if reading, ok := source.step(250); ok {
			last = reading
			readings++
		}
	}

	require.GreaterOrEqual(t, readings, 8)
	assert.InDelta(t, 72, last.BPM, 3)
	assert.Equal(t, 100, last.Confidence)
}

func TestStep_ConfidenceDropsOnRhythmJump(t *testing.T) {
	source := New(Config{SampleRate: 250, BPM: 60, Interval: time.Second})
	for i := 0; i < 8; i++ {
		source.step(250)
	}

	source.SetBPM(150)
	reading, ok := source.step(250)
	require.True(t, ok)

	assert.Less(t, reading.Confidence, 100)
	assert.Equal(t, 150.0, source.BPM())
}

func TestBeatDetector_IgnoresPeaksInsideRefractory(t *testing.T) {
	detector := newBeatDetector()
	base := time.Unix(0, 0)

	detector.process(0, base)
	detector.process(1, base.Add(10*time.Millisecond))
	detector.process(0, base.Add(20*time.Millisecond))
	_, _, ok := detector.process(1, base.Add(100*time.Millisecond))
	assert.False(t, ok)

	detector.process(0, base.Add(900*time.Millisecond))
	bpm, confidence, ok := detector.process(1, base.Add(1010*time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, 60.0, bpm)
	assert.Equal(t, confidenceStep, confidence)
}

func TestRun_StopsOnCancel(t *testing.T) {
	source := New(Config{Interval: 10 * time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- source.Run(ctx, func(device.Reading) {}) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("source did not stop")
	}
}
