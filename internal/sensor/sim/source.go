// Package sim is a simulated optical heart-rate sensor.
package sim

import (
	"context"
	"sync"
	"time"

	"burnwatch/internal/device"
)

// Config controls the simulated waveform.
type Config struct {
	SampleRate float64
	BPM        float64
	Noise      float64
	Interval   time.Duration
}

// DefaultConfig returns a resting adult at 250 Hz with one reading per second.
func DefaultConfig() Config {
	return Config{
		SampleRate: 250,
		BPM:        72,
		Noise:      0.02,
		Interval:   time.Second,
	}
}

// Source synthesizes an ECG trace, detects beats in it and reports the
// latest beat of each interval as a reading.
type Source struct {
	mu       sync.Mutex
	config   Config
	wave     *ecgWave
	detector *beatDetector
	clock    time.Time
}

// New creates a simulated source.
func New(config Config) *Source {
	defaults := DefaultConfig()
	if config.SampleRate <= 0 {
		config.SampleRate = defaults.SampleRate
	}
	if config.BPM <= 0 {
		config.BPM = defaults.BPM
	}
	if config.Interval <= 0 {
		config.Interval = defaults.Interval
	}
	return &Source{
		config:   config,
		wave:     newECGWave(config.SampleRate, config.BPM, config.Noise),
		detector: newBeatDetector(),
	}
}

// SetBPM changes the simulated heart rate.
func (source *Source) SetBPM(bpm float64) {
	if bpm <= 0 {
		return
	}
	source.mu.Lock()
	source.config.BPM = bpm
	source.wave.hrBPM = bpm
	source.mu.Unlock()
}

// BPM returns the simulated heart rate.
func (source *Source) BPM() float64 {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.config.BPM
}

// Run emits one reading per interval until ctx is cancelled.
func (source *Source) Run(ctx context.Context, emit func(device.Reading)) error {
	ticker := time.NewTicker(source.config.Interval)
	defer ticker.Stop()

	samples := int(source.config.SampleRate * source.config.Interval.Seconds())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if reading, ok := source.step(samples); ok {
				emit(reading)
			}
		}
	}
}

// step synthesizes samples and returns the last beat among them.
func (source *Source) step(samples int) (device.Reading, bool) {
	source.mu.Lock()
	defer source.mu.Unlock()

	if source.clock.IsZero() {
		source.clock = time.Unix(0, 0)
	}
	period := time.Duration(float64(time.Second) / source.config.SampleRate)

	var (
		reading device.Reading
		found   bool
	)
	for i := 0; i < samples; i++ {
		source.clock = source.clock.Add(period)
		bpm, confidence, ok := source.detector.process(source.wave.next(), source.clock)
		if ok {
			reading = device.Reading{Confidence: confidence, BPM: bpm}
			found = true
		}
	}
	return reading, found
}
