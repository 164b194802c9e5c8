package energy

import "time"

// Sample is a single accepted heart-rate reading.
type Sample struct {
	At  time.Time
	BPM float64
}

// SampleWindow keeps the heart-rate samples of the recent past.
// Eviction happens only when a sample is added.
type SampleWindow struct {
	retention      time.Duration
	averageSamples int
	samples        []Sample
}

// NewSampleWindow creates a window retaining samples for retention.
// Average considers at most averageSamples of the newest samples;
// zero or less means all of them.
func NewSampleWindow(retention time.Duration, averageSamples int) *SampleWindow {
	return &SampleWindow{
		retention:      retention,
		averageSamples: averageSamples,
	}
}

// Add appends a sample taken at now and drops every sample older than
// now minus the retention. Samples exactly at the cutoff are kept.
func (window *SampleWindow) Add(now time.Time, bpm float64) {
	window.samples = append(window.samples, Sample{At: now, BPM: bpm})

	cutoff := now.Add(-window.retention)
	kept := window.samples[:0]
	for _, sample := range window.samples {
		if !sample.At.Before(cutoff) {
			kept = append(kept, sample)
		}
	}
	clear(window.samples[len(kept):])
	window.samples = kept
}

// Average returns the mean bpm of the newest samples, or 0 when empty.
func (window *SampleWindow) Average() float64 {
	recent := window.samples
	if window.averageSamples > 0 && len(recent) > window.averageSamples {
		recent = recent[len(recent)-window.averageSamples:]
	}
	if len(recent) == 0 {
		return 0
	}
	var sum float64
	for _, sample := range recent {
		sum += sample.BPM
	}
	return sum / float64(len(recent))
}

// Len returns the number of retained samples.
func (window *SampleWindow) Len() int {
	return len(window.samples)
}

// Samples returns a copy of the retained samples, oldest first.
func (window *SampleWindow) Samples() []Sample {
	return append([]Sample(nil), window.samples...)
}

// Reset drops all samples.
func (window *SampleWindow) Reset() {
	clear(window.samples)
	window.samples = window.samples[:0]
}
