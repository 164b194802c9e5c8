package sim

import (
	"math"
	"time"
)

const (
	confidenceStep       = 25
	maxConfidence        = 100
	consistencyTolerance = 0.15
)

// beatDetector finds R peaks by rising threshold crossings and derives
// bpm from the R-R interval. Confidence grows with consecutive
// consistent intervals and falls back when the rhythm jumps.
type beatDetector struct {
	threshold    float64
	refractory   time.Duration
	lastPeakTime time.Time
	lastValue    float64
	lastBPM      float64
	confidence   int
	initialized  bool
}

func newBeatDetector() *beatDetector {
	return &beatDetector{
		threshold:  0.6,
		refractory: 200 * time.Millisecond,
	}
}

// process returns bpm and confidence when value completes a beat.
func (detector *beatDetector) process(value float64, ts time.Time) (float64, int, bool) {
	if !detector.initialized {
		detector.initialized = true
		detector.lastValue = value
		return 0, 0, false
	}

	rising := detector.lastValue < detector.threshold && value >= detector.threshold
	detector.lastValue = value
	if !rising || ts.Sub(detector.lastPeakTime) <= detector.refractory {
		return 0, 0, false
	}

	if detector.lastPeakTime.IsZero() {
		detector.lastPeakTime = ts
		return 0, 0, false
	}

	rr := ts.Sub(detector.lastPeakTime).Seconds()
	detector.lastPeakTime = ts
	bpm := math.Round(60.0 / rr)

	if detector.lastBPM > 0 && math.Abs(bpm-detector.lastBPM) <= detector.lastBPM*consistencyTolerance {
		detector.confidence = min(detector.confidence+confidenceStep, maxConfidence)
	} else {
		detector.confidence = confidenceStep
	}
	detector.lastBPM = bpm
	return bpm, detector.confidence, true
}
