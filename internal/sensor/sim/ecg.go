package sim

import "math"

// ecgWave generates an ECG-like waveform (not clinical) at fs Hz:
// baseline wander plus gaussian P, QRS and T waves and a little noise.
type ecgWave struct {
	fs    float64
	phase float64
	hrBPM float64
	noise float64
}

func newECGWave(fs, hrBPM, noise float64) *ecgWave {
	return &ecgWave{fs: fs, hrBPM: hrBPM, noise: noise}
}

// next returns the next sample and advances one sampling period.
func (wave *ecgWave) next() float64 {
	cycleHz := wave.hrBPM / 60.0
	wave.phase += cycleHz / wave.fs
	if wave.phase >= 1.0 {
		wave.phase -= 1.0
	}

	t := wave.phase

	baseline := 0.05 * math.Sin(2*math.Pi*0.33*t)

	p := 0.08 * gauss(t, 0.18, 0.03)
	q := -0.12 * gauss(t, 0.30, 0.01)
	r := 1.00 * gauss(t, 0.32, 0.008)
	s := -0.25 * gauss(t, 0.35, 0.012)
	tw := 0.25 * gauss(t, 0.60, 0.06)

	n := wave.noise * (2*fract(math.Sin(12345.678*t)*9876.543) - 1)

	return baseline + p + q + r + s + tw + n
}

func gauss(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	return math.Exp(-0.5 * z * z)
}

func fract(x float64) float64 { return x - math.Floor(x) }
