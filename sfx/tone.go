package sfx

import "math"

const twoPi = 2.0 * math.Pi

// Tone fills dst with a periodic wave at frequency Hz. Unknown wave types render as sine.
func Tone(dst []float64, sampleRate int, frequency float64, wave WaveType) {
	sr := float64(sampleRate)
	for i := range dst {
		t := float64(i) / sr * frequency * twoPi
		dst[i] = waveSample(t, wave)
	}
}

func waveSample(t float64, wave WaveType) float64 {
	switch wave {
	case WaveSquare:
		if math.Sin(t) >= 0 {
			return 1
		}
		return -1
	case WaveSawtooth:
		return sawtooth(t)
	case WaveTriangle:
		return 2*math.Abs(sawtooth(t)) - 1
	default:
		return math.Sin(t)
	}
}

func sawtooth(t float64) float64 {
	cycles := t / twoPi
	return 2 * (cycles - math.Floor(cycles+0.5))
}

// Sweep fills dst with a sine whose instantaneous frequency moves linearly from
// start to end over the buffer. The phase is computed from the interpolated
// frequency directly rather than integrated.
func Sweep(dst []float64, sampleRate int, start, end float64) {
	n := float64(len(dst))
	sr := float64(sampleRate)
	for i := range dst {
		p := float64(i) / n
		f := start + (end-start)*p
		t := float64(i) / sr * f * twoPi
		dst[i] = math.Sin(t)
	}
}

// Complex fills dst with an additive tone. harmonics[h] is the amplitude of
// partial h+1; the sum is divided by the number of partials.
func Complex(dst []float64, sampleRate int, frequency float64, harmonics []float64) {
	if len(harmonics) == 0 {
		clear(dst)
		return
	}
	sr := float64(sampleRate)
	norm := float64(len(harmonics))
	for i := range dst {
		var sum float64
		for h, amp := range harmonics {
			f := frequency * float64(h+1)
			sum += math.Sin(twoPi*f*float64(i)/sr) * amp
		}
		dst[i] = sum / norm
	}
}
