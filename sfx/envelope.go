package sfx

import "math"

// Shape applies the linear fade-in, fade-out and volume of cfg to dst in place.
// A fade window shorter than one frame is skipped. Overlapping fades multiply.
func Shape(dst []float64, cfg Config) {
	sr := float64(cfg.SampleRate)
	fadeIn := fadeFrames(cfg.FadeIn, sr)
	fadeOut := fadeFrames(cfg.FadeOut, sr)
	n := len(dst)
	for i := range dst {
		amp := cfg.Volume
		if fadeIn > 0 && i < fadeIn {
			amp *= float64(i) / float64(fadeIn)
		}
		if fadeOut > 0 && i > n-fadeOut {
			amp *= float64(n-i) / float64(fadeOut)
		}
		dst[i] *= amp
	}
}

func fadeFrames(seconds float64, sampleRate float64) int {
	f := math.Floor(seconds * sampleRate)
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
