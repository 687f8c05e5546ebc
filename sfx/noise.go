package sfx

import (
	"math/rand"

	dspcore "github.com/cwbudde/algo-dsp/dsp/core"
)

// Noise fills dst with noise of the given colour. Unknown kinds render as white noise.
func Noise(dst []float64, kind NoiseType, rng *rand.Rand) {
	switch kind {
	case NoisePink:
		PinkNoise(dst, rng)
	case NoiseBrown:
		BrownNoise(dst, rng)
	default:
		WhiteNoise(dst, rng)
	}
}

func white(rng *rand.Rand) float64 {
	return rng.Float64()*2 - 1
}

// WhiteNoise fills dst with independent uniform samples in [-1, 1).
func WhiteNoise(dst []float64, rng *rand.Rand) {
	for i := range dst {
		dst[i] = white(rng)
	}
}

// pinkFilter is Paul Kellet's refined 1/f filter bank.
type pinkFilter struct {
	b0, b1, b2, b3, b4, b5, b6 float64
}

func (p *pinkFilter) next(w float64) float64 {
	p.b0 = dspcore.FlushDenormals(0.99886*p.b0 + w*0.0555179)
	p.b1 = dspcore.FlushDenormals(0.99332*p.b1 + w*0.0750759)
	p.b2 = dspcore.FlushDenormals(0.96900*p.b2 + w*0.1538520)
	p.b3 = dspcore.FlushDenormals(0.86650*p.b3 + w*0.3104856)
	p.b4 = dspcore.FlushDenormals(0.55000*p.b4 + w*0.5329522)
	p.b5 = dspcore.FlushDenormals(-0.7616*p.b5 - w*0.0168980)
	out := (p.b0 + p.b1 + p.b2 + p.b3 + p.b4 + p.b5 + p.b6 + w*0.5362) * 0.11
	p.b6 = w * 0.115926
	return out
}

// PinkNoise fills dst with pink noise. Filter state starts from zero on every call.
func PinkNoise(dst []float64, rng *rand.Rand) {
	var f pinkFilter
	for i := range dst {
		dst[i] = f.next(white(rng))
	}
}

// BrownNoise fills dst with a leaky random walk, gain-compensated by 3.5.
func BrownNoise(dst []float64, rng *rand.Rand) {
	last := 0.0
	for i := range dst {
		last = dspcore.FlushDenormals((last + 0.02*white(rng)) / 1.02)
		dst[i] = last * 3.5
	}
}
