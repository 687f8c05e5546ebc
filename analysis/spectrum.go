package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

// DefaultFFTSize is the frame length used by the spectral helpers.
const DefaultFFTSize = 4096

// Spectrum returns the Hann-windowed magnitude spectrum (fftSize/2+1 bins)
// averaged over half-overlapping frames of x. Inputs shorter than one frame are
// zero-padded. fftSize must be a power of two.
func Spectrum(x []float64, fftSize int) ([]float64, error) {
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("fft size must be a power of two: %d", fftSize)
	}
	plan, err := algofft.NewPlanReal64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("fft plan: %w", err)
	}

	hann := make([]float64, fftSize)
	for i := range hann {
		hann[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(fftSize-1))
	}

	bins := fftSize/2 + 1
	mags := make([]float64, bins)
	spec := make([]complex128, bins)
	frame := make([]float64, fftSize)
	hop := fftSize / 2
	frames := 0
	for pos := 0; pos == 0 || pos+fftSize <= len(x); pos += hop {
		for i := range frame {
			v := 0.0
			if pos+i < len(x) && isFinite(x[pos+i]) {
				v = x[pos+i]
			}
			frame[i] = v * hann[i]
		}
		plan.Forward(spec, frame)
		for k := range spec {
			mags[k] += cmplx.Abs(spec[k])
		}
		frames++
	}
	for k := range mags {
		mags[k] /= float64(frames)
	}
	return mags, nil
}

// DominantFrequency returns the frequency of the strongest spectral peak,
// refined by parabolic interpolation between neighbouring bins.
func DominantFrequency(x []float64, sampleRate int) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("sample rate must be > 0")
	}
	mags, err := Spectrum(x, DefaultFFTSize)
	if err != nil {
		return 0, err
	}
	best := 1
	for k := 2; k < len(mags)-1; k++ {
		if mags[k] > mags[best] {
			best = k
		}
	}
	if mags[best] <= 1e-12 {
		return 0, nil
	}
	offset := 0.0
	if best > 0 && best < len(mags)-1 {
		a, b, c := mags[best-1], mags[best], mags[best+1]
		if den := a - 2*b + c; den != 0 {
			offset = 0.5 * (a - c) / den
		}
	}
	binHz := float64(sampleRate) / float64(DefaultFFTSize)
	return (float64(best) + offset) * binHz, nil
}

// SpectralCentroid returns the magnitude-weighted mean frequency of x.
func SpectralCentroid(x []float64, sampleRate int) (float64, error) {
	mags, err := Spectrum(x, DefaultFFTSize)
	if err != nil {
		return 0, err
	}
	binHz := float64(sampleRate) / float64(DefaultFFTSize)
	var weighted, total float64
	for k := 1; k < len(mags); k++ {
		weighted += float64(k) * binHz * mags[k]
		total += mags[k]
	}
	if total == 0 {
		return 0, nil
	}
	return weighted / total, nil
}
