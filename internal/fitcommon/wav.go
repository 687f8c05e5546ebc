package fitcommon

import (
	"fmt"
	"os"
	"path/filepath"

	dspresample "github.com/cwbudde/algo-dsp/dsp/resample"
	"github.com/cwbudde/algo-sfx/wavpcm"
)

// ReadWAVMono reads a PCM WAV file downmixed to mono in [-1, 1].
func ReadWAVMono(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	samples, rate, err := wavpcm.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return samples, rate, nil
}

// ReadWAVMonoAt reads a WAV file and resamples it to sampleRate when needed.
func ReadWAVMonoAt(path string, sampleRate int) ([]float64, error) {
	samples, rate, err := ReadWAVMono(path)
	if err != nil {
		return nil, err
	}
	return ResampleIfNeeded(samples, rate, sampleRate)
}

func ResampleIfNeeded(in []float64, fromRate int, toRate int) ([]float64, error) {
	if fromRate == toRate {
		return in, nil
	}
	if fromRate <= 0 || toRate <= 0 {
		return nil, fmt.Errorf("invalid resample rates %d -> %d", fromRate, toRate)
	}
	r, err := dspresample.NewForRates(
		float64(fromRate),
		float64(toRate),
		dspresample.WithQuality(dspresample.QualityBest),
	)
	if err != nil {
		return nil, err
	}
	return r.Process(in), nil
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteMonoWAV encodes samples as 16-bit mono PCM and writes them to path.
func WriteMonoWAV(path string, samples []float64, sampleRate int) error {
	return WriteFile(path, wavpcm.Encode(samples, sampleRate))
}
