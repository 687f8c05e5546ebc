package sfx

import (
	"fmt"
	"math/rand"
	"time"
)

// Generate renders cfg into a new buffer obtained from factory and applies the envelope.
// rng feeds the noise and random generators; tone, sweep and complex ignore it.
// A nil factory allocates on the heap and a nil rng is seeded from the clock.
func Generate(cfg Config, factory BufferFactory, rng *rand.Rand) (_ *Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generator panic: %v", r)
		}
	}()
	if factory == nil {
		factory = HeapFactory{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	length := cfg.Length()
	buf, err := factory.Create(1, length, cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("allocate buffer: %w", err)
	}
	if buf == nil {
		return nil, fmt.Errorf("allocate buffer: factory returned nil")
	}
	if buf.Len() != length {
		return nil, fmt.Errorf("allocate buffer: got %d frames, want %d", buf.Len(), length)
	}
	samples := buf.ChannelData(0)
	if cfg.Type == TypeRandom {
		RandomEffect(samples, cfg, rng)
	} else {
		synthesize(samples, cfg, rng)
	}
	Shape(samples, cfg)
	return buf, nil
}

// synthesize writes the raw, unshaped signal for cfg. Unknown types render as tone.
func synthesize(dst []float64, cfg Config, rng *rand.Rand) {
	switch cfg.Type {
	case TypeNoise:
		Noise(dst, cfg.NoiseType, rng)
	case TypeSweep:
		start, end := cfg.SweepRange()
		Sweep(dst, cfg.SampleRate, start, end)
	case TypeComplex:
		Complex(dst, cfg.SampleRate, cfg.Frequency, cfg.Harmonics)
	default:
		Tone(dst, cfg.SampleRate, cfg.Frequency, cfg.WaveType)
	}
}
