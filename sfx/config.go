package sfx

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-sfx/wavpcm"
)

// Type selects the generator used for a clip.
type Type string

const (
	TypeTone    Type = "tone"
	TypeNoise   Type = "noise"
	TypeSweep   Type = "sweep"
	TypeComplex Type = "complex"
	TypeRandom  Type = "random"
)

// WaveType is the periodic shape used by tone generation.
type WaveType string

const (
	WaveSine     WaveType = "sine"
	WaveSquare   WaveType = "square"
	WaveSawtooth WaveType = "sawtooth"
	WaveTriangle WaveType = "triangle"
)

// NoiseType is the spectral colour used by noise generation.
type NoiseType string

const (
	NoiseWhite NoiseType = "white"
	NoisePink  NoiseType = "pink"
	NoiseBrown NoiseType = "brown"
)

var (
	waveTypes  = []WaveType{WaveSine, WaveSquare, WaveSawtooth, WaveTriangle}
	noiseTypes = []NoiseType{NoiseWhite, NoisePink, NoiseBrown}
)

// Config is the effective parameter set of one generation request.
// StartFreq and EndFreq are unset when zero.
type Config struct {
	Name       string
	Type       Type
	Frequency  float64
	Duration   float64 // seconds
	Volume     float64
	SampleRate int
	FadeIn     float64 // seconds
	FadeOut    float64 // seconds
	WaveType   WaveType
	NoiseType  NoiseType
	StartFreq  float64
	EndFreq    float64
	Harmonics  []float64
}

// DefaultConfig returns the base configuration every request is merged onto.
func DefaultConfig() Config {
	return Config{
		Type:       TypeTone,
		Frequency:  440,
		Duration:   1.0,
		Volume:     0.5,
		SampleRate: 44100,
		FadeIn:     0.01,
		FadeOut:    0.1,
		WaveType:   WaveSine,
		NoiseType:  NoiseWhite,
		Harmonics:  []float64{1, 0.5, 0.25, 0.125},
	}
}

// Clone returns a copy that shares no memory with c.
func (c Config) Clone() Config {
	if c.Harmonics != nil {
		c.Harmonics = append([]float64(nil), c.Harmonics...)
	}
	return c
}

// Length returns the number of frames the configuration produces, capped at
// the largest frame count a WAV header can describe.
func (c Config) Length() int {
	n := math.Floor(c.Duration * float64(c.SampleRate))
	if math.IsNaN(n) || n <= 0 {
		return 0
	}
	if n > wavpcm.MaxFrames {
		return wavpcm.MaxFrames
	}
	return int(n)
}

// SweepRange resolves the sweep endpoints, defaulting to one octave up from Frequency.
func (c Config) SweepRange() (start, end float64) {
	start, end = c.StartFreq, c.EndFreq
	if start == 0 {
		start = c.Frequency
	}
	if end == 0 {
		end = c.Frequency * 2
	}
	return start, end
}

// Validate reports numerically nonsensical settings. Resolve does not call it;
// generation stays well-defined for any input.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %d", c.SampleRate)
	}
	if !(c.Duration > 0) {
		return fmt.Errorf("duration must be > 0")
	}
	if !(c.Frequency > 0) {
		return fmt.Errorf("frequency must be > 0")
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be in [0,1]: %g", c.Volume)
	}
	if c.FadeIn < 0 || c.FadeOut < 0 {
		return fmt.Errorf("fade times must be >= 0")
	}
	if c.StartFreq < 0 || c.EndFreq < 0 {
		return fmt.Errorf("sweep frequencies must be > 0")
	}
	return nil
}

// Options holds caller overrides. Nil fields keep the value of the base configuration.
type Options struct {
	Name       string
	Type       *Type
	Frequency  *float64
	Duration   *float64
	Volume     *float64
	SampleRate *int
	FadeIn     *float64
	FadeOut    *float64
	WaveType   *WaveType
	NoiseType  *NoiseType
	StartFreq  *float64
	EndFreq    *float64
	Harmonics  []float64
}

// Apply merges o onto base key by key and returns the result. base is not modified.
func (o Options) Apply(base Config) Config {
	c := base.Clone()
	if o.Name != "" {
		c.Name = o.Name
	}
	if o.Type != nil {
		c.Type = *o.Type
	}
	if o.Frequency != nil {
		c.Frequency = *o.Frequency
	}
	if o.Duration != nil {
		c.Duration = *o.Duration
	}
	if o.Volume != nil {
		c.Volume = *o.Volume
	}
	if o.SampleRate != nil {
		c.SampleRate = *o.SampleRate
	}
	if o.FadeIn != nil {
		c.FadeIn = *o.FadeIn
	}
	if o.FadeOut != nil {
		c.FadeOut = *o.FadeOut
	}
	if o.WaveType != nil {
		c.WaveType = *o.WaveType
	}
	if o.NoiseType != nil {
		c.NoiseType = *o.NoiseType
	}
	if o.StartFreq != nil {
		c.StartFreq = *o.StartFreq
	}
	if o.EndFreq != nil {
		c.EndFreq = *o.EndFreq
	}
	if o.Harmonics != nil {
		c.Harmonics = append([]float64(nil), o.Harmonics...)
	}
	return c
}

// Resolve merges opts onto DefaultConfig. The name must be non-blank.
func Resolve(opts Options) (Config, error) {
	if strings.TrimSpace(opts.Name) == "" {
		return Config{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return opts.Apply(DefaultConfig()), nil
}

// Float64 returns a pointer to v, for filling Options literals.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// TypeOf returns a pointer to t.
func TypeOf(t Type) *Type { return &t }

// Wave returns a pointer to w.
func Wave(w WaveType) *WaveType { return &w }

// NoiseOf returns a pointer to n.
func NoiseOf(n NoiseType) *NoiseType { return &n }
