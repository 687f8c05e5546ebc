package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-sfx/sfx"
)

// File is the JSON schema for a sound-effect preset. Absent or null fields keep
// the engine defaults.
type File struct {
	Name       string    `json:"name"`
	Extends    string    `json:"extends"`
	Type       *string   `json:"type"`
	Frequency  *float64  `json:"frequency"`
	Duration   *float64  `json:"duration"`
	Volume     *float64  `json:"volume"`
	SampleRate *int      `json:"sampleRate"`
	FadeIn     *float64  `json:"fadeIn"`
	FadeOut    *float64  `json:"fadeOut"`
	WaveType   *string   `json:"waveType"`
	NoiseType  *string   `json:"noiseType"`
	StartFreq  *float64  `json:"startFreq"`
	EndFreq    *float64  `json:"endFreq"`
	Harmonics  []float64 `json:"harmonics"`
}

// Bank is a file holding several presets.
type Bank struct {
	Clips []File `json:"clips"`
}

// LoadJSON loads a single preset. A missing name defaults to the file's base name.
func LoadJSON(path string) (sfx.Options, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return sfx.Options{}, err
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return sfx.Options{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if strings.TrimSpace(f.Name) == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return ToOptions(&f)
}

// LoadBank loads every preset of a bank file.
func LoadBank(path string) ([]sfx.Options, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var bank Bank
	if err := json.Unmarshal(b, &bank); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	out := make([]sfx.Options, 0, len(bank.Clips))
	for i := range bank.Clips {
		o, err := ToOptions(&bank.Clips[i])
		if err != nil {
			return nil, fmt.Errorf("clips[%d]: %w", i, err)
		}
		out = append(out, o)
	}
	return out, nil
}

// ToOptions converts a parsed preset into engine options. When Extends names a
// built-in preset, the file's fields are layered on top of it.
func ToOptions(f *File) (sfx.Options, error) {
	var o sfx.Options
	if f.Extends != "" {
		base, err := sfx.PresetOptions(f.Extends, "")
		if err != nil {
			return sfx.Options{}, err
		}
		o = base
	}
	if err := ApplyFile(&o, f); err != nil {
		return sfx.Options{}, err
	}
	return o, nil
}

// ApplyFile applies a parsed preset file onto existing options.
func ApplyFile(dst *sfx.Options, f *File) error {
	if dst == nil {
		return fmt.Errorf("nil destination options")
	}
	if f == nil {
		return nil
	}

	if f.Name != "" {
		dst.Name = strings.TrimSpace(f.Name)
	}
	if f.Type != nil {
		t := sfx.Type(strings.ToLower(*f.Type))
		switch t {
		case sfx.TypeTone, sfx.TypeNoise, sfx.TypeSweep, sfx.TypeComplex, sfx.TypeRandom:
		default:
			return fmt.Errorf("unknown type %q", *f.Type)
		}
		dst.Type = &t
	}
	if f.Frequency != nil {
		if *f.Frequency <= 0 {
			return fmt.Errorf("frequency must be > 0")
		}
		dst.Frequency = f.Frequency
	}
	if f.Duration != nil {
		if *f.Duration <= 0 {
			return fmt.Errorf("duration must be > 0")
		}
		dst.Duration = f.Duration
	}
	if f.Volume != nil {
		if *f.Volume < 0 || *f.Volume > 1 {
			return fmt.Errorf("volume must be in [0,1]")
		}
		dst.Volume = f.Volume
	}
	if f.SampleRate != nil {
		if *f.SampleRate <= 0 {
			return fmt.Errorf("sampleRate must be > 0")
		}
		dst.SampleRate = f.SampleRate
	}
	if f.FadeIn != nil {
		if *f.FadeIn < 0 {
			return fmt.Errorf("fadeIn must be >= 0")
		}
		dst.FadeIn = f.FadeIn
	}
	if f.FadeOut != nil {
		if *f.FadeOut < 0 {
			return fmt.Errorf("fadeOut must be >= 0")
		}
		dst.FadeOut = f.FadeOut
	}
	// Wave and noise names are passed through; the engine falls back on unknown values.
	if f.WaveType != nil {
		w := sfx.WaveType(strings.ToLower(*f.WaveType))
		dst.WaveType = &w
	}
	if f.NoiseType != nil {
		n := sfx.NoiseType(strings.ToLower(*f.NoiseType))
		dst.NoiseType = &n
	}
	if f.StartFreq != nil {
		if *f.StartFreq <= 0 {
			return fmt.Errorf("startFreq must be > 0")
		}
		dst.StartFreq = f.StartFreq
	}
	if f.EndFreq != nil {
		if *f.EndFreq <= 0 {
			return fmt.Errorf("endFreq must be > 0")
		}
		dst.EndFreq = f.EndFreq
	}
	if f.Harmonics != nil {
		dst.Harmonics = append([]float64(nil), f.Harmonics...)
	}
	return nil
}

// FromConfig captures every field of a resolved configuration.
func FromConfig(cfg sfx.Config) File {
	t := string(cfg.Type)
	w := string(cfg.WaveType)
	n := string(cfg.NoiseType)
	f := File{
		Name:       cfg.Name,
		Type:       &t,
		Frequency:  sfx.Float64(cfg.Frequency),
		Duration:   sfx.Float64(cfg.Duration),
		Volume:     sfx.Float64(cfg.Volume),
		SampleRate: sfx.Int(cfg.SampleRate),
		FadeIn:     sfx.Float64(cfg.FadeIn),
		FadeOut:    sfx.Float64(cfg.FadeOut),
		WaveType:   &w,
		NoiseType:  &n,
		Harmonics:  append([]float64(nil), cfg.Harmonics...),
	}
	if cfg.StartFreq > 0 {
		f.StartFreq = sfx.Float64(cfg.StartFreq)
	}
	if cfg.EndFreq > 0 {
		f.EndFreq = sfx.Float64(cfg.EndFreq)
	}
	return f
}

// SaveJSON writes f as indented JSON, creating parent directories.
func SaveJSON(path string, f File) error {
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
