package sfx

import (
	"fmt"
	"sort"
)

// Beep is a soft sine blip.
func Beep(frequency, duration float64) Options {
	return Options{
		Name:      fmt.Sprintf("beep_%g", frequency),
		Type:      TypeOf(TypeTone),
		Frequency: Float64(frequency),
		Duration:  Float64(duration),
		WaveType:  Wave(WaveSine),
		Volume:    Float64(0.3),
	}
}

// Click is a short burst of white noise that fades out over most of its length.
func Click(duration float64) Options {
	return Options{
		Name:      "click",
		Type:      TypeOf(TypeNoise),
		Duration:  Float64(duration),
		NoiseType: NoiseOf(NoiseWhite),
		FadeOut:   Float64(duration * 0.8),
		Volume:    Float64(0.2),
	}
}

// Whoosh is a falling sweep.
func Whoosh(duration float64) Options {
	return Options{
		Name:      "whoosh",
		Type:      TypeOf(TypeSweep),
		Duration:  Float64(duration),
		StartFreq: Float64(1000),
		EndFreq:   Float64(200),
		Volume:    Float64(0.4),
	}
}

// Zap is a bright additive tone.
func Zap(duration float64) Options {
	return Options{
		Name:      "zap",
		Type:      TypeOf(TypeComplex),
		Frequency: Float64(300),
		Duration:  Float64(duration),
		Harmonics: []float64{1, 0.8, 0.6, 0.4, 0.2},
		Volume:    Float64(0.5),
	}
}

// RandomSFX picks a new random effect every time it is loaded.
func RandomSFX(duration float64) Options {
	return Options{
		Name:     "random_sfx",
		Type:     TypeOf(TypeRandom),
		Duration: Float64(duration),
		Volume:   Float64(0.4),
	}
}

var presets = map[string]func() Options{
	"beep":   func() Options { return Beep(800, 0.2) },
	"click":  func() Options { return Click(0.1) },
	"whoosh": func() Options { return Whoosh(0.5) },
	"zap":    func() Options { return Zap(0.3) },
	"random": func() Options { return RandomSFX(0.5) },
}

// PresetNames lists the names accepted by PresetOptions.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// PresetOptions returns the preset kind with its default arguments. A non-empty
// name replaces the preset's own name.
func PresetOptions(kind string, name string) (Options, error) {
	build, ok := presets[kind]
	if !ok {
		return Options{}, fmt.Errorf("unknown preset %q (have %v)", kind, PresetNames())
	}
	o := build()
	if name != "" {
		o.Name = name
	}
	return o, nil
}
