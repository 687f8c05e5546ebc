package sfx

import (
	"math"
	"reflect"
	"testing"
)

func TestPresetTable(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		check  func(Config) bool
		volume float64
	}{
		{"beep", Beep(800, 0.2), func(c Config) bool {
			return c.Type == TypeTone && c.WaveType == WaveSine && c.Frequency == 800 && c.Duration == 0.2
		}, 0.3},
		{"click", Click(0.1), func(c Config) bool {
			return c.Type == TypeNoise && c.NoiseType == NoiseWhite && math.Abs(c.FadeOut-0.08) < 1e-12 && c.Duration == 0.1
		}, 0.2},
		{"whoosh", Whoosh(0.5), func(c Config) bool {
			return c.Type == TypeSweep && c.StartFreq == 1000 && c.EndFreq == 200 && c.Duration == 0.5
		}, 0.4},
		{"zap", Zap(0.3), func(c Config) bool {
			return c.Type == TypeComplex && c.Frequency == 300 &&
				reflect.DeepEqual(c.Harmonics, []float64{1, 0.8, 0.6, 0.4, 0.2})
		}, 0.5},
		{"random", RandomSFX(0.5), func(c Config) bool {
			return c.Type == TypeRandom && c.Duration == 0.5
		}, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Resolve(tt.opts)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if !tt.check(cfg) {
				t.Fatalf("preset parameters mismatch: %+v", cfg)
			}
			if cfg.Volume != tt.volume {
				t.Fatalf("volume = %g, want %g", cfg.Volume, tt.volume)
			}
		})
	}
}

func TestBeepName(t *testing.T) {
	if got := Beep(800, 0.2).Name; got != "beep_800" {
		t.Fatalf("Beep name = %q", got)
	}
}

func TestPresetOptionsLookup(t *testing.T) {
	o, err := PresetOptions("whoosh", "door")
	if err != nil {
		t.Fatalf("PresetOptions: %v", err)
	}
	if o.Name != "door" || *o.Type != TypeSweep {
		t.Fatalf("unexpected options: %+v", o)
	}
	if _, err := PresetOptions("laser", ""); err == nil {
		t.Fatalf("unknown preset should fail")
	}
	want := []string{"beep", "click", "random", "whoosh", "zap"}
	if got := PresetNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("PresetNames() = %v", got)
	}
}
