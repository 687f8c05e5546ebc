package analysis

import (
	"math"
	"testing"
)

func TestMeasure(t *testing.T) {
	s := Measure([]float64{1, -1, 0.5, -0.5, math.NaN()})
	if s.Frames != 5 || s.NonFinite != 1 {
		t.Fatalf("frame counts wrong: %+v", s)
	}
	if s.Peak != 1 || s.Clipped != 2 {
		t.Fatalf("peak/clip wrong: %+v", s)
	}
	if s.DC != 0 {
		t.Fatalf("DC = %g, want 0", s.DC)
	}
	if want := math.Sqrt(2.5 / 4); math.Abs(s.RMS-want) > 1e-12 {
		t.Fatalf("RMS = %g, want %g", s.RMS, want)
	}
	if s.CrestDB <= 0 {
		t.Fatalf("crest factor should be positive: %g", s.CrestDB)
	}
}

func TestMeasureSineCrest(t *testing.T) {
	x := make([]float64, 44100)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 100 * float64(i) / 44100)
	}
	s := Measure(x)
	if math.Abs(s.CrestDB-3.0103) > 0.05 {
		t.Fatalf("sine crest = %.3f dB, want ~3.01", s.CrestDB)
	}
}

func TestMeasureEmpty(t *testing.T) {
	if s := Measure(nil); s != (Stats{}) {
		t.Fatalf("Measure(nil) = %+v", s)
	}
}

func TestTrimSilence(t *testing.T) {
	x := []float64{0, 1e-6, 0.2, -0.3, 0.1, 0, 0}
	got := TrimSilence(x, -60)
	if len(got) != 3 || got[0] != 0.2 || got[2] != 0.1 {
		t.Fatalf("TrimSilence = %v", got)
	}
	if len(TrimSilence([]float64{0, 0}, -60)) != 0 {
		t.Fatalf("all-silent input should trim to nothing")
	}
}

func TestDBToLinear(t *testing.T) {
	tests := []struct {
		db   float64
		want float64
	}{
		{0, 1},
		{-6.0206, 0.5},
		{-20, 0.1},
		{-60, 0.001},
	}
	for _, tt := range tests {
		got := DBToLinear(tt.db)
		if math.Abs(got-tt.want)/tt.want > 0.01 {
			t.Errorf("DBToLinear(%g) = %g, want %g", tt.db, got, tt.want)
		}
	}
}
