package sfx

import (
	"fmt"
	"math"
	"testing"
)

func measureFundamentalFreq(samples []float64, sampleRate float64) float64 {
	startIdx := len(samples) / 10
	crossings := 0
	for i := startIdx + 1; i < len(samples); i++ {
		if (samples[i-1] < 0 && samples[i] >= 0) || (samples[i-1] >= 0 && samples[i] < 0) {
			crossings++
		}
	}
	duration := float64(len(samples)-startIdx) / sampleRate
	return float64(crossings) / (2.0 * duration)
}

func TestToneFrequency(t *testing.T) {
	const sampleRate = 44100
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSawtooth, WaveTriangle} {
		for _, f := range []float64{220, 440, 1000} {
			t.Run(fmt.Sprintf("%s_%g", wave, f), func(t *testing.T) {
				buf := make([]float64, sampleRate)
				Tone(buf, sampleRate, f, wave)
				got := measureFundamentalFreq(buf, sampleRate)
				if math.Abs(got-f) > 2 {
					t.Fatalf("measured %.2f Hz, want %.2f Hz", got, f)
				}
			})
		}
	}
}

func TestToneShapesAtOrigin(t *testing.T) {
	buf := make([]float64, 4)
	tests := []struct {
		wave WaveType
		want float64
	}{
		{WaveSine, 0},
		{WaveSquare, 1},
		{WaveSawtooth, 0},
		{WaveTriangle, -1},
	}
	for _, tt := range tests {
		Tone(buf, 44100, 440, tt.wave)
		if buf[0] != tt.want {
			t.Errorf("%s: sample 0 = %g, want %g", tt.wave, buf[0], tt.want)
		}
	}
}

func TestToneRanges(t *testing.T) {
	buf := make([]float64, 44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSawtooth, WaveTriangle} {
		Tone(buf, 44100, 523.25, wave)
		for i, v := range buf {
			if v < -1 || v > 1 {
				t.Fatalf("%s: sample %d = %g out of [-1,1]", wave, i, v)
			}
		}
	}
	Tone(buf, 44100, 523.25, WaveSquare)
	for i, v := range buf {
		if v != 1 && v != -1 {
			t.Fatalf("square sample %d = %g, want +-1", i, v)
		}
	}
}

func TestToneUnknownWaveFallsBackToSine(t *testing.T) {
	a := make([]float64, 1000)
	b := make([]float64, 1000)
	Tone(a, 44100, 440, WaveType("organ"))
	Tone(b, 44100, 440, WaveSine)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %g vs %g", i, a[i], b[i])
		}
	}
}

func TestSweepPhaseFollowsInterpolatedFrequency(t *testing.T) {
	const sampleRate = 8000
	buf := make([]float64, 8000)
	Sweep(buf, sampleRate, 100, 300)
	for _, i := range []int{0, 1, 1234, 4000, 7999} {
		p := float64(i) / float64(len(buf))
		f := 100 + 200*p
		want := math.Sin(float64(i) / sampleRate * f * 2 * math.Pi)
		if math.Abs(buf[i]-want) > 1e-12 {
			t.Fatalf("sample %d = %g, want %g", i, buf[i], want)
		}
	}
}

func TestComplexSingleHarmonicMatchesSine(t *testing.T) {
	a := make([]float64, 2048)
	b := make([]float64, 2048)
	Complex(a, 44100, 330, []float64{1})
	Tone(b, 44100, 330, WaveSine)
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			t.Fatalf("sample %d: complex=%g sine=%g", i, a[i], b[i])
		}
	}
}

func TestComplexNormalizesByHarmonicCount(t *testing.T) {
	const sampleRate = 48000
	buf := make([]float64, 200)
	h := []float64{1, 0.5, 0.25}
	Complex(buf, sampleRate, 440, h)
	i := 37
	var want float64
	for k, a := range h {
		want += math.Sin(2*math.Pi*440*float64(k+1)*float64(i)/sampleRate) * a
	}
	want /= 3
	if math.Abs(buf[i]-want) > 1e-12 {
		t.Fatalf("sample %d = %g, want %g", i, buf[i], want)
	}
}

func TestComplexWithoutHarmonicsIsSilent(t *testing.T) {
	buf := []float64{1, 2, 3}
	Complex(buf, 44100, 440, nil)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("sample %d = %g, want 0", i, v)
		}
	}
}
