package sfx

import (
	"math"
	"math/rand"
	"testing"
)

func TestWhiteNoiseRangeAndMean(t *testing.T) {
	buf := make([]float64, 44100)
	WhiteNoise(buf, rand.New(rand.NewSource(1)))
	var sum float64
	for i, v := range buf {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d = %g out of [-1,1]", i, v)
		}
		sum += v
	}
	if mean := sum / float64(len(buf)); math.Abs(mean) > 0.02 {
		t.Fatalf("white noise mean %g too far from 0", mean)
	}
}

func TestPinkNoiseStability(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		buf := make([]float64, 44100)
		PinkNoise(buf, rand.New(rand.NewSource(seed)))
		for i, v := range buf {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("seed %d: non-finite sample at %d", seed, i)
			}
			if v < -1.5 || v > 1.5 {
				t.Fatalf("seed %d: sample %d = %g outside [-1.5,1.5]", seed, i, v)
			}
		}
	}
}

func TestPinkNoiseFirstSampleUsesFreshState(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	w := rand.New(rand.NewSource(9)).Float64()*2 - 1
	buf := make([]float64, 1)
	PinkNoise(buf, rng)
	want := (w*(0.0555179+0.0750759+0.1538520+0.3104856+0.5329522-0.0168980) + w*0.5362) * 0.11
	if math.Abs(buf[0]-want) > 1e-12 {
		t.Fatalf("first pink sample = %g, want %g", buf[0], want)
	}

	// A second call restarts from zero state.
	again := make([]float64, 1)
	PinkNoise(again, rand.New(rand.NewSource(9)))
	if again[0] != buf[0] {
		t.Fatalf("pink filter state leaked between calls: %g vs %g", again[0], buf[0])
	}
}

func TestBrownNoiseRecurrence(t *testing.T) {
	buf := make([]float64, 1000)
	BrownNoise(buf, rand.New(rand.NewSource(3)))

	ref := rand.New(rand.NewSource(3))
	last := 0.0
	for i := range buf {
		w := ref.Float64()*2 - 1
		last = (last + 0.02*w) / 1.02
		if math.Abs(buf[i]-last*3.5) > 1e-12 {
			t.Fatalf("sample %d = %g, want %g", i, buf[i], last*3.5)
		}
	}
}

func TestBrownNoiseIsSmoother(t *testing.T) {
	white := make([]float64, 8192)
	brown := make([]float64, 8192)
	WhiteNoise(white, rand.New(rand.NewSource(5)))
	BrownNoise(brown, rand.New(rand.NewSource(5)))
	if meanAbsStep(brown) >= meanAbsStep(white) {
		t.Fatalf("brown noise should change more slowly than white noise")
	}
}

func meanAbsStep(x []float64) float64 {
	var sum float64
	for i := 1; i < len(x); i++ {
		sum += math.Abs(x[i] - x[i-1])
	}
	return sum / float64(len(x)-1)
}

func TestNoiseUnknownKindFallsBackToWhite(t *testing.T) {
	a := make([]float64, 256)
	b := make([]float64, 256)
	Noise(a, NoiseType("blue"), rand.New(rand.NewSource(11)))
	WhiteNoise(b, rand.New(rand.NewSource(11)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %g vs %g", i, a[i], b[i])
		}
	}
}
