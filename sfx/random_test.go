package sfx

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestRandomSnapshotRanges(t *testing.T) {
	base := DefaultConfig()
	base.Name = "r"
	rng := rand.New(rand.NewSource(42))
	seen := map[Type]int{}
	for i := 0; i < 3000; i++ {
		s := RandomSnapshot(base, rng)
		seen[s.Type]++
		if s.Frequency < 100 || s.Frequency >= 900 {
			t.Fatalf("frequency %g outside [100,900)", s.Frequency)
		}
		if s.StartFreq < 50 || s.StartFreq >= 250 {
			t.Fatalf("start %g outside [50,250)", s.StartFreq)
		}
		if s.EndFreq < 200 || s.EndFreq >= 1000 {
			t.Fatalf("end %g outside [200,1000)", s.EndFreq)
		}
	}
	for _, typ := range randomTypes {
		if seen[typ] < 800 {
			t.Fatalf("type %s drawn %d/3000 times, expected roughly uniform", typ, seen[typ])
		}
	}
	if len(seen) != 3 {
		t.Fatalf("unexpected types drawn: %v", seen)
	}
}

func TestRandomEffectLeavesBaseUntouched(t *testing.T) {
	base := DefaultConfig()
	base.Name = "r"
	before := base.Clone()
	buf := make([]float64, 4410)
	snap := RandomEffect(buf, base, rand.New(rand.NewSource(3)))
	if !reflect.DeepEqual(base, before) {
		t.Fatalf("base config mutated: %+v", base)
	}
	snap.Harmonics[0] = 99
	if base.Harmonics[0] == 99 {
		t.Fatalf("snapshot shares harmonics with base")
	}
}

func TestClipGenerateRandomIsolation(t *testing.T) {
	c, err := New(Options{Name: "rnd", Frequency: Float64(333), WaveType: Wave(WaveTriangle)}, WithSeed(5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := c.Config()
	a := c.GenerateRandom(1000)
	b := c.GenerateRandom(1000)
	after := c.Config()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("stored config changed:\nbefore=%+v\nafter=%+v", before, after)
	}
	if len(a) != 1000 || len(b) != 1000 {
		t.Fatalf("unexpected lengths %d/%d", len(a), len(b))
	}
	if reflect.DeepEqual(a, b) {
		t.Fatalf("two random draws produced identical audio")
	}
	if got := c.GenerateRandom(-4); len(got) != 0 {
		t.Fatalf("negative length should yield no samples")
	}
}

func TestRandomSeededReproducible(t *testing.T) {
	base := DefaultConfig()
	a := make([]float64, 2000)
	b := make([]float64, 2000)
	sa := RandomEffect(a, base, rand.New(rand.NewSource(77)))
	sb := RandomEffect(b, base, rand.New(rand.NewSource(77)))
	if !reflect.DeepEqual(sa, sb) || !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed should reproduce the same effect")
	}
}
