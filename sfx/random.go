package sfx

import "math/rand"

var randomTypes = []Type{TypeTone, TypeNoise, TypeSweep}

// RandomSnapshot draws a fresh parameter set from base: one of tone, noise or
// sweep with randomized frequency, wave shape, noise colour and sweep range.
// base is not modified.
func RandomSnapshot(base Config, rng *rand.Rand) Config {
	c := base.Clone()
	c.Type = randomTypes[rng.Intn(len(randomTypes))]
	c.Frequency = 100 + rng.Float64()*800
	c.WaveType = waveTypes[rng.Intn(len(waveTypes))]
	c.NoiseType = noiseTypes[rng.Intn(len(noiseTypes))]
	c.StartFreq = 50 + rng.Float64()*200
	c.EndFreq = 200 + rng.Float64()*800
	return c
}

// RandomEffect fills dst from a RandomSnapshot of base and returns the snapshot used.
func RandomEffect(dst []float64, base Config, rng *rand.Rand) Config {
	snap := RandomSnapshot(base, rng)
	synthesize(dst, snap, rng)
	return snap
}
