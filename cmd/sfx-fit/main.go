package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cwbudde/algo-sfx/analysis"
	"github.com/cwbudde/algo-sfx/internal/fitcommon"
	"github.com/cwbudde/algo-sfx/preset"
	"github.com/cwbudde/algo-sfx/sfx"
)

func main() {
	referencePath := flag.String("reference", "", "Reference WAV path")
	basePath := flag.String("preset", "", "Optional starting preset JSON")
	fitType := flag.String("type", "tone", "Effect type to fit: tone, sweep, complex")
	wave := flag.String("wave", "sine", "Waveform for tone fits")
	name := flag.String("name", "fitted", "Name of the fitted clip")
	sampleRate := flag.Int("sample-rate", 44100, "Analysis and render sample rate in Hz")
	minHz := flag.Float64("min-hz", 40, "Lower frequency bound")
	maxHz := flag.Float64("max-hz", 8000, "Upper frequency bound")
	harmonics := flag.Int("harmonics", 5, "Number of partials for complex fits")
	variant := flag.String("mayfly-variant", "desma", "Mayfly variant: ma, desma, olce, eobbma, gsasma, mpma, aoblmoa")
	pop := flag.Int("mayfly-pop", 10, "Mayfly population size")
	iters := flag.Int("iterations", 40, "Mayfly iterations")
	seed := flag.Int64("seed", 1, "Random seed")
	outputPreset := flag.String("output-preset", "out/fitted.json", "Where to write the best preset JSON")
	outputWAV := flag.String("output-wav", "", "Optional path to write the best render")
	reportPath := flag.String("report", "", "Optional JSON run report path")
	verbose := flag.Bool("v", false, "Print each improvement")
	flag.Parse()

	if *referencePath == "" {
		die("-reference is required")
	}
	kind, err := parseFitType(*fitType)
	if err != nil {
		die("%v", err)
	}

	ref, err := fitcommon.ReadWAVMonoAt(*referencePath, *sampleRate)
	if err != nil {
		die("failed to read reference: %v", err)
	}
	duration := float64(len(ref)) / float64(*sampleRate)

	opts := sfx.Options{Name: *name}
	if *basePath != "" {
		opts, err = preset.LoadJSON(*basePath)
		if err != nil {
			die("failed to load preset %q: %v", *basePath, err)
		}
		opts.Name = *name
	}
	base, err := sfx.Resolve(opts)
	if err != nil {
		die("%v", err)
	}
	base.SampleRate = *sampleRate
	base.Duration = duration
	if *basePath == "" {
		base.WaveType = sfx.WaveType(*wave)
		base.FadeIn, base.FadeOut = 0.005, duration/4
	}
	base.Volume = matchVolume(ref)

	space, err := newFitSpace(kind, *minHz, *maxHz, duration, *harmonics)
	if err != nil {
		die("%v", err)
	}

	fmt.Printf("Fitting %s to %s (%.3fs at %d Hz, %d knobs, %s pop=%d iters=%d)\n",
		kind, *referencePath, duration, *sampleRate, len(space.defs), *variant, *pop, *iters)

	start := time.Now()
	res, err := runOptimization(&optimizationConfig{
		reference:  ref,
		sampleRate: *sampleRate,
		base:       base,
		space:      space,
		variant:    *variant,
		pop:        *pop,
		iterations: *iters,
		seed:       *seed,
		verbose:    *verbose,
	})
	if err != nil && res == nil {
		die("optimization failed: %v", err)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "optimization stopped early: %v\n", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("Best score %.5f (similarity %.4f) after %d evals in %s\n",
		res.BestMetrics.Score, res.BestMetrics.Similarity, res.Evaluations, elapsed.Round(time.Millisecond))
	for k, v := range space.knobs(res.Best) {
		fmt.Printf("  %-10s %.4f\n", k, v)
	}

	if err := writeOutputs(*outputPreset, *outputWAV, *reportPath, runReport{
		ReferencePath:  *referencePath,
		FitType:        string(kind),
		SampleRate:     *sampleRate,
		DurationSec:    elapsed.Seconds(),
		Evaluations:    res.Evaluations,
		MayflyVariant:  *variant,
		BestScore:      res.BestMetrics.Score,
		BestSimilarity: res.BestMetrics.Similarity,
		BestMetrics:    res.BestMetrics,
		BestKnobs:      space.knobs(res.Best),
		TopCandidates:  res.Top,
	}, res.Best); err != nil {
		die("failed to write outputs: %v", err)
	}
}

// matchVolume returns the reference peak so the fitted clip plays at the same level.
func matchVolume(ref []float64) float64 {
	v := analysis.Measure(ref).Peak
	if v <= 0 {
		return sfx.DefaultConfig().Volume
	}
	return fitcommon.Clamp(v, 0, 1)
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
