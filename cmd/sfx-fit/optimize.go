package main

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/cwbudde/algo-sfx/analysis"
	"github.com/cwbudde/algo-sfx/sfx"
	"github.com/cwbudde/mayfly"
)

type optimizationConfig struct {
	reference  []float64
	sampleRate int
	base       sfx.Config
	space      *fitSpace
	variant    string
	pop        int
	iterations int
	seed       int64
	verbose    bool
}

type optimizationResult struct {
	Best        sfx.Config
	BestMetrics analysis.Metrics
	Evaluations int
	Top         []topCandidate
}

type topCandidate struct {
	Eval  int                `json:"eval"`
	Score float64            `json:"score"`
	Knobs map[string]float64 `json:"knobs"`
}

const topK = 5

func runOptimization(cfg *optimizationConfig) (*optimizationResult, error) {
	if len(cfg.reference) == 0 {
		return nil, fmt.Errorf("empty reference")
	}
	variant := strings.ToLower(cfg.variant)

	res := &optimizationResult{Best: cfg.base.Clone()}
	evaluate := func(c sfx.Config) (analysis.Metrics, error) {
		buf, err := sfx.Generate(c, nil, rand.New(rand.NewSource(cfg.seed)))
		if err != nil {
			return analysis.Metrics{}, err
		}
		return analysis.Compare(cfg.reference, buf.ChannelData(0), cfg.sampleRate), nil
	}

	start := cfg.space.apply(cfg.base, cfg.space.initial(cfg.base))
	m, err := evaluate(start)
	if err != nil {
		return nil, fmt.Errorf("evaluate start: %w", err)
	}
	res.Best, res.BestMetrics, res.Evaluations = start, m, 1
	res.Top = updateTopCandidates(res.Top, 1, m.Score, cfg.space.knobs(start))

	mc, err := newMayflyConfig(variant, cfg.pop, len(cfg.space.defs), cfg.iterations)
	if err != nil {
		return nil, err
	}
	mc.Rand = rand.New(rand.NewSource(cfg.seed))
	mc.ObjectiveFunc = func(pos []float64) float64 {
		c := cfg.space.apply(cfg.base, pos)
		m, err := evaluate(c)
		res.Evaluations++
		if err != nil {
			return math.Inf(1)
		}
		if m.Score < res.BestMetrics.Score {
			res.Best, res.BestMetrics = c, m
			if cfg.verbose {
				fmt.Printf("eval %d: score %.5f similarity %.4f\n", res.Evaluations, m.Score, m.Similarity)
			}
		}
		res.Top = updateTopCandidates(res.Top, res.Evaluations, m.Score, cfg.space.knobs(c))
		return m.Score
	}
	if _, err := runMayfly(mc); err != nil {
		return res, fmt.Errorf("mayfly failed: %w", err)
	}
	return res, nil
}

func newMayflyConfig(variant string, pop int, dims int, iters int) (*mayfly.Config, error) {
	if pop < 2 {
		return nil, fmt.Errorf("population must be >= 2")
	}
	if iters < 1 {
		return nil, fmt.Errorf("iterations must be >= 1")
	}
	var cfg *mayfly.Config
	switch variant {
	case "ma":
		cfg = mayfly.NewDefaultConfig()
	case "desma":
		cfg = mayfly.NewDESMAConfig()
	case "olce":
		cfg = mayfly.NewOLCEConfig()
	case "eobbma":
		cfg = mayfly.NewEOBBMAConfig()
	case "gsasma":
		cfg = mayfly.NewGSASMAConfig()
	case "mpma":
		cfg = mayfly.NewMPMAConfig()
	case "aoblmoa":
		cfg = mayfly.NewAOBLMOAConfig()
	default:
		return nil, fmt.Errorf("unsupported variant %q", variant)
	}
	cfg.ProblemSize = dims
	cfg.LowerBound = 0.0
	cfg.UpperBound = 1.0
	cfg.MaxIterations = iters
	cfg.NPop = pop
	cfg.NPopF = pop
	cfg.NC = 2 * pop
	cfg.NM = max(1, int(math.Round(0.05*float64(pop))))
	return cfg, nil
}

func runMayfly(cfg *mayfly.Config) (_ *mayfly.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mayfly panic: %v", r)
		}
	}()
	return mayfly.Optimize(cfg)
}

func updateTopCandidates(top []topCandidate, eval int, score float64, knobs map[string]float64) []topCandidate {
	if math.IsInf(score, 0) || math.IsNaN(score) {
		return top
	}
	top = append(top, topCandidate{Eval: eval, Score: score, Knobs: knobs})
	sort.SliceStable(top, func(i, j int) bool { return top[i].Score < top[j].Score })
	if len(top) > topK {
		top = top[:topK]
	}
	return top
}
