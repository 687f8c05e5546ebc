package main

import (
	"encoding/json"
	"math/rand"

	"github.com/cwbudde/algo-sfx/analysis"
	"github.com/cwbudde/algo-sfx/internal/fitcommon"
	"github.com/cwbudde/algo-sfx/preset"
	"github.com/cwbudde/algo-sfx/sfx"
	"github.com/cwbudde/algo-sfx/wavpcm"
)

type runReport struct {
	ReferencePath  string             `json:"reference_path"`
	OutputPreset   string             `json:"output_preset"`
	FitType        string             `json:"fit_type"`
	SampleRate     int                `json:"sample_rate"`
	DurationSec    float64            `json:"elapsed_seconds"`
	Evaluations    int                `json:"evaluations"`
	MayflyVariant  string             `json:"mayfly_variant"`
	BestScore      float64            `json:"best_score"`
	BestSimilarity float64            `json:"best_similarity"`
	BestMetrics    analysis.Metrics   `json:"best_metrics"`
	BestKnobs      map[string]float64 `json:"best_knobs"`
	TopCandidates  []topCandidate     `json:"top_candidates,omitempty"`
}

func writeOutputs(outputPreset, outputWAV, reportPath string, rep runReport, best sfx.Config) error {
	if outputPreset != "" {
		if err := preset.SaveJSON(outputPreset, preset.FromConfig(best)); err != nil {
			return err
		}
		rep.OutputPreset = outputPreset
	}
	if outputWAV != "" {
		buf, err := sfx.Generate(best, nil, rand.New(rand.NewSource(1)))
		if err != nil {
			return err
		}
		if err := fitcommon.WriteFile(outputWAV, wavpcm.Encode(buf.ChannelData(0), buf.SampleRate())); err != nil {
			return err
		}
	}
	if reportPath != "" {
		b, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		if err := fitcommon.WriteFile(reportPath, append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}
