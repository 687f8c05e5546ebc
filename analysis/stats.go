package analysis

import (
	"math"

	"github.com/cwbudde/algo-approx"
)

// Stats summarizes the level of a signal.
type Stats struct {
	Frames    int     `json:"frames"`
	Peak      float64 `json:"peak"`
	RMS       float64 `json:"rms"`
	DC        float64 `json:"dc"`
	CrestDB   float64 `json:"crest_db"`
	Clipped   int     `json:"clipped"`
	NonFinite int     `json:"non_finite"`
}

// Measure computes level statistics of x. Non-finite samples are counted and skipped.
func Measure(x []float64) Stats {
	s := Stats{Frames: len(x)}
	var sum, sumSq float64
	n := 0
	for _, v := range x {
		if !isFinite(v) {
			s.NonFinite++
			continue
		}
		a := math.Abs(v)
		if a > s.Peak {
			s.Peak = a
		}
		if a >= 1 {
			s.Clipped++
		}
		sum += v
		sumSq += v * v
		n++
	}
	if n == 0 {
		return s
	}
	s.DC = sum / float64(n)
	s.RMS = math.Sqrt(sumSq / float64(n))
	if s.RMS > 0 {
		s.CrestDB = linToDB(s.Peak) - linToDB(s.RMS)
	}
	return s
}

// TrimSilence drops leading and trailing frames quieter than thresholdDB (dBFS).
func TrimSilence(x []float64, thresholdDB float64) []float64 {
	th := DBToLinear(thresholdDB)
	start := 0
	for start < len(x) && math.Abs(x[start]) <= th {
		start++
	}
	end := len(x)
	for end > start && math.Abs(x[end-1]) <= th {
		end--
	}
	return x[start:end]
}

// DBToLinear converts a dBFS value to linear amplitude.
func DBToLinear(db float64) float64 {
	const ln10Over20 = 0.11512925464970228
	return float64(approx.FastExp(float32(db * ln10Over20)))
}

func linToDB(x float64) float64 {
	if x < 1e-12 {
		x = 1e-12
	}
	return 20.0 * math.Log10(x)
}

func rms(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
