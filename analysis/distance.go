package analysis

import (
	"math"

	"github.com/cwbudde/algo-approx"
)

// Metrics contains distance measurements between a reference and a candidate effect.
type Metrics struct {
	SampleRate int `json:"sample_rate"`

	ReferenceFrames int `json:"reference_frames"`
	CandidateFrames int `json:"candidate_frames"`
	AlignedFrames   int `json:"aligned_frames"`

	TimeRMSE       float64 `json:"time_rmse"`
	EnvelopeRMSEDB float64 `json:"envelope_rmse_db"`
	SpectralRMSEDB float64 `json:"spectral_rmse_db"`
	LengthDiff     float64 `json:"length_diff"`

	Score      float64 `json:"score"`
	Similarity float64 `json:"similarity"`
}

const (
	envFrame = 256
	envHop   = 128
)

// Compare scores how close candidate is to reference. Both signals are trimmed
// of silence and RMS-normalized first, so only shape and timbre count.
// Score is in [0,1] with 0 meaning identical; Similarity maps it back to (0,1].
func Compare(reference []float64, candidate []float64, sampleRate int) Metrics {
	m := Metrics{
		SampleRate:      sampleRate,
		ReferenceFrames: len(reference),
		CandidateFrames: len(candidate),
	}
	ref := TrimSilence(reference, -80)
	cand := TrimSilence(candidate, -80)
	if sampleRate <= 0 || len(ref) == 0 || len(cand) == 0 {
		m.Score = 1.0
		return m
	}

	longer := math.Max(float64(len(ref)), float64(len(cand)))
	m.LengthDiff = math.Abs(float64(len(ref)-len(cand))) / longer

	ref = normalizeRMS(ref, 0.1)
	cand = normalizeRMS(cand, 0.1)
	n := min(len(ref), len(cand))
	ref, cand = ref[:n], cand[:n]
	m.AlignedFrames = n

	m.TimeRMSE = rmse(ref, cand)
	m.EnvelopeRMSEDB = envelopeRMSEDB(ref, cand)
	if d, err := spectralRMSEDB(ref, cand); err == nil {
		m.SpectralRMSEDB = d
	}

	timeNorm := clamp01(m.TimeRMSE / 0.25)
	envNorm := clamp01(m.EnvelopeRMSEDB / 30.0)
	specNorm := clamp01(m.SpectralRMSEDB / 30.0)
	m.Score = clamp01(0.2*timeNorm + 0.25*envNorm + 0.4*specNorm + 0.15*m.LengthDiff)
	m.Similarity = clamp01(float64(approx.FastExp(float32(-4.0 * m.Score))))
	return m
}

func normalizeRMS(x []float64, target float64) []float64 {
	out := make([]float64, len(x))
	r := rms(x)
	if r <= 1e-12 {
		copy(out, x)
		return out
	}
	g := target / r
	for i, v := range x {
		out[i] = v * g
	}
	return out
}

func rmse(a []float64, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(n))
}

func rmsEnvelope(x []float64, frame int, hop int) []float64 {
	if frame <= 0 || hop <= 0 || len(x) < frame {
		return nil
	}
	out := make([]float64, 1+(len(x)-frame)/hop)
	for i := range out {
		start := i * hop
		out[i] = rms(x[start : start+frame])
	}
	return out
}

func envelopeRMSEDB(a []float64, b []float64) float64 {
	ea := rmsEnvelope(a, envFrame, envHop)
	eb := rmsEnvelope(b, envFrame, envHop)
	n := min(len(ea), len(eb))
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := linToDB(ea[i]) - linToDB(eb[i])
		sum += d * d
	}
	return math.Sqrt(sum / float64(n))
}

func spectralRMSEDB(a []float64, b []float64) (float64, error) {
	size := 512
	for size < DefaultFFTSize && size*2 <= len(a) {
		size *= 2
	}
	sa, err := Spectrum(a, size)
	if err != nil {
		return 0, err
	}
	sb, err := Spectrum(b, size)
	if err != nil {
		return 0, err
	}
	var sum float64
	for k := 1; k < len(sa)-1; k++ {
		d := linToDB(sa[k]) - linToDB(sb[k])
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(sa)-2)), nil
}
