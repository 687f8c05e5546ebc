package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-sfx/internal/fitcommon"
	"github.com/cwbudde/algo-sfx/sfx"
)

type knobDef struct {
	Name string
	Min  float64
	Max  float64
	Log  bool
}

// decode maps a normalized optimizer coordinate onto the knob range.
func (k knobDef) decode(u float64) float64 {
	if k.Log {
		lo, hi := math.Log(k.Min), math.Log(k.Max)
		return math.Exp(fitcommon.Lerp(lo, hi, u))
	}
	return fitcommon.Lerp(k.Min, k.Max, u)
}

func (k knobDef) encode(v float64) float64 {
	if k.Log {
		return fitcommon.Unlerp(math.Log(k.Min), math.Log(k.Max), math.Log(math.Max(v, k.Min)))
	}
	return fitcommon.Unlerp(k.Min, k.Max, v)
}

type fitSpace struct {
	kind      sfx.Type
	harmonics int
	defs      []knobDef
}

func parseFitType(raw string) (sfx.Type, error) {
	switch t := sfx.Type(strings.ToLower(strings.TrimSpace(raw))); t {
	case sfx.TypeTone, sfx.TypeSweep, sfx.TypeComplex:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported fit type %q (valid: tone, sweep, complex)", raw)
	}
}

// newFitSpace lists the knobs searched for the given effect type. Fades are
// bounded by half the reference duration.
func newFitSpace(kind sfx.Type, minHz, maxHz, duration float64, harmonics int) (*fitSpace, error) {
	if minHz <= 0 || maxHz <= minHz {
		return nil, fmt.Errorf("invalid frequency range %g..%g", minHz, maxHz)
	}
	if !(duration > 0) {
		return nil, fmt.Errorf("duration must be > 0")
	}
	s := &fitSpace{kind: kind}
	switch kind {
	case sfx.TypeSweep:
		s.defs = append(s.defs,
			knobDef{Name: "startFreq", Min: minHz, Max: maxHz, Log: true},
			knobDef{Name: "endFreq", Min: minHz, Max: maxHz, Log: true},
		)
	case sfx.TypeTone, sfx.TypeComplex:
		s.defs = append(s.defs, knobDef{Name: "frequency", Min: minHz, Max: maxHz, Log: true})
	default:
		return nil, fmt.Errorf("unsupported fit type %q", kind)
	}
	s.defs = append(s.defs,
		knobDef{Name: "fadeIn", Min: 0, Max: duration / 2},
		knobDef{Name: "fadeOut", Min: 0, Max: duration / 2},
	)
	if kind == sfx.TypeComplex {
		if harmonics < 1 {
			return nil, fmt.Errorf("harmonics must be >= 1")
		}
		s.harmonics = harmonics
		for i := 0; i < harmonics; i++ {
			s.defs = append(s.defs, knobDef{Name: fmt.Sprintf("h%d", i+1), Min: 0, Max: 1})
		}
	}
	return s, nil
}

// apply writes the decoded position into a copy of base.
func (s *fitSpace) apply(base sfx.Config, pos []float64) sfx.Config {
	cfg := base.Clone()
	cfg.Type = s.kind
	var harmonics []float64
	for i, d := range s.defs {
		v := d.decode(pos[i])
		switch d.Name {
		case "frequency":
			cfg.Frequency = v
		case "startFreq":
			cfg.StartFreq = v
		case "endFreq":
			cfg.EndFreq = v
		case "fadeIn":
			cfg.FadeIn = v
		case "fadeOut":
			cfg.FadeOut = v
		default:
			harmonics = append(harmonics, v)
		}
	}
	if s.kind == sfx.TypeComplex {
		cfg.Harmonics = harmonics
	}
	return cfg
}

// initial encodes base as a starting position.
func (s *fitSpace) initial(base sfx.Config) []float64 {
	pos := make([]float64, len(s.defs))
	h := 0
	for i, d := range s.defs {
		var v float64
		switch d.Name {
		case "frequency":
			v = base.Frequency
		case "startFreq":
			v, _ = base.SweepRange()
		case "endFreq":
			_, v = base.SweepRange()
		case "fadeIn":
			v = base.FadeIn
		case "fadeOut":
			v = base.FadeOut
		default:
			if h < len(base.Harmonics) {
				v = base.Harmonics[h]
			}
			h++
		}
		pos[i] = d.encode(v)
	}
	return pos
}

func (s *fitSpace) knobs(cfg sfx.Config) map[string]float64 {
	out := make(map[string]float64, len(s.defs))
	pos := s.initial(cfg)
	for i, d := range s.defs {
		out[d.Name] = d.decode(pos[i])
	}
	return out
}
