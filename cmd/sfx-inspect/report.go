package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cwbudde/algo-sfx/analysis"
)

type report struct {
	Path         string         `json:"path"`
	Bytes        int            `json:"bytes"`
	Canonical    bool           `json:"canonical_header"`
	HeaderFrames int            `json:"header_frames,omitempty"`
	ByteRate     int            `json:"byte_rate,omitempty"`
	SampleRate   int            `json:"sample_rate"`
	Duration     float64        `json:"duration_seconds"`
	Stats        analysis.Stats `json:"stats"`
	DominantHz   float64        `json:"dominant_hz"`
	CentroidHz   float64        `json:"centroid_hz"`
}

type theme struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	warn  lipgloss.Style
}

func newTheme(color bool) theme {
	if !color {
		s := lipgloss.NewStyle()
		return theme{title: s, label: s, value: s, warn: s}
	}
	return theme{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#61E3FA")),
		label: lipgloss.NewStyle().Foreground(lipgloss.Color("#A9B1D6")),
		value: lipgloss.NewStyle().Foreground(lipgloss.Color("#9ECE6A")),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F7768E")),
	}
}

func formatReport(r report, th theme) string {
	var b strings.Builder
	b.WriteString(th.title.Render(r.Path))
	b.WriteString("\n")

	row := func(label string, value string) {
		fmt.Fprintf(&b, "  %s %s\n", th.label.Render(fmt.Sprintf("%-14s", label)), th.value.Render(value))
	}
	warn := func(label string, value string) {
		fmt.Fprintf(&b, "  %s %s\n", th.label.Render(fmt.Sprintf("%-14s", label)), th.warn.Render(value))
	}

	row("size", fmt.Sprintf("%d bytes", r.Bytes))
	if r.Canonical {
		row("header", fmt.Sprintf("canonical 44-byte PCM, %d frames, %d B/s", r.HeaderFrames, r.ByteRate))
	} else {
		warn("header", "non-canonical layout")
	}
	row("sample rate", fmt.Sprintf("%d Hz", r.SampleRate))
	row("duration", fmt.Sprintf("%.3f s (%d frames)", r.Duration, r.Stats.Frames))
	row("peak", fmt.Sprintf("%.4f", r.Stats.Peak))
	row("rms", fmt.Sprintf("%.4f", r.Stats.RMS))
	row("dc", fmt.Sprintf("%+.5f", r.Stats.DC))
	row("crest", fmt.Sprintf("%.2f dB", r.Stats.CrestDB))
	row("dominant", fmt.Sprintf("%.1f Hz", r.DominantHz))
	row("centroid", fmt.Sprintf("%.1f Hz", r.CentroidHz))
	if r.Stats.Clipped > 0 {
		warn("clipped", fmt.Sprintf("%d samples at full scale", r.Stats.Clipped))
	}
	if r.Stats.NonFinite > 0 {
		warn("non-finite", fmt.Sprintf("%d samples", r.Stats.NonFinite))
	}
	return b.String()
}
