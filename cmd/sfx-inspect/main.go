package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-sfx/analysis"
	"github.com/cwbudde/algo-sfx/internal/fitcommon"
	"github.com/cwbudde/algo-sfx/wavpcm"
)

func main() {
	input := flag.String("input", "", "WAV file to inspect (or first positional argument)")
	jsonOut := flag.Bool("json", false, "Print the report as JSON")
	plain := flag.Bool("plain", false, "Disable terminal styling")
	flag.Parse()

	path := *input
	if path == "" && flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: sfx-inspect [-json] [-plain] file.wav")
		os.Exit(2)
	}

	rep, err := inspect(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to inspect %q: %v\n", path, err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode report: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Print(formatReport(rep, newTheme(!*plain)))
}

func inspect(path string) (report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return report{}, err
	}
	rep := report{Path: path, Bytes: len(raw)}
	if h, err := wavpcm.ParseHeader(raw); err == nil {
		rep.Canonical = true
		rep.HeaderFrames = h.Frames()
		rep.ByteRate = h.ByteRate()
	}

	samples, rate, err := fitcommon.ReadWAVMono(path)
	if err != nil {
		return report{}, err
	}
	rep.SampleRate = rate
	if rate > 0 {
		rep.Duration = float64(len(samples)) / float64(rate)
	}
	rep.Stats = analysis.Measure(samples)
	if f, err := analysis.DominantFrequency(samples, rate); err == nil {
		rep.DominantHz = f
	}
	if c, err := analysis.SpectralCentroid(samples, rate); err == nil {
		rep.CentroidHz = c
	}
	return rep, nil
}
