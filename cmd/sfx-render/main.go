package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-sfx/internal/fitcommon"
	"github.com/cwbudde/algo-sfx/preset"
	"github.com/cwbudde/algo-sfx/sfx"
	"github.com/cwbudde/algo-sfx/wavpcm"
	"github.com/sirupsen/logrus"
)

func main() {
	presetName := flag.String("preset", "beep", "Built-in preset ("+strings.Join(sfx.PresetNames(), ", ")+")")
	configPath := flag.String("config", "", "Preset JSON file; overrides -preset")
	bankPath := flag.String("bank", "", "Preset bank JSON file; renders every clip into -out-dir")
	outDir := flag.String("out-dir", "out", "Output directory for -bank")
	name := flag.String("name", "", "Clip name override")
	output := flag.String("output", "", "Output WAV path (default <name>.wav)")
	outRate := flag.Int("out-rate", 0, "Resample the rendered clip to this rate in Hz (0 keeps the clip rate)")
	base64Out := flag.Bool("base64", false, "Print the clip as a data URL instead of writing a file")
	seed := flag.Int64("seed", 0, "Random seed for noise and random clips (0 uses the clock)")
	verbose := flag.Bool("v", false, "Verbose engine logging")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if *bankPath != "" {
		opts, err := preset.LoadBank(*bankPath)
		if err != nil {
			die("failed to load bank %q: %v", *bankPath, err)
		}
		for _, o := range opts {
			path := bankOutputPath(*outDir, o.Name)
			frames, err := renderToFile(o, path, *outRate, *seed)
			if err != nil {
				die("failed to render %q: %v", o.Name, err)
			}
			fmt.Printf("Wrote %s (%d frames)\n", path, frames)
		}
		return
	}

	var opts sfx.Options
	var err error
	if *configPath != "" {
		opts, err = preset.LoadJSON(*configPath)
		if err != nil {
			die("failed to load config %q: %v", *configPath, err)
		}
		if *name != "" {
			opts.Name = *name
		}
	} else {
		opts, err = sfx.PresetOptions(*presetName, *name)
		if err != nil {
			die("%v", err)
		}
	}

	if *base64Out {
		clip, err := loadClip(opts, *seed)
		if err != nil {
			die("failed to render: %v", err)
		}
		url, err := clip.DataURL()
		if err != nil {
			die("failed to encode: %v", err)
		}
		fmt.Println(url)
		return
	}

	path := *output
	if path == "" {
		path = opts.Name + ".wav"
	}
	frames, err := renderToFile(opts, path, *outRate, *seed)
	if err != nil {
		die("failed to render: %v", err)
	}
	fmt.Printf("Successfully wrote %s (%d frames)\n", path, frames)
}

func loadClip(opts sfx.Options, seed int64) (*sfx.Clip, error) {
	var clipOpts []sfx.ClipOption
	if seed != 0 {
		clipOpts = append(clipOpts, sfx.WithSeed(seed))
	}
	clip, err := sfx.New(opts, clipOpts...)
	if err != nil {
		return nil, err
	}
	cfg := clip.Config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := clip.Load(context.Background()); err != nil {
		return nil, err
	}
	return clip, nil
}

func renderToFile(opts sfx.Options, path string, outRate int, seed int64) (int, error) {
	clip, err := loadClip(opts, seed)
	if err != nil {
		return 0, err
	}
	buf, err := clip.Buffer()
	if err != nil {
		return 0, err
	}
	if outRate <= 0 || outRate == buf.SampleRate() {
		payload, err := sfx.Export(clip)
		if err != nil {
			return 0, err
		}
		if err := fitcommon.WriteFile(path, payload.Data); err != nil {
			return 0, err
		}
		return buf.Len(), nil
	}

	samples, err := fitcommon.ResampleIfNeeded(buf.ChannelData(0), buf.SampleRate(), outRate)
	if err != nil {
		return 0, fmt.Errorf("resample: %w", err)
	}
	if err := fitcommon.WriteFile(path, wavpcm.Encode(samples, outRate)); err != nil {
		return 0, err
	}
	return len(samples), nil
}

// bankOutputPath keeps every bank clip inside dir whatever its name.
func bankOutputPath(dir, name string) string {
	return filepath.Join(dir, filepath.Base(filepath.Clean("/"+name))+".wav")
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
