package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cwbudde/algo-sfx/preset"
	"github.com/cwbudde/algo-sfx/sfx"
	"github.com/cwbudde/algo-sfx/wavpcm"
	"github.com/ebitengine/oto/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	presetName := flag.String("preset", "beep", "Built-in preset ("+strings.Join(sfx.PresetNames(), ", ")+")")
	configPath := flag.String("config", "", "Preset JSON file; overrides -preset")
	input := flag.String("input", "", "Play an existing 16-bit mono WAV file instead of rendering")
	repeat := flag.Int("repeat", 1, "Number of times to play; random clips are regenerated each time")
	verbose := flag.Bool("v", false, "Verbose engine logging")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	var next func() ([]byte, error)
	if *input != "" {
		data, err := os.ReadFile(*input)
		if err != nil {
			die("failed to read %q: %v", *input, err)
		}
		next = func() ([]byte, error) { return data, nil }
	} else {
		opts, err := loadOptions(*presetName, *configPath)
		if err != nil {
			die("%v", err)
		}
		clip, err := sfx.New(opts)
		if err != nil {
			die("%v", err)
		}
		next = func() ([]byte, error) {
			if err := clip.Load(context.Background()); err != nil {
				return nil, err
			}
			return clip.WAV()
		}
	}

	var out *output
	defer func() {
		if out != nil {
			out.close()
		}
	}()
	for i := 0; i < max(1, *repeat); i++ {
		data, err := next()
		if err != nil {
			die("failed to render: %v", err)
		}
		pcm, h, err := pcmStream(data)
		if err != nil {
			die("%v", err)
		}
		if out == nil {
			out, err = newOutput(h.SampleRate)
			if err != nil {
				die("failed to open audio device: %v", err)
			}
		} else if out.sampleRate != h.SampleRate {
			die("sample rate changed from %d to %d", out.sampleRate, h.SampleRate)
		}
		fmt.Printf("Playing %d frames at %d Hz\n", h.Frames(), h.SampleRate)
		out.play(pcm)
	}
}

func loadOptions(presetName, configPath string) (sfx.Options, error) {
	if configPath != "" {
		return preset.LoadJSON(configPath)
	}
	return sfx.PresetOptions(presetName, "")
}

// pcmStream validates a canonical mono 16-bit WAV and returns its sample data.
func pcmStream(data []byte) (io.Reader, wavpcm.Header, error) {
	h, err := wavpcm.ParseHeader(data)
	if err != nil {
		return nil, wavpcm.Header{}, err
	}
	if h.NumChannels != wavpcm.NumChannels || h.BitsPerSample != wavpcm.BitsPerSample {
		return nil, h, fmt.Errorf("unsupported layout: %d channels, %d bits", h.NumChannels, h.BitsPerSample)
	}
	end := wavpcm.HeaderSize + int(h.DataSize)
	if end > len(data) {
		end = len(data)
	}
	return bytes.NewReader(data[wavpcm.HeaderSize:end]), h, nil
}

type output struct {
	ctx        *oto.Context
	sampleRate int
}

func newOutput(sampleRate int) (*output, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: wavpcm.NumChannels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   20 * time.Millisecond,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready
	return &output{ctx: ctx, sampleRate: sampleRate}, nil
}

func (o *output) play(pcm io.Reader) {
	p := o.ctx.NewPlayer(pcm)
	p.Play()
	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := p.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "player close: %v\n", err)
	}
}

func (o *output) close() {
	if err := o.ctx.Suspend(); err != nil {
		fmt.Fprintf(os.Stderr, "suspend audio: %v\n", err)
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
