package wavpcm

import (
	"fmt"
	"io"

	"github.com/cwbudde/wav"
)

// Decode reads any PCM WAV stream with a general-purpose RIFF decoder and
// returns the channels averaged to mono along with the sample rate. The decoder
// already delivers samples normalized to [-1, 1].
func Decode(r io.ReadSeeker) ([]float64, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("wavpcm: invalid wav stream")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wavpcm: decode: %w", err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("wavpcm: invalid pcm buffer")
	}
	ch := buf.Format.NumChannels
	frames := len(buf.Data) / ch
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < ch; c++ {
			sum += float64(buf.Data[i*ch+c])
		}
		out[i] = sum / float64(ch)
	}
	return out, buf.Format.SampleRate, nil
}
