// Package wavpcm writes and reads canonical mono 16-bit PCM WAV files.
//
// The encoder always emits the minimal 44-byte RIFF/WAVE header followed by a
// single data chunk:
//
//	0   "RIFF"            4  u32 file size - 8
//	8   "WAVE"            12 "fmt "
//	16  u32 16            20 u16 1 (PCM)
//	22  u16 channels      24 u32 sample rate
//	28  u32 byte rate     32 u16 block align
//	34  u16 bits/sample   36 "data"
//	40  u32 data size     44 samples...
//
// All integers are little-endian.
package wavpcm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
)

const (
	HeaderSize    = 44
	NumChannels   = 1
	BitsPerSample = 16
	FormatPCM     = 1

	fmtChunkSize = 16

	// MaxFrames is the largest frame count whose RIFF size still fits in 32 bits.
	MaxFrames = (math.MaxUint32 - (HeaderSize - 8)) / (NumChannels * BitsPerSample / 8)
	maxSample    = 32767
)

// ErrShortHeader is returned by ParseHeader for inputs shorter than HeaderSize.
var ErrShortHeader = errors.New("wavpcm: short header")

// Header describes the fixed 44-byte WAV header.
type Header struct {
	NumChannels   int
	SampleRate    int
	BitsPerSample int
	DataSize      uint32
}

// NewHeader returns the header for frames mono 16-bit frames at sampleRate.
func NewHeader(sampleRate int, frames int) Header {
	h := Header{
		NumChannels:   NumChannels,
		SampleRate:    sampleRate,
		BitsPerSample: BitsPerSample,
	}
	frames = max(0, min(frames, MaxFrames))
	h.DataSize = uint32(frames * h.BlockAlign())
	return h
}

// BlockAlign is the size of one frame in bytes.
func (h Header) BlockAlign() int { return h.NumChannels * h.BitsPerSample / 8 }

// ByteRate is the number of bytes per second of audio.
func (h Header) ByteRate() int { return h.SampleRate * h.BlockAlign() }

// RIFFSize is the value of the RIFF chunk size field.
func (h Header) RIFFSize() uint32 { return HeaderSize + h.DataSize - 8 }

// FileSize is the total encoded length.
func (h Header) FileSize() int { return HeaderSize + int(h.DataSize) }

// Frames returns the number of frames in the data chunk.
func (h Header) Frames() int {
	if h.BlockAlign() == 0 {
		return 0
	}
	return int(h.DataSize) / h.BlockAlign()
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.put(b)
	return b
}

func (h Header) put(b []byte) {
	le := binary.LittleEndian
	copy(b[0:4], "RIFF")
	le.PutUint32(b[4:8], h.RIFFSize())
	copy(b[8:12], "WAVE")
	copy(b[12:16], "fmt ")
	le.PutUint32(b[16:20], fmtChunkSize)
	le.PutUint16(b[20:22], FormatPCM)
	le.PutUint16(b[22:24], uint16(h.NumChannels))
	le.PutUint32(b[24:28], uint32(h.SampleRate))
	le.PutUint32(b[28:32], uint32(h.ByteRate()))
	le.PutUint16(b[32:34], uint16(h.BlockAlign()))
	le.PutUint16(b[34:36], uint16(h.BitsPerSample))
	copy(b[36:40], "data")
	le.PutUint32(b[40:44], h.DataSize)
}

// ParseHeader reads a canonical header from the first 44 bytes of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrShortHeader
	}
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		return Header{}, fmt.Errorf("wavpcm: not a RIFF/WAVE stream")
	}
	if string(b[12:16]) != "fmt " || string(b[36:40]) != "data" {
		return Header{}, fmt.Errorf("wavpcm: non-canonical chunk layout")
	}
	le := binary.LittleEndian
	if f := le.Uint16(b[20:22]); f != FormatPCM {
		return Header{}, fmt.Errorf("wavpcm: unsupported audio format %d", f)
	}
	return Header{
		NumChannels:   int(le.Uint16(b[22:24])),
		SampleRate:    int(le.Uint32(b[24:28])),
		BitsPerSample: int(le.Uint16(b[34:36])),
		DataSize:      le.Uint32(b[40:44]),
	}, nil
}

// QuantizeSample clamps v to [-1, 1] and scales it to a signed 16-bit value.
// NaN encodes as silence.
func QuantizeSample(v float64) int16 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		v = 1
	case v < -1:
		v = -1
	}
	return int16(math.Round(v * maxSample))
}

// Quantize converts samples into a 16-bit go-audio buffer.
func Quantize(samples []float64, sampleRate int) *audio.IntBuffer {
	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(QuantizeSample(v))
	}
	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: NumChannels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: BitsPerSample,
	}
}

// Encode returns the complete WAV file for samples. Samples past MaxFrames are dropped.
func Encode(samples []float64, sampleRate int) []byte {
	if len(samples) > MaxFrames {
		samples = samples[:MaxFrames]
	}
	h := NewHeader(sampleRate, len(samples))
	out := make([]byte, h.FileSize())
	h.put(out)
	pcm := Quantize(samples, sampleRate)
	for i, v := range pcm.Data {
		binary.LittleEndian.PutUint16(out[HeaderSize+2*i:], uint16(int16(v)))
	}
	return out
}

// Write encodes samples to w.
func Write(w io.Writer, samples []float64, sampleRate int) error {
	_, err := io.Copy(w, bytes.NewReader(Encode(samples, sampleRate)))
	return err
}
