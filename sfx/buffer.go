package sfx

import (
	"fmt"
	"time"

	"github.com/go-audio/audio"
)

// Buffer is a generated mono sample buffer.
type Buffer struct {
	sampleRate int
	data       []float64
}

// NewBuffer allocates a zeroed buffer of length frames.
func NewBuffer(length int, sampleRate int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{sampleRate: sampleRate, data: make([]float64, length)}
}

// NumChannels is always 1.
func (b *Buffer) NumChannels() int { return 1 }

// Len returns the number of frames.
func (b *Buffer) Len() int { return len(b.data) }

// SampleRate returns the rate in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// Duration returns the playing time of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.sampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(b.data)) / float64(b.sampleRate) * float64(time.Second))
}

// ChannelData returns the mutable samples of channel ch. Only channel 0 exists.
func (b *Buffer) ChannelData(ch int) []float64 {
	if ch != 0 {
		return nil
	}
	return b.data
}

// At returns the sample at frame i.
func (b *Buffer) At(i int) float64 { return b.data[i] }

// Set stores v at frame i.
func (b *Buffer) Set(i int, v float64) { b.data[i] = v }

// Float32Buffer converts the samples into a go-audio buffer.
func (b *Buffer) Float32Buffer() *audio.Float32Buffer {
	data := make([]float32, len(b.data))
	for i, v := range b.data {
		data[i] = float32(v)
	}
	return &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  b.sampleRate,
			NumChannels: 1,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
}

// BufferFactory allocates sample storage for generation.
type BufferFactory interface {
	Create(channels int, length int, sampleRate int) (*Buffer, error)
}

// MaxHeapFrames bounds a single HeapFactory allocation (512 MiB of samples).
const MaxHeapFrames = 1 << 26

// HeapFactory allocates buffers on the Go heap, up to MaxHeapFrames frames.
type HeapFactory struct{}

// Create implements BufferFactory.
func (HeapFactory) Create(channels int, length int, sampleRate int) (*Buffer, error) {
	if channels != 1 {
		return nil, fmt.Errorf("unsupported channel count %d", channels)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be > 0: %d", sampleRate)
	}
	if length < 0 {
		return nil, fmt.Errorf("negative buffer length %d", length)
	}
	if length > MaxHeapFrames {
		return nil, fmt.Errorf("buffer length %d exceeds %d frames", length, MaxHeapFrames)
	}
	return NewBuffer(length, sampleRate), nil
}

// BufferFactoryFunc adapts a function to BufferFactory.
type BufferFactoryFunc func(channels int, length int, sampleRate int) (*Buffer, error)

// Create implements BufferFactory.
func (f BufferFactoryFunc) Create(channels int, length int, sampleRate int) (*Buffer, error) {
	return f(channels, length, sampleRate)
}
