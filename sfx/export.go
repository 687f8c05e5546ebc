package sfx

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-sfx/wavpcm"
	"github.com/sirupsen/logrus"
)

// MIMEType is the media type of encoded clips.
const MIMEType = "audio/wav"

// Encode serializes buf as a mono 16-bit PCM WAV file.
func Encode(buf *Buffer) []byte {
	return wavpcm.Encode(buf.ChannelData(0), buf.SampleRate())
}

// Payload is an encoded clip ready to be stored or sent.
type Payload struct {
	Name     string
	MIMEType string
	Data     []byte
}

// WriteFile stores the payload as dir/Name and returns the path.
func (p Payload) WriteFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, filepath.Base(p.Name))
	if err := os.WriteFile(path, p.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Export encodes a loaded clip into a payload named after the clip.
func Export(c *Clip) (Payload, error) {
	data, err := c.WAV()
	if err != nil {
		return Payload{}, err
	}
	return Payload{
		Name:     c.Name() + ".wav",
		MIMEType: MIMEType,
		Data:     data,
	}, nil
}

// WAV returns the encoded bytes of the clip.
func (c *Clip) WAV() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Loaded {
		c.log.WithFields(logrus.Fields{
			"clip":  c.cfg.Name,
			"state": c.state,
		}).Error("Cannot encode clip that is not loaded")
		return nil, ErrNotLoaded
	}
	return Encode(c.buf), nil
}

// Base64 returns the encoded bytes in standard base64.
func (c *Clip) Base64() (string, error) {
	data, err := c.WAV()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DataURL returns the clip as a data:audio/wav;base64 URL.
func (c *Clip) DataURL() (string, error) {
	s, err := c.Base64()
	if err != nil {
		return "", err
	}
	return "data:" + MIMEType + ";base64," + s, nil
}
