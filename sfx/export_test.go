package sfx

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-sfx/wavpcm"
	"github.com/sirupsen/logrus"
)

func TestBeepEndToEnd(t *testing.T) {
	c, _ := newTestClip(t, Options{
		Name:       "beep_800",
		Type:       TypeOf(TypeTone),
		Frequency:  Float64(800),
		Duration:   Float64(0.2),
		SampleRate: Int(44100),
		Volume:     Float64(0.3),
	})
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	p, err := Export(c)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if p.Name != "beep_800.wav" || p.MIMEType != "audio/wav" {
		t.Fatalf("payload metadata mismatch: %q %q", p.Name, p.MIMEType)
	}
	if len(p.Data) != 17684 {
		t.Fatalf("len = %d, want 17684", len(p.Data))
	}
	if string(p.Data[0:4]) != "RIFF" || string(p.Data[8:12]) != "WAVE" || string(p.Data[36:40]) != "data" {
		t.Fatalf("bad chunk ids: %q %q %q", p.Data[0:4], p.Data[8:12], p.Data[36:40])
	}
	if got := binary.LittleEndian.Uint32(p.Data[40:44]); got != 17640 {
		t.Fatalf("data size = %d, want 17640", got)
	}

	samples, rate, err := wavpcm.Decode(bytes.NewReader(p.Data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rate != 44100 || len(samples) != 8820 {
		t.Fatalf("decoded rate=%d frames=%d", rate, len(samples))
	}
}

func TestWAVHeaderArithmeticForOneSecond(t *testing.T) {
	c, _ := newTestClip(t, Options{Name: "one"})
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	data, err := c.WAV()
	if err != nil {
		t.Fatalf("WAV: %v", err)
	}
	if len(data) != 88244 {
		t.Fatalf("len = %d, want 88244", len(data))
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); got != 88236 {
		t.Fatalf("RIFF size = %d, want 88236", got)
	}
	if got := binary.LittleEndian.Uint32(data[40:44]); got != 88200 {
		t.Fatalf("data size = %d, want 88200", got)
	}
}

func TestExportUnloadedClipProducesNothing(t *testing.T) {
	c, hook := newTestClip(t, Options{Name: "cold"})
	p, err := Export(c)
	if !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("Export error = %v, want ErrNotLoaded", err)
	}
	if p.Data != nil {
		t.Fatalf("no bytes expected for unloaded clip")
	}
	e := hook.LastEntry()
	if e == nil || e.Level != logrus.ErrorLevel || e.Data["clip"] != "cold" {
		t.Fatalf("expected logged error for unloaded export, got %+v", e)
	}
	if _, err := c.Base64(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("Base64 error = %v", err)
	}
	if _, err := c.DataURL(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("DataURL error = %v", err)
	}
}

func TestBase64AndDataURLMatchWAV(t *testing.T) {
	c, _ := newTestClip(t, Zap(0.05))
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	raw, _ := c.WAV()
	b64, err := c.Base64()
	if err != nil {
		t.Fatalf("Base64: %v", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(b64)
	if err != nil || !bytes.Equal(decoded, raw) {
		t.Fatalf("base64 payload does not round-trip (err=%v)", err)
	}
	url, _ := c.DataURL()
	if !strings.HasPrefix(url, "data:audio/wav;base64,") || !strings.HasSuffix(url, b64) {
		t.Fatalf("unexpected data URL prefix: %.40s", url)
	}
	// Accessors have no side effects.
	again, _ := c.WAV()
	if !bytes.Equal(again, raw) || !c.IsLoaded() {
		t.Fatalf("WAV() should be repeatable")
	}
}

func TestPayloadWriteFile(t *testing.T) {
	c, _ := newTestClip(t, Click(0.02))
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	p, err := Export(c)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	dir := filepath.Join(t.TempDir(), "out")
	path, err := p.WriteFile(dir)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if filepath.Base(path) != "click.wav" {
		t.Fatalf("path = %s", path)
	}
	got, err := os.ReadFile(path)
	if err != nil || !bytes.Equal(got, p.Data) {
		t.Fatalf("written file mismatch (err=%v)", err)
	}
}

func TestEncodeMatchesWavpcm(t *testing.T) {
	b := NewBuffer(4, 8000)
	b.Set(0, 1)
	b.Set(1, -1)
	b.Set(2, 2)
	data := Encode(b)
	want := wavpcm.Encode([]float64{1, -1, 2, 0}, 8000)
	if !bytes.Equal(data, want) {
		t.Fatalf("Encode disagrees with wavpcm.Encode")
	}
}
