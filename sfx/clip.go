package sfx

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// State is the load state of a Clip.
type State int

const (
	Unloaded State = iota
	Loaded
)

func (s State) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "unloaded"
}

// Clip is a named sound effect: a configuration plus, once loaded, its buffer.
// A Clip is safe for concurrent use; operations on one clip are serialized.
type Clip struct {
	mu      sync.Mutex
	cfg     Config
	buf     *Buffer
	state   State
	factory BufferFactory
	rng     *rand.Rand
	log     logrus.FieldLogger
}

// ClipOption customizes a Clip at construction.
type ClipOption func(*Clip)

// WithBufferFactory sets the allocator used by Load.
func WithBufferFactory(f BufferFactory) ClipOption {
	return func(c *Clip) { c.factory = f }
}

// WithRand sets the random source for noise and random effects.
func WithRand(r *rand.Rand) ClipOption {
	return func(c *Clip) { c.rng = r }
}

// WithSeed seeds the clip's random source.
func WithSeed(seed int64) ClipOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithLogger routes diagnostics to l.
func WithLogger(l logrus.FieldLogger) ClipOption {
	return func(c *Clip) { c.log = l }
}

// New resolves opts and returns an unloaded clip.
func New(opts Options, clipOpts ...ClipOption) (*Clip, error) {
	cfg, err := Resolve(opts)
	if err != nil {
		return nil, err
	}
	c := &Clip{
		cfg:     cfg,
		buf:     NewBuffer(0, cfg.SampleRate),
		factory: HeapFactory{},
		log:     logrus.StandardLogger(),
	}
	for _, o := range clipOpts {
		o(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c, nil
}

// Name returns the clip name.
func (c *Clip) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Name
}

// Config returns a copy of the stored configuration.
func (c *Clip) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Clone()
}

// State returns the current load state.
func (c *Clip) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsLoaded reports whether the clip holds a generated buffer.
func (c *Clip) IsLoaded() bool {
	return c.State() == Loaded
}

// Load generates the clip's buffer from its configuration. On failure the
// previous buffer is discarded, the clip is left unloaded and the error is a
// *GenerationError. Load does not observe ctx once generation has started.
func (c *Clip) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = Unloaded
	c.buf = NewBuffer(0, c.cfg.SampleRate)
	if err := ctx.Err(); err != nil {
		return &GenerationError{Clip: c.cfg.Name, Err: err}
	}

	start := time.Now()
	buf, err := Generate(c.cfg, c.factory, c.rng)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"clip":  c.cfg.Name,
			"type":  c.cfg.Type,
			"error": err,
		}).Error("Clip generation failed")
		return &GenerationError{Clip: c.cfg.Name, Err: err}
	}
	c.buf = buf
	c.state = Loaded
	c.log.WithFields(logrus.Fields{
		"clip":    c.cfg.Name,
		"type":    c.cfg.Type,
		"frames":  buf.Len(),
		"elapsed": time.Since(start),
	}).Debug("Clip loaded")
	return nil
}

// LoadAsync runs Load on its own goroutine and delivers the result on the
// returned channel, which is closed afterwards.
func (c *Clip) LoadAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- c.Load(ctx)
	}()
	return done
}

// ApplyMeta merges update into the stored configuration and unloads the clip.
// A blank, non-empty name is rejected.
func (c *Clip) ApplyMeta(update Options) error {
	if update.Name != "" {
		if _, err := Resolve(Options{Name: update.Name}); err != nil {
			return err
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = update.Apply(c.cfg)
	c.state = Unloaded
	c.buf = NewBuffer(0, c.cfg.SampleRate)
	return nil
}

// Buffer returns the generated buffer, or ErrNotLoaded.
func (c *Clip) Buffer() (*Buffer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Loaded {
		return nil, ErrNotLoaded
	}
	return c.buf, nil
}

// GenerateRandom renders length frames of a random effect drawn from the
// clip's configuration. The stored configuration is left untouched.
func (c *Clip) GenerateRandom(length int) []float64 {
	if length < 0 {
		length = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]float64, length)
	RandomEffect(out, c.cfg, c.rng)
	return out
}
