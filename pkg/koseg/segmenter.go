package koseg

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/hsiuhsiu/koseg-go/pkg/koseg/logging"
)

// Segmenter is an immutable, configured segmentation handle.
type Segmenter struct {
	engine Engine
	mu     *sync.Mutex // nil when the engine may run concurrently
	logger logging.Logger
}

// Option customizes a Segmenter at construction.
type Option func(*Segmenter)

// WithLogger routes the Segmenter's diagnostics to l.
func WithLogger(l logging.Logger) Option {
	return func(s *Segmenter) {
		if l != nil {
			s.logger = l
		}
	}
}

// New configures the kagome engine from cfg. Every failure wraps
// ErrEngineInit.
func New(cfg Config, opts ...Option) (*Segmenter, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEngineInit, err)
	}
	e, err := newKagomeEngine(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEngineInit, err)
	}
	s := NewWithEngine(e, opts...)
	if cfg.Concurrent {
		s.mu = nil
	}
	s.logger.Debug(context.Background(), "segmenter ready",
		"dictionary", cfg.Dictionary, "dict_path", cfg.DictPath, "mode", string(cfg.Mode))
	return s, nil
}

// NewWithEngine wraps an arbitrary Engine. Calls into it are serialized.
func NewWithEngine(e Engine, opts ...Option) *Segmenter {
	s := &Segmenter{
		engine: e,
		mu:     &sync.Mutex{},
		logger: logging.New(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Segment splits text into spans. Text must be valid UTF-8. An engine failure,
// including a panic, or engine output that does not fit text yields an error
// wrapping ErrTokenize and no spans.
func (s *Segmenter) Segment(text string) ([]Span, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	if text == "" {
		return nil, nil
	}

	spans, err := s.run(text)
	if err != nil {
		s.logger.Warn(context.Background(), "engine failed", logging.Text("input", text), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrTokenize, err)
	}
	if err := checkSpans(spans, len(text)); err != nil {
		s.logger.Error(context.Background(), "engine returned bad spans", logging.Text("input", text), "error", err)
		return nil, err
	}
	return spans, nil
}

func (s *Segmenter) run(text string) (spans []Span, err error) {
	if s.mu != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	defer func() {
		if r := recover(); r != nil {
			spans, err = nil, fmt.Errorf("engine panic: %v", r)
		}
	}()
	return s.engine.Tokenize(text)
}

var defaultSegmenter = sync.OnceValues(func() (*Segmenter, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEngineInit, err)
	}
	return New(cfg)
})

// Default returns the process-wide Segmenter, building it on the first call.
// The outcome of that first call, success or failure, is returned forever.
func Default() (*Segmenter, error) {
	return defaultSegmenter()
}
