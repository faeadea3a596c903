package koseg

import (
	"fmt"
	"strings"

	ko "github.com/ikawaha/kagome-dict-ko"
	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Engine is the morphological analyzer behind a Segmenter. Tokenize returns
// the spans of text in emission order.
type Engine interface {
	Tokenize(text string) ([]Span, error)
}

type kagomeEngine struct {
	t         *tokenizer.Tokenizer
	mode      tokenizer.TokenizeMode
	keepSpace bool
}

func newKagomeEngine(cfg Config) (e *kagomeEngine, err error) {
	// The embedded dictionary loader panics on a corrupt archive.
	defer func() {
		if r := recover(); r != nil {
			e, err = nil, fmt.Errorf("load dictionary: %v", r)
		}
	}()

	d, err := loadDict(cfg)
	if err != nil {
		return nil, err
	}
	t, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("new tokenizer: %w", err)
	}
	return &kagomeEngine{
		t:         t,
		mode:      kagomeMode(cfg.Mode),
		keepSpace: cfg.KeepSpace,
	}, nil
}

func loadDict(cfg Config) (*dict.Dict, error) {
	if cfg.DictPath != "" {
		d, err := dict.LoadDictFile(cfg.DictPath)
		if err != nil {
			return nil, fmt.Errorf("load dictionary %s: %w", cfg.DictPath, err)
		}
		return d, nil
	}
	if cfg.Dictionary != DictionaryKo {
		return nil, fmt.Errorf("unknown dictionary %q", cfg.Dictionary)
	}
	return ko.Dict(), nil
}

func kagomeMode(m Mode) tokenizer.TokenizeMode {
	switch m {
	case ModeNormal:
		return tokenizer.Normal
	case ModeExtended:
		return tokenizer.Extended
	default:
		return tokenizer.Search
	}
}

func (e *kagomeEngine) Tokenize(text string) ([]Span, error) {
	tokens := e.t.Analyze(text, e.mode)
	spans := make([]Span, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		if !e.keepSpace && strings.TrimSpace(tok.Surface) == "" {
			continue
		}
		if tok.Position < 0 {
			return nil, fmt.Errorf("token %q has negative position %d", tok.Surface, tok.Position)
		}
		start := uint64(tok.Position)
		spans = append(spans, Span{Start: start, End: start + uint64(len(tok.Surface))})
	}
	return spans, nil
}
