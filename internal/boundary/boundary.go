// Package boundary implements the calls exported to C by cmd/libkoseg. It works
// on raw pointers but never imports "C"; all C memory goes through
// internal/native.
//
// No Go panic or error crosses this package's API. Every failure becomes a
// zero count and a nil result, except an engine initialization failure, which
// terminates the process.
package boundary

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
	"unsafe"

	"github.com/hsiuhsiu/koseg-go/internal/native"
	"github.com/hsiuhsiu/koseg-go/pkg/koseg"
	"github.com/hsiuhsiu/koseg-go/pkg/koseg/logging"
)

// ExitEngineInit is the process exit status used when the segmentation engine
// cannot be initialized (EX_SOFTWARE).
const ExitEngineInit = 70

var (
	segmenter = koseg.Default
	logger    = logging.New(nil).With("component", "boundary")
	fatal     = func(error) { os.Exit(ExitEngineInit) }
)

// SetLogger replaces the boundary logger. It is meant to be called once from
// package initialization, before any exported call runs.
func SetLogger(l logging.Logger) {
	if l != nil {
		logger = l.With("component", "boundary")
	}
}

// Tokenize segments the NUL-terminated UTF-8 string at input and returns a
// C.malloc'd koseg_span_t array, writing its length to *count.
//
// On any failure, and when there are no spans, *count is 0 and the result is
// nil. A nil count pointer also yields nil, since the caller could not learn
// the length of a result. The input is copied before use and not retained.
func Tokenize(input unsafe.Pointer, count *uintptr) (out unsafe.Pointer) {
	ctx := context.Background()
	if count == nil {
		logger.Warn(ctx, "rejected call", "reason", "null count pointer")
		return nil
	}
	*count = 0

	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "recovered panic", "panic", fmt.Sprint(r))
			*count = 0
			out = nil
		}
	}()

	spans, err := segment(ctx, input)
	if err != nil {
		reject(ctx, err)
		return nil
	}
	if len(spans) == 0 {
		return nil
	}

	p, err := native.AllocSpans(spans)
	if err != nil {
		reject(ctx, err)
		return nil
	}
	*count = uintptr(len(spans))
	logger.Debug(ctx, "tokenized", "spans", len(spans))
	return p
}

func segment(ctx context.Context, input unsafe.Pointer) ([]koseg.Span, error) {
	if input == nil {
		return nil, koseg.ErrNullInput
	}
	if !native.Enabled() {
		return nil, koseg.ErrCGONotEnabled
	}

	text := native.CopyString(input)
	if !utf8.Valid(text) {
		return nil, koseg.ErrInvalidUTF8
	}
	if len(text) == 0 {
		return nil, nil
	}

	seg, err := handle(ctx)
	if err != nil {
		return nil, err
	}
	return seg.Segment(string(text))
}

// handle returns the process segmenter. An initialization failure is logged
// and handed to fatal, which does not return outside of tests.
func handle(ctx context.Context) (*koseg.Segmenter, error) {
	seg, err := segmenter()
	if err != nil {
		logger.Error(ctx, "segmentation engine unavailable", "error", err)
		fatal(err)
		return nil, err
	}
	return seg, nil
}

func reject(ctx context.Context, err error) {
	switch {
	case errors.Is(err, koseg.ErrNullInput),
		errors.Is(err, koseg.ErrInvalidUTF8):
		logger.Warn(ctx, "rejected input", "error", err)
	case errors.Is(err, koseg.ErrEngineInit):
		// already reported by handle
	default:
		logger.Error(ctx, "tokenize failed", "error", err)
	}
}

// Free releases an array returned by Tokenize. count is the length Tokenize
// reported; it is only used for diagnostics. nil is a no-op. Freeing the same
// array twice is a caller error that cannot be detected here.
func Free(p unsafe.Pointer, count uintptr) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(context.Background(), "recovered panic in free", "panic", fmt.Sprint(r))
		}
	}()
	if p == nil {
		return
	}
	native.FreeSpans(p)
	logger.Debug(context.Background(), "freed spans", "spans", count)
}

// Init builds the process segmenter ahead of the first Tokenize call. It
// returns 0 on success; on failure it terminates the process like Tokenize
// would, and returns 1 only when termination has been overridden.
func Init() int {
	if _, err := handle(context.Background()); err != nil {
		return 1
	}
	return 0
}

// Version describes the wrapper and the linked engine.
func Version() string {
	return fmt.Sprintf("koseg %s (kagome %s)", koseg.WrapperVersion(), koseg.EngineVersion())
}
