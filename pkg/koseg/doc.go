// Package koseg segments Korean text into morphemes and reports each one as a
// half-open byte range into the input.
//
// The morphological analysis itself is done by kagome with the mecab-ko-dic
// dictionary. This package owns configuration, the process-wide handle, and the
// checks that make its output safe to hand across a C boundary.
//
// # Quick Start
//
//	seg, err := koseg.Default()
//	if err != nil {
//	    return err // wraps koseg.ErrEngineInit
//	}
//	spans, err := seg.Segment("결정하겠다")
//	if err != nil {
//	    return err
//	}
//	for i, s := range koseg.Surfaces("결정하겠다", spans) {
//	    fmt.Println(spans[i].Start, spans[i].End, s)
//	}
//
// # Handles
//
// Default returns the process-wide Segmenter. It is built on first use from
// the TOML file named by KOSEG_CONFIG (defaults when unset) and never changes
// afterwards; an initialization failure is cached and returned to every caller.
// New builds an independent Segmenter from an explicit Config.
//
// # Span Guarantees
//
// Every slice returned by Segment is ordered by Start, non-overlapping, and
// within the byte length of the input. Engine output that breaks these rules
// is reported as ErrTokenize rather than passed on.
//
// # Concurrency
//
// A Segmenter is safe for concurrent use. Calls into the engine are serialized
// unless Config.Concurrent is set.
package koseg
