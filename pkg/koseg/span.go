package koseg

import "fmt"

// Span is a half-open byte range [Start, End) into the segmented text.
type Span struct {
	Start uint64
	End   uint64
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint64 { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// checkSpans verifies that spans are ordered, non-overlapping and lie within
// a text of n bytes.
func checkSpans(spans []Span, n int) error {
	var prevEnd uint64
	for i, s := range spans {
		if s.Start > s.End {
			return fmt.Errorf("%w: span %d %v is inverted", ErrTokenize, i, s)
		}
		if s.End > uint64(n) {
			return fmt.Errorf("%w: span %d %v exceeds input length %d", ErrTokenize, i, s, n)
		}
		if s.Start < prevEnd {
			return fmt.Errorf("%w: span %d %v overlaps previous end %d", ErrTokenize, i, s, prevEnd)
		}
		prevEnd = s.End
	}
	return nil
}

// Surfaces returns the substring of text covered by each span. Spans must come
// from segmenting the same text.
func Surfaces(text string, spans []Span) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = text[s.Start:s.End]
	}
	return out
}
