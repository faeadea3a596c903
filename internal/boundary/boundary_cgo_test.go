//go:build cgo

package boundary

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/koseg-go/internal/native"
	"github.com/hsiuhsiu/koseg-go/pkg/koseg"
	"github.com/hsiuhsiu/koseg-go/pkg/koseg/logging"
)

type engineFunc func(string) ([]koseg.Span, error)

func (f engineFunc) Tokenize(s string) ([]koseg.Span, error) { return f(s) }

func withSegmenter(t *testing.T, s *koseg.Segmenter, err error) {
	t.Helper()
	old := segmenter
	segmenter = func() (*koseg.Segmenter, error) { return s, err }
	t.Cleanup(func() { segmenter = old })
}

func withEngine(t *testing.T, f engineFunc) {
	t.Helper()
	withSegmenter(t, koseg.NewWithEngine(f, koseg.WithLogger(logging.Discard())), nil)
}

// call runs Tokenize on a C copy of in and returns the spans, releasing the
// result through Free.
func call(t *testing.T, in []byte) ([]koseg.Span, bool) {
	t.Helper()
	cin := native.CString(in)
	defer native.FreeString(cin)

	count := uintptr(99)
	p := Tokenize(cin, &count)
	if p == nil {
		require.Zero(t, count, "nil result must come with count 0")
		return nil, false
	}
	require.NotZero(t, count, "non-nil result must come with a count")
	defer Free(p, count)
	return native.ReadSpans(p, count), true
}

func TestTokenizeKoreanVerb(t *testing.T) {
	text := "결정하겠다"
	spans, ok := call(t, []byte(text))
	require.True(t, ok)
	require.Greater(t, len(spans), 1)

	assert.Equal(t, uint64(0), spans[0].Start)
	assert.Equal(t, uint64(len(text)), spans[len(spans)-1].End)
	for i := 1; i < len(spans); i++ {
		assert.Equal(t, spans[i-1].End, spans[i].Start)
	}
}

func TestTokenizeSpansWellFormed(t *testing.T) {
	inputs := []string{
		"나는 학교에 갑니다.",
		"한국어 형태소 분석기 테스트 문장입니다",
		"hello 세계 123",
	}
	for _, text := range inputs {
		spans, ok := call(t, []byte(text))
		require.True(t, ok, text)
		var prevEnd uint64
		for i, s := range spans {
			assert.LessOrEqual(t, s.Start, s.End, "%q span %d", text, i)
			assert.LessOrEqual(t, s.End, uint64(len(text)), "%q span %d", text, i)
			assert.GreaterOrEqual(t, s.Start, prevEnd, "%q span %d", text, i)
			prevEnd = s.End
		}
	}
}

func TestTokenizeASCIIFixture(t *testing.T) {
	// Recorded from the embedded ko dictionary in search mode.
	spans, ok := call(t, []byte("hello"))
	require.True(t, ok)
	assert.Equal(t, []koseg.Span{{Start: 0, End: 4}, {Start: 4, End: 5}}, spans)
}

func TestTokenizeEmpty(t *testing.T) {
	_, ok := call(t, nil)
	assert.False(t, ok)
}

func TestTokenizeInvalidUTF8(t *testing.T) {
	tests := map[string][]byte{
		"lone continuation": {0x80},
		"truncated hangul":  {0xea, 0xb2},
		"valid then bad":    append([]byte("결정"), 0xff),
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			withEngine(t, func(string) ([]koseg.Span, error) {
				t.Fatal("engine must not see invalid input")
				return nil, nil
			})
			_, ok := call(t, in)
			assert.False(t, ok)
		})
	}
}

func TestTokenizeEngineFailure(t *testing.T) {
	withEngine(t, func(string) ([]koseg.Span, error) {
		return nil, errors.New("malformed state")
	})
	_, ok := call(t, []byte("결정"))
	assert.False(t, ok)
}

func TestTokenizeEnginePanic(t *testing.T) {
	withEngine(t, func(string) ([]koseg.Span, error) {
		panic("boom")
	})
	_, ok := call(t, []byte("결정"))
	assert.False(t, ok)
}

func TestTokenizeNoTokens(t *testing.T) {
	withEngine(t, func(string) ([]koseg.Span, error) {
		return nil, nil
	})
	_, ok := call(t, []byte("..."))
	assert.False(t, ok)
}

func TestTokenizeSegmenterPanicRecovered(t *testing.T) {
	old := segmenter
	segmenter = func() (*koseg.Segmenter, error) { panic("unexpected") }
	t.Cleanup(func() { segmenter = old })

	_, ok := call(t, []byte("결정"))
	assert.False(t, ok)
}

func TestEngineInitFailureIsFatal(t *testing.T) {
	initErr := errors.New("dictionary missing")
	withSegmenter(t, nil, errors.Join(koseg.ErrEngineInit, initErr))

	var got error
	oldFatal := fatal
	fatal = func(err error) { got = err }
	t.Cleanup(func() { fatal = oldFatal })

	_, ok := call(t, []byte("결정"))
	assert.False(t, ok)
	require.Error(t, got, "fatal was not called")
	assert.ErrorIs(t, got, koseg.ErrEngineInit)

	got = nil
	assert.Equal(t, 1, Init())
	assert.ErrorIs(t, got, koseg.ErrEngineInit)
}

func TestInitDefault(t *testing.T) {
	assert.Equal(t, 0, Init())
}

func TestEmptyInputSkipsInit(t *testing.T) {
	withSegmenter(t, nil, koseg.ErrEngineInit)
	oldFatal := fatal
	fatal = func(error) { t.Fatal("init must not run for empty input") }
	t.Cleanup(func() { fatal = oldFatal })

	_, ok := call(t, []byte{})
	assert.False(t, ok)
}

func TestRepeatedTokenizeFree(t *testing.T) {
	cin := native.CString([]byte("결정하겠다"))
	defer native.FreeString(cin)

	for i := 0; i < 2000; i++ {
		var count uintptr
		p := Tokenize(cin, &count)
		if p == nil || count == 0 {
			t.Fatalf("cycle %d: empty result", i)
		}
		Free(p, count)
	}
}

func TestConcurrentTokenize(t *testing.T) {
	const numGoroutines = 16
	inputs := [][]byte{[]byte("결정하겠다"), []byte("학교에 갑니다"), []byte("hello")}

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			in := inputs[id%len(inputs)]
			cin := native.CString(in)
			defer native.FreeString(cin)
			for j := 0; j < 50; j++ {
				var count uintptr
				p := Tokenize(cin, &count)
				if p == nil {
					t.Errorf("goroutine %d: nil result", id)
					return
				}
				spans := native.ReadSpans(p, count)
				if spans[len(spans)-1].End > uint64(len(in)) {
					t.Errorf("goroutine %d: span past end", id)
				}
				Free(p, count)
			}
		}(i)
	}
	wg.Wait()
}

func TestInputNotRetained(t *testing.T) {
	var seen string
	withEngine(t, func(s string) ([]koseg.Span, error) {
		seen = s
		return []koseg.Span{{Start: 0, End: uint64(len(s))}}, nil
	})

	cin := native.CString([]byte("결정"))
	var count uintptr
	p := Tokenize(cin, &count)
	require.True(t, p != nil)
	defer Free(p, count)

	*(*byte)(cin) = 'X'
	native.FreeString(cin)
	assert.Equal(t, "결정", seen)
}
