//go:build cgo

package native

/*
#cgo CFLAGS: -I${SRCDIR}/../../include
#include <stdlib.h>
#include <string.h>
#include "koseg.h"
*/
import "C"

import (
	"bytes"
	"math"
	"unsafe"

	"github.com/hsiuhsiu/koseg-go/pkg/koseg"
)

// The Go constant must agree with the C layout.
var _ [SpanSize - unsafe.Sizeof(C.koseg_span_t{})]struct{}
var _ [unsafe.Sizeof(C.koseg_span_t{}) - SpanSize]struct{}

// CopyString copies the NUL-terminated string at p into Go memory. p must not
// be nil.
func CopyString(p unsafe.Pointer) []byte {
	n := C.strlen((*C.char)(p))
	if n == 0 {
		return []byte{}
	}
	return bytes.Clone(unsafe.Slice((*byte)(p), uint64(n)))
}

// AllocSpans copies spans into a new C.malloc'd koseg_span_t array. An empty
// slice yields a nil pointer and no allocation. The caller owns the result and
// must release it with FreeSpans.
func AllocSpans(spans []koseg.Span) (unsafe.Pointer, error) {
	if len(spans) == 0 {
		return nil, nil
	}
	if len(spans) > math.MaxInt/SpanSize {
		return nil, ErrAlloc
	}
	p := C.malloc(C.size_t(len(spans)) * C.size_t(SpanSize))
	if p == nil {
		return nil, ErrAlloc
	}
	dst := unsafe.Slice((*C.koseg_span_t)(p), len(spans))
	for i, s := range spans {
		dst[i].start = C.uint64_t(s.Start)
		dst[i].end = C.uint64_t(s.End)
	}
	return p, nil
}

// FreeSpans releases an array returned by AllocSpans. A nil pointer is a no-op.
func FreeSpans(p unsafe.Pointer) {
	if p == nil {
		return
	}
	C.free(p)
}

// ReadSpans copies n records from a span array into Go memory.
func ReadSpans(p unsafe.Pointer, n uintptr) []koseg.Span {
	if p == nil || n == 0 {
		return nil
	}
	src := unsafe.Slice((*C.koseg_span_t)(p), n)
	out := make([]koseg.Span, n)
	for i := range src {
		out[i] = koseg.Span{Start: uint64(src[i].start), End: uint64(src[i].end)}
	}
	return out
}

// CString returns a C.malloc'd NUL-terminated copy of b. Bytes after an
// embedded NUL are unreachable from C. Release with FreeString.
func CString(b []byte) unsafe.Pointer {
	buf := make([]byte, len(b)+1)
	copy(buf, b)
	return C.CBytes(buf)
}

// FreeString releases memory returned by CString.
func FreeString(p unsafe.Pointer) {
	if p != nil {
		C.free(p)
	}
}

// Enabled reports whether the cgo layer is compiled in.
func Enabled() bool { return true }
