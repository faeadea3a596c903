package native

import "errors"

// SpanSize is the size in bytes of one koseg_span_t record.
const SpanSize = 16

// ErrAlloc reports that C.malloc could not provide a span array.
var ErrAlloc = errors.New("koseg/internal/native: allocation failed")
