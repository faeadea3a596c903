//go:build !cgo

package native

import (
	"unsafe"

	"github.com/hsiuhsiu/koseg-go/pkg/koseg"
)

// This file contains stub implementations used when building without cgo.
// Nothing is ever allocated, so every pointer returned here is nil.

func CopyString(unsafe.Pointer) []byte { return nil }

func AllocSpans([]koseg.Span) (unsafe.Pointer, error) { return nil, koseg.ErrCGONotEnabled }

func FreeSpans(unsafe.Pointer) {}

func ReadSpans(unsafe.Pointer, uintptr) []koseg.Span { return nil }

func CString([]byte) unsafe.Pointer { return nil }

func FreeString(unsafe.Pointer) {}

func Enabled() bool { return false }
