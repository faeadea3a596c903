// Command libkoseg builds the koseg C shared library:
//
//	go build -buildmode=c-shared -o libkoseg.so ./cmd/libkoseg
//
// The generated libkoseg.h declares the entry points below; include/koseg.h
// documents the record layout and the caller's obligations.
package main

/*
#cgo CFLAGS: -I${SRCDIR}/../../include
#include <stdlib.h>
#include "koseg.h"
*/
import "C"

import (
	"log/slog"
	"os"
	"unsafe"

	"github.com/hsiuhsiu/koseg-go/internal/boundary"
	"github.com/hsiuhsiu/koseg-go/pkg/koseg/logging"
)

// LogLevelEnv selects the level of the JSON log written to stderr.
const LogLevelEnv = "KOSEG_LOG_LEVEL"

var version *C.char

func init() {
	level := logging.ParseLevel(os.Getenv(LogLevelEnv), slog.LevelWarn)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	boundary.SetLogger(logging.New(logger))

	// Lives for the whole process; never freed.
	version = C.CString(boundary.Version())
}

// size_t is passed through as uintptr.
var _ [unsafe.Sizeof(C.size_t(0)) - unsafe.Sizeof(uintptr(0))]struct{}
var _ [unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(C.size_t(0))]struct{}

//export tokenize
func tokenize(input *C.char, length *C.size_t) (out *C.koseg_span_t) {
	defer func() {
		if recover() != nil {
			if length != nil {
				*length = 0
			}
			out = nil
		}
	}()
	return (*C.koseg_span_t)(boundary.Tokenize(unsafe.Pointer(input), (*uintptr)(unsafe.Pointer(length))))
}

//export free_tokens
func free_tokens(spans *C.koseg_span_t, length C.size_t) {
	defer func() { _ = recover() }()
	boundary.Free(unsafe.Pointer(spans), uintptr(length))
}

//export koseg_init
func koseg_init() (status C.int) {
	defer func() {
		if recover() != nil {
			status = 1
		}
	}()
	return C.int(boundary.Init())
}

//export koseg_version
func koseg_version() *C.char {
	defer func() { _ = recover() }()
	return version
}

func main() {}
