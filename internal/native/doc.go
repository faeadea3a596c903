// Package native owns all C memory handed across the koseg boundary.
//
// # Design Principles
//
// 1. Isolation: besides cmd/libkoseg, this is the only package that imports
//    "C". Everything above it works with Go types and unsafe.Pointer.
//
// 2. One allocator: span arrays are created with C.malloc and released with
//    C.free, both from this package, so the pair can never be mismatched.
//
// 3. No retention: input strings are copied into Go memory before use; no
//    pointer into caller memory outlives the call that received it.
//
// # Memory Layout
//
// A span array is a contiguous block of koseg_span_t records (see
// include/koseg.h): two uint64_t fields, 16 bytes per record, no padding.
//
// Builds without cgo compile a stub that reports koseg.ErrCGONotEnabled.
package native
