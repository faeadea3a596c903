// Package internalcheck holds repository-wide static checks, run as tests.
//
// The checks load the module's packages with golang.org/x/tools/go/packages
// and enforce rules that keep the C boundary safe:
//
//   - only internal/native and cmd/libkoseg import "C"
//   - every //export function starts with a deferred recover guard
//
// It is not intended for external use.
package internalcheck
