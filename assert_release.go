//go:build !vectordebug

package vector

const debugChecks = false

// assertf is compiled out of release builds; out-of-range access is undefined.
func assertf(bool, string, ...any) {}
