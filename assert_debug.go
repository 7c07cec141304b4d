//go:build vectordebug

package vector

import "fmt"

// debugChecks reports whether precondition checks are compiled in.
const debugChecks = true

// assertf panics with a vector-prefixed message when cond is false.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("vector: "+format, args...))
	}
}
