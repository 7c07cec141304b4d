// Package vector implements a generic growable array with explicit control
// over storage and element lifetimes.
//
// # Overview
//
// A Vector owns a RawBuffer, a block of slots sized for a number of
// elements, and tracks how many of those slots hold live elements. Storage
// is reserved independently of element construction, so a vector can grow
// without touching the values it already holds until the new buffer is
// ready. This is useful when:
//
//   - Elements own resources that must be released exactly once
//   - Copying or moving an element can fail
//   - A failed append must leave the array exactly as it was
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Destroy()      // Destroy elements, release storage
//
//	_ = v.PushBack(1)
//	_, _ = v.Insert(0, 0)
//	_, _ = v.Erase(1)
//
//	for i, p := range v.All() {
//		*p = i * 2
//	}
//
// # Element Hooks
//
// Element types opt into custom behaviour by implementing hooks on their
// pointer type: Initializer, Cloner, Assigner, Relocator, Mover, Destroyer
// and NonCopyable. Without hooks an element is copied by value and moving
// it never fails.
//
// # Growth
//
// Appending to a full vector doubles its capacity (0, 1, 2, 4, 8, ...). The
// live elements are carried into the new buffer by moving them when the
// element type's move cannot fail or when the type cannot be copied, and by
// copying them otherwise. Copying keeps the old buffer intact until every
// copy has succeeded, so growth either completes or has no visible effect.
//
// # Failure Guarantees
//
//   - Take, MoveFrom, Swap, PopBack: never fail
//   - NewSized, Clone, Reserve, Resize, PushBack, EmplaceBack: no effect on
//     failure, unless the element type has a fallible move and no copy path
//   - Insert, Emplace, Erase, CopyFrom reusing storage: the vector stays
//     valid and destroyable, but elements may have changed
//
// Errors returned by element hooks are passed through unchanged. Failure
// to obtain storage is reported as an error matching ErrAllocation before
// anything is modified.
//
// # Preconditions
//
// Out-of-range indexes and positions, and PopBack on an empty vector, are
// not checked in release builds. Build with -tags vectordebug to turn them
// into panics.
//
// # Metrics and Monitoring
//
// Each vector keeps counters of its reallocations and transfers:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Relocated: %d\n", m.Relocated)
//
// Process-wide Prometheus collectors are exposed with Register, and
// reallocations are logged at debug level to the logger set with
// ReplaceLogger.
package vector
