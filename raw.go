package vector

import (
	"unsafe"

	"github.com/pkg/errors"
)

// maxAllocBytes is the largest single buffer RawBuffer will request:
// 128 TiB on 64-bit targets, 2 GiB on 32-bit ones.
const maxAllocBytes = uint64(1) << (31 + 16*(^uint(0)>>63))

// ErrAllocation is returned when storage for a buffer cannot be obtained.
var ErrAllocation = errors.New("vector: allocation failed")

// noCopy may be embedded into structs which must not be copied after first
// use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RawBuffer owns storage for exactly Cap() slots of T. It does not know
// which of those slots hold live elements; that is the owner's job.
//
// Slots that are not live always hold the zero value of T. A RawBuffer must
// not be copied; ownership moves with Swap or MoveTo.
type RawBuffer[T any] struct {
	noCopy noCopy

	slots []T
}

// elemSize returns the size in bytes of a single slot.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Allocate reserves storage for exactly n slots. Allocating zero slots
// leaves the buffer empty. The buffer must be empty before the call.
// On failure the buffer is left unchanged and the returned error matches
// ErrAllocation.
//
// Only requests above the size limit or with a negative count are reported
// as errors. A request under the limit that the runtime cannot satisfy
// aborts the process, like any other Go allocation.
func (b *RawBuffer[T]) Allocate(n int) error {
	assertf(b.slots == nil, "allocate into a buffer that still owns %d slots", len(b.slots))
	if n < 0 {
		return errors.Wrapf(ErrAllocation, "negative slot count %d", n)
	}
	if n == 0 {
		return nil
	}
	size := uint64(elemSize[T]())
	if size != 0 && uint64(n) > maxAllocBytes/size {
		return errors.Wrapf(ErrAllocation, "%d slots of %d bytes exceed the %d byte limit", n, size, maxAllocBytes)
	}
	b.slots = make([]T, n)
	recordAllocation(uint64(n) * size)
	return nil
}

// Deallocate releases the storage. It never runs element hooks; the owner
// must have destroyed every live element first. Safe on an empty buffer.
func (b *RawBuffer[T]) Deallocate() {
	if b.slots == nil {
		return
	}
	recordDeallocation(uint64(len(b.slots)) * uint64(elemSize[T]()))
	b.slots = nil
}

// Swap exchanges storage with other in O(1).
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// MoveTo transfers ownership of the storage to dst, releasing whatever dst
// held before. b is empty afterwards.
func (b *RawBuffer[T]) MoveTo(dst *RawBuffer[T]) {
	if b == dst {
		return
	}
	dst.Deallocate()
	dst.Swap(b)
}

// Cap returns the number of slots reserved.
func (b *RawBuffer[T]) Cap() int {
	return len(b.slots)
}

// Empty reports whether the buffer owns no storage.
func (b *RawBuffer[T]) Empty() bool {
	return b.slots == nil
}

// Slot returns a pointer to slot i. Valid indexes are [0, Cap()).
func (b *RawBuffer[T]) Slot(i int) *T {
	assertf(i >= 0 && i < len(b.slots), "slot %d out of range [0, %d)", i, len(b.slots))
	return &b.slots[i]
}

// Span returns slots [from, to). Offsets may range over [0, Cap()], so
// to == Cap() addresses the end of the buffer.
func (b *RawBuffer[T]) Span(from, to int) []T {
	assertf(0 <= from && from <= to && to <= len(b.slots), "span [%d, %d) out of range [0, %d]", from, to, len(b.slots))
	return b.slots[from:to:to]
}
