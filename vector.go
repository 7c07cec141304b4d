package vector

// Vector is a growable array of T with value semantics. It owns one
// RawBuffer and the lifetimes of the elements in slots [0, Len()).
//
// The zero value is an empty vector ready to use. A Vector must not be
// copied; use Clone, Take, CopyFrom or MoveFrom. Not goroutine-safe.
type Vector[T any] struct {
	buf  RawBuffer[T]
	size int

	lc    *lifecycle[T]
	stats stats
}

// New returns an empty vector with no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized returns a vector of n value-initialized elements with capacity n.
// If an initializer fails, the elements built so far are destroyed and the
// error is returned.
func NewSized[T any](n int) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.buf.Allocate(n); err != nil {
		return nil, err
	}
	if err := v.traits().constructAll(v.buf.Span(0, n)); err != nil {
		v.buf.Deallocate()
		return nil, err
	}
	v.size = n
	return v, nil
}

// Clone returns an independent duplicate of v whose capacity equals v.Len().
// v is never modified.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{lc: v.lc}
	if err := out.buf.Allocate(v.size); err != nil {
		return nil, err
	}
	if err := v.traits().duplicateAll(out.buf.Span(0, v.size), v.Data()); err != nil {
		out.buf.Deallocate()
		return nil, err
	}
	out.size = v.size
	return out, nil
}

// Take returns a new vector that owns v's storage and elements. v is left
// empty with no storage. O(1).
func (v *Vector[T]) Take() *Vector[T] {
	out := &Vector[T]{lc: v.lc}
	out.Swap(v)
	return out
}

// Destroy destroys every element and releases the storage. The vector is
// empty and reusable afterwards.
func (v *Vector[T]) Destroy() {
	v.traits().destroyAll(v.Data())
	v.size = 0
	v.buf.Deallocate()
}

// Swap exchanges contents with other in O(1). Statistics travel with the
// storage.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.stats, other.stats = other.stats, v.stats
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of elements v can hold without reallocating.
func (v *Vector[T]) Cap() int {
	return v.buf.Cap()
}

func (v *Vector[T]) traits() *lifecycle[T] {
	if v.lc == nil {
		v.lc = traitsOf[T]()
	}
	return v.lc
}

// Reserve makes room for at least n elements. If n <= Cap() it does
// nothing; otherwise capacity becomes exactly n and all iterators are
// invalidated.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	var nb RawBuffer[T]
	if err := nb.Allocate(n); err != nil {
		return err
	}
	if err := v.transfer(nb.Span(0, v.size), v.Data()); err != nil {
		nb.Deallocate()
		return err
	}
	v.adopt(&nb)
	return nil
}

// Resize grows or shrinks v to n elements. New elements are
// value-initialized; removed ones are destroyed.
func (v *Vector[T]) Resize(n int) error {
	assertf(n >= 0, "resize to negative length %d", n)
	switch {
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		if err := v.traits().constructAll(v.buf.Span(v.size, n)); err != nil {
			return err
		}
		v.size = n
	case n < v.size:
		v.traits().destroyAll(v.buf.Span(n, v.size))
		v.size = n
	}
	return nil
}

// EmplaceBack appends an element built by ctor and returns a pointer to it.
// ctor receives a zero-valued slot. If ctor fails, v is unchanged.
func (v *Vector[T]) EmplaceBack(ctor func(*T) error) (*T, error) {
	if v.size < v.Cap() {
		p := v.buf.Slot(v.size)
		if err := build(p, ctor); err != nil {
			return nil, err
		}
		v.size++
		return p, nil
	}

	var nb RawBuffer[T]
	if err := nb.Allocate(nextCapacity(v.Cap())); err != nil {
		return nil, err
	}
	// Build the new element before touching the old ones so ctor may read them.
	p := nb.Slot(v.size)
	if err := build(p, ctor); err != nil {
		nb.Deallocate()
		return nil, err
	}
	if err := v.transfer(nb.Span(0, v.size), v.Data()); err != nil {
		v.traits().destroy(p)
		nb.Deallocate()
		return nil, err
	}
	v.adopt(&nb)
	v.size++
	return p, nil
}

// PushBack appends value.
func (v *Vector[T]) PushBack(value T) error {
	_, err := v.EmplaceBack(func(p *T) error {
		*p = value
		return nil
	})
	return err
}

// PushBackClone appends a duplicate of *src made through the element's copy
// path. src may point into v.
func (v *Vector[T]) PushBackClone(src *T) error {
	lc := v.traits()
	_, err := v.EmplaceBack(func(p *T) error {
		return lc.copyConstruct(p, src)
	})
	return err
}

// PopBack destroys the last element. v must not be empty.
func (v *Vector[T]) PopBack() {
	assertf(v.size > 0, "pop from empty vector")
	v.size--
	v.traits().destroy(v.buf.Slot(v.size))
}

// nextCapacity doubles c, starting from one.
func nextCapacity(c int) int {
	if c == 0 {
		return 1
	}
	return c * 2
}

// transfer carries src into the zero-valued dst, which lives in a buffer
// that is about to replace v's.
func (v *Vector[T]) transfer(dst, src []T) error {
	lc := v.traits()
	if err := lc.transfer(dst, src); err != nil {
		logTransferFailed(lc.name, lc.strategy(), len(src), err)
		return err
	}
	v.stats.recordTransfer(lc.strategy(), len(src))
	return nil
}

// adopt destroys the live elements of the current buffer, whose contents
// have been transferred, and replaces it with nb.
func (v *Vector[T]) adopt(nb *RawBuffer[T]) {
	lc := v.traits()
	lc.destroyAll(v.Data())
	from := v.Cap()
	v.buf.Swap(nb)
	nb.Deallocate()

	v.stats.reallocations++
	reallocationsTotal.Inc()
	logGrow(lc.name, lc.strategy(), from, v.Cap(), v.size)
}
