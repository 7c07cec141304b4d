package vector

import "iter"

// At returns a pointer to element i. i must be in [0, Len()).
func (v *Vector[T]) At(i int) *T {
	assertf(i >= 0 && i < v.size, "index %d out of range [0, %d)", i, v.size)
	return v.buf.Slot(i)
}

// Get returns a copy of element i.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Set destroys element i and stores value in its place.
func (v *Vector[T]) Set(i int, value T) {
	p := v.At(i)
	v.traits().destroy(p)
	*p = value
}

// Front returns a pointer to the first element. v must not be empty.
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns a pointer to the last element. v must not be empty.
func (v *Vector[T]) Back() *T {
	return v.At(v.size - 1)
}

// Data returns the live elements. The slice aliases v's storage and is
// invalidated by any operation that reallocates.
func (v *Vector[T]) Data() []T {
	return v.buf.Span(0, v.size)
}

// All yields the index and a pointer to each element, front to back.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.Slot(i)) {
				return
			}
		}
	}
}

// Values yields a copy of each element, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.buf.Slot(i)) {
				return
			}
		}
	}
}

// Backward yields the index and a pointer to each element, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf.Slot(i)) {
				return
			}
		}
	}
}
