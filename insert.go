package vector

// Emplace inserts an element built by ctor at pos and returns pos. Elements
// previously at pos and after it move one slot later. pos must be in
// [0, Len()]; pos == Len() behaves like EmplaceBack.
//
// ctor may read elements of v. If an error escapes after the shift or the
// transfer into a new buffer has started, v stays valid but elements may
// have been moved from.
func (v *Vector[T]) Emplace(pos int, ctor func(*T) error) (int, error) {
	assertf(pos >= 0 && pos <= v.size, "insert position %d out of range [0, %d]", pos, v.size)
	if pos == v.size {
		_, err := v.EmplaceBack(ctor)
		return pos, err
	}
	if v.size < v.Cap() {
		return pos, v.emplaceShift(pos, ctor)
	}
	return pos, v.emplaceRealloc(pos, ctor)
}

// Insert inserts value at pos and returns pos. See Emplace.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	return v.Emplace(pos, func(p *T) error {
		*p = value
		return nil
	})
}

// emplaceShift inserts within the current capacity.
func (v *Vector[T]) emplaceShift(pos int, ctor func(*T) error) error {
	lc := v.traits()

	// The new value is built aside first: ctor may alias the slots we shift.
	var tmp T
	if err := build(&tmp, ctor); err != nil {
		return err
	}
	defer lc.destroy(&tmp)

	s := v.buf.Span(0, v.size+1)
	if err := lc.move(&s[v.size], &s[v.size-1]); err != nil {
		return err
	}
	v.size++
	for i := v.size - 2; i > pos; i-- {
		if err := lc.moveAssign(&s[i], &s[i-1]); err != nil {
			return err
		}
	}
	return lc.moveAssign(&s[pos], &tmp)
}

// emplaceRealloc inserts into a buffer of twice the capacity. The prefix
// and the suffix are transferred separately around the new element; a
// failing phase unwinds what was built in the new buffer and the error is
// returned.
func (v *Vector[T]) emplaceRealloc(pos int, ctor func(*T) error) error {
	lc := v.traits()

	var nb RawBuffer[T]
	if err := nb.Allocate(nextCapacity(v.Cap())); err != nil {
		return err
	}
	p := nb.Slot(pos)
	if err := build(p, ctor); err != nil {
		nb.Deallocate()
		return err
	}
	if err := v.transfer(nb.Span(0, pos), v.buf.Span(0, pos)); err != nil {
		lc.destroy(p)
		nb.Deallocate()
		return err
	}
	if err := v.transfer(nb.Span(pos+1, v.size+1), v.buf.Span(pos, v.size)); err != nil {
		lc.destroyAll(nb.Span(0, pos+1))
		nb.Deallocate()
		return err
	}
	v.adopt(&nb)
	v.size++
	return nil
}

// Erase removes the element at pos and returns pos, now the index of the
// element that followed it. pos must be in [0, Len()). A failing move
// leaves v valid with its length unchanged.
func (v *Vector[T]) Erase(pos int) (int, error) {
	assertf(pos >= 0 && pos < v.size, "erase position %d out of range [0, %d)", pos, v.size)
	lc := v.traits()
	s := v.Data()
	for i := pos; i+1 < len(s); i++ {
		if err := lc.moveAssign(&s[i], &s[i+1]); err != nil {
			return pos, err
		}
	}
	v.PopBack()
	return pos, nil
}
