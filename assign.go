package vector

// CopyFrom makes v an element-wise duplicate of src. Copying a vector onto
// itself does nothing.
//
// When v lacks the capacity for src, a full duplicate is built first and
// swapped in, so a failure leaves v unchanged. Otherwise v's storage is
// reused: live elements are copy-assigned, the surplus is destroyed and the
// missing ones are copy-constructed. A failure on that path leaves v valid
// with Len() covering the elements that are live.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if v.Cap() < src.size {
		dup, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(dup)
		dup.Destroy()
		return nil
	}

	lc := v.traits()
	from := src.Data()
	dst := v.buf.Span(0, len(from))
	if v.size > len(from) {
		for i := range from {
			if err := lc.copyAssign(&dst[i], &from[i]); err != nil {
				return err
			}
		}
		lc.destroyAll(v.buf.Span(len(from), v.size))
		v.size = len(from)
		return nil
	}

	for i := 0; i < v.size; i++ {
		if err := lc.copyAssign(&dst[i], &from[i]); err != nil {
			return err
		}
	}
	for i := v.size; i < len(from); i++ {
		if err := lc.copyConstruct(&dst[i], &from[i]); err != nil {
			return err
		}
		v.size = i + 1
	}
	return nil
}

// MoveFrom exchanges contents with src; src ends up holding what v held
// before. Never fails.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Swap(src)
}
