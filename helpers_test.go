package vector

import (
	"github.com/pkg/errors"
)

var (
	errFuse     = errors.New("fuse blown")
	errInitFail = errors.New("init failed")
)

// fuse counts down successful hook calls; the call after it reaches zero fails.
// A nil fuse never blows.
type fuse struct {
	left int
}

func (f *fuse) burn() error {
	if f == nil {
		return nil
	}
	if f.left == 0 {
		return errFuse
	}
	f.left--
	return nil
}

// fragile has a copy that can fail and a move that is not declared
// failure-free, so vectors duplicate it when they grow.
type fragile struct {
	val  int
	fuse *fuse
}

func (f *fragile) CloneTo(dst *fragile) error {
	if err := f.fuse.burn(); err != nil {
		return err
	}
	*dst = *f
	return nil
}

func (f *fragile) MoveTo(dst *fragile) error {
	*dst = *f
	*f = fragile{}
	return nil
}

// pipe cannot be copied and its move may fail, so vectors relocate it and
// only offer the basic guarantee.
type pipe struct {
	val  int
	fuse *fuse
}

func (*pipe) DisallowCopy() {}

func (p *pipe) MoveTo(dst *pipe) error {
	if err := p.fuse.burn(); err != nil {
		return err
	}
	*dst = *p
	*p = pipe{}
	return nil
}

// ledger records how many handles are open.
type ledger struct {
	opened int
	closed int
}

func (l *ledger) live() int {
	return l.opened - l.closed
}

// handle owns a ledger entry. Its move never fails.
type handle struct {
	id     int
	ledger *ledger
}

func newHandle(l *ledger, id int) handle {
	l.opened++
	return handle{id: id, ledger: l}
}

func (h *handle) RelocateTo(dst *handle) {
	*dst = *h
	h.ledger = nil
}

func (h *handle) CloneTo(dst *handle) error {
	*dst = newHandle(h.ledger, h.id)
	return nil
}

func (h *handle) Destroy() {
	if h.ledger != nil {
		h.ledger.closed++
	}
}

// lease owns a ledger entry like handle, but its move may fail and it has
// no copy hook, so vectors can only move it.
type lease struct {
	id     int
	ledger *ledger
	fuse   *fuse
}

func newLease(l *ledger, id int) lease {
	l.opened++
	return lease{id: id, ledger: l}
}

func (x *lease) MoveTo(dst *lease) error {
	if err := x.fuse.burn(); err != nil {
		return err
	}
	*dst = *x
	*x = lease{}
	return nil
}

func (x *lease) Destroy() {
	if x.ledger != nil {
		x.ledger.closed++
	}
}

// counted value-initializes itself to a fixed marker and can be told to fail.
type counted struct {
	val int
}

var countedInitFuse *fuse

func (c *counted) Init() error {
	if err := countedInitFuse.burn(); err != nil {
		return errInitFail
	}
	c.val = -1
	return nil
}

// assigned records whether the copy-assignment hook was used.
type assigned struct {
	val     int
	assigns *int
}

func (a *assigned) AssignFrom(src *assigned) error {
	counter := a.assigns
	*a = *src
	if counter != nil {
		*counter++
		a.assigns = counter
	}
	return nil
}

func ints(n int) *Vector[int] {
	v := New[int]()
	for i := 0; i < n; i++ {
		if err := v.PushBack(i); err != nil {
			panic(err)
		}
	}
	return v
}

func collect[T any](v *Vector[T]) []T {
	out := make([]T, 0, v.Len())
	for x := range v.Values() {
		out = append(out, x)
	}
	return out
}

func vals(v *Vector[fragile]) []int {
	out := make([]int, 0, v.Len())
	for _, f := range v.All() {
		out = append(out, f.val)
	}
	return out
}
