package vector

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

// ErrNotCopyable is returned when an operation needs to duplicate elements
// of a type that implements NonCopyable.
var ErrNotCopyable = errors.New("vector: element type is not copyable")

// Element hooks. All of them are optional and are looked up on *T. A type
// that implements none of them is copied and moved by value, and moving it
// never fails.
//
// Every hook that builds a value writes into a slot that holds the zero
// value of T. When a building hook returns an error the slot is reset to
// the zero value and is not destroyed.
type (
	// Initializer value-initializes a freshly exposed slot.
	Initializer interface {
		Init() error
	}

	// Cloner duplicates the receiver into dst.
	Cloner[T any] interface {
		CloneTo(dst *T) error
	}

	// Assigner overwrites a live receiver with a duplicate of src. On
	// failure the receiver must still be destroyable.
	Assigner[T any] interface {
		AssignFrom(src *T) error
	}

	// Relocator moves the receiver's state into dst and cannot fail. The
	// receiver is left in a moved-from state that is still destroyed.
	Relocator[T any] interface {
		RelocateTo(dst *T)
	}

	// Mover moves the receiver's state into dst and may fail. Types that
	// implement Mover without Relocator are duplicated instead of moved
	// when a vector grows, unless they have no copy path.
	Mover[T any] interface {
		MoveTo(dst *T) error
	}

	// Destroyer releases what a live element holds. It is called on
	// moved-from elements too, so it must accept them.
	Destroyer interface {
		Destroy()
	}

	// NonCopyable marks element types that have no copy path. Types with a
	// Mover or a Destroyer but no Cloner have none either.
	NonCopyable interface {
		DisallowCopy()
	}
)

const (
	strategyRelocate  = "relocate"
	strategyDuplicate = "duplicate"
)

// lifecycle is the capability set of one element type.
type lifecycle[T any] struct {
	name string

	hasInit    bool
	hasClone   bool
	hasAssign  bool
	hasReloc   bool
	hasMove    bool
	hasDestroy bool
	copyable   bool

	// relocate selects moving over duplicating when live elements change
	// buffers.
	relocate bool
}

var lifecycles sync.Map // reflect.Type -> *lifecycle[T]

// traitsOf returns the cached capability set of T.
func traitsOf[T any]() *lifecycle[T] {
	key := reflect.TypeFor[T]()
	if lc, ok := lifecycles.Load(key); ok {
		return lc.(*lifecycle[T])
	}
	lc, _ := lifecycles.LoadOrStore(key, newLifecycle[T](key))
	return lc.(*lifecycle[T])
}

func newLifecycle[T any](typ reflect.Type) *lifecycle[T] {
	var p any = (*T)(nil)
	lc := &lifecycle[T]{name: typ.String()}
	_, lc.hasInit = p.(Initializer)
	_, lc.hasClone = p.(Cloner[T])
	_, lc.hasAssign = p.(Assigner[T])
	_, lc.hasReloc = p.(Relocator[T])
	_, lc.hasMove = p.(Mover[T])
	_, lc.hasDestroy = p.(Destroyer)
	_, nonCopyable := p.(NonCopyable)
	// A type that manages its own move or release has no value copy to
	// fall back on; only a Cloner gives it a copy path.
	lc.copyable = !nonCopyable && (lc.hasClone || (!lc.hasMove && !lc.hasDestroy))
	lc.relocate = lc.moveNeverFails() || !lc.copyable
	return lc
}

func (lc *lifecycle[T]) moveNeverFails() bool {
	return lc.hasReloc || !lc.hasMove
}

func (lc *lifecycle[T]) strategy() string {
	if lc.relocate {
		return strategyRelocate
	}
	return strategyDuplicate
}

// build runs ctor on the zero-valued slot p.
func build[T any](p *T, ctor func(*T) error) error {
	if err := ctor(p); err != nil {
		var zero T
		*p = zero
		return err
	}
	return nil
}

// construct value-initializes the zero-valued slot p.
func (lc *lifecycle[T]) construct(p *T) error {
	if !lc.hasInit {
		return nil
	}
	return build(p, func(p *T) error {
		return any(p).(Initializer).Init()
	})
}

// copyConstruct duplicates src into the zero-valued slot dst.
func (lc *lifecycle[T]) copyConstruct(dst, src *T) error {
	switch {
	case !lc.copyable:
		return errors.Wrap(ErrNotCopyable, lc.name)
	case lc.hasClone:
		return build(dst, any(src).(Cloner[T]).CloneTo)
	default:
		*dst = *src
		return nil
	}
}

// copyAssign overwrites the live element dst with a duplicate of src.
func (lc *lifecycle[T]) copyAssign(dst, src *T) error {
	switch {
	case !lc.copyable:
		return errors.Wrap(ErrNotCopyable, lc.name)
	case lc.hasAssign:
		return any(dst).(Assigner[T]).AssignFrom(src)
	default:
		lc.destroy(dst)
		return lc.copyConstruct(dst, src)
	}
}

// move moves src into the zero-valued slot dst. src stays live in a
// moved-from state.
func (lc *lifecycle[T]) move(dst, src *T) error {
	switch {
	case lc.hasReloc:
		any(src).(Relocator[T]).RelocateTo(dst)
		return nil
	case lc.hasMove:
		return build(dst, any(src).(Mover[T]).MoveTo)
	default:
		var zero T
		*dst, *src = *src, zero
		return nil
	}
}

// moveAssign moves src over the live element dst.
func (lc *lifecycle[T]) moveAssign(dst, src *T) error {
	lc.destroy(dst)
	return lc.move(dst, src)
}

// destroy ends the life of the element in p and leaves the zero value.
func (lc *lifecycle[T]) destroy(p *T) {
	if lc.hasDestroy {
		any(p).(Destroyer).Destroy()
	}
	var zero T
	*p = zero
}

func (lc *lifecycle[T]) destroyAll(s []T) {
	if lc.hasDestroy {
		for i := range s {
			any(&s[i]).(Destroyer).Destroy()
		}
	}
	clear(s)
}

// constructAll value-initializes every slot of s, or none of them.
func (lc *lifecycle[T]) constructAll(s []T) error {
	if !lc.hasInit {
		return nil
	}
	for i := range s {
		if err := lc.construct(&s[i]); err != nil {
			lc.destroyAll(s[:i])
			return err
		}
	}
	return nil
}

// duplicateAll copy-constructs src into the zero-valued dst, or nothing.
func (lc *lifecycle[T]) duplicateAll(dst, src []T) error {
	if lc.copyable && !lc.hasClone {
		copy(dst, src)
		return nil
	}
	for i := range src {
		if err := lc.copyConstruct(&dst[i], &src[i]); err != nil {
			lc.destroyAll(dst[:i])
			return err
		}
	}
	return nil
}

// transfer moves or duplicates src into the zero-valued dst according to
// the type's strategy. A failed transfer destroys whatever it built in dst.
// Duplication leaves src untouched; a failed relocation leaves the elements
// it already moved in their moved-from state.
func (lc *lifecycle[T]) transfer(dst, src []T) error {
	if !lc.relocate {
		return lc.duplicateAll(dst, src)
	}
	if !lc.hasReloc && !lc.hasMove {
		copy(dst, src)
		clear(src)
		return nil
	}
	for i := range src {
		if err := lc.move(&dst[i], &src[i]); err != nil {
			lc.destroyAll(dst[:i])
			return err
		}
	}
	return nil
}
