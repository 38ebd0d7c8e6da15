package llist

import (
	"github.com/pkg/errors"
)

// region Iterator
// Iterator is a forward, single pass cursor over a List. It is valid until
// the list next changes structure (Insert, Remove, Clear, Destroy), after
// which HasNext reports false and Next fails with ErrStaleIterator. Set
// does not invalidate it.
// WARN: NOT CONCURRENT SAFE!!
type Iterator[T any] struct {
	curr *node[T]
	list *List[T]
	gen  uint64
}

// Iterator returns a cursor positioned on the element at start.
func (l *List[T]) Iterator(start int) (*Iterator[T], error) {
	const op = "iterator"
	if !l.valid() {
		return nil, l.fail(op, errnillist)
	}

	if size := l.Size(); start < 0 || start >= size {
		return nil, l.fail(op, outofrange(op, start, 0, size-1))
	}

	l.stats.Op(l.name, op)
	return &Iterator[T]{
		curr: l.at(start),
		list: l,
		gen:  l.gen.Load(),
	}, nil
}

func (it *Iterator[T]) stale() bool {
	if it.list.gen.Load() == it.gen {
		return false
	}

	it.list.log.Warn().
		Str("op", "iterator").
		Uint64("bound_gen", it.gen).
		Uint64("gen", it.list.gen.Load()).
		Msg("stale iterator")
	return true
}

// HasNext reports whether Next would return an element.
func (it *Iterator[T]) HasNext() bool {
	if it == nil || it.list == nil || it.stale() {
		return false
	}

	return it.curr != nil
}

// Next returns the element under the cursor and advances it.
func (it *Iterator[T]) Next() (*T, error) {
	const op = "next"
	if it == nil || it.list == nil {
		return nil, errnilitr
	}

	if it.stale() {
		return nil, it.list.fail(op, errors.Wrapf(ErrStaleIterator, "%s: bound to generation %d, list at %d",
			op, it.gen, it.list.gen.Load()))
	}

	if it.curr == nil {
		return nil, it.list.fail(op, ErrExhausted)
	}

	n := it.curr
	it.curr = n.next
	return n.element, nil
}

// Close releases the cursor. The list and its elements are untouched.
func (it *Iterator[T]) Close() {
	if it == nil {
		return
	}

	it.curr = nil
	it.list = nil
}

// endregion
