// Package llist implements an index addressable, singly linked list of
// fixed size elements.
//
// Every node caches its 0-based position. The cache is kept exact by
// insertion and removal, so Size is the tail's index plus one and no
// separate counter exists. Elements are stored as *T handles, the list
// never copies them. Equality is byte equality over unsafe.Sizeof(T)
// bytes: padding and pointer fields take part in the comparison.
//
// A List is not safe for concurrent use.
package llist

import (
	"bytes"
	"iter"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/snwfog/llist.go/metrics"
)

// region List
type List[T any] struct {
	head *node[T]
	tail *node[T]

	elemsize  uintptr
	gen       atomic.Uint64
	destroyed atomic.Bool

	name     string
	mode     Mode
	release  func(*T)
	maxnodes int
	stats    *metrics.Metrics
	log      zerolog.Logger
}

// New returns an empty list of T. The element size is fixed to
// unsafe.Sizeof(T).
func New[T any](opts ...Option) *List[T] {
	o := defaultoptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := &List[T]{
		elemsize: unsafe.Sizeof(*new(T)),
		name:     o.name,
		mode:     o.mode,
		release:  zero[T],
		maxnodes: o.maxnodes,
		stats:    o.metrics,
		log:      o.logger.With().Str("list", o.name).Logger(),
	}

	return l
}

// SetRelease sets the hook an Owning list calls for each element it
// releases on Clear and Destroy. A nil fn restores the default hook,
// which zeroes the element.
func (l *List[T]) SetRelease(fn func(*T)) {
	if l == nil {
		return
	}

	if fn == nil {
		fn = zero[T]
	}

	l.release = fn
}

func zero[T any](e *T) {
	var z T
	*e = z
}

func (l *List[T]) valid() bool {
	return l != nil && !l.destroyed.Load()
}

// Destroy clears the list and invalidates it. Later calls see an absent
// list: Size returns -1 and every other operation fails. The metric series
// labelled with the list's name are dropped, lists sharing that name
// included.
func (l *List[T]) Destroy() {
	if !l.valid() {
		return
	}

	n := l.clear()
	l.destroyed.Store(true)
	l.gen.Inc()
	l.stats.Forget(l.name)
	l.log.Debug().Str("op", "destroy").Int("released", n).Msg("list destroyed")
}

// Size returns the number of elements, or -1 for a nil or destroyed list.
func (l *List[T]) Size() int {
	if !l.valid() {
		return -1
	}

	if l.tail == nil {
		return 0
	}

	return l.tail.index + 1
}

// ElemSize returns the size in bytes of one element.
func (l *List[T]) ElemSize() uintptr {
	if l == nil {
		return 0
	}

	return l.elemsize
}

// Generation is bumped by every structural change. Iterators created
// under another generation are stale.
func (l *List[T]) Generation() uint64 {
	if l == nil {
		return 0
	}

	return l.gen.Load()
}

// Insert links e so that it becomes the element at index, shifting the
// elements at index and after one position later. index may equal Size,
// which appends. The list owns e once Insert returns nil.
func (l *List[T]) Insert(index int, e *T) error {
	const op = "insert"
	if !l.valid() {
		return l.fail(op, errnillist)
	}

	if e == nil {
		return l.fail(op, errnilelement)
	}

	size := l.Size()
	if index < 0 || index > size {
		return l.fail(op, outofrange(op, index, 0, size))
	}

	if l.maxnodes > 0 && size >= l.maxnodes {
		return l.fail(op, errors.Wrapf(ErrAllocation, "%s: node budget of %d exhausted", op, l.maxnodes))
	}

	l.link(newnode(e, index))
	l.gen.Inc()
	l.stats.Op(l.name, op)
	l.stats.AddNodes(l.name, 1)
	return nil
}

func (l *List[T]) InsertFirst(e *T) error {
	return l.Insert(0, e)
}

func (l *List[T]) InsertLast(e *T) error {
	return l.Insert(l.Size(), e)
}

// Clear removes every element. An Owning list releases each removed
// element, a Borrowing list leaves them alone.
func (l *List[T]) Clear() {
	if !l.valid() {
		return
	}

	n := l.clear()
	l.stats.Op(l.name, "clear")
	l.log.Debug().Str("op", "clear").Int("released", n).Stringer("mode", l.mode).Msg("list cleared")
}

// clear detaches the chain, then releases it front to back, and returns
// the node count. The list is empty before any hook runs, so a panicking
// hook cannot leave it half cleared.
func (l *List[T]) clear() int {
	if l.head == nil {
		return 0
	}

	curr, n := l.head, l.tail.index+1
	l.head, l.tail = nil, nil
	l.gen.Inc()
	l.stats.AddNodes(l.name, -n)

	for curr != nil {
		next := curr.next
		e := curr.element
		curr.element, curr.next = nil, nil
		if l.mode == Owning {
			l.release(e)
		}

		curr = next
	}

	return n
}

// Contains reports whether some element is byte equal to e.
func (l *List[T]) Contains(e *T) bool {
	return l.IndexOf(e) >= 0
}

// IndexOf returns the index of the first element byte equal to e, or -1.
func (l *List[T]) IndexOf(e *T) int {
	if !l.valid() || e == nil {
		return -1
	}

	probe := bytesof(e, l.elemsize)
	for n := l.head; n != nil; n = n.next {
		if bytes.Equal(n.bytes(l.elemsize), probe) {
			return n.index
		}
	}

	return -1
}

// Get returns the element at index without removing it.
func (l *List[T]) Get(index int) (*T, error) {
	const op = "get"
	if !l.valid() {
		return nil, l.fail(op, errnillist)
	}

	if size := l.Size(); index < 0 || index >= size {
		return nil, l.fail(op, outofrange(op, index, 0, size-1))
	}

	l.stats.Op(l.name, op)
	return l.at(index).element, nil
}

func (l *List[T]) First() (*T, error) {
	return l.Get(0)
}

func (l *List[T]) Last() (*T, error) {
	return l.Get(l.Size() - 1)
}

// Remove unlinks the element at index and hands it back to the caller.
// Elements after it shift one position earlier.
func (l *List[T]) Remove(index int) (*T, error) {
	const op = "remove"
	if !l.valid() {
		return nil, l.fail(op, errnillist)
	}

	if size := l.Size(); index < 0 || index >= size {
		return nil, l.fail(op, outofrange(op, index, 0, size-1))
	}

	n := l.unlink(index)
	l.gen.Inc()
	l.stats.Op(l.name, op)
	l.stats.AddNodes(l.name, -1)

	e := n.element
	n.element = nil
	return e, nil
}

// Set stores e at index and returns the element it replaces. Linkage and
// indices are untouched, so iterators stay valid.
func (l *List[T]) Set(index int, e *T) (*T, error) {
	const op = "set"
	if !l.valid() {
		return nil, l.fail(op, errnillist)
	}

	if e == nil {
		return nil, l.fail(op, errnilelement)
	}

	if size := l.Size(); index < 0 || index >= size {
		return nil, l.fail(op, outofrange(op, index, 0, size-1))
	}

	n := l.at(index)
	former := n.element
	n.element = e
	l.stats.Op(l.name, op)
	return former, nil
}

// All yields index and element pairs front to back. It stops early if the
// list changes structure while ranging.
func (l *List[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		if !l.valid() {
			return
		}

		gen := l.gen.Load()
		for n := l.head; n != nil; n = n.next {
			if !yield(n.index, n.element) {
				return
			}

			if l.gen.Load() != gen {
				l.log.Warn().Str("op", "range").Uint64("gen", gen).Msg("list changed while ranging")
				return
			}
		}
	}
}

func (l *List[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, e := range l.All() {
			if !yield(e) {
				return
			}
		}
	}
}

// Equal reports whether o holds byte equal elements in the same order.
// Absent lists are equal only to each other.
func (l *List[T]) Equal(o *List[T]) bool {
	if !l.valid() || !o.valid() {
		return l.valid() == o.valid()
	}

	if l.Size() != o.Size() {
		return false
	}

	for a, b := l.head, o.head; a != nil; a, b = a.next, b.next {
		if !bytes.Equal(a.bytes(l.elemsize), b.bytes(o.elemsize)) {
			return false
		}
	}

	return true
}

func (l *List[T]) fail(op string, err error) error {
	if l != nil {
		l.stats.Failure(l.name, op, kindof(err))
	}

	return err
}

// endregion
