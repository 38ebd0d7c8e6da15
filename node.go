package llist

import (
	"fmt"
)

// region Node
type node[T any] struct {
	element *T
	index   int
	next    *node[T]
}

func newnode[T any](e *T, index int) *node[T] {
	return &node[T]{
		element: e,
		index:   index,
	}
}

func (n *node[T]) bytes(size uintptr) []byte {
	return bytesof(n.element, size)
}

// endregion

// region Chain
// at walks from head to the node caching index. Callers bound check first,
// a miss means the index chain is broken.
func (l *List[T]) at(index int) *node[T] {
	if index == l.tail.index {
		return l.tail
	}

	for n := l.head; n != nil; n = n.next {
		if n.index == index {
			return n
		}
	}

	panic(fmt.Sprintf("llist: no node at index %d of %d", index, l.Size()))
}

// before returns the node preceding the one at index, index > 0.
func (l *List[T]) before(index int) *node[T] {
	for n := l.head; n.next != nil; n = n.next {
		if n.next.index == index {
			return n
		}
	}

	panic(fmt.Sprintf("llist: no node at index %d of %d", index, l.Size()))
}

// reindex shifts the cached index of from and every node after it by delta.
func reindex[T any](from *node[T], delta int) {
	for n := from; n != nil; n = n.next {
		n.index += delta
	}
}

// link splices n into the chain so it occupies n.index. The caller has
// checked 0 <= n.index <= length.
func (l *List[T]) link(n *node[T]) {
	// empty
	if l.head == nil {
		l.head, l.tail = n, n
		return
	}

	// append
	if n.index == l.tail.index+1 {
		l.tail.next = n
		l.tail = n
		return
	}

	// prepend
	if n.index == 0 {
		n.next = l.head
		l.head = n
	} else {
		prev := l.before(n.index)
		n.next = prev.next
		prev.next = n
	}

	reindex(n.next, 1)
}

// unlink detaches the node at index and returns it. The caller has checked
// 0 <= index < length.
func (l *List[T]) unlink(index int) *node[T] {
	var target *node[T]
	if index == 0 {
		target = l.head
		l.head = target.next
		if l.head == nil {
			l.tail = nil
		}
	} else {
		prev := l.before(index)
		target = prev.next
		prev.next = target.next
		if target == l.tail {
			l.tail = prev
		}
	}

	reindex(target.next, -1)
	target.next = nil
	return target
}

// endregion
