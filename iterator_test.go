package llist

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator1(t *testing.T) {
	l := New[int]()
	for _, e := range ints(1, 2, 3) {
		_ = l.InsertLast(e)
	}

	it, err := l.Iterator(0)
	require.NoError(t, err)

	var got []int
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		got = append(got, *e)
	}

	assert.Equal(t, []int{1, 2, 3}, got)
	assert.False(t, it.HasNext())
}

func TestIterator2(t *testing.T) {
	l := New[int]()
	for _, e := range ints(1, 2, 3) {
		_ = l.InsertLast(e)
	}

	it, err := l.Iterator(0)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.True(t, it.HasNext())
		_, err := it.Next()
		assert.NoError(t, err)
	}

	assert.False(t, it.HasNext())

	e, err := it.Next()
	assert.Nil(t, e)
	assert.True(t, errors.Is(err, ErrExhausted))

	e, err = it.Next()
	assert.Nil(t, e)
	assert.True(t, errors.Is(err, ErrExhausted))
}

func TestIteratorStart(t *testing.T) {
	l := New[int]()
	for _, e := range ints(1, 2, 3) {
		_ = l.InsertLast(e)
	}

	it, err := l.Iterator(2)
	require.NoError(t, err)

	e, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, *e)
	assert.False(t, it.HasNext())

	it, err = l.Iterator(3)
	assert.Nil(t, it)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = l.Iterator(-1)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = New[int]().Iterator(0)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestIteratorStale(t *testing.T) {
	l := New[int](WithMode(Borrowing))
	es := ints(1, 2, 3, 4)
	for _, e := range es[:3] {
		_ = l.InsertLast(e)
	}

	it, err := l.Iterator(0)
	require.NoError(t, err)

	_, err = it.Next()
	require.NoError(t, err)

	require.NoError(t, l.InsertLast(es[3]))
	assert.False(t, it.HasNext())

	e, err := it.Next()
	assert.Nil(t, e)
	assert.True(t, errors.Is(err, ErrStaleIterator))

	it, err = l.Iterator(0)
	require.NoError(t, err)
	_, _ = l.Remove(3)
	_, err = it.Next()
	assert.True(t, errors.Is(err, ErrStaleIterator))

	it, err = l.Iterator(0)
	require.NoError(t, err)
	l.Clear()
	_, err = it.Next()
	assert.True(t, errors.Is(err, ErrStaleIterator))
}

func TestIteratorDestroyedList(t *testing.T) {
	l := New[int](WithMode(Borrowing))
	_ = l.InsertLast(ints(1)[0])

	it, err := l.Iterator(0)
	require.NoError(t, err)

	l.Destroy()
	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.True(t, errors.Is(err, ErrStaleIterator))
}

func TestIteratorSurvivesSet(t *testing.T) {
	l := New[int]()
	for _, e := range ints(1, 2, 3) {
		_ = l.InsertLast(e)
	}

	it, err := l.Iterator(0)
	require.NoError(t, err)

	x := 7
	_, err = l.Set(1, &x)
	require.NoError(t, err)

	var got []int
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		got = append(got, *e)
	}
	assert.Equal(t, []int{1, 7, 3}, got)
}

func TestIteratorClose(t *testing.T) {
	l := New[int]()
	for _, e := range ints(1, 2) {
		_ = l.InsertLast(e)
	}

	it, err := l.Iterator(0)
	require.NoError(t, err)

	it.Close()
	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	// list untouched
	assert.Equal(t, 2, l.Size())
	first, err := l.First()
	require.NoError(t, err)
	assert.Equal(t, 1, *first)

	var absent *Iterator[int]
	assert.False(t, absent.HasNext())
	_, err = absent.Next()
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.NotPanics(t, absent.Close)
}
