package llist

import (
	"github.com/pkg/errors"

	"github.com/snwfog/llist.go/metrics"
)

// Error kinds. Every error returned by this package wraps exactly one of
// them, match with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("index out of range")
	ErrAllocation      = errors.New("allocation failed")
	ErrStaleIterator   = errors.New("stale iterator")
	ErrExhausted       = errors.New("iterator exhausted")
)

var (
	errnillist    = errors.Wrap(ErrInvalidArgument, "nil or destroyed list")
	errnilelement = errors.Wrap(ErrInvalidArgument, "nil element")
	errnilitr     = errors.Wrap(ErrInvalidArgument, "nil iterator")
)

func outofrange(op string, index, lo, hi int) error {
	return errors.Wrapf(ErrOutOfRange, "%s: index %d not in [%d, %d]", op, index, lo, hi)
}

func kindof(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return metrics.KindInvalidArgument
	case errors.Is(err, ErrOutOfRange):
		return metrics.KindOutOfRange
	case errors.Is(err, ErrAllocation):
		return metrics.KindAllocation
	case errors.Is(err, ErrStaleIterator):
		return metrics.KindStaleIterator
	case errors.Is(err, ErrExhausted):
		return metrics.KindExhausted
	}

	return metrics.KindUnknown
}
