package llist

import (
	"github.com/rs/zerolog"

	"github.com/snwfog/llist.go/metrics"
)

// Mode states who owns the elements still stored when a list is cleared
// or destroyed.
type Mode int

const (
	// Owning lists release every element they still hold on Clear and
	// Destroy. Callers must not keep references to stored elements across
	// those calls.
	Owning Mode = iota

	// Borrowing lists only unlink their nodes, elements are left untouched.
	Borrowing
)

func (m Mode) String() string {
	switch m {
	case Owning:
		return "owning"
	case Borrowing:
		return "borrowing"
	}

	return "unknown"
}

type options struct {
	name     string
	logger   zerolog.Logger
	metrics  *metrics.Metrics
	mode     Mode
	maxnodes int
}

func defaultoptions() options {
	return options{
		name:   "llist",
		logger: zerolog.Nop(),
		mode:   Owning,
	}
}

type Option func(o *options)

// WithName labels the list in logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithMaxNodes caps the number of nodes the list may hold. Insertion past
// the cap fails with ErrAllocation. n <= 0 means no cap.
func WithMaxNodes(n int) Option {
	return func(o *options) {
		o.maxnodes = n
	}
}
