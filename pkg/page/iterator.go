package page

import (
	"context"

	"github.com/lumenlab/horizon-client/pkg/endpoint"
)

// iterState tracks the iterator's position in its lifecycle.
type iterState int

const (
	// stateReady: no page buffered yet, or the current buffer is drained.
	stateReady iterState = iota

	// stateBuffered: a fetched page is being yielded record by record.
	stateBuffered

	// stateExhausted: terminal, the collection is fully consumed.
	stateExhausted

	// stateFailed: terminal, a page fetch failed. The error is reported once
	// through Err and never re-raised.
	stateFailed
)

// Iterator is a pull-based lazy sequence of records fetched page by page.
// It owns a private copy of the descriptor whose cursor advances after every
// fetch, making the sequence finite and forward-only: to re-read from the
// start, build a new Iterator from the original descriptor.
//
// Usage follows the database/sql rows idiom:
//
//	it := page.NewIterator(fetcher, endpoint.Transactions().WithLimit(100))
//	for it.Next(ctx) {
//		handle(it.Record())
//	}
//	if err := it.Err(); err != nil {
//		return err
//	}
//
// An Iterator is single-threaded; nothing in it is safe for concurrent use.
type Iterator[T any] struct {
	fetcher *Fetcher[T]
	desc    endpoint.Descriptor
	buf     []T
	cur     T
	state   iterState
	err     error

	// short records that the last fetched page carried fewer records than
	// the requested limit, so draining the buffer ends the sequence without
	// another round trip.
	short bool
}

// NewIterator creates an iterator over the collection named by the
// descriptor. The descriptor's cursor, order and limit seed the first fetch.
func NewIterator[T any](fetcher *Fetcher[T], d endpoint.Descriptor) *Iterator[T] {
	return &Iterator[T]{fetcher: fetcher, desc: d}
}

// Next advances to the next record, fetching a new page when the current one
// is drained. It returns false when the collection is exhausted or a fetch
// failed; Err distinguishes the two.
func (it *Iterator[T]) Next(ctx context.Context) bool {
	for {
		switch it.state {
		case stateExhausted, stateFailed:
			return false

		case stateBuffered:
			if len(it.buf) > 0 {
				it.cur = it.buf[0]
				it.buf = it.buf[1:]
				return true
			}
			if it.short {
				it.state = stateExhausted
				return false
			}
			it.state = stateReady

		case stateReady:
			p, err := it.fetcher.Fetch(ctx, it.desc)
			if err != nil {
				it.err = err
				it.state = stateFailed
				return false
			}
			if len(p.Records) == 0 {
				it.state = stateExhausted
				return false
			}

			limit, limited := it.desc.Query().Limit()
			it.short = limited && uint(len(p.Records)) < limit
			it.desc = it.desc.WithCursor(p.NextCursor)
			it.buf = p.Records
			it.state = stateBuffered
		}
	}
}

// Record returns the record produced by the last successful Next call.
func (it *Iterator[T]) Record() T {
	return it.cur
}

// Err returns the fetch error that terminated iteration, or nil after a
// clean exhaustion.
func (it *Iterator[T]) Err() error {
	return it.err
}

// boundLimit clamps the iterator's requested page size to the given ceiling,
// applying the ceiling outright when no limit was requested.
func (it *Iterator[T]) boundLimit(ceiling uint) {
	limit, ok := it.desc.Query().Limit()
	if !ok || limit > ceiling {
		it.desc = it.desc.WithLimit(ceiling)
	}
}
