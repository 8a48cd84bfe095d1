package page

import "context"

// DefaultPageLimit is the server's maximum page size and the default
// per-request ceiling enforced by a Pager.
const DefaultPageLimit = 200

// Pager bounds the per-request page size of an iterator and drives a
// consumer callback until the collection is exhausted or a fetch fails.
type Pager struct {
	// PageLimit is the per-request page-size ceiling. Zero means
	// DefaultPageLimit. The ceiling applies regardless of any limit the
	// descriptor requested.
	PageLimit uint
}

// NewPager returns a pager with the default page-size ceiling.
func NewPager() Pager {
	return Pager{PageLimit: DefaultPageLimit}
}

func (p Pager) pageLimit() uint {
	if p.PageLimit == 0 {
		return DefaultPageLimit
	}
	return p.PageLimit
}

// Paginate drives fn with every record the iterator yields. It stops at the
// first fetch error, without invoking fn again, and returns that error to
// the caller; a fetch error is never swallowed.
func Paginate[T any](ctx context.Context, p Pager, it *Iterator[T], fn func(T)) error {
	it.boundLimit(p.pageLimit())
	for it.Next(ctx) {
		fn(it.Record())
	}
	return it.Err()
}
