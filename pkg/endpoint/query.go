// Package endpoint maps typed query descriptors onto Horizon wire requests
// and back. A Descriptor names one queryable collection; Encode turns it into
// an HTTP request and Decode recovers a Descriptor from a request URI.
package endpoint

// Order is the requested record ordering for a paginated collection.
type Order int

const (
	orderUnset Order = iota

	// OrderAsc requests records in ascending paging-token order.
	OrderAsc

	// OrderDesc requests records in descending paging-token order.
	OrderDesc
)

// String returns the wire form of the order ("asc" or "desc").
func (o Order) String() string {
	switch o {
	case OrderAsc:
		return "asc"
	case OrderDesc:
		return "desc"
	default:
		return ""
	}
}

// parseOrder maps a wire value back to an Order.
// Unknown values report false and are treated as absent by the decoder.
func parseOrder(s string) (Order, bool) {
	switch s {
	case "asc":
		return OrderAsc, true
	case "desc":
		return OrderDesc, true
	default:
		return orderUnset, false
	}
}

// Query holds the optional paging parameters attachable to any collection
// descriptor: an opaque cursor, an ordering, and a page-size limit. The zero
// value has none of the three set and emits no query string.
//
// Limit bounds are not validated here. An out-of-range limit is passed to the
// wire as-is and is the server's concern; the page.Pager enforces its own
// ceiling independently.
type Query struct {
	cursor string
	order  Order
	limit  uint
}

// Cursor returns the cursor token and whether one is set.
func (q Query) Cursor() (string, bool) {
	return q.cursor, q.cursor != ""
}

// Order returns the requested ordering and whether one is set.
func (q Query) Order() (Order, bool) {
	return q.order, q.order != orderUnset
}

// Limit returns the requested page size and whether one is set.
func (q Query) Limit() (uint, bool) {
	return q.limit, q.limit != 0
}

// hasAny reports whether any paging parameter is set.
func (q Query) hasAny() bool {
	return q.cursor != "" || q.order != orderUnset || q.limit != 0
}
