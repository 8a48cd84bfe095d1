package endpoint

import "strings"

// Descriptor identifies one queryable Horizon collection: a path template
// such as "accounts/{account}/transactions", the values for its path
// parameters in template order, and the optional paging Query.
//
// The path identity is fixed at construction. Paging parameters are set via
// the With* builder methods, which return an updated copy so that a shared
// Descriptor is never mutated under another holder.
type Descriptor struct {
	template string
	params   []string
	query    Query
}

// newDescriptor builds a descriptor for a template and its parameter values.
// Callers go through the typed constructors in collections.go.
func newDescriptor(template string, params ...string) Descriptor {
	return Descriptor{template: template, params: params}
}

// Template returns the collection path template.
func (d Descriptor) Template() string {
	return d.template
}

// Params returns a copy of the path parameter values in template order.
func (d Descriptor) Params() []string {
	out := make([]string, len(d.params))
	copy(out, d.params)
	return out
}

// Query returns the attached paging parameters.
func (d Descriptor) Query() Query {
	return d.query
}

// WithCursor returns a copy of the descriptor with the paging cursor set.
func (d Descriptor) WithCursor(cursor string) Descriptor {
	d.params = d.Params()
	d.query.cursor = cursor
	return d
}

// WithOrder returns a copy of the descriptor with the record ordering set.
func (d Descriptor) WithOrder(order Order) Descriptor {
	d.params = d.Params()
	d.query.order = order
	return d
}

// WithLimit returns a copy of the descriptor with the page-size limit set.
func (d Descriptor) WithLimit(limit uint) Descriptor {
	d.params = d.Params()
	d.query.limit = limit
	return d
}

// HasQuery reports whether any of cursor, order or limit is set.
func (d Descriptor) HasQuery() bool {
	return d.query.hasAny()
}

// Equal reports whether two descriptors name the same collection with the
// same path parameters and paging query.
func (d Descriptor) Equal(other Descriptor) bool {
	if d.template != other.template || d.query != other.query {
		return false
	}
	if len(d.params) != len(other.params) {
		return false
	}
	for i := range d.params {
		if d.params[i] != other.params[i] {
			return false
		}
	}
	return true
}

// path substitutes the parameter values into the template and returns the
// collection path without a leading slash.
func (d Descriptor) path() string {
	segments := strings.Split(d.template, "/")
	next := 0
	for i, seg := range segments {
		if isPlaceholder(seg) && next < len(d.params) {
			segments[i] = d.params[next]
			next++
		}
	}
	return strings.Join(segments, "/")
}

func isPlaceholder(segment string) bool {
	return strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}
