package endpoint

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Errors returned by the codec.
var (
	// ErrInvalidURI indicates the descriptor could not be rendered as a
	// well-formed request URI, e.g. a path parameter that breaks the URI
	// grammar.
	ErrInvalidURI = errors.New("invalid request uri")

	// ErrInvalidPath indicates a URI whose path matches no known collection
	// template.
	ErrInvalidPath = errors.New("no matching collection path")
)

// Encode renders a descriptor as a GET request against the given host.
//
// The query string, when present, always emits parameters in the fixed order
// cursor, order, limit. The ordering is part of the wire contract so that
// encoded requests are reproducible, not a server requirement.
func Encode(d Descriptor, host string) (*http.Request, error) {
	// A literal percent sign would be read back as an escape sequence, so
	// the decoded descriptor would no longer equal this one.
	for _, p := range d.params {
		if strings.Contains(p, "%") {
			return nil, fmt.Errorf("%w: path parameter contains percent escape: %q", ErrInvalidURI, p)
		}
	}

	raw := strings.TrimRight(host, "/") + "/" + d.path()
	if d.HasQuery() {
		raw += "?" + encodeQuery(d.query)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}

	// A parameter containing a slash, query or fragment delimiter parses
	// fine but shifts the path shape, so the result would no longer decode
	// back to this descriptor. Reject it here.
	if !pathMatchesTemplate(u.Path, d.template) {
		return nil, fmt.Errorf("%w: path parameter breaks uri grammar: %q", ErrInvalidURI, u.Path)
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	return req, nil
}

// Decode parses a request URI back into the descriptor that would have
// produced it. The URI may be absolute or a bare path; the host is ignored.
//
// Query parameters that fail to parse as their expected type (an unknown
// order value, a non-numeric limit) are treated as absent rather than as
// errors. This leniency mirrors the server's tolerant query handling; it is a
// deliberate policy choice and means malformed paging input is dropped
// silently instead of being surfaced.
func Decode(uri string) (Descriptor, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	segments := splitPath(u.Path)
	template, params, ok := matchTemplate(segments)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrInvalidPath, u.Path)
	}

	d := Descriptor{template: template, params: params}
	values := u.Query()
	if cursor := values.Get("cursor"); cursor != "" {
		d.query.cursor = cursor
	}
	if order, ok := parseOrder(values.Get("order")); ok {
		d.query.order = order
	}
	if limit, err := strconv.ParseUint(values.Get("limit"), 10, 32); err == nil && limit > 0 {
		d.query.limit = uint(limit)
	}
	return d, nil
}

// encodeQuery renders the paging parameters in wire order.
func encodeQuery(q Query) string {
	var parts []string
	if cursor, ok := q.Cursor(); ok {
		parts = append(parts, "cursor="+url.QueryEscape(cursor))
	}
	if order, ok := q.Order(); ok {
		parts = append(parts, "order="+order.String())
	}
	if limit, ok := q.Limit(); ok {
		parts = append(parts, "limit="+strconv.FormatUint(uint64(limit), 10))
	}
	return strings.Join(parts, "&")
}

// matchTemplate finds the first registered collection template whose shape
// matches the path segments, returning the captured parameter values.
func matchTemplate(segments []string) (template string, params []string, ok bool) {
	for _, tmpl := range collectionTemplates {
		if params, ok := matchSegments(segments, tmpl); ok {
			return tmpl, params, true
		}
	}
	return "", nil, false
}

func matchSegments(segments []string, template string) ([]string, bool) {
	want := strings.Split(template, "/")
	if len(segments) != len(want) {
		return nil, false
	}
	var params []string
	for i, seg := range want {
		if isPlaceholder(seg) {
			if segments[i] == "" {
				return nil, false
			}
			params = append(params, segments[i])
			continue
		}
		if segments[i] != seg {
			return nil, false
		}
	}
	return params, true
}

func pathMatchesTemplate(path, template string) bool {
	_, ok := matchSegments(splitPath(path), template)
	return ok
}

func splitPath(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}
