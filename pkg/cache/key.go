package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Key identifies one cached Horizon response: the collection path plus its
// query parameters.
type Key struct {
	// Endpoint is the request path (e.g. "/accounts/GABC/transactions")
	Endpoint string

	// QueryParams are the request's query parameters
	QueryParams url.Values
}

// String generates a deterministic cache key string.
// Format: horizon:endpoint:param1=val1:param2=val2
//
// Example:
//
//	horizon:accounts/GABC/transactions:limit=200:order=asc
func (k Key) String() string {
	parts := []string{"horizon"}

	endpoint := strings.Trim(k.Endpoint, "/")
	if endpoint != "" {
		parts = append(parts, endpoint)
	}

	// Query params sorted for determinism
	if len(k.QueryParams) > 0 {
		queryKeys := make([]string, 0, len(k.QueryParams))
		for key := range k.QueryParams {
			queryKeys = append(queryKeys, key)
		}
		sort.Strings(queryKeys)

		for _, key := range queryKeys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, k.QueryParams.Get(key)))
		}
	}

	return strings.Join(parts, ":")
}
