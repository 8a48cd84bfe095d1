package cache

import (
	"net/url"
	"testing"
)

func TestKey_String(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{
			name: "simple endpoint no params",
			key: Key{
				Endpoint: "/ledgers",
			},
			want: "horizon:ledgers",
		},
		{
			name: "endpoint with query params",
			key: Key{
				Endpoint: "/accounts/GABC/transactions",
				QueryParams: url.Values{
					"limit": []string{"200"},
				},
			},
			want: "horizon:accounts/GABC/transactions:limit=200",
		},
		{
			name: "multiple query params are sorted",
			key: Key{
				Endpoint: "/trades",
				QueryParams: url.Values{
					"order":  []string{"desc"},
					"cursor": []string{"12884905984"},
					"limit":  []string{"10"},
				},
			},
			want: "horizon:trades:cursor=12884905984:limit=10:order=desc",
		},
		{
			name: "empty endpoint",
			key:  Key{},
			want: "horizon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKey_StringIsDeterministic(t *testing.T) {
	key := Key{
		Endpoint: "/assets",
		QueryParams: url.Values{
			"cursor": []string{"abc"},
			"limit":  []string{"50"},
			"order":  []string{"asc"},
		},
	}

	first := key.String()
	for i := 0; i < 100; i++ {
		if got := key.String(); got != first {
			t.Fatalf("String() changed between calls: %q vs %q", first, got)
		}
	}
}
