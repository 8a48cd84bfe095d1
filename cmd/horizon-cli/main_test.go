package main

import (
	"testing"

	"github.com/lumenlab/horizon-client/pkg/endpoint"
)

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
		limit  uint
		desc   bool
		want   endpoint.Descriptor
	}{
		{
			name: "no flags leaves descriptor untouched",
			want: endpoint.Ledgers(),
		},
		{
			name:   "cursor only",
			cursor: "12884905984",
			want:   endpoint.Ledgers().WithCursor("12884905984"),
		},
		{
			name:  "limit and order",
			limit: 50,
			desc:  true,
			want:  endpoint.Ledgers().WithLimit(50).WithOrder(endpoint.OrderDesc),
		},
		{
			name:   "all flags",
			cursor: "now",
			limit:  10,
			desc:   true,
			want:   endpoint.Ledgers().WithCursor("now").WithLimit(10).WithOrder(endpoint.OrderDesc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyFlags(endpoint.Ledgers(), tt.cursor, tt.limit, tt.desc)
			if !got.Equal(tt.want) {
				t.Errorf("applyFlags() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("HORIZON_CLI_TEST_VAR", "set")

	if got := getEnv("HORIZON_CLI_TEST_VAR", "fallback"); got != "set" {
		t.Errorf("getEnv() = %q, want %q", got, "set")
	}
	if got := getEnv("HORIZON_CLI_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("getEnv() = %q, want %q", got, "fallback")
	}
}
