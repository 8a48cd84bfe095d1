package endpoint

import "testing"

func TestBuildersDoNotMutateOriginal(t *testing.T) {
	base := AccountTransactions("abc123")

	derived := base.WithCursor("CURSOR").WithOrder(OrderDesc).WithLimit(10)

	if base.HasQuery() {
		t.Errorf("base descriptor gained a query: %+v", base.Query())
	}
	if !derived.HasQuery() {
		t.Error("derived descriptor lost its query")
	}
	if base.Equal(derived) {
		t.Error("base and derived descriptors compare equal")
	}
}

func TestHasQuery(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
		want bool
	}{
		{name: "no params", d: Ledgers(), want: false},
		{name: "cursor only", d: Ledgers().WithCursor("c"), want: true},
		{name: "order only", d: Ledgers().WithOrder(OrderAsc), want: true},
		{name: "limit only", d: Ledgers().WithLimit(5), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.HasQuery(); got != tt.want {
				t.Errorf("HasQuery() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueryAccessors(t *testing.T) {
	q := Ledgers().WithCursor("12345").WithOrder(OrderDesc).WithLimit(50).Query()

	if cursor, ok := q.Cursor(); !ok || cursor != "12345" {
		t.Errorf("Cursor() = %q, %v", cursor, ok)
	}
	if order, ok := q.Order(); !ok || order != OrderDesc {
		t.Errorf("Order() = %v, %v", order, ok)
	}
	if limit, ok := q.Limit(); !ok || limit != 50 {
		t.Errorf("Limit() = %d, %v", limit, ok)
	}

	var zero Query
	if _, ok := zero.Cursor(); ok {
		t.Error("zero Query reports a cursor")
	}
	if _, ok := zero.Order(); ok {
		t.Error("zero Query reports an order")
	}
	if _, ok := zero.Limit(); ok {
		t.Error("zero Query reports a limit")
	}
}

func TestOrderString(t *testing.T) {
	if OrderAsc.String() != "asc" {
		t.Errorf("OrderAsc.String() = %q", OrderAsc.String())
	}
	if OrderDesc.String() != "desc" {
		t.Errorf("OrderDesc.String() = %q", OrderDesc.String())
	}
	if orderUnset.String() != "" {
		t.Errorf("unset order String() = %q", orderUnset.String())
	}
}
