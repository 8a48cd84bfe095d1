package resources

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTradeUnmarshalFlattenedAssets(t *testing.T) {
	data := `{
		"id": "3697472920621057-0",
		"paging_token": "3697472920621057-0",
		"ledger_close_time": "2019-02-27T11:54:53Z",
		"base_account": "GBASE",
		"base_amount": "4.0000000",
		"base_asset_type": "native",
		"counter_account": "GCOUNTER",
		"counter_amount": "26.5544244",
		"counter_asset_type": "credit_alphanum4",
		"counter_asset_code": "BTC",
		"counter_asset_issuer": "GISSUER",
		"base_is_seller": true
	}`

	var trade Trade
	if err := json.Unmarshal([]byte(data), &trade); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if trade.ID != "3697472920621057-0" {
		t.Errorf("ID = %q", trade.ID)
	}
	if !trade.BaseAsset.IsNative() {
		t.Error("base asset should be native")
	}
	if trade.BaseAmount.String() != "4.0000000" {
		t.Errorf("BaseAmount = %s", trade.BaseAmount)
	}
	if trade.CounterAsset.Code() != "BTC" || trade.CounterAsset.Issuer() != "GISSUER" {
		t.Errorf("CounterAsset = %s", trade.CounterAsset)
	}
	if !trade.BaseIsSeller {
		t.Error("BaseIsSeller should be true")
	}
}

func TestTradeUnmarshalRejectsInvalidAsset(t *testing.T) {
	// counter asset claims alphanum4 but carries no code or issuer
	data := `{
		"id": "1-0",
		"paging_token": "1-0",
		"base_asset_type": "native",
		"counter_asset_type": "credit_alphanum4",
		"base_is_seller": false
	}`

	var trade Trade
	err := json.Unmarshal([]byte(data), &trade)
	if err == nil {
		t.Fatal("Unmarshal() should reject half-filled asset variant")
	}
	if !strings.Contains(err.Error(), "requires both code and issuer") {
		t.Errorf("error = %v", err)
	}
}
