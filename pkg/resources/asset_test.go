package resources

import (
	"encoding/json"
	"testing"
)

func TestNativeAssetSerializesWithoutCodeOrIssuer(t *testing.T) {
	data, err := json.Marshal(NativeAsset())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"asset_type":"native"}` {
		t.Errorf("Marshal() = %s, want {\"asset_type\":\"native\"}", data)
	}
}

func TestNonNativeAssetSerializesAllFields(t *testing.T) {
	asset := Alphanum4("USD", "GBAUUA74H4XOQYRSOW2RZUA4QL5PB37U3JS5NE3RTB2ELJVMIF5RLMAG")

	data, err := json.Marshal(asset)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"asset_type":"credit_alphanum4","asset_code":"USD","asset_issuer":"GBAUUA74H4XOQYRSOW2RZUA4QL5PB37U3JS5NE3RTB2ELJVMIF5RLMAG"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestAssetIdentifierRoundTrips(t *testing.T) {
	tests := []struct {
		name  string
		asset AssetIdentifier
	}{
		{name: "native", asset: NativeAsset()},
		{name: "alphanum4", asset: Alphanum4("USD", "ISSUER")},
		{name: "alphanum12", asset: Alphanum12("LONGCODE1234", "ISSUER")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.asset)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			var got AssetIdentifier
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got != tt.asset {
				t.Errorf("round trip = %+v, want %+v", got, tt.asset)
			}
		})
	}
}

func TestAssetIdentifierUnmarshalValidatesVariants(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{name: "unknown type", json: `{"asset_type":"credit_alphanum16","asset_code":"X","asset_issuer":"Y"}`},
		{name: "missing code", json: `{"asset_type":"credit_alphanum4","asset_issuer":"Y"}`},
		{name: "missing issuer", json: `{"asset_type":"credit_alphanum12","asset_code":"X"}`},
		{name: "empty type", json: `{"asset_code":"X","asset_issuer":"Y"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got AssetIdentifier
			if err := json.Unmarshal([]byte(tt.json), &got); err == nil {
				t.Errorf("Unmarshal(%s) accepted an invalid variant: %+v", tt.json, got)
			}
		})
	}
}

func TestAssetIdentifierAccessors(t *testing.T) {
	native := NativeAsset()
	if !native.IsNative() {
		t.Error("NativeAsset().IsNative() = false")
	}
	if native.Code() != "XLM" {
		t.Errorf("native Code() = %q, want XLM", native.Code())
	}
	if native.Issuer() != "" {
		t.Errorf("native Issuer() = %q, want empty", native.Issuer())
	}

	credit := Alphanum4("ABCD", "ISSUER")
	if credit.IsNative() {
		t.Error("Alphanum4().IsNative() = true")
	}
	if credit.Type() != AssetTypeCreditAlphanum4 {
		t.Errorf("Type() = %q", credit.Type())
	}
	if credit.Code() != "ABCD" || credit.Issuer() != "ISSUER" {
		t.Errorf("Code()/Issuer() = %q/%q", credit.Code(), credit.Issuer())
	}
}

func TestAssetRecordDecodesFlattenedIdentifier(t *testing.T) {
	body := `{
		"asset_type": "credit_alphanum4",
		"asset_code": "USD",
		"asset_issuer": "GBAUUA74H4XOQYRSOW2RZUA4QL5PB37U3JS5NE3RTB2ELJVMIF5RLMAG",
		"amount": "100.0000000",
		"num_accounts": 91547871,
		"flags": {"auth_required": false, "auth_revocable": true},
		"paging_token": "USD_GBAUUA74_credit_alphanum4"
	}`

	var asset Asset
	if err := json.Unmarshal([]byte(body), &asset); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if asset.Identifier != Alphanum4("USD", "GBAUUA74H4XOQYRSOW2RZUA4QL5PB37U3JS5NE3RTB2ELJVMIF5RLMAG") {
		t.Errorf("Identifier = %+v", asset.Identifier)
	}
	if asset.Amount != NewAmount(1_000_000_000) {
		t.Errorf("Amount = %v, want 100.0000000", asset.Amount)
	}
	if asset.NumAccounts != 91547871 {
		t.Errorf("NumAccounts = %d", asset.NumAccounts)
	}
	if asset.Flags.AuthRequired || !asset.Flags.AuthRevocable {
		t.Errorf("Flags = %+v", asset.Flags)
	}
}

func TestBalanceDecodesInlineAsset(t *testing.T) {
	body := `{"balance": "5.0000000", "asset_type": "native"}`

	var b Balance
	if err := json.Unmarshal([]byte(body), &b); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !b.Asset.IsNative() {
		t.Errorf("Asset = %+v, want native", b.Asset)
	}
	if b.Amount != NewAmount(50_000_000) {
		t.Errorf("Amount = %v, want 5.0000000", b.Amount)
	}
}
