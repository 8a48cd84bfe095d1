package resources

import (
	"encoding/base64"
	"encoding/json"
)

// Account is the detail record of a single account.
type Account struct {
	ID       string    `json:"id"`
	Sequence string    `json:"sequence"`
	Balances []Balance `json:"balances"`
}

// Balance is one line of an account's holdings. The wire form carries the
// asset identifier fields inline next to the balance.
type Balance struct {
	Amount Amount
	Asset  AssetIdentifier
	Limit  string
}

type balanceJSON struct {
	Balance     Amount    `json:"balance"`
	Limit       string    `json:"limit,omitempty"`
	AssetType   AssetType `json:"asset_type"`
	AssetCode   string    `json:"asset_code,omitempty"`
	AssetIssuer string    `json:"asset_issuer,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Balance) UnmarshalJSON(data []byte) error {
	var rep balanceJSON
	if err := json.Unmarshal(data, &rep); err != nil {
		return err
	}
	asset, err := NewAssetIdentifier(rep.AssetType, rep.AssetCode, rep.AssetIssuer)
	if err != nil {
		return err
	}
	*b = Balance{Amount: rep.Balance, Asset: asset, Limit: rep.Limit}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (b Balance) MarshalJSON() ([]byte, error) {
	rep := balanceJSON{
		Balance:   b.Amount,
		Limit:     b.Limit,
		AssetType: b.Asset.Type(),
	}
	if !b.Asset.IsNative() {
		rep.AssetCode = b.Asset.Code()
		rep.AssetIssuer = b.Asset.Issuer()
	}
	return json.Marshal(rep)
}

// Datum is a single key/value entry attached to an account. Values arrive
// base64 encoded.
type Datum struct {
	Value string `json:"value"`
}

// Decoded returns the raw bytes of the datum value.
func (d Datum) Decoded() ([]byte, error) {
	return base64.StdEncoding.DecodeString(d.Value)
}
