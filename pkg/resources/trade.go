package resources

import (
	"encoding/json"
	"time"
)

// Trade is one record of the trades collection: an exchange of a base asset
// for a counter asset between two accounts. The wire form flattens both
// asset identifiers with "base_" and "counter_" prefixes.
type Trade struct {
	ID             string
	PagingToken    string
	LedgerCloseAt  time.Time
	BaseAccount    string
	BaseAmount     Amount
	BaseAsset      AssetIdentifier
	CounterAccount string
	CounterAmount  Amount
	CounterAsset   AssetIdentifier
	BaseIsSeller   bool
}

type tradeJSON struct {
	ID                 string    `json:"id"`
	PagingToken        string    `json:"paging_token"`
	LedgerCloseAt      time.Time `json:"ledger_close_time"`
	BaseAccount        string    `json:"base_account"`
	BaseAmount         Amount    `json:"base_amount"`
	BaseAssetType      AssetType `json:"base_asset_type"`
	BaseAssetCode      string    `json:"base_asset_code,omitempty"`
	BaseAssetIssuer    string    `json:"base_asset_issuer,omitempty"`
	CounterAccount     string    `json:"counter_account"`
	CounterAmount      Amount    `json:"counter_amount"`
	CounterAssetType   AssetType `json:"counter_asset_type"`
	CounterAssetCode   string    `json:"counter_asset_code,omitempty"`
	CounterAssetIssuer string    `json:"counter_asset_issuer,omitempty"`
	BaseIsSeller       bool      `json:"base_is_seller"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Trade) UnmarshalJSON(data []byte) error {
	var rep tradeJSON
	if err := json.Unmarshal(data, &rep); err != nil {
		return err
	}
	base, err := NewAssetIdentifier(rep.BaseAssetType, rep.BaseAssetCode, rep.BaseAssetIssuer)
	if err != nil {
		return err
	}
	counter, err := NewAssetIdentifier(rep.CounterAssetType, rep.CounterAssetCode, rep.CounterAssetIssuer)
	if err != nil {
		return err
	}
	*t = Trade{
		ID:             rep.ID,
		PagingToken:    rep.PagingToken,
		LedgerCloseAt:  rep.LedgerCloseAt,
		BaseAccount:    rep.BaseAccount,
		BaseAmount:     rep.BaseAmount,
		BaseAsset:      base,
		CounterAccount: rep.CounterAccount,
		CounterAmount:  rep.CounterAmount,
		CounterAsset:   counter,
		BaseIsSeller:   rep.BaseIsSeller,
	}
	return nil
}
