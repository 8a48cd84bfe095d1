// Package resources defines the record types returned by the ledger query
// service. The pagination engine treats these as opaque payloads; only the
// JSON shapes defined here tie them to the wire.
package resources

import (
	"encoding/json"
	"fmt"
)

// AssetType discriminates the closed set of asset identifier variants.
type AssetType string

const (
	// AssetTypeNative is the network's native asset. It carries no code or
	// issuer.
	AssetTypeNative AssetType = "native"

	// AssetTypeCreditAlphanum4 is an issued asset with a code of up to 4
	// characters.
	AssetTypeCreditAlphanum4 AssetType = "credit_alphanum4"

	// AssetTypeCreditAlphanum12 is an issued asset with a code of up to 12
	// characters.
	AssetTypeCreditAlphanum12 AssetType = "credit_alphanum12"
)

// AssetIdentifier names an asset on the network: either the native asset or
// an issued credit identified by (code, issuer). Non-native variants always
// carry both fields; the constructors enforce this so the invariant cannot be
// broken by business logic holding a half-filled struct.
type AssetIdentifier struct {
	assetType AssetType
	code      string
	issuer    string
}

// NativeAsset returns the identifier of the network's native asset.
func NativeAsset() AssetIdentifier {
	return AssetIdentifier{assetType: AssetTypeNative}
}

// Alphanum4 returns the identifier of an issued asset with a 4-character
// code.
func Alphanum4(code, issuer string) AssetIdentifier {
	return AssetIdentifier{assetType: AssetTypeCreditAlphanum4, code: code, issuer: issuer}
}

// Alphanum12 returns the identifier of an issued asset with a 12-character
// code.
func Alphanum12(code, issuer string) AssetIdentifier {
	return AssetIdentifier{assetType: AssetTypeCreditAlphanum12, code: code, issuer: issuer}
}

// NewAssetIdentifier builds an identifier from its wire fields. It rejects
// unknown types and non-native variants missing a code or issuer.
func NewAssetIdentifier(assetType AssetType, code, issuer string) (AssetIdentifier, error) {
	switch assetType {
	case AssetTypeNative:
		return NativeAsset(), nil
	case AssetTypeCreditAlphanum4, AssetTypeCreditAlphanum12:
		if code == "" || issuer == "" {
			return AssetIdentifier{}, fmt.Errorf("asset type %q requires both code and issuer", assetType)
		}
		return AssetIdentifier{assetType: assetType, code: code, issuer: issuer}, nil
	default:
		return AssetIdentifier{}, fmt.Errorf("invalid asset type %q", assetType)
	}
}

// Type returns the variant discriminant.
func (a AssetIdentifier) Type() AssetType {
	return a.assetType
}

// IsNative reports whether this is the network's native asset.
func (a AssetIdentifier) IsNative() bool {
	return a.assetType == AssetTypeNative
}

// Code returns the asset code, or "XLM" for the native asset.
func (a AssetIdentifier) Code() string {
	if a.IsNative() {
		return "XLM"
	}
	return a.code
}

// Issuer returns the issuing account, or the empty string for the native
// asset.
func (a AssetIdentifier) Issuer() string {
	return a.issuer
}

// String renders the identifier as "code:issuer", or "native".
func (a AssetIdentifier) String() string {
	if a.IsNative() {
		return "native"
	}
	return a.code + ":" + a.issuer
}

// assetIdentifierJSON is the wire form: a string discriminant plus optional
// companion fields. Absent fields are omitted rather than emitted as null.
type assetIdentifierJSON struct {
	AssetType   AssetType `json:"asset_type"`
	AssetCode   string    `json:"asset_code,omitempty"`
	AssetIssuer string    `json:"asset_issuer,omitempty"`
}

// MarshalJSON implements json.Marshaler. A native asset encodes as
// {"asset_type":"native"} with no code or issuer fields.
func (a AssetIdentifier) MarshalJSON() ([]byte, error) {
	rep := assetIdentifierJSON{AssetType: a.assetType}
	if !a.IsNative() {
		rep.AssetCode = a.code
		rep.AssetIssuer = a.issuer
	}
	return json.Marshal(rep)
}

// UnmarshalJSON implements json.Unmarshaler, validating the variant fields.
func (a *AssetIdentifier) UnmarshalJSON(data []byte) error {
	var rep assetIdentifierJSON
	if err := json.Unmarshal(data, &rep); err != nil {
		return err
	}
	id, err := NewAssetIdentifier(rep.AssetType, rep.AssetCode, rep.AssetIssuer)
	if err != nil {
		return err
	}
	*a = id
	return nil
}

// AssetFlags describe who may hold an asset and whether the issuer can
// revoke it.
type AssetFlags struct {
	// AuthRequired means the issuer must approve an account before it can
	// hold the asset.
	AuthRequired bool `json:"auth_required"`

	// AuthRevocable means the issuer can freeze the asset held by another
	// account.
	AuthRevocable bool `json:"auth_revocable"`
}

// Asset is one record of the assets collection: an identifier plus issuance
// statistics.
type Asset struct {
	Identifier  AssetIdentifier
	Amount      Amount
	NumAccounts uint32
	Flags       AssetFlags
	PagingToken string
}

// assetJSON carries the flattened wire form of an asset record. The
// identifier fields arrive inline next to the statistics.
type assetJSON struct {
	AssetType   AssetType  `json:"asset_type"`
	AssetCode   string     `json:"asset_code,omitempty"`
	AssetIssuer string     `json:"asset_issuer,omitempty"`
	Amount      Amount     `json:"amount"`
	NumAccounts uint32     `json:"num_accounts"`
	Flags       AssetFlags `json:"flags"`
	PagingToken string     `json:"paging_token"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Asset) UnmarshalJSON(data []byte) error {
	var rep assetJSON
	if err := json.Unmarshal(data, &rep); err != nil {
		return err
	}
	id, err := NewAssetIdentifier(rep.AssetType, rep.AssetCode, rep.AssetIssuer)
	if err != nil {
		return err
	}
	*a = Asset{
		Identifier:  id,
		Amount:      rep.Amount,
		NumAccounts: rep.NumAccounts,
		Flags:       rep.Flags,
		PagingToken: rep.PagingToken,
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a Asset) MarshalJSON() ([]byte, error) {
	rep := assetJSON{
		AssetType:   a.Identifier.Type(),
		Amount:      a.Amount,
		NumAccounts: a.NumAccounts,
		Flags:       a.Flags,
		PagingToken: a.PagingToken,
	}
	if !a.Identifier.IsNative() {
		rep.AssetCode = a.Identifier.Code()
		rep.AssetIssuer = a.Identifier.Issuer()
	}
	return json.Marshal(rep)
}
