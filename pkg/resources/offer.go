package resources

// Offer is one record of an account's open offers: an amount of one asset
// offered in exchange for another at a given price. Both asset identifiers
// arrive as nested objects, so their validating decoder applies directly.
type Offer struct {
	ID          int64           `json:"id"`
	PagingToken string          `json:"paging_token"`
	Seller      string          `json:"seller"`
	Selling     AssetIdentifier `json:"selling"`
	Buying      AssetIdentifier `json:"buying"`
	Amount      Amount          `json:"amount"`
	Price       string          `json:"price"`
}

// Orderbook is the current order book summary for an asset pair. It is a
// single snapshot, not a paginated collection.
type Orderbook struct {
	Bids    []PriceLevel    `json:"bids"`
	Asks    []PriceLevel    `json:"asks"`
	Base    AssetIdentifier `json:"base"`
	Counter AssetIdentifier `json:"counter"`
}

// PriceLevel is one aggregated step of an order book side.
type PriceLevel struct {
	Price  string `json:"price"`
	Amount Amount `json:"amount"`
}
