package resources

// Effect is one record of an effects collection. Effects are kind-tagged;
// only the shared fields plus the asset payload carried by trustline effects
// are decoded here.
type Effect struct {
	ID          string `json:"id"`
	PagingToken string `json:"paging_token"`
	Account     string `json:"account"`
	Type        string `json:"type"`
}

// TrustlineAuthorized is the effect of an issuer allowing an account to hold
// its asset.
type TrustlineAuthorized struct {
	Account string          `json:"account"`
	Asset   AssetIdentifier `json:"asset"`
}
