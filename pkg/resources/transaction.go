package resources

import "time"

// Transaction is one record of a transactions collection.
type Transaction struct {
	ID             string    `json:"id"`
	PagingToken    string    `json:"paging_token"`
	Hash           string    `json:"hash"`
	Ledger         uint32    `json:"ledger"`
	SourceAccount  string    `json:"source_account"`
	CreatedAt      time.Time `json:"created_at"`
	OperationCount uint32    `json:"operation_count"`
	FeePaid        int64     `json:"fee_paid"`
	MemoType       string    `json:"memo_type"`
	Memo           string    `json:"memo,omitempty"`
}

// Operation is one record of an operations or payments collection. Only the
// fields common to all operation kinds are decoded; kind-specific payloads
// stay in business code that knows the type.
type Operation struct {
	ID            string    `json:"id"`
	PagingToken   string    `json:"paging_token"`
	SourceAccount string    `json:"source_account"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"created_at"`
	TransactionID string    `json:"transaction_hash"`
}
