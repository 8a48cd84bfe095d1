package resources

import "time"

// Ledger is one record of the ledgers collection.
type Ledger struct {
	ID               string    `json:"id"`
	PagingToken      string    `json:"paging_token"`
	Hash             string    `json:"hash"`
	PrevHash         string    `json:"prev_hash"`
	Sequence         uint32    `json:"sequence"`
	TransactionCount uint32    `json:"transaction_count"`
	OperationCount   uint32    `json:"operation_count"`
	ClosedAt         time.Time `json:"closed_at"`
	TotalCoins       string    `json:"total_coins"`
	FeePool          string    `json:"fee_pool"`
	BaseFee          uint32    `json:"base_fee"`
	BaseReserve      string    `json:"base_reserve"`
	MaxTxSetSize     uint32    `json:"max_tx_set_size"`
}
