package endpoint

// Collection path templates known to the codec. Decode matches an inbound
// URI against these in order, so more specific account paths come first.
var collectionTemplates = []string{
	"accounts/{account}/data/{key}",
	"accounts/{account}/transactions",
	"accounts/{account}/payments",
	"accounts/{account}/operations",
	"accounts/{account}/effects",
	"accounts/{account}/offers",
	"accounts/{account}",
	"ledgers/{sequence}/transactions",
	"ledgers/{sequence}",
	"ledgers",
	"transactions/{hash}",
	"transactions",
	"assets",
	"trades",
	"order_book",
}

// AccountDetails queries the details of a single account.
func AccountDetails(account string) Descriptor {
	return newDescriptor("accounts/{account}", account)
}

// AccountData queries a single key/value datum attached to an account.
func AccountData(account, key string) Descriptor {
	return newDescriptor("accounts/{account}/data/{key}", account, key)
}

// AccountTransactions queries the transactions that affected an account.
func AccountTransactions(account string) Descriptor {
	return newDescriptor("accounts/{account}/transactions", account)
}

// AccountPayments queries the payment operations sent or received by an
// account.
func AccountPayments(account string) Descriptor {
	return newDescriptor("accounts/{account}/payments", account)
}

// AccountOperations queries the operations performed by an account.
func AccountOperations(account string) Descriptor {
	return newDescriptor("accounts/{account}/operations", account)
}

// AccountEffects queries the effects that changed an account.
func AccountEffects(account string) Descriptor {
	return newDescriptor("accounts/{account}/effects", account)
}

// AccountOffers queries the open offers made by an account.
func AccountOffers(account string) Descriptor {
	return newDescriptor("accounts/{account}/offers", account)
}

// Ledgers queries all ledgers.
func Ledgers() Descriptor {
	return newDescriptor("ledgers")
}

// LedgerDetails queries a single ledger by sequence number.
func LedgerDetails(sequence string) Descriptor {
	return newDescriptor("ledgers/{sequence}", sequence)
}

// LedgerTransactions queries the transactions in a single ledger.
func LedgerTransactions(sequence string) Descriptor {
	return newDescriptor("ledgers/{sequence}/transactions", sequence)
}

// Transactions queries all transactions.
func Transactions() Descriptor {
	return newDescriptor("transactions")
}

// TransactionDetails queries a single transaction by hash.
func TransactionDetails(hash string) Descriptor {
	return newDescriptor("transactions/{hash}", hash)
}

// Assets queries the assets issued on the network.
func Assets() Descriptor {
	return newDescriptor("assets")
}

// Trades queries all trades.
func Trades() Descriptor {
	return newDescriptor("trades")
}

// OrderBook queries the current order book summary.
func OrderBook() Descriptor {
	return newDescriptor("order_book")
}
