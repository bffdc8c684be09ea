package domain

import "time"

// BalanceResult is the canonical outcome of one chain balance query. Exactly
// one of a valid non-negative balance or a non-empty Error holds; on error the
// balance is zero.
type BalanceResult struct {
	ChainID string  `json:"chain"`
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
	Symbol  string  `json:"symbol,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// SwapQuote is a derived, stateless quote over the current price snapshot.
type SwapQuote struct {
	FromToken    string  `json:"from_token"`
	ToToken      string  `json:"to_token"`
	FromAmount   float64 `json:"from_amount"`
	ToAmount     float64 `json:"to_amount"`
	ExchangeRate float64 `json:"exchange_rate"`
	GasEstimate  string  `json:"gas_estimate"`
	Route        string  `json:"route"`
	Provider     string  `json:"provider"`
}

// TransactionRecord is a stored wallet transaction (send, receive, swap).
type TransactionRecord struct {
	ID          string    `json:"id"`
	WalletID    string    `json:"wallet_id"`
	Chain       string    `json:"chain"`
	Type        string    `json:"type"`
	FromAddress string    `json:"from_address"`
	ToAddress   string    `json:"to_address"`
	Amount      string    `json:"amount"`
	Token       string    `json:"token"`
	TxHash      string    `json:"tx_hash,omitempty"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

// StatusCheck is a client liveness ping record.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
