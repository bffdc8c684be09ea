package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// BitcoinAdapter queries address balances from an Esplora-style explorer
// REST API. The balance is funded minus spent output sums, in satoshis.
type BitcoinAdapter struct {
	endpoint string
	client   *http.Client
	tracer   trace.Tracer
}

func (a *BitcoinAdapter) FetchBalance(ctx context.Context, address string) (*big.Int, error) {
	_, span := a.tracer.Start(ctx, "adapter.bitcoin.fetch-balance")
	defer span.End()

	body, err := getJSON(ctx, a.client, a.endpoint+"/address/"+address)
	if err != nil {
		return nil, err
	}

	// Absent sums decode to zero, which is the correct default for
	// addresses the explorer has never seen.
	var out struct {
		ChainStats struct {
			FundedTxoSum int64 `json:"funded_txo_sum"`
			SpentTxoSum  int64 `json:"spent_txo_sum"`
		} `json:"chain_stats"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode address stats: %w", err)
	}

	sats := out.ChainStats.FundedTxoSum - out.ChainStats.SpentTxoSum
	if sats < 0 {
		return nil, fmt.Errorf("spent sum %d exceeds funded sum %d", out.ChainStats.SpentTxoSum, out.ChainStats.FundedTxoSum)
	}
	return big.NewInt(sats), nil
}
