package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// XRPLAdapter queries account balances over the XRP Ledger JSON-RPC
// (account_info against the validated ledger). Balances arrive in drops.
type XRPLAdapter struct {
	endpoint string
	client   *http.Client
	tracer   trace.Tracer
}

type xrplRequest struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
}

func (a *XRPLAdapter) FetchBalance(ctx context.Context, address string) (*big.Int, error) {
	_, span := a.tracer.Start(ctx, "adapter.xrpl.fetch-balance")
	defer span.End()

	body, err := postJSON(ctx, a.client, a.endpoint, xrplRequest{
		Method: "account_info",
		Params: []any{map[string]any{
			"account":      address,
			"ledger_index": "validated",
		}},
	})
	if err != nil {
		return nil, err
	}

	var out struct {
		Result struct {
			AccountData *struct {
				Balance string `json:"Balance"`
			} `json:"account_data"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode account_info response: %w", err)
	}

	// An unfunded or nonexistent account has no account_data. That is a
	// legitimate zero balance, not a failure.
	if out.Result.AccountData == nil {
		return big.NewInt(0), nil
	}

	drops, ok := new(big.Int).SetString(out.Result.AccountData.Balance, 10)
	if !ok {
		return nil, fmt.Errorf("invalid drops balance %q", out.Result.AccountData.Balance)
	}
	return drops, nil
}
