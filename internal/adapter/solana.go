package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// SolanaAdapter queries balances over Solana JSON-RPC (getBalance).
// Balances arrive in lamports.
type SolanaAdapter struct {
	endpoint string
	client   *http.Client
	tracer   trace.Tracer
}

func (a *SolanaAdapter) FetchBalance(ctx context.Context, address string) (*big.Int, error) {
	_, span := a.tracer.Start(ctx, "adapter.solana.fetch-balance")
	defer span.End()

	body, err := postJSON(ctx, a.client, a.endpoint, jsonRPCRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "getBalance",
		Params:  []any{address},
	})
	if err != nil {
		return nil, err
	}

	var out struct {
		Result *struct {
			Value uint64 `json:"value"`
		} `json:"result"`
		Error *rpcError `json:"error"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode getBalance response: %w", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("rpc error %d: %s", out.Error.Code, out.Error.Message)
	}
	if out.Result == nil {
		return nil, fmt.Errorf("getBalance response missing result")
	}

	return new(big.Int).SetUint64(out.Result.Value), nil
}
