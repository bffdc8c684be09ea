package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

// EVMAdapter queries native balances over EVM JSON-RPC (eth_getBalance).
type EVMAdapter struct {
	endpoint string
	client   *http.Client
	tracer   trace.Tracer
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (a *EVMAdapter) FetchBalance(ctx context.Context, address string) (*big.Int, error) {
	_, span := a.tracer.Start(ctx, "adapter.evm.fetch-balance")
	defer span.End()

	body, err := postJSON(ctx, a.client, a.endpoint, jsonRPCRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "eth_getBalance",
		Params:  []any{address, "latest"},
	})
	if err != nil {
		return nil, err
	}

	var out struct {
		Result string    `json:"result"`
		Error  *rpcError `json:"error"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode eth_getBalance response: %w", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("rpc error %d: %s", out.Error.Code, out.Error.Message)
	}

	hex := strings.TrimSpace(out.Result)
	if hex == "" {
		return nil, fmt.Errorf("eth_getBalance returned empty result")
	}
	// Nodes differ on whether the result carries a 0x prefix.
	hex = strings.TrimPrefix(hex, "0x")
	if hex == "" {
		return big.NewInt(0), nil
	}
	wei, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex balance %q", out.Result)
	}
	return wei, nil
}
