package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// TronAdapter queries account balances from a Tron full-node REST API
// (wallet/getaccount). Balances arrive in sun.
type TronAdapter struct {
	endpoint string
	client   *http.Client
	tracer   trace.Tracer
}

func (a *TronAdapter) FetchBalance(ctx context.Context, address string) (*big.Int, error) {
	_, span := a.tracer.Start(ctx, "adapter.tron.fetch-balance")
	defer span.End()

	body, err := postJSON(ctx, a.client, a.endpoint+"/wallet/getaccount", map[string]any{
		"address": address,
		"visible": true,
	})
	if err != nil {
		return nil, err
	}

	// The node answers an empty object for accounts that have never been
	// activated; the zero-valued balance field covers that case.
	var out struct {
		Balance int64  `json:"balance"`
		Error   string `json:"Error"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode getaccount response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("node error: %s", out.Error)
	}
	if out.Balance < 0 {
		return nil, fmt.Errorf("negative balance %d", out.Balance)
	}
	return big.NewInt(out.Balance), nil
}
