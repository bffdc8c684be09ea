// Package adapter implements per-protocol-family balance queries against
// chain RPC endpoints. Every adapter returns the balance in the chain's
// smallest unit; unit conversion is the caller's job.
package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"nexus-terminal/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// DefaultTimeout bounds a single balance RPC call.
const DefaultTimeout = 10 * time.Second

// Adapter fetches the native balance of one address in minor units
// (wei, drops, lamports, satoshis, sun).
type Adapter interface {
	FetchBalance(ctx context.Context, address string) (*big.Int, error)
}

// jsonRPCRequest is the JSON-RPC 2.0 envelope shared by the EVM and
// Solana adapters.
type jsonRPCRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

var factories = map[domain.ProtocolFamily]func(domain.ChainDescriptor, *http.Client, trace.Tracer) Adapter{
	domain.FamilyEVM: func(d domain.ChainDescriptor, c *http.Client, t trace.Tracer) Adapter {
		return &EVMAdapter{endpoint: d.RPCEndpoint, client: c, tracer: t}
	},
	domain.FamilyXRPL: func(d domain.ChainDescriptor, c *http.Client, t trace.Tracer) Adapter {
		return &XRPLAdapter{endpoint: d.RPCEndpoint, client: c, tracer: t}
	},
	domain.FamilySolana: func(d domain.ChainDescriptor, c *http.Client, t trace.Tracer) Adapter {
		return &SolanaAdapter{endpoint: d.RPCEndpoint, client: c, tracer: t}
	},
	domain.FamilyBitcoin: func(d domain.ChainDescriptor, c *http.Client, t trace.Tracer) Adapter {
		return &BitcoinAdapter{endpoint: strings.TrimRight(d.RPCEndpoint, "/"), client: c, tracer: t}
	},
	domain.FamilyTron: func(d domain.ChainDescriptor, c *http.Client, t trace.Tracer) Adapter {
		return &TronAdapter{endpoint: strings.TrimRight(d.RPCEndpoint, "/"), client: c, tracer: t}
	},
}

// New builds the adapter matching the descriptor's protocol family.
// A nil client gets a default with DefaultTimeout.
func New(desc domain.ChainDescriptor, client *http.Client, tracer trace.Tracer) (Adapter, error) {
	factory, ok := factories[desc.Family]
	if !ok {
		return nil, fmt.Errorf("no adapter for protocol family %q", desc.Family)
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return factory(desc, client, tracer), nil
}

func postJSON(ctx context.Context, client *http.Client, url string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return do(client, req)
}

func getJSON(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	return do(client, req)
}

func do(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("rpc http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
