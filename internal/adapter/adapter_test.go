package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"nexus-terminal/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("adapter-test")

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func stubClient(fn roundTripFunc) *http.Client {
	return &http.Client{Transport: fn}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func TestNewSelectsAdapterByFamily(t *testing.T) {
	for _, c := range domain.Chains() {
		if _, err := New(c, nil, testTracer); err != nil {
			t.Fatalf("no adapter for chain %s: %v", c.ID, err)
		}
	}

	_, err := New(domain.ChainDescriptor{ID: "x", Family: "unknown"}, nil, testTracer)
	if err == nil {
		t.Fatal("expected error for unknown protocol family")
	}
}

func TestEVMAdapterParsesPrefixedHex(t *testing.T) {
	a := &EVMAdapter{endpoint: "https://example.com", tracer: testTracer}
	a.client = stubClient(func(req *http.Request) (*http.Response, error) {
		var rpc jsonRPCRequest
		if err := json.NewDecoder(req.Body).Decode(&rpc); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if rpc.Method != "eth_getBalance" {
			t.Fatalf("unexpected method %s", rpc.Method)
		}
		if rpc.Params[1] != "latest" {
			t.Fatalf("expected latest block tag, got %v", rpc.Params[1])
		}
		return jsonResponse(http.StatusOK, `{"jsonrpc":"2.0","id":1,"result":"0xde0b6b3a7640000"}`), nil
	})

	wei, err := a.FetchBalance(context.Background(), "0xabc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wei.String() != "1000000000000000000" {
		t.Fatalf("expected 1 ETH in wei, got %s", wei)
	}
}

func TestEVMAdapterParsesBareHex(t *testing.T) {
	a := &EVMAdapter{endpoint: "https://example.com", tracer: testTracer}
	a.client = stubClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"result":"1f4"}`), nil
	})

	wei, err := a.FetchBalance(context.Background(), "0xabc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wei.Int64() != 500 {
		t.Fatalf("expected 500 wei, got %s", wei)
	}
}

func TestEVMAdapterErrors(t *testing.T) {
	cases := []struct {
		name string
		resp *http.Response
	}{
		{"rpc error", jsonResponse(http.StatusOK, `{"error":{"code":-32602,"message":"invalid address"}}`)},
		{"empty result", jsonResponse(http.StatusOK, `{"result":""}`)},
		{"bad hex", jsonResponse(http.StatusOK, `{"result":"0xzz"}`)},
		{"http error", jsonResponse(http.StatusBadGateway, `upstream down`)},
		{"malformed json", jsonResponse(http.StatusOK, `{`)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := &EVMAdapter{endpoint: "https://example.com", tracer: testTracer}
			a.client = stubClient(func(*http.Request) (*http.Response, error) { return tc.resp, nil })
			if _, err := a.FetchBalance(context.Background(), "0xabc"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestXRPLAdapterReadsDrops(t *testing.T) {
	a := &XRPLAdapter{endpoint: "https://example.com", tracer: testTracer}
	a.client = stubClient(func(req *http.Request) (*http.Response, error) {
		var rpc xrplRequest
		if err := json.NewDecoder(req.Body).Decode(&rpc); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if rpc.Method != "account_info" {
			t.Fatalf("unexpected method %s", rpc.Method)
		}
		params := rpc.Params[0].(map[string]any)
		if params["ledger_index"] != "validated" {
			t.Fatalf("expected validated ledger, got %v", params["ledger_index"])
		}
		return jsonResponse(http.StatusOK, `{"result":{"account_data":{"Balance":"123456789"},"status":"success"}}`), nil
	})

	drops, err := a.FetchBalance(context.Background(), "rPEPPER7kfTD9w2To4CQk6UCfuHM9c6GDY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if drops.Int64() != 123456789 {
		t.Fatalf("expected 123456789 drops, got %s", drops)
	}
}

func TestXRPLAdapterUnfundedAccountIsZero(t *testing.T) {
	a := &XRPLAdapter{endpoint: "https://example.com", tracer: testTracer}
	a.client = stubClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"result":{"error":"actNotFound","status":"error"}}`), nil
	})

	drops, err := a.FetchBalance(context.Background(), "rNotFunded")
	if err != nil {
		t.Fatalf("unfunded account must not error: %v", err)
	}
	if drops.Sign() != 0 {
		t.Fatalf("expected zero balance, got %s", drops)
	}
}

func TestSolanaAdapterReadsLamports(t *testing.T) {
	a := &SolanaAdapter{endpoint: "https://example.com", tracer: testTracer}
	a.client = stubClient(func(req *http.Request) (*http.Response, error) {
		var rpc jsonRPCRequest
		if err := json.NewDecoder(req.Body).Decode(&rpc); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if rpc.Method != "getBalance" {
			t.Fatalf("unexpected method %s", rpc.Method)
		}
		return jsonResponse(http.StatusOK, `{"jsonrpc":"2.0","result":{"context":{"slot":311},"value":2500000000},"id":1}`), nil
	})

	lamports, err := a.FetchBalance(context.Background(), "4Nd1mYzT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lamports.Int64() != 2500000000 {
		t.Fatalf("expected 2.5 SOL in lamports, got %s", lamports)
	}
}

func TestSolanaAdapterMissingResult(t *testing.T) {
	a := &SolanaAdapter{endpoint: "https://example.com", tracer: testTracer}
	a.client = stubClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"jsonrpc":"2.0","id":1}`), nil
	})

	if _, err := a.FetchBalance(context.Background(), "4Nd1mYzT"); err == nil {
		t.Fatal("expected error for missing result")
	}
}

func TestBitcoinAdapterComputesUTXOSum(t *testing.T) {
	a := &BitcoinAdapter{endpoint: "https://example.com", tracer: testTracer}
	a.client = stubClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/address/bc1qtest" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, `{"chain_stats":{"funded_txo_sum":150000000,"spent_txo_sum":50000000,"tx_count":12}}`), nil
	})

	sats, err := a.FetchBalance(context.Background(), "bc1qtest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sats.Int64() != 100000000 {
		t.Fatalf("expected 1 BTC in sats, got %s", sats)
	}
}

func TestBitcoinAdapterDefaultsAbsentSums(t *testing.T) {
	a := &BitcoinAdapter{endpoint: "https://example.com", tracer: testTracer}
	a.client = stubClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"address":"bc1qnew","chain_stats":{}}`), nil
	})

	sats, err := a.FetchBalance(context.Background(), "bc1qnew")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sats.Sign() != 0 {
		t.Fatalf("expected zero balance, got %s", sats)
	}
}

func TestTronAdapterReadsSun(t *testing.T) {
	a := &TronAdapter{endpoint: "https://example.com", tracer: testTracer}
	a.client = stubClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/wallet/getaccount" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		var payload map[string]any
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload["visible"] != true {
			t.Fatal("expected visible:true in request body")
		}
		return jsonResponse(http.StatusOK, `{"address":"TTest","balance":7000000}`), nil
	})

	sun, err := a.FetchBalance(context.Background(), "TTest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sun.Int64() != 7000000 {
		t.Fatalf("expected 7 TRX in sun, got %s", sun)
	}
}

func TestTronAdapterEmptyAccountIsZero(t *testing.T) {
	a := &TronAdapter{endpoint: "https://example.com", tracer: testTracer}
	a.client = stubClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{}`), nil
	})

	sun, err := a.FetchBalance(context.Background(), "TNever")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sun.Sign() != 0 {
		t.Fatalf("expected zero balance, got %s", sun)
	}
}

func TestTronAdapterNodeError(t *testing.T) {
	a := &TronAdapter{endpoint: "https://example.com", tracer: testTracer}
	a.client = stubClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"Error":"class java.lang.IllegalArgumentException"}`), nil
	})

	if _, err := a.FetchBalance(context.Background(), "bogus"); err == nil {
		t.Fatal("expected node error to surface")
	}
}
