package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nexus-terminal/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("handler-test")

type stubBalances struct {
	single domain.BalanceResult
	all    map[string]domain.BalanceResult
}

func (s *stubBalances) GetBalance(ctx context.Context, chainID, address string) domain.BalanceResult {
	return s.single
}

func (s *stubBalances) AggregateBalances(ctx context.Context, addresses map[string]string) map[string]domain.BalanceResult {
	return s.all
}

type stubPrices struct {
	snap domain.PriceSnapshot
}

func (s *stubPrices) GetPrices(ctx context.Context) domain.PriceSnapshot {
	return s.snap
}

type stubHistory struct {
	coin   string
	days   int
	points []domain.HistoryPoint
}

func (s *stubHistory) GetHistory(ctx context.Context, coin string, days int) []domain.HistoryPoint {
	s.coin, s.days = coin, days
	return s.points
}

type stubQuoter struct {
	quote domain.SwapQuote
}

func (s *stubQuoter) Quote(ctx context.Context, fromToken, toToken, fromChain, toChain string, amount float64) domain.SwapQuote {
	return s.quote
}

type stubTxStore struct {
	inserted []*domain.TransactionRecord
	listed   []*domain.TransactionRecord
}

func (s *stubTxStore) Insert(ctx context.Context, tx *domain.TransactionRecord) error {
	s.inserted = append(s.inserted, tx)
	return nil
}

func (s *stubTxStore) ListByWallet(ctx context.Context, walletID string, limit int) ([]*domain.TransactionRecord, error) {
	return s.listed, nil
}

type stubStatusStore struct {
	inserted []*domain.StatusCheck
}

func (s *stubStatusStore) Insert(ctx context.Context, check *domain.StatusCheck) error {
	s.inserted = append(s.inserted, check)
	return nil
}

func (s *stubStatusStore) List(ctx context.Context, limit int) ([]*domain.StatusCheck, error) {
	var out []*domain.StatusCheck
	for _, c := range s.inserted {
		out = append(out, c)
	}
	return out, nil
}

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	h := &Handler{tracer: testTracer}
	w := doJSON(t, newTestRouter(h), "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestGetChains(t *testing.T) {
	h := &Handler{tracer: testTracer}
	w := doJSON(t, newTestRouter(h), "GET", "/api/chains", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Chains []domain.ChainDescriptor `json:"chains"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Chains) != len(domain.Chains()) {
		t.Fatalf("expected %d chains, got %d", len(domain.Chains()), len(resp.Chains))
	}
}

func TestGetBalance(t *testing.T) {
	h := &Handler{
		tracer: testTracer,
		balanceService: &stubBalances{single: domain.BalanceResult{
			ChainID: "xrp", Address: "rTest", Balance: 123.456789, Symbol: "XRP",
		}},
	}
	r := newTestRouter(h)

	w := doJSON(t, r, "POST", "/api/balance", `{"chain":"xrp","address":"rTest"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var res domain.BalanceResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Balance != 123.456789 {
		t.Fatalf("unexpected balance %v", res.Balance)
	}

	if w := doJSON(t, r, "POST", "/api/balance", `{"chain":"xrp"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing address must 400, got %d", w.Code)
	}
}

func TestGetAllBalances(t *testing.T) {
	h := &Handler{
		tracer: testTracer,
		balanceService: &stubBalances{all: map[string]domain.BalanceResult{
			"xrp":      {ChainID: "xrp", Balance: 10},
			"ethereum": {ChainID: "ethereum", Error: "rpc http 502"},
		}},
	}
	r := newTestRouter(h)

	w := doJSON(t, r, "POST", "/api/balances/all", `{"addresses":{"xrp":"rA","ethereum":"0xB"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Balances map[string]domain.BalanceResult `json:"balances"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Balances) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Balances))
	}
	if resp.Balances["ethereum"].Error == "" {
		t.Fatal("failing chain must keep its error field")
	}

	if w := doJSON(t, r, "POST", "/api/balances/all", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing addresses must 400, got %d", w.Code)
	}
}

func TestGetPrices(t *testing.T) {
	h := &Handler{
		tracer: testTracer,
		priceService: &stubPrices{snap: domain.PriceSnapshot{
			Prices:    map[string]float64{"xrp": 2.35},
			Changes:   map[string]float64{"xrp": 3.2},
			Source:    domain.SourceFallback,
			FetchedAt: time.Now().UTC(),
		}},
	}

	w := doJSON(t, newTestRouter(h), "GET", "/api/prices", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var snap domain.PriceSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if snap.Source != domain.SourceFallback || snap.Prices["xrp"] != 2.35 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestGetPriceHistory(t *testing.T) {
	hist := &stubHistory{points: []domain.HistoryPoint{{Timestamp: 1700000000000, Price: 2.1}}}
	h := &Handler{tracer: testTracer, historyService: hist}
	r := newTestRouter(h)

	w := doJSON(t, r, "GET", "/api/prices/history/XRP?days=30", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if hist.coin != "xrp" {
		t.Fatalf("coin must be lowercased, got %q", hist.coin)
	}
	if hist.days != 30 {
		t.Fatalf("expected 30 days, got %d", hist.days)
	}

	doJSON(t, r, "GET", "/api/prices/history/xrp?days=bogus", "")
	if hist.days != 7 {
		t.Fatalf("bad days must default to 7, got %d", hist.days)
	}
}

func TestGetSwapQuote(t *testing.T) {
	h := &Handler{
		tracer: testTracer,
		quoteService: &stubQuoter{quote: domain.SwapQuote{
			FromToken: "XRP", ToToken: "SOL", FromAmount: 100, ToAmount: 199,
			ExchangeRate: 1.99, Provider: "XRPL DEX", Route: "XRP → XRP → SOL",
			GasEstimate: "0.001 XRP",
		}},
	}
	r := newTestRouter(h)

	w := doJSON(t, r, "POST", "/api/swap/quote",
		`{"from_token":"XRP","to_token":"SOL","from_chain":"xrp","to_chain":"solana","amount":100}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var q domain.SwapQuote
	if err := json.Unmarshal(w.Body.Bytes(), &q); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if q.ToAmount != 199 || q.Provider != "XRPL DEX" {
		t.Fatalf("unexpected quote: %+v", q)
	}

	if w := doJSON(t, r, "POST", "/api/swap/quote", `{"from_token":"XRP"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("incomplete request must 400, got %d", w.Code)
	}
}

func TestExecuteSwap(t *testing.T) {
	txs := &stubTxStore{}
	h := &Handler{
		tracer:       testTracer,
		quoteService: &stubQuoter{quote: domain.SwapQuote{ToAmount: 199}},
		transactions: txs,
	}
	r := newTestRouter(h)

	w := doJSON(t, r, "POST", "/api/swap/execute",
		`{"wallet_id":"w1","from_token":"XRP","to_token":"SOL","from_chain":"xrp","to_chain":"solana","amount":100}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		TxHash  string `json:"tx_hash"`
		Status  string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Status != "confirmed" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if !strings.HasPrefix(resp.TxHash, "0x") || len(resp.TxHash) != 34 {
		t.Fatalf("unexpected tx hash %q", resp.TxHash)
	}

	if len(txs.inserted) != 1 {
		t.Fatalf("expected 1 recorded transaction, got %d", len(txs.inserted))
	}
	rec := txs.inserted[0]
	if rec.WalletID != "w1" || rec.Type != "swap" || rec.Status != "confirmed" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestGetTransactions(t *testing.T) {
	txs := &stubTxStore{listed: []*domain.TransactionRecord{
		{ID: "t1", WalletID: "w1", Chain: "xrp", Type: "swap"},
	}}
	h := &Handler{tracer: testTracer, transactions: txs}
	r := newTestRouter(h)

	w := doJSON(t, r, "GET", "/api/transactions/w1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp struct {
		Transactions []*domain.TransactionRecord `json:"transactions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Transactions) != 1 || resp.Transactions[0].ID != "t1" {
		t.Fatalf("unexpected transactions: %+v", resp.Transactions)
	}
}

func TestGetTransactionsEmptyListIsNotNull(t *testing.T) {
	h := &Handler{tracer: testTracer, transactions: &stubTxStore{}}
	w := doJSON(t, newTestRouter(h), "GET", "/api/transactions/w1", "")
	if !strings.Contains(w.Body.String(), `"transactions":[]`) {
		t.Fatalf("empty list must serialize as [], got %s", w.Body.String())
	}
}

func TestStatusChecks(t *testing.T) {
	store := &stubStatusStore{}
	h := &Handler{tracer: testTracer, statusChecks: store}
	r := newTestRouter(h)

	w := doJSON(t, r, "POST", "/api/status", `{"client_name":"terminal"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var check domain.StatusCheck
	if err := json.Unmarshal(w.Body.Bytes(), &check); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if check.ClientName != "terminal" || check.ID == "" {
		t.Fatalf("unexpected check: %+v", check)
	}

	w = doJSON(t, r, "GET", "/api/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var checks []domain.StatusCheck
	if err := json.Unmarshal(w.Body.Bytes(), &checks); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(checks) != 1 {
		t.Fatalf("expected 1 check, got %d", len(checks))
	}

	if w := doJSON(t, r, "POST", "/api/status", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing client_name must 400, got %d", w.Code)
	}
}

func TestStorelessEndpointsDegrade(t *testing.T) {
	h := &Handler{tracer: testTracer}
	r := newTestRouter(h)

	if w := doJSON(t, r, "GET", "/api/transactions/w1", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a store, got %d", w.Code)
	}
	if w := doJSON(t, r, "GET", "/api/status", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a store, got %d", w.Code)
	}
}

func TestGetOnrampConfig(t *testing.T) {
	h := &Handler{tracer: testTracer}
	w := doJSON(t, newTestRouter(h), "GET", "/api/onramp/config", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp struct {
		Providers []onrampProvider `json:"providers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Providers) != 3 {
		t.Fatalf("expected 3 providers, got %d", len(resp.Providers))
	}
}

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(APIKeyAuth("secret"))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing key must 401, got %d", w.Code)
	}

	req, _ = http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-API-Key", "wrong")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("wrong key must 403, got %d", w.Code)
	}

	req, _ = http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-API-Key", "secret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid key must pass, got %d", w.Code)
	}
}
