package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nexus-terminal/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const coingeckoBaseURL = "https://api.coingecko.com/api/v3"

// oracleTimeout bounds a single CoinGecko call. The price cache treats an
// expired deadline like any other upstream failure.
const oracleTimeout = 5 * time.Second

// CoinGeckoProvider fetches spot prices and market charts from the
// CoinGecko free API.
type CoinGeckoProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewCoinGeckoProvider creates a new provider with built-in rate limiting.
// Rate limited to 8 requests per minute (one token every 7.5 seconds).
func NewCoinGeckoProvider(tracer trace.Tracer) *CoinGeckoProvider {
	return &CoinGeckoProvider{
		client:  &http.Client{Timeout: oracleTimeout},
		baseURL: coingeckoBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(8, 7500*time.Millisecond),
	}
}

// FetchSimplePrices fetches current prices and 24h changes for the whole
// tracked basket in a single API call. Both maps are keyed by lowercase
// symbol; basket entries the oracle omitted are absent from the maps.
func (p *CoinGeckoProvider) FetchSimplePrices(ctx context.Context) (map[string]float64, map[string]float64, error) {
	_, span := p.tracer.Start(ctx, "coingecko.fetch-simple-prices")
	defer span.End()

	ids := make([]string, 0, len(domain.SupportedSymbols))
	for _, sym := range domain.SupportedSymbols {
		ids = append(ids, domain.CoinGeckoID[sym])
	}

	url := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd&include_24hr_change=true",
		p.baseURL, strings.Join(ids, ","))

	body, err := p.doRequest(ctx, url)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch prices: %w", err)
	}

	// Response shape: {"ripple": {"usd": 2.35, "usd_24h_change": 3.2}, ...}.
	// A rate-limited response instead carries a "status" object.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse prices: %w", err)
	}
	if statusRaw, ok := raw["status"]; ok {
		var status struct {
			ErrorCode    int    `json:"error_code"`
			ErrorMessage string `json:"error_message"`
		}
		if err := json.Unmarshal(statusRaw, &status); err == nil && status.ErrorCode != 0 {
			return nil, nil, fmt.Errorf("coingecko error %d: %s", status.ErrorCode, status.ErrorMessage)
		}
	}

	prices := make(map[string]float64, len(raw))
	changes := make(map[string]float64, len(raw))
	for cgID, data := range raw {
		symbol, ok := domain.CoinGeckoIDToSymbol[cgID]
		if !ok {
			continue
		}
		var entry struct {
			USD          float64 `json:"usd"`
			USD24hChange float64 `json:"usd_24h_change"`
		}
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil, nil, fmt.Errorf("parse price entry for %s: %w", cgID, err)
		}
		prices[symbol] = entry.USD
		changes[symbol] = entry.USD24hChange
	}

	return prices, changes, nil
}

// FetchMarketChart fetches the price series for one coin over the given
// number of days. Points come back oldest first, timestamps in epoch
// milliseconds.
func (p *CoinGeckoProvider) FetchMarketChart(ctx context.Context, coinID string, days int) ([]domain.HistoryPoint, error) {
	_, span := p.tracer.Start(ctx, "coingecko.fetch-market-chart")
	defer span.End()

	url := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=usd&days=%d",
		p.baseURL, coinID, days)

	body, err := p.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch market chart for %s: %w", coinID, err)
	}

	var raw struct {
		Prices [][]float64 `json:"prices"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse market chart for %s: %w", coinID, err)
	}
	if len(raw.Prices) == 0 {
		return nil, fmt.Errorf("market chart for %s has no prices", coinID)
	}

	points := make([]domain.HistoryPoint, 0, len(raw.Prices))
	for _, pt := range raw.Prices {
		if len(pt) < 2 {
			continue
		}
		points = append(points, domain.HistoryPoint{Timestamp: int64(pt[0]), Price: pt[1]})
	}
	return points, nil
}

func (p *CoinGeckoProvider) doRequest(ctx context.Context, url string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("coingecko API error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
