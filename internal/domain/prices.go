package domain

import "time"

// PriceSource marks whether a snapshot carries live oracle data or the
// static fallback table.
type PriceSource string

const (
	SourceLive     PriceSource = "live"
	SourceFallback PriceSource = "fallback"
)

// PriceSnapshot is one atomic view of spot prices and 24h changes for the
// tracked basket. A snapshot is always entirely live or entirely fallback.
type PriceSnapshot struct {
	Prices    map[string]float64 `json:"prices"`
	Changes   map[string]float64 `json:"changes"`
	Source    PriceSource        `json:"source"`
	FetchedAt time.Time          `json:"timestamp"`
}

// HistoryPoint is one point of a price history series, timestamp in epoch
// milliseconds, oldest first.
type HistoryPoint struct {
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
}

// SupportedSymbols is the tracked price basket, lowercase.
var SupportedSymbols = []string{"xrp", "sol", "eth", "btc", "ltc", "doge", "bnb", "matic"}

// CoinGeckoID maps basket symbols to CoinGecko API identifiers.
var CoinGeckoID = map[string]string{
	"xrp":   "ripple",
	"sol":   "solana",
	"eth":   "ethereum",
	"btc":   "bitcoin",
	"ltc":   "litecoin",
	"doge":  "dogecoin",
	"bnb":   "binancecoin",
	"matic": "matic-network",
}

// CoinGeckoIDToSymbol is the reverse mapping.
var CoinGeckoIDToSymbol map[string]string

func init() {
	CoinGeckoIDToSymbol = make(map[string]string, len(CoinGeckoID))
	for sym, id := range CoinGeckoID {
		CoinGeckoIDToSymbol[id] = sym
	}
}

// FallbackPrices is the static price table served whenever the oracle is
// unavailable, rate limited, or returns unusable data.
var FallbackPrices = map[string]float64{
	"xrp": 2.35, "sol": 185.0, "eth": 3450.0, "btc": 98500.0,
	"ltc": 92.0, "doge": 0.38, "bnb": 680.0, "matic": 0.52,
}

// FallbackChanges is the static 24h-change table paired with FallbackPrices.
var FallbackChanges = map[string]float64{
	"xrp": 3.2, "sol": 2.1, "eth": -0.8, "btc": 1.5,
	"ltc": 1.8, "doge": 6.5, "bnb": 0.9, "matic": -0.5,
}

// DefaultHistoryBasePrice seeds synthetic history for coins missing from the
// fallback table.
const DefaultHistoryBasePrice = 2.35

// FallbackSnapshot builds a fresh snapshot from the static tables.
func FallbackSnapshot() PriceSnapshot {
	prices := make(map[string]float64, len(FallbackPrices))
	for k, v := range FallbackPrices {
		prices[k] = v
	}
	changes := make(map[string]float64, len(FallbackChanges))
	for k, v := range FallbackChanges {
		changes[k] = v
	}
	return PriceSnapshot{
		Prices:    prices,
		Changes:   changes,
		Source:    SourceFallback,
		FetchedAt: time.Now().UTC(),
	}
}
