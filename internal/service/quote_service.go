package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"nexus-terminal/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// slippageFactor is the flat 0.5% haircut applied to every quote.
const slippageFactor = 0.995

// PriceSnapshotter supplies the snapshot quotes are priced against.
type PriceSnapshotter interface {
	GetPrices(ctx context.Context) domain.PriceSnapshot
}

// QuoteService prices cross-chain swaps against the current snapshot.
// Quotes are indicative: both legs are valued in USD from the same
// snapshot, so a fallback snapshot yields a fallback-consistent quote.
type QuoteService struct {
	tracer trace.Tracer
	prices PriceSnapshotter
}

func NewQuoteService(tracer trace.Tracer, prices PriceSnapshotter) *QuoteService {
	return &QuoteService{tracer: tracer, prices: prices}
}

// Quote computes an indicative swap quote. Unknown tokens are valued at
// 1 USD so stablecoin legs quote sensibly without a dedicated feed.
func (s *QuoteService) Quote(ctx context.Context, fromToken, toToken, fromChain, toChain string, amount float64) domain.SwapQuote {
	ctx, span := s.tracer.Start(ctx, "quote-service.quote")
	defer span.End()

	snap := s.prices.GetPrices(ctx)
	fromPrice := priceOf(snap, fromToken)
	toPrice := priceOf(snap, toToken)

	toAmount := round6(amount * fromPrice / toPrice * slippageFactor)

	rate := 0.0
	if amount != 0 {
		rate = round6(toAmount / amount)
	}

	provider, route := routeFor(fromChain, toChain, fromToken, toToken)

	return domain.SwapQuote{
		FromToken:    fromToken,
		ToToken:      toToken,
		FromAmount:   amount,
		ToAmount:     toAmount,
		ExchangeRate: rate,
		GasEstimate:  "0.001 " + chainSymbol(fromChain),
		Route:        route,
		Provider:     provider,
	}
}

// routeFor picks the venue. A swap touching XRPL on either side bridges
// through XRP; otherwise either side on Solana goes through Jupiter;
// everything else routes through USDC on 1inch.
func routeFor(fromChain, toChain, fromToken, toToken string) (provider, route string) {
	from := strings.ToUpper(fromToken)
	to := strings.ToUpper(toToken)
	switch {
	case fromChain == "xrp" || toChain == "xrp":
		return "XRPL DEX", fmt.Sprintf("%s → XRP → %s", from, to)
	case fromChain == "solana" || toChain == "solana":
		return "Jupiter", fmt.Sprintf("%s → %s", from, to)
	default:
		return "1inch", fmt.Sprintf("%s → USDC → %s", from, to)
	}
}

func priceOf(snap domain.PriceSnapshot, token string) float64 {
	if price, ok := snap.Prices[strings.ToLower(token)]; ok && price > 0 {
		return price
	}
	return 1.0
}

func chainSymbol(chainID string) string {
	if desc, ok := domain.ChainByID(chainID); ok {
		return desc.Symbol
	}
	return strings.ToUpper(chainID)
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
