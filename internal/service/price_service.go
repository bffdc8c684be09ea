package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"nexus-terminal/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const (
	priceCacheKey = "prices:latest"
	priceCacheTTL = 90 * time.Second
)

// PriceOracle is the upstream price source consumed by the cache.
type PriceOracle interface {
	FetchSimplePrices(ctx context.Context) (map[string]float64, map[string]float64, error)
	FetchMarketChart(ctx context.Context, coinID string, days int) ([]domain.HistoryPoint, error)
}

// RedisClient is the subset of the redis client the price cache uses.
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// PriceService serves atomic price snapshots. Reads never fail and never
// block on an upstream refresh: when the oracle is unreachable, rate
// limited, or returns unusable data, the static fallback table answers
// instead.
type PriceService struct {
	tracer trace.Tracer
	oracle PriceOracle
	redis  RedisClient
}

func NewPriceService(tracer trace.Tracer, oracle PriceOracle, redisClient RedisClient) *PriceService {
	return &PriceService{
		tracer: tracer,
		oracle: oracle,
		redis:  redisClient,
	}
}

// GetPrices returns the current snapshot. The result is always usable:
// last-good cached data first, then a live fetch, then the fallback table.
func (s *PriceService) GetPrices(ctx context.Context) domain.PriceSnapshot {
	ctx, span := s.tracer.Start(ctx, "price-service.get-prices")
	defer span.End()

	if s.redis != nil {
		cached, err := s.getSnapshotCache(ctx)
		if err != nil {
			log.Printf("redis cache read error: %v", err)
		}
		if cached != nil {
			return *cached
		}
	}

	snap, err := s.fetchLive(ctx)
	if err != nil {
		log.Printf("price oracle unavailable, serving fallback: %v", err)
		return domain.FallbackSnapshot()
	}

	if s.redis != nil {
		if err := s.setSnapshotCache(ctx, snap); err != nil {
			log.Printf("redis cache write error: %v", err)
		}
	}
	return snap
}

// RefreshPrices fetches a live snapshot and caches it. Used by the
// background poller; unlike GetPrices it reports failures so the poller
// can log them.
func (s *PriceService) RefreshPrices(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "price-service.refresh-prices")
	defer span.End()

	snap, err := s.fetchLive(ctx)
	if err != nil {
		return err
	}

	if s.redis != nil {
		if err := s.setSnapshotCache(ctx, snap); err != nil {
			return fmt.Errorf("cache snapshot: %w", err)
		}
	}

	log.Printf("Refreshed prices for %d symbols", len(snap.Prices))
	return nil
}

// fetchLive pulls the basket from the oracle and validates it. A snapshot
// is all-or-nothing: any missing or zero price voids the whole response,
// since the oracle reports omitted symbols as zero.
func (s *PriceService) fetchLive(ctx context.Context) (domain.PriceSnapshot, error) {
	prices, changes, err := s.oracle.FetchSimplePrices(ctx)
	if err != nil {
		return domain.PriceSnapshot{}, err
	}

	snap := domain.PriceSnapshot{
		Prices:    make(map[string]float64, len(domain.SupportedSymbols)),
		Changes:   make(map[string]float64, len(domain.SupportedSymbols)),
		Source:    domain.SourceLive,
		FetchedAt: time.Now().UTC(),
	}
	for _, sym := range domain.SupportedSymbols {
		price, ok := prices[sym]
		if !ok || price == 0 {
			return domain.PriceSnapshot{}, fmt.Errorf("oracle returned no usable price for %s", sym)
		}
		snap.Prices[sym] = price
		snap.Changes[sym] = changes[sym]
	}
	return snap, nil
}

func (s *PriceService) setSnapshotCache(ctx context.Context, snap domain.PriceSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, priceCacheKey, data, priceCacheTTL).Err()
}

func (s *PriceService) getSnapshotCache(ctx context.Context) (*domain.PriceSnapshot, error) {
	data, err := s.redis.Get(ctx, priceCacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap domain.PriceSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
