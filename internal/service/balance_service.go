package service

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"nexus-terminal/internal/adapter"
	"nexus-terminal/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// displayDecimals is the fixed precision balances are rounded to.
const displayDecimals = 6

// BalanceService fans balance queries out to the per-chain adapters and
// assembles canonical results. One chain's failure never affects another's.
type BalanceService struct {
	tracer   trace.Tracer
	adapters map[string]adapter.Adapter
	symbols  map[string]string
	decimals map[string]int
	timeout  time.Duration
}

// NewBalanceService builds adapters for every chain in the catalog. A nil
// client gets the adapter package default.
func NewBalanceService(tracer trace.Tracer, client *http.Client, timeout time.Duration) (*BalanceService, error) {
	if timeout <= 0 {
		timeout = adapter.DefaultTimeout
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	s := &BalanceService{
		tracer:   tracer,
		adapters: make(map[string]adapter.Adapter),
		symbols:  make(map[string]string),
		decimals: make(map[string]int),
		timeout:  timeout,
	}
	for _, desc := range domain.Chains() {
		a, err := adapter.New(desc, client, tracer)
		if err != nil {
			return nil, fmt.Errorf("build adapter for %s: %w", desc.ID, err)
		}
		s.adapters[desc.ID] = a
		s.symbols[desc.ID] = desc.Symbol
		s.decimals[desc.ID] = desc.Decimals
	}
	return s, nil
}

// AggregateBalances queries every chain with a non-empty address
// concurrently and joins the results. The output keys are exactly the set
// of dispatched chain ids; unknown chains and upstream failures produce
// zero-balance entries with an error message instead of failing the batch.
func (s *BalanceService) AggregateBalances(ctx context.Context, addresses map[string]string) map[string]domain.BalanceResult {
	ctx, span := s.tracer.Start(ctx, "balance-service.aggregate-balances")
	defer span.End()

	results := make(map[string]domain.BalanceResult, len(addresses))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for chainID, address := range addresses {
		address = strings.TrimSpace(address)
		if address == "" {
			continue
		}

		wg.Add(1)
		go func(chainID, address string) {
			defer wg.Done()
			res := s.GetBalance(ctx, chainID, address)
			mu.Lock()
			results[chainID] = res
			mu.Unlock()
		}(chainID, address)
	}

	wg.Wait()
	return results
}

// GetBalance queries a single chain. It never returns an error: upstream
// and input failures come back as a zero balance with the Error field set.
func (s *BalanceService) GetBalance(ctx context.Context, chainID, address string) domain.BalanceResult {
	_, span := s.tracer.Start(ctx, "balance-service.get-balance")
	defer span.End()

	result := domain.BalanceResult{ChainID: chainID, Address: address}

	a, ok := s.adapters[chainID]
	if !ok {
		result.Error = fmt.Sprintf("unsupported chain: %s", chainID)
		return result
	}
	result.Symbol = s.symbols[chainID]

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	minor, err := a.FetchBalance(callCtx, address)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Balance = toMajorUnits(minor, s.decimals[chainID])
	return result
}

// toMajorUnits converts a minor-unit amount to major units rounded to the
// display precision. The scaling stays in integer arithmetic so amounts
// like 123456789 drops convert to exactly 123.456789 XRP.
func toMajorUnits(minor *big.Int, decimals int) float64 {
	if minor == nil || minor.Sign() == 0 {
		return 0
	}

	v := new(big.Int).Set(minor)
	shift := decimals - displayDecimals
	if shift > 0 {
		div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(shift)), nil)
		quo, rem := new(big.Int).QuoRem(v, div, new(big.Int))
		// Round half up on the truncated digits.
		if new(big.Int).Lsh(rem, 1).Cmp(div) >= 0 {
			quo.Add(quo, big.NewInt(1))
		}
		v = quo
	} else if shift < 0 {
		mul := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-shift)), nil)
		v.Mul(v, mul)
	}

	f, _ := new(big.Float).SetInt(v).Float64()
	return f / 1e6
}
