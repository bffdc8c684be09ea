package job

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// PricePoller keeps the price cache warm so reads rarely hit the oracle
// on the request path.
type PricePoller struct {
	tracer       trace.Tracer
	priceService PriceRefresher
	pollInterval time.Duration
}

type PriceRefresher interface {
	RefreshPrices(ctx context.Context) error
}

func NewPricePoller(tracer trace.Tracer, priceService PriceRefresher, pollIntervalSecs int) *PricePoller {
	return &PricePoller{
		tracer:       tracer,
		priceService: priceService,
		pollInterval: time.Duration(pollIntervalSecs) * time.Second,
	}
}

// Start polls until ctx is cancelled. Blocks.
func (p *PricePoller) Start(ctx context.Context) {
	log.Println("Price poller starting...")

	// Run immediately on start
	if err := p.priceService.RefreshPrices(ctx); err != nil {
		log.Printf("price poller initial run error: %v", err)
	}

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Price poller stopped")
			return
		case <-ticker.C:
			if err := p.priceService.RefreshPrices(ctx); err != nil {
				log.Printf("price poller error: %v", err)
			}
		}
	}
}
