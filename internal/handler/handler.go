package handler

import (
	"context"

	"nexus-terminal/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// BalanceFetcher aggregates wallet balances across chains.
type BalanceFetcher interface {
	GetBalance(ctx context.Context, chainID, address string) domain.BalanceResult
	AggregateBalances(ctx context.Context, addresses map[string]string) map[string]domain.BalanceResult
}

// PriceProvider serves the current price snapshot.
type PriceProvider interface {
	GetPrices(ctx context.Context) domain.PriceSnapshot
}

// HistoryProvider serves hourly price history.
type HistoryProvider interface {
	GetHistory(ctx context.Context, coin string, days int) []domain.HistoryPoint
}

// Quoter prices cross-chain swaps.
type Quoter interface {
	Quote(ctx context.Context, fromToken, toToken, fromChain, toChain string, amount float64) domain.SwapQuote
}

// TransactionStore persists wallet transactions.
type TransactionStore interface {
	Insert(ctx context.Context, tx *domain.TransactionRecord) error
	ListByWallet(ctx context.Context, walletID string, limit int) ([]*domain.TransactionRecord, error)
}

// StatusStore persists client liveness pings.
type StatusStore interface {
	Insert(ctx context.Context, check *domain.StatusCheck) error
	List(ctx context.Context, limit int) ([]*domain.StatusCheck, error)
}

type Handler struct {
	tracer         trace.Tracer
	balanceService BalanceFetcher
	priceService   PriceProvider
	historyService HistoryProvider
	quoteService   Quoter
	transactions   TransactionStore
	statusChecks   StatusStore
}

func New(
	tracer trace.Tracer,
	balanceService BalanceFetcher,
	priceService PriceProvider,
	historyService HistoryProvider,
	quoteService Quoter,
	transactions TransactionStore,
	statusChecks StatusStore,
) *Handler {
	return &Handler{
		tracer:         tracer,
		balanceService: balanceService,
		priceService:   priceService,
		historyService: historyService,
		quoteService:   quoteService,
		transactions:   transactions,
		statusChecks:   statusChecks,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.GET("/", h.Root)
	api.GET("/chains", h.GetChains)
	api.POST("/balance", h.GetBalance)
	api.POST("/balances/all", h.GetAllBalances)
	api.GET("/prices", h.GetPrices)
	api.GET("/prices/history/:coin", h.GetPriceHistory)
	api.POST("/swap/quote", h.GetSwapQuote)
	api.POST("/swap/execute", h.ExecuteSwap)
	api.GET("/transactions/:wallet_id", h.GetTransactions)
	api.GET("/onramp/config", h.GetOnrampConfig)
	api.POST("/status", h.CreateStatusCheck)
	api.GET("/status", h.GetStatusChecks)
}

// Root godoc
// @Summary      API root
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/ [get]
func (h *Handler) Root(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Nexus Terminal API"})
}
