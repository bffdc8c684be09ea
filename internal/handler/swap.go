package handler

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"nexus-terminal/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type swapQuoteRequest struct {
	FromToken string  `json:"from_token" binding:"required"`
	ToToken   string  `json:"to_token" binding:"required"`
	FromChain string  `json:"from_chain" binding:"required"`
	ToChain   string  `json:"to_chain" binding:"required"`
	Amount    float64 `json:"amount"`
}

type swapExecuteRequest struct {
	WalletID  string  `json:"wallet_id" binding:"required"`
	FromToken string  `json:"from_token" binding:"required"`
	ToToken   string  `json:"to_token" binding:"required"`
	FromChain string  `json:"from_chain" binding:"required"`
	ToChain   string  `json:"to_chain" binding:"required"`
	Amount    float64 `json:"amount"`
}

// GetSwapQuote godoc
// @Summary      Get an indicative cross-chain swap quote
// @Description  Prices both legs in USD from the current snapshot and applies a flat 0.5% slippage. Quotes are stateless and expire with the snapshot.
// @Tags         swap
// @Accept       json
// @Produce      json
// @Param        request  body  swapQuoteRequest  true  "Swap legs and amount"
// @Success      200  {object}  domain.SwapQuote
// @Failure      400  {object}  map[string]string
// @Router       /api/swap/quote [post]
func (h *Handler) GetSwapQuote(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-swap-quote")
	defer span.End()

	var req swapQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	span.SetAttributes(
		attribute.String("from_token", req.FromToken),
		attribute.String("to_token", req.ToToken),
	)

	quote := h.quoteService.Quote(ctx, req.FromToken, req.ToToken, req.FromChain, req.ToChain, req.Amount)
	c.JSON(http.StatusOK, quote)
}

// ExecuteSwap godoc
// @Summary      Execute a quoted swap
// @Description  Records the swap as a confirmed transaction and returns the generated hash. Settlement against the venues is out of scope; the hash is synthetic.
// @Tags         swap
// @Accept       json
// @Produce      json
// @Param        request  body  swapExecuteRequest  true  "Swap legs, amount, and wallet"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/swap/execute [post]
func (h *Handler) ExecuteSwap(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.execute-swap")
	defer span.End()

	var req swapExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote := h.quoteService.Quote(ctx, req.FromToken, req.ToToken, req.FromChain, req.ToChain, req.Amount)
	txHash := "0x" + strings.ReplaceAll(uuid.NewString(), "-", "")

	record := &domain.TransactionRecord{
		ID:        uuid.NewString(),
		WalletID:  req.WalletID,
		Chain:     req.FromChain,
		Type:      "swap",
		Amount:    fmt.Sprintf("%v", req.Amount),
		Token:     req.FromToken,
		TxHash:    txHash,
		Status:    "confirmed",
		Timestamp: time.Now().UTC(),
	}
	if h.transactions != nil {
		if err := h.transactions.Insert(ctx, record); err != nil {
			log.Printf("record swap transaction: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tx_hash": txHash,
		"status":  "confirmed",
		"quote":   quote,
	})
}
