package handler

import (
	"net/http"
	"strconv"

	"nexus-terminal/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetTransactions godoc
// @Summary      List a wallet's transactions
// @Description  Returns the wallet's recorded transactions, newest first.
// @Tags         transactions
// @Produce      json
// @Param        wallet_id  path   string  true   "Wallet identifier"
// @Param        limit      query  int     false  "Maximum rows (default 100)"  default(100)
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]string
// @Router       /api/transactions/{wallet_id} [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-transactions")
	defer span.End()

	walletID := c.Param("wallet_id")
	span.SetAttributes(attribute.String("wallet_id", walletID))

	if h.transactions == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "transaction store not configured"})
		return
	}

	limit := 100
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	txs, err := h.transactions.ListByWallet(ctx, walletID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if txs == nil {
		txs = []*domain.TransactionRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}
