package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type balanceRequest struct {
	Chain   string `json:"chain" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type allBalancesRequest struct {
	Addresses map[string]string `json:"addresses" binding:"required"`
}

// GetBalance godoc
// @Summary      Get a native balance on one chain
// @Description  Queries the chain's public RPC and returns the balance in major units. Upstream failures come back as a zero balance with an error field, not an HTTP error.
// @Tags         balances
// @Accept       json
// @Produce      json
// @Param        request  body  balanceRequest  true  "Chain id and address"
// @Success      200  {object}  domain.BalanceResult
// @Failure      400  {object}  map[string]string
// @Router       /api/balance [post]
func (h *Handler) GetBalance(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-balance")
	defer span.End()

	var req balanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	span.SetAttributes(attribute.String("chain", req.Chain))

	c.JSON(http.StatusOK, h.balanceService.GetBalance(ctx, req.Chain, req.Address))
}

// GetAllBalances godoc
// @Summary      Get balances across all chains of a wallet
// @Description  Fans out to every chain with a non-empty address concurrently. Each chain resolves independently; a failing chain yields a zero balance with an error field.
// @Tags         balances
// @Accept       json
// @Produce      json
// @Param        request  body  allBalancesRequest  true  "Map of chain id to address"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/balances/all [post]
func (h *Handler) GetAllBalances(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-all-balances")
	defer span.End()

	var req allBalancesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	span.SetAttributes(attribute.Int("chains", len(req.Addresses)))

	balances := h.balanceService.AggregateBalances(ctx, req.Addresses)
	c.JSON(http.StatusOK, gin.H{"balances": balances})
}
