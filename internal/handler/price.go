package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetPrices godoc
// @Summary      Get current prices for the tracked basket
// @Description  Returns an atomic snapshot of USD prices and 24h changes. The source field says whether the data is live or the static fallback.
// @Tags         prices
// @Produce      json
// @Success      200  {object}  domain.PriceSnapshot
// @Router       /api/prices [get]
func (h *Handler) GetPrices(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-prices")
	defer span.End()

	c.JSON(http.StatusOK, h.priceService.GetPrices(ctx))
}

// GetPriceHistory godoc
// @Summary      Get hourly price history for a coin
// @Description  Returns an hourly USD series, oldest first. When the upstream oracle is unavailable a synthesized series is served instead.
// @Tags         prices
// @Produce      json
// @Param        coin  path   string  true   "Coin symbol (e.g., xrp, btc)"
// @Param        days  query  int     false  "Window size in days (default 7)"  default(7)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/prices/history/{coin} [get]
func (h *Handler) GetPriceHistory(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-price-history")
	defer span.End()

	coin := strings.ToLower(c.Param("coin"))
	span.SetAttributes(attribute.String("coin", coin))

	days := 7
	if d := c.Query("days"); d != "" {
		if n, err := strconv.Atoi(d); err == nil && n > 0 && n <= 365 {
			days = n
		}
	}

	history := h.historyService.GetHistory(ctx, coin, days)
	c.JSON(http.StatusOK, gin.H{
		"coin":    coin,
		"days":    days,
		"history": history,
	})
}
