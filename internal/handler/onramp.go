package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type onrampProvider struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	URL       string   `json:"url"`
	Fees      string   `json:"fees"`
	Methods   []string `json:"methods"`
	Supported []string `json:"supported_tokens"`
}

// onrampProviders is the static fiat on-ramp catalog. Widget integration
// happens client side; the server only advertises the options.
var onrampProviders = []onrampProvider{
	{
		ID:        "moonpay",
		Name:      "MoonPay",
		URL:       "https://buy.moonpay.com",
		Fees:      "1% - 4.5%",
		Methods:   []string{"card", "bank_transfer", "apple_pay", "google_pay"},
		Supported: []string{"XRP", "ETH", "SOL", "BTC", "BNB", "MATIC"},
	},
	{
		ID:        "mercuryo",
		Name:      "Mercuryo",
		URL:       "https://exchange.mercuryo.io",
		Fees:      "0.95% - 3.95%",
		Methods:   []string{"card", "bank_transfer"},
		Supported: []string{"XRP", "ETH", "SOL", "BTC", "TRX"},
	},
	{
		ID:        "transak",
		Name:      "Transak",
		URL:       "https://global.transak.com",
		Fees:      "0.99% - 5.5%",
		Methods:   []string{"card", "bank_transfer", "apple_pay"},
		Supported: []string{"XRP", "ETH", "SOL", "BTC", "BNB", "MATIC", "TRX"},
	},
}

// GetOnrampConfig godoc
// @Summary      Get fiat on-ramp configuration
// @Description  Returns the supported on-ramp providers and their capabilities.
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/onramp/config [get]
func (h *Handler) GetOnrampConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": onrampProviders})
}
