package handler

import (
	"net/http"

	"nexus-terminal/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetChains godoc
// @Summary      List supported chains
// @Description  Returns the static chain catalog in display order.
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/chains [get]
func (h *Handler) GetChains(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"chains": domain.Chains()})
}
