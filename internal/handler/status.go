package handler

import (
	"net/http"
	"time"

	"nexus-terminal/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type statusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

// CreateStatusCheck godoc
// @Summary      Record a client liveness ping
// @Tags         status
// @Accept       json
// @Produce      json
// @Param        request  body  statusCheckRequest  true  "Client name"
// @Success      200  {object}  domain.StatusCheck
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/status [post]
func (h *Handler) CreateStatusCheck(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.create-status-check")
	defer span.End()

	var req statusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.statusChecks == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "status store not configured"})
		return
	}

	check := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := h.statusChecks.Insert(ctx, check); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, check)
}

// GetStatusChecks godoc
// @Summary      List recent client liveness pings
// @Tags         status
// @Produce      json
// @Success      200  {array}  domain.StatusCheck
// @Failure      503  {object}  map[string]string
// @Router       /api/status [get]
func (h *Handler) GetStatusChecks(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-status-checks")
	defer span.End()

	if h.statusChecks == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "status store not configured"})
		return
	}

	checks, err := h.statusChecks.List(ctx, 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if checks == nil {
		checks = []*domain.StatusCheck{}
	}

	c.JSON(http.StatusOK, checks)
}
