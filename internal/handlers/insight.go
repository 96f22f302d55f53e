package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/requestdata"
	"github.com/ojabooks/ojabooks-backend/internal/services"
)

type InsightHandler struct {
	log            *logger.Logger
	insightService services.InsightService
}

func NewInsightHandler(log *logger.Logger, insightService services.InsightService) *InsightHandler {
	return &InsightHandler{
		log:            log.With("handler", "InsightHandler"),
		insightService: insightService,
	}
}

// GET /api/v1/insights
func (h *InsightHandler) List(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	insights, err := h.insightService.Generate(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusBadGateway, err)
		return
	}
	RespondOK(c, gin.H{"insights": insights})
}
