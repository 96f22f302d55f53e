package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/requestdata"
	"github.com/ojabooks/ojabooks-backend/internal/services"
)

type KPIHandler struct {
	log        *logger.Logger
	kpiService services.KPIService
}

func NewKPIHandler(log *logger.Logger, kpiService services.KPIService) *KPIHandler {
	return &KPIHandler{
		log:        log.With("handler", "KPIHandler"),
		kpiService: kpiService,
	}
}

// GET /api/v1/kpis
func (h *KPIHandler) Get(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	kpis, err := h.kpiService.Compute(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, kpis)
}
