package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/requestdata"
	"github.com/ojabooks/ojabooks-backend/internal/services"
)

type DashboardHandler struct {
	log              *logger.Logger
	dashboardService services.DashboardService
}

func NewDashboardHandler(log *logger.Logger, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		log:              log.With("handler", "DashboardHandler"),
		dashboardService: dashboardService,
	}
}

// GET /api/v1/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	snapshot, err := h.dashboardService.Snapshot(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, snapshot)
}
