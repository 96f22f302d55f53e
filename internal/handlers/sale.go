package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/requestdata"
	"github.com/ojabooks/ojabooks-backend/internal/services"
)

type SaleHandler struct {
	log         *logger.Logger
	saleService services.SaleService
}

func NewSaleHandler(log *logger.Logger, saleService services.SaleService) *SaleHandler {
	return &SaleHandler{
		log:         log.With("handler", "SaleHandler"),
		saleService: saleService,
	}
}

// GET /api/v1/sales
func (h *SaleHandler) List(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	sales, err := h.saleService.List(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, sales)
}

// POST /api/v1/sales
func (h *SaleHandler) Create(c *gin.Context) {
	var req services.SaleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, errInvalidBody)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	sale, err := h.saleService.Create(c.Request.Context(), userID, req)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	RespondCreated(c, sale)
}

// PUT /api/v1/sales/:id
func (h *SaleHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	var req services.SaleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, errInvalidBody)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	sale, err := h.saleService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	RespondOK(c, sale)
}

// DELETE /api/v1/sales/:id
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	if err := h.saleService.Delete(c.Request.Context(), userID, id); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	RespondMessage(c, "sale deleted", nil)
}
