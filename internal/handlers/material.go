package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/requestdata"
	"github.com/ojabooks/ojabooks-backend/internal/services"
)

type MaterialHandler struct {
	log             *logger.Logger
	materialService services.MaterialService
}

func NewMaterialHandler(log *logger.Logger, materialService services.MaterialService) *MaterialHandler {
	return &MaterialHandler{
		log:             log.With("handler", "MaterialHandler"),
		materialService: materialService,
	}
}

func pathID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id")
	}
	return id, nil
}

// GET /api/v1/materials
func (h *MaterialHandler) List(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	materials, err := h.materialService.List(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, materials)
}

// POST /api/v1/materials
func (h *MaterialHandler) Create(c *gin.Context) {
	var req services.MaterialInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, errInvalidBody)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	material, err := h.materialService.Create(c.Request.Context(), userID, req)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	RespondCreated(c, material)
}

// PUT /api/v1/materials/:id
func (h *MaterialHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	var req services.MaterialInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, errInvalidBody)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	material, err := h.materialService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	RespondOK(c, material)
}

// DELETE /api/v1/materials/:id
func (h *MaterialHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	if err := h.materialService.Delete(c.Request.Context(), userID, id); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	RespondMessage(c, "material deleted", nil)
}
