package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/requestdata"
	"github.com/ojabooks/ojabooks-backend/internal/services"
)

type IdeaHandler struct {
	log         *logger.Logger
	ideaService services.IdeaService
}

func NewIdeaHandler(log *logger.Logger, ideaService services.IdeaService) *IdeaHandler {
	return &IdeaHandler{
		log:         log.With("handler", "IdeaHandler"),
		ideaService: ideaService,
	}
}

// GET /api/v1/ideas
func (h *IdeaHandler) List(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	ideas, err := h.ideaService.List(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, ideas)
}

// POST /api/v1/ideas
func (h *IdeaHandler) Create(c *gin.Context) {
	var req services.IdeaInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, errInvalidBody)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	idea, err := h.ideaService.Create(c.Request.Context(), userID, req)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	RespondCreated(c, idea)
}

// PUT /api/v1/ideas/:id
func (h *IdeaHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	var req services.IdeaInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, errInvalidBody)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	idea, err := h.ideaService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	RespondOK(c, idea)
}

// DELETE /api/v1/ideas/:id
func (h *IdeaHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	if err := h.ideaService.Delete(c.Request.Context(), userID, id); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	RespondMessage(c, "idea deleted", nil)
}
