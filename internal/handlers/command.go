package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojabooks/ojabooks-backend/internal/assistant"
	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/requestdata"
	"github.com/ojabooks/ojabooks-backend/internal/services"
)

type CommandHandler struct {
	log            *logger.Logger
	commandService services.CommandService
}

func NewCommandHandler(log *logger.Logger, commandService services.CommandService) *CommandHandler {
	return &CommandHandler{
		log:            log.With("handler", "CommandHandler"),
		commandService: commandService,
	}
}

// POST /api/v1/command
func (h *CommandHandler) Execute(c *gin.Context) {
	var req struct {
		Command string `json:"command"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, errInvalidBody)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	result, err := h.commandService.Execute(c.Request.Context(), userID, req.Command)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrNoMatch):
			c.JSON(http.StatusUnprocessableEntity, Envelope{
				Success: false,
				Message: assistant.ParseSuggestion,
				Error:   err.Error(),
			})
		case errors.Is(err, services.ErrExecutionFailed):
			RespondError(c, http.StatusConflict, err)
		case errors.Is(err, services.ErrUnauthorized):
			RespondError(c, http.StatusUnauthorized, err)
		default:
			RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}
	RespondMessage(c, result.Message, gin.H{"actions": result.Actions})
}
