package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/requestdata"
	"github.com/ojabooks/ojabooks-backend/internal/services"
)

type ExpenseHandler struct {
	log            *logger.Logger
	expenseService services.ExpenseService
}

func NewExpenseHandler(log *logger.Logger, expenseService services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		log:            log.With("handler", "ExpenseHandler"),
		expenseService: expenseService,
	}
}

// GET /api/v1/expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	expenses, err := h.expenseService.List(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, expenses)
}

// POST /api/v1/expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req services.ExpenseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, errInvalidBody)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	expense, err := h.expenseService.Create(c.Request.Context(), userID, req)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	RespondCreated(c, expense)
}

// DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	if err := h.expenseService.Delete(c.Request.Context(), userID, id); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	RespondMessage(c, "expense deleted", nil)
}
