package app

import (
	"github.com/gin-gonic/gin"

	"github.com/ojabooks/ojabooks-backend/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:      handlers.Auth,
		AuthMiddleware:   middleware.Auth,
		CommandHandler:   handlers.Command,
		InsightHandler:   handlers.Insight,
		KPIHandler:       handlers.KPI,
		DashboardHandler: handlers.Dashboard,
		MaterialHandler:  handlers.Material,
		ProductHandler:   handlers.Product,
		SaleHandler:      handlers.Sale,
		ExpenseHandler:   handlers.Expense,
		IdeaHandler:      handlers.Idea,
		AllowOrigins:     cfg.AllowOrigins,
	})
}
