package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ojabooks/ojabooks-backend/internal/handlers"
	"github.com/ojabooks/ojabooks-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler      *handlers.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleware
	CommandHandler   *handlers.CommandHandler
	InsightHandler   *handlers.InsightHandler
	KPIHandler       *handlers.KPIHandler
	DashboardHandler *handlers.DashboardHandler
	MaterialHandler  *handlers.MaterialHandler
	ProductHandler   *handlers.ProductHandler
	SaleHandler      *handlers.SaleHandler
	ExpenseHandler   *handlers.ExpenseHandler
	IdeaHandler      *handlers.IdeaHandler
	AllowOrigins     []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api/v1")
	{
		api.POST("/auth/register", cfg.AuthHandler.Register)
		api.POST("/auth/login", cfg.AuthHandler.Login)
		api.POST("/auth/refresh", cfg.AuthHandler.Refresh)
	}

	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	protected.POST("/auth/logout", cfg.AuthHandler.Logout)

	protected.POST("/command", cfg.CommandHandler.Execute)
	protected.GET("/insights", cfg.InsightHandler.List)
	protected.GET("/kpis", cfg.KPIHandler.Get)
	protected.GET("/dashboard", cfg.DashboardHandler.Get)

	protected.GET("/materials", cfg.MaterialHandler.List)
	protected.POST("/materials", cfg.MaterialHandler.Create)
	protected.PUT("/materials/:id", cfg.MaterialHandler.Update)
	protected.DELETE("/materials/:id", cfg.MaterialHandler.Delete)

	protected.GET("/products", cfg.ProductHandler.List)
	protected.POST("/products", cfg.ProductHandler.Create)
	protected.PUT("/products/:id", cfg.ProductHandler.Update)
	protected.DELETE("/products/:id", cfg.ProductHandler.Delete)

	protected.GET("/sales", cfg.SaleHandler.List)
	protected.POST("/sales", cfg.SaleHandler.Create)
	protected.PUT("/sales/:id", cfg.SaleHandler.Update)
	protected.DELETE("/sales/:id", cfg.SaleHandler.Delete)

	protected.GET("/expenses", cfg.ExpenseHandler.List)
	protected.POST("/expenses", cfg.ExpenseHandler.Create)
	protected.DELETE("/expenses/:id", cfg.ExpenseHandler.Delete)

	protected.GET("/ideas", cfg.IdeaHandler.List)
	protected.POST("/ideas", cfg.IdeaHandler.Create)
	protected.PUT("/ideas/:id", cfg.IdeaHandler.Update)
	protected.DELETE("/ideas/:id", cfg.IdeaHandler.Delete)

	return router
}
