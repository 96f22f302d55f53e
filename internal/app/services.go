package app

import (
	"gorm.io/gorm"

	"github.com/ojabooks/ojabooks-backend/internal/assistant"
	"github.com/ojabooks/ojabooks-backend/internal/cache"
	"github.com/ojabooks/ojabooks-backend/internal/clients/rediscache"
	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/platform/llm"
	"github.com/ojabooks/ojabooks-backend/internal/services"
)

type Services struct {
	Auth      services.AuthService
	Command   services.CommandService
	Insight   services.InsightService
	KPI       services.KPIService
	Dashboard services.DashboardService
	Material  services.MaterialService
	Product   services.ProductService
	Sale      services.SaleService
	Expense   services.ExpenseService
	Idea      services.IdeaService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) (Services, error) {
	log.Info("Wiring services...")

	// A missing model config is not fatal: the command pipeline falls back
	// to the regex parser, and insights report unavailability.
	aiClient, err := llm.NewClient(log)
	if err != nil {
		log.Warn("Model client unavailable, running with regex parsing only", "error", err)
		aiClient = nil
	}

	var insightCache cache.Cache
	switch cfg.InsightCacheBackend {
	case "redis":
		redisCache, rErr := rediscache.New(log)
		if rErr != nil {
			log.Warn("Redis cache unavailable, falling back to in-memory", "error", rErr)
			insightCache = cache.NewMemory()
		} else {
			insightCache = redisCache
		}
	default:
		insightCache = cache.NewMemory()
	}

	invalidator := services.NewLogInvalidator(log)
	parser := assistant.NewParser(log, aiClient)

	authService := services.NewAuthService(db, log, r.User, r.UserToken, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	commandService := services.NewCommandService(db, log, parser, r.Material, r.Product, r.Sale, r.Expense, invalidator)
	insightService := services.NewInsightService(log, aiClient, insightCache, r.Material, r.Sale, r.Product)
	kpiService := services.NewKPIService(log, r.Material, r.Sale, r.Expense)
	dashboardService := services.NewDashboardService(log, kpiService, r.Material, r.Sale, r.Product, r.Expense)
	materialService := services.NewMaterialService(log, r.Material, invalidator)
	productService := services.NewProductService(log, r.Product, r.Material, invalidator)
	saleService := services.NewSaleService(log, r.Sale, r.Product, r.Material, invalidator)
	expenseService := services.NewExpenseService(log, r.Expense, invalidator)
	ideaService := services.NewIdeaService(log, r.Idea)

	return Services{
		Auth:      authService,
		Command:   commandService,
		Insight:   insightService,
		KPI:       kpiService,
		Dashboard: dashboardService,
		Material:  materialService,
		Product:   productService,
		Sale:      saleService,
		Expense:   expenseService,
		Idea:      ideaService,
	}, nil
}
