package app

import (
	"github.com/ojabooks/ojabooks-backend/internal/handlers"
	"github.com/ojabooks/ojabooks-backend/internal/logger"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Command   *handlers.CommandHandler
	Insight   *handlers.InsightHandler
	KPI       *handlers.KPIHandler
	Dashboard *handlers.DashboardHandler
	Material  *handlers.MaterialHandler
	Product   *handlers.ProductHandler
	Sale      *handlers.SaleHandler
	Expense   *handlers.ExpenseHandler
	Idea      *handlers.IdeaHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:      handlers.NewAuthHandler(services.Auth),
		Command:   handlers.NewCommandHandler(log, services.Command),
		Insight:   handlers.NewInsightHandler(log, services.Insight),
		KPI:       handlers.NewKPIHandler(log, services.KPI),
		Dashboard: handlers.NewDashboardHandler(log, services.Dashboard),
		Material:  handlers.NewMaterialHandler(log, services.Material),
		Product:   handlers.NewProductHandler(log, services.Product),
		Sale:      handlers.NewSaleHandler(log, services.Sale),
		Expense:   handlers.NewExpenseHandler(log, services.Expense),
		Idea:      handlers.NewIdeaHandler(log, services.Idea),
	}
}
