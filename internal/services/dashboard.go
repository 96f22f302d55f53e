package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/repos"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

// DashboardSnapshot is everything the landing screen renders in one call.
type DashboardSnapshot struct {
	KPIs      *KPISet           `json:"kpis"`
	Materials []*types.Material `json:"materials"`
	Sales     []*types.Sale     `json:"sales"`
	Products  []*types.Product  `json:"products"`
	Expenses  []*types.Expense  `json:"expenses"`
}

type DashboardService interface {
	Snapshot(ctx context.Context, userID uuid.UUID) (*DashboardSnapshot, error)
}

type dashboardService struct {
	log          *logger.Logger
	kpiService   KPIService
	materialRepo repos.MaterialRepo
	saleRepo     repos.SaleRepo
	productRepo  repos.ProductRepo
	expenseRepo  repos.ExpenseRepo
}

func NewDashboardService(
	log *logger.Logger,
	kpiService KPIService,
	materialRepo repos.MaterialRepo,
	saleRepo repos.SaleRepo,
	productRepo repos.ProductRepo,
	expenseRepo repos.ExpenseRepo,
) DashboardService {
	return &dashboardService{
		log:          log.With("service", "DashboardService"),
		kpiService:   kpiService,
		materialRepo: materialRepo,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		expenseRepo:  expenseRepo,
	}
}

func (s *dashboardService) Snapshot(ctx context.Context, userID uuid.UUID) (*DashboardSnapshot, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	snapshot := &DashboardSnapshot{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		kpis, err := s.kpiService.Compute(gctx, userID)
		if err != nil {
			return err
		}
		snapshot.KPIs = kpis
		return nil
	})
	g.Go(func() error {
		materials, err := s.materialRepo.GetByUserID(gctx, nil, userID)
		if err != nil {
			return err
		}
		snapshot.Materials = materials
		return nil
	})
	g.Go(func() error {
		sales, err := s.saleRepo.GetByUserID(gctx, nil, userID)
		if err != nil {
			return err
		}
		snapshot.Sales = sales
		return nil
	})
	g.Go(func() error {
		products, err := s.productRepo.GetByUserID(gctx, nil, userID)
		if err != nil {
			return err
		}
		snapshot.Products = products
		return nil
	})
	g.Go(func() error {
		expenses, err := s.expenseRepo.GetByUserID(gctx, nil, userID)
		if err != nil {
			return err
		}
		snapshot.Expenses = expenses
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshot, nil
}
