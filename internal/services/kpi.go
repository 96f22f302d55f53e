package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/repos"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

// MonthRevenue is one bucket of the trailing revenue trend.
type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type KPISet struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalCost      float64 `json:"totalCost"`
	GrossProfit    float64 `json:"grossProfit"`
	TotalExpenses  float64 `json:"totalExpenses"`
	NetProfit      float64 `json:"netProfit"`
	NetMargin      float64 `json:"netMargin"`
	InventoryValue float64 `json:"inventoryValue"`

	// RevenueChangePct compares the current calendar month to the previous
	// one. Zero when the previous month had no revenue, regardless of the
	// current month (not an "undefined" signal).
	RevenueChangePct float64 `json:"revenueChangePct"`

	// RevenueTrend holds the trailing six calendar months, oldest first,
	// including months with zero sales.
	RevenueTrend []MonthRevenue `json:"revenueTrend"`
}

type KPIService interface {
	Compute(ctx context.Context, userID uuid.UUID) (*KPISet, error)
}

type kpiService struct {
	log          *logger.Logger
	materialRepo repos.MaterialRepo
	saleRepo     repos.SaleRepo
	expenseRepo  repos.ExpenseRepo
	now          func() time.Time
}

func NewKPIService(
	log *logger.Logger,
	materialRepo repos.MaterialRepo,
	saleRepo repos.SaleRepo,
	expenseRepo repos.ExpenseRepo,
) KPIService {
	return &kpiService{
		log:          log.With("service", "KPIService"),
		materialRepo: materialRepo,
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		now:          time.Now,
	}
}

// NewKPIServiceWithClock exists for tests that pin the calendar.
func NewKPIServiceWithClock(
	log *logger.Logger,
	materialRepo repos.MaterialRepo,
	saleRepo repos.SaleRepo,
	expenseRepo repos.ExpenseRepo,
	now func() time.Time,
) KPIService {
	svc := NewKPIService(log, materialRepo, saleRepo, expenseRepo).(*kpiService)
	svc.now = now
	return svc
}

// Compute fans out the three independent reads concurrently; they have no
// ordering dependency.
func (s *kpiService) Compute(ctx context.Context, userID uuid.UUID) (*KPISet, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	var (
		materials []*types.Material
		sales     []*types.Sale
		expenses  []*types.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		materials, err = s.materialRepo.GetByUserID(gctx, nil, userID)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = s.saleRepo.GetAllByUserID(gctx, nil, userID)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.expenseRepo.GetByUserID(gctx, nil, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return computeKPIs(materials, sales, expenses, s.now()), nil
}

func computeKPIs(materials []*types.Material, sales []*types.Sale, expenses []*types.Expense, now time.Time) *KPISet {
	kpis := &KPISet{}

	for _, sale := range sales {
		kpis.TotalRevenue += sale.TotalAmount
		kpis.TotalCost += sale.CostAmount
	}
	kpis.GrossProfit = kpis.TotalRevenue - kpis.TotalCost

	for _, e := range expenses {
		kpis.TotalExpenses += e.Amount
	}
	kpis.NetProfit = kpis.GrossProfit - kpis.TotalExpenses
	if kpis.TotalRevenue != 0 {
		kpis.NetMargin = kpis.NetProfit / kpis.TotalRevenue
	}

	for _, m := range materials {
		kpis.InventoryValue += m.Quantity * m.CostPrice
	}

	kpis.RevenueChangePct = monthOverMonthChange(sales, now)
	kpis.RevenueTrend = revenueTrend(sales, now)
	return kpis
}

func monthKey(t time.Time) (int, time.Month) {
	return t.Year(), t.Month()
}

// firstOfMonth normalizes before month arithmetic so that e.g. March 31
// minus one month lands in February, not on March 3.
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func monthOverMonthChange(sales []*types.Sale, now time.Time) float64 {
	curYear, curMonth := monthKey(now)
	prevYear, prevMonth := monthKey(firstOfMonth(now).AddDate(0, -1, 0))

	var current, previous float64
	for _, sale := range sales {
		y, m := monthKey(sale.Date)
		switch {
		case y == curYear && m == curMonth:
			current += sale.TotalAmount
		case y == prevYear && m == prevMonth:
			previous += sale.TotalAmount
		}
	}
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func revenueTrend(sales []*types.Sale, now time.Time) []MonthRevenue {
	trend := make([]MonthRevenue, 0, 6)
	for i := 5; i >= 0; i-- {
		bucket := firstOfMonth(now).AddDate(0, -i, 0)
		y, m := monthKey(bucket)
		var total float64
		for _, sale := range sales {
			sy, sm := monthKey(sale.Date)
			if sy == y && sm == m {
				total += sale.TotalAmount
			}
		}
		trend = append(trend, MonthRevenue{Month: bucket.Format("Jan"), Revenue: total})
	}
	return trend
}
