package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ojabooks/ojabooks-backend/internal/repos"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

func TestComputeKPIsTotals(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	materials := []*types.Material{
		{Name: "Rice", Quantity: 10, CostPrice: 900},
		{Name: "Flour", Quantity: 4, CostPrice: 200},
	}
	sales := []*types.Sale{
		{TotalAmount: 5000, CostAmount: 2000, Date: now},
		{TotalAmount: 3000, CostAmount: 1000, Date: now.AddDate(0, 0, -1)},
	}
	expenses := []*types.Expense{
		{Amount: 1500, Date: now},
	}

	kpis := computeKPIs(materials, sales, expenses, now)

	if kpis.TotalRevenue != 8000 {
		t.Fatalf("revenue: got %v", kpis.TotalRevenue)
	}
	if kpis.TotalCost != 3000 {
		t.Fatalf("cost: got %v", kpis.TotalCost)
	}
	if kpis.GrossProfit != 5000 {
		t.Fatalf("gross profit: got %v", kpis.GrossProfit)
	}
	if kpis.NetProfit != 3500 {
		t.Fatalf("net profit must equal gross profit minus expenses: got %v", kpis.NetProfit)
	}
	if kpis.NetMargin != 3500.0/8000.0 {
		t.Fatalf("net margin: got %v", kpis.NetMargin)
	}
	if kpis.InventoryValue != 9800 {
		t.Fatalf("inventory value: got %v", kpis.InventoryValue)
	}
}

func TestComputeKPIsEmpty(t *testing.T) {
	kpis := computeKPIs(nil, nil, nil, time.Now())
	if kpis.TotalRevenue != 0 || kpis.NetMargin != 0 || kpis.RevenueChangePct != 0 {
		t.Fatalf("expected zero KPIs, got %+v", kpis)
	}
	if len(kpis.RevenueTrend) != 6 {
		t.Fatalf("trend must always have 6 buckets, got %d", len(kpis.RevenueTrend))
	}
}

func TestMonthOverMonthChange(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	sales := []*types.Sale{
		{TotalAmount: 3000, Date: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{TotalAmount: 2000, Date: time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)},
	}
	got := monthOverMonthChange(sales, now)
	if got != 50 {
		t.Fatalf("expected +50%%, got %v", got)
	}
}

func TestMonthOverMonthChangeZeroPrevious(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	sales := []*types.Sale{
		{TotalAmount: 3000, Date: now},
	}
	if got := monthOverMonthChange(sales, now); got != 0 {
		t.Fatalf("expected 0 when previous month empty, got %v", got)
	}
}

func TestMonthOverMonthChangeEndOfMonth(t *testing.T) {
	// March 31 minus a naive month lands on March 3; the previous bucket
	// must still be February.
	now := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	sales := []*types.Sale{
		{TotalAmount: 1000, Date: time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)},
		{TotalAmount: 1500, Date: now},
	}
	if got := monthOverMonthChange(sales, now); got != 50 {
		t.Fatalf("expected +50%%, got %v", got)
	}
}

func TestRevenueTrendOrderAndGaps(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	sales := []*types.Sale{
		{TotalAmount: 1000, Date: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)},
		{TotalAmount: 4000, Date: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)},
	}
	trend := revenueTrend(sales, now)
	if len(trend) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(trend))
	}
	if trend[0].Month != "Jan" || trend[0].Revenue != 1000 {
		t.Fatalf("oldest bucket wrong: %+v", trend[0])
	}
	if trend[5].Month != "Jun" || trend[5].Revenue != 4000 {
		t.Fatalf("newest bucket wrong: %+v", trend[5])
	}
	for _, b := range trend[1:5] {
		if b.Revenue != 0 {
			t.Fatalf("gap month should be zero: %+v", b)
		}
	}
}

func TestKPIServiceCompute(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	materialRepo := repos.NewMaterialRepo(db, log)
	saleRepo := repos.NewSaleRepo(db, log)
	expenseRepo := repos.NewExpenseRepo(db, log)

	userID := uuid.New()
	other := uuid.New()
	ctx := context.Background()
	if _, err := saleRepo.Create(ctx, nil, &types.Sale{UserID: userID, ProductName: "Rice", Quantity: 2, TotalAmount: 2400, CostAmount: 1800}); err != nil {
		t.Fatalf("seed sale: %v", err)
	}
	if _, err := saleRepo.Create(ctx, nil, &types.Sale{UserID: other, ProductName: "Rice", Quantity: 1, TotalAmount: 99999}); err != nil {
		t.Fatalf("seed other sale: %v", err)
	}
	if _, err := expenseRepo.Create(ctx, nil, &types.Expense{UserID: userID, Description: "fuel", Amount: 200}); err != nil {
		t.Fatalf("seed expense: %v", err)
	}

	svc := NewKPIService(log, materialRepo, saleRepo, expenseRepo)
	kpis, err := svc.Compute(ctx, userID)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if kpis.TotalRevenue != 2400 {
		t.Fatalf("other users' sales leaked into revenue: %v", kpis.TotalRevenue)
	}
	if kpis.NetProfit != 400 {
		t.Fatalf("expected net profit 400, got %v", kpis.NetProfit)
	}
}

func TestKPIServiceComputeBeyondListingWindow(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	materialRepo := repos.NewMaterialRepo(db, log)
	saleRepo := repos.NewSaleRepo(db, log)
	expenseRepo := repos.NewExpenseRepo(db, log)

	userID := uuid.New()
	ctx := context.Background()
	date := time.Now().AddDate(0, 0, -30)
	for i := 0; i < 120; i++ {
		sale := &types.Sale{UserID: userID, ProductName: "Rice", Quantity: 1, TotalAmount: 100, Date: date.Add(time.Duration(i) * time.Minute)}
		if _, err := saleRepo.Create(ctx, nil, sale); err != nil {
			t.Fatalf("seed sale %d: %v", i, err)
		}
	}

	listed, err := saleRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		t.Fatalf("list sales: %v", err)
	}
	if len(listed) != 100 {
		t.Fatalf("listing window must stay at 100, got %d", len(listed))
	}

	svc := NewKPIService(log, materialRepo, saleRepo, expenseRepo)
	kpis, err := svc.Compute(ctx, userID)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if kpis.TotalRevenue != 12000 {
		t.Fatalf("totals must cover the full history, got %v", kpis.TotalRevenue)
	}
}
