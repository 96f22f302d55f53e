package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ojabooks/ojabooks-backend/internal/repos"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

func TestManualSaleUpdateKeepsCostAndInventory(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	materialRepo := repos.NewMaterialRepo(db, log)
	productRepo := repos.NewProductRepo(db, log)
	saleRepo := repos.NewSaleRepo(db, log)
	svc := NewSaleService(log, saleRepo, productRepo, materialRepo, NewLogInvalidator(log))

	userID := uuid.New()
	ctx := context.Background()
	material := &types.Material{UserID: userID, Name: "Flour", CostPrice: 200, Quantity: 10, Unit: "kg"}
	if _, err := materialRepo.Create(ctx, nil, material); err != nil {
		t.Fatalf("seed material: %v", err)
	}
	product := &types.Product{UserID: userID, Name: "Bread", SellingPrice: 500}
	if err := product.SetRecipe([]types.RecipeLine{{MaterialID: material.ID, Quantity: 2}}); err != nil {
		t.Fatalf("set recipe: %v", err)
	}
	if _, err := productRepo.Create(ctx, nil, product); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	sale, err := svc.Create(ctx, userID, SaleInput{ProductName: "Bread", Quantity: 2, TotalAmount: 1000, Date: time.Now()})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if sale.CostAmount != 800 {
		t.Fatalf("expected cost snapshot 800, got %v", sale.CostAmount)
	}

	updated, err := svc.Update(ctx, userID, sale.ID, SaleInput{Quantity: 3, TotalAmount: 1500, PaymentMethod: types.PaymentTransfer})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Quantity != 3 || updated.TotalAmount != 1500 || updated.PaymentMethod != types.PaymentTransfer {
		t.Fatalf("fields not rewritten: %+v", updated)
	}
	if updated.ProductName != "Bread" {
		t.Fatalf("omitted name must survive, got %q", updated.ProductName)
	}
	if updated.CostAmount != 800 {
		t.Fatalf("cost snapshot must not be recomputed, got %v", updated.CostAmount)
	}

	after, err := materialRepo.GetByID(ctx, nil, userID, material.ID)
	if err != nil {
		t.Fatalf("load material: %v", err)
	}
	if after.Quantity != 10 {
		t.Fatalf("manual sale edits must never touch inventory, got %v", after.Quantity)
	}
}

func TestManualSaleUpdateScopedToOwner(t *testing.T) {
	db := testDB(t)
	log := testLogger(t)
	materialRepo := repos.NewMaterialRepo(db, log)
	productRepo := repos.NewProductRepo(db, log)
	saleRepo := repos.NewSaleRepo(db, log)
	svc := NewSaleService(log, saleRepo, productRepo, materialRepo, NewLogInvalidator(log))

	owner := uuid.New()
	ctx := context.Background()
	sale, err := svc.Create(ctx, owner, SaleInput{ProductName: "Chin Chin", Quantity: 1, TotalAmount: 300})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Update(ctx, uuid.New(), sale.ID, SaleInput{TotalAmount: 1}); err == nil {
		t.Fatalf("expected another user's update to fail")
	}
}
