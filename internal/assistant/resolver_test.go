package assistant

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ojabooks/ojabooks-backend/internal/types"
)

func material(name string, cost float64) *types.Material {
	return &types.Material{ID: uuid.New(), Name: name, CostPrice: cost}
}

func TestFindMaterialExactBeatsFuzzy(t *testing.T) {
	materials := []*types.Material{
		material("Rice Flour", 300),
		material("Rice", 900),
	}
	got := FindMaterial("rice", materials)
	if got == nil || got.Name != "Rice" {
		t.Fatalf("expected exact match Rice, got %+v", got)
	}
}

func TestFindMaterialPluralTrim(t *testing.T) {
	materials := []*types.Material{material("Egg", 50)}
	got := FindMaterial("eggs", materials)
	if got == nil || got.Name != "Egg" {
		t.Fatalf("expected Egg via plural trim, got %+v", got)
	}
}

func TestFindMaterialSubstring(t *testing.T) {
	materials := []*types.Material{material("Rice", 900)}
	got := FindMaterial("bag of rice", materials)
	if got == nil || got.Name != "Rice" {
		t.Fatalf("expected Rice via substring, got %+v", got)
	}
}

func TestFindMaterialNoMatch(t *testing.T) {
	materials := []*types.Material{material("Rice", 900)}
	if got := FindMaterial("cement", materials); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestRecipeCostSkipsUnknownMaterial(t *testing.T) {
	flour := material("Flour", 200)
	product := &types.Product{Name: "Meatpie", SellingPrice: 500}
	if err := product.SetRecipe([]types.RecipeLine{
		{MaterialID: flour.ID, Quantity: 0.5},
		{MaterialID: uuid.New(), Quantity: 2},
	}); err != nil {
		t.Fatalf("SetRecipe failed: %v", err)
	}

	got := RecipeCost(product, []*types.Material{flour})
	if got != 100 {
		t.Fatalf("expected unknown line to contribute zero, got %v", got)
	}
}

func TestResolveUnitCostRecipeWinsOverFlat(t *testing.T) {
	flour := material("Flour", 200)
	product := &types.Product{Name: "Meatpie", CostPrice: 999}
	if err := product.SetRecipe([]types.RecipeLine{{MaterialID: flour.ID, Quantity: 1}}); err != nil {
		t.Fatalf("SetRecipe failed: %v", err)
	}

	got := ResolveUnitCost("Meatpie", []*types.Product{product}, []*types.Material{flour})
	if got != 200 {
		t.Fatalf("expected recipe cost 200, got %v", got)
	}
}

func TestResolveUnitCostFlatProduct(t *testing.T) {
	product := &types.Product{Name: "Coke", CostPrice: 150}
	got := ResolveUnitCost("coke", []*types.Product{product}, nil)
	if got != 150 {
		t.Fatalf("expected flat cost 150, got %v", got)
	}
}

func TestResolveUnitCostDirectMaterial(t *testing.T) {
	rice := material("Rice", 900)
	got := ResolveUnitCost("rice", nil, []*types.Material{rice})
	if got != 900 {
		t.Fatalf("expected material cost 900, got %v", got)
	}
}

func TestResolveUnitCostUnknownIsZero(t *testing.T) {
	if got := ResolveUnitCost("mystery", nil, nil); got != 0 {
		t.Fatalf("expected zero, got %v", got)
	}
}

func TestGrossProfit(t *testing.T) {
	flour := material("Flour", 200)
	product := &types.Product{Name: "Meatpie", SellingPrice: 500}
	if err := product.SetRecipe([]types.RecipeLine{{MaterialID: flour.ID, Quantity: 1}}); err != nil {
		t.Fatalf("SetRecipe failed: %v", err)
	}
	if got := GrossProfit(product, []*types.Material{flour}); got != 300 {
		t.Fatalf("expected gross profit 300, got %v", got)
	}
}
