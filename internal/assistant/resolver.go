package assistant

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ojabooks/ojabooks-backend/internal/types"
)

// Name resolution for products and materials. Exact case-insensitive match is
// always preferred; the fuzzier fallbacks exist because commands arrive as
// free text ("bag of rice" vs "Rice").

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FindProduct returns the product whose name matches exactly
// (case-insensitive), or nil.
func FindProduct(name string, products []*types.Product) *types.Product {
	want := normalizeName(name)
	if want == "" {
		return nil
	}
	for _, p := range products {
		if normalizeName(p.Name) == want {
			return p
		}
	}
	return nil
}

// FindMaterial resolves a material by name: exact case-insensitive match
// first, then a singular/plural trim, then substring in either direction.
func FindMaterial(name string, materials []*types.Material) *types.Material {
	want := normalizeName(name)
	if want == "" {
		return nil
	}
	for _, m := range materials {
		if normalizeName(m.Name) == want {
			return m
		}
	}
	singular := strings.TrimSuffix(want, "s")
	for _, m := range materials {
		if strings.TrimSuffix(normalizeName(m.Name), "s") == singular {
			return m
		}
	}
	for _, m := range materials {
		have := normalizeName(m.Name)
		if strings.Contains(want, have) || strings.Contains(have, want) {
			return m
		}
	}
	return nil
}

func materialByID(id uuid.UUID, materials []*types.Material) *types.Material {
	for _, m := range materials {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// RecipeCost sums costPrice x quantity over the product's recipe lines. A
// recipe line whose material id is unknown contributes zero rather than
// failing the whole computation.
func RecipeCost(product *types.Product, materials []*types.Material) float64 {
	var total float64
	for _, line := range product.Recipe() {
		m := materialByID(line.MaterialID, materials)
		if m == nil {
			continue
		}
		total += m.CostPrice * line.Quantity
	}
	return total
}

// ResolveUnitCost computes the cost of one unit of the named product or
// material. Recipe cost wins over the flat cost price when a recipe exists;
// a direct material match is the last resort; an unmatched name costs zero.
func ResolveUnitCost(name string, products []*types.Product, materials []*types.Material) float64 {
	if p := FindProduct(name, products); p != nil {
		if len(p.Recipe()) > 0 {
			return RecipeCost(p, materials)
		}
		return p.CostPrice
	}
	if m := FindMaterial(name, materials); m != nil {
		return m.CostPrice
	}
	return 0
}

// GrossProfit is the per-unit margin exposed in product listings.
func GrossProfit(product *types.Product, materials []*types.Material) float64 {
	unitCost := product.CostPrice
	if len(product.Recipe()) > 0 {
		unitCost = RecipeCost(product, materials)
	}
	return product.SellingPrice - unitCost
}
