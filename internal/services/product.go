package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ojabooks/ojabooks-backend/internal/assistant"
	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/repos"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

type ProductInput struct {
	Name         string             `json:"name"`
	SellingPrice float64            `json:"sellingPrice"`
	CostPrice    float64            `json:"costPrice"`
	Recipe       []types.RecipeLine `json:"recipe"`
}

// ProductView decorates a product with its effective unit cost and gross
// profit, both derived from the current recipe and material prices.
type ProductView struct {
	*types.Product
	UnitCost    float64 `json:"unitCost"`
	GrossProfit float64 `json:"grossProfit"`
}

type ProductService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*ProductView, error)
	Create(ctx context.Context, userID uuid.UUID, in ProductInput) (*types.Product, error)
	Update(ctx context.Context, userID, id uuid.UUID, in ProductInput) (*types.Product, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type productService struct {
	log          *logger.Logger
	productRepo  repos.ProductRepo
	materialRepo repos.MaterialRepo
	invalidator  Invalidator
}

func NewProductService(log *logger.Logger, productRepo repos.ProductRepo, materialRepo repos.MaterialRepo, invalidator Invalidator) ProductService {
	return &productService{
		log:          log.With("service", "ProductService"),
		productRepo:  productRepo,
		materialRepo: materialRepo,
		invalidator:  invalidator,
	}
}

func (s *productService) List(ctx context.Context, userID uuid.UUID) ([]*ProductView, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	products, err := s.productRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	materials, err := s.materialRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	views := make([]*ProductView, 0, len(products))
	for _, p := range products {
		unitCost := assistant.ResolveUnitCost(p.Name, []*types.Product{p}, materials)
		views = append(views, &ProductView{
			Product:     p,
			UnitCost:    unitCost,
			GrossProfit: p.SellingPrice - unitCost,
		})
	}
	return views, nil
}

func (s *productService) Create(ctx context.Context, userID uuid.UUID, in ProductInput) (*types.Product, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	product := &types.Product{
		UserID:       userID,
		Name:         name,
		SellingPrice: clampNonNegative(in.SellingPrice),
		CostPrice:    clampNonNegative(in.CostPrice),
	}
	if err := product.SetRecipe(in.Recipe); err != nil {
		return nil, fmt.Errorf("failed to encode recipe: %w", err)
	}
	created, err := s.productRepo.Create(ctx, nil, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.invalidator.Invalidate(userID, SurfaceProducts, SurfaceDashboard)
	return created, nil
}

func (s *productService) Update(ctx context.Context, userID, id uuid.UUID, in ProductInput) (*types.Product, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	product, err := s.productRepo.GetByID(ctx, nil, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		product.Name = name
	}
	product.SellingPrice = clampNonNegative(in.SellingPrice)
	product.CostPrice = clampNonNegative(in.CostPrice)
	if in.Recipe != nil {
		if err := product.SetRecipe(in.Recipe); err != nil {
			return nil, fmt.Errorf("failed to encode recipe: %w", err)
		}
	}
	if err := s.productRepo.Update(ctx, nil, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	s.invalidator.Invalidate(userID, SurfaceProducts, SurfaceDashboard)
	return product, nil
}

func (s *productService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := s.productRepo.Delete(ctx, nil, userID, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.invalidator.Invalidate(userID, SurfaceProducts, SurfaceDashboard)
	return nil
}
