package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ojabooks/ojabooks-backend/internal/assistant"
	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/repos"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

type SaleInput struct {
	ProductName   string    `json:"productName"`
	Quantity      float64   `json:"quantity"`
	TotalAmount   float64   `json:"totalAmount"`
	PaymentMethod string    `json:"paymentMethod"`
	Date          time.Time `json:"date"`
}

// SaleService records manual sales. Unlike the command pipeline, a manual
// sale never touches inventory: the caller is correcting the books, not
// reporting stock movement. Update and Delete follow the same rule.
type SaleService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*types.Sale, error)
	Create(ctx context.Context, userID uuid.UUID, in SaleInput) (*types.Sale, error)
	Update(ctx context.Context, userID, id uuid.UUID, in SaleInput) (*types.Sale, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type saleService struct {
	log          *logger.Logger
	saleRepo     repos.SaleRepo
	productRepo  repos.ProductRepo
	materialRepo repos.MaterialRepo
	invalidator  Invalidator
}

func NewSaleService(log *logger.Logger, saleRepo repos.SaleRepo, productRepo repos.ProductRepo, materialRepo repos.MaterialRepo, invalidator Invalidator) SaleService {
	return &saleService{
		log:          log.With("service", "SaleService"),
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		materialRepo: materialRepo,
		invalidator:  invalidator,
	}
}

func (s *saleService) List(ctx context.Context, userID uuid.UUID) ([]*types.Sale, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	return s.saleRepo.GetByUserID(ctx, nil, userID)
}

func (s *saleService) Create(ctx context.Context, userID uuid.UUID, in SaleInput) (*types.Sale, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	name := strings.TrimSpace(in.ProductName)
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	payment := in.PaymentMethod
	switch payment {
	case types.PaymentCash, types.PaymentCard, types.PaymentTransfer:
	default:
		payment = types.PaymentCash
	}

	products, err := s.productRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	materials, err := s.materialRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	unitCost := assistant.ResolveUnitCost(name, products, materials)

	sale := &types.Sale{
		UserID:        userID,
		ProductName:   name,
		Quantity:      quantity,
		TotalAmount:   clampNonNegative(in.TotalAmount),
		CostAmount:    quantity * unitCost,
		PaymentMethod: payment,
		Date:          in.Date,
	}
	created, err := s.saleRepo.Create(ctx, nil, sale)
	if err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}
	s.invalidator.Invalidate(userID, SurfaceSales, SurfaceDashboard)
	return created, nil
}

// Update rewrites the bookkeeping fields only. The cost snapshot is kept
// and inventory is never re-deducted or restored.
func (s *saleService) Update(ctx context.Context, userID, id uuid.UUID, in SaleInput) (*types.Sale, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	sale, err := s.saleRepo.GetByID(ctx, nil, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load sale: %w", err)
	}
	if sale == nil {
		return nil, fmt.Errorf("sale not found")
	}
	if name := strings.TrimSpace(in.ProductName); name != "" {
		sale.ProductName = name
	}
	if in.Quantity > 0 {
		sale.Quantity = in.Quantity
	}
	sale.TotalAmount = clampNonNegative(in.TotalAmount)
	switch in.PaymentMethod {
	case types.PaymentCash, types.PaymentCard, types.PaymentTransfer:
		sale.PaymentMethod = in.PaymentMethod
	}
	if !in.Date.IsZero() {
		sale.Date = in.Date
	}
	if err := s.saleRepo.Update(ctx, nil, sale); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}
	s.invalidator.Invalidate(userID, SurfaceSales, SurfaceDashboard)
	return sale, nil
}

func (s *saleService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := s.saleRepo.Delete(ctx, nil, userID, id); err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	s.invalidator.Invalidate(userID, SurfaceSales, SurfaceDashboard)
	return nil
}
