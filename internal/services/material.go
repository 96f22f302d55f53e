package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/repos"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

type MaterialInput struct {
	Name      string  `json:"name"`
	CostPrice float64 `json:"costPrice"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
}

type MaterialService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*types.Material, error)
	Create(ctx context.Context, userID uuid.UUID, in MaterialInput) (*types.Material, error)
	Update(ctx context.Context, userID, id uuid.UUID, in MaterialInput) (*types.Material, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type materialService struct {
	log          *logger.Logger
	materialRepo repos.MaterialRepo
	invalidator  Invalidator
}

func NewMaterialService(log *logger.Logger, materialRepo repos.MaterialRepo, invalidator Invalidator) MaterialService {
	return &materialService{
		log:          log.With("service", "MaterialService"),
		materialRepo: materialRepo,
		invalidator:  invalidator,
	}
}

func (s *materialService) List(ctx context.Context, userID uuid.UUID) ([]*types.Material, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	return s.materialRepo.GetByUserID(ctx, nil, userID)
}

func (s *materialService) Create(ctx context.Context, userID uuid.UUID, in MaterialInput) (*types.Material, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("material name is required")
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = "unit"
	}
	material := &types.Material{
		UserID:    userID,
		Name:      name,
		CostPrice: clampNonNegative(in.CostPrice),
		Quantity:  clampNonNegative(in.Quantity),
		Unit:      unit,
	}
	created, err := s.materialRepo.Create(ctx, nil, material)
	if err != nil {
		return nil, fmt.Errorf("failed to create material: %w", err)
	}
	s.invalidator.Invalidate(userID, SurfaceInventory, SurfaceDashboard)
	return created, nil
}

func (s *materialService) Update(ctx context.Context, userID, id uuid.UUID, in MaterialInput) (*types.Material, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	material, err := s.materialRepo.GetByID(ctx, nil, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load material: %w", err)
	}
	if material == nil {
		return nil, fmt.Errorf("material not found")
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		material.Name = name
	}
	material.CostPrice = clampNonNegative(in.CostPrice)
	material.Quantity = clampNonNegative(in.Quantity)
	if unit := strings.TrimSpace(in.Unit); unit != "" {
		material.Unit = unit
	}
	// Any manual edit graduates a provisional record.
	material.AutoCreated = false
	if err := s.materialRepo.Update(ctx, nil, material); err != nil {
		return nil, fmt.Errorf("failed to update material: %w", err)
	}
	s.invalidator.Invalidate(userID, SurfaceInventory, SurfaceDashboard)
	return material, nil
}

func (s *materialService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := s.materialRepo.Delete(ctx, nil, userID, id); err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}
	s.invalidator.Invalidate(userID, SurfaceInventory, SurfaceDashboard)
	return nil
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
