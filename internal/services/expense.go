package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/repos"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

type ExpenseInput struct {
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
}

type ExpenseService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*types.Expense, error)
	Create(ctx context.Context, userID uuid.UUID, in ExpenseInput) (*types.Expense, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type expenseService struct {
	log         *logger.Logger
	expenseRepo repos.ExpenseRepo
	invalidator Invalidator
}

func NewExpenseService(log *logger.Logger, expenseRepo repos.ExpenseRepo, invalidator Invalidator) ExpenseService {
	return &expenseService{
		log:         log.With("service", "ExpenseService"),
		expenseRepo: expenseRepo,
		invalidator: invalidator,
	}
}

func (s *expenseService) List(ctx context.Context, userID uuid.UUID) ([]*types.Expense, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	return s.expenseRepo.GetByUserID(ctx, nil, userID)
}

func (s *expenseService) Create(ctx context.Context, userID uuid.UUID, in ExpenseInput) (*types.Expense, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, fmt.Errorf("expense description is required")
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("expense amount must be positive")
	}
	expense := &types.Expense{
		UserID:      userID,
		Description: description,
		Amount:      in.Amount,
		Category:    strings.TrimSpace(in.Category),
		Date:        in.Date,
	}
	created, err := s.expenseRepo.Create(ctx, nil, expense)
	if err != nil {
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}
	s.invalidator.Invalidate(userID, SurfaceDashboard)
	return created, nil
}

func (s *expenseService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := s.expenseRepo.Delete(ctx, nil, userID, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	s.invalidator.Invalidate(userID, SurfaceDashboard)
	return nil
}
