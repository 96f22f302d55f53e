package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

type ExpenseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, expense *types.Expense) (*types.Expense, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Expense, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Expense, error)
	Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error
}

type expenseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExpenseRepo(db *gorm.DB, baseLog *logger.Logger) ExpenseRepo {
	return &expenseRepo{db: db, log: baseLog.With("repo", "ExpenseRepo")}
}

func (r *expenseRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *expenseRepo) Create(ctx context.Context, tx *gorm.DB, expense *types.Expense) (*types.Expense, error) {
	if err := r.handle(tx).WithContext(ctx).Create(expense).Error; err != nil {
		return nil, err
	}
	return expense, nil
}

func (r *expenseRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Expense, error) {
	var results []*types.Expense
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *expenseRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Expense, error) {
	var expense types.Expense
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&expense).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepo) Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error {
	return r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&types.Expense{}).Error
}
