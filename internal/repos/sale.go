package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

// saleListLimit caps listing reads; the dashboard only ever shows recent
// history. Aggregation goes through GetAllByUserID instead.
const saleListLimit = 100

type SaleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sale *types.Sale) (*types.Sale, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Sale, error)
	GetAllByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Sale, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Sale, error)
	Update(ctx context.Context, tx *gorm.DB, sale *types.Sale) error
	Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error
}

type saleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSaleRepo(db *gorm.DB, baseLog *logger.Logger) SaleRepo {
	return &saleRepo{db: db, log: baseLog.With("repo", "SaleRepo")}
}

func (r *saleRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *saleRepo) Create(ctx context.Context, tx *gorm.DB, sale *types.Sale) (*types.Sale, error) {
	if err := r.handle(tx).WithContext(ctx).Create(sale).Error; err != nil {
		return nil, err
	}
	return sale, nil
}

func (r *saleRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Sale, error) {
	var results []*types.Sale
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(saleListLimit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetAllByUserID returns the full owner-scoped history. Totals computed over
// a truncated window would drift from the real books, so aggregation must
// never use the capped listing read.
func (r *saleRepo) GetAllByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Sale, error) {
	var results []*types.Sale
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *saleRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Sale, error) {
	var sale types.Sale
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&sale).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// Update rewrites the record as-is. It does not re-deduct or restore
// inventory; sale edits are bookkeeping corrections only.
func (r *saleRepo) Update(ctx context.Context, tx *gorm.DB, sale *types.Sale) error {
	return r.handle(tx).WithContext(ctx).Save(sale).Error
}

func (r *saleRepo) Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error {
	return r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&types.Sale{}).Error
}
