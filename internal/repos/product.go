package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

type ProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Product, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Product, error)
	Update(ctx context.Context, tx *gorm.DB, product *types.Product) error
	Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return &productRepo{db: db, log: baseLog.With("repo", "ProductRepo")}
}

func (r *productRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *productRepo) Create(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error) {
	if err := r.handle(tx).WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Product, error) {
	var results []*types.Product
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *productRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Product, error) {
	var product types.Product
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(ctx context.Context, tx *gorm.DB, product *types.Product) error {
	return r.handle(tx).WithContext(ctx).Save(product).Error
}

func (r *productRepo) Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error {
	return r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&types.Product{}).Error
}
