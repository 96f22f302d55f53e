package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

// MaterialRepo is owner-scoped: every read and write filters by user id.
// Delete is a hard delete and performs no referential cleanup of products
// whose recipes mention the material.
type MaterialRepo interface {
	Create(ctx context.Context, tx *gorm.DB, material *types.Material) (*types.Material, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Material, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Material, error)
	Update(ctx context.Context, tx *gorm.DB, material *types.Material) error
	Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error
}

type materialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMaterialRepo(db *gorm.DB, baseLog *logger.Logger) MaterialRepo {
	return &materialRepo{db: db, log: baseLog.With("repo", "MaterialRepo")}
}

func (r *materialRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *materialRepo) Create(ctx context.Context, tx *gorm.DB, material *types.Material) (*types.Material, error) {
	if err := r.handle(tx).WithContext(ctx).Create(material).Error; err != nil {
		return nil, err
	}
	return material, nil
}

func (r *materialRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Material, error) {
	var results []*types.Material
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *materialRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Material, error) {
	var material types.Material
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&material).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// Update saves by primary key; callers verify ownership when they load the row.
func (r *materialRepo) Update(ctx context.Context, tx *gorm.DB, material *types.Material) error {
	return r.handle(tx).WithContext(ctx).Save(material).Error
}

func (r *materialRepo) Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error {
	return r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&types.Material{}).Error
}
