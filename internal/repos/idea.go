package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

type IdeaRepo interface {
	Create(ctx context.Context, tx *gorm.DB, idea *types.Idea) (*types.Idea, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Idea, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Idea, error)
	Update(ctx context.Context, tx *gorm.DB, idea *types.Idea) error
	Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error
}

type ideaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIdeaRepo(db *gorm.DB, baseLog *logger.Logger) IdeaRepo {
	return &ideaRepo{db: db, log: baseLog.With("repo", "IdeaRepo")}
}

func (r *ideaRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *ideaRepo) Create(ctx context.Context, tx *gorm.DB, idea *types.Idea) (*types.Idea, error) {
	if err := r.handle(tx).WithContext(ctx).Create(idea).Error; err != nil {
		return nil, err
	}
	return idea, nil
}

func (r *ideaRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Idea, error) {
	var results []*types.Idea
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ideaRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Idea, error) {
	var idea types.Idea
	err := r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&idea).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

func (r *ideaRepo) Update(ctx context.Context, tx *gorm.DB, idea *types.Idea) error {
	return r.handle(tx).WithContext(ctx).Save(idea).Error
}

func (r *ideaRepo) Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error {
	return r.handle(tx).WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&types.Idea{}).Error
}
