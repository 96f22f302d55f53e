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

type IdeaInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
	Status  string `json:"status"`
}

type IdeaService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*types.Idea, error)
	Create(ctx context.Context, userID uuid.UUID, in IdeaInput) (*types.Idea, error)
	Update(ctx context.Context, userID, id uuid.UUID, in IdeaInput) (*types.Idea, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type ideaService struct {
	log      *logger.Logger
	ideaRepo repos.IdeaRepo
}

func NewIdeaService(log *logger.Logger, ideaRepo repos.IdeaRepo) IdeaService {
	return &ideaService{
		log:      log.With("service", "IdeaService"),
		ideaRepo: ideaRepo,
	}
}

func validIdeaType(t string) bool {
	switch t {
	case types.IdeaTypeNote, types.IdeaTypeStrategy, types.IdeaTypeTodo:
		return true
	}
	return false
}

func validIdeaStatus(s string) bool {
	switch s {
	case types.IdeaStatusActive, types.IdeaStatusCompleted, types.IdeaStatusArchived:
		return true
	}
	return false
}

func (s *ideaService) List(ctx context.Context, userID uuid.UUID) ([]*types.Idea, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	return s.ideaRepo.GetByUserID(ctx, nil, userID)
}

func (s *ideaService) Create(ctx context.Context, userID uuid.UUID, in IdeaInput) (*types.Idea, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("idea title is required")
	}
	idea := &types.Idea{
		UserID:  userID,
		Title:   title,
		Content: in.Content,
	}
	if validIdeaType(in.Type) {
		idea.Type = in.Type
	}
	if validIdeaStatus(in.Status) {
		idea.Status = in.Status
	}
	created, err := s.ideaRepo.Create(ctx, nil, idea)
	if err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}
	return created, nil
}

func (s *ideaService) Update(ctx context.Context, userID, id uuid.UUID, in IdeaInput) (*types.Idea, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	idea, err := s.ideaRepo.GetByID(ctx, nil, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load idea: %w", err)
	}
	if idea == nil {
		return nil, fmt.Errorf("idea not found")
	}
	if title := strings.TrimSpace(in.Title); title != "" {
		idea.Title = title
	}
	if in.Content != "" {
		idea.Content = in.Content
	}
	if validIdeaType(in.Type) {
		idea.Type = in.Type
	}
	if validIdeaStatus(in.Status) {
		idea.Status = in.Status
	}
	if err := s.ideaRepo.Update(ctx, nil, idea); err != nil {
		return nil, fmt.Errorf("failed to update idea: %w", err)
	}
	return idea, nil
}

func (s *ideaService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := s.ideaRepo.Delete(ctx, nil, userID, id); err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}
	return nil
}
