package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	IdeaTypeNote     = "note"
	IdeaTypeStrategy = "strategy"
	IdeaTypeTodo     = "todo"

	IdeaStatusActive    = "active"
	IdeaStatusCompleted = "completed"
	IdeaStatusArchived  = "archived"
)

// Idea is a freeform note, strategy or todo. It sits outside the command
// pipeline and has no relation to inventory.
type Idea struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `json:"content"`
	Type      string    `gorm:"not null;default:'note'" json:"type"`
	Status    string    `gorm:"not null;default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Idea) TableName() string { return "ideas" }

func (i *Idea) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Type == "" {
		i.Type = IdeaTypeNote
	}
	if i.Status == "" {
		i.Status = IdeaStatusActive
	}
	return nil
}
