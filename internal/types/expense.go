package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Expense struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	Description string    `gorm:"not null" json:"description"`
	Amount      float64   `gorm:"not null;default:0" json:"amount"`
	Category    string    `gorm:"not null;default:'General'" json:"category"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
}

func (Expense) TableName() string { return "expenses" }

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	if e.Category == "" {
		e.Category = "General"
	}
	return nil
}
