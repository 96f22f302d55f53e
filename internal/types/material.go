package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Material is a raw, stocked input with a unit cost. Quantity is clamped at
// zero on depletion; oversold stock is capped, not rejected.
type Material struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	Name      string    `gorm:"not null" json:"name"`
	CostPrice float64   `gorm:"column:cost_price;not null;default:0" json:"costPrice"`
	Quantity  float64   `gorm:"not null;default:0" json:"quantity"`
	Unit      string    `gorm:"not null;default:'unit'" json:"unit"`
	// AutoCreated marks a provisional record created from a parsed recipe
	// ingredient the user has not declared yet (quantity 0, cost 0). The UI
	// surfaces these for completion.
	AutoCreated bool      `gorm:"column:auto_created;not null;default:false" json:"autoCreated"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

func (Material) TableName() string { return "materials" }

func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
