package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentCash     = "Cash"
	PaymentCard     = "Card"
	PaymentTransfer = "Transfer"
)

// Sale is a transaction record. ProductName is a denormalized string, not a
// foreign key, so sale history survives product renames and deletions.
// CostAmount is the unit cost at the time of sale multiplied by quantity,
// snapshotted so later price edits never rewrite history.
type Sale struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	ProductName   string    `gorm:"column:product_name;not null" json:"productName"`
	Quantity      float64   `gorm:"not null;default:1" json:"quantity"`
	TotalAmount   float64   `gorm:"column:total_amount;not null;default:0" json:"totalAmount"`
	CostAmount    float64   `gorm:"column:cost_amount;not null;default:0" json:"costAmount"`
	PaymentMethod string    `gorm:"column:payment_method;not null;default:'Cash'" json:"paymentMethod"`
	Date          time.Time `gorm:"not null;index" json:"date"`
	CreatedAt     time.Time `gorm:"not null" json:"createdAt"`
}

func (Sale) TableName() string { return "sales" }

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Date.IsZero() {
		s.Date = time.Now()
	}
	return nil
}
