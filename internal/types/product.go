package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RecipeLine is one ingredient of a product's recipe: the material consumed
// and how much of it goes into a single unit of the product.
type RecipeLine struct {
	MaterialID uuid.UUID `json:"materialId"`
	Quantity   float64   `json:"quantity"`
}

// Product is a sellable item. An empty Materials list means a retail item
// priced by the flat CostPrice; a non-empty list means the effective unit
// cost is the recipe cost and CostPrice is ignored.
type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;index;not null" json:"userId"`
	Name         string         `gorm:"not null" json:"name"`
	SellingPrice float64        `gorm:"column:selling_price;not null;default:0" json:"sellingPrice"`
	CostPrice    float64        `gorm:"column:cost_price;not null;default:0" json:"costPrice"`
	Materials    datatypes.JSON `gorm:"type:jsonb" json:"materials"`
	CreatedAt    time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"not null" json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Recipe decodes the Materials column. A nil or empty column decodes to an
// empty slice.
func (p *Product) Recipe() []RecipeLine {
	if len(p.Materials) == 0 {
		return nil
	}
	var lines []RecipeLine
	if err := json.Unmarshal(p.Materials, &lines); err != nil {
		return nil
	}
	return lines
}

// SetRecipe encodes lines into the Materials column.
func (p *Product) SetRecipe(lines []RecipeLine) error {
	if len(lines) == 0 {
		p.Materials = datatypes.JSON([]byte("[]"))
		return nil
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	p.Materials = datatypes.JSON(raw)
	return nil
}
