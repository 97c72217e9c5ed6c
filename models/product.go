package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID        string    `json:"_id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Price     *float64  `json:"price"`
	Stock     *int      `json:"stock"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p *Product) Validate() error {
	switch {
	case p.Name == "":
		return requiredError("name")
	case p.Price == nil:
		return requiredError("price")
	case p.Stock == nil:
		return requiredError("stock")
	case p.Category == "":
		return requiredError("category")
	}
	return nil
}

var productFields = map[string]fieldSpec{
	"name":     {column: "name"},
	"imageUrl": {column: "image_url"},
	"price":    {column: "price"},
	"stock":    {column: "stock"},
	"category": {column: "category"},
}

func ProductUpdate(body map[string]any) (map[string]any, error) {
	return buildUpdate(body, productFields)
}
