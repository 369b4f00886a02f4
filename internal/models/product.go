// internal/models/product.go
package models

import (
	"time"
)

type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Brand       string    `json:"brand" gorm:"size:100;not null"`
	Flavor      string    `json:"flavor" gorm:"size:100;not null"`
	Description *string   `json:"description"`
	Image       []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Barcodes []Barcode `json:"barcodes,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Ratings  []Rating  `json:"ratings,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// AverageRating is the arithmetic mean of the product's rating scores,
// nil when it has none. Computed on read, never persisted.
func (p *Product) AverageRating() *float64 {
	return AverageRating(p.Ratings)
}
