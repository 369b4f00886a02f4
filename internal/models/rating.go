// internal/models/rating.go
package models

import (
	"time"
)

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

type Rating struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	ProductID           uint      `json:"product_id" gorm:"not null;index"`
	Score               int       `json:"score" gorm:"not null"`
	Comment             *string   `json:"comment"`
	PurchaseLocation    *string   `json:"purchase_location"`
	ConsumptionLocation *string   `json:"consumption_location"`
	ConsumptionMethod   *string   `json:"consumption_method"`
	CreatedAt           time.Time `json:"created_at"`
}

// AverageRating returns the exact arithmetic mean of the scores, or nil
// for an empty list.
func AverageRating(ratings []Rating) *float64 {
	if len(ratings) == 0 {
		return nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}

	avg := float64(sum) / float64(len(ratings))
	return &avg
}
