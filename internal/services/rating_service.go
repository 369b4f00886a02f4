// internal/services/rating_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ciderlog/cider-backend/internal/models"
)

type RatingService struct {
	db *gorm.DB
}

type CreateRatingRequest struct {
	Score               int     `json:"score"`
	Comment             *string `json:"comment"`
	PurchaseLocation    *string `json:"purchase_location"`
	ConsumptionLocation *string `json:"consumption_location"`
	ConsumptionMethod   *string `json:"consumption_method"`
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

// CreateRating records a score for an existing product. Scores outside
// [1,5] are rejected before anything is persisted.
func (s *RatingService) CreateRating(productID uint, req *CreateRatingRequest) (*models.Rating, error) {
	if req.Score < models.MinRatingScore || req.Score > models.MaxRatingScore {
		return nil, NewValidationError("Invalid rating score. Must be between 1 and 5.")
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	rating := &models.Rating{
		ProductID:           product.ID,
		Score:               req.Score,
		Comment:             req.Comment,
		PurchaseLocation:    req.PurchaseLocation,
		ConsumptionLocation: req.ConsumptionLocation,
		ConsumptionMethod:   req.ConsumptionMethod,
	}
	if err := s.db.Create(rating).Error; err != nil {
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"rating_id":  rating.ID,
		"product_id": product.ID,
		"score":      rating.Score,
	}).Info("Rating created")

	return rating, nil
}
