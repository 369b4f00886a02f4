// internal/handlers/rating.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ciderlog/cider-backend/internal/services"
	"github.com/ciderlog/cider-backend/internal/utils"
)

type RatingHandler struct {
	ratingService *services.RatingService
}

func NewRatingHandler(ratingService *services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// POST /products/:id/ratings
func (h *RatingHandler) CreateRating(c *gin.Context) {
	productID, ok := parseID(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Product not found")
		return
	}

	var req services.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid rating score. Must be between 1 and 5.")
		return
	}

	if _, err := h.ratingService.CreateRating(productID, &req); err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "Product not found")
		case errors.As(err, &validationErr):
			utils.BadRequestResponse(c, validationErr.Message)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedMessage(c, "Rating added successfully!")
}
