// internal/handlers/barcode.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ciderlog/cider-backend/internal/services"
	"github.com/ciderlog/cider-backend/internal/utils"
)

type BarcodeHandler struct {
	barcodeService *services.BarcodeService
}

func NewBarcodeHandler(barcodeService *services.BarcodeService) *BarcodeHandler {
	return &BarcodeHandler{barcodeService: barcodeService}
}

// POST /products/:id/barcodes
func (h *BarcodeHandler) CreateBarcode(c *gin.Context) {
	productID, ok := parseID(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Product not found")
		return
	}

	var req services.CreateBarcodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.BadRequestResponse(c, "Missing barcode code")
		return
	}

	barcode, err := h.barcodeService.CreateBarcode(productID, &req)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "Product not found")
		case errors.Is(err, services.ErrBarcodeExists):
			utils.ConflictResponse(c, "This barcode already exists.")
		case errors.As(err, &validationErr):
			utils.BadRequestResponse(c, validationErr.Message)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": barcode.ID, "code": barcode.Code})
}

// DELETE /barcodes/:id
func (h *BarcodeHandler) DeleteBarcode(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Barcode not found")
		return
	}

	if err := h.barcodeService.DeleteBarcode(id); err != nil {
		if errors.Is(err, services.ErrBarcodeNotFound) {
			utils.NotFoundResponse(c, "Barcode not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.OKMessage(c, "Barcode deleted successfully!")
}
