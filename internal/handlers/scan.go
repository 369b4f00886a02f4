// internal/handlers/scan.go
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ciderlog/cider-backend/internal/services"
	"github.com/ciderlog/cider-backend/internal/utils"
)

type ScanHandler struct {
	scannerService *services.ScannerService
}

func NewScanHandler(scannerService *services.ScannerService) *ScanHandler {
	return &ScanHandler{scannerService: scannerService}
}

// POST /scan
func (h *ScanHandler) ScanBarcode(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "No image file provided")
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	text, err := h.scannerService.Scan(data)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrNoBarcodeDetected):
			utils.BadRequestResponse(c, "No barcode detected")
		case errors.As(err, &validationErr):
			utils.BadRequestResponse(c, validationErr.Message)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"barcode": text})
}
