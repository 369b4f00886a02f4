// internal/services/barcode_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ciderlog/cider-backend/internal/models"
)

type BarcodeService struct {
	db *gorm.DB
}

type CreateBarcodeRequest struct {
	Code string `json:"code" validate:"required"`
}

func NewBarcodeService(db *gorm.DB) *BarcodeService {
	return &BarcodeService{db: db}
}

// CreateBarcode attaches a new code to an existing product. The code is
// unique across all products; a duplicate insert fails with
// ErrBarcodeExists and persists nothing.
func (s *BarcodeService) CreateBarcode(productID uint, req *CreateBarcodeRequest) (*models.Barcode, error) {
	if req.Code == "" {
		return nil, NewValidationError("Missing barcode code")
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	barcode := &models.Barcode{ProductID: product.ID, Code: req.Code}
	if err := s.db.Create(barcode).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrBarcodeExists
		}
		return nil, fmt.Errorf("failed to create barcode: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"barcode_id": barcode.ID,
		"product_id": product.ID,
		"code":       barcode.Code,
	}).Info("Barcode created")

	return barcode, nil
}

func (s *BarcodeService) DeleteBarcode(id uint) error {
	res := s.db.Delete(&models.Barcode{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete barcode: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBarcodeNotFound
	}

	logrus.WithField("barcode_id", id).Info("Barcode deleted")
	return nil
}

func (s *BarcodeService) GetBarcode(id uint) (*models.Barcode, error) {
	var barcode models.Barcode
	if err := s.db.First(&barcode, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBarcodeNotFound
		}
		return nil, fmt.Errorf("failed to load barcode: %w", err)
	}

	return &barcode, nil
}
