// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ciderlog/cider-backend/internal/database"
	"github.com/ciderlog/cider-backend/internal/models"
)

type ProductService struct {
	db             *gorm.DB
	storageService *StorageService
}

type CreateProductRequest struct {
	Brand       string `form:"brand" validate:"required"`
	Flavor      string `form:"flavor" validate:"required"`
	Description string `form:"description"`
	ImageURL    string `form:"image_url"`
	Barcode     string `form:"barcode"`
}

func NewProductService(db *gorm.DB, storageService *StorageService) *ProductService {
	return &ProductService{
		db:             db,
		storageService: storageService,
	}
}

// CreateProduct inserts the product and, when an initial barcode code is
// supplied, its barcode in one transaction. A duplicate code rolls the
// whole insert back; no product row survives.
func (s *ProductService) CreateProduct(req *CreateProductRequest, image []byte) (*models.Product, error) {
	if strings.TrimSpace(req.Brand) == "" || strings.TrimSpace(req.Flavor) == "" {
		return nil, NewValidationError("Missing required fields")
	}

	product := &models.Product{
		Brand:  req.Brand,
		Flavor: req.Flavor,
		Image:  image,
	}
	if req.Description != "" {
		product.Description = &req.Description
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		if req.Barcode != "" {
			barcode := models.Barcode{ProductID: product.ID, Code: req.Barcode}
			if err := tx.Create(&barcode).Error; err != nil {
				if isDuplicateKey(err) {
					return ErrBarcodeExists
				}
				return fmt.Errorf("failed to create barcode: %w", err)
			}
			product.Barcodes = append(product.Barcodes, barcode)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(image) > 0 && s.storageService != nil {
		s.storageService.ArchiveImage(product.ID, image)
	}

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"brand":      product.Brand,
		"flavor":     product.Flavor,
	}).Info("Product created")

	return product, nil
}

// GetProduct loads the product with its barcodes and ratings eagerly, one
// logical read per association.
func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.Preload("Barcodes").Preload("Ratings").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	return &product, nil
}

func (s *ProductService) ListProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Preload("Barcodes").Preload("Ratings").Order("id ASC").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// DeleteProduct removes the product together with its barcodes and
// ratings (cascade pinned to match the barcode policy).
func (s *ProductService) DeleteProduct(id uint) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to load product: %w", err)
	}

	if err := s.db.Select(clause.Associations).Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if len(product.Image) > 0 && s.storageService != nil {
		s.storageService.DeleteImage(id)
	}

	logrus.WithField("product_id", id).Info("Product deleted")
	return nil
}

// isDuplicateKey recognizes unique-constraint violations from both the
// postgres and sqlite drivers.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
