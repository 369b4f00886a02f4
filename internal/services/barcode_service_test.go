// internal/services/barcode_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciderlog/cider-backend/internal/models"
)

func TestCreateBarcode(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db, nil)
	svc := NewBarcodeService(db)

	product := createTestProduct(t, products, "Acme", "Mint")

	barcode, err := svc.CreateBarcode(product.ID, &CreateBarcodeRequest{Code: "4006381333931"})
	require.NoError(t, err)
	assert.NotZero(t, barcode.ID)
	assert.Equal(t, product.ID, barcode.ProductID)
	assert.Equal(t, "4006381333931", barcode.Code)
}

func TestCreateBarcodeProductNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBarcodeService(db)

	_, err := svc.CreateBarcode(42, &CreateBarcodeRequest{Code: "123"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateBarcodeConflictAcrossProducts(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db, nil)
	svc := NewBarcodeService(db)

	p1 := createTestProduct(t, products, "Acme", "Mint")
	p2 := createTestProduct(t, products, "Other", "Berry")

	_, err := svc.CreateBarcode(p1.ID, &CreateBarcodeRequest{Code: "111"})
	require.NoError(t, err)

	// Codes are unique across all products, not per product
	_, err = svc.CreateBarcode(p2.ID, &CreateBarcodeRequest{Code: "111"})
	require.ErrorIs(t, err, ErrBarcodeExists)

	_, err = svc.CreateBarcode(p1.ID, &CreateBarcodeRequest{Code: "111"})
	require.ErrorIs(t, err, ErrBarcodeExists)

	var count int64
	require.NoError(t, db.Model(&models.Barcode{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateBarcodeEmptyCode(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db, nil)
	svc := NewBarcodeService(db)

	product := createTestProduct(t, products, "Acme", "Mint")

	_, err := svc.CreateBarcode(product.ID, &CreateBarcodeRequest{Code: ""})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestDeleteBarcode(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db, nil)
	svc := NewBarcodeService(db)

	product := createTestProduct(t, products, "Acme", "Mint")
	barcode, err := svc.CreateBarcode(product.ID, &CreateBarcodeRequest{Code: "123"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBarcode(barcode.ID))

	_, err = svc.GetBarcode(barcode.ID)
	assert.ErrorIs(t, err, ErrBarcodeNotFound)
}

func TestDeleteBarcodeNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBarcodeService(db)

	assert.ErrorIs(t, svc.DeleteBarcode(42), ErrBarcodeNotFound)
}
