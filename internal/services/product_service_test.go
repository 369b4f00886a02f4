// internal/services/product_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciderlog/cider-backend/internal/models"
)

func TestCreateProductRequiresBrandAndFlavor(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil)

	for _, req := range []*CreateProductRequest{
		{Brand: "", Flavor: "Mint"},
		{Brand: "Acme", Flavor: ""},
		{Brand: "   ", Flavor: "Mint"},
	} {
		_, err := svc.CreateProduct(req, nil)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
	}

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateProductStoresOptionalFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil)

	image := []byte{0x89, 0x50, 0x4e, 0x47}
	product, err := svc.CreateProduct(&CreateProductRequest{
		Brand:       "Acme",
		Flavor:      "Mint",
		Description: "dry and crisp",
	}, image)
	require.NoError(t, err)

	loaded, err := svc.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", loaded.Brand)
	assert.Equal(t, "Mint", loaded.Flavor)
	require.NotNil(t, loaded.Description)
	assert.Equal(t, "dry and crisp", *loaded.Description)
	assert.Equal(t, image, loaded.Image)
	assert.False(t, loaded.CreatedAt.IsZero())
}

func TestCreateProductWithInitialBarcode(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil)

	product, err := svc.CreateProduct(&CreateProductRequest{
		Brand:   "Acme",
		Flavor:  "Mint",
		Barcode: "4006381333931",
	}, nil)
	require.NoError(t, err)

	loaded, err := svc.GetProduct(product.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Barcodes, 1)
	assert.Equal(t, "4006381333931", loaded.Barcodes[0].Code)
}

func TestCreateProductDuplicateInitialBarcodeRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil)

	_, err := svc.CreateProduct(&CreateProductRequest{
		Brand: "Acme", Flavor: "Mint", Barcode: "111",
	}, nil)
	require.NoError(t, err)

	// Second product with the same code must leave no rows behind
	_, err = svc.CreateProduct(&CreateProductRequest{
		Brand: "Other", Flavor: "Berry", Barcode: "111",
	}, nil)
	require.ErrorIs(t, err, ErrBarcodeExists)

	var productCount, barcodeCount int64
	require.NoError(t, db.Model(&models.Product{}).Count(&productCount).Error)
	require.NoError(t, db.Model(&models.Barcode{}).Count(&barcodeCount).Error)
	assert.EqualValues(t, 1, productCount)
	assert.EqualValues(t, 1, barcodeCount)
}

func TestGetProductNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil)

	_, err := svc.GetProduct(42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestListProductsEagerLoadsAssociations(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil)
	barcodes := NewBarcodeService(db)
	ratings := NewRatingService(db)

	p1 := createTestProduct(t, svc, "Acme", "Mint")
	createTestProduct(t, svc, "Other", "Berry")

	_, err := barcodes.CreateBarcode(p1.ID, &CreateBarcodeRequest{Code: "123"})
	require.NoError(t, err)
	_, err = ratings.CreateRating(p1.ID, &CreateRatingRequest{Score: 4})
	require.NoError(t, err)

	list, err := svc.ListProducts()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Len(t, list[0].Barcodes, 1)
	assert.Len(t, list[0].Ratings, 1)
	assert.Empty(t, list[1].Barcodes)
	assert.Empty(t, list[1].Ratings)
}

func TestDeleteProductCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil)
	barcodes := NewBarcodeService(db)
	ratings := NewRatingService(db)

	product := createTestProduct(t, svc, "Acme", "Mint")
	barcode, err := barcodes.CreateBarcode(product.ID, &CreateBarcodeRequest{Code: "123"})
	require.NoError(t, err)
	_, err = ratings.CreateRating(product.ID, &CreateRatingRequest{Score: 5})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(product.ID))

	_, err = svc.GetProduct(product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = barcodes.GetBarcode(barcode.ID)
	assert.ErrorIs(t, err, ErrBarcodeNotFound)

	var ratingCount int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&ratingCount).Error)
	assert.Zero(t, ratingCount)
}

func TestDeleteProductNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil)

	assert.ErrorIs(t, svc.DeleteProduct(42), ErrProductNotFound)
}
