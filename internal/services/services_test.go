// internal/services/services_test.go
package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ciderlog/cider-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled second connection would see a different in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Barcode{}, &models.Rating{}))

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func createTestProduct(t *testing.T, svc *ProductService, brand, flavor string) *models.Product {
	t.Helper()

	product, err := svc.CreateProduct(&CreateProductRequest{Brand: brand, Flavor: flavor}, nil)
	require.NoError(t, err)
	return product
}
