// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ciderlog/cider-backend/internal/config"
	"github.com/ciderlog/cider-backend/internal/handlers"
	"github.com/ciderlog/cider-backend/internal/middleware"
	"github.com/ciderlog/cider-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, err := services.NewStorageService(cfg.AWS)
	if err != nil {
		logrus.WithError(err).Warn("S3 archive disabled")
		storageService = nil
	}

	imageService := services.NewImageService(cfg.Images)
	scannerService := services.NewScannerService()
	productService := services.NewProductService(db, storageService)
	barcodeService := services.NewBarcodeService(db)
	ratingService := services.NewRatingService(db)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService, imageService)
	barcodeHandler := handlers.NewBarcodeHandler(barcodeService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	scanHandler := handlers.NewScanHandler(scannerService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Routes are mounted at root, matching the original API
	products := r.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.POST("", middleware.UploadRateLimit(), productHandler.CreateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)

		products.POST("/:id/ratings", ratingHandler.CreateRating)
		products.POST("/:id/barcodes", barcodeHandler.CreateBarcode)
	}

	r.DELETE("/barcodes/:id", barcodeHandler.DeleteBarcode)
	r.POST("/scan", middleware.UploadRateLimit(), scanHandler.ScanBarcode)

	return r
}
