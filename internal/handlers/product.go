// internal/handlers/product.go
package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ciderlog/cider-backend/internal/models"
	"github.com/ciderlog/cider-backend/internal/services"
	"github.com/ciderlog/cider-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	imageService   *services.ImageService
}

func NewProductHandler(productService *services.ProductService, imageService *services.ImageService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		imageService:   imageService,
	}
}

// parseID mirrors the route converter of the original API: a
// non-numeric id never matches a resource.
func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func barcodeList(barcodes []models.Barcode) []gin.H {
	list := make([]gin.H, 0, len(barcodes))
	for _, b := range barcodes {
		list = append(list, gin.H{"id": b.ID, "code": b.Code})
	}
	return list
}

func ratingList(ratings []models.Rating) []gin.H {
	list := make([]gin.H, 0, len(ratings))
	for _, r := range ratings {
		list = append(list, gin.H{
			"id":                   r.ID,
			"score":                r.Score,
			"comment":              r.Comment,
			"purchase_location":    r.PurchaseLocation,
			"consumption_location": r.ConsumptionLocation,
			"consumption_method":   r.ConsumptionMethod,
		})
	}
	return list
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.ListProducts()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	list := make([]gin.H, 0, len(products))
	for i := range products {
		p := &products[i]
		list = append(list, gin.H{
			"id":             p.ID,
			"brand":          p.Brand,
			"flavor":         p.Flavor,
			"barcodes":       barcodeList(p.Barcodes),
			"average_rating": p.AverageRating(),
		})
	}

	c.JSON(http.StatusOK, list)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Product not found")
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	// Image bytes travel as base64 text, absent image as null
	var imageBase64 interface{}
	if len(product.Image) > 0 {
		imageBase64 = base64.StdEncoding.EncodeToString(product.Image)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             product.ID,
		"brand":          product.Brand,
		"flavor":         product.Flavor,
		"description":    product.Description,
		"image":          imageBase64,
		"barcodes":       barcodeList(product.Barcodes),
		"ratings":        ratingList(product.Ratings),
		"average_rating": product.AverageRating(),
	})
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Missing required fields")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.BadRequestResponse(c, "Missing required fields")
		return
	}

	// Uploaded file wins over image_url; FormFile error just means no file
	file, _ := c.FormFile("image")

	image, err := h.imageService.Resolve(file, req.ImageURL)
	if err != nil {
		var fetchErr *services.FetchError
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &fetchErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Failed to fetch image from URL",
				"error":   fetchErr.Error(),
			})
		case errors.As(err, &validationErr):
			utils.BadRequestResponse(c, validationErr.Message)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	if _, err := h.productService.CreateProduct(&req, image); err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrBarcodeExists):
			utils.ConflictResponse(c, "This barcode already exists.")
		case errors.As(err, &validationErr):
			utils.BadRequestResponse(c, validationErr.Message)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedMessage(c, "Product added successfully!")
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Product not found")
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.OKMessage(c, "Product deleted successfully!")
}
