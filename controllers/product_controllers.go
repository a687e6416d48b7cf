package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ordesk/store-backend/models"
	"github.com/ordesk/store-backend/utils"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// saveProductImage stores an uploaded image under a generated filename and
// returns its public URL path.
func saveProductImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", errors.New("unsupported image type")
	}

	uploadDir := filepath.Join("public", "uploads", "product_images")
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", errors.New("error creating upload directory")
	}

	filename := uuid.New().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		return "", errors.New("error saving image")
	}

	return "/uploads/product_images/" + filename, nil
}

// GetAllProducts -> catalog listing, ordered by name
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	var products []models.Product
	if err := pc.DB.Order("name").Find(&products).Error; err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// GetProductByID -> detail of one product
func (pc *ProductController) GetProductByID(c *gin.Context) {
	var product models.Product
	if err := pc.DB.First(&product, c.Param("product_id")).Error; err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

// CreateProduct accepts either JSON (name, unit_price) or a multipart form
// carrying an optional image file alongside the fields.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var product models.Product

	if c.ContentType() == "multipart/form-data" {
		product.Name = c.PostForm("name")
		price, err := decimal.NewFromString(c.PostForm("unit_price"))
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid unit_price"))
			return
		}
		product.UnitPrice = price

		if file, err := c.FormFile("image"); err == nil {
			url, err := saveProductImage(c, file)
			if err != nil {
				utils.RespondError(c, http.StatusBadRequest, err)
				return
			}
			product.ImageUrl = &url
		}
	} else {
		var body struct {
			Name      string          `json:"name" binding:"required"`
			UnitPrice decimal.Decimal `json:"unit_price"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		product.Name = body.Name
		product.UnitPrice = body.UnitPrice
	}

	if strings.TrimSpace(product.Name) == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("product name is required"))
		return
	}
	if product.UnitPrice.IsNegative() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unit_price must not be negative"))
		return
	}

	if err := pc.DB.Create(&product).Error; err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

// UpdateProduct applies partial changes; a multipart request may also
// replace the stored image.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := pc.DB.First(&product, c.Param("product_id")).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	if c.ContentType() == "multipart/form-data" {
		if name := c.PostForm("name"); name != "" {
			product.Name = name
		}
		if raw := c.PostForm("unit_price"); raw != "" {
			price, err := decimal.NewFromString(raw)
			if err != nil {
				utils.RespondError(c, http.StatusBadRequest, errors.New("invalid unit_price"))
				return
			}
			product.UnitPrice = price
		}
		if file, err := c.FormFile("image"); err == nil {
			url, err := saveProductImage(c, file)
			if err != nil {
				utils.RespondError(c, http.StatusBadRequest, err)
				return
			}
			product.ImageUrl = &url
		}
	} else {
		var body struct {
			Name      *string          `json:"name"`
			UnitPrice *decimal.Decimal `json:"unit_price"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		if body.Name != nil {
			product.Name = *body.Name
		}
		if body.UnitPrice != nil {
			product.UnitPrice = *body.UnitPrice
		}
	}

	if product.UnitPrice.IsNegative() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unit_price must not be negative"))
		return
	}

	if err := pc.DB.Save(&product).Error; err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

// DeleteProduct refuses to remove a product that order items still point at;
// the frozen prices on those items are not a substitute for the catalog row
// itself, which the API keeps reachable through the item's product field.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	var product models.Product
	if err := pc.DB.First(&product, c.Param("product_id")).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	var refs int64
	if err := pc.DB.Model(&models.OrderItem{}).Where("product_id = ?", product.ID).Count(&refs).Error; err != nil {
		respondStorageError(c, err)
		return
	}
	if refs > 0 {
		utils.RespondError(c, http.StatusConflict, ErrProductInUse)
		return
	}

	if err := pc.DB.Delete(&product).Error; err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product deleted", nil)
}
