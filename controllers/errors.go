package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ordesk/store-backend/utils"
)

var (
	// ErrProductInUse rejects product deletion while order items still
	// reference the product.
	ErrProductInUse = errors.New("product is referenced by existing order items")

	// ErrUnknownStatus rejects status values outside the order state enum.
	ErrUnknownStatus = errors.New("unknown order status")
)

// respondStorageError maps a storage failure onto the matching HTTP status:
// missing rows become 404, constraint violations (duplicate keys, foreign
// keys) become 409, everything else is a 500.
func respondStorageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.ErrorLogger.Printf("storage error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
