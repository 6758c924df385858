// controllers/discount.go
package controllers

import (
	"errors"
	"net/http"

	"amstudio-backend/config"
	"amstudio-backend/models"
	"amstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateDiscountInput struct {
	Name   string `json:"name" binding:"required"`
	Amount int    `json:"amount" binding:"required,min=1"`
}

type UpdateDiscountInput struct {
	Name   *string `json:"name"`
	Amount *int    `json:"amount" binding:"omitempty,min=1"`
}

// CreateDiscount creates a manual discount option
func CreateDiscount(c *gin.Context) {
	var input CreateDiscountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	discount := models.Discount{
		Name:   input.Name,
		Amount: input.Amount,
	}

	if err := config.DB.Create(&discount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create discount")
		return
	}

	c.JSON(http.StatusCreated, discount)
}

// GetDiscounts retrieves all manual discounts
func GetDiscounts(c *gin.Context) {
	var discounts []models.Discount
	if err := config.DB.Find(&discounts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve discounts")
		return
	}

	c.JSON(http.StatusOK, discounts)
}

// UpdateDiscount updates an existing discount
func UpdateDiscount(c *gin.Context) {
	discountUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid discount ID format")
		return
	}

	var input UpdateDiscountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var discount models.Discount
	if err := config.DB.First(&discount, "id = ?", discountUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Discount not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		discount.Name = *input.Name
	}
	if input.Amount != nil {
		discount.Amount = *input.Amount
	}

	if err := config.DB.Save(&discount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update discount")
		return
	}

	c.JSON(http.StatusOK, discount)
}

// DeleteDiscount removes a discount option
func DeleteDiscount(c *gin.Context) {
	discountUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid discount ID format")
		return
	}

	result := config.DB.Delete(&models.Discount{}, "id = ?", discountUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete discount")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Discount not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Discount deleted successfully"})
}
