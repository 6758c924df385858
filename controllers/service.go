// controllers/service.go
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

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name      string `json:"name" binding:"required"`
	Price     int    `json:"price" binding:"required,min=0"`
	Category  string `json:"category" binding:"required,oneof=brow lip"`
	Type      string `json:"type" binding:"required,oneof=first touchup"`
	Session   string `json:"session"`
	TimeRange string `json:"timeRange"`
	Order     int    `json:"order"`
	Duration  int    `json:"duration" binding:"min=0"` // in minutes
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name      *string `json:"name"`
	Price     *int    `json:"price" binding:"omitempty,min=0"`
	Category  *string `json:"category" binding:"omitempty,oneof=brow lip"`
	Type      *string `json:"type" binding:"omitempty,oneof=first touchup"`
	Session   *string `json:"session"`
	TimeRange *string `json:"timeRange"`
	Order     *int    `json:"order"`
	Duration  *int    `json:"duration" binding:"omitempty,min=0"`
	IsActive  *bool   `json:"isActive"`
}

// CreateService creates a new treatment in the catalog
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		Name:      input.Name,
		Price:     input.Price,
		Category:  input.Category,
		Type:      input.Type,
		Session:   input.Session,
		TimeRange: input.TimeRange,
		Order:     input.Order,
		Duration:  input.Duration,
		IsActive:  true,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves the full service catalog
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Order(`"order" asc`).Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.Type != nil {
		service.Type = *input.Type
	}
	if input.Session != nil {
		service.Session = *input.Session
	}
	if input.TimeRange != nil {
		service.TimeRange = *input.TimeRange
	}
	if input.Order != nil {
		service.Order = *input.Order
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService soft deletes a service
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Delete(&models.Service{}, "id = ?", serviceUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
