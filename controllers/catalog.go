// controllers/catalog.go
package controllers

import (
	"net/http"

	"amstudio-backend/config"
	"amstudio-backend/models"
	"amstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetCatalog serves everything the public booking flow needs up front:
// active services, manual discounts, the two locations and their slot
// settings.
func GetCatalog(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Where("is_active = true").Order(`"order" asc`).Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	var discounts []models.Discount
	if err := config.DB.Find(&discounts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve discounts")
		return
	}

	var settings []models.LocationSetting
	config.DB.Find(&settings)
	settingsByLocation := make(map[string]models.LocationSetting, len(settings))
	for _, s := range settings {
		settingsByLocation[s.LocationID] = s
	}

	c.JSON(http.StatusOK, gin.H{
		"services":  services,
		"discounts": discounts,
		"locations": models.Locations,
		"settings":  settingsByLocation,
	})
}
