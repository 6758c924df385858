// controllers/settings.go
package controllers

import (
	"net/http"

	"amstudio-backend/config"
	"amstudio-backend/models"
	"amstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type UpdateSettingsInput struct {
	TimeSlots    []string             `json:"timeSlots"`
	SpecialRules models.SlotOverrides `json:"specialRules"`
}

// GetLocationSettings returns one branch's slot grid and per-date overrides.
// A branch with no stored row falls back to the default grid.
func GetLocationSettings(c *gin.Context) {
	locationID := c.Param("locationId")
	if _, ok := models.LocationByID(locationID); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown location")
		return
	}

	var setting models.LocationSetting
	if err := config.DB.First(&setting, "location_id = ?", locationID).Error; err != nil {
		setting = models.LocationSetting{
			LocationID:   locationID,
			TimeSlots:    models.DefaultTimeSlots,
			SpecialRules: models.SlotOverrides{},
		}
	}

	c.JSON(http.StatusOK, setting)
}

// UpdateLocationSettings replaces a branch's slot grid and special rules.
func UpdateLocationSettings(c *gin.Context) {
	locationID := c.Param("locationId")
	if _, ok := models.LocationByID(locationID); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown location")
		return
	}

	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	setting := models.LocationSetting{
		LocationID:   locationID,
		TimeSlots:    models.StringList(input.TimeSlots),
		SpecialRules: input.SpecialRules,
	}
	if setting.SpecialRules == nil {
		setting.SpecialRules = models.SlotOverrides{}
	}

	if err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "location_id"}},
		UpdateAll: true,
	}).Create(&setting).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, setting)
}
