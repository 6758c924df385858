// controllers/availability.go
package controllers

import (
	"net/http"

	"amstudio-backend/config"
	"amstudio-backend/models"
	"amstudio-backend/services"
	"amstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

// CheckAvailabilityInput carries the candidate session state: every guest's
// current service selection and any time they have already picked. The
// client re-posts it whenever the date, location, a selection or a chosen
// time changes.
type CheckAvailabilityInput struct {
	LocationID string       `json:"locationId" binding:"required"`
	Date       string       `json:"date" binding:"required"`
	Guests     []GuestInput `json:"guests" binding:"required,min=1"`
}

// CheckAvailability returns the slot grid for the requested date plus, per
// guest, which slots would collide with an existing booking or with another
// guest's in-progress choice.
func CheckAvailability(c *gin.Context) {
	var input CheckAvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, ok := models.LocationByID(input.LocationID); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown location")
		return
	}
	if !utils.ValidateDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, want YYYY-MM-DD")
		return
	}

	guests, guestTimes, err := resolveGuests(config.DB, input.Guests)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var bookingsOfDay []models.Booking
	if err := config.DB.
		Where("location_id = ? AND date = ? AND status <> ?",
			input.LocationID, input.Date, models.StatusCancelled).
		Find(&bookingsOfDay).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	var setting models.LocationSetting
	config.DB.First(&setting, "location_id = ?", input.LocationID)
	slots := setting.SlotsForDate(input.Date)

	taken := make([][]bool, len(guests))
	for gIdx := range guests {
		row := make([]bool, len(slots))
		for sIdx, slot := range slots {
			row[sIdx] = services.IsSlotTaken(slot, gIdx, guests, bookingsOfDay, guestTimes)
		}
		taken[gIdx] = row
	}

	c.JSON(http.StatusOK, gin.H{
		"slots": slots,
		"taken": taken,
	})
}
