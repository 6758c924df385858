// controllers/admin.go
package controllers

import (
	"errors"
	"net/http"

	"amstudio-backend/config"
	"amstudio-backend/models"
	"amstudio-backend/services"
	"amstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var notifier *services.Notifier

// SetNotifier injects the outbound-message sender used by admin actions.
func SetNotifier(n *services.Notifier) {
	notifier = n
}

// GetBookings retrieves the latest bookings for the admin panel
func GetBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := config.DB.Order("date desc, time asc").Limit(300).Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

type BookingActionInput struct {
	Action string `json:"action" binding:"required,oneof=verify confirm cancel"`
	Notify bool   `json:"notify"`
}

// BookingAction applies an administrative state change to one record:
// verify the deposit, confirm the appointment, or cancel it. The rendered
// customer message is always returned; it is only sent when notify is set.
func BookingAction(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input BookingActionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	updates := map[string]interface{}{}
	switch input.Action {
	case "verify":
		updates["payment_status"] = models.PaymentVerified
	case "confirm":
		updates["status"] = models.StatusConfirmed
	case "cancel":
		updates["status"] = models.StatusCancelled
	}

	if err := config.DB.Model(&booking).Updates(updates).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	message := notifier.BuildMessage(booking, input.Action)
	if input.Notify {
		go notifier.Send(booking, input.Action, message)
	}

	c.JSON(http.StatusOK, gin.H{
		"booking": booking,
		"message": message,
	})
}

// ManualAddInput defines the expected JSON structure for a back-office
// single booking entry
type ManualAddInput struct {
	Date       string    `json:"date" binding:"required"`
	Time       string    `json:"time" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	Phone      string    `json:"phone" binding:"required"`
	LocationID string    `json:"locationId" binding:"required"`
	ServiceID  uuid.UUID `json:"serviceId" binding:"required"`
}

// ManualAddBooking creates a single back-office booking. Admin entries skip
// the deposit flow entirely: they start confirmed with payment verified.
func ManualAddBooking(c *gin.Context) {
	var input ManualAddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	loc, ok := models.LocationByID(input.LocationID)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown location")
		return
	}
	if !utils.ValidateDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, want YYYY-MM-DD")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", input.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	booking := models.Booking{
		LocationID:      loc.ID,
		LocationName:    loc.Name,
		ServiceIDs:      models.StringList{service.ID.String()},
		ServiceName:     service.Name,
		ServiceDuration: service.EffectiveDuration(),
		Date:            input.Date,
		Time:            input.Time,
		CustomerName:    input.Name,
		CustomerPhone:   input.Phone,
		DiscountNote:    "manual admin entry",
		GroupID:         "ADMIN-" + utils.GenerateRandomString(8),
		GuestIndex:      1,
		TotalPrice:      service.Price,
		Deposit:         0,
		Status:          models.StatusConfirmed,
		PaymentStatus:   models.PaymentVerified,
		CreatedByUserID: "ADMIN",
		Notes:           "manual admin entry",
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

type BatchImportInput struct {
	Text       string `json:"text" binding:"required"`
	LocationID string `json:"locationId"`
}

// BatchImportBookings imports operator-pasted rows. Each row stands alone:
// malformed rows are reported back while well-formed ones are stored, so
// partial success is explicit.
func BatchImportBookings(c *gin.Context) {
	var input BatchImportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	loc := models.Locations[0]
	if input.LocationID != "" {
		var ok bool
		if loc, ok = models.LocationByID(input.LocationID); !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown location")
			return
		}
	}

	rows, rowErrors := services.ParseBatchText(input.Text)
	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"imported": 0,
			"errors":   rowErrors,
		})
		return
	}

	var catalog []models.Service
	if err := config.DB.Find(&catalog).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load service catalog")
		return
	}

	groupID := "BATCH-" + utils.GenerateRandomString(8)
	bookings := make([]models.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, services.BuildImportedBooking(row, catalog, loc, groupID))
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&bookings).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to import bookings")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{
		"imported": len(bookings),
		"errors":   rowErrors,
	})
}
