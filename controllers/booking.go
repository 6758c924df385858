// controllers/booking.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"amstudio-backend/config"
	"amstudio-backend/models"
	"amstudio-backend/services"
	"amstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuestServiceInput is one selected treatment within a guest's booking.
type GuestServiceInput struct {
	ServiceID uuid.UUID `json:"serviceId" binding:"required"`
	DarkLip   bool      `json:"darkLip"`
}

// GuestInput is one guest within a group submission.
type GuestInput struct {
	Name       string              `json:"name"`
	Phone      string              `json:"phone"`
	Services   []GuestServiceInput `json:"services"`
	DiscountID *uuid.UUID          `json:"discountId"`
	Time       string              `json:"time"`
}

// CreateBookingInput defines the expected JSON structure for a group booking
type CreateBookingInput struct {
	LocationID string       `json:"locationId" binding:"required"`
	Date       string       `json:"date" binding:"required"`
	CustomTime string       `json:"customTime"`
	Agreed     bool         `json:"agreed"`
	UserID     string       `json:"userId"`
	Guests     []GuestInput `json:"guests" binding:"required,min=1"`
}

// resolveGuests turns guest inputs into engine guests, loading each selected
// service and optional manual discount from the catalog. Selections are fed
// through AddService so the one-service-per-category invariant holds no
// matter what the client sent.
func resolveGuests(tx *gorm.DB, inputs []GuestInput) ([]services.Guest, map[int]string, error) {
	guests := make([]services.Guest, 0, len(inputs))
	guestTimes := make(map[int]string, len(inputs))

	for i, in := range inputs {
		g := services.Guest{Name: in.Name, Phone: in.Phone}

		for _, sel := range in.Services {
			var svc models.Service
			if err := tx.First(&svc, "id = ? AND is_active = true", sel.ServiceID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, nil, fmt.Errorf("guest %d: service not found: %s", i+1, sel.ServiceID)
				}
				return nil, nil, err
			}
			if sel.DarkLip {
				svc = services.ApplyDarkLip(svc)
			}
			g.Services = services.AddService(g.Services, svc)
		}

		if in.DiscountID != nil {
			var d models.Discount
			if err := tx.First(&d, "id = ?", *in.DiscountID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, nil, fmt.Errorf("guest %d: discount not found", i+1)
				}
				return nil, nil, err
			}
			g.Discount = &d
		}

		guests = append(guests, g)
		if in.Time != "" {
			guestTimes[i] = in.Time
		}
	}
	return guests, guestTimes, nil
}

// CreateBooking validates and persists a whole group submission as one
// atomic batch: either every guest's record is stored or none is.
func CreateBooking(c *gin.Context) {
	var input CreateBookingInput
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

	guests, guestTimes, err := resolveGuests(config.DB, input.Guests)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := services.ValidateSubmission(guests, guestTimes, input.Agreed); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	for i, g := range guests {
		if !utils.ValidatePhone(g.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, fmt.Sprintf("guest %d: invalid phone number", i+1))
			return
		}
	}

	payloads := services.BuildGroupPayloads(guests, guestTimes, input.CustomTime, loc, input.Date, input.UserID)

	// Availability was checked via the availability endpoint while the guest
	// picked a slot; it is deliberately not re-checked here. Two sessions
	// racing for the same slot is an accepted risk of the optimistic flow.
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&payloads).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create bookings")
		return
	}

	tx.Commit()

	multiGuest := len(guests) > 1
	c.JSON(http.StatusCreated, gin.H{
		"groupId":      payloads[0].GroupID,
		"bookings":     payloads,
		"totalPrice":   services.GroupTotal(guests, multiGuest),
		"totalDeposit": services.GroupDeposit(guests),
	})
}

// SearchBookings looks up a customer's upcoming bookings by phone number.
// Cancelled and past appointments are filtered out.
func SearchBookings(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "phone query parameter is required")
		return
	}

	var bookings []models.Booking
	if err := config.DB.
		Where("customer_phone = ? AND status <> ?", phone, models.StatusCancelled).
		Order("date asc").
		Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	now := time.Now()
	valid := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !utils.IsPastDate(b.Date, now) {
			valid = append(valid, b)
		}
	}

	c.JSON(http.StatusOK, valid)
}

type ReportPaymentInput struct {
	Last5 string `json:"last5" binding:"required,len=5"`
}

// ReportPayment records a customer's deposit transfer report: the last five
// digits of the transfer reference plus a timestamp. Verification stays an
// admin action.
func ReportPayment(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input ReportPaymentInput
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

	now := time.Now()
	if err := config.DB.Model(&booking).Updates(map[string]interface{}{
		"payment_status":      models.PaymentReported,
		"payment_last5":       input.Last5,
		"payment_reported_at": &now,
	}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to report payment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment reported"})
}
