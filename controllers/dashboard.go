package controllers

import (
	"net/http"
	"time"

	"amstudio-backend/config"
	"amstudio-backend/models"
	"amstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TodayBookings      int64            `json:"todayBookings"`
	PendingBookings    int64            `json:"pendingBookings"`
	UnverifiedDeposits int64            `json:"unverifiedDeposits"`
	MonthlyRevenue     int64            `json:"monthlyRevenue"`
	Upcoming           []models.Booking `json:"upcoming"`
}

// GetDashboardOverview summarizes the booking book for the admin landing
// screen: today's load, what still needs attention, and month-to-date
// confirmed revenue.
func GetDashboardOverview(c *gin.Context) {
	now := time.Now()
	today := now.Format("2006-01-02")
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")

	var overview DashboardOverview

	config.DB.Model(&models.Booking{}).
		Where("date = ? AND status <> ?", today, models.StatusCancelled).
		Count(&overview.TodayBookings)

	config.DB.Model(&models.Booking{}).
		Where("status = ?", models.StatusPending).
		Count(&overview.PendingBookings)

	config.DB.Model(&models.Booking{}).
		Where("deposit > 0 AND payment_status <> ? AND status <> ?",
			models.PaymentVerified, models.StatusCancelled).
		Count(&overview.UnverifiedDeposits)

	config.DB.Model(&models.Booking{}).
		Where("date >= ? AND status = ?", firstOfMonth, models.StatusConfirmed).
		Select("COALESCE(SUM(total_price), 0)").Scan(&overview.MonthlyRevenue)

	if err := config.DB.
		Where("date >= ? AND status <> ?", today, models.StatusCancelled).
		Order("date asc, time asc").
		Limit(7).
		Find(&overview.Upcoming).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load upcoming bookings")
		return
	}

	c.JSON(http.StatusOK, overview)
}
