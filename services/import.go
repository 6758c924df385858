// services/import.go
package services

import (
	"fmt"
	"regexp"
	"strings"

	"amstudio-backend/models"
)

var importDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// BatchRow is one parsed line of an admin batch import.
type BatchRow struct {
	Date        string
	Time        string
	Name        string
	Phone       string
	ServiceName string
}

// ParseBatchText parses operator-pasted import text, one booking per line:
//
//	date,time,name,phone,service
//
// Each row is validated independently; malformed rows are collected as
// errors and the rest proceed. Blank lines are skipped.
func ParseBatchText(text string) ([]BatchRow, []string) {
	var rows []BatchRow
	var errs []string

	for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}
		if len(parts) < 5 {
			errs = append(errs, fmt.Sprintf("line %d: expected 5 fields, got %d", i+1, len(parts)))
			continue
		}
		if !importDatePattern.MatchString(parts[0]) {
			errs = append(errs, fmt.Sprintf("line %d: bad date %q, want YYYY-MM-DD", i+1, parts[0]))
			continue
		}
		rows = append(rows, BatchRow{
			Date:        parts[0],
			Time:        parts[1],
			Name:        parts[2],
			Phone:       parts[3],
			ServiceName: parts[4],
		})
	}
	return rows, errs
}

// BuildImportedBooking turns a parsed row into a confirmed, fully paid
// record. The service name is matched loosely against the catalog (either
// string containing the other); an unmatched name still imports, with zero
// price and the default duration.
func BuildImportedBooking(row BatchRow, catalog []models.Service, loc models.Location, groupID string) models.Booking {
	price := 0
	duration := models.DefaultServiceDuration
	var ids models.StringList

	for _, s := range catalog {
		if strings.Contains(row.ServiceName, s.Name) || strings.Contains(s.Name, row.ServiceName) {
			price = s.Price
			duration = s.EffectiveDuration()
			ids = models.StringList{s.ID.String()}
			break
		}
	}

	return models.Booking{
		LocationID:      loc.ID,
		LocationName:    loc.Name,
		ServiceIDs:      ids,
		ServiceName:     row.ServiceName,
		ServiceDuration: duration,
		Date:            row.Date,
		Time:            row.Time,
		CustomerName:    row.Name,
		CustomerPhone:   row.Phone,
		DiscountNote:    "batch import",
		GroupID:         groupID,
		GuestIndex:      1,
		TotalPrice:      price,
		Deposit:         0,
		Status:          models.StatusConfirmed,
		PaymentStatus:   models.PaymentVerified,
		CreatedByUserID: "ADMIN",
		Notes:           "batch import",
	}
}
