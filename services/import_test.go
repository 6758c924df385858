package services

import (
	"strings"
	"testing"

	"amstudio-backend/models"
)

func TestParseBatchText_PartialSuccess(t *testing.T) {
	text := "2026-09-01,11:00,Amy,0911222333,Brow first session\n" +
		"not enough fields\n" +
		"2026-09-02,13:00,Mei,0922333444,Lip touch-up"

	rows, errs := ParseBatchText(text)

	if len(rows) != 2 {
		t.Fatalf("expected the two valid rows to proceed, got %d", len(rows))
	}
	if len(errs) != 1 {
		t.Fatalf("expected exactly one row error, got %v", errs)
	}
	if !strings.Contains(errs[0], "line 2") {
		t.Fatalf("error must name the offending line, got %q", errs[0])
	}
	if rows[0].Name != "Amy" || rows[1].Name != "Mei" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestParseBatchText_BadDate(t *testing.T) {
	rows, errs := ParseBatchText("09/01/2026,11:00,Amy,0911222333,Brow first session")
	if len(rows) != 0 {
		t.Fatalf("row with bad date must not proceed, got %+v", rows)
	}
	if len(errs) != 1 || !strings.Contains(errs[0], "bad date") {
		t.Fatalf("expected a date error, got %v", errs)
	}
}

func TestParseBatchText_BlankLinesAndWhitespace(t *testing.T) {
	text := "\n  2026-09-01 , 11:00 , Amy , 0911222333 , Brow first session  \n\n"

	rows, errs := ParseBatchText(text)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(rows) != 1 || rows[0].Date != "2026-09-01" || rows[0].Name != "Amy" {
		t.Fatalf("fields must be trimmed, got %+v", rows)
	}
}

func TestBuildImportedBooking_MatchesCatalog(t *testing.T) {
	catalog := []models.Service{svc(models.CategoryBrow, models.TypeFirstTime, 6000, 150)}
	catalog[0].Name = "Brow first session"

	row := BatchRow{
		Date:        "2026-09-01",
		Time:        "11:00",
		Name:        "Amy",
		Phone:       "0911222333",
		ServiceName: "Brow first session (VIP)",
	}

	b := BuildImportedBooking(row, catalog, testLocation(), "BATCH-XYZ")
	if b.TotalPrice != 6000 || b.ServiceDuration != 150 {
		t.Fatalf("expected catalog price and duration, got %+v", b)
	}
	if len(b.ServiceIDs) != 1 || b.ServiceIDs[0] != catalog[0].ID.String() {
		t.Fatalf("expected the matched service id, got %v", b.ServiceIDs)
	}
	if b.Status != models.StatusConfirmed || b.PaymentStatus != models.PaymentVerified || b.Deposit != 0 {
		t.Fatalf("imported records are confirmed and settled, got %+v", b)
	}
	if b.GroupID != "BATCH-XYZ" || b.GuestIndex != 1 {
		t.Fatalf("unexpected group fields: %+v", b)
	}
}

func TestBuildImportedBooking_UnmatchedServiceStillImports(t *testing.T) {
	row := BatchRow{Date: "2026-09-01", Time: "11:00", Name: "Amy", Phone: "0911222333", ServiceName: "mystery"}

	b := BuildImportedBooking(row, nil, testLocation(), "BATCH-XYZ")
	if b.TotalPrice != 0 || b.ServiceDuration != models.DefaultServiceDuration {
		t.Fatalf("unmatched service gets zero price and default duration, got %+v", b)
	}
	if b.ServiceName != "mystery" {
		t.Fatalf("raw service name must be preserved, got %q", b.ServiceName)
	}
}
