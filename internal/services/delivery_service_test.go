package services_test

import (
	"testing"
	"time"

	"blossom/internal/services"
)

func TestDeliveryDates_BeforeCutoff(t *testing.T) {
	svc := services.NewDeliveryService()
	svc.Now = func() time.Time {
		return time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC) // Saturday morning
	}

	dates := svc.Dates(14)
	if len(dates) != 14 {
		t.Fatalf("want 14 dates, got %d", len(dates))
	}
	if dates[0].Date != "2026-03-07" {
		t.Fatalf("same-day delivery should be offered before cutoff, got %s", dates[0].Date)
	}
	if dates[0].Weekday != "суббота" {
		t.Fatalf("bad weekday label: %s", dates[0].Weekday)
	}
}

func TestDeliveryDates_AfterCutoff(t *testing.T) {
	svc := services.NewDeliveryService()
	svc.Now = func() time.Time {
		return time.Date(2026, 3, 7, 19, 30, 0, 0, time.UTC)
	}

	dates := svc.Dates(3)
	if dates[0].Date != "2026-03-08" {
		t.Fatalf("same-day delivery should close after cutoff, got %s", dates[0].Date)
	}
}
