package repository

import (
	"testing"
	"time"
)

func TestFromPriceListRecord(t *testing.T) {
	t.Run("parses validity window", func(t *testing.T) {
		pl, err := fromPriceListRecord(priceListRecord{
			ID:        "pl1",
			CompanyID: "c1",
			IsActive:  true,
			ValidFrom: "2026-01-01T00:00:00Z",
			ValidTo:   "2026-12-31T00:00:00Z",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pl.ValidFrom.IsZero() || pl.ValidTo == nil {
			t.Fatalf("unexpected window: %+v", pl)
		}
		if !pl.CoversDate(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("expected window to cover mid-year")
		}
	})

	t.Run("open-ended when valid_to is empty", func(t *testing.T) {
		pl, err := fromPriceListRecord(priceListRecord{
			ID:        "pl1",
			ValidFrom: "2026-01-01T00:00:00Z",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pl.ValidTo != nil {
			t.Fatalf("expected open-ended window, got %v", pl.ValidTo)
		}
	})

	t.Run("malformed valid_from is rejected", func(t *testing.T) {
		_, err := fromPriceListRecord(priceListRecord{ID: "pl1", ValidFrom: "not-a-date"})
		if err == nil {
			t.Fatalf("expected error for malformed valid_from")
		}
	})

	t.Run("malformed valid_to is rejected", func(t *testing.T) {
		_, err := fromPriceListRecord(priceListRecord{
			ID:        "pl1",
			ValidFrom: "2026-01-01T00:00:00Z",
			ValidTo:   "not-a-date",
		})
		if err == nil {
			t.Fatalf("expected error for malformed valid_to")
		}
	})
}
