package export

import (
	"bytes"
	"testing"

	"elektrosmeta/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_Export(t *testing.T) {
	estimate := entities.Estimate{
		ID:     "e1",
		Status: entities.EstimateStatusDraft,
		Items: []entities.EstimateItem{
			{
				PositionNumber: 1,
				WorkCode:       "GNIAZDO",
				WorkName:       "Montaz gniazda",
				RoomName:       "Garaz",
				Unit:           "szt",
				Quantity:       10,
				UnitPrice:      20,
				TotalPrice:     200,
				LaborHours:     5,
			},
		},
		Materials: []entities.EstimateMaterial{
			{
				PositionNumber: 1,
				MaterialCode:   "YDY3X25",
				MaterialName:   "Przewod YDY 3x2.5",
				Unit:           "m",
				Quantity:       20,
				UnitPrice:      3,
				TotalPrice:     60,
			},
		},
		Equipment: []entities.EstimateEquipment{
			{
				PositionNumber: 1,
				EquipmentCode:  "RUSZT",
				EquipmentName:  "Rusztowanie",
				Unit:           "dzien",
				Quantity:       2,
				UnitPrice:      50,
				TotalPrice:     100,
			},
		},
		WorkTotal:       200,
		MaterialTotal:   60,
		EquipmentTotal:  100,
		LaborHoursTotal: 5,
		GrandTotal:      360,
		FinalTotal:      360,
	}

	data, err := NewXLSXExporter().Export(estimate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected non-empty workbook")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("cannot reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	want := map[string]bool{"Kosztorys": false, "Materialy": false, "Sprzet": false}
	for _, s := range sheets {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("missing sheet %q, got %v", name, sheets)
		}
	}

	t.Run("work items sheet", func(t *testing.T) {
		checkCell(t, f, "Kosztorys", "B1", "work_code")
		checkCell(t, f, "Kosztorys", "B2", "GNIAZDO")
		checkCell(t, f, "Kosztorys", "F2", "10")
		checkCell(t, f, "Kosztorys", "H2", "200")
	})

	t.Run("totals block", func(t *testing.T) {
		checkCell(t, f, "Kosztorys", "G4", "Robocizna")
		checkCell(t, f, "Kosztorys", "H4", "200")
		checkCell(t, f, "Kosztorys", "G7", "Razem")
		checkCell(t, f, "Kosztorys", "H7", "360")
		checkCell(t, f, "Kosztorys", "G8", "Do zaplaty")
		checkCell(t, f, "Kosztorys", "H8", "360")
	})

	t.Run("materials sheet", func(t *testing.T) {
		checkCell(t, f, "Materialy", "B2", "YDY3X25")
		checkCell(t, f, "Materialy", "E2", "20")
		checkCell(t, f, "Materialy", "G2", "60")
	})

	t.Run("equipment sheet", func(t *testing.T) {
		checkCell(t, f, "Sprzet", "B2", "RUSZT")
		checkCell(t, f, "Sprzet", "G2", "100")
	})
}

func TestXLSXExporter_Export_EmptyEstimate(t *testing.T) {
	data, err := NewXLSXExporter().Export(entities.Estimate{ID: "e1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("cannot reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	checkCell(t, f, "Kosztorys", "A1", "lp")
	checkCell(t, f, "Kosztorys", "G3", "Robocizna")
	checkCell(t, f, "Kosztorys", "H6", "0")
	checkCell(t, f, "Materialy", "A1", "lp")
	checkCell(t, f, "Sprzet", "A1", "lp")
}

func checkCell(t *testing.T, f *excelize.File, sheet, cell, want string) {
	t.Helper()
	got, err := f.GetCellValue(sheet, cell)
	if err != nil {
		t.Fatalf("cell %s!%s: %v", sheet, cell, err)
	}
	if got != want {
		t.Fatalf("cell %s!%s: expected %q, got %q", sheet, cell, got, want)
	}
}
