package export

import (
	"bytes"
	"fmt"

	"elektrosmeta/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const (
	sheetItems     = "Kosztorys"
	sheetMaterials = "Materialy"
	sheetEquipment = "Sprzet"
)

// XLSXExporter renders a saved estimate as an xlsx workbook with one
// sheet per section: work items, materials and equipment. Totals are
// appended under the work items.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (x *XLSXExporter) Export(e entities.Estimate) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheetItems); err != nil {
		return nil, err
	}
	if err := writeItemsSheet(f, e); err != nil {
		return nil, err
	}
	if err := writeMaterialsSheet(f, e.Materials); err != nil {
		return nil, err
	}
	if err := writeEquipmentSheet(f, e.Equipment); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeItemsSheet(f *excelize.File, e entities.Estimate) error {
	header := []interface{}{
		"lp",
		"work_code",
		"work_name",
		"room",
		"unit",
		"quantity",
		"unit_price",
		"total_price",
		"labor_hours",
	}
	if err := setRow(f, sheetItems, 1, header); err != nil {
		return err
	}

	row := 2
	for _, it := range e.Items {
		line := []interface{}{
			it.PositionNumber,
			it.WorkCode,
			it.WorkName,
			it.RoomName,
			it.Unit,
			it.Quantity,
			it.UnitPrice,
			it.TotalPrice,
			it.LaborHours,
		}
		if err := setRow(f, sheetItems, row, line); err != nil {
			return err
		}
		row++
	}

	totals := [][]interface{}{
		{"", "", "", "", "", "", "Robocizna", e.WorkTotal, e.LaborHoursTotal},
		{"", "", "", "", "", "", "Materialy", e.MaterialTotal, ""},
		{"", "", "", "", "", "", "Sprzet", e.EquipmentTotal, ""},
		{"", "", "", "", "", "", "Razem", e.GrandTotal, ""},
		{"", "", "", "", "", "", "Do zaplaty", e.FinalTotal, ""},
	}
	row++
	for _, line := range totals {
		if err := setRow(f, sheetItems, row, line); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeMaterialsSheet(f *excelize.File, materials []entities.EstimateMaterial) error {
	if _, err := f.NewSheet(sheetMaterials); err != nil {
		return err
	}
	header := []interface{}{
		"lp",
		"material_code",
		"material_name",
		"unit",
		"quantity",
		"unit_price",
		"total_price",
	}
	if err := setRow(f, sheetMaterials, 1, header); err != nil {
		return err
	}
	for i, m := range materials {
		line := []interface{}{
			m.PositionNumber,
			m.MaterialCode,
			m.MaterialName,
			m.Unit,
			m.Quantity,
			m.UnitPrice,
			m.TotalPrice,
		}
		if err := setRow(f, sheetMaterials, i+2, line); err != nil {
			return err
		}
	}
	return nil
}

func writeEquipmentSheet(f *excelize.File, equipment []entities.EstimateEquipment) error {
	if _, err := f.NewSheet(sheetEquipment); err != nil {
		return err
	}
	header := []interface{}{
		"lp",
		"equipment_code",
		"equipment_name",
		"unit",
		"quantity",
		"unit_price",
		"total_price",
	}
	if err := setRow(f, sheetEquipment, 1, header); err != nil {
		return err
	}
	for i, eq := range equipment {
		line := []interface{}{
			eq.PositionNumber,
			eq.EquipmentCode,
			eq.EquipmentName,
			eq.Unit,
			eq.Quantity,
			eq.UnitPrice,
			eq.TotalPrice,
		}
		if err := setRow(f, sheetEquipment, i+2, line); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	return f.SetSheetRow(sheet, cell, &values)
}
