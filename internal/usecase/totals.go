package usecase

// calculateTotals is a pure reduction over the final line lists. It is
// always run from scratch at the end of a generation so rounding or
// accumulation drift cannot break the grand-total identity.
func calculateTotals(items []GeneratedItem, materials []GeneratedMaterial, equipment []GeneratedEquipment) GenerationTotals {
	var t GenerationTotals
	for _, it := range items {
		t.WorkTotal += it.TotalPrice
		t.LaborHoursTotal += it.LaborHours
	}
	for _, m := range materials {
		t.MaterialTotal += m.TotalPrice
	}
	for _, e := range equipment {
		t.EquipmentTotal += e.TotalPrice
	}
	t.GrandTotal = t.WorkTotal + t.MaterialTotal + t.EquipmentTotal
	return t
}
