package usecase

// consumptionLine is one material or equipment consumption produced by
// expanding a single template task against one answer.
type consumptionLine struct {
	ID        string
	Code      string
	Name      string
	Unit      string
	Quantity  float64
	UnitPrice float64
}

func (l consumptionLine) total() float64 {
	return l.Quantity * l.UnitPrice
}

type aggregateLine struct {
	ID         string
	Code       string
	Name       string
	Unit       string
	Quantity   float64
	UnitPrice  float64
	TotalPrice float64
}

// consumptionAggregator merges consumption lines across the whole run
// into one entry per underlying item id.
//
// Merge rules:
//   - the first occurrence of an id fixes the unit price for the rest
//     of the run (first-write-wins, even if a later line resolved to a
//     different price)
//   - every occurrence adds its quantity and its own quantity×price to
//     the entry's accumulated totals
//   - output order is insertion order of first occurrence, not sorted
type consumptionAggregator struct {
	order []string
	byID  map[string]*aggregateLine
}

func newConsumptionAggregator() *consumptionAggregator {
	return &consumptionAggregator{byID: make(map[string]*aggregateLine)}
}

func (a *consumptionAggregator) Add(line consumptionLine) {
	if existing, ok := a.byID[line.ID]; ok {
		existing.Quantity += line.Quantity
		existing.TotalPrice += line.total()
		return
	}
	a.byID[line.ID] = &aggregateLine{
		ID:         line.ID,
		Code:       line.Code,
		Name:       line.Name,
		Unit:       line.Unit,
		Quantity:   line.Quantity,
		UnitPrice:  line.UnitPrice,
		TotalPrice: line.total(),
	}
	a.order = append(a.order, line.ID)
}

func (a *consumptionAggregator) Lines() []aggregateLine {
	lines := make([]aggregateLine, 0, len(a.order))
	for _, id := range a.order {
		lines = append(lines, *a.byID[id])
	}
	return lines
}

func toGeneratedMaterials(lines []aggregateLine) []GeneratedMaterial {
	out := make([]GeneratedMaterial, 0, len(lines))
	for _, l := range lines {
		out = append(out, GeneratedMaterial{
			MaterialID:   l.ID,
			MaterialCode: l.Code,
			MaterialName: l.Name,
			Unit:         l.Unit,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			TotalPrice:   l.TotalPrice,
		})
	}
	return out
}

func toGeneratedEquipment(lines []aggregateLine) []GeneratedEquipment {
	out := make([]GeneratedEquipment, 0, len(lines))
	for _, l := range lines {
		out = append(out, GeneratedEquipment{
			EquipmentID:   l.ID,
			EquipmentCode: l.Code,
			EquipmentName: l.Name,
			Unit:          l.Unit,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			TotalPrice:    l.TotalPrice,
		})
	}
	return out
}
