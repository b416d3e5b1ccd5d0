package entities

// WorkType describes a category of work (e.g. wiring, socket install)
// with its measurement unit and a reference labor-hours figure used as
// a pricing fallback when the price list has no entry for a work item.
type WorkType struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Unit       string  `json:"unit"`
	LaborHours float64 `json:"labor_hours"`
}

// Material is a catalog material consumed by template tasks.
type Material struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	DefaultPrice float64 `json:"default_price"`
}

// Equipment is a catalog equipment entry consumed by template tasks.
type Equipment struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	DefaultPrice float64 `json:"default_price"`
}
