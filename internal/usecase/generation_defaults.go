package usecase

// GenerationDefaults is the single place where the engine's fallback
// values live. Every numeric field of the input model that may arrive
// as zero defaults through here, so the quantity formula can never be
// accidentally zeroed by an unset multiplier.
type GenerationDefaults struct {
	// AnswerValue replaces a zero answer quantity.
	AnswerValue float64
	// Multiplier replaces a zero rule multiplier.
	Multiplier float64
	// BaseQuantity replaces a zero template base quantity.
	BaseQuantity float64
	// Unit is used when the template's work type carries no unit.
	Unit string
	// LaborRate converts work-type labor hours into a fallback unit
	// price for work items absent from the price list (currency per
	// labor hour, configured via DEFAULT_LABOR_RATE).
	LaborRate float64
}

// DefaultGenerationDefaults returns the stock defaulting policy.
func DefaultGenerationDefaults() GenerationDefaults {
	return GenerationDefaults{
		AnswerValue:  1,
		Multiplier:   1,
		BaseQuantity: 1,
		Unit:         "szt",
		LaborRate:    50,
	}
}

// orDefault keeps v unless it is unset (zero).
func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
