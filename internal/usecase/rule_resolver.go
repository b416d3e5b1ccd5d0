package usecase

import (
	"sort"

	"elektrosmeta/internal/domain/entities"
)

// sortRulesForResolution orders candidate rules by priority descending
// so resolution can pick the first match. Equal priorities are broken
// by rule id ascending, which keeps resolution deterministic regardless
// of storage order.
func sortRulesForResolution(rules []entities.MappingRule) []entities.MappingRule {
	sorted := make([]entities.MappingRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// ruleMatches applies the wildcard-aware match from the mapping rule
// configuration: the room axis and the work axis must both match, and
// either axis may be the wildcard '*'. The work axis accepts a match
// on either work_type_code or work_code.
func ruleMatches(rule entities.MappingRule, roomCode, workCode string) bool {
	roomMatch := rule.RoomCode == roomCode || rule.RoomCode == entities.WildcardCode
	workMatch := rule.WorkTypeCode == workCode || rule.WorkCode == workCode ||
		rule.WorkTypeCode == entities.WildcardCode
	return roomMatch && workMatch
}

// resolveRule selects the single applicable rule for an answer: the
// first match in the pre-sorted candidate list, i.e. the
// highest-priority match. Wildcard specificity does not participate in
// ranking; priority alone decides.
func resolveRule(sorted []entities.MappingRule, answer entities.FormAnswer) (entities.MappingRule, bool) {
	workCode := answer.EffectiveWorkCode()
	for _, rule := range sorted {
		if ruleMatches(rule, answer.RoomCode, workCode) {
			return rule, true
		}
	}
	return entities.MappingRule{}, false
}
