package usecase

import (
	"testing"

	"elektrosmeta/internal/domain/entities"
)

func TestResolveRule(t *testing.T) {
	t.Run("exact match wins over no match", func(t *testing.T) {
		rules := sortRulesForResolution([]entities.MappingRule{
			{ID: "r1", RoomCode: "KITCHEN", WorkTypeCode: "WIRE", Priority: 1},
			{ID: "r2", RoomCode: "BATH", WorkTypeCode: "WIRE", Priority: 1},
		})
		answer := entities.FormAnswer{RoomCode: "BATH", WorkTypeCode: "WIRE"}

		rule, ok := resolveRule(rules, answer)
		if !ok || rule.ID != "r2" {
			t.Fatalf("expected r2, got %+v ok=%v", rule, ok)
		}
	})

	t.Run("priority beats wildcard specificity", func(t *testing.T) {
		// A higher-priority room-wildcard rule outranks a lower-priority
		// exact match on both axes.
		rules := sortRulesForResolution([]entities.MappingRule{
			{ID: "exact", RoomCode: "KITCHEN", WorkTypeCode: "WIRE", Priority: 5},
			{ID: "wild", RoomCode: entities.WildcardCode, WorkTypeCode: "WIRE", Priority: 10},
		})
		answer := entities.FormAnswer{RoomCode: "KITCHEN", WorkTypeCode: "WIRE"}

		rule, ok := resolveRule(rules, answer)
		if !ok || rule.ID != "wild" {
			t.Fatalf("expected wild, got %+v ok=%v", rule, ok)
		}
	})

	t.Run("equal priority breaks by rule id ascending", func(t *testing.T) {
		rules := sortRulesForResolution([]entities.MappingRule{
			{ID: "b", RoomCode: "KITCHEN", WorkTypeCode: "WIRE", Priority: 3},
			{ID: "a", RoomCode: "KITCHEN", WorkTypeCode: "WIRE", Priority: 3},
		})
		answer := entities.FormAnswer{RoomCode: "KITCHEN", WorkTypeCode: "WIRE"}

		rule, ok := resolveRule(rules, answer)
		if !ok || rule.ID != "a" {
			t.Fatalf("expected a, got %+v ok=%v", rule, ok)
		}
	})

	t.Run("work axis matches work_code too", func(t *testing.T) {
		rules := sortRulesForResolution([]entities.MappingRule{
			{ID: "r1", RoomCode: "KITCHEN", WorkCode: "SOCKET_2G", Priority: 1},
		})
		answer := entities.FormAnswer{RoomCode: "KITCHEN", WorkCode: "SOCKET_2G"}

		if _, ok := resolveRule(rules, answer); !ok {
			t.Fatalf("expected a match on work_code")
		}
	})

	t.Run("work wildcard matches any work", func(t *testing.T) {
		rules := sortRulesForResolution([]entities.MappingRule{
			{ID: "r1", RoomCode: "KITCHEN", WorkTypeCode: entities.WildcardCode, Priority: 1},
		})
		answer := entities.FormAnswer{RoomCode: "KITCHEN", WorkTypeCode: "ANYTHING"}

		if _, ok := resolveRule(rules, answer); !ok {
			t.Fatalf("expected wildcard work match")
		}
	})

	t.Run("no match", func(t *testing.T) {
		rules := sortRulesForResolution([]entities.MappingRule{
			{ID: "r1", RoomCode: "KITCHEN", WorkTypeCode: "WIRE", Priority: 1},
		})
		answer := entities.FormAnswer{RoomCode: "GARAGE", WorkTypeCode: "WIRE"}

		if _, ok := resolveRule(rules, answer); ok {
			t.Fatalf("expected no match")
		}
	})

	t.Run("answer prefers work_code over work_type_code", func(t *testing.T) {
		rules := sortRulesForResolution([]entities.MappingRule{
			{ID: "bycode", RoomCode: "KITCHEN", WorkCode: "SOCKET_2G", Priority: 1},
		})
		answer := entities.FormAnswer{RoomCode: "KITCHEN", WorkCode: "SOCKET_2G", WorkTypeCode: "SOCKETS"}

		rule, ok := resolveRule(rules, answer)
		if !ok || rule.ID != "bycode" {
			t.Fatalf("expected bycode, got %+v ok=%v", rule, ok)
		}
	})
}

func TestSortRulesForResolution_DoesNotMutateInput(t *testing.T) {
	rules := []entities.MappingRule{
		{ID: "low", Priority: 1},
		{ID: "high", Priority: 9},
	}
	_ = sortRulesForResolution(rules)
	if rules[0].ID != "low" {
		t.Fatalf("input slice was reordered: %+v", rules)
	}
}
