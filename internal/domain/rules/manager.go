package rules

import "github.com/modhearth/modorder/internal/domain/component"

// Manager is an indexed, read-only rule store.
// It answers "which rules touch this reference" in O(k) and exposes the
// rule set by kind. Build it once with NewManager; it has no mutation
// methods afterwards.
type Manager struct {
	dependencies []DependencyRule
	orders       []OrderRule
	byRef        map[component.Reference][]Rule
}

// NewManager creates a Manager indexing the given rules.
func NewManager(ruleSet ...Rule) *Manager {
	m := &Manager{
		byRef: make(map[component.Reference][]Rule),
	}

	for _, rule := range ruleSet {
		switch r := rule.(type) {
		case DependencyRule:
			m.dependencies = append(m.dependencies, r)
		case OrderRule:
			m.orders = append(m.orders, r)
		}

		for ref := range rule.Sources() {
			m.byRef[ref] = append(m.byRef[ref], rule)
		}
		for ref := range rule.Targets() {
			// A reference appearing on both sides indexes once.
			if rule.Sources().Has(ref) {
				continue
			}
			m.byRef[ref] = append(m.byRef[ref], rule)
		}
	}

	return m
}

// RulesFor returns every rule where ref appears as a source or a target.
// Returns nil when no rule touches ref.
func (m *Manager) RulesFor(ref component.Reference) []Rule {
	return m.byRef[ref]
}

// DependencyRules returns all dependency rules.
func (m *Manager) DependencyRules() []DependencyRule {
	return m.dependencies
}

// OrderRules returns all order rules.
func (m *Manager) OrderRules() []OrderRule {
	return m.orders
}

// Len returns the total number of indexed rules.
func (m *Manager) Len() int {
	return len(m.dependencies) + len(m.orders)
}
