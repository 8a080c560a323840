// Package order computes deterministic installation orders for selected
// mod components from dependency and ordering rules, and can fold the
// computed order into a user-maintained manual order without discarding
// the user's placements.
package order

import (
	"context"

	"github.com/modhearth/modorder/internal/domain/component"
	"github.com/modhearth/modorder/internal/domain/rules"
	"github.com/modhearth/modorder/internal/ports"
)

// RuleSource supplies the rule set one Generate call schedules against.
// The rule set must not change for the duration of the call; the
// generator performs no locking. rules.Manager satisfies the interface.
type RuleSource interface {
	RulesFor(ref component.Reference) []rules.Rule
	DependencyRules() []rules.DependencyRule
	OrderRules() []rules.OrderRule
}

// Result is the outcome of one Generate call.
type Result struct {
	// Order is the computed installation order.
	Order []component.Reference
	// CycleDetected reports that the rule graph contained a cycle and
	// the tail of the constrained region is the lexicographic fallback,
	// which makes no dependency guarantee.
	CycleDetected bool
}

// Generator is the scheduling core. It is stateless across calls and
// never mutates rules or references.
type Generator struct {
	rules  RuleSource
	logger ports.Logger
}

// NewGenerator creates a Generator reading rules from source.
// A nil logger silences the cycle diagnostic.
func NewGenerator(source RuleSource, logger ports.Logger) *Generator {
	return &Generator{rules: source, logger: logger}
}

// Generate computes an installation order for the selected components.
//
// Only components that are rule-constrained (or already present in
// baseOrder) appear in the result; a selected component touched by no
// order-relevant rule is deliberately absent when no base order is
// given. When baseOrder is supplied, its entries keep their relative
// order unconditionally, even where that violates a rule, and the
// computed order is merged around them.
//
// Generate never fails: a cyclic rule set degrades to the deterministic
// lexicographic fallback, reported via Result.CycleDetected and a
// warning on the logger.
func (g *Generator) Generate(ctx context.Context, selected, baseOrder []component.Reference) Result {
	if len(selected) == 0 {
		return Result{}
	}

	selectedSet := component.NewSet(selected...)
	nodes := g.constrainedComponents(selectedSet)

	for _, ref := range baseOrder {
		if selectedSet.Has(ref) {
			nodes.Add(ref)
		}
	}

	if nodes.Len() == 0 {
		return Result{Order: append([]component.Reference(nil), baseOrder...)}
	}

	ideal, unresolved := g.buildGraph(nodes).sort()
	cycle := unresolved > 0
	if cycle {
		g.warnCycle(ctx, unresolved)
	}

	if len(baseOrder) == 0 {
		return Result{Order: ideal, CycleDetected: cycle}
	}

	return Result{Order: mergeOrders(ideal, baseOrder), CycleDetected: cycle}
}

// constrainedComponents computes the working node set: every selected
// component joined to another selected component by at least one
// order-relevant rule (a dependency rule with implicit order, or any
// order rule). Both endpoints of such a pairing enter the set.
func (g *Generator) constrainedComponents(selected component.Set) component.Set {
	constrained := component.NewSet()

	for ref := range selected {
		for _, rule := range g.rules.RulesFor(ref) {
			if !rule.OrdersInstallation() {
				continue
			}
			g.addRulePeers(constrained, selected, ref, rule.Sources())
			g.addRulePeers(constrained, selected, ref, rule.Targets())
		}
	}

	return constrained
}

func (g *Generator) addRulePeers(constrained, selected component.Set, ref component.Reference, endpoints component.Set) {
	for other := range endpoints {
		if other == ref || !selected.Has(other) {
			continue
		}
		constrained.Add(ref)
		constrained.Add(other)
	}
}

// buildGraph derives the edge set restricted to the working nodes.
// An edge u -> v means u installs before v.
func (g *Generator) buildGraph(nodes component.Set) *depGraph {
	dg := newDepGraph(nodes)

	// Dependency rules: the dependency (target) precedes the dependent
	// (source). Presence-only rules contribute nothing.
	for _, rule := range g.rules.DependencyRules() {
		if !rule.ImplicitOrder() {
			continue
		}
		for target := range rule.Targets() {
			for source := range rule.Sources() {
				dg.addEdge(target, source)
			}
		}
	}

	for _, rule := range g.rules.OrderRules() {
		for source := range rule.Sources() {
			for target := range rule.Targets() {
				if rule.Direction() == rules.After {
					dg.addEdge(target, source)
				} else {
					dg.addEdge(source, target)
				}
			}
		}
	}

	return dg
}

func (g *Generator) warnCycle(ctx context.Context, unresolved int) {
	if g.logger == nil {
		return
	}
	g.logger.Warn(ctx, "circular dependencies detected, appending remaining components in lexicographic order",
		ports.F("unresolved", unresolved))
}
