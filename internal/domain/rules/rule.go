// Package rules models the dependency and ordering constraints between
// mod components and provides an indexed, read-only rule store.
package rules

import "github.com/modhearth/modorder/internal/domain/component"

// Direction states which side of an order rule installs first.
type Direction string

const (
	// Before means every source installs before every target.
	Before Direction = "before"
	// After means every source installs after every target.
	After Direction = "after"
)

// Rule is the closed sum of DependencyRule and OrderRule.
// Consumers dispatch with a type switch; no other variants exist.
//
// Rules are read-only once constructed. The sets returned by Sources
// and Targets are the rule's own storage and must not be mutated.
type Rule interface {
	// Sources returns the components the rule constrains.
	Sources() component.Set
	// Targets returns the components the rule constrains against.
	Targets() component.Set
	// OrdersInstallation reports whether the rule contributes an
	// installation-order edge (as opposed to a presence-only constraint).
	OrdersInstallation() bool

	isRule()
}

// DependencyRule states that every source requires every target to be
// present. With implicitOrder set, targets must additionally install
// strictly before sources.
type DependencyRule struct {
	sources       component.Set
	targets       component.Set
	implicitOrder bool
}

// NewDependencyRule creates a DependencyRule over the given endpoint sets.
func NewDependencyRule(sources, targets component.Set, implicitOrder bool) DependencyRule {
	return DependencyRule{sources: sources, targets: targets, implicitOrder: implicitOrder}
}

// Sources returns the dependent components.
func (r DependencyRule) Sources() component.Set { return r.sources }

// Targets returns the required components.
func (r DependencyRule) Targets() component.Set { return r.targets }

// ImplicitOrder reports whether the dependency also orders installation.
func (r DependencyRule) ImplicitOrder() bool { return r.implicitOrder }

// OrdersInstallation reports whether the rule contributes an ordering edge.
// Presence-only dependencies (implicitOrder false) never do.
func (r DependencyRule) OrdersInstallation() bool { return r.implicitOrder }

func (DependencyRule) isRule() {}

// OrderRule states an explicit relative install order between two sets of
// components, independent of any dependency.
type OrderRule struct {
	sources   component.Set
	targets   component.Set
	direction Direction
}

// NewOrderRule creates an OrderRule over the given endpoint sets.
func NewOrderRule(sources, targets component.Set, direction Direction) OrderRule {
	return OrderRule{sources: sources, targets: targets, direction: direction}
}

// Sources returns the components on the stated side of the rule.
func (r OrderRule) Sources() component.Set { return r.sources }

// Targets returns the components on the other side of the rule.
func (r OrderRule) Targets() component.Set { return r.targets }

// Direction returns whether sources install before or after targets.
func (r OrderRule) Direction() Direction { return r.direction }

// OrdersInstallation always reports true for order rules.
func (OrderRule) OrdersInstallation() bool { return true }

func (OrderRule) isRule() {}
