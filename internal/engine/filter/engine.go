// Package filter applies filter rules to a set of capability units.
package filter

import (
	"fmt"

	"go.trai.ch/zerr"

	"go.trai.ch/p2local/internal/core/domain"
	"go.trai.ch/p2local/internal/core/ports"
)

// Engine evaluates an ordered list of filter rules.
// It holds no per-call state and may be shared between goroutines.
type Engine struct {
	rules  []domain.FilterRule
	logger ports.Logger
}

// NewEngine validates rules and returns an engine applying them in order.
func NewEngine(rules []domain.FilterRule, logger ports.Logger) (*Engine, error) {
	for i, rule := range rules {
		if err := validateRule(rule); err != nil {
			return nil, zerr.With(err, "rule", i)
		}
	}
	return &Engine{rules: append([]domain.FilterRule(nil), rules...), logger: logger}, nil
}

// Rules returns the rules in evaluation order.
func (e *Engine) Rules() []domain.FilterRule {
	return append([]domain.FilterRule(nil), e.rules...)
}

// Filter returns the units that survive every rule, preserving input order.
// The input slice and the units themselves are not modified.
func (e *Engine) Filter(units []*domain.Unit) []*domain.Unit {
	working := append([]*domain.Unit(nil), units...)
	for _, rule := range e.rules {
		working = e.apply(rule, working)
	}
	return working
}

func (e *Engine) apply(rule domain.FilterRule, units []*domain.Unit) []*domain.Unit {
	switch action := rule.Action.(type) {
	case domain.RemoveAll:
		return removeMatching(rule.Scope, units)
	case domain.Restrict:
		return e.restrict(rule.Scope, action.Pattern, units)
	default:
		return units
	}
}

func removeMatching(scope domain.CapabilityPattern, units []*domain.Unit) []*domain.Unit {
	kept := units[:0]
	for _, u := range units {
		if !Matches(u, scope) {
			kept = append(kept, u)
		}
	}
	return kept
}

func (e *Engine) restrict(scope, restriction domain.CapabilityPattern, units []*domain.Unit) []*domain.Unit {
	effective := restriction.InheritFrom(scope)

	var keptInScope, removed int
	kept := units[:0]
	for _, u := range units {
		if !Matches(u, scope) {
			kept = append(kept, u)
			continue
		}
		if Matches(u, effective) {
			keptInScope++
			kept = append(kept, u)
			continue
		}
		removed++
	}

	if removed > 0 && keptInScope == 0 && e.logger != nil {
		e.logger.Warn(fmt.Sprintf(
			"Removed all units from the target platform matching {%s} because none of the units passed the restriction filter {%s}",
			scope, restriction,
		))
	}
	return kept
}

// Matches reports whether unit satisfies pattern.
//
// Unit identity patterns test the unit's own id and version. Bundle patterns test
// the unit's bundle capability and never match units without one. Package patterns
// match if any exported package satisfies the pattern.
func Matches(unit *domain.Unit, pattern domain.CapabilityPattern) bool {
	switch pattern.Namespace() {
	case domain.NamespaceUnit:
		return pattern.MatchesID(unit.ID) && pattern.MatchesVersion(unit.Version)
	case domain.NamespaceBundle:
		bundle, ok := unit.BundleCapability()
		return ok && matchesCapability(pattern, bundle)
	case domain.NamespacePackage:
		for _, pkg := range unit.PackageCapabilities() {
			if matchesCapability(pattern, pkg) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func matchesCapability(pattern domain.CapabilityPattern, c domain.Capability) bool {
	return pattern.MatchesID(c.Name) && pattern.MatchesVersion(c.Version)
}

func validateRule(rule domain.FilterRule) error {
	if !knownNamespace(rule.Scope.Namespace()) {
		return zerr.With(
			zerr.Wrap(domain.ErrInvalidFilterRule, "scope pattern needs a known capability type"),
			"scope", rule.Scope.String(),
		)
	}

	switch a := rule.Action.(type) {
	case domain.RemoveAll:
		return nil
	case domain.Restrict:
		ns := a.Pattern.Namespace()
		if ns != "" && !knownNamespace(ns) {
			return zerr.With(
				zerr.Wrap(domain.ErrInvalidFilterRule, "restriction pattern has an unknown capability type"),
				"restriction", a.Pattern.String(),
			)
		}
		return nil
	default:
		return zerr.With(
			zerr.Wrap(domain.ErrInvalidFilterRule, "filter rule has no action"),
			"scope", rule.Scope.String(),
		)
	}
}

func knownNamespace(ns domain.Namespace) bool {
	switch ns {
	case domain.NamespaceUnit, domain.NamespaceBundle, domain.NamespacePackage:
		return true
	default:
		return false
	}
}
