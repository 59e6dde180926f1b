package domain

// FilterAction is what a FilterRule does with the units in its scope.
// The implementations are RemoveAll and Restrict.
type FilterAction interface {
	filterAction()
}

// RemoveAll removes every unit matching the scope.
type RemoveAll struct{}

// Restrict keeps only those units in scope that also match Pattern.
type Restrict struct {
	Pattern CapabilityPattern
}

func (RemoveAll) filterAction() {}

func (Restrict) filterAction() {}

// FilterRule pairs a scope pattern with an action.
type FilterRule struct {
	Scope  CapabilityPattern
	Action FilterAction
}

// RemoveAllRule creates a rule removing every unit that matches scope.
func RemoveAllRule(scope CapabilityPattern) FilterRule {
	return FilterRule{Scope: scope, Action: RemoveAll{}}
}

// RestrictRule creates a rule removing units that match scope but not restriction.
func RestrictRule(scope, restriction CapabilityPattern) FilterRule {
	return FilterRule{Scope: scope, Action: Restrict{Pattern: restriction}}
}

// String describes the rule for diagnostics.
func (r FilterRule) String() string {
	switch a := r.Action.(type) {
	case RemoveAll:
		return "Filter(scope={" + r.Scope.String() + "}, action=removeAll)"
	case Restrict:
		return "Filter(scope={" + r.Scope.String() + "}, action=restrict, restriction={" + a.Pattern.String() + "})"
	default:
		return "Filter(scope={" + r.Scope.String() + "})"
	}
}
