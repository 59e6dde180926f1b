package config

import (
	"errors"

	"go.trai.ch/p2local/internal/core/domain"
	"go.trai.ch/zerr"
)

// ReadFilters converts filter DTOs into rules. The scope needs a type and an
// id, a rule needs exactly one action, and no pattern may set both version and
// versionRange. Version strings are validated here, before any unit is filtered.
func ReadFilters(dtos []FilterDTO) ([]domain.FilterRule, error) {
	rules := make([]domain.FilterRule, 0, len(dtos))
	for i := range dtos {
		rule, err := readFilter(&dtos[i])
		if err != nil {
			return nil, zerr.With(err, "filter", i)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func readFilter(dto *FilterDTO) (domain.FilterRule, error) {
	if dto.Type == "" {
		return domain.FilterRule{}, filterConfigError("missing type in filter scope", "type")
	}
	if dto.ID == "" {
		return domain.FilterRule{}, filterConfigError("missing id in filter scope", "id")
	}

	scope, err := readPattern(&dto.PatternDTO)
	if err != nil {
		return domain.FilterRule{}, err
	}

	switch {
	case dto.RemoveAll && dto.RestrictTo != nil:
		return domain.FilterRule{}, filterConfigError("only one of removeAll and restrictTo may be set", "action")
	case dto.RemoveAll:
		return domain.RemoveAllRule(scope), nil
	case dto.RestrictTo != nil:
		restriction, err := readPattern(dto.RestrictTo)
		if err != nil {
			return domain.FilterRule{}, zerr.With(err, "field", "restrictTo")
		}
		return domain.RestrictRule(scope, restriction), nil
	default:
		return domain.FilterRule{}, filterConfigError("filter action is missing, expected removeAll or restrictTo", "action")
	}
}

func readPattern(dto *PatternDTO) (domain.CapabilityPattern, error) {
	if dto.Version != "" && dto.VersionRange != "" {
		return domain.CapabilityPattern{}, filterConfigError("only one of version and versionRange may be set", "version")
	}

	var ns domain.Namespace
	if dto.Type != "" {
		parsed, err := domain.ParseCapabilityType(dto.Type)
		if err != nil {
			return domain.CapabilityPattern{}, zerr.Wrap(errors.Join(domain.ErrFilterConfig, err), "invalid filter type")
		}
		ns = parsed
	}

	return domain.NewCapabilityPattern(domain.PatternSpec{
		Namespace:    ns,
		ID:           dto.ID,
		Version:      dto.Version,
		VersionRange: dto.VersionRange,
	})
}

func filterConfigError(msg, field string) error {
	return zerr.With(zerr.Wrap(domain.ErrFilterConfig, msg), "field", field)
}
