package config

import (
	"errors"

	"go.trai.ch/p2local/internal/core/domain"
	"go.trai.ch/zerr"
)

// toUnit converts a unit DTO. Missing capability versions default to the unit version
// for the bundle identity and to 0.0.0 otherwise.
func toUnit(dto *UnitDTO) (*domain.Unit, error) {
	if dto.ID == "" {
		return nil, zerr.Wrap(domain.ErrUnitsReadFailed, "unit id is missing")
	}

	version, err := parseOptionalVersion(dto.Version, domain.Version{})
	if err != nil {
		return nil, zerr.With(err, "field", "version")
	}

	u := &domain.Unit{ID: dto.ID, Version: version}
	u.Capabilities = append(u.Capabilities, domain.Capability{
		Namespace: domain.NamespaceUnit,
		Name:      dto.ID,
		Version:   version,
	})

	if dto.Bundle != nil {
		c, err := toCapability(domain.NamespaceBundle, dto.Bundle, dto.ID, version)
		if err != nil {
			return nil, zerr.With(err, "field", "bundle")
		}
		u.Capabilities = append(u.Capabilities, c)
	}

	for i := range dto.Packages {
		c, err := toCapability(domain.NamespacePackage, &dto.Packages[i], "", domain.Version{})
		if err != nil {
			return nil, zerr.With(zerr.With(err, "field", "packages"), "index", i)
		}
		u.Capabilities = append(u.Capabilities, c)
	}

	for i := range dto.Capabilities {
		capDTO := &dto.Capabilities[i]
		ns, err := domain.ParseCapabilityType(capDTO.Namespace)
		if err != nil {
			ns = domain.Namespace(capDTO.Namespace)
		}
		c, err := toCapability(ns, capDTO, "", domain.Version{})
		if err != nil {
			return nil, zerr.With(zerr.With(err, "field", "capabilities"), "index", i)
		}
		u.Capabilities = append(u.Capabilities, c)
	}

	return u, nil
}

func toCapability(ns domain.Namespace, dto *CapabilityDTO, defaultName string, defaultVersion domain.Version) (domain.Capability, error) {
	name := dto.Name
	if name == "" {
		name = defaultName
	}
	if name == "" || ns == "" {
		return domain.Capability{}, zerr.Wrap(domain.ErrUnitsReadFailed, "capability needs a namespace and a name")
	}

	version, err := parseOptionalVersion(dto.Version, defaultVersion)
	if err != nil {
		return domain.Capability{}, err
	}

	return domain.Capability{Namespace: ns, Name: name, Version: version}, nil
}

func parseOptionalVersion(s string, fallback domain.Version) (domain.Version, error) {
	if s == "" {
		return fallback, nil
	}
	v, err := domain.ParseVersion(s)
	if err != nil {
		return domain.Version{}, zerr.Wrap(errors.Join(domain.ErrUnitsReadFailed, err), "invalid unit version")
	}
	return v, nil
}
