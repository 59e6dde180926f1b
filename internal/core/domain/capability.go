package domain

import "go.trai.ch/zerr"

// Namespace tags a provided capability.
type Namespace string

const (
	// NamespaceUnit is the namespace of a unit's own identity.
	NamespaceUnit Namespace = "org.eclipse.equinox.p2.iu"

	// NamespaceBundle is the namespace of an OSGi bundle identity.
	NamespaceBundle Namespace = "osgi.bundle"

	// NamespacePackage is the namespace of an exported Java package.
	NamespacePackage Namespace = "java.package"
)

// ParseCapabilityType maps a configuration type string to a namespace.
// "eclipse-plugin" and "osgi-bundle" both denote bundle identities.
func ParseCapabilityType(s string) (Namespace, error) {
	switch s {
	case "eclipse-plugin", "osgi-bundle":
		return NamespaceBundle, nil
	case "p2-installable-unit":
		return NamespaceUnit, nil
	case "java-package":
		return NamespacePackage, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownCapabilityType, "failed to parse capability type"), "type", s)
	}
}

// TypeName returns the configuration type string of the namespace.
func (n Namespace) TypeName() string {
	switch n {
	case NamespaceBundle:
		return "osgi-bundle"
	case NamespaceUnit:
		return "p2-installable-unit"
	case NamespacePackage:
		return "java-package"
	default:
		return string(n)
	}
}

// Capability is something a unit provides, such as a bundle identity or a package export.
type Capability struct {
	Namespace Namespace
	Name      string
	Version   Version
}

// Unit is a resolvable metadata node exposing typed capabilities.
// Units are treated as immutable once created.
type Unit struct {
	ID           string
	Version      Version
	Capabilities []Capability
}

// BundleCapability returns the unit's bundle identity, if it has one.
func (u *Unit) BundleCapability() (Capability, bool) {
	for _, c := range u.Capabilities {
		if c.Namespace == NamespaceBundle {
			return c, true
		}
	}
	return Capability{}, false
}

// PackageCapabilities returns every package export of the unit.
func (u *Unit) PackageCapabilities() []Capability {
	var pkgs []Capability
	for _, c := range u.Capabilities {
		if c.Namespace == NamespacePackage {
			pkgs = append(pkgs, c)
		}
	}
	return pkgs
}

// String returns id/version.
func (u *Unit) String() string {
	return u.ID + "/" + u.Version.String()
}
