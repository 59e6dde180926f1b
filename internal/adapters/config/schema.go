package config

// File represents the structure of the p2local.yaml configuration file.
type File struct {
	Repository            string      `yaml:"repository"`
	LockTimeout           string      `yaml:"lockTimeout"`
	PackedFormatAvailable *bool       `yaml:"packedFormatAvailable"`
	Filters               []FilterDTO `yaml:"filters"`
}

// FilterDTO represents one filter rule. The scope attributes are inline;
// exactly one of RemoveAll and RestrictTo must be set.
type FilterDTO struct {
	PatternDTO `yaml:",inline"`
	RemoveAll  bool        `yaml:"removeAll"`
	RestrictTo *PatternDTO `yaml:"restrictTo"`
}

// PatternDTO represents a capability pattern.
type PatternDTO struct {
	Type         string `yaml:"type"`
	ID           string `yaml:"id"`
	Version      string `yaml:"version"`
	VersionRange string `yaml:"versionRange"`
}

// UnitsFile represents a unit set document.
type UnitsFile struct {
	Units []UnitDTO `yaml:"units"`
}

// UnitDTO represents one capability unit. The unit identity capability is implied.
type UnitDTO struct {
	ID           string          `yaml:"id"`
	Version      string          `yaml:"version"`
	Bundle       *CapabilityDTO  `yaml:"bundle"`
	Packages     []CapabilityDTO `yaml:"packages"`
	Capabilities []CapabilityDTO `yaml:"capabilities"`
}

// CapabilityDTO represents a provided capability. Namespace is only read for
// entries of UnitDTO.Capabilities and accepts a type name or a raw namespace.
type CapabilityDTO struct {
	Namespace string `yaml:"namespace"`
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
}
