package taxonomy

import (
	"fmt"
	"strings"
)

// MountType is the broad mounting style of a component.
type MountType int

const (
	// MountUnknown means no rule or table entry matched.
	MountUnknown MountType = iota
	// MountSMT is a surface mount part.
	MountSMT
	// MountThroughHole is a through hole part.
	MountThroughHole
	// MountAmbiguous is only produced when distributor data claims both SMT and TH.
	MountAmbiguous
)

var mountNames = map[MountType]string{
	MountUnknown:     "Unknown",
	MountSMT:         "SMT",
	MountThroughHole: "Through Hole",
	MountAmbiguous:   "Ambiguous",
}

var mountKeys = map[MountType]string{
	MountUnknown:     "unknown",
	MountSMT:         "smt",
	MountThroughHole: "th",
	MountAmbiguous:   "ambiguous",
}

// String returns the display name of the mount type.
func (m MountType) String() string {
	if name, ok := mountNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MountType(%d)", int(m))
}

// MarshalText encodes the mount type as its short key (smt, th, ...).
func (m MountType) MarshalText() ([]byte, error) {
	key, ok := mountKeys[m]
	if !ok {
		return nil, fmt.Errorf("unknown mount type %d", int(m))
	}
	return []byte(key), nil
}

// UnmarshalText decodes a short key such as "smt" or "th".
func (m *MountType) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for mt, key := range mountKeys {
		if key == s {
			*m = mt
			return nil
		}
	}
	return fmt.Errorf("unknown mount type %q", s)
}

// PackageType identifies a footprint family by the distributor's Package/Case value ID.
type PackageType int

// PackageInvalid is the unset marker used when no package could be determined.
const PackageInvalid PackageType = 0

// Classification is the (mount type, package type) pair each classifier produces.
type Classification struct {
	Mount   MountType   `json:"mount" yaml:"mount"`
	Package PackageType `json:"package" yaml:"package"`
}

// Unclassified is the fallback result when nothing matched.
var Unclassified = Classification{Mount: MountUnknown, Package: PackageInvalid}

// MountingType is a distributor "Mounting Type" value and the sets it belongs to.
// A value that is in both sets makes the part ambiguous.
type MountingType struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	SMT  bool   `yaml:"smt"`
	TH   bool   `yaml:"th"`
}

// Package is a distributor "Package / Case" value.
type Package struct {
	ID    PackageType `yaml:"id"`
	Name  string      `yaml:"name"`
	Mount MountType   `yaml:"mount"`
}

// SupplierPackage is a distributor "Supplier Device Package" value.
type SupplierPackage struct {
	ID    int       `yaml:"id"`
	Name  string    `yaml:"name"`
	Mount MountType `yaml:"mount"`
}

// Rule maps a footprint substring to a package.
// Rules are evaluated in order and the first match wins.
type Rule struct {
	Pattern string      `yaml:"pattern"`
	Package PackageType `yaml:"package"`
	// Note is a diagnostic emitted whenever the rule fires, for footprint names
	// known to cover more than one physical package.
	Note string `yaml:"note,omitempty"`
}

// Tables is the plain data form of a taxonomy, as stored in YAML.
type Tables struct {
	MountingTypes    []MountingType    `yaml:"mounting_types"`
	Packages         []Package         `yaml:"packages"`
	SupplierPackages []SupplierPackage `yaml:"supplier_packages,omitempty"`
	SMTKeywords      []string          `yaml:"smt_keywords"`
	Rules            []Rule            `yaml:"rules"`
}
