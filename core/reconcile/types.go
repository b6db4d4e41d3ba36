package reconcile

import "bom-checker/feature/taxonomy"

// MismatchReport describes one BOM line whose classifications disagree.
type MismatchReport struct {
	// ComponentIDs are the reference designators sharing the BOM line (e.g. R1 R2).
	ComponentIDs []string `json:"component_ids" yaml:"component_ids"`

	// PartNumber is the distributor part number of the line, filled in by the caller.
	PartNumber string `json:"part_number,omitempty" yaml:"part_number,omitempty"`

	// Footprint is the schematic footprint text, filled in by the caller.
	Footprint string `json:"footprint,omitempty" yaml:"footprint,omitempty"`

	// Schematic is the classification derived from the footprint text.
	Schematic taxonomy.Classification `json:"schematic" yaml:"schematic"`

	// Distributor is the classification derived from the distributor record.
	Distributor taxonomy.Classification `json:"distributor" yaml:"distributor"`

	// SchematicMount and DistributorMount are display renderings of the mount types.
	SchematicMount   string `json:"schematic_mount" yaml:"schematic_mount"`
	DistributorMount string `json:"distributor_mount" yaml:"distributor_mount"`

	// SchematicPackage and DistributorPackage are display renderings of the package types.
	SchematicPackage   string `json:"schematic_package" yaml:"schematic_package"`
	DistributorPackage string `json:"distributor_package" yaml:"distributor_package"`

	// Mismatch contains one description per differing field,
	// e.g. "mount: schematic=SMT distributor=Through Hole".
	Mismatch []string `json:"mismatch" yaml:"mismatch"`
}
