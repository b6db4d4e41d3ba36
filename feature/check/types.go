package check

import "bom-checker/core/reconcile"

// SkipReason explains why a row was not reconciled.
type SkipReason string

const (
	// SkipNotFound means the lookup returned no record.
	SkipNotFound SkipReason = "not_found"
	// SkipMalformed means the distributor record could not be classified.
	SkipMalformed SkipReason = "malformed"
)

// SkippedRow is a row with a part number that could not be reconciled.
type SkippedRow struct {
	Line         int        `json:"line" yaml:"line"`
	ComponentIDs []string   `json:"component_ids" yaml:"component_ids"`
	PartNumber   string     `json:"part_number" yaml:"part_number"`
	Reason       SkipReason `json:"reason" yaml:"reason"`
	Detail       string     `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Summary provides aggregate counts for a run.
type Summary struct {
	// Rows is the number of BOM rows seen.
	Rows int `json:"rows" yaml:"rows"`
	// NoPartNumber counts rows skipped for lacking a distributor part number.
	NoPartNumber int `json:"no_part_number" yaml:"no_part_number"`
	// NotFound counts parts the lookup did not find.
	NotFound int `json:"not_found" yaml:"not_found"`
	// Malformed counts distributor records that could not be classified.
	Malformed int `json:"malformed" yaml:"malformed"`
	// Checked counts rows that were reconciled.
	Checked int `json:"checked" yaml:"checked"`
	// Mismatches counts reconciled rows whose classifications differ.
	Mismatches int `json:"mismatches" yaml:"mismatches"`
}

// Result is the outcome of a run.
type Result struct {
	Reports []reconcile.MismatchReport `json:"reports" yaml:"reports"`
	Skipped []SkippedRow               `json:"skipped" yaml:"skipped"`
	Summary Summary                    `json:"summary" yaml:"summary"`
}
