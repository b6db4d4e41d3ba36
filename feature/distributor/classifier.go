package distributor

import (
	"bom-checker/feature/taxonomy"
)

// Classifier maps distributor records to classifications.
type Classifier struct {
	tax *taxonomy.Taxonomy
}

// NewClassifier creates a classifier over the given taxonomy.
func NewClassifier(tax *taxonomy.Taxonomy) *Classifier {
	return &Classifier{tax: tax}
}

// Classify derives (mount type, package type) from a record.
//
// A Mounting Type or Package / Case entry without a value id is a
// *MalformedRecordError, as is a record with neither parameter.
// The mount type comes from the Mounting Type value ID when it is recognised:
// membership in both the SMT and TH sets gives MountAmbiguous. Otherwise the
// Package / Case value ID's own membership decides, and MountUnknown is the last
// resort. The package type is the raw Package / Case value ID, or PackageInvalid
// when that parameter is absent.
func (c *Classifier) Classify(rec *Record) (taxonomy.Classification, error) {
	if rec == nil {
		return taxonomy.Unclassified, &MalformedRecordError{Reason: "empty record"}
	}

	mountingID, hasMounting, err := rec.ValueID(taxonomy.ParameterMountingType, "Mounting Type")
	if err != nil {
		return taxonomy.Unclassified, err
	}
	packageID, hasPackage, err := rec.ValueID(taxonomy.ParameterPackageCase, "Package / Case")
	if err != nil {
		return taxonomy.Unclassified, err
	}

	if !hasMounting && !hasPackage {
		return taxonomy.Unclassified, &MalformedRecordError{
			PartNumber: rec.PartNumber,
			Reason:     "neither Mounting Type nor Package / Case parameter present",
		}
	}

	pkg := taxonomy.PackageInvalid
	if hasPackage {
		pkg = taxonomy.PackageType(packageID)
	}

	mount := taxonomy.MountUnknown
	if hasMounting {
		smt, th := c.tax.MountingMembership(mountingID)
		switch {
		case smt && th:
			mount = taxonomy.MountAmbiguous
		case smt:
			mount = taxonomy.MountSMT
		case th:
			mount = taxonomy.MountThroughHole
		}
	}

	if mount == taxonomy.MountUnknown && hasPackage {
		mount = c.tax.PackageMount(pkg)
	}

	return taxonomy.Classification{Mount: mount, Package: pkg}, nil
}

// IsSMTPart is a quick surface mount check: true when the mounting type is an
// SMT-only value, the supplier device package is a known SMT package, or the
// package/case is an SMT package.
func (c *Classifier) IsSMTPart(rec *Record) bool {
	if rec == nil {
		return false
	}
	if id, ok, _ := rec.ValueID(taxonomy.ParameterMountingType, "Mounting Type"); ok {
		if smt, th := c.tax.MountingMembership(id); smt && !th {
			return true
		}
	}
	if id, ok, _ := rec.ValueID(taxonomy.ParameterSupplierDevicePackage, "Supplier Device Package"); ok {
		if c.tax.IsSMTSupplierPackage(id) {
			return true
		}
	}
	if id, ok, _ := rec.ValueID(taxonomy.ParameterPackageCase, "Package / Case"); ok {
		return c.tax.PackageMount(taxonomy.PackageType(id)) == taxonomy.MountSMT
	}
	return false
}
