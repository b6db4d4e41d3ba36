package reconcile

import (
	"fmt"

	"bom-checker/feature/taxonomy"
)

// Reconciler compares classifications and renders the differences.
type Reconciler struct {
	tax *taxonomy.Taxonomy
}

// NewReconciler creates a reconciler that renders packages through tax.
func NewReconciler(tax *taxonomy.Taxonomy) *Reconciler {
	return &Reconciler{tax: tax}
}

// Reconcile returns nil when both fields are equal, otherwise a MismatchReport.
func (r *Reconciler) Reconcile(componentIDs []string, schematic, distributor taxonomy.Classification) *MismatchReport {
	if schematic == distributor {
		return nil
	}

	report := &MismatchReport{
		ComponentIDs:       append([]string(nil), componentIDs...),
		Schematic:          schematic,
		Distributor:        distributor,
		SchematicMount:     schematic.Mount.String(),
		DistributorMount:   distributor.Mount.String(),
		SchematicPackage:   r.tax.PackageName(schematic.Package),
		DistributorPackage: r.tax.PackageName(distributor.Package),
		Mismatch:           []string{},
	}

	if schematic.Mount != distributor.Mount {
		report.Mismatch = append(report.Mismatch,
			fmt.Sprintf("mount: schematic=%s distributor=%s", report.SchematicMount, report.DistributorMount))
	}
	if schematic.Package != distributor.Package {
		report.Mismatch = append(report.Mismatch,
			fmt.Sprintf("package: schematic=%s distributor=%s", report.SchematicPackage, report.DistributorPackage))
	}

	return report
}
