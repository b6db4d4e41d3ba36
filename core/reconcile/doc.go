// Package reconcile compares the schematic and distributor classifications of a
// BOM line and describes any disagreement.
//
// The comparison is strict: the mount types and the package types must both be
// equal. Unknown, Ambiguous and Invalid take part in the comparison like any other
// value, so an Ambiguous distributor mount type never matches a concrete schematic
// mount type, and two Unknown/Invalid classifications do match.
//
// # Usage
//
//	r := reconcile.NewReconciler(tax)
//	if report := r.Reconcile(ids, schematic, distributor); report != nil {
//	    // report.Mismatch lists the differing fields
//	}
//
// Reconcile has no side effects; rendering the report is up to the caller.
package reconcile
