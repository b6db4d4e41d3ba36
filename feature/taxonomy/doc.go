// Package taxonomy defines the shared vocabulary both package classifiers map onto.
//
// A Taxonomy is an immutable set of lookup tables built once at startup and passed
// explicitly to the schematic classifier, the distributor classifier and the
// reconciler. It holds:
//   - Mounting-type value IDs the distributor uses for surface mount and through hole parts.
//   - Package/Case value IDs with their display name and mount type.
//   - Supplier device package value IDs known to be surface mount.
//   - Footprint keywords that identify a surface mount pad.
//   - The ordered footprint substring rules used by the schematic classifier.
//
// # Package identity
//
// PackageType values are the distributor's Package/Case value IDs. The schematic
// classifier resolves footprint text to the same IDs so both sides can be compared
// with plain equality.
//
// # Usage
//
//	tax := taxonomy.Default()
//	smt, th := tax.MountingMembership(409393)
//	mount := tax.PackageMount(taxonomy.Package0805)
//
// Alternate tables can be loaded from YAML with Load and validated with Validate.
package taxonomy
