// Package check runs the BOM verification loop.
//
// For each BOM row with a distributor part number the Service looks the part up,
// classifies both the schematic footprint and the distributor record, and
// reconciles the two. Rows are processed strictly one after another.
//
// # Skip policy
//
//   - Rows without a distributor part number are skipped silently.
//   - Parts the lookup does not find are skipped and counted as not found.
//   - Malformed distributor records are logged, skipped and counted.
//   - Any other lookup failure aborts the run.
package check
