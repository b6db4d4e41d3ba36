// Package report renders check results.
//
// Every mismatch carries the component IDs, the schematic and distributor mount
// types and the schematic and distributor package types; all formats include
// these four pieces of information.
//
// # Formats
//
//   - text: one block per mismatch, in the style of a terminal warning.
//   - table: an aligned table (olekukonko/tablewriter).
//   - json: the full result, indented.
//   - yaml: the full result.
//
// DetectFormat picks table for terminals and json for pipes when no format is given.
// Upload stores a rendered report in object storage.
package report
