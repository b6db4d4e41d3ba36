// Package lookup retrieves distributor records for part numbers.
//
// Provider is the single seam between the checker and the outside world: given a
// distributor part number it returns the parsed record, or nil when the part is not
// found. Three implementations are available:
//
//   - ExecProvider runs a helper command (the dkapia.py part search by default)
//     and parses its stdout. A non-zero exit status means "not found".
//   - HTTPProvider issues GET {base_url}/{part number}. 404 means "not found".
//   - FileProvider reads {dir}/{part number}.json, useful for offline runs.
//
// Any other failure to reach the collaborator is returned as an error and aborts
// the run. Responses that cannot be parsed are *distributor.MalformedRecordError.
package lookup
