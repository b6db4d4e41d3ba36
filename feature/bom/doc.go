// Package bom reads Bill of Materials files exported by KiBoM.
//
// The export is a delimited text table (pipe separated by default) with a header
// line followed by one line per component group. Column positions are configured
// through Config; the defaults match KiBoM's layout:
//
//	0 row | 1 description | 2 part | 3 references | 4 value | 5 footprint |
//	6 quantity | 8 manufacturer | 10 MPN | 12 distributor part number
//
// Reading stops at the first blank line. A line with fewer columns than the
// configured layout needs is a layout error and aborts the read.
//
// BOM files can be read from the local filesystem or from object storage using
// an s3://bucket/key location (see Open).
package bom
