// Package schematic derives a package classification from the free-text footprint
// (pad) name a schematic capture tool writes into the BOM.
//
// Classification walks the taxonomy's ordered substring rules and the first rule
// whose pattern occurs in the footprint wins. Specific patterns such as "SOT-23-6"
// are listed before generic ones such as "SOT-23"; the taxonomy rejects orderings
// where a rule could never fire. A footprint that matches no rule classifies as
// (Unknown, Invalid).
//
// Some rules carry a Note for footprint names known to cover more than one physical
// package. Match exposes the rule so callers can surface the note.
package schematic
