// Package distributor classifies parts from the distributor's parametric data.
//
// A Record is the JSON document returned by a part lookup. Only two of its
// parameters matter here: "Mounting Type" and "Package / Case". The classifier
// resolves the mount type from the mounting-type value ID first and falls back to
// the package value ID's own membership. The package identity is passed through
// unchanged as the taxonomy.PackageType.
//
// A record with neither parameter cannot be classified and yields a
// *MalformedRecordError, which callers treat as fatal for that row only.
package distributor
