// Package recipe models the declarative build description.
//
// A recipe names a source artifact, a build procedure, and package
// metadata. It is parsed from YAML (from a local file or a fetched URL),
// validated once before any build step, and read-only afterwards. The
// package also owns the canonical archive filename convention,
// "name-version-arch.pax", including the heuristic inverse that recovers
// the three fields from an existing filename.
package recipe
