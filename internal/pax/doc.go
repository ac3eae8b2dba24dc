// Package pax assembles and reads .pax archives.
//
// A .pax archive is a zstd-compressed tarball of an install root plus a
// metadata.yaml describing the package. Assembly happens once per built
// architecture; reading supports extraction, metadata queries, and the
// structural verification that gates signature checks.
package pax
