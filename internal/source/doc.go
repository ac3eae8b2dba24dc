// Package source acquires a recipe's source artifact into a build
// workspace. Acquisition downloads the artifact, verifies its checksum
// when the recipe declares one, and unpacks it. It runs once per build
// regardless of how many architectures are requested.
package source
