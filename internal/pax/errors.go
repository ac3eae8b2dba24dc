package pax

import "errors"

var (
	// ErrPackaging indicates the archive could not be assembled or unpacked.
	ErrPackaging = errors.New("packaging failed")

	// ErrNotFound indicates the package archive does not exist.
	ErrNotFound = errors.New("package not found")

	// ErrMetadataMissing indicates the archive carries no metadata.yaml.
	ErrMetadataMissing = errors.New("package metadata missing")
)
