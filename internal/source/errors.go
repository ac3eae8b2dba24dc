package source

import "errors"

var (
	// ErrDownload indicates the source artifact could not be fetched.
	ErrDownload = errors.New("source download failed")

	// ErrChecksumMismatch indicates the downloaded artifact does not match
	// the hash declared in the recipe.
	ErrChecksumMismatch = errors.New("source checksum mismatch")

	// ErrUnsupportedFormat indicates the artifact's filename maps to no
	// known archive format.
	ErrUnsupportedFormat = errors.New("unsupported source archive format")

	// ErrExtraction indicates the archive could not be unpacked.
	ErrExtraction = errors.New("source extraction failed")
)
