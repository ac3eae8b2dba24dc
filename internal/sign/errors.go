package sign

import "errors"

var (
	// ErrInvalidKey indicates a key file that is missing, malformed, or of
	// the wrong length.
	ErrInvalidKey = errors.New("invalid signing key")

	// ErrInvalidSignature indicates a signature that is malformed or does
	// not match the archive bytes.
	ErrInvalidSignature = errors.New("invalid signature")
)
